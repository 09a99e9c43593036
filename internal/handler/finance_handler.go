package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/nctu-sis/portal-api/internal/service"
	appErrors "github.com/nctu-sis/portal-api/pkg/errors"
	"github.com/nctu-sis/portal-api/pkg/response"
)

// FinanceHandler exposes the fee dashboard endpoints.
type FinanceHandler struct {
	finance *service.FinanceService
}

// NewFinanceHandler constructs FinanceHandler.
func NewFinanceHandler(finance *service.FinanceService) *FinanceHandler {
	return &FinanceHandler{finance: finance}
}

// Lookup godoc
// @Summary Look up a student's fee
// @Tags Finance
// @Produce json
// @Param studentID path int true "Student ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /finance/fees/{studentID} [get]
func (h *FinanceHandler) Lookup(c *gin.Context) {
	studentID, err := strconv.Atoi(c.Param("studentID"))
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "student id must be numeric"))
		return
	}

	detail, err := h.finance.Lookup(c.Request.Context(), studentID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, detail)
}

// SetStatus godoc
// @Summary Mark a fee paid or unpaid
// @Description Updates the fee's paid flag; unknown student IDs are a silent no-op
// @Tags Finance
// @Accept json
// @Param studentID path int true "Student ID"
// @Param payload body object true "Paid flag"
// @Success 204 "updated"
// @Failure 400 {object} response.Envelope
// @Router /finance/fees/{studentID} [put]
func (h *FinanceHandler) SetStatus(c *gin.Context) {
	studentID, err := strconv.Atoi(c.Param("studentID"))
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "student id must be numeric"))
		return
	}

	var payload struct {
		Paid *bool `json:"paid" binding:"required"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "paid flag required"))
		return
	}

	if err := h.finance.SetStatus(c.Request.Context(), studentID, *payload.Paid); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
