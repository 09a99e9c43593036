package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nctu-sis/portal-api/internal/service"
	appErrors "github.com/nctu-sis/portal-api/pkg/errors"
	"github.com/nctu-sis/portal-api/pkg/response"
)

// AdminHandler exposes the registrar endpoints.
type AdminHandler struct {
	admin *service.AdminService
}

// NewAdminHandler constructs AdminHandler.
func NewAdminHandler(admin *service.AdminService) *AdminHandler {
	return &AdminHandler{admin: admin}
}

// RegisterStudent godoc
// @Summary Register a student
// @Description Creates the user account, student record, fee and enrollments
// @Tags Admin
// @Accept json
// @Produce json
// @Param payload body service.RegisterStudentRequest true "Registration payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /admin/students [post]
func (h *AdminHandler) RegisterStudent(c *gin.Context) {
	var req service.RegisterStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid registration payload"))
		return
	}

	res, err := h.admin.RegisterStudent(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, res)
}

// AddProfessor godoc
// @Summary Add a professor
// @Description Creates the user account, professor record and course assignment
// @Tags Admin
// @Accept json
// @Produce json
// @Param payload body service.AddProfessorRequest true "Professor payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /admin/professors [post]
func (h *AdminHandler) AddProfessor(c *gin.Context) {
	var req service.AddProfessorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid professor payload"))
		return
	}

	prof, err := h.admin.AddProfessor(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, prof)
}

// Users godoc
// @Summary User credentials table
// @Tags Admin
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /admin/users [get]
func (h *AdminHandler) Users(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.admin.Users(c.Request.Context()))
}
