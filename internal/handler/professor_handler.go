package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nctu-sis/portal-api/internal/service"
	appErrors "github.com/nctu-sis/portal-api/pkg/errors"
	"github.com/nctu-sis/portal-api/pkg/response"
)

// ProfessorHandler exposes the professor dashboard endpoints.
type ProfessorHandler struct {
	professors *service.ProfessorService
}

// NewProfessorHandler constructs ProfessorHandler.
func NewProfessorHandler(professors *service.ProfessorService) *ProfessorHandler {
	return &ProfessorHandler{professors: professors}
}

// Courses godoc
// @Summary Assigned courses
// @Description Course assignments for the authenticated professor
// @Tags Professors
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /professors/me/courses [get]
func (h *ProfessorHandler) Courses(c *gin.Context) {
	claims, ok := currentClaims(c)
	if !ok {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	courses, err := h.professors.Courses(c.Request.Context(), claims.UserID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, courses)
}

// Roster godoc
// @Summary Class roster
// @Description Enrollments for a course with students and lecture presence
// @Tags Professors
// @Produce json
// @Param code path string true "Course code"
// @Success 200 {object} response.Envelope
// @Router /professors/me/courses/{code}/roster [get]
func (h *ProfessorHandler) Roster(c *gin.Context) {
	claims, ok := currentClaims(c)
	if !ok {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	roster, err := h.professors.Roster(c.Request.Context(), claims.UserID, c.Param("code"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, roster)
}

// SetAttendance godoc
// @Summary Toggle attendance
// @Description Mark a lecture present or absent for an enrollment
// @Tags Professors
// @Accept json
// @Param payload body service.AttendanceRequest true "Attendance payload"
// @Success 204 "updated"
// @Failure 400 {object} response.Envelope
// @Router /professors/attendance [put]
func (h *ProfessorHandler) SetAttendance(c *gin.Context) {
	var req service.AttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid attendance payload"))
		return
	}

	if err := h.professors.SetAttendance(c.Request.Context(), req); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
