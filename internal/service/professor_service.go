package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/nctu-sis/portal-api/internal/models"
	appErrors "github.com/nctu-sis/portal-api/pkg/errors"
)

type professorStore interface {
	ProfessorByUser(userID int) (models.Professor, bool)
	AssignmentsByProfessor(profID int) []models.AssignmentDetail
	EnrollmentsByCourse(courseCode string) []models.RosterEntry
	SetAttendance(enrollmentID, lectureNum int, present bool)
}

// AttendanceRequest toggles one (enrollment, lecture) presence cell.
type AttendanceRequest struct {
	EnrollmentID int  `json:"enrollment_id" validate:"required"`
	LectureNum   int  `json:"lecture_num" validate:"required,min=1,max=9"`
	Present      bool `json:"present"`
}

// ProfessorService serves the professor dashboard: assigned courses, class
// rosters and attendance toggling.
type ProfessorService struct {
	store     professorStore
	validator *validator.Validate
	logger    *zap.Logger
	metrics   MutationRecorder
}

// NewProfessorService constructs the professor service.
func NewProfessorService(store professorStore, validate *validator.Validate, logger *zap.Logger, metrics MutationRecorder) *ProfessorService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProfessorService{store: store, validator: validate, logger: logger, metrics: metrics}
}

// Courses lists the authenticated professor's assignments with course names.
func (s *ProfessorService) Courses(ctx context.Context, userID int) ([]models.AssignmentDetail, error) {
	prof, ok := s.store.ProfessorByUser(userID)
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "professor profile not found")
	}
	return s.store.AssignmentsByProfessor(prof.ProfID), nil
}

// Roster lists the enrollments for a course together with the owning
// students and their lecture presence. An unknown course code yields an
// empty roster.
func (s *ProfessorService) Roster(ctx context.Context, userID int, courseCode string) ([]models.RosterEntry, error) {
	if _, ok := s.store.ProfessorByUser(userID); !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "professor profile not found")
	}
	return s.store.EnrollmentsByCourse(courseCode), nil
}

// SetAttendance marks a lecture present or absent for an enrollment. The
// enrollment ID is not checked against the enrollment collection; an unknown
// ID simply creates presence rows no roster will ever surface.
func (s *ProfessorService) SetAttendance(ctx context.Context, req AttendanceRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid attendance payload")
	}
	s.store.SetAttendance(req.EnrollmentID, req.LectureNum, req.Present)
	if s.metrics != nil {
		s.metrics.CountMutation("set_attendance")
	}
	s.logger.Debug("attendance set",
		zap.Int("enrollment_id", req.EnrollmentID),
		zap.Int("lecture_num", req.LectureNum),
		zap.Bool("present", req.Present))
	return nil
}
