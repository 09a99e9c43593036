package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/nctu-sis/portal-api/internal/models"
	appErrors "github.com/nctu-sis/portal-api/pkg/errors"
)

type studentStore interface {
	StudentByUser(userID int) (models.Student, bool)
	FeeByStudent(studentID int) (models.Fee, bool)
	EnrollmentsByStudent(studentID int) []models.EnrollmentDetail
}

// StudentProfile is the student dashboard payload: the record itself plus the
// fee, when one exists. A missing fee renders as absent, not as an error.
type StudentProfile struct {
	Student models.Student `json:"student"`
	Fee     *models.Fee    `json:"fee,omitempty"`
}

// StudentService serves the student-facing views.
type StudentService struct {
	store  studentStore
	logger *zap.Logger
}

// NewStudentService constructs the student service.
func NewStudentService(store studentStore, logger *zap.Logger) *StudentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StudentService{store: store, logger: logger}
}

// Profile resolves the student owning the authenticated user account.
func (s *StudentService) Profile(ctx context.Context, userID int) (*StudentProfile, error) {
	student, ok := s.store.StudentByUser(userID)
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "student profile not found")
	}

	profile := &StudentProfile{Student: student}
	if fee, ok := s.store.FeeByStudent(student.StudentID); ok {
		profile.Fee = &fee
	}
	return profile, nil
}

// Transcript lists the student's enrollments with course names resolved from
// the catalog. Enrollments pointing at unknown course codes are kept with a
// missing name.
func (s *StudentService) Transcript(ctx context.Context, userID int) ([]models.EnrollmentDetail, error) {
	student, ok := s.store.StudentByUser(userID)
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "student profile not found")
	}
	return s.store.EnrollmentsByStudent(student.StudentID), nil
}
