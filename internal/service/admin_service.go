package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/nctu-sis/portal-api/internal/models"
	"github.com/nctu-sis/portal-api/internal/store"
	appErrors "github.com/nctu-sis/portal-api/pkg/errors"
)

type adminStore interface {
	RegisterStudent(reg store.Registration) int
	AddProfessor(on store.Onboarding) models.Professor
	Users() []models.User
}

// RegisterStudentRequest is the registrar's form. The student ID is taken
// verbatim; nothing checks it for collision with an existing record.
type RegisterStudentRequest struct {
	StudentID    int    `json:"student_id" validate:"required"`
	Username     string `json:"username" validate:"required"`
	Password     string `json:"password" validate:"required"`
	FullName     string `json:"full_name" validate:"required"`
	AcademicYear int    `json:"academic_year" validate:"required,min=1,max=4"`
	Track        string `json:"track" validate:"required"`
	NationalID   string `json:"national_id" validate:"required"`
	DateOfBirth  string `json:"date_of_birth" validate:"required"`
}

// RegisterStudentResponse reports the seat number allocated by the cascade.
type RegisterStudentResponse struct {
	StudentID int `json:"student_id"`
	SeatNum   int `json:"seat_num"`
}

// AddProfessorRequest is the professor onboarding form. The course code is
// not required to exist in the catalog.
type AddProfessorRequest struct {
	FullName   string `json:"full_name" validate:"required"`
	Username   string `json:"username" validate:"required"`
	Password   string `json:"password" validate:"required"`
	CourseCode string `json:"course_code" validate:"required"`
}

// AdminService handles the registrar's use-cases: student registration,
// professor onboarding and the credentials table.
type AdminService struct {
	store     adminStore
	validator *validator.Validate
	logger    *zap.Logger
	metrics   MutationRecorder
}

// NewAdminService constructs the admin service.
func NewAdminService(st adminStore, validate *validator.Validate, logger *zap.Logger, metrics MutationRecorder) *AdminService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AdminService{store: st, validator: validate, logger: logger, metrics: metrics}
}

// RegisterStudent runs the registration cascade: user account, student
// record, fee and one enrollment per matching catalog course, written as a
// single atomic unit by the store.
func (s *AdminService) RegisterStudent(ctx context.Context, req RegisterStudentRequest) (*RegisterStudentResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid registration payload")
	}

	seatNum := s.store.RegisterStudent(store.Registration{
		StudentID:    req.StudentID,
		Username:     req.Username,
		Password:     req.Password,
		FullName:     req.FullName,
		AcademicYear: req.AcademicYear,
		Track:        req.Track,
		NationalID:   req.NationalID,
		DateOfBirth:  req.DateOfBirth,
	})

	if s.metrics != nil {
		s.metrics.CountMutation("register_student")
	}
	s.logger.Info("student registered",
		zap.Int("student_id", req.StudentID),
		zap.Int("seat_num", seatNum))

	return &RegisterStudentResponse{StudentID: req.StudentID, SeatNum: seatNum}, nil
}

// AddProfessor runs the onboarding cascade: user account, professor record
// and one course assignment.
func (s *AdminService) AddProfessor(ctx context.Context, req AddProfessorRequest) (*models.Professor, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid professor payload")
	}

	prof := s.store.AddProfessor(store.Onboarding{
		Username:   req.Username,
		Password:   req.Password,
		FullName:   req.FullName,
		CourseCode: req.CourseCode,
	})

	if s.metrics != nil {
		s.metrics.CountMutation("add_professor")
	}
	s.logger.Info("professor added", zap.Int("prof_id", prof.ProfID), zap.String("course_code", req.CourseCode))
	return &prof, nil
}

// Users returns the credentials table, sorted by role for display.
func (s *AdminService) Users(ctx context.Context) []models.User {
	return s.store.Users()
}
