package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/nctu-sis/portal-api/internal/models"
	appErrors "github.com/nctu-sis/portal-api/pkg/errors"
)

type financeStore interface {
	StudentByID(studentID int) (models.Student, bool)
	FeeByStudent(studentID int) (models.Fee, bool)
	SetFeeStatus(studentID int, paid bool) bool
}

// FinanceService serves the fee dashboard.
type FinanceService struct {
	store   financeStore
	logger  *zap.Logger
	metrics MutationRecorder
}

// NewFinanceService constructs the finance service.
func NewFinanceService(store financeStore, logger *zap.Logger, metrics MutationRecorder) *FinanceService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FinanceService{store: store, logger: logger, metrics: metrics}
}

// Lookup returns a student's fee with the student's name attached. Both the
// student and the fee record must exist, matching the legacy search form.
func (s *FinanceService) Lookup(ctx context.Context, studentID int) (*models.FeeDetail, error) {
	fee, feeOK := s.store.FeeByStudent(studentID)
	student, studentOK := s.store.StudentByID(studentID)
	if !feeOK || !studentOK {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "student fee not found")
	}
	return &models.FeeDetail{Fee: fee, FullName: student.FullName}, nil
}

// SetStatus rewrites a fee's paid flag. An unknown student ID is a silent
// no-op: the collection is left untouched and no error is reported.
func (s *FinanceService) SetStatus(ctx context.Context, studentID int, paid bool) error {
	if !s.store.SetFeeStatus(studentID, paid) {
		s.logger.Debug("fee status no-op, no matching record", zap.Int("student_id", studentID))
		return nil
	}
	if s.metrics != nil {
		s.metrics.CountMutation("set_fee_status")
	}
	return nil
}
