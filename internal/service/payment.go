package service

import (
	"context"
	"time"

	"github.com/drivedesk/drivedesk/internal/api/dto"
	"github.com/drivedesk/drivedesk/internal/cache"
	"github.com/drivedesk/drivedesk/internal/domain/tuition"
	ierr "github.com/drivedesk/drivedesk/internal/errors"
)

const paymentSummaryCacheKey = "payment:summary"

// PaymentService derives per-student payment status, folds the portfolio
// summary and records payments against receivables
type PaymentService interface {
	GetStudentStatus(ctx context.Context, studentID string) (*dto.StudentPaymentStatusResponse, error)
	GetSummary(ctx context.Context) (*dto.PaymentSummaryResponse, error)
	RecordPayment(ctx context.Context, req dto.RecordPaymentRequest) (*dto.ReceivableResponse, error)
}

type paymentService struct {
	ServiceParams
}

// NewPaymentService creates a new payment service
func NewPaymentService(params ServiceParams) PaymentService {
	return &paymentService{ServiceParams: params}
}

// GetStudentStatus builds the payment read-model for one student from the
// ledger the repository returns
func (s *paymentService) GetStudentStatus(ctx context.Context, studentID string) (*dto.StudentPaymentStatusResponse, error) {
	if studentID == "" {
		return nil, ierr.NewError("student_id is required").
			WithHint("Payment status requires a student").
			Mark(ierr.ErrValidation)
	}

	receivables, err := s.TuitionRepo.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}

	today := s.now()
	status := tuition.BuildStudentStatus(studentID, receivables, today, s.Config.Payment.LookaheadDays)
	return dto.NewStudentPaymentStatusResponse(status, today), nil
}

// GetSummary folds every student's status into the portfolio summary.
// The result is cached with a short TTL and invalidated whenever a payment
// is recorded, so the dashboard stays cheap without going stale.
func (s *paymentService) GetSummary(ctx context.Context) (*dto.PaymentSummaryResponse, error) {
	if s.Cache != nil && s.Config.Cache.Enabled {
		if value, found := s.Cache.Get(ctx, paymentSummaryCacheKey); found {
			if cached, ok := cache.UnmarshalCacheValue[dto.PaymentSummaryResponse](value); ok {
				return cached, nil
			}
		}
	}

	students, err := s.TuitionRepo.ListStudents(ctx)
	if err != nil {
		return nil, err
	}

	today := s.now()
	summary := tuition.NewPaymentSummary()
	for _, studentID := range students {
		receivables, err := s.TuitionRepo.ListByStudent(ctx, studentID)
		if err != nil {
			return nil, err
		}
		summary.Accumulate(tuition.BuildStudentStatus(studentID, receivables, today, s.Config.Payment.LookaheadDays))
	}

	resp := dto.NewPaymentSummaryResponse(summary, today)
	if s.Cache != nil && s.Config.Cache.Enabled {
		s.Cache.Set(ctx, paymentSummaryCacheKey, resp, s.summaryTTL())
	}
	return resp, nil
}

func (s *paymentService) summaryTTL() time.Duration {
	if s.Config.Cache.TTLSeconds > 0 {
		return time.Duration(s.Config.Cache.TTLSeconds) * time.Second
	}
	return cache.ExpiryPaymentSummary
}

// RecordPayment applies a payment to a receivable, persists the updated
// record and invalidates the cached summary
func (s *paymentService) RecordPayment(ctx context.Context, req dto.RecordPaymentRequest) (*dto.ReceivableResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	receivable, err := s.TuitionRepo.Get(ctx, req.ReceivableID)
	if err != nil {
		return nil, err
	}

	today := s.now()
	paidAt := today
	if req.PaidAt != nil {
		paidAt = *req.PaidAt
	}

	if err := tuition.ApplyPayment(receivable, req.Amount, paidAt, today); err != nil {
		return nil, err
	}
	if err := s.TuitionRepo.Update(ctx, receivable); err != nil {
		return nil, err
	}

	if s.Cache != nil {
		s.Cache.Delete(ctx, paymentSummaryCacheKey)
	}

	s.Logger.Infow("payment recorded",
		"receivable_id", req.ReceivableID,
		"student_id", receivable.GetStudentID(),
		"amount", req.Amount,
		"status", receivable.RecordedStatus(),
	)

	resp := dto.NewReceivableResponse(receivable, today)
	return &resp, nil
}
