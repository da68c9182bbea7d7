package dto

import (
	"time"

	"github.com/drivedesk/drivedesk/internal/domain/tuition"
	ierr "github.com/drivedesk/drivedesk/internal/errors"
	"github.com/drivedesk/drivedesk/internal/types"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// ReceivableRecord is the flat record collaborators hold for one ledger
// entry. A present due date makes it a numbered installment; an absent one
// makes it an undated debt. ToDomain picks the variant.
type ReceivableRecord struct {
	ID                string                  `json:"id,omitempty"`
	StudentID         string                  `json:"student_id" binding:"required"`
	InstallmentNumber *int                    `json:"installment_number,omitempty"`
	Amount            decimal.Decimal         `json:"amount"`
	PaidAmount        decimal.Decimal         `json:"paid_amount"`
	DueDate           *time.Time              `json:"due_date,omitempty"`
	PaidAt            *time.Time              `json:"paid_at,omitempty"`
	Status            types.InstallmentStatus `json:"status,omitempty"`
	Description       string                  `json:"description,omitempty"`
}

// Validate is the caller-level validation layer: records that fail here
// never reach the engine.
func (r *ReceivableRecord) Validate() error {
	if r.StudentID == "" {
		return ierr.NewError("student_id is required").
			WithHint("Receivable must belong to a student").
			Mark(ierr.ErrValidation)
	}
	if r.Amount.IsNegative() {
		return ierr.NewError("amount cannot be negative").
			WithHint("Receivable amount cannot be negative").
			WithReportableDetails(map[string]interface{}{
				"amount": r.Amount.String(),
			}).
			Mark(ierr.ErrValidation)
	}
	if r.PaidAmount.IsNegative() {
		return ierr.NewError("paid_amount cannot be negative").
			WithHint("Paid amount cannot be negative").
			WithReportableDetails(map[string]interface{}{
				"paid_amount": r.PaidAmount.String(),
			}).
			Mark(ierr.ErrValidation)
	}
	if r.DueDate == nil && r.InstallmentNumber != nil {
		return ierr.NewError("installment_number requires a due_date").
			WithHint("Numbered installments must carry a due date").
			Mark(ierr.ErrValidation)
	}
	return nil
}

// ToDomain converts the flat record into the matching receivable variant
func (r *ReceivableRecord) ToDomain() (tuition.Receivable, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}

	if r.DueDate != nil {
		inst := tuition.NewInstallment(r.StudentID, lo.FromPtrOr(r.InstallmentNumber, 1), r.Amount, *r.DueDate)
		if r.ID != "" {
			inst.ID = r.ID
		}
		inst.PaidAmount = r.PaidAmount
		inst.PaidAt = r.PaidAt
		if r.Status != "" {
			inst.Status = r.Status
		}
		return inst, nil
	}

	debt := tuition.NewDebt(r.StudentID, r.Amount, r.Description)
	if r.ID != "" {
		debt.ID = r.ID
	}
	debt.PaidAmount = r.PaidAmount
	debt.PaidAt = r.PaidAt
	if r.Status != "" {
		debt.Status = r.Status
	}
	return debt, nil
}

// RecordPaymentRequest records a payment against one receivable
type RecordPaymentRequest struct {
	ReceivableID string          `json:"receivable_id" binding:"required"`
	Amount       decimal.Decimal `json:"amount"`
	PaidAt       *time.Time      `json:"paid_at,omitempty"`
}

// Validate validates the payment request
func (r *RecordPaymentRequest) Validate() error {
	if r.ReceivableID == "" {
		return ierr.NewError("receivable_id is required").
			WithHint("Payment must name a receivable").
			Mark(ierr.ErrValidation)
	}
	if !r.Amount.IsPositive() {
		return ierr.NewError("amount must be positive").
			WithHint("Payment amount must be greater than zero").
			WithReportableDetails(map[string]interface{}{
				"amount": r.Amount.String(),
			}).
			Mark(ierr.ErrValidation)
	}
	return nil
}

// ReceivableResponse is the rendered shape of one ledger entry
type ReceivableResponse struct {
	ID                string                  `json:"id"`
	StudentID         string                  `json:"student_id"`
	InstallmentNumber *int                    `json:"installment_number,omitempty"`
	Amount            decimal.Decimal         `json:"amount"`
	PaidAmount        decimal.Decimal         `json:"paid_amount"`
	RemainingAmount   decimal.Decimal         `json:"remaining_amount"`
	DueDate           *time.Time              `json:"due_date,omitempty"`
	PaidAt            *time.Time              `json:"paid_at,omitempty"`
	Status            types.InstallmentStatus `json:"status"`
}

// NewReceivableResponse renders a receivable with its status as of today
func NewReceivableResponse(r tuition.Receivable, today time.Time) ReceivableResponse {
	resp := ReceivableResponse{
		ID:              r.GetID(),
		StudentID:       r.GetStudentID(),
		Amount:          r.GetAmount(),
		PaidAmount:      r.GetPaidAmount(),
		RemainingAmount: tuition.RemainingAmount(r),
		PaidAt:          r.GetPaidAt(),
		Status:          tuition.Classify(r, today),
	}
	if due, dated := r.DueDate(); dated {
		resp.DueDate = &due
	}
	if inst, ok := r.(*tuition.Installment); ok {
		resp.InstallmentNumber = lo.ToPtr(inst.Number)
	}
	return resp
}

// StudentPaymentStatusResponse is the per-student payment read-model
type StudentPaymentStatusResponse struct {
	StudentID            string                    `json:"student_id"`
	TotalAmount          decimal.Decimal           `json:"total_amount"`
	PaidAmount           decimal.Decimal           `json:"paid_amount"`
	RemainingAmount      decimal.Decimal           `json:"remaining_amount"`
	OverdueReceivables   []ReceivableResponse      `json:"overdue_receivables"`
	UpcomingInstallments []ReceivableResponse      `json:"upcoming_installments"`
	OverdueDays          int                       `json:"overdue_days"`
	State                types.StudentPaymentState `json:"state"`
}

// NewStudentPaymentStatusResponse renders a student's payment status
func NewStudentPaymentStatusResponse(s *tuition.StudentPaymentStatus, today time.Time) *StudentPaymentStatusResponse {
	toResponses := func(receivables []tuition.Receivable) []ReceivableResponse {
		return lo.Map(receivables, func(r tuition.Receivable, _ int) ReceivableResponse {
			return NewReceivableResponse(r, today)
		})
	}

	return &StudentPaymentStatusResponse{
		StudentID:            s.StudentID,
		TotalAmount:          s.TotalAmount,
		PaidAmount:           s.PaidAmount,
		RemainingAmount:      s.RemainingAmount,
		OverdueReceivables:   toResponses(s.OverdueReceivables),
		UpcomingInstallments: toResponses(s.UpcomingInstallments),
		OverdueDays:          s.OverdueDays,
		State:                s.State,
	}
}

// PaymentSummaryResponse is the portfolio-level rollup rendered on the
// dashboard
type PaymentSummaryResponse struct {
	TotalStudents        int             `json:"total_students"`
	OverdueStudents      int             `json:"overdue_students"`
	UpcomingPayments     int             `json:"upcoming_payments"`
	TotalOverdueAmount   decimal.Decimal `json:"total_overdue_amount"`
	TotalUpcomingAmount  decimal.Decimal `json:"total_upcoming_amount"`
	TotalRemainingAmount decimal.Decimal `json:"total_remaining_amount"`
	GeneratedAt          time.Time       `json:"generated_at"`
}

// NewPaymentSummaryResponse renders the portfolio summary
func NewPaymentSummaryResponse(s *tuition.PaymentSummary, generatedAt time.Time) *PaymentSummaryResponse {
	return &PaymentSummaryResponse{
		TotalStudents:        s.TotalStudents,
		OverdueStudents:      s.OverdueStudents,
		UpcomingPayments:     s.UpcomingPayments,
		TotalOverdueAmount:   s.TotalOverdueAmount,
		TotalUpcomingAmount:  s.TotalUpcomingAmount,
		TotalRemainingAmount: s.TotalRemainingAmount,
		GeneratedAt:          generatedAt,
	}
}
