package tuition

import (
	"time"

	ierr "github.com/drivedesk/drivedesk/internal/errors"
	"github.com/drivedesk/drivedesk/internal/types"
	"github.com/shopspring/decimal"
)

// Receivable is one entry in a student's tuition ledger. There are exactly
// two variants: a dated, numbered Installment from a payment plan, and an
// undated lump Debt. The variant decides which classification rules apply;
// only dated installments can become overdue by the calendar. The interface
// is sealed by the unexported setPayment method.
type Receivable interface {
	GetID() string
	GetStudentID() string
	GetAmount() decimal.Decimal
	GetPaidAmount() decimal.Decimal
	GetPaidAt() *time.Time
	// DueDate returns the due date and true for dated installments,
	// and a zero time and false for undated debts.
	DueDate() (time.Time, bool)
	// RecordedStatus is the status currently stored on the record
	RecordedStatus() types.InstallmentStatus

	setPayment(paidAmount decimal.Decimal, paidAt time.Time, status types.InstallmentStatus)
}

// receivableBase carries the fields shared by both variants
type receivableBase struct {
	ID         string                  `json:"id"`
	StudentID  string                  `json:"student_id"`
	Amount     decimal.Decimal         `json:"amount"`
	PaidAmount decimal.Decimal         `json:"paid_amount"`
	PaidAt     *time.Time              `json:"paid_at,omitempty"`
	Status     types.InstallmentStatus `json:"status"`
	types.BaseModel
}

func (b *receivableBase) GetID() string                           { return b.ID }
func (b *receivableBase) GetStudentID() string                    { return b.StudentID }
func (b *receivableBase) GetAmount() decimal.Decimal              { return b.Amount }
func (b *receivableBase) GetPaidAmount() decimal.Decimal          { return b.PaidAmount }
func (b *receivableBase) GetPaidAt() *time.Time                   { return b.PaidAt }
func (b *receivableBase) RecordedStatus() types.InstallmentStatus { return b.Status }

func (b *receivableBase) setPayment(paidAmount decimal.Decimal, paidAt time.Time, status types.InstallmentStatus) {
	b.PaidAmount = paidAmount
	b.PaidAt = &paidAt
	b.Status = status
}

func (b *receivableBase) validate() error {
	if b.StudentID == "" {
		return ierr.NewError("student_id is required").
			WithHint("Receivable must belong to a student").
			Mark(ierr.ErrValidation)
	}
	if b.Amount.IsNegative() {
		return ierr.NewError("amount cannot be negative").
			WithHint("Receivable amount cannot be negative").
			WithReportableDetails(map[string]interface{}{
				"amount": b.Amount.String(),
			}).
			Mark(ierr.ErrValidation)
	}
	if b.PaidAmount.IsNegative() {
		return ierr.NewError("paid_amount cannot be negative").
			WithHint("Paid amount cannot be negative").
			WithReportableDetails(map[string]interface{}{
				"paid_amount": b.PaidAmount.String(),
			}).
			Mark(ierr.ErrValidation)
	}
	return nil
}

// Installment is a numbered, dated entry of a student's payment plan
type Installment struct {
	receivableBase
	Number int       `json:"installment_number"`
	DueOn  time.Time `json:"due_date"`
}

func (i *Installment) DueDate() (time.Time, bool) {
	return i.DueOn, true
}

// Validate validates the installment
func (i *Installment) Validate() error {
	if err := i.validate(); err != nil {
		return err
	}
	if i.DueOn.IsZero() {
		return ierr.NewError("due_date is required").
			WithHint("Installments must carry a due date; use a debt for undated balances").
			Mark(ierr.ErrValidation)
	}
	if i.Number <= 0 {
		return ierr.NewError("installment_number must be positive").
			WithHint("Installments are numbered starting at 1").
			WithReportableDetails(map[string]interface{}{
				"installment_number": i.Number,
			}).
			Mark(ierr.ErrValidation)
	}
	return nil
}

// Debt is an undated lump balance carried on a student's account. It keeps
// whatever status was set when it was issued and never becomes overdue by
// the calendar.
type Debt struct {
	receivableBase
	Description string `json:"description,omitempty"`
}

func (d *Debt) DueDate() (time.Time, bool) {
	return time.Time{}, false
}

// Validate validates the debt
func (d *Debt) Validate() error {
	return d.validate()
}

// NewInstallment builds a pending installment for a student's payment plan
func NewInstallment(studentID string, number int, amount decimal.Decimal, dueOn time.Time) *Installment {
	return &Installment{
		receivableBase: receivableBase{
			ID:         types.GenerateUUIDWithPrefix(types.UUIDPrefixInstallment),
			StudentID:  studentID,
			Amount:     amount,
			PaidAmount: decimal.Zero,
			Status:     types.InstallmentStatusPending,
		},
		Number: number,
		DueOn:  types.DateOnly(dueOn),
	}
}

// NewDebt builds a pending undated debt on a student's account
func NewDebt(studentID string, amount decimal.Decimal, description string) *Debt {
	return &Debt{
		receivableBase: receivableBase{
			ID:         types.GenerateUUIDWithPrefix(types.UUIDPrefixDebt),
			StudentID:  studentID,
			Amount:     amount,
			PaidAmount: decimal.Zero,
			Status:     types.InstallmentStatusPending,
		},
		Description: description,
	}
}
