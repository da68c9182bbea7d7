package tuition

import (
	"time"

	ierr "github.com/drivedesk/drivedesk/internal/errors"
	"github.com/drivedesk/drivedesk/internal/types"
	"github.com/shopspring/decimal"
)

// Classify derives the settlement status of a receivable on the given day.
// Recorded payments win over calendar lateness: a partially paid installment
// is reported as partially_paid even when its due date has passed. Undated
// debts keep their recorded status while unpaid and can only be marked
// overdue explicitly, never by the calendar.
func Classify(r Receivable, today time.Time) types.InstallmentStatus {
	amount := r.GetAmount()
	paid := r.GetPaidAmount()

	if paid.GreaterThanOrEqual(amount) {
		return types.InstallmentStatusPaid
	}
	if paid.IsPositive() {
		return types.InstallmentStatusPartiallyPaid
	}

	if due, dated := r.DueDate(); dated {
		if types.DateOnly(due).Before(types.DateOnly(today)) {
			return types.InstallmentStatusOverdue
		}
		return types.InstallmentStatusPending
	}

	// Undated debt: trust whatever was set upstream
	if s := r.RecordedStatus(); s != "" {
		return s
	}
	return types.InstallmentStatusPending
}

// RemainingAmount returns the unpaid balance of a receivable, clamped to
// zero when payments exceed the amount owed.
func RemainingAmount(r Receivable) decimal.Decimal {
	remaining := r.GetAmount().Sub(r.GetPaidAmount())
	if remaining.IsNegative() {
		return decimal.Zero
	}
	return remaining
}

// ApplyPayment records a payment against a receivable and recomputes its
// stored status. Fully paid receivables are terminal; there is no path back
// to pending. A late payment cures overdue status.
func ApplyPayment(r Receivable, amount decimal.Decimal, paidAt time.Time, today time.Time) error {
	if !amount.IsPositive() {
		return ierr.NewError("payment amount must be positive").
			WithHint("Payment amount must be greater than zero").
			WithReportableDetails(map[string]interface{}{
				"amount": amount.String(),
			}).
			Mark(ierr.ErrValidation)
	}

	if Classify(r, today).Terminal() {
		return ierr.NewError("receivable is already fully paid").
			WithHint("No further payments can be recorded on a paid receivable").
			WithReportableDetails(map[string]interface{}{
				"receivable_id": r.GetID(),
			}).
			Mark(ierr.ErrInvalidOperation)
	}

	newPaid := r.GetPaidAmount().Add(amount)

	var newStatus types.InstallmentStatus
	switch {
	case newPaid.GreaterThanOrEqual(r.GetAmount()):
		newStatus = types.InstallmentStatusPaid
	default:
		newStatus = types.InstallmentStatusPartiallyPaid
	}

	r.setPayment(newPaid, paidAt, newStatus)
	return nil
}
