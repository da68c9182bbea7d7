package tuition

import (
	"sort"
	"time"

	"github.com/drivedesk/drivedesk/internal/types"
	"github.com/shopspring/decimal"
)

// StudentPaymentStatus is the derived payment read-model for one student
type StudentPaymentStatus struct {
	StudentID       string          `json:"student_id"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
	PaidAmount      decimal.Decimal `json:"paid_amount"`
	RemainingAmount decimal.Decimal `json:"remaining_amount"`
	// OverdueReceivables holds overdue entries ordered by due date, with
	// explicitly overdue undated debts last
	OverdueReceivables []Receivable `json:"overdue_receivables"`
	// UpcomingInstallments holds unpaid installments falling due within the
	// lookahead window, ordered by due date
	UpcomingInstallments []Receivable `json:"upcoming_installments"`
	// OverdueDays counts days since the earliest overdue due date, zero when
	// nothing dated is overdue
	OverdueDays int                       `json:"overdue_days"`
	State       types.StudentPaymentState `json:"state"`
}

// PaymentSummary is the portfolio-level fold over many students
type PaymentSummary struct {
	TotalStudents        int             `json:"total_students"`
	OverdueStudents      int             `json:"overdue_students"`
	UpcomingPayments     int             `json:"upcoming_payments"`
	TotalOverdueAmount   decimal.Decimal `json:"total_overdue_amount"`
	TotalUpcomingAmount  decimal.Decimal `json:"total_upcoming_amount"`
	TotalRemainingAmount decimal.Decimal `json:"total_remaining_amount"`
}

// NewPaymentSummary returns an all-zero summary
func NewPaymentSummary() *PaymentSummary {
	return &PaymentSummary{
		TotalOverdueAmount:   decimal.Zero,
		TotalUpcomingAmount:  decimal.Zero,
		TotalRemainingAmount: decimal.Zero,
	}
}

// BuildStudentStatus folds a student's receivables into their payment
// read-model. The result is a pure function of the inputs and the given
// day; calling it again with the same arguments yields the same output.
// An empty ledger classifies as completed with all-zero amounts.
func BuildStudentStatus(studentID string, receivables []Receivable, today time.Time, lookaheadDays int) *StudentPaymentStatus {
	status := &StudentPaymentStatus{
		StudentID:            studentID,
		TotalAmount:          decimal.Zero,
		PaidAmount:           decimal.Zero,
		RemainingAmount:      decimal.Zero,
		OverdueReceivables:   []Receivable{},
		UpcomingInstallments: []Receivable{},
	}

	todayDate := types.DateOnly(today)
	lookaheadEnd := types.AddDays(today, lookaheadDays)

	for _, r := range receivables {
		status.TotalAmount = status.TotalAmount.Add(r.GetAmount())
		status.PaidAmount = status.PaidAmount.Add(r.GetPaidAmount())

		switch Classify(r, today) {
		case types.InstallmentStatusOverdue:
			status.OverdueReceivables = append(status.OverdueReceivables, r)
		case types.InstallmentStatusPending:
			if due, dated := r.DueDate(); dated {
				dueDate := types.DateOnly(due)
				if !dueDate.Before(todayDate) && !dueDate.After(lookaheadEnd) {
					status.UpcomingInstallments = append(status.UpcomingInstallments, r)
				}
			}
		}
	}

	sortByDueDate(status.OverdueReceivables)
	sortByDueDate(status.UpcomingInstallments)

	status.RemainingAmount = status.TotalAmount.Sub(status.PaidAmount)
	if status.RemainingAmount.IsNegative() {
		status.RemainingAmount = decimal.Zero
	}

	for _, r := range status.OverdueReceivables {
		if due, dated := r.DueDate(); dated {
			status.OverdueDays = types.DaysBetween(due, today)
			break
		}
	}

	switch {
	case len(status.OverdueReceivables) > 0:
		status.State = types.StudentPaymentStateOverdue
	case len(status.UpcomingInstallments) > 0 && status.RemainingAmount.IsPositive():
		status.State = types.StudentPaymentStateUpcoming
	case status.PaidAmount.IsPositive() && status.RemainingAmount.IsPositive():
		status.State = types.StudentPaymentStatePartial
	default:
		status.State = types.StudentPaymentStateCompleted
	}

	return status
}

// sortByDueDate orders receivables by due date ascending, keeping undated
// entries at the end in their incoming order
func sortByDueDate(receivables []Receivable) {
	sort.SliceStable(receivables, func(i, j int) bool {
		di, datedI := receivables[i].DueDate()
		dj, datedJ := receivables[j].DueDate()
		if !datedI {
			return false
		}
		if !datedJ {
			return true
		}
		return di.Before(dj)
	})
}

// AggregateSummary folds many students' read-models into the portfolio
// summary. The fold is a plain sum, so batching and incremental
// accumulation produce identical totals.
func AggregateSummary(statuses []*StudentPaymentStatus) *PaymentSummary {
	summary := NewPaymentSummary()
	for _, s := range statuses {
		summary.Accumulate(s)
	}
	return summary
}

// Accumulate adds one student's read-model to the summary
func (p *PaymentSummary) Accumulate(s *StudentPaymentStatus) {
	if s == nil {
		return
	}

	if s.RemainingAmount.IsPositive() {
		p.TotalStudents++
	}
	if s.State == types.StudentPaymentStateOverdue {
		p.OverdueStudents++
	}
	p.UpcomingPayments += len(s.UpcomingInstallments)

	for _, r := range s.OverdueReceivables {
		p.TotalOverdueAmount = p.TotalOverdueAmount.Add(RemainingAmount(r))
	}
	for _, r := range s.UpcomingInstallments {
		p.TotalUpcomingAmount = p.TotalUpcomingAmount.Add(r.GetAmount())
	}
	p.TotalRemainingAmount = p.TotalRemainingAmount.Add(s.RemainingAmount)
}
