package tuition

import (
	"testing"

	"github.com/drivedesk/drivedesk/internal/types"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildStudentStatus_EmptyLedger(t *testing.T) {
	status := BuildStudentStatus("student-1", nil, day("2025-06-15"), types.DefaultLookaheadDays)

	assert.Equal(t, types.StudentPaymentStateCompleted, status.State)
	assert.True(t, status.TotalAmount.IsZero())
	assert.True(t, status.PaidAmount.IsZero())
	assert.True(t, status.RemainingAmount.IsZero())
	assert.Empty(t, status.OverdueReceivables)
	assert.Empty(t, status.UpcomingInstallments)
	assert.Zero(t, status.OverdueDays)
}

func TestBuildStudentStatus_SingleOverdueInstallment(t *testing.T) {
	today := day("2025-06-15")
	inst := NewInstallment("student-1", 1, dec("500"), day("2025-06-05")) // 10 days ago

	status := BuildStudentStatus("student-1", []Receivable{inst}, today, types.DefaultLookaheadDays)

	assert.Equal(t, types.StudentPaymentStateOverdue, status.State)
	require.Len(t, status.OverdueReceivables, 1)
	assert.Equal(t, inst.GetID(), status.OverdueReceivables[0].GetID())
	assert.Equal(t, 10, status.OverdueDays)
	assert.True(t, status.RemainingAmount.Equal(dec("500")))
}

func TestBuildStudentStatus_Buckets(t *testing.T) {
	today := day("2025-06-15")

	overdueLate := NewInstallment("student-1", 2, dec("200"), day("2025-06-10"))
	overdueEarly := NewInstallment("student-1", 1, dec("200"), day("2025-05-01"))
	dueTomorrow := NewInstallment("student-1", 3, dec("200"), day("2025-06-16"))
	dueInWindow := NewInstallment("student-1", 4, dec("200"), day("2025-06-22"))
	dueBeyondWindow := NewInstallment("student-1", 5, dec("200"), day("2025-06-23"))
	paid := NewInstallment("student-1", 6, dec("200"), day("2025-04-01"))
	paid.PaidAmount = dec("200")

	receivables := []Receivable{dueBeyondWindow, overdueLate, paid, dueInWindow, overdueEarly, dueTomorrow}
	status := BuildStudentStatus("student-1", receivables, today, 7)

	// Overdue bucket is sorted by due date ascending
	require.Len(t, status.OverdueReceivables, 2)
	assert.Equal(t, overdueEarly.GetID(), status.OverdueReceivables[0].GetID())
	assert.Equal(t, overdueLate.GetID(), status.OverdueReceivables[1].GetID())

	// OverdueDays counts from the earliest overdue due date
	assert.Equal(t, 45, status.OverdueDays)

	// Upcoming holds only pending installments inside the lookahead window
	require.Len(t, status.UpcomingInstallments, 2)
	assert.Equal(t, dueTomorrow.GetID(), status.UpcomingInstallments[0].GetID())
	assert.Equal(t, dueInWindow.GetID(), status.UpcomingInstallments[1].GetID())

	assert.Equal(t, types.StudentPaymentStateOverdue, status.State)
	assert.True(t, status.TotalAmount.Equal(dec("1200")))
	assert.True(t, status.PaidAmount.Equal(dec("200")))
	assert.True(t, status.RemainingAmount.Equal(dec("1000")))
}

func TestBuildStudentStatus_StatePrecedence(t *testing.T) {
	today := day("2025-06-15")

	t.Run("overdue wins over everything", func(t *testing.T) {
		overdue := NewInstallment("s", 1, dec("100"), day("2025-06-01"))
		partiallyPaid := NewInstallment("s", 2, dec("100"), day("2025-07-01"))
		partiallyPaid.PaidAmount = dec("50")

		status := BuildStudentStatus("s", []Receivable{partiallyPaid, overdue}, today, 7)
		assert.Equal(t, types.StudentPaymentStateOverdue, status.State)
	})

	t.Run("an explicitly overdue debt forces overdue state without overdue days", func(t *testing.T) {
		debt := NewDebt("s", dec("100"), "")
		debt.Status = types.InstallmentStatusOverdue

		status := BuildStudentStatus("s", []Receivable{debt}, today, 7)
		assert.Equal(t, types.StudentPaymentStateOverdue, status.State)
		assert.Zero(t, status.OverdueDays)
	})

	t.Run("upcoming beats partial", func(t *testing.T) {
		partiallyPaid := NewInstallment("s", 1, dec("100"), day("2025-08-01"))
		partiallyPaid.PaidAmount = dec("50")
		upcoming := NewInstallment("s", 2, dec("100"), day("2025-06-18"))

		status := BuildStudentStatus("s", []Receivable{partiallyPaid, upcoming}, today, 7)
		assert.Equal(t, types.StudentPaymentStateUpcoming, status.State)
	})

	t.Run("partial when paid but balance remains", func(t *testing.T) {
		partiallyPaid := NewInstallment("s", 1, dec("100"), day("2025-08-01"))
		partiallyPaid.PaidAmount = dec("50")

		status := BuildStudentStatus("s", []Receivable{partiallyPaid}, today, 7)
		assert.Equal(t, types.StudentPaymentStatePartial, status.State)
	})

	t.Run("completed when everything is settled", func(t *testing.T) {
		paid := NewInstallment("s", 1, dec("100"), day("2025-05-01"))
		paid.PaidAmount = dec("100")

		status := BuildStudentStatus("s", []Receivable{paid}, today, 7)
		assert.Equal(t, types.StudentPaymentStateCompleted, status.State)
		assert.True(t, status.RemainingAmount.IsZero())
	})
}

func TestBuildStudentStatus_Idempotent(t *testing.T) {
	today := day("2025-06-15")
	receivables := []Receivable{
		NewInstallment("s", 1, dec("100"), day("2025-06-01")),
		NewInstallment("s", 2, dec("100"), day("2025-06-18")),
		NewDebt("s", dec("250"), "simulator hours"),
	}

	first := BuildStudentStatus("s", receivables, today, 7)
	second := BuildStudentStatus("s", receivables, today, 7)

	assert.Equal(t, first.State, second.State)
	assert.Equal(t, first.OverdueDays, second.OverdueDays)
	assert.True(t, first.TotalAmount.Equal(second.TotalAmount))
	assert.True(t, first.PaidAmount.Equal(second.PaidAmount))
	assert.True(t, first.RemainingAmount.Equal(second.RemainingAmount))
	assert.Equal(t, len(first.OverdueReceivables), len(second.OverdueReceivables))
	assert.Equal(t, len(first.UpcomingInstallments), len(second.UpcomingInstallments))
}

func TestBuildStudentStatus_OverpaymentClamps(t *testing.T) {
	inst := NewInstallment("s", 1, dec("100"), day("2025-07-01"))
	inst.PaidAmount = dec("150")

	status := BuildStudentStatus("s", []Receivable{inst}, day("2025-06-15"), 7)
	assert.True(t, status.RemainingAmount.IsZero())
	assert.Equal(t, types.StudentPaymentStateCompleted, status.State)
}

func TestAggregateSummary(t *testing.T) {
	today := day("2025-06-15")

	// Three students with remaining amounts 200, 0 and 500
	owes200 := BuildStudentStatus("s1", []Receivable{
		NewInstallment("s1", 1, dec("200"), day("2025-07-01")),
	}, today, 7)

	settledInst := NewInstallment("s2", 1, dec("300"), day("2025-05-01"))
	settledInst.PaidAmount = dec("300")
	settled := BuildStudentStatus("s2", []Receivable{settledInst}, today, 7)

	owes500 := BuildStudentStatus("s3", []Receivable{
		NewInstallment("s3", 1, dec("500"), day("2025-06-01")),
	}, today, 7)

	summary := AggregateSummary([]*StudentPaymentStatus{owes200, settled, owes500})

	assert.Equal(t, 2, summary.TotalStudents)
	assert.Equal(t, 1, summary.OverdueStudents)
	assert.True(t, summary.TotalRemainingAmount.Equal(dec("700")))
	assert.True(t, summary.TotalOverdueAmount.Equal(dec("500")))
}

func TestAggregateSummary_OverdueAmountNetsPayments(t *testing.T) {
	today := day("2025-06-15")

	// Overdue debt marked upstream, partially recovered since
	debt := NewDebt("s1", dec("400"), "")
	debt.Status = types.InstallmentStatusOverdue

	unpaid := NewInstallment("s1", 1, dec("600"), day("2025-06-01"))

	status := BuildStudentStatus("s1", []Receivable{debt, unpaid}, today, 7)
	summary := AggregateSummary([]*StudentPaymentStatus{status})

	assert.Equal(t, 1, summary.OverdueStudents)
	assert.True(t, summary.TotalOverdueAmount.Equal(dec("1000")))
}

func TestAggregateSummary_IncrementalMatchesBatch(t *testing.T) {
	today := day("2025-06-15")

	statuses := []*StudentPaymentStatus{
		BuildStudentStatus("s1", []Receivable{
			NewInstallment("s1", 1, dec("200"), day("2025-06-01")),
			NewInstallment("s1", 2, dec("150"), day("2025-06-18")),
		}, today, 7),
		BuildStudentStatus("s2", []Receivable{
			NewDebt("s2", dec("99.99"), ""),
		}, today, 7),
		BuildStudentStatus("s3", nil, today, 7),
		BuildStudentStatus("s4", []Receivable{
			NewInstallment("s4", 1, dec("0.01"), day("2025-06-20")),
		}, today, 7),
	}

	batch := AggregateSummary(statuses)

	incremental := NewPaymentSummary()
	for _, s := range statuses {
		incremental.Accumulate(s)
	}

	assert.Equal(t, batch.TotalStudents, incremental.TotalStudents)
	assert.Equal(t, batch.OverdueStudents, incremental.OverdueStudents)
	assert.Equal(t, batch.UpcomingPayments, incremental.UpcomingPayments)
	assert.True(t, batch.TotalOverdueAmount.Equal(incremental.TotalOverdueAmount))
	assert.True(t, batch.TotalUpcomingAmount.Equal(incremental.TotalUpcomingAmount))
	assert.True(t, batch.TotalRemainingAmount.Equal(incremental.TotalRemainingAmount))

	// The aggregate total is the exact sum of per-student remaining amounts
	expected := lo.Reduce(statuses, func(acc decimal.Decimal, s *StudentPaymentStatus, _ int) decimal.Decimal {
		return acc.Add(s.RemainingAmount)
	}, decimal.Zero)
	assert.True(t, batch.TotalRemainingAmount.Equal(expected))
}
