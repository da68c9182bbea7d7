package types

// InstallmentStatus is the settlement state of a single receivable
type InstallmentStatus string

const (
	// InstallmentStatusPending means no payment has been recorded and the
	// receivable is not past due
	InstallmentStatusPending InstallmentStatus = "pending"
	// InstallmentStatusPaid means the recorded payments cover the full amount
	InstallmentStatusPaid InstallmentStatus = "paid"
	// InstallmentStatusOverdue means the due date has passed with nothing paid
	InstallmentStatusOverdue InstallmentStatus = "overdue"
	// InstallmentStatusPartiallyPaid means some amount has been paid but a
	// balance remains
	InstallmentStatusPartiallyPaid InstallmentStatus = "partially_paid"
)

func (s InstallmentStatus) String() string {
	return string(s)
}

// Terminal reports whether the status admits no further transitions
func (s InstallmentStatus) Terminal() bool {
	return s == InstallmentStatusPaid
}

// StudentPaymentState is the rolled-up payment state of one student
type StudentPaymentState string

const (
	// StudentPaymentStateCompleted means nothing remains to be paid
	StudentPaymentStateCompleted StudentPaymentState = "completed"
	// StudentPaymentStatePartial means payments exist but a balance remains
	StudentPaymentStatePartial StudentPaymentState = "partial"
	// StudentPaymentStateOverdue means at least one receivable is overdue
	StudentPaymentStateOverdue StudentPaymentState = "overdue"
	// StudentPaymentStateUpcoming means an unpaid installment falls due within
	// the lookahead window
	StudentPaymentStateUpcoming StudentPaymentState = "upcoming"
)

func (s StudentPaymentState) String() string {
	return string(s)
}

// DefaultLookaheadDays is the window used to surface installments that are
// about to fall due
const DefaultLookaheadDays = 7
