package tuition

import "context"

// Repository provides access to a student ledger of receivables.
// Persistence itself lives with the caller; the engine reads ledgers and
// writes back recorded payments through this interface.
type Repository interface {
	Get(ctx context.Context, id string) (Receivable, error)
	ListByStudent(ctx context.Context, studentID string) ([]Receivable, error)
	ListStudents(ctx context.Context) ([]string, error)
	Update(ctx context.Context, r Receivable) error
}
