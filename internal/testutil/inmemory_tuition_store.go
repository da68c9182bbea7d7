package testutil

import (
	"context"
	"sort"

	"github.com/drivedesk/drivedesk/internal/domain/tuition"
	ierr "github.com/drivedesk/drivedesk/internal/errors"
	"github.com/samber/lo"
)

// InMemoryTuitionStore implements tuition.Repository
type InMemoryTuitionStore struct {
	*InMemoryStore[tuition.Receivable]
}

// NewInMemoryTuitionStore creates a new in-memory tuition store
func NewInMemoryTuitionStore() *InMemoryTuitionStore {
	return &InMemoryTuitionStore{InMemoryStore: NewInMemoryStore[tuition.Receivable]()}
}

// copyReceivable deep-copies either variant so callers never alias stored
// records
func copyReceivable(r tuition.Receivable) tuition.Receivable {
	switch v := r.(type) {
	case *tuition.Installment:
		copied := *v
		if v.PaidAt != nil {
			paidAt := *v.PaidAt
			copied.PaidAt = &paidAt
		}
		return &copied
	case *tuition.Debt:
		copied := *v
		if v.PaidAt != nil {
			paidAt := *v.PaidAt
			copied.PaidAt = &paidAt
		}
		return &copied
	default:
		return r
	}
}

// Add seeds a receivable into the store
func (s *InMemoryTuitionStore) Add(ctx context.Context, r tuition.Receivable) error {
	if r == nil || r.GetID() == "" {
		return ierr.NewError("receivable must carry an id").
			Mark(ierr.ErrValidation)
	}
	return s.InMemoryStore.Create(ctx, r.GetID(), copyReceivable(r))
}

func (s *InMemoryTuitionStore) Get(ctx context.Context, id string) (tuition.Receivable, error) {
	r, err := s.InMemoryStore.Get(ctx, id)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Receivable not found").
			WithReportableDetails(map[string]interface{}{
				"id": id,
			}).
			Mark(ierr.ErrNotFound)
	}
	return copyReceivable(r), nil
}

func (s *InMemoryTuitionStore) ListByStudent(ctx context.Context, studentID string) ([]tuition.Receivable, error) {
	receivables := s.InMemoryStore.List(ctx, func(r tuition.Receivable) bool {
		return r.GetStudentID() == studentID
	})

	result := lo.Map(receivables, func(r tuition.Receivable, _ int) tuition.Receivable {
		return copyReceivable(r)
	})
	sort.Slice(result, func(i, j int) bool { return result[i].GetID() < result[j].GetID() })
	return result, nil
}

func (s *InMemoryTuitionStore) ListStudents(ctx context.Context) ([]string, error) {
	receivables := s.InMemoryStore.List(ctx, nil)
	students := lo.Uniq(lo.Map(receivables, func(r tuition.Receivable, _ int) string {
		return r.GetStudentID()
	}))
	sort.Strings(students)
	return students, nil
}

func (s *InMemoryTuitionStore) Update(ctx context.Context, r tuition.Receivable) error {
	if r == nil || r.GetID() == "" {
		return ierr.NewError("receivable must carry an id").
			Mark(ierr.ErrValidation)
	}
	if err := s.InMemoryStore.Update(ctx, r.GetID(), copyReceivable(r)); err != nil {
		return ierr.WithError(err).
			WithHint("Receivable not found").
			WithReportableDetails(map[string]interface{}{
				"id": r.GetID(),
			}).
			Mark(ierr.ErrNotFound)
	}
	return nil
}
