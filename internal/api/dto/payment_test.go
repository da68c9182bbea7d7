package dto

import (
	"testing"
	"time"

	"github.com/drivedesk/drivedesk/internal/domain/tuition"
	ierr "github.com/drivedesk/drivedesk/internal/errors"
	"github.com/drivedesk/drivedesk/internal/types"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestReceivableRecord_ToDomain(t *testing.T) {
	t.Run("a due date makes an installment", func(t *testing.T) {
		record := &ReceivableRecord{
			StudentID:         "student-1",
			InstallmentNumber: lo.ToPtr(3),
			Amount:            decimal.NewFromInt(1000),
			PaidAmount:        decimal.NewFromInt(400),
			DueDate:           lo.ToPtr(day("2025-07-01")),
		}

		recv, err := record.ToDomain()
		require.NoError(t, err)

		inst, ok := recv.(*tuition.Installment)
		require.True(t, ok)
		assert.Equal(t, 3, inst.Number)
		assert.True(t, inst.GetAmount().Equal(decimal.NewFromInt(1000)))
		assert.True(t, inst.GetPaidAmount().Equal(decimal.NewFromInt(400)))

		due, dated := recv.DueDate()
		assert.True(t, dated)
		assert.Equal(t, day("2025-07-01"), due)
	})

	t.Run("no due date makes a debt", func(t *testing.T) {
		record := &ReceivableRecord{
			StudentID:   "student-1",
			Amount:      decimal.NewFromInt(500),
			Status:      types.InstallmentStatusOverdue,
			Description: "license invoice carryover",
		}

		recv, err := record.ToDomain()
		require.NoError(t, err)

		debt, ok := recv.(*tuition.Debt)
		require.True(t, ok)
		assert.Equal(t, "license invoice carryover", debt.Description)
		assert.Equal(t, types.InstallmentStatusOverdue, recv.RecordedStatus())

		_, dated := recv.DueDate()
		assert.False(t, dated)
	})

	t.Run("missing installment number defaults to one", func(t *testing.T) {
		record := &ReceivableRecord{
			StudentID: "student-1",
			Amount:    decimal.NewFromInt(100),
			DueDate:   lo.ToPtr(day("2025-07-01")),
		}

		recv, err := record.ToDomain()
		require.NoError(t, err)
		assert.Equal(t, 1, recv.(*tuition.Installment).Number)
	})

	t.Run("an explicit id is kept", func(t *testing.T) {
		record := &ReceivableRecord{
			ID:        "inst_existing",
			StudentID: "student-1",
			Amount:    decimal.NewFromInt(100),
			DueDate:   lo.ToPtr(day("2025-07-01")),
		}

		recv, err := record.ToDomain()
		require.NoError(t, err)
		assert.Equal(t, "inst_existing", recv.GetID())
	})

	t.Run("invalid records are rejected before reaching the engine", func(t *testing.T) {
		tests := []struct {
			name   string
			record ReceivableRecord
		}{
			{"missing student", ReceivableRecord{Amount: decimal.NewFromInt(10)}},
			{"negative amount", ReceivableRecord{StudentID: "s", Amount: decimal.NewFromInt(-10)}},
			{"negative paid amount", ReceivableRecord{StudentID: "s", Amount: decimal.NewFromInt(10), PaidAmount: decimal.NewFromInt(-1)}},
			{"number without due date", ReceivableRecord{StudentID: "s", Amount: decimal.NewFromInt(10), InstallmentNumber: lo.ToPtr(1)}},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := tt.record.ToDomain()
				require.Error(t, err)
				assert.True(t, ierr.IsValidation(err))
			})
		}
	})
}

func TestRenewLicenseRequest_Validate(t *testing.T) {
	valid := RenewLicenseRequest{CompanyID: "c", PackageID: "pkg_1", Amount: decimal.NewFromInt(100)}
	require.NoError(t, valid.Validate())

	custom := RenewLicenseRequest{CompanyID: "c", CustomDays: 14}
	require.NoError(t, custom.Validate())

	tests := []struct {
		name string
		req  RenewLicenseRequest
	}{
		{"missing company", RenewLicenseRequest{PackageID: "pkg_1"}},
		{"neither package nor days", RenewLicenseRequest{CompanyID: "c"}},
		{"both package and days", RenewLicenseRequest{CompanyID: "c", PackageID: "pkg_1", CustomDays: 5}},
		{"negative amount", RenewLicenseRequest{CompanyID: "c", CustomDays: 5, Amount: decimal.NewFromInt(-1)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			require.Error(t, err)
			assert.True(t, ierr.IsValidation(err))
		})
	}
}
