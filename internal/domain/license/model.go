package license

import (
	"time"

	ierr "github.com/drivedesk/drivedesk/internal/errors"
	"github.com/drivedesk/drivedesk/internal/types"
	"github.com/shopspring/decimal"
)

// License represents a company's platform license record
type License struct {
	ID        string `json:"id"`
	CompanyID string `json:"company_id"`
	Window
	types.BaseModel
}

// Window is the registration-to-expiry range a license is valid for.
// ExpiryDate is nil for companies that were onboarded but never invoiced.
type Window struct {
	RegistrationDate time.Time  `json:"registration_date"`
	ExpiryDate       *time.Time `json:"expiry_date,omitempty"`
}

// Status is the derived license state for one view
type Status struct {
	State types.LicenseState `json:"state"`
	// DaysRemaining is negative when the license has already expired and
	// zero when it expires today. It is always zero for state none.
	DaysRemaining int `json:"days_remaining"`
}

// Package is a read-only catalog entry a company can purchase to extend
// its license. DurationMonths may be fractional; a 7-day trial is encoded
// as 7/30 months.
type Package struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	DurationMonths decimal.Decimal `json:"duration_months"`
	Price          decimal.Decimal `json:"price"`
	types.BaseModel
}

// Validate validates the package
func (p *Package) Validate() error {
	if p.Name == "" {
		return ierr.NewError("name is required").
			WithHint("Package name is required").
			Mark(ierr.ErrValidation)
	}
	if !p.DurationMonths.IsPositive() {
		return ierr.NewError("duration_months must be positive").
			WithHint("Package duration must be greater than zero").
			WithReportableDetails(map[string]interface{}{
				"duration_months": p.DurationMonths.String(),
			}).
			Mark(ierr.ErrValidation)
	}
	if p.Price.IsNegative() {
		return ierr.NewError("price cannot be negative").
			WithHint("Package price cannot be negative").
			WithReportableDetails(map[string]interface{}{
				"price": p.Price.String(),
			}).
			Mark(ierr.ErrValidation)
	}
	return nil
}

// DurationDays converts the package duration to whole days using the fixed
// 30-day month, rounding to the nearest day.
func (p *Package) DurationDays() int {
	return int(p.DurationMonths.Mul(decimal.NewFromInt(types.MonthDays)).Round(0).IntPart())
}
