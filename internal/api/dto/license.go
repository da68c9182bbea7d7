package dto

import (
	"time"

	"github.com/drivedesk/drivedesk/internal/domain/license"
	ierr "github.com/drivedesk/drivedesk/internal/errors"
	"github.com/drivedesk/drivedesk/internal/types"
	"github.com/shopspring/decimal"
)

// LicenseStatusResponse is the derived license state rendered by a view
type LicenseStatusResponse struct {
	CompanyID     string             `json:"company_id"`
	State         types.LicenseState `json:"state"`
	DaysRemaining int                `json:"days_remaining"`
	ExpiryDate    *time.Time         `json:"expiry_date,omitempty"`
}

// RenewLicenseRequest records the purchase of a license package or a
// custom-duration invoice. Exactly one of PackageID and CustomDays must be
// set.
type RenewLicenseRequest struct {
	CompanyID   string          `json:"company_id" binding:"required"`
	PackageID   string          `json:"package_id,omitempty"`
	CustomDays  int             `json:"custom_days,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description,omitempty"`
}

// Validate validates the renewal request
func (r *RenewLicenseRequest) Validate() error {
	if r.CompanyID == "" {
		return ierr.NewError("company_id is required").
			WithHint("Renewal must name a company").
			Mark(ierr.ErrValidation)
	}
	if r.PackageID == "" && r.CustomDays <= 0 {
		return ierr.NewError("either package_id or custom_days is required").
			WithHint("Choose a license package or a positive custom day count").
			Mark(ierr.ErrValidation)
	}
	if r.PackageID != "" && r.CustomDays > 0 {
		return ierr.NewError("package_id and custom_days are mutually exclusive").
			WithHint("Choose either a license package or a custom day count, not both").
			WithReportableDetails(map[string]interface{}{
				"package_id":  r.PackageID,
				"custom_days": r.CustomDays,
			}).
			Mark(ierr.ErrValidation)
	}
	if r.Amount.IsNegative() {
		return ierr.NewError("amount cannot be negative").
			WithHint("Renewal amount cannot be negative").
			WithReportableDetails(map[string]interface{}{
				"amount": r.Amount.String(),
			}).
			Mark(ierr.ErrValidation)
	}
	return nil
}

// RenewLicenseResponse carries the computed expiry for the caller's data
// layer to persist and render
type RenewLicenseResponse struct {
	CompanyID          string         `json:"company_id"`
	NewExpiryDate      time.Time      `json:"new_expiry_date"`
	PreviousExpiryDate *time.Time     `json:"previous_expiry_date,omitempty"`
	DaysAdded          int            `json:"days_added"`
	Status             license.Status `json:"status"`
}
