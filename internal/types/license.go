package types

import (
	ierr "github.com/drivedesk/drivedesk/internal/errors"
)

// LicenseState is the derived state of a company's license window
type LicenseState string

const (
	// LicenseStateValid means the expiry date is comfortably in the future
	LicenseStateValid LicenseState = "valid"
	// LicenseStateExpiring means the expiry date falls within the view's threshold
	LicenseStateExpiring LicenseState = "expiring"
	// LicenseStateExpired means the expiry date has passed
	LicenseStateExpired LicenseState = "expired"
	// LicenseStateNone means the company has no expiry date on record
	LicenseStateNone LicenseState = "none"
)

func (s LicenseState) String() string {
	return string(s)
}

// LicenseView names a screen that renders license state. The company list
// warns a month ahead while the renewal checkout only warns a week ahead,
// so the expiring threshold is configured per view rather than hardcoded
// at each call site.
type LicenseView string

const (
	LicenseViewCompanyList    LicenseView = "company_list"
	LicenseViewPaymentRenewal LicenseView = "payment_renewal"
)

func (v LicenseView) Validate() error {
	switch v {
	case LicenseViewCompanyList, LicenseViewPaymentRenewal:
		return nil
	default:
		return ierr.NewError("invalid license view").
			WithHint("License view must be company_list or payment_renewal").
			WithReportableDetails(map[string]interface{}{
				"view": v,
			}).
			Mark(ierr.ErrValidation)
	}
}

const (
	// DefaultCompanyListThresholdDays is the expiring warning window on the
	// company list screen
	DefaultCompanyListThresholdDays = 30
	// DefaultRenewalThresholdDays is the expiring warning window on the
	// payment renewal screen
	DefaultRenewalThresholdDays = 7
	// MonthDays is the fixed length of a license month. Packages are priced
	// in 30-day months regardless of the calendar, so a 12-month package
	// adds exactly 360 days.
	MonthDays = 30
)
