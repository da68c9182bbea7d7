package license

import (
	"time"

	"github.com/drivedesk/drivedesk/internal/types"
)

// ClassifyWindow derives the license state from a window and a reference
// day. All comparisons are date-only; the hour the check runs at never
// shifts the result. The function is total: a missing or zero expiry date
// classifies as none rather than failing.
func ClassifyWindow(w Window, today time.Time, expiringThresholdDays int) Status {
	if w.ExpiryDate == nil || w.ExpiryDate.IsZero() {
		return Status{State: types.LicenseStateNone}
	}

	daysRemaining := types.DaysBetween(today, *w.ExpiryDate)
	switch {
	case daysRemaining < 0:
		return Status{State: types.LicenseStateExpired, DaysRemaining: daysRemaining}
	case daysRemaining <= expiringThresholdDays:
		return Status{State: types.LicenseStateExpiring, DaysRemaining: daysRemaining}
	default:
		return Status{State: types.LicenseStateValid, DaysRemaining: daysRemaining}
	}
}

// RenewalAnchor returns the date a renewal extends from: the current expiry
// when the license is still valid, otherwise today. Renewing early keeps the
// remaining paid-for days; renewing late starts fresh instead of producing a
// window that is already partly consumed.
func RenewalAnchor(w Window, today time.Time) time.Time {
	today = types.DateOnly(today)
	if w.ExpiryDate == nil || w.ExpiryDate.IsZero() {
		return today
	}
	return types.MaxDate(today, types.DateOnly(*w.ExpiryDate))
}

// Renew computes the expiry date after purchasing pkg on the given day.
// The result is never before the anchor.
func Renew(w Window, pkg *Package, today time.Time) time.Time {
	return RenewByDays(w, pkg.DurationDays(), today)
}

// RenewByDays computes the expiry date after purchasing an explicit number
// of days, used for custom-duration invoices. Non-positive day counts add
// nothing.
func RenewByDays(w Window, days int, today time.Time) time.Time {
	anchor := RenewalAnchor(w, today)
	if days <= 0 {
		return anchor
	}
	return types.AddDays(anchor, days)
}
