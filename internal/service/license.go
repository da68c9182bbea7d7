package service

import (
	"context"

	"github.com/drivedesk/drivedesk/internal/api/dto"
	"github.com/drivedesk/drivedesk/internal/domain/license"
	ierr "github.com/drivedesk/drivedesk/internal/errors"
	"github.com/drivedesk/drivedesk/internal/types"
)

// LicenseService derives license status for company views and computes
// renewals when a package is purchased
type LicenseService interface {
	GetStatus(ctx context.Context, companyID string, view types.LicenseView) (*dto.LicenseStatusResponse, error)
	Renew(ctx context.Context, req dto.RenewLicenseRequest) (*dto.RenewLicenseResponse, error)
}

type licenseService struct {
	ServiceParams
}

// NewLicenseService creates a new license service
func NewLicenseService(params ServiceParams) LicenseService {
	return &licenseService{ServiceParams: params}
}

// GetStatus classifies a company's license for the given view. The two
// views warn with different horizons, configured in LicenseConfig.
func (s *licenseService) GetStatus(ctx context.Context, companyID string, view types.LicenseView) (*dto.LicenseStatusResponse, error) {
	if companyID == "" {
		return nil, ierr.NewError("company_id is required").
			WithHint("License status requires a company").
			Mark(ierr.ErrValidation)
	}
	if err := view.Validate(); err != nil {
		return nil, err
	}

	lic, err := s.LicenseRepo.GetByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}

	threshold := s.Config.License.ExpiringThresholdDays(view)
	status := license.ClassifyWindow(lic.Window, s.now(), threshold)

	return &dto.LicenseStatusResponse{
		CompanyID:     companyID,
		State:         status.State,
		DaysRemaining: status.DaysRemaining,
		ExpiryDate:    lic.ExpiryDate,
	}, nil
}

// Renew computes the new expiry for a package purchase or custom-duration
// invoice, persists it through the repository and returns it for the caller
// to render. A still-valid license extends from its current expiry; an
// expired or absent one starts fresh from today.
func (s *licenseService) Renew(ctx context.Context, req dto.RenewLicenseRequest) (*dto.RenewLicenseResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	lic, err := s.LicenseRepo.GetByCompany(ctx, req.CompanyID)
	if err != nil {
		return nil, err
	}

	today := s.now()
	daysToAdd := req.CustomDays
	if req.PackageID != "" {
		pkg, err := s.PackageRepo.Get(ctx, req.PackageID)
		if err != nil {
			return nil, err
		}
		daysToAdd = pkg.DurationDays()
	}

	newExpiry := license.RenewByDays(lic.Window, daysToAdd, today)
	if err := s.LicenseRepo.UpdateExpiry(ctx, req.CompanyID, newExpiry); err != nil {
		return nil, err
	}

	s.Logger.Infow("license renewed",
		"company_id", req.CompanyID,
		"package_id", req.PackageID,
		"days_added", daysToAdd,
		"new_expiry_date", newExpiry,
	)

	renewed := lic.Window
	renewed.ExpiryDate = &newExpiry

	return &dto.RenewLicenseResponse{
		CompanyID:          req.CompanyID,
		NewExpiryDate:      newExpiry,
		PreviousExpiryDate: lic.ExpiryDate,
		DaysAdded:          daysToAdd,
		Status:             license.ClassifyWindow(renewed, today, s.Config.License.RenewalThresholdDays),
	}, nil
}
