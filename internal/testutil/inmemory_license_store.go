package testutil

import (
	"context"
	"time"

	"github.com/drivedesk/drivedesk/internal/domain/license"
	ierr "github.com/drivedesk/drivedesk/internal/errors"
	"github.com/drivedesk/drivedesk/internal/types"
)

// InMemoryLicenseStore implements license.Repository keyed by company ID
type InMemoryLicenseStore struct {
	*InMemoryStore[*license.License]
}

// NewInMemoryLicenseStore creates a new in-memory license store
func NewInMemoryLicenseStore() *InMemoryLicenseStore {
	return &InMemoryLicenseStore{InMemoryStore: NewInMemoryStore[*license.License]()}
}

func copyLicense(l *license.License) *license.License {
	if l == nil {
		return nil
	}
	copied := *l
	if l.ExpiryDate != nil {
		expiry := *l.ExpiryDate
		copied.ExpiryDate = &expiry
	}
	return &copied
}

// Add seeds a license record for a company
func (s *InMemoryLicenseStore) Add(ctx context.Context, l *license.License) error {
	if l == nil || l.CompanyID == "" {
		return ierr.NewError("license must carry a company_id").
			Mark(ierr.ErrValidation)
	}
	copied := copyLicense(l)
	if copied.CreatedAt.IsZero() {
		copied.BaseModel = types.GetDefaultBaseModel(ctx)
	}
	return s.InMemoryStore.Create(ctx, l.CompanyID, copied)
}

func (s *InMemoryLicenseStore) GetByCompany(ctx context.Context, companyID string) (*license.License, error) {
	l, err := s.InMemoryStore.Get(ctx, companyID)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("License not found for company").
			WithReportableDetails(map[string]interface{}{
				"company_id": companyID,
			}).
			Mark(ierr.ErrNotFound)
	}
	return copyLicense(l), nil
}

func (s *InMemoryLicenseStore) UpdateExpiry(ctx context.Context, companyID string, expiry time.Time) error {
	l, err := s.InMemoryStore.Get(ctx, companyID)
	if err != nil {
		return ierr.WithError(err).
			WithHint("License not found for company").
			WithReportableDetails(map[string]interface{}{
				"company_id": companyID,
			}).
			Mark(ierr.ErrNotFound)
	}

	updated := copyLicense(l)
	updated.ExpiryDate = &expiry
	updated.UpdatedAt = time.Now().UTC()
	return s.InMemoryStore.Update(ctx, companyID, updated)
}

// InMemoryPackageStore implements license.PackageRepository
type InMemoryPackageStore struct {
	*InMemoryStore[*license.Package]
}

// NewInMemoryPackageStore creates a new in-memory package store
func NewInMemoryPackageStore() *InMemoryPackageStore {
	return &InMemoryPackageStore{InMemoryStore: NewInMemoryStore[*license.Package]()}
}

// Add seeds a catalog package
func (s *InMemoryPackageStore) Add(ctx context.Context, p *license.Package) error {
	if p == nil {
		return ierr.NewError("package cannot be nil").Mark(ierr.ErrValidation)
	}
	if p.ID == "" {
		p.ID = types.GenerateUUIDWithPrefix(types.UUIDPrefixPackage)
	}
	if err := p.Validate(); err != nil {
		return err
	}
	copied := *p
	if copied.CreatedAt.IsZero() {
		copied.BaseModel = types.GetDefaultBaseModel(ctx)
	}
	return s.InMemoryStore.Create(ctx, p.ID, &copied)
}

func (s *InMemoryPackageStore) Get(ctx context.Context, id string) (*license.Package, error) {
	p, err := s.InMemoryStore.Get(ctx, id)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("License package not found").
			WithReportableDetails(map[string]interface{}{
				"id": id,
			}).
			Mark(ierr.ErrNotFound)
	}
	copied := *p
	return &copied, nil
}

func (s *InMemoryPackageStore) List(ctx context.Context) ([]*license.Package, error) {
	packages := s.InMemoryStore.List(ctx, nil)
	result := make([]*license.Package, 0, len(packages))
	for _, p := range packages {
		copied := *p
		result = append(result, &copied)
	}
	return result, nil
}
