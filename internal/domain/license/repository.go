package license

import (
	"context"
	"time"
)

// Repository provides access to license records. Persistence itself lives
// with the caller; the engine only reads windows and writes back renewed
// expiry dates through this interface.
type Repository interface {
	GetByCompany(ctx context.Context, companyID string) (*License, error)
	UpdateExpiry(ctx context.Context, companyID string, expiry time.Time) error
}

// PackageRepository provides read access to the license package catalog
type PackageRepository interface {
	Get(ctx context.Context, id string) (*Package, error)
	List(ctx context.Context) ([]*Package, error)
}
