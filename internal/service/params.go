package service

import (
	"time"

	"github.com/drivedesk/drivedesk/internal/cache"
	"github.com/drivedesk/drivedesk/internal/config"
	"github.com/drivedesk/drivedesk/internal/domain/license"
	"github.com/drivedesk/drivedesk/internal/domain/tuition"
	"github.com/drivedesk/drivedesk/internal/logger"
)

// ServiceParams holds the dependencies injected into every service
type ServiceParams struct {
	Logger *logger.Logger
	Config *config.Configuration
	Cache  cache.Cache

	LicenseRepo license.Repository
	PackageRepo license.PackageRepository
	TuitionRepo tuition.Repository

	// Now supplies the reference day for all status math. Tests pin it;
	// production leaves it nil and gets the system clock.
	Now func() time.Time
}

func (p ServiceParams) now() time.Time {
	if p.Now != nil {
		return p.Now()
	}
	return time.Now().UTC()
}
