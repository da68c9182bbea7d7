package testutil

import (
	"github.com/drivedesk/drivedesk/internal/config"
	"github.com/drivedesk/drivedesk/internal/logger"
	"github.com/stretchr/testify/suite"
)

// Stores bundles the in-memory repositories used by service suites
type Stores struct {
	LicenseRepo *InMemoryLicenseStore
	PackageRepo *InMemoryPackageStore
	TuitionRepo *InMemoryTuitionStore
}

// BaseServiceTestSuite provides the shared fixture for service tests:
// default config, a logger and fresh in-memory stores per test
type BaseServiceTestSuite struct {
	suite.Suite
	cfg    *config.Configuration
	log    *logger.Logger
	stores Stores
}

func (s *BaseServiceTestSuite) SetupTest() {
	s.cfg = config.GetDefaultConfig()
	s.log = logger.GetLogger()
	s.stores = Stores{
		LicenseRepo: NewInMemoryLicenseStore(),
		PackageRepo: NewInMemoryPackageStore(),
		TuitionRepo: NewInMemoryTuitionStore(),
	}
}

func (s *BaseServiceTestSuite) TearDownTest() {
	s.stores.LicenseRepo.Clear()
	s.stores.PackageRepo.Clear()
	s.stores.TuitionRepo.Clear()
}

func (s *BaseServiceTestSuite) GetConfig() *config.Configuration {
	return s.cfg
}

func (s *BaseServiceTestSuite) GetLogger() *logger.Logger {
	return s.log
}

func (s *BaseServiceTestSuite) GetStores() Stores {
	return s.stores
}
