package config

import (
	"strings"

	ierr "github.com/drivedesk/drivedesk/internal/errors"
	"github.com/drivedesk/drivedesk/internal/types"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// DeploymentMode names the runtime flavor, used only for log tagging
type DeploymentMode string

const (
	ModeLocal DeploymentMode = "local"
	ModeProd  DeploymentMode = "prod"
)

type Configuration struct {
	Deployment DeploymentConfig `mapstructure:"deployment" validate:"required"`
	Logging    LoggingConfig    `mapstructure:"logging"`
	License    LicenseConfig    `mapstructure:"license" validate:"required"`
	Payment    PaymentConfig    `mapstructure:"payment" validate:"required"`
	Cache      CacheConfig      `mapstructure:"cache"`
}

type DeploymentConfig struct {
	Mode DeploymentMode `mapstructure:"mode" validate:"required"`
}

type LoggingConfig struct {
	Level          types.LogLevel `mapstructure:"level"`
	FluentdEnabled bool           `mapstructure:"fluentd_enabled"`
	FluentdHost    string         `mapstructure:"fluentd_host"`
	FluentdPort    int            `mapstructure:"fluentd_port"`
}

// LicenseConfig carries the per-view expiring thresholds. The company list
// and the renewal checkout intentionally warn with different horizons, so
// both are named here instead of living as magic numbers at call sites.
type LicenseConfig struct {
	CompanyListThresholdDays int `mapstructure:"company_list_threshold_days" validate:"gte=0"`
	RenewalThresholdDays     int `mapstructure:"renewal_threshold_days" validate:"gte=0"`
}

// ExpiringThresholdDays resolves the threshold for a given view
func (c LicenseConfig) ExpiringThresholdDays(view types.LicenseView) int {
	if view == types.LicenseViewPaymentRenewal {
		return c.RenewalThresholdDays
	}
	return c.CompanyListThresholdDays
}

type PaymentConfig struct {
	LookaheadDays int `mapstructure:"lookahead_days" validate:"gte=0"`
}

type CacheConfig struct {
	Enabled    bool `mapstructure:"enabled"`
	TTLSeconds int  `mapstructure:"ttl_seconds" validate:"gte=0"`
}

// NewConfig loads configuration from config files and the environment.
// Environment variables use the DRIVEDESK_ prefix with _ separators,
// e.g. DRIVEDESK_LICENSE_RENEWAL_THRESHOLD_DAYS.
func NewConfig() (*Configuration, error) {
	v := viper.New()

	// Local .env files are optional
	_ = godotenv.Load()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.SetEnvPrefix("drivedesk")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, ierr.WithError(err).
				WithHint("Failed to read configuration file").
				Mark(ierr.ErrInternal)
		}
	}

	var cfg Configuration
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to unmarshal configuration").
			Mark(ierr.ErrInternal)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("deployment.mode", string(ModeLocal))
	v.SetDefault("logging.level", string(types.LogLevelInfo))
	v.SetDefault("license.company_list_threshold_days", types.DefaultCompanyListThresholdDays)
	v.SetDefault("license.renewal_threshold_days", types.DefaultRenewalThresholdDays)
	v.SetDefault("payment.lookahead_days", types.DefaultLookaheadDays)
	v.SetDefault("cache.enabled", true)
	v.SetDefault("cache.ttl_seconds", 300)
}

// Validate checks the configuration using struct tags plus cross-field rules
func (c *Configuration) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return ierr.WithError(err).
			WithHint("Invalid configuration").
			Mark(ierr.ErrValidation)
	}
	if c.License.RenewalThresholdDays > c.License.CompanyListThresholdDays {
		return ierr.NewError("renewal threshold exceeds company list threshold").
			WithHint("The renewal view should warn no earlier than the company list view").
			WithReportableDetails(map[string]interface{}{
				"renewal_threshold_days":      c.License.RenewalThresholdDays,
				"company_list_threshold_days": c.License.CompanyListThresholdDays,
			}).
			Mark(ierr.ErrValidation)
	}
	return nil
}

// GetDefaultConfig returns a usable configuration without reading any file,
// for tests and scripts
func GetDefaultConfig() *Configuration {
	return &Configuration{
		Deployment: DeploymentConfig{Mode: ModeLocal},
		Logging:    LoggingConfig{Level: types.LogLevelInfo},
		License: LicenseConfig{
			CompanyListThresholdDays: types.DefaultCompanyListThresholdDays,
			RenewalThresholdDays:     types.DefaultRenewalThresholdDays,
		},
		Payment: PaymentConfig{LookaheadDays: types.DefaultLookaheadDays},
		Cache:   CacheConfig{Enabled: true, TTLSeconds: 300},
	}
}
