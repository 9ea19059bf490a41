// Package config loads the site configuration with koanf.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/truepath/advocates-site/internal/app"
	"github.com/truepath/advocates-site/internal/content"
)

// Default configuration values.
const (
	DefaultServerPort     = 8080
	DefaultMaxRequestSize = 1 << 20

	DefaultLogFileMaxSizeMB  = 100
	DefaultLogFileMaxBackups = 3
	DefaultLogFileMaxAgeDays = 28

	DefaultAPITimeout = 5 * time.Second

	// EnvPrefix prefixes every environment override. Levels are separated
	// by a double underscore: APP_SITE__BUSINESS_EMAIL sets
	// site.business_email.
	EnvPrefix = "APP_"
)

// Config is the root configuration.
type Config struct {
	App       AppConfig       `koanf:"app"       validate:"required"`
	Server    ServerConfig    `koanf:"server"    validate:"required"`
	Log       LogConfig       `koanf:"log"       validate:"required"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
	Site      SiteConfig      `koanf:"site"      validate:"required"`
}

// AppConfig identifies the running service.
type AppConfig struct {
	Name        string `koanf:"name"        validate:"required"`
	Version     string `koanf:"version"     validate:"required"`
	Environment string `koanf:"environment" validate:"required,oneof=local dev qa prod test"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Port            int           `koanf:"port"             validate:"required,min=1,max=65535"`
	Host            string        `koanf:"host"             validate:"required"`
	ReadTimeout     time.Duration `koanf:"read_timeout"     validate:"required,min=1s"`
	WriteTimeout    time.Duration `koanf:"write_timeout"    validate:"required,min=1s"`
	IdleTimeout     time.Duration `koanf:"idle_timeout"     validate:"required,min=1s"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout" validate:"required,min=1s"`
	MaxRequestSize  int64         `koanf:"max_request_size" validate:"required,min=1"`
}

// Addr returns host:port.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level  string        `koanf:"level"  validate:"required,oneof=debug info warn error"`
	Format string        `koanf:"format" validate:"required,oneof=json text pretty"`
	File   LogFileConfig `koanf:"file"`
}

// LogFileConfig contains rolling log file settings.
type LogFileConfig struct {
	Enabled    bool   `koanf:"enabled"`
	Path       string `koanf:"path"        validate:"required_if=Enabled true"`
	MaxSizeMB  int    `koanf:"max_size"    validate:"omitempty,min=1,max=1024"`
	MaxBackups int    `koanf:"max_backups" validate:"omitempty,min=0,max=100"`
	MaxAgeDays int    `koanf:"max_age"     validate:"omitempty,min=0,max=365"`
	Compress   bool   `koanf:"compress"`
}

// TelemetryConfig contains OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled      bool    `koanf:"enabled"`
	Endpoint     string  `koanf:"endpoint"      validate:"required_if=Enabled true"`
	ServiceName  string  `koanf:"service_name"  validate:"required_if=Enabled true"`
	SamplingRate float64 `koanf:"sampling_rate" validate:"min=0,max=1"`
}

// SiteConfig holds the deployment-specific values of the site content.
type SiteConfig struct {
	// BaseURL is the public origin. When set, the contact form redirect is
	// absolute.
	BaseURL        string        `koanf:"base_url"         validate:"omitempty,url"`
	BusinessEmail  string        `koanf:"business_email"   validate:"required,email"`
	FormEndpoint   string        `koanf:"form_endpoint"    validate:"required,url"`
	ThanksPath     string        `koanf:"thanks_path"      validate:"required,startswith=/,ne=/,page_path"`
	CopyResetDelay time.Duration `koanf:"copy_reset_delay" validate:"required,min=100ms,max=1m"`
	APITimeout     time.Duration `koanf:"api_timeout"      validate:"required,min=100ms"`

	// Year pins the footer year. Zero means the current year.
	Year int `koanf:"year" validate:"omitempty,min=2000,max=9999"`

	FormProbe FormProbeConfig `koanf:"form_probe"`
}

// FormProbeConfig controls the optional readiness check against the form
// handler.
type FormProbeConfig struct {
	Enabled     bool          `koanf:"enabled"`
	Timeout     time.Duration `koanf:"timeout"      validate:"required_if=Enabled true"`
	Attempts    int           `koanf:"attempts"     validate:"omitempty,min=1,max=5"`
	MaxFailures int           `koanf:"max_failures" validate:"omitempty,min=1"`
	OpenFor     time.Duration `koanf:"open_for"`
}

// NextURL returns the redirect target sent with the contact form.
func (s SiteConfig) NextURL() string {
	if s.BaseURL == "" {
		return s.ThanksPath
	}

	return strings.TrimSuffix(s.BaseURL, "/") + s.ThanksPath
}

func defaults() map[string]any {
	return map[string]any{
		"app.name":        "truepath-site",
		"app.version":     "dev",
		"app.environment": "local",

		"server.port":             DefaultServerPort,
		"server.host":             "0.0.0.0",
		"server.read_timeout":     "15s",
		"server.write_timeout":    "15s",
		"server.idle_timeout":     "120s",
		"server.shutdown_timeout": "10s",
		"server.max_request_size": DefaultMaxRequestSize,

		"log.level":            "info",
		"log.format":           "json",
		"log.file.enabled":     false,
		"log.file.path":        "./logs/site.log",
		"log.file.max_size":    DefaultLogFileMaxSizeMB,
		"log.file.max_backups": DefaultLogFileMaxBackups,
		"log.file.max_age":     DefaultLogFileMaxAgeDays,
		"log.file.compress":    true,

		"telemetry.enabled":       false,
		"telemetry.endpoint":      "",
		"telemetry.service_name":  "truepath-site",
		"telemetry.sampling_rate": 1.0,

		"site.base_url":         "",
		"site.business_email":   content.DefaultBusinessEmail,
		"site.form_endpoint":    content.DefaultFormEndpoint,
		"site.thanks_path":      content.DefaultThanksPath,
		"site.copy_reset_delay": app.DefaultCopyResetDelay.String(),
		"site.api_timeout":      DefaultAPITimeout.String(),
		"site.year":             0,

		"site.form_probe.enabled":      false,
		"site.form_probe.timeout":      "3s",
		"site.form_probe.attempts":     2,
		"site.form_probe.max_failures": 3,
		"site.form_probe.open_for":     "30s",
	}
}

// Load loads configuration with the following precedence (highest first):
//  1. Environment variables (APP_ prefix, "__" between levels)
//  2. Profile config file (configs/{profile}.yaml)
//  3. Base config file (configs/base.yaml)
//  4. Default values
func Load(profile string) (*Config, error) {
	return LoadFrom("configs", profile)
}

// LoadFrom is Load with the config directory made explicit.
func LoadFrom(dir, profile string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	if err := loadFileIfExists(k, dir+"/base.yaml"); err != nil {
		return nil, fmt.Errorf("loading base config: %w", err)
	}

	if profile != "" {
		if err := loadFileIfExists(k, fmt.Sprintf("%s/%s.yaml", dir, profile)); err != nil {
			return nil, fmt.Errorf("loading profile config %q: %w", profile, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading env vars: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return &cfg, nil
}

// envKey maps APP_SITE__BUSINESS_EMAIL to site.business_email.
func envKey(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "__", ".")
}

// loadFileIfExists loads a YAML file. A missing file is not an error.
func loadFileIfExists(k *koanf.Koanf, path string) error {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}

	return k.Load(file.Provider(path), yaml.Parser())
}
