// Package config loads formwizard settings from defaults, an optional config
// file and FORMWIZARD_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/goliatone/go-formwizard/pkg/validation"
)

// EnvPrefix prefixes every environment override, e.g. FORMWIZARD_SERVER_ADDR.
const EnvPrefix = "FORMWIZARD"

// Catalog source formats.
const (
	CatalogYAML    = "yaml"
	CatalogOpenAPI = "openapi"
)

// Config holds application configuration.
type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Catalog    CatalogConfig    `mapstructure:"catalog"`
	Validation ValidationConfig `mapstructure:"validation"`
	Log        LogConfig        `mapstructure:"log"`
	Theme      ThemeConfig      `mapstructure:"theme"`
	Terminal   TerminalConfig   `mapstructure:"terminal"`
}

// ServerConfig holds HTTP settings.
type ServerConfig struct {
	Addr          string        `mapstructure:"addr"`
	ShutdownGrace time.Duration `mapstructure:"shutdown_grace"`
}

// CatalogConfig points at the page catalog. An empty path selects the
// built-in sign-up catalog.
type CatalogConfig struct {
	Path   string `mapstructure:"path"`
	Format string `mapstructure:"format"`
}

// ValidationConfig selects the validation policy.
type ValidationConfig struct {
	Policy string `mapstructure:"policy"`
}

// LogConfig configures zap.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// ThemeConfig selects the theme and variant for HTML output.
type ThemeConfig struct {
	Name    string `mapstructure:"name"`
	Variant string `mapstructure:"variant"`
}

// TerminalConfig selects the prompt driver for the run command.
type TerminalConfig struct {
	Driver string `mapstructure:"driver"`
}

// New returns a viper instance with defaults and environment binding in
// place. Callers may bind command flags to it before calling Load.
func New() *viper.Viper {
	v := viper.New()

	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.shutdown_grace", 5*time.Second)
	v.SetDefault("catalog.path", "")
	v.SetDefault("catalog.format", CatalogYAML)
	v.SetDefault("validation.policy", validation.PolicyRequired.String())
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("theme.name", "")
	v.SetDefault("theme.variant", "")
	v.SetDefault("terminal.driver", "survey")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the config file, when one is given or named by
// FORMWIZARD_CONFIG, and decodes the merged settings.
func Load(v *viper.Viper, path string) (Config, error) {
	if v == nil {
		v = New()
	}
	if path == "" {
		path = os.Getenv(EnvPrefix + "_CONFIG")
	}
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Policy resolves the configured validation policy.
func (c Config) Policy() (validation.Policy, error) {
	return validation.ParsePolicy(c.Validation.Policy)
}

// Validate rejects values the commands cannot act on.
func (c Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.Server.Addr) == "" {
		errs = append(errs, errors.New("config: server.addr is required"))
	}
	if c.Server.ShutdownGrace < 0 {
		errs = append(errs, errors.New("config: server.shutdown_grace must not be negative"))
	}
	switch strings.ToLower(c.Catalog.Format) {
	case "", CatalogYAML, CatalogOpenAPI:
	default:
		errs = append(errs, fmt.Errorf("config: unknown catalog.format %q", c.Catalog.Format))
	}
	if _, err := c.Policy(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
