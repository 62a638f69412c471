// Package config provides configuration management for the fireworks harness.
package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/viper"

	"fireworks-show/internal/errors"
	"fireworks-show/internal/logging"
	"fireworks-show/internal/models"
	"fireworks-show/internal/show"
)

// Config holds all application configuration.
type Config struct {
	Logging logging.LogConfig `mapstructure:"logging"`
	Launch  LaunchConfig      `mapstructure:"launch"`
	Show    ShowConfig        `mapstructure:"show"`

	// TemplateCreated is set when Load wrote a fresh config template.
	TemplateCreated string `mapstructure:"-"`
}

// LaunchConfig holds the defaults applied to scenario launches that omit a field.
type LaunchConfig struct {
	DefaultDuration int     `mapstructure:"default_duration"`
	DefaultCost     float64 `mapstructure:"default_cost"`
	DefaultVendor   string  `mapstructure:"default_vendor"` // company shows only
}

// ShowConfig holds show defaults.
type ShowConfig struct {
	DefaultCapacity int `mapstructure:"default_capacity"`
}

// DefaultConfigDir returns the default configuration directory.
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".config/fireworks"
	}
	return filepath.Join(home, ".config", "fireworks")
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Logging: logging.DefaultLogConfig(),
		Launch: LaunchConfig{
			DefaultDuration: models.DefaultDuration,
			DefaultCost:     models.DefaultCost,
		},
		Show: ShowConfig{
			DefaultCapacity: 5,
		},
	}
}

// Load loads configuration from the specified directory.
// If configDir is empty, uses the default config directory. A missing
// config.toml is replaced by a template and the defaults are used.
func Load(configDir string) (*Config, error) {
	if configDir == "" {
		configDir = DefaultConfigDir()
	}

	cfg := Default()
	created, err := loadConfigFile(configDir, "config", cfg)
	if err != nil {
		return nil, errors.Wrap(err, "loading config.toml")
	}
	cfg.TemplateCreated = created

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "validating config")
	}

	return cfg, nil
}

func loadConfigFile(configDir, name string, cfg *Config) (string, error) {
	v := viper.New()
	v.SetConfigName(name)
	v.SetConfigType("toml")
	v.AddConfigPath(configDir)
	setDefaults(v, cfg)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return createTemplateConfig(configDir, name)
		}
		return "", err
	}

	return "", v.Unmarshal(cfg)
}

func setDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("logging.level", cfg.Logging.Level)
	v.SetDefault("logging.console", cfg.Logging.Console)
	v.SetDefault("logging.file", cfg.Logging.File)
	v.SetDefault("logging.file_path", cfg.Logging.FilePath)
	v.SetDefault("logging.max_size", cfg.Logging.MaxSize)
	v.SetDefault("logging.max_backups", cfg.Logging.MaxBackups)
	v.SetDefault("logging.max_age", cfg.Logging.MaxAge)
	v.SetDefault("launch.default_duration", cfg.Launch.DefaultDuration)
	v.SetDefault("launch.default_cost", cfg.Launch.DefaultCost)
	v.SetDefault("launch.default_vendor", cfg.Launch.DefaultVendor)
	v.SetDefault("show.default_capacity", cfg.Show.DefaultCapacity)
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("FIREWORKS_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("FIREWORKS_DEFAULT_COST"); v != "" {
		if cost, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Launch.DefaultCost = cost
		}
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	var errs []error

	if !logging.ValidLevel(c.Logging.Level) {
		errs = append(errs, errors.NewValidationError("logging.level", c.Logging.Level,
			"must be one of debug, info, warn, error"))
	}
	if c.Launch.DefaultDuration < 1 {
		errs = append(errs, errors.NewValidationError("launch.default_duration", c.Launch.DefaultDuration,
			"must be at least 1"))
	}
	if c.Launch.DefaultCost < 0 {
		errs = append(errs, errors.NewValidationError("launch.default_cost", c.Launch.DefaultCost,
			"must be non-negative"))
	}
	if c.Show.DefaultCapacity < 1 {
		errs = append(errs, errors.NewValidationError("show.default_capacity", c.Show.DefaultCapacity,
			"must be at least 1"))
	}

	return errors.Join(errors.ErrConfigInvalid, errs)
}

// LaunchOptions returns the configured launch defaults. The default vendor
// applies to company shows only.
func (c *Config) LaunchOptions(kind show.Kind) show.LaunchOptions {
	opts := show.LaunchOptions{
		Duration: c.Launch.DefaultDuration,
		Cost:     c.Launch.DefaultCost,
	}
	if kind == show.KindCompany {
		opts.Vendor = c.Launch.DefaultVendor
	}
	return opts
}
