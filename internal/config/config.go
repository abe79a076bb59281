// Package config provides Viper-based configuration loading for gridkit tools.
package config

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/spf13/viper"
)

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
}

// RenderConfig controls textual grid dumps.
type RenderConfig struct {
	// Empty is the single character drawn for absent cells.
	Empty string `mapstructure:"empty"`
	// Trail enables drawing the walked trail over the board.
	Trail bool `mapstructure:"trail"`
}

// EmptyRune returns Empty as a rune.
//
// Precondition: Empty must hold exactly one character (see Validate).
func (r RenderConfig) EmptyRune() rune {
	c, _ := utf8.DecodeRuneInString(r.Empty)
	return c
}

// WalkConfig bounds route walking.
type WalkConfig struct {
	// MaxSteps caps forward moves per walk. 0 = unlimited.
	MaxSteps int64 `mapstructure:"max_steps"`
}

// Config is the top-level application configuration.
type Config struct {
	Logging LoggingConfig `mapstructure:"logging"`
	Render  RenderConfig  `mapstructure:"render"`
	Walk    WalkConfig    `mapstructure:"walk"`
}

// Validate checks all configuration invariants.
//
// Postcondition: Returns nil if configuration is valid, or an error describing all violations.
func (c Config) Validate() error {
	var errs []string

	if err := validateLogging(c.Logging); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateRender(c.Render); err != nil {
		errs = append(errs, err.Error())
	}
	if c.Walk.MaxSteps < 0 {
		errs = append(errs, fmt.Sprintf("walk.max_steps must be >= 0, got %d", c.Walk.MaxSteps))
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func validateLogging(l LoggingConfig) error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[l.Level] {
		return fmt.Errorf("logging.level must be one of [debug, info, warn, error], got %q", l.Level)
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[l.Format] {
		return fmt.Errorf("logging.format must be one of [json, console], got %q", l.Format)
	}
	return nil
}

func validateRender(r RenderConfig) error {
	if utf8.RuneCountInString(r.Empty) != 1 {
		return fmt.Errorf("render.empty must be exactly one character, got %q", r.Empty)
	}
	return nil
}

// Load reads configuration from the given file path, applies environment variable
// overrides, and validates the result. An empty path uses defaults and the
// environment only.
//
// Postcondition: Returns a valid Config or a non-nil error.
func Load(path string) (Config, error) {
	v := viper.New()

	// Environment variable overrides with GRIDKIT_ prefix
	v.SetEnvPrefix("GRIDKIT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
	}

	return LoadFromViper(v)
}

// LoadFromViper builds a Config from an already-configured Viper instance.
//
// Precondition: v must be non-nil and have configuration values set.
// Postcondition: Returns a valid Config or a non-nil error.
func LoadFromViper(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")

	v.SetDefault("render.empty", " ")
	v.SetDefault("render.trail", true)

	v.SetDefault("walk.max_steps", 0)
}
