// Package config resolves chromatic's settings from defaults, environment
// variables and command-line flags, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/pflag"

	"github.com/jmylchreest/chromatic/internal/seed"
)

// ErrInvalidConfig is wrapped by every validation and parse error.
var ErrInvalidConfig = errors.New("invalid configuration")

// Environment variables read by WithEnvConfig.
const (
	EnvTheme           = "CHROMATIC_THEME"
	EnvEnforceContrast = "CHROMATIC_ENFORCE_CONTRAST"
	EnvSeedMode        = "CHROMATIC_SEED_MODE"
	EnvSeed            = "CHROMATIC_SEED"
	EnvFormat          = "CHROMATIC_FORMAT"
	EnvPreview         = "CHROMATIC_PREVIEW"
)

// Flag names read by WithFlags.
const (
	FlagTheme           = "theme"
	FlagEnforceContrast = "enforce-contrast"
	FlagSeedMode        = "seed-mode"
	FlagSeed            = "seed"
	FlagFormat          = "format"
	FlagPreview         = "preview"
)

// Config holds resolved settings.
type Config struct {
	Theme           Theme
	EnforceContrast bool
	// SeedMode is resolved by Build: empty becomes manual when Seed is set, random otherwise.
	SeedMode seed.Mode
	Seed     *int64
	Format   Format
	Preview  PreviewMode
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Theme:   ThemeDark,
		Format:  FormatText,
		Preview: PreviewAuto,
	}
}

// SeedConfig returns the seed settings in the form the seed package expects.
func (c Config) SeedConfig() seed.Config {
	return seed.Config{Mode: c.SeedMode, Value: c.Seed}
}

// DarkTheme reports whether the theme background is dark.
func (c Config) DarkTheme() bool {
	return c.Theme != ThemeLight
}

// Validate rejects unknown enum values and incomplete seed settings.
func (c Config) Validate() error {
	if !slices.Contains(Themes(), c.Theme) {
		return fmt.Errorf("%w: theme %q (valid: %s)", ErrInvalidConfig, c.Theme, joinValues(Themes()))
	}
	if !slices.Contains(Formats(), c.Format) {
		return fmt.Errorf("%w: format %q (valid: %s)", ErrInvalidConfig, c.Format, joinValues(Formats()))
	}
	if !slices.Contains(PreviewModes(), c.Preview) {
		return fmt.Errorf("%w: preview %q (valid: %s)", ErrInvalidConfig, c.Preview, joinValues(PreviewModes()))
	}
	if c.SeedMode != "" {
		if _, err := seed.ParseMode(string(c.SeedMode)); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
	}
	if c.SeedMode == seed.ModeManual && c.Seed == nil {
		return fmt.Errorf("%w: seed mode %q requires a seed value", ErrInvalidConfig, seed.ModeManual)
	}
	return nil
}

// Builder provides a fluent interface for resolving a Config.
type Builder struct {
	config Config
	useEnv bool
	flags  *pflag.FlagSet
}

// NewBuilder creates a builder starting from Default.
func NewBuilder() *Builder {
	return &Builder{config: Default()}
}

// WithConfig replaces the base settings.
func (b *Builder) WithConfig(config Config) *Builder {
	b.config = config
	return b
}

// WithEnvConfig applies the CHROMATIC_* environment variables over the base settings.
func (b *Builder) WithEnvConfig() *Builder {
	b.useEnv = true
	return b
}

// WithFlags applies flags the user set explicitly. Flags absent from fs are ignored.
func (b *Builder) WithFlags(fs *pflag.FlagSet) *Builder {
	b.flags = fs
	return b
}

// Build resolves and validates the settings.
func (b *Builder) Build() (Config, error) {
	config := b.config

	if b.useEnv {
		if err := applyEnv(&config); err != nil {
			return Config{}, err
		}
	}
	if b.flags != nil {
		if err := applyFlags(&config, b.flags); err != nil {
			return Config{}, err
		}
	}

	if config.SeedMode == "" {
		config.SeedMode = seed.ModeRandom
		if config.Seed != nil {
			config.SeedMode = seed.ModeManual
		}
	}

	if err := config.Validate(); err != nil {
		return Config{}, err
	}
	return config, nil
}

func applyEnv(config *Config) error {
	if v, ok := lookup(EnvTheme); ok {
		if err := config.Theme.Set(v); err != nil {
			return fmt.Errorf("%s: %w", EnvTheme, err)
		}
	}
	if v, ok := lookup(EnvEnforceContrast); ok {
		enforce, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not a boolean", ErrInvalidConfig, EnvEnforceContrast, v)
		}
		config.EnforceContrast = enforce
	}
	if v, ok := lookup(EnvSeedMode); ok {
		config.SeedMode = seed.Mode(strings.ToLower(v))
	}
	if v, ok := lookup(EnvSeed); ok {
		s, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not an integer", ErrInvalidConfig, EnvSeed, v)
		}
		config.Seed = &s
	}
	if v, ok := lookup(EnvFormat); ok {
		if err := config.Format.Set(v); err != nil {
			return fmt.Errorf("%s: %w", EnvFormat, err)
		}
	}
	if v, ok := lookup(EnvPreview); ok {
		if err := config.Preview.Set(v); err != nil {
			return fmt.Errorf("%s: %w", EnvPreview, err)
		}
	}
	return nil
}

func applyFlags(config *Config, fs *pflag.FlagSet) error {
	changed := func(name string) bool {
		return fs.Lookup(name) != nil && fs.Changed(name)
	}

	if changed(FlagTheme) {
		if err := config.Theme.Set(fs.Lookup(FlagTheme).Value.String()); err != nil {
			return fmt.Errorf("--%s: %w", FlagTheme, err)
		}
	}
	if changed(FlagEnforceContrast) {
		enforce, err := fs.GetBool(FlagEnforceContrast)
		if err != nil {
			return fmt.Errorf("%w: --%s: %w", ErrInvalidConfig, FlagEnforceContrast, err)
		}
		config.EnforceContrast = enforce
	}
	if changed(FlagSeedMode) {
		config.SeedMode = seed.Mode(fs.Lookup(FlagSeedMode).Value.String())
	}
	if changed(FlagSeed) {
		s, err := fs.GetInt64(FlagSeed)
		if err != nil {
			return fmt.Errorf("%w: --%s: %w", ErrInvalidConfig, FlagSeed, err)
		}
		config.Seed = &s
	}
	if changed(FlagFormat) {
		if err := config.Format.Set(fs.Lookup(FlagFormat).Value.String()); err != nil {
			return fmt.Errorf("--%s: %w", FlagFormat, err)
		}
	}
	if changed(FlagPreview) {
		if err := config.Preview.Set(fs.Lookup(FlagPreview).Value.String()); err != nil {
			return fmt.Errorf("--%s: %w", FlagPreview, err)
		}
	}
	return nil
}

func lookup(key string) (string, bool) {
	v, ok := os.LookupEnv(key)
	v = strings.TrimSpace(v)
	return v, ok && v != ""
}

func joinValues[T ~string](values []T) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = string(v)
	}
	return strings.Join(parts, ", ")
}
