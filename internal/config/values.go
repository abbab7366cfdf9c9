package config

import (
	"fmt"
	"slices"
	"strings"
)

// Theme is the background polarity palettes are generated for.
// It implements pflag.Value.
type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

// Themes returns the valid themes.
func Themes() []Theme {
	return []Theme{ThemeDark, ThemeLight}
}

func (t *Theme) String() string { return string(*t) }

// Set parses a theme name, case-insensitively.
func (t *Theme) Set(s string) error {
	v := Theme(strings.ToLower(strings.TrimSpace(s)))
	if !slices.Contains(Themes(), v) {
		return fmt.Errorf("%w: theme %q (valid: %s)", ErrInvalidConfig, s, joinValues(Themes()))
	}
	*t = v
	return nil
}

// Type names the flag value in help output.
func (t *Theme) Type() string { return "theme" }

// Format is the command output format. It implements pflag.Value.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatHex  Format = "hex"
)

// Formats returns the valid output formats.
func Formats() []Format {
	return []Format{FormatText, FormatJSON, FormatHex}
}

func (f *Format) String() string { return string(*f) }

// Set parses a format name, case-insensitively.
func (f *Format) Set(s string) error {
	v := Format(strings.ToLower(strings.TrimSpace(s)))
	if !slices.Contains(Formats(), v) {
		return fmt.Errorf("%w: format %q (valid: %s)", ErrInvalidConfig, s, joinValues(Formats()))
	}
	*f = v
	return nil
}

// Type names the flag value in help output.
func (f *Format) Type() string { return "format" }

// PreviewMode controls truecolor swatches in text output. It implements pflag.Value.
type PreviewMode string

const (
	// PreviewAuto shows swatches only when the output is a terminal.
	PreviewAuto   PreviewMode = "auto"
	PreviewAlways PreviewMode = "always"
	PreviewNever  PreviewMode = "never"
)

// PreviewModes returns the valid preview modes.
func PreviewModes() []PreviewMode {
	return []PreviewMode{PreviewAuto, PreviewAlways, PreviewNever}
}

func (p *PreviewMode) String() string { return string(*p) }

// Set parses a preview mode, case-insensitively.
func (p *PreviewMode) Set(s string) error {
	v := PreviewMode(strings.ToLower(strings.TrimSpace(s)))
	if !slices.Contains(PreviewModes(), v) {
		return fmt.Errorf("%w: preview %q (valid: %s)", ErrInvalidConfig, s, joinValues(PreviewModes()))
	}
	*p = v
	return nil
}

// Type names the flag value in help output.
func (p *PreviewMode) Type() string { return "mode" }

// Enabled reports whether swatches should be drawn given whether the output is a terminal.
func (p PreviewMode) Enabled(terminal bool) bool {
	switch p {
	case PreviewAlways:
		return true
	case PreviewNever:
		return false
	default:
		return terminal
	}
}
