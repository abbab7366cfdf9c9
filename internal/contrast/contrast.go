// Package contrast grades WCAG 2.0 contrast ratios and reports whether a
// colour is legible as text over white or black.
package contrast

import (
	"github.com/jmylchreest/chromatic/internal/colour"
)

// Level is a WCAG conformance grade for a contrast ratio.
type Level int

const (
	// LevelFail is below every WCAG threshold.
	LevelFail Level = iota
	// LevelAALarge meets AA for large text (3:1).
	LevelAALarge
	// LevelAA meets AA for normal text (4.5:1).
	LevelAA
	// LevelAAA meets AAA for normal text (7:1).
	LevelAAA
)

// WCAG 2.0 thresholds.
const (
	ThresholdAAA     = 7.0
	ThresholdAA      = 4.5
	ThresholdAALarge = 3.0
)

// String returns the display label of the level.
func (l Level) String() string {
	switch l {
	case LevelAAA:
		return "AAA"
	case LevelAA:
		return "AA"
	case LevelAALarge:
		return "AA Large"
	default:
		return "Fail"
	}
}

// MarshalText implements encoding.TextMarshaler so levels serialise as labels.
func (l Level) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// Passes reports whether the level is sufficient for body text, or for large
// text when large is true.
func (l Level) Passes(large bool) bool {
	if large {
		return l >= LevelAALarge
	}
	return l >= LevelAA
}

// Grade maps a contrast ratio to its WCAG level. Thresholds are inclusive.
func Grade(ratio float64) Level {
	switch {
	case ratio >= ThresholdAAA:
		return LevelAAA
	case ratio >= ThresholdAA:
		return LevelAA
	case ratio >= ThresholdAALarge:
		return LevelAALarge
	default:
		return LevelFail
	}
}

// Result is a graded contrast measurement.
type Result struct {
	Ratio float64 `json:"ratio"`
	Level Level   `json:"level"`
}

// Check measures the contrast between a foreground and background colour.
func Check(fg, bg colour.RGB) Result {
	ratio := colour.ContrastRatio(fg, bg)
	return Result{Ratio: ratio, Level: Grade(ratio)}
}

// Report holds a colour's contrast against pure white and pure black.
type Report struct {
	OnWhite Result `json:"on_white"`
	OnBlack Result `json:"on_black"`
}

var (
	white = colour.RGB{R: 255, G: 255, B: 255}
	black = colour.RGB{}
)

// NewReport grades c against white and black backgrounds.
func NewReport(c colour.RGB) Report {
	return Report{
		OnWhite: Check(c, white),
		OnBlack: Check(c, black),
	}
}

// Best returns the background (white or black) with the higher ratio and its result.
// Ties go to black.
func (r Report) Best() (colour.RGB, Result) {
	if r.OnWhite.Ratio > r.OnBlack.Ratio {
		return white, r.OnWhite
	}
	return black, r.OnBlack
}
