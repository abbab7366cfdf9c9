// Package colour converts a single colour between sRGB-based representations
// (HEX, RGB, HSV, HSL, CMYK, CIE LAB, CIE LCH) and computes WCAG relative
// luminance and contrast.
//
// Every function is pure. Intermediate maths stays in float64 and rounding
// happens only when a function builds an integer-typed result.
package colour

import (
	"math"
)

// RelativeLuminance calculates the relative luminance of a colour according to WCAG 2.0.
// Returns a value between 0 (darkest) and 1 (lightest).
// https://www.w3.org/TR/WCAG20/#relativeluminancedef.
func RelativeLuminance(c RGB) float64 {
	r, g, b := c.normalised()

	// Apply gamma correction.
	r = gammaCorrect(r)
	g = gammaCorrect(g)
	b = gammaCorrect(b)

	// Calculate luminance using WCAG formula.
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// gammaCorrect linearises a channel using the WCAG 2.0 constants.
func gammaCorrect(v float64) float64 {
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// ContrastRatio calculates the contrast ratio between two colours according to WCAG 2.0.
// Returns a value between 1 and 21, where 21 is maximum contrast (black vs white).
// The result does not depend on argument order.
// https://www.w3.org/TR/WCAG20/#contrast-ratiodef.
func ContrastRatio(c1, c2 RGB) float64 {
	l1 := RelativeLuminance(c1)
	l2 := RelativeLuminance(c2)

	lighter := math.Max(l1, l2)
	darker := math.Min(l1, l2)

	return (lighter + 0.05) / (darker + 0.05)
}

// HueDistance calculates the angular distance between two hues on the colour wheel.
// Returns a value between 0 and 180 degrees (shortest path around the wheel).
func HueDistance(h1, h2 float64) float64 {
	diff := math.Abs(NormaliseHue(h1) - NormaliseHue(h2))
	if diff > 180 {
		diff = 360 - diff // Handle wraparound
	}
	return diff
}

// NormaliseHue wraps a hue in degrees into [0, 360).
func NormaliseHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	// -1e-15 + 360 rounds to 360.
	if h >= 360 {
		h = 0
	}
	return h
}

// normaliseHueInt wraps an integer hue into [0, 360).
func normaliseHueInt(h int) int {
	h %= 360
	if h < 0 {
		h += 360
	}
	return h
}

// clampChannel rounds v to the nearest integer and clamps it to [0, 255].
// NaN maps to 0.
func clampChannel(v float64) uint8 {
	v = math.Round(v)
	if !(v > 0) {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// clampPercent restricts an integer percentage to [0, 100].
func clampPercent(v int) int {
	return min(max(v, 0), 100)
}

// clamp restricts v to [lo, hi].
func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}

// roundPercent converts a fraction in [0, 1] to a rounded percentage.
func roundPercent(v float64) int {
	if math.IsNaN(v) {
		return 0
	}
	return clampPercent(int(math.Round(v * 100)))
}

// hueOf returns the hue in degrees of normalised channels using the
// six-sector formula. maxVal and delta must be precomputed; delta must be > 0.
func hueOf(r, g, b, maxVal, delta float64) float64 {
	var h float64
	switch maxVal {
	case r:
		h = (g - b) / delta
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/delta + 2
	case b:
		h = (r-g)/delta + 4
	}
	return h * 60
}
