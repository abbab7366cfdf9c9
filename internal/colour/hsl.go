package colour

import (
	"fmt"
	"math"
)

// HSL represents a colour in the hue/saturation/lightness model.
// H is in degrees [0, 360); S and L are percentages [0, 100].
type HSL struct {
	H int `json:"h"`
	S int `json:"s"`
	L int `json:"l"`
}

// String returns the colour in the format "hsl(h, s%, l%)".
func (c HSL) String() string {
	return fmt.Sprintf("hsl(%d, %d%%, %d%%)", c.H, c.S, c.L)
}

// RGBToHSL converts RGB to HSL. Greys have S = 0 and H = 0.
func RGBToHSL(rgb RGB) HSL {
	h, s, l := rgbToHSL(rgb)
	return HSL{
		H: normaliseHueInt(int(math.Round(h))),
		S: roundPercent(s),
		L: roundPercent(l),
	}
}

// rgbToHSL converts RGB to HSL colour space.
// Returns hue (0-360), saturation (0-1), lightness (0-1).
func rgbToHSL(rgb RGB) (h, s, l float64) {
	r, g, b := rgb.normalised()

	maxVal := math.Max(r, math.Max(g, b))
	minVal := math.Min(r, math.Min(g, b))
	delta := maxVal - minVal

	// Lightness.
	l = (maxVal + minVal) / 2.0

	// Achromatic.
	if delta == 0 {
		return 0, 0, l
	}

	// Saturation.
	if l > 0.5 {
		s = delta / (2.0 - maxVal - minVal)
	} else {
		s = delta / (maxVal + minVal)
	}

	h = hueOf(r, g, b, maxVal, delta)
	return h, s, l
}

// HSLToRGB converts HSL to RGB.
// Hue is wrapped into [0, 360) and S, L are clamped to [0, 100] before conversion.
func HSLToRGB(c HSL) RGB {
	h := float64(normaliseHueInt(c.H)) / 360.0
	s := float64(clampPercent(c.S)) / 100.0
	l := float64(clampPercent(c.L)) / 100.0
	return rgbFromUnit(hslToRGB(h, s, l))
}

// hslToRGB converts hue (0-1), saturation (0-1), lightness (0-1) to unit channels.
func hslToRGB(h, s, l float64) (r, g, b float64) {
	if s == 0 {
		// Achromatic (grey).
		return l, l, l
	}

	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q

	r = hueToRGB(p, q, h+1.0/3.0)
	g = hueToRGB(p, q, h)
	b = hueToRGB(p, q, h-1.0/3.0)
	return r, g, b
}

// hueToRGB is a helper for HSL to RGB conversion. t is a hue fraction
// shifted by at most one third in either direction.
func hueToRGB(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}

	switch {
	case t < 1.0/6.0:
		return p + (q-p)*6*t
	case t < 1.0/2.0:
		return q
	case t < 2.0/3.0:
		return p + (q-p)*(2.0/3.0-t)*6
	default:
		return p
	}
}
