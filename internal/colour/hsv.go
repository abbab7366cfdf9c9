package colour

import (
	"fmt"
	"math"
)

// HSV represents a colour in the hue/saturation/value model.
// H is in degrees [0, 360); S and V are percentages [0, 100].
type HSV struct {
	H int `json:"h"`
	S int `json:"s"`
	V int `json:"v"`
}

// String returns the colour in the format "hsv(h, s%, v%)".
func (c HSV) String() string {
	return fmt.Sprintf("hsv(%d, %d%%, %d%%)", c.H, c.S, c.V)
}

// RGBToHSV converts RGB to HSV. Greys have S = 0 and H = 0.
func RGBToHSV(rgb RGB) HSV {
	h, s, v := rgbToHSV(rgb)
	return HSV{
		H: normaliseHueInt(int(math.Round(h))),
		S: roundPercent(s),
		V: roundPercent(v),
	}
}

// rgbToHSV returns hue (0-360), saturation (0-1), value (0-1).
func rgbToHSV(rgb RGB) (h, s, v float64) {
	r, g, b := rgb.normalised()

	maxVal := math.Max(r, math.Max(g, b))
	minVal := math.Min(r, math.Min(g, b))
	delta := maxVal - minVal

	v = maxVal
	// Black has no saturation.
	if maxVal == 0 {
		return 0, 0, v
	}
	s = delta / maxVal

	if delta == 0 {
		return 0, s, v
	}
	h = hueOf(r, g, b, maxVal, delta)
	return h, s, v
}

// HSVToRGB converts HSV to RGB.
// Hue is wrapped into [0, 360) and S, V are clamped to [0, 100] before conversion.
func HSVToRGB(c HSV) RGB {
	h := float64(normaliseHueInt(c.H))
	s := float64(clampPercent(c.S)) / 100.0
	v := float64(clampPercent(c.V)) / 100.0
	return rgbFromUnit(hsvToRGB(h, s, v))
}

// hsvToRGB converts hue (0-360), saturation (0-1), value (0-1) to unit channels.
func hsvToRGB(h, s, v float64) (r, g, b float64) {
	sector := h / 60
	i := math.Floor(sector)
	f := sector - i
	p := v * (1 - s)
	q := v * (1 - f*s)
	t := v * (1 - (1-f)*s)

	switch int(i) % 6 {
	case 0:
		return v, t, p
	case 1:
		return q, v, p
	case 2:
		return p, v, t
	case 3:
		return p, q, v
	case 4:
		return t, p, v
	default:
		return v, p, q
	}
}
