package colour

import (
	"fmt"
	"math"
)

// CMYK represents a colour in the subtractive print model.
// All components are percentages [0, 100].
type CMYK struct {
	C int `json:"c"`
	M int `json:"m"`
	Y int `json:"y"`
	K int `json:"k"`
}

// String returns the colour in the format "cmyk(c%, m%, y%, k%)".
func (c CMYK) String() string {
	return fmt.Sprintf("cmyk(%d%%, %d%%, %d%%, %d%%)", c.C, c.M, c.Y, c.K)
}

// RGBToCMYK converts RGB to CMYK.
// Pure black yields {0, 0, 0, 100}: the 0/0 produced when K = 1 is treated as 0.
func RGBToCMYK(rgb RGB) CMYK {
	r, g, b := rgb.normalised()

	k := math.Min(1-r, math.Min(1-g, 1-b))
	c := (1 - r - k) / (1 - k)
	m := (1 - g - k) / (1 - k)
	y := (1 - b - k) / (1 - k)

	// roundPercent maps NaN to 0.
	return CMYK{
		C: roundPercent(c),
		M: roundPercent(m),
		Y: roundPercent(y),
		K: roundPercent(k),
	}
}

// CMYKToRGB converts CMYK to RGB. Components are clamped to [0, 100] first.
func CMYKToRGB(c CMYK) RGB {
	cf := float64(clampPercent(c.C)) / 100.0
	mf := float64(clampPercent(c.M)) / 100.0
	yf := float64(clampPercent(c.Y)) / 100.0
	kf := float64(clampPercent(c.K)) / 100.0

	return rgbFromUnit(
		(1-cf)*(1-kf),
		(1-mf)*(1-kf),
		(1-yf)*(1-kf),
	)
}
