package colour

import (
	"fmt"
	"math"
)

// LCH is the polar form of LAB: lightness, chroma and hue in degrees [0, 360).
type LCH struct {
	L float64 `json:"l"`
	C float64 `json:"c"`
	H float64 `json:"h"`
}

// String returns the colour in the format "lch(l%, c, h)" with two decimals.
func (c LCH) String() string {
	return fmt.Sprintf("lch(%.2f%%, %.2f, %.2f)", c.L, c.C, c.H)
}

// LABToLCH converts LAB to its polar form.
func LABToLCH(c LAB) LCH {
	return LCH{
		L: c.L,
		C: math.Hypot(c.A, c.B),
		H: NormaliseHue(math.Atan2(c.B, c.A) * 180 / math.Pi),
	}
}

// LCHToLAB converts LCH to LAB. Negative chroma is treated as 0.
func LCHToLAB(c LCH) LAB {
	chroma := math.Max(c.C, 0)
	rad := c.H * math.Pi / 180
	return LAB{
		L: c.L,
		A: chroma * math.Cos(rad),
		B: chroma * math.Sin(rad),
	}
}

// RGBToLCH converts RGB to LCH via LAB.
func RGBToLCH(rgb RGB) LCH {
	return LABToLCH(RGBToLAB(rgb))
}

// LCHToRGB converts LCH to RGB via LAB, clamping out-of-gamut channels.
func LCHToRGB(c LCH) RGB {
	return LABToRGB(LCHToLAB(c))
}
