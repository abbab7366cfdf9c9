package colour

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// LAB represents a colour in CIE L*a*b* relative to the D65 white point.
// L is nominally [0, 100]; A and B are signed and unbounded in theory.
type LAB struct {
	L float64 `json:"l"`
	A float64 `json:"a"`
	B float64 `json:"b"`
}

// String returns the colour in the format "lab(l, a, b)" with two decimals.
func (c LAB) String() string {
	return fmt.Sprintf("lab(%.2f, %.2f, %.2f)", c.L, c.A, c.B)
}

// D65 reference white, scaled so that Y = 100.
const (
	whiteX = 95.047
	whiteY = 100.000
	whiteZ = 108.883
)

// CIE constants for the linear segment near black.
const (
	labEpsilon = 0.008856
	labKappa   = 903.3
)

// sRGB primaries under D65. The matrices are only ever read.
var (
	srgbToXYZ = mat.NewDense(3, 3, []float64{
		0.4124, 0.3576, 0.1805,
		0.2126, 0.7152, 0.0722,
		0.0193, 0.1192, 0.9505,
	})
	xyzToSRGB = mat.NewDense(3, 3, []float64{
		3.2406, -1.5372, -0.4986,
		-0.9689, 1.8758, 0.0415,
		0.0557, -0.2040, 1.0570,
	})
)

// transform multiplies a 3-vector by m.
func transform(m *mat.Dense, a, b, c float64) (x, y, z float64) {
	var out mat.VecDense
	out.MulVec(m, mat.NewVecDense(3, []float64{a, b, c}))
	return out.AtVec(0), out.AtVec(1), out.AtVec(2)
}

// RGBToLAB converts RGB to CIE LAB (D65). The result is not rounded.
func RGBToLAB(rgb RGB) LAB {
	x, y, z := rgbToXYZ(rgb)

	fx := labCompress(x / whiteX)
	fy := labCompress(y / whiteY)
	fz := labCompress(z / whiteZ)

	return LAB{
		L: 116*fy - 16,
		A: 500 * (fx - fy),
		B: 200 * (fy - fz),
	}
}

// LABToRGB converts CIE LAB (D65) to RGB, clamping out-of-gamut channels.
func LABToRGB(c LAB) RGB {
	fy := (c.L + 16) / 116
	fx := c.A/500 + fy
	fz := fy - c.B/200

	x := labUncompress(fx) * whiteX
	y := labUncompress(fy) * whiteY
	z := labUncompress(fz) * whiteZ

	return xyzToRGB(x, y, z)
}

// rgbToXYZ converts RGB to CIE XYZ with Y scaled to [0, 100].
func rgbToXYZ(rgb RGB) (x, y, z float64) {
	r, g, b := rgb.normalised()
	return transform(srgbToXYZ, srgbToLinear(r)*100, srgbToLinear(g)*100, srgbToLinear(b)*100)
}

// xyzToRGB converts CIE XYZ (Y in [0, 100]) back to RGB.
func xyzToRGB(x, y, z float64) RGB {
	r, g, b := transform(xyzToSRGB, x, y, z)
	return rgbFromUnit(
		srgbFromLinear(r/100),
		srgbFromLinear(g/100),
		srgbFromLinear(b/100),
	)
}

// srgbToLinear removes the sRGB transfer curve from a channel in [0, 1].
func srgbToLinear(v float64) float64 {
	if v > 0.04045 {
		return math.Pow((v+0.055)/1.055, 2.4)
	}
	return v / 12.92
}

// srgbFromLinear applies the sRGB transfer curve to a linear channel.
func srgbFromLinear(v float64) float64 {
	if v > 0.0031308 {
		return 1.055*math.Pow(v, 1/2.4) - 0.055
	}
	return 12.92 * v
}

// labCompress is the CIE f(t): cube root above epsilon, linear below.
func labCompress(t float64) float64 {
	if t > labEpsilon {
		return math.Cbrt(t)
	}
	return (labKappa*t + 16) / 116
}

// labUncompress inverts labCompress.
func labUncompress(f float64) float64 {
	if f3 := f * f * f; f3 > labEpsilon {
		return f3
	}
	return (116*f - 16) / labKappa
}
