package colour

import (
	"fmt"
	"image/color"
)

// RGB represents a colour in 8-bit sRGB.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// String returns the RGB colour as a string in the format "rgb(r, g, b)".
func (rgb RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", rgb.R, rgb.G, rgb.B)
}

// Hex returns the RGB colour as a hex string (e.g., "#1a2b3c").
func (rgb RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", rgb.R, rgb.G, rgb.B)
}

// RGBA implements color.Color so an RGB can be drawn or compared with the
// standard image types. The colour is always fully opaque.
func (rgb RGB) RGBA() (r, g, b, a uint32) {
	r = uint32(rgb.R) * 0x101
	g = uint32(rgb.G) * 0x101
	b = uint32(rgb.B) * 0x101
	a = 0xffff
	return
}

// ToRGB converts a color.Color to RGB.
// Alpha is discarded; premultiplied channels are used as-is.
func ToRGB(c color.Color) RGB {
	r, g, b, _ := c.RGBA()
	// RGBA returns values in the range [0, 65535], convert to [0, 255].
	return RGB{
		R: uint8(r >> 8),
		G: uint8(g >> 8),
		B: uint8(b >> 8),
	}
}

// normalised returns the channels scaled to [0, 1].
func (rgb RGB) normalised() (r, g, b float64) {
	return float64(rgb.R) / 255.0, float64(rgb.G) / 255.0, float64(rgb.B) / 255.0
}

// rgbFromUnit builds an RGB from channels in [0, 1], rounding and clamping.
func rgbFromUnit(r, g, b float64) RGB {
	return RGB{
		R: clampChannel(r * 255),
		G: clampChannel(g * 255),
		B: clampChannel(b * 255),
	}
}
