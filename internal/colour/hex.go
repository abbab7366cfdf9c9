package colour

import (
	"fmt"
	"strconv"
	"strings"
)

// HexToRGB parses a hex colour string into an RGB value.
// Supports formats: #RRGGBB, RRGGBB, #RGB, RGB (case-insensitive).
// The shorthand form is expanded by doubling each digit, so "#abc" becomes "#aabbcc".
// Any other length, or a non-hex digit, returns an error wrapping ErrInvalidFormat.
func HexToRGB(hex string) (RGB, error) {
	s := strings.TrimPrefix(strings.TrimSpace(hex), "#")

	// Expand shorthand format (RGB -> RRGGBB).
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}

	if len(s) != 6 {
		return RGB{}, fmt.Errorf("%w: hex colour %q must have 3 or 6 digits", ErrInvalidFormat, hex)
	}

	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("%w: hex colour %q contains non-hex digits", ErrInvalidFormat, hex)
	}

	return RGB{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
	}, nil
}

// RGBToHex formats an RGB value as a canonical lowercase "#rrggbb" string.
func RGBToHex(rgb RGB) string {
	return rgb.Hex()
}
