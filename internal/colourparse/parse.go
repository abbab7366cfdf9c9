// Package colourparse reads colour strings in the notations printed by the
// colour package: hex, rgb, hsv, hsl, cmyk, lab and lch.
package colourparse

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/jmylchreest/chromatic/internal/colour"
)

// ErrUnknownFormat is returned when a string matches none of the known notations.
var ErrUnknownFormat = errors.New("unknown colour format")

// Format names a colour notation.
type Format string

const (
	FormatHex  Format = "hex"
	FormatRGB  Format = "rgb"
	FormatHSV  Format = "hsv"
	FormatHSL  Format = "hsl"
	FormatCMYK Format = "cmyk"
	FormatLAB  Format = "lab"
	FormatLCH  Format = "lch"
)

// Formats returns every notation Parse understands.
func Formats() []Format {
	return []Format{FormatHex, FormatRGB, FormatHSV, FormatHSL, FormatCMYK, FormatLAB, FormatLCH}
}

// Result is a parsed colour and the notation it was written in.
type Result struct {
	Format Format
	RGB    colour.RGB
}

const (
	num   = `([-+]?(?:\d+\.?\d*|\.\d+))`
	sep   = `(?:\s*,\s*|\s+)`
	alpha = `(?:(?:\s*,\s*|\s*/\s*|\s+)[-+]?(?:\d+\.?\d*|\.\d+)%?)?`
	open  = `\s*\(\s*`
	shut  = `\s*\)$`
)

var (
	hexRegex  = regexp.MustCompile(`^#?[0-9a-fA-F]+$`)
	rgbRegex  = regexp.MustCompile(`(?i)^rgba?` + open + num + sep + num + sep + num + alpha + shut)
	hsvRegex  = regexp.MustCompile(`(?i)^hsv` + open + num + `(?:deg)?` + sep + num + `%?` + sep + num + `%?` + shut)
	hslRegex  = regexp.MustCompile(`(?i)^hsla?` + open + num + `(?:deg)?` + sep + num + `%?` + sep + num + `%?` + alpha + shut)
	cmykRegex = regexp.MustCompile(`(?i)^cmyk` + open + num + `%?` + sep + num + `%?` + sep + num + `%?` + sep + num + `%?` + shut)
	labRegex  = regexp.MustCompile(`(?i)^lab` + open + num + `%?` + sep + num + sep + num + shut)
	lchRegex  = regexp.MustCompile(`(?i)^lch` + open + num + `%?` + sep + num + sep + num + `(?:deg)?` + shut)
)

// Parse detects the notation of s and converts it to RGB.
func Parse(s string) (Result, error) {
	s = strings.TrimSpace(s)
	lower := strings.ToLower(s)

	switch {
	case strings.HasPrefix(lower, "rgb"):
		rgb, err := ParseRGB(s)
		return Result{Format: FormatRGB, RGB: rgb}, err
	case strings.HasPrefix(lower, "hsv"):
		hsv, err := ParseHSV(s)
		return Result{Format: FormatHSV, RGB: colour.HSVToRGB(hsv)}, err
	case strings.HasPrefix(lower, "hsl"):
		hsl, err := ParseHSL(s)
		return Result{Format: FormatHSL, RGB: colour.HSLToRGB(hsl)}, err
	case strings.HasPrefix(lower, "cmyk"):
		cmyk, err := ParseCMYK(s)
		return Result{Format: FormatCMYK, RGB: colour.CMYKToRGB(cmyk)}, err
	case strings.HasPrefix(lower, "lab"):
		lab, err := ParseLAB(s)
		return Result{Format: FormatLAB, RGB: colour.LABToRGB(lab)}, err
	case strings.HasPrefix(lower, "lch"):
		lch, err := ParseLCH(s)
		return Result{Format: FormatLCH, RGB: colour.LCHToRGB(lch)}, err
	case hexRegex.MatchString(s), strings.HasPrefix(s, "#"):
		rgb, err := colour.HexToRGB(s)
		return Result{Format: FormatHex, RGB: rgb}, err
	}

	return Result{}, fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// ParseRGB reads rgb(r, g, b) or rgba(r, g, b, a). Alpha is ignored and
// channels outside 0-255 are clamped.
func ParseRGB(s string) (colour.RGB, error) {
	v, err := match(rgbRegex, s, "rgb")
	if err != nil {
		return colour.RGB{}, err
	}
	return colour.RGB{R: channel(v[0]), G: channel(v[1]), B: channel(v[2])}, nil
}

// ParseHSV reads hsv(h, s%, v%).
func ParseHSV(s string) (colour.HSV, error) {
	v, err := match(hsvRegex, s, "hsv")
	if err != nil {
		return colour.HSV{}, err
	}
	return colour.HSV{H: degrees(v[0]), S: percent(v[1]), V: percent(v[2])}, nil
}

// ParseHSL reads hsl(h, s%, l%) or hsla(h, s%, l%, a).
func ParseHSL(s string) (colour.HSL, error) {
	v, err := match(hslRegex, s, "hsl")
	if err != nil {
		return colour.HSL{}, err
	}
	return colour.HSL{H: degrees(v[0]), S: percent(v[1]), L: percent(v[2])}, nil
}

// ParseCMYK reads cmyk(c%, m%, y%, k%).
func ParseCMYK(s string) (colour.CMYK, error) {
	v, err := match(cmykRegex, s, "cmyk")
	if err != nil {
		return colour.CMYK{}, err
	}
	return colour.CMYK{C: percent(v[0]), M: percent(v[1]), Y: percent(v[2]), K: percent(v[3])}, nil
}

// ParseLAB reads lab(l, a, b). Values are kept at full precision.
func ParseLAB(s string) (colour.LAB, error) {
	v, err := match(labRegex, s, "lab")
	if err != nil {
		return colour.LAB{}, err
	}
	return colour.LAB{L: v[0], A: v[1], B: v[2]}, nil
}

// ParseLCH reads lch(l%, c, h). Negative chroma becomes zero and hue is wrapped into [0, 360).
func ParseLCH(s string) (colour.LCH, error) {
	v, err := match(lchRegex, s, "lch")
	if err != nil {
		return colour.LCH{}, err
	}
	return colour.LCH{L: v[0], C: math.Max(v[1], 0), H: colour.NormaliseHue(v[2])}, nil
}

func match(re *regexp.Regexp, s, name string) ([]float64, error) {
	matches := re.FindStringSubmatch(strings.TrimSpace(s))
	if matches == nil {
		return nil, fmt.Errorf("%w: %q is not %s notation", colour.ErrInvalidFormat, s, name)
	}

	values := make([]float64, 0, len(matches)-1)
	for _, m := range matches[1:] {
		f, err := strconv.ParseFloat(m, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %w", colour.ErrInvalidFormat, m, err)
		}
		values = append(values, f)
	}
	return values, nil
}

func channel(v float64) uint8 {
	return uint8(math.Round(min(max(v, 0), 255)))
}

func percent(v float64) int {
	return int(math.Round(min(max(v, 0), 100)))
}

func degrees(v float64) int {
	h := int(math.Round(colour.NormaliseHue(v)))
	if h == 360 {
		return 0
	}
	return h
}
