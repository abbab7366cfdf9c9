package colourparse

import (
	"errors"
	"math"
	"testing"

	"github.com/jmylchreest/chromatic/internal/colour"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input  string
		format Format
		want   colour.RGB
	}{
		{"#4287f5", FormatHex, colour.RGB{R: 66, G: 135, B: 245}},
		{"4287F5", FormatHex, colour.RGB{R: 66, G: 135, B: 245}},
		{"#fff", FormatHex, colour.RGB{R: 255, G: 255, B: 255}},
		{"  #000  ", FormatHex, colour.RGB{}},
		{"rgb(66, 135, 245)", FormatRGB, colour.RGB{R: 66, G: 135, B: 245}},
		{"RGBA(66,135,245,0.5)", FormatRGB, colour.RGB{R: 66, G: 135, B: 245}},
		{"rgb(66 135 245 / 50%)", FormatRGB, colour.RGB{R: 66, G: 135, B: 245}},
		{"rgb(300, -5, 12.6)", FormatRGB, colour.RGB{R: 255, G: 0, B: 13}},
		{"hsv(120, 100%, 100%)", FormatHSV, colour.RGB{G: 255}},
		{"hsl(0, 100%, 50%)", FormatHSL, colour.RGB{R: 255}},
		{"hsla(240deg, 100%, 50%, 1)", FormatHSL, colour.RGB{B: 255}},
		{"hsl(-120, 100, 50)", FormatHSL, colour.RGB{B: 255}},
		{"cmyk(0%, 0%, 0%, 100%)", FormatCMYK, colour.RGB{}},
		{"cmyk(0 100 100 0)", FormatCMYK, colour.RGB{R: 255}},
		{"lab(100, 0, 0)", FormatLAB, colour.RGB{R: 255, G: 255, B: 255}},
		{"lab(0, 0, 0)", FormatLAB, colour.RGB{}},
		{"lch(0%, 0, 0)", FormatLCH, colour.RGB{}},
		{"LCH(100% 0 270)", FormatLCH, colour.RGB{R: 255, G: 255, B: 255}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tt.input, err)
			}
			if got.Format != tt.format {
				t.Errorf("Parse(%q).Format = %q, want %q", tt.input, got.Format, tt.format)
			}
			if got.RGB != tt.want {
				t.Errorf("Parse(%q).RGB = %v, want %v", tt.input, got.RGB, tt.want)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		input string
		want  error
	}{
		{"", ErrUnknownFormat},
		{"purple", ErrUnknownFormat},
		{"xyz(1, 2, 3)", ErrUnknownFormat},
		{"#12345", colour.ErrInvalidFormat},
		{"#ggg", colour.ErrInvalidFormat},
		{"rgb(1, 2)", colour.ErrInvalidFormat},
		{"rgb(1, 2, 3", colour.ErrInvalidFormat},
		{"hsv(a, b, c)", colour.ErrInvalidFormat},
		{"cmyk(1, 2, 3)", colour.ErrInvalidFormat},
		{"lab(50, 10)", colour.ErrInvalidFormat},
		{"lch(50, 10, 20, 30)", colour.ErrInvalidFormat},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := Parse(tt.input)
			if !errors.Is(err, tt.want) {
				t.Errorf("Parse(%q) error = %v, want %v", tt.input, err, tt.want)
			}
		})
	}
}

func TestParseNormalisesComponents(t *testing.T) {
	hsv, err := ParseHSV("hsv(359.6, 120%, -4%)")
	if err != nil {
		t.Fatalf("ParseHSV() error = %v", err)
	}
	if hsv != (colour.HSV{H: 0, S: 100, V: 0}) {
		t.Errorf("ParseHSV() = %+v, want {0 100 0}", hsv)
	}

	hsl, err := ParseHSL("hsl(-30, 50%, 50%)")
	if err != nil {
		t.Fatalf("ParseHSL() error = %v", err)
	}
	if hsl.H != 330 {
		t.Errorf("ParseHSL() hue = %d, want 330", hsl.H)
	}

	lch, err := ParseLCH("lch(50%, -10, 725)")
	if err != nil {
		t.Fatalf("ParseLCH() error = %v", err)
	}
	if lch.C != 0 || math.Abs(lch.H-5) > 1e-9 {
		t.Errorf("ParseLCH() = %+v, want chroma 0 and hue 5", lch)
	}
}

// Every String() form printed by the colour package must parse back.
func TestParseStringForms(t *testing.T) {
	samples := []colour.RGB{
		{R: 66, G: 135, B: 245},
		{},
		{R: 255, G: 255, B: 255},
		{R: 255, G: 128},
		{R: 12, G: 200, B: 99},
	}

	for _, c := range samples {
		t.Run(c.Hex(), func(t *testing.T) {
			if got, err := ParseRGB(c.String()); err != nil || got != c {
				t.Errorf("ParseRGB(%q) = %v, %v", c.String(), got, err)
			}

			hsv := colour.RGBToHSV(c)
			if got, err := ParseHSV(hsv.String()); err != nil || got != hsv {
				t.Errorf("ParseHSV(%q) = %v, %v", hsv.String(), got, err)
			}

			hsl := colour.RGBToHSL(c)
			if got, err := ParseHSL(hsl.String()); err != nil || got != hsl {
				t.Errorf("ParseHSL(%q) = %v, %v", hsl.String(), got, err)
			}

			cmyk := colour.RGBToCMYK(c)
			if got, err := ParseCMYK(cmyk.String()); err != nil || got != cmyk {
				t.Errorf("ParseCMYK(%q) = %v, %v", cmyk.String(), got, err)
			}

			lab := colour.RGBToLAB(c)
			got, err := ParseLAB(lab.String())
			if err != nil {
				t.Fatalf("ParseLAB(%q) error = %v", lab.String(), err)
			}
			if math.Abs(got.L-lab.L) > 0.005 || math.Abs(got.A-lab.A) > 0.005 || math.Abs(got.B-lab.B) > 0.005 {
				t.Errorf("ParseLAB(%q) = %+v, want %+v", lab.String(), got, lab)
			}
			if rgb := colour.LABToRGB(got); rgb != c {
				t.Errorf("LABToRGB(ParseLAB(%q)) = %v, want %v", lab.String(), rgb, c)
			}

			lch := colour.RGBToLCH(c)
			gotLCH, err := ParseLCH(lch.String())
			if err != nil {
				t.Fatalf("ParseLCH(%q) error = %v", lch.String(), err)
			}
			if math.Abs(gotLCH.L-lch.L) > 0.005 || math.Abs(gotLCH.C-lch.C) > 0.005 {
				t.Errorf("ParseLCH(%q) = %+v, want %+v", lch.String(), gotLCH, lch)
			}

			if res, err := Parse(c.Hex()); err != nil || res.RGB != c {
				t.Errorf("Parse(%q) = %+v, %v", c.Hex(), res, err)
			}
		})
	}
}
