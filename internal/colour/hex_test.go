package colour

import (
	"errors"
	"testing"
)

func TestHexToRGB(t *testing.T) {
	tests := []struct {
		name string
		hex  string
		want RGB
	}{
		{name: "six digits with hash", hex: "#4287f5", want: RGB{R: 66, G: 135, B: 245}},
		{name: "six digits without hash", hex: "4287f5", want: RGB{R: 66, G: 135, B: 245}},
		{name: "uppercase", hex: "#4287F5", want: RGB{R: 66, G: 135, B: 245}},
		{name: "shorthand", hex: "#abc", want: RGB{R: 0xaa, G: 0xbb, B: 0xcc}},
		{name: "shorthand without hash", hex: "f00", want: RGB{R: 255}},
		{name: "surrounding whitespace", hex: "  #000000 ", want: RGB{}},
		{name: "white", hex: "#ffffff", want: RGB{R: 255, G: 255, B: 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := HexToRGB(tt.hex)
			if err != nil {
				t.Fatalf("HexToRGB(%q) error = %v", tt.hex, err)
			}
			if got != tt.want {
				t.Errorf("HexToRGB(%q) = %+v, want %+v", tt.hex, got, tt.want)
			}
		})
	}
}

func TestHexToRGBInvalid(t *testing.T) {
	for _, hex := range []string{"", "#", "#12", "#1234", "#12345", "#1234567", "#ggg", "#12345z", "+12345", "#-12345"} {
		t.Run(hex, func(t *testing.T) {
			_, err := HexToRGB(hex)
			if err == nil {
				t.Fatalf("HexToRGB(%q) expected error", hex)
			}
			if !errors.Is(err, ErrInvalidFormat) {
				t.Errorf("HexToRGB(%q) error = %v, want ErrInvalidFormat", hex, err)
			}
		})
	}
}

func TestRGBToHex(t *testing.T) {
	tests := []struct {
		rgb  RGB
		want string
	}{
		{RGB{R: 66, G: 135, B: 245}, "#4287f5"},
		{RGB{R: 0, G: 0, B: 0}, "#000000"},
		{RGB{R: 1, G: 2, B: 3}, "#010203"},
		{RGB{R: 255, G: 255, B: 255}, "#ffffff"},
	}

	for _, tt := range tests {
		if got := RGBToHex(tt.rgb); got != tt.want {
			t.Errorf("RGBToHex(%v) = %s, want %s", tt.rgb, got, tt.want)
		}
	}
}

func TestHexRoundTripExhaustive(t *testing.T) {
	for r := 0; r < 256; r++ {
		for g := 0; g < 256; g += 3 {
			for b := 0; b < 256; b += 7 {
				rgb := RGB{R: uint8(r), G: uint8(g), B: uint8(b)}
				got, err := HexToRGB(RGBToHex(rgb))
				if err != nil {
					t.Fatalf("HexToRGB(RGBToHex(%v)) error = %v", rgb, err)
				}
				if got != rgb {
					t.Fatalf("hex round trip of %v = %v", rgb, got)
				}
			}
		}
	}
}
