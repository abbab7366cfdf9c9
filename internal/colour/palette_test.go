package colour

import (
	"encoding/json"
	"image/color"
	"strings"
	"testing"
)

func TestNewPalette(t *testing.T) {
	colours := []RGB{
		{R: 255, G: 0, B: 0},
		{R: 0, G: 255, B: 0},
		{R: 0, G: 0, B: 255},
	}

	palette := NewPalette(colours)

	if palette == nil {
		t.Fatal("NewPalette returned nil")
	}

	if palette.Len() != 3 {
		t.Errorf("Expected palette length 3, got %d", palette.Len())
	}
}

func TestToRGB(t *testing.T) {
	tests := []struct {
		name  string
		color color.Color
		want  RGB
	}{
		{
			name:  "red",
			color: color.RGBA{R: 255, G: 0, B: 0, A: 255},
			want:  RGB{R: 255, G: 0, B: 0},
		},
		{
			name:  "nrgba mid blue",
			color: color.NRGBA{R: 66, G: 135, B: 245, A: 255},
			want:  RGB{R: 66, G: 135, B: 245},
		},
		{
			name:  "black",
			color: color.RGBA{R: 0, G: 0, B: 0, A: 255},
			want:  RGB{R: 0, G: 0, B: 0},
		},
		{
			name:  "rgb round trips through color.Color",
			color: RGB{R: 18, G: 52, B: 86},
			want:  RGB{R: 18, G: 52, B: 86},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToRGB(tt.color)
			if got != tt.want {
				t.Errorf("ToRGB() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestRGBString(t *testing.T) {
	rgb := RGB{R: 66, G: 135, B: 245}
	if got, want := rgb.String(), "rgb(66, 135, 245)"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestPaletteToHex(t *testing.T) {
	palette := NewPalette([]RGB{
		{R: 255, G: 0, B: 0},
		{R: 1, G: 2, B: 3},
	})

	got := palette.ToHex()
	want := []string{"#ff0000", "#010203"}

	if len(got) != len(want) {
		t.Fatalf("ToHex() returned %d colours, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("ToHex()[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestPaletteToJSON(t *testing.T) {
	palette := NewPalette([]RGB{{R: 66, G: 135, B: 245}})

	data, err := palette.ToJSON()
	if err != nil {
		t.Fatalf("ToJSON() error = %v", err)
	}

	var decoded PaletteJSON
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Failed to unmarshal JSON: %v", err)
	}

	if decoded.Count != 1 {
		t.Errorf("Count = %d, want 1", decoded.Count)
	}
	if decoded.Colours[0].Hex != "#4287f5" {
		t.Errorf("Hex = %s, want #4287f5", decoded.Colours[0].Hex)
	}
	if decoded.Colours[0].HSL != (HSL{H: 217, S: 90, L: 61}) {
		t.Errorf("HSL = %+v, want {217 90 61}", decoded.Colours[0].HSL)
	}
}

func TestPaletteString(t *testing.T) {
	if got := NewPalette(nil).String(); got != "Empty palette" {
		t.Errorf("String() = %q, want %q", got, "Empty palette")
	}

	s := NewPalette([]RGB{{R: 255}}).String()
	if !strings.Contains(s, "#ff0000") || !strings.Contains(s, "rgb(255, 0, 0)") {
		t.Errorf("String() = %q, missing colour details", s)
	}
}

func TestPaletteGet(t *testing.T) {
	palette := NewPalette([]RGB{{R: 1}, {G: 2}})

	got, err := palette.Get(1)
	if err != nil {
		t.Fatalf("Get(1) error = %v", err)
	}
	if got != (RGB{G: 2}) {
		t.Errorf("Get(1) = %+v, want {0 2 0}", got)
	}

	for _, idx := range []int{-1, 2} {
		if _, err := palette.Get(idx); err == nil {
			t.Errorf("Get(%d) expected error", idx)
		}
	}
}

func TestPaletteAll(t *testing.T) {
	palette := NewPalette([]RGB{{R: 1}, {R: 2}, {R: 3}})

	var seen []uint8
	for i, c := range palette.All() {
		seen = append(seen, c.R)
		if i == 1 {
			break
		}
	}

	if len(seen) != 2 || seen[0] != 1 || seen[1] != 2 {
		t.Errorf("All() yielded %v, want [1 2]", seen)
	}
}
