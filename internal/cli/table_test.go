package cli

import (
	"strings"
	"testing"

	"github.com/jmylchreest/chromatic/internal/colour"
)

func TestTableRender(t *testing.T) {
	table := NewTable([]string{"Format", "Value"})
	table.AddRow([]string{"HEX", "#4287f5"})
	table.AddRow([]string{"RGB", "rgb(66, 135, 245)"})

	want := "Format  Value\n" +
		"------  -----------------\n" +
		"HEX     #4287f5\n" +
		"RGB     rgb(66, 135, 245)\n"

	if got := table.Render(); got != want {
		t.Errorf("Render() =\n%s\nwant\n%s", got, want)
	}
}

func TestTableAddRowNormalisesLength(t *testing.T) {
	table := NewTable([]string{"A", "B"})
	table.AddRow([]string{"only"})
	table.AddRow([]string{"x", "y", "dropped"})

	if len(table.rows[0]) != 2 || table.rows[0][1] != "" {
		t.Errorf("short row = %q, want padded to 2 cells", table.rows[0])
	}
	if len(table.rows[1]) != 2 {
		t.Errorf("long row = %q, want truncated to 2 cells", table.rows[1])
	}
}

func TestTableRenderEmpty(t *testing.T) {
	if got := NewTable(nil).Render(); got != "" {
		t.Errorf("Render() = %q, want empty", got)
	}
}

func TestTableRenderNoRows(t *testing.T) {
	want := "Column1  Column2\n-------  -------\n"
	if got := NewTable([]string{"Column1", "Column2"}).Render(); got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestTableIgnoresANSIWidth(t *testing.T) {
	swatch := colour.ColourPreview(colour.RGB{R: 255}, 4)

	table := NewTable([]string{"Swatch", "Hex"})
	table.AddRow([]string{swatch, "#ff0000"})
	lines := strings.Split(table.Render(), "\n")

	// The swatch is four visible cells wide, narrower than its header.
	want := swatch + "    #ff0000"
	if lines[2] != want {
		t.Errorf("row = %q, want %q", lines[2], want)
	}
}

func TestTableUnicodeWidth(t *testing.T) {
	table := NewTable([]string{"Name", "Symbol"})
	table.AddRow([]string{"arrow", "→ →"})

	lines := strings.Split(table.Render(), "\n")
	if lines[1] != "-----  ------" {
		t.Errorf("separator = %q", lines[1])
	}
	if lines[2] != "arrow  → →" {
		t.Errorf("row = %q", lines[2])
	}
}

func TestPadRight(t *testing.T) {
	tests := []struct {
		input    string
		width    int
		expected string
	}{
		{"test", 10, "test      "},
		{"hello", 5, "hello"},
		{"world", 3, "world"},
		{"", 5, "     "},
		{"\x1b[31mx\x1b[0m", 3, "\x1b[31mx\x1b[0m  "},
	}

	for _, tt := range tests {
		if got := padRight(tt.input, tt.width); got != tt.expected {
			t.Errorf("padRight(%q, %d) = %q, want %q", tt.input, tt.width, got, tt.expected)
		}
	}
}
