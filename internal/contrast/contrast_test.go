package contrast

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/jmylchreest/chromatic/internal/colour"
)

func TestGradeBoundaries(t *testing.T) {
	tests := []struct {
		ratio float64
		want  Level
	}{
		{21, LevelAAA},
		{7.0, LevelAAA},
		{6.99, LevelAA},
		{4.5, LevelAA},
		{4.49, LevelAALarge},
		{3.0, LevelAALarge},
		{2.99, LevelFail},
		{1, LevelFail},
	}

	for _, tt := range tests {
		if got := Grade(tt.ratio); got != tt.want {
			t.Errorf("Grade(%v) = %v, want %v", tt.ratio, got, tt.want)
		}
	}
}

func TestLevelString(t *testing.T) {
	tests := map[Level]string{
		LevelAAA:     "AAA",
		LevelAA:      "AA",
		LevelAALarge: "AA Large",
		LevelFail:    "Fail",
	}

	for level, want := range tests {
		if got := level.String(); got != want {
			t.Errorf("Level(%d).String() = %q, want %q", level, got, want)
		}
	}
}

func TestLevelPasses(t *testing.T) {
	tests := []struct {
		level  Level
		normal bool
		large  bool
	}{
		{LevelAAA, true, true},
		{LevelAA, true, true},
		{LevelAALarge, false, true},
		{LevelFail, false, false},
	}

	for _, tt := range tests {
		if got := tt.level.Passes(false); got != tt.normal {
			t.Errorf("%v.Passes(false) = %v, want %v", tt.level, got, tt.normal)
		}
		if got := tt.level.Passes(true); got != tt.large {
			t.Errorf("%v.Passes(true) = %v, want %v", tt.level, got, tt.large)
		}
	}
}

func TestCheck(t *testing.T) {
	got := Check(colour.RGB{}, colour.RGB{R: 255, G: 255, B: 255})
	if math.Abs(got.Ratio-21) > 1e-9 {
		t.Errorf("Check(black, white).Ratio = %v, want 21", got.Ratio)
	}
	if got.Level != LevelAAA {
		t.Errorf("Check(black, white).Level = %v, want AAA", got.Level)
	}

	same := Check(colour.RGB{R: 10, G: 20, B: 30}, colour.RGB{R: 10, G: 20, B: 30})
	if same.Ratio != 1 || same.Level != LevelFail {
		t.Errorf("Check(x, x) = %+v, want ratio 1 and Fail", same)
	}
}

func TestNewReport(t *testing.T) {
	report := NewReport(colour.RGB{R: 66, G: 135, B: 245})

	if report.OnWhite.Level != LevelAALarge {
		t.Errorf("OnWhite.Level = %v, want AA Large (ratio %.2f)", report.OnWhite.Level, report.OnWhite.Ratio)
	}
	if report.OnBlack.Level != LevelAA {
		t.Errorf("OnBlack.Level = %v, want AA (ratio %.2f)", report.OnBlack.Level, report.OnBlack.Ratio)
	}

	bg, best := report.Best()
	if bg != (colour.RGB{}) || best != report.OnBlack {
		t.Errorf("Best() = %v, %+v; want black background", bg, best)
	}
}

func TestReportJSONUsesLabels(t *testing.T) {
	data, err := json.Marshal(NewReport(colour.RGB{}))
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}

	var decoded struct {
		OnWhite struct {
			Level string `json:"level"`
		} `json:"on_white"`
		OnBlack struct {
			Level string `json:"level"`
		} `json:"on_black"`
	}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("json.Unmarshal() error = %v", err)
	}

	if decoded.OnWhite.Level != "AAA" || decoded.OnBlack.Level != "Fail" {
		t.Errorf("levels = %q / %q, want AAA / Fail", decoded.OnWhite.Level, decoded.OnBlack.Level)
	}
}
