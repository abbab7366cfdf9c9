// Package harmony builds colour harmonies around a base colour in CIE LCH,
// where equal distances track perceived difference more closely than HSV or
// HSL offsets do.
//
// Each candidate is jittered by a small random amount so repeated runs give
// varied palettes. The random source is injected; pass a seeded source for
// reproducible output or Centred() to disable jitter.
package harmony

import (
	"fmt"
	"math/rand"
	"slices"

	"github.com/jmylchreest/chromatic/internal/colour"
	"github.com/jmylchreest/chromatic/internal/seed"
)

// Name identifies a harmony.
type Name string

const (
	Monochromatic      Name = "monochromatic"
	Analogous          Name = "analogous"
	Complementary      Name = "complementary"
	SplitComplementary Name = "splitComplementary"
	Triadic            Name = "triadic"
	Tetradic           Name = "tetradic"
)

// Jitter amplitudes, applied uniformly in [-x, +x].
const (
	HueJitter       = 5.0
	LightnessJitter = 3.0
)

// Candidate limits. Chroma below MinChroma reads as grey and above MaxChroma as neon.
const (
	MinLightness = 25.0
	MaxLightness = 90.0
	MinChroma    = 10.0
	MaxChroma    = 95.0
)

// Contrast nudge: candidates darker than DarkThemeFloor on a dark theme, or
// lighter than LightThemeCeiling on a light theme, are reflected across the
// limit with half the distance.
const (
	DarkThemeFloor    = 45.0
	LightThemeCeiling = 60.0
	nudgeFactor       = 0.5
)

// Source supplies uniformly distributed numbers in [0, 1).
// *math/rand.Rand satisfies it.
type Source interface {
	Float64() float64
}

type centred struct{}

func (centred) Float64() float64 { return 0.5 }

// Centred returns a Source that always yields 0.5, which cancels all jitter.
func Centred() Source {
	return centred{}
}

// NewSource returns a deterministic Source for the given seed.
// The returned source is not safe for concurrent use.
func NewSource(s int64) Source {
	// #nosec G404 -- palette jitter, not security sensitive
	return rand.New(rand.NewSource(s))
}

// Options controls palette generation.
type Options struct {
	// EnforceContrast nudges candidate lightness away from the theme background.
	EnforceContrast bool
	// DarkTheme selects the background polarity used by EnforceContrast.
	DarkTheme bool
	// Source provides jitter. Nil means a fresh time-seeded source per generator.
	Source Source
}

// step is one candidate relative to the base colour.
type step struct {
	hueOffset       float64
	lightnessAdjust float64
	chromaScale     float64
}

func hue(offset float64) step {
	return step{hueOffset: offset, chromaScale: 1}
}

// recipes lists every harmony in display order. Candidates are drawn in this
// order, so a seeded source always produces the same palettes.
var recipes = []struct {
	name  Name
	steps []step
}{
	{Monochromatic, []step{
		{hueOffset: 0, lightnessAdjust: 20, chromaScale: 0.8},
		{hueOffset: 0, lightnessAdjust: -20, chromaScale: 0.9},
	}},
	{Analogous, []step{hue(-30), hue(30)}},
	{Complementary, []step{hue(180)}},
	{SplitComplementary, []step{hue(150), hue(210)}},
	{Triadic, []step{hue(120), hue(240)}},
	// 60/180/240 is a deliberate rectangle, not the even 90/180/270 square.
	{Tetradic, []step{hue(60), hue(180), hue(240)}},
}

// Names returns all harmony names in display order.
func Names() []Name {
	names := make([]Name, len(recipes))
	for i, r := range recipes {
		names[i] = r.name
	}
	return names
}

// ParseName converts a string to a Name.
func ParseName(s string) (Name, error) {
	name := Name(s)
	if slices.Contains(Names(), name) {
		return name, nil
	}
	return "", fmt.Errorf("unknown harmony: %s (valid: %v)", s, Names())
}

// Offsets returns the hue offsets in degrees used by a harmony.
func Offsets(name Name) []float64 {
	for _, r := range recipes {
		if r.name == name {
			offsets := make([]float64, len(r.steps))
			for i, s := range r.steps {
				offsets[i] = s.hueOffset
			}
			return offsets
		}
	}
	return nil
}

// Harmonies maps each harmony name to its ordered colours.
type Harmonies map[Name][]colour.RGB

// Palette returns the colours of one harmony as a Palette.
func (h Harmonies) Palette(name Name) *colour.Palette {
	return colour.NewPalette(h[name])
}

// Generator produces candidates around a fixed base colour.
type Generator struct {
	base colour.LCH
	opts Options
	src  Source
}

// NewGenerator prepares a generator for base.
func NewGenerator(base colour.RGB, opts Options) *Generator {
	src := opts.Source
	if src == nil {
		src = NewSource(seed.GenerateRandomSeed())
	}
	return &Generator{
		base: colour.RGBToLCH(base),
		opts: opts,
		src:  src,
	}
}

// Base returns the base colour in LCH.
func (g *Generator) Base() colour.LCH {
	return g.base
}

// Candidate draws hue jitter then lightness jitter from the source and
// returns the constrained, contrast-adjusted LCH for one harmony step.
func (g *Generator) Candidate(hueOffset, lightnessAdjust, chromaScale float64) colour.LCH {
	hueJitter := g.src.Float64()*2*HueJitter - HueJitter
	lightnessJitter := g.src.Float64()*2*LightnessJitter - LightnessJitter

	c := constrain(colour.LCH{
		L: g.base.L + lightnessAdjust + lightnessJitter,
		C: g.base.C * chromaScale,
		H: g.base.H + hueOffset + hueJitter,
	})
	if g.opts.EnforceContrast {
		c = adjustForContrast(c, g.opts.DarkTheme)
	}
	return c
}

// Process returns Candidate converted to RGB.
func (g *Generator) Process(hueOffset, lightnessAdjust, chromaScale float64) colour.RGB {
	return colour.LCHToRGB(g.Candidate(hueOffset, lightnessAdjust, chromaScale))
}

// Candidates returns every harmony's candidates in LCH, before conversion to RGB.
func (g *Generator) Candidates() map[Name][]colour.LCH {
	out := make(map[Name][]colour.LCH, len(recipes))
	for _, r := range recipes {
		lchs := make([]colour.LCH, len(r.steps))
		for i, s := range r.steps {
			lchs[i] = g.Candidate(s.hueOffset, s.lightnessAdjust, s.chromaScale)
		}
		out[r.name] = lchs
	}
	return out
}

// Generate returns every harmony converted to RGB.
func (g *Generator) Generate() Harmonies {
	out := make(Harmonies, len(recipes))
	for name, lchs := range g.Candidates() {
		rgbs := make([]colour.RGB, len(lchs))
		for i, c := range lchs {
			rgbs[i] = colour.LCHToRGB(c)
		}
		out[name] = rgbs
	}
	return out
}

// Generate builds all six harmonies for base.
func Generate(base colour.RGB, opts Options) Harmonies {
	return NewGenerator(base, opts).Generate()
}

// constrain clamps lightness and chroma and wraps hue.
func constrain(c colour.LCH) colour.LCH {
	return colour.LCH{
		L: clamp(c.L, MinLightness, MaxLightness),
		C: clamp(c.C, MinChroma, MaxChroma),
		H: colour.NormaliseHue(c.H),
	}
}

// adjustForContrast applies the theme nudge. It is a heuristic: it does not
// measure the real background, so a pass is likely but not guaranteed.
func adjustForContrast(c colour.LCH, darkTheme bool) colour.LCH {
	if darkTheme {
		if c.L < DarkThemeFloor {
			c.L = DarkThemeFloor + (DarkThemeFloor-c.L)*nudgeFactor
		}
		return c
	}
	if c.L > LightThemeCeiling {
		c.L = LightThemeCeiling - (c.L-LightThemeCeiling)*nudgeFactor
	}
	return c
}

func clamp(v, lo, hi float64) float64 {
	return min(max(v, lo), hi)
}
