package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/chromatic/internal/colour"
	"github.com/jmylchreest/chromatic/internal/config"
	"github.com/jmylchreest/chromatic/internal/harmony"
	"github.com/jmylchreest/chromatic/internal/seed"
)

const flagNoJitter = "no-jitter"

func newHarmonyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "harmony <colour>",
		Short: "Build colour harmonies around a base colour",
		Long: `Build the monochromatic, analogous, complementary, split-complementary,
triadic and tetradic harmonies of a colour in CIE LCH space.

Each colour is jittered by up to 5 degrees of hue and 3 units of lightness.
Seed modes:
  random  - different palettes on every run (default)
  colour  - seed derived from the base colour, stable per colour
  manual  - use --seed (setting --seed alone implies manual)

--enforce-contrast lifts colours that would be too dark on a dark theme, or
lowers colours too light on a light theme (see --theme).`,
		Example: `  chromatic harmony '#4287f5'
  chromatic harmony '#4287f5' --seed 42 --format json
  chromatic harmony 'hsl(20, 80%, 40%)' --theme light --enforce-contrast`,
		Args: cobra.ExactArgs(1),
		RunE: runHarmony,
	}
	addOutputFlags(cmd)
	cmd.Flags().Bool(config.FlagEnforceContrast, false, "nudge lightness away from the theme background")
	cmd.Flags().String(config.FlagSeedMode, "", "seed mode (colour, manual, random)")
	cmd.Flags().Int64(config.FlagSeed, 0, "seed for manual seed mode")
	cmd.Flags().Bool(flagNoJitter, false, "disable random jitter")

	return cmd
}

// harmonyReport is the JSON form of the harmony command.
type harmonyReport struct {
	Base      colour.ColourJSON              `json:"base"`
	Seed      *int64                         `json:"seed,omitempty"`
	Harmonies map[string][]colour.ColourJSON `json:"harmonies"`
}

func runHarmony(cmd *cobra.Command, args []string) error {
	logger := newLogger(cmd)

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	base, err := parseColour(args[0])
	if err != nil {
		return err
	}

	opts := harmony.Options{
		EnforceContrast: cfg.EnforceContrast,
		DarkTheme:       cfg.DarkTheme(),
	}

	var seedValue *int64
	if noJitter, _ := cmd.Flags().GetBool(flagNoJitter); noJitter {
		opts.Source = harmony.Centred()
		logger.Debug("jitter disabled")
	} else {
		s, err := seed.Calculate(base.RGB, cfg.SeedConfig())
		if err != nil {
			return fmt.Errorf("failed to calculate seed: %w", err)
		}
		seedValue = &s
		opts.Source = harmony.NewSource(s)
		logger.Debug("seeded jitter", "mode", cfg.SeedMode, "seed", s)
	}

	harmonies := harmony.Generate(base.RGB, opts)
	logger.Debug("generated harmonies", "base", base.RGB.Hex(), "theme", cfg.Theme, "enforce_contrast", cfg.EnforceContrast)

	out := cmd.OutOrStdout()
	switch cfg.Format {
	case config.FormatJSON:
		report := harmonyReport{
			Base:      colour.NewColourJSON(base.RGB),
			Seed:      seedValue,
			Harmonies: make(map[string][]colour.ColourJSON, len(harmonies)),
		}
		for name := range harmonies {
			report.Harmonies[string(name)] = harmonies.Palette(name).JSON().Colours
		}
		return writeJSON(out, report)
	case config.FormatHex:
		return writeHarmonyHex(out, harmonies)
	}

	return writeHarmonyText(out, base.RGB, harmonies, previewEnabled(cmd, cfg))
}

func writeHarmonyHex(w io.Writer, harmonies harmony.Harmonies) error {
	for _, name := range harmony.Names() {
		if _, err := fmt.Fprintf(w, "%s %s\n", name, strings.Join(harmonies.Palette(name).ToHex(), " ")); err != nil {
			return err
		}
	}
	return nil
}

func writeHarmonyText(w io.Writer, base colour.RGB, harmonies harmony.Harmonies, preview bool) error {
	line := func(c colour.RGB, label string) string {
		if preview {
			return colour.FormatColourWithLabel(c, label, swatchWidth)
		}
		return fmt.Sprintf("%-20s %s", label, c.Hex())
	}

	fmt.Fprintln(w, line(base, "base"))
	for _, name := range harmony.Names() {
		fmt.Fprintf(w, "\n%s\n", name)
		for i, c := range harmonies[name] {
			fmt.Fprintf(w, "  %s\n", line(c, fmt.Sprintf("%s %d", name, i+1)))
		}
	}
	return nil
}
