package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/chromatic/internal/colour"
	"github.com/jmylchreest/chromatic/internal/config"
	"github.com/jmylchreest/chromatic/internal/contrast"
)

func newContrastCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "contrast <colour> [background]",
		Short: "Grade text contrast against the WCAG thresholds",
		Long: `With a background, print the WCAG 2.x contrast ratio of the two colours and
its grade: AAA (7:1), AA (4.5:1), AA Large (3:1) or Fail.

Without a background, grade the colour as text on white and on black and
report which background reads better.`,
		Example: `  chromatic contrast '#767676' '#ffffff'
  chromatic contrast 'rgb(66, 135, 245)'`,
		Args: cobra.RangeArgs(1, 2),
		RunE: runContrast,
	}
	addOutputFlags(cmd)

	return cmd
}

func runContrast(cmd *cobra.Command, args []string) error {
	logger := newLogger(cmd)

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if cfg.Format == config.FormatHex {
		return fmt.Errorf("%w: contrast does not support format %q", config.ErrInvalidConfig, cfg.Format)
	}

	fg, err := parseColour(args[0])
	if err != nil {
		return err
	}
	badges := previewEnabled(cmd, cfg)
	out := cmd.OutOrStdout()

	if len(args) == 1 {
		report := contrast.NewReport(fg.RGB)
		logger.Debug("contrast report", "colour", fg.RGB.Hex(), "on_white", report.OnWhite.Ratio, "on_black", report.OnBlack.Ratio)

		if cfg.Format == config.FormatJSON {
			return writeJSON(out, report)
		}

		table := NewTable([]string{"Background", "Ratio", "Grade"})
		table.AddRow([]string{"white", formatRatio(report.OnWhite.Ratio), gradeBadge(report.OnWhite.Level, badges)})
		table.AddRow([]string{"black", formatRatio(report.OnBlack.Ratio), gradeBadge(report.OnBlack.Level, badges)})
		fmt.Fprint(out, table.Render())

		best := "black"
		if bg, _ := report.Best(); bg == (colour.RGB{R: 255, G: 255, B: 255}) {
			best = "white"
		}
		_, err = fmt.Fprintf(out, "\nBest background: %s\n", best)
		return err
	}

	bg, err := parseColour(args[1])
	if err != nil {
		return fmt.Errorf("background: %w", err)
	}

	result := contrast.Check(fg.RGB, bg.RGB)
	logger.Debug("contrast", "foreground", fg.RGB.Hex(), "background", bg.RGB.Hex(), "ratio", result.Ratio)

	if cfg.Format == config.FormatJSON {
		return writeJSON(out, struct {
			Foreground string `json:"foreground"`
			Background string `json:"background"`
			contrast.Result
		}{fg.RGB.Hex(), bg.RGB.Hex(), result})
	}

	_, err = fmt.Fprintf(out, "%s on %s: %s  %s\n", fg.RGB.Hex(), bg.RGB.Hex(), formatRatio(result.Ratio), gradeBadge(result.Level, badges))
	return err
}

func formatRatio(r float64) string {
	return fmt.Sprintf("%.2f:1", r)
}
