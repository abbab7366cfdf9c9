package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/jmylchreest/chromatic/internal/colour"
	"github.com/jmylchreest/chromatic/internal/colourparse"
	"github.com/jmylchreest/chromatic/internal/config"
	"github.com/jmylchreest/chromatic/internal/contrast"
)

const swatchWidth = 8

// loadConfig resolves settings from the environment and the flags the user set.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	return config.NewBuilder().WithEnvConfig().WithFlags(cmd.Flags()).Build()
}

// addOutputFlags registers --format and --preview on cmd.
func addOutputFlags(cmd *cobra.Command) {
	format := config.FormatText
	preview := config.PreviewAuto
	cmd.Flags().Var(&format, config.FlagFormat, "output format (text, json, hex)")
	cmd.Flags().Var(&preview, config.FlagPreview, "colour swatches in text output (auto, always, never)")
}

// isTerminal reports whether w is a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd())) // #nosec G115 -- file descriptors fit in int
}

// previewEnabled resolves the preview mode against the command's stdout.
func previewEnabled(cmd *cobra.Command, cfg config.Config) bool {
	return cfg.Preview.Enabled(isTerminal(cmd.OutOrStdout()))
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

// parseColour parses a colour argument in any supported notation.
func parseColour(s string) (colourparse.Result, error) {
	res, err := colourparse.Parse(s)
	if err != nil {
		return colourparse.Result{}, fmt.Errorf("failed to parse colour: %w", err)
	}
	return res, nil
}

// conversionReport is the JSON form of a colour printed by convert and pick.
type conversionReport struct {
	Input  string `json:"input,omitempty"`
	Format string `json:"format,omitempty"`
	colour.Conversions
	Contrast contrast.Report `json:"contrast"`
}

// writeConversions prints rgb in every model. input and format describe
// where the colour came from and only appear in JSON output.
func writeConversions(w io.Writer, rgb colour.RGB, input, format string, cfg config.Config, preview bool) error {
	conv := colour.Convert(rgb)

	switch cfg.Format {
	case config.FormatJSON:
		return writeJSON(w, conversionReport{
			Input:       input,
			Format:      format,
			Conversions: conv,
			Contrast:    contrast.NewReport(rgb),
		})
	case config.FormatHex:
		_, err := fmt.Fprintln(w, conv.Hex)
		return err
	}

	if preview {
		if _, err := fmt.Fprintln(w, colour.ColourPreviewWithText(rgb, conv.Hex, swatchWidth+4)); err != nil {
			return err
		}
		fmt.Fprintln(w)
	}

	table := NewTable([]string{"Format", "Value"})
	for _, row := range conv.Rows() {
		table.AddRow(row[:])
	}
	_, err := fmt.Fprint(w, table.Render())
	return err
}

// gradeBadge renders a WCAG level, coloured by pass or fail when enabled.
func gradeBadge(level contrast.Level, enabled bool) string {
	var c *color.Color
	switch level {
	case contrast.LevelAAA, contrast.LevelAA:
		c = color.New(color.FgGreen, color.Bold)
	case contrast.LevelAALarge:
		c = color.New(color.FgYellow, color.Bold)
	default:
		c = color.New(color.FgRed, color.Bold)
	}

	if enabled {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c.Sprint(level.String())
}
