package cli

import (
	"github.com/spf13/cobra"
)

func newConvertCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert <colour>",
		Short: "Show a colour in every supported model",
		Long: `Parse a colour written as hex, rgb(), hsv(), hsl(), cmyk(), lab() or lch()
and print it as HEX, RGB, HSV, HSL, CMYK, CIE LAB and LCH.

HSV, HSL and CMYK are integer-rounded, so converting back may differ from
the input by a few units per channel. LAB and LCH keep full precision in
JSON output and are rounded to two decimals in text output.`,
		Example: `  chromatic convert '#4287f5'
  chromatic convert 'cmyk(73%, 45%, 0%, 4%)' --format json`,
		Args: cobra.ExactArgs(1),
		RunE: runConvert,
	}
	addOutputFlags(cmd)

	return cmd
}

func runConvert(cmd *cobra.Command, args []string) error {
	logger := newLogger(cmd)

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	res, err := parseColour(args[0])
	if err != nil {
		return err
	}
	logger.Debug("parsed colour", "input", args[0], "format", res.Format, "rgb", res.RGB.String())

	return writeConversions(cmd.OutOrStdout(), res.RGB, args[0], string(res.Format), cfg, previewEnabled(cmd, cfg))
}
