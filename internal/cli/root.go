// Package cli provides the command-line interface for chromatic.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/chromatic/internal/config"
	"github.com/jmylchreest/chromatic/internal/version"
)

// NewRootCmd builds the chromatic command tree.
func NewRootCmd() *cobra.Command {
	theme := config.ThemeDark

	rootCmd := &cobra.Command{
		Use:   "chromatic",
		Short: "Colour conversion, contrast and harmony toolkit",
		Long: `Chromatic converts colours between HEX, RGB, HSV, HSL, CMYK, CIE LAB and LCH,
grades text contrast against the WCAG 2.x thresholds, and builds colour
harmonies in LCH space.

Colours may be given in any of those notations, for example:
  chromatic convert '#4287f5'
  chromatic contrast 'hsl(217, 90%, 61%)' '#fff'
  chromatic harmony 'lch(57%, 63, 284)' --seed-mode colour`,
		Version:      version.Short(),
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().BoolP(flagVerbose, "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolP(flagQuiet, "q", false, "suppress non-error output")
	rootCmd.PersistentFlags().VarP(&theme, config.FlagTheme, "t", "theme background (dark, light)")
	rootCmd.MarkFlagsMutuallyExclusive(flagVerbose, flagQuiet)

	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(
		newConvertCmd(),
		newContrastCmd(),
		newHarmonyCmd(),
		newPickCmd(),
		newVersionCmd(),
	)

	return rootCmd
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if jsonOutput {
				return writeJSON(cmd.OutOrStdout(), version.GetInfo())
			}
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
			return nil
		},
	}
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "print version information as JSON")

	return cmd
}
