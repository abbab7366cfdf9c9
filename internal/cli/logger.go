package cli

import (
	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
)

const (
	flagVerbose = "verbose"
	flagQuiet   = "quiet"
)

// newLogger returns a logger writing to the command's stderr, at debug level
// with --verbose, error level with --quiet and warn level otherwise.
func newLogger(cmd *cobra.Command) hclog.Logger {
	level := hclog.Warn
	if verbose, _ := cmd.Flags().GetBool(flagVerbose); verbose {
		level = hclog.Debug
	} else if quiet, _ := cmd.Flags().GetBool(flagQuiet); quiet {
		level = hclog.Error
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:   "chromatic",
		Output: cmd.ErrOrStderr(),
		Level:  level,
	}).Named(cmd.Name())
}
