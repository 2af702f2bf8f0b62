// main.go sets up the decimaledit command-line interface: a root command
// carrying the field flags and one subcommand per way of exercising a
// masked decimal field.

package main

import (
	"os"

	clog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/rpgo/decimaledit/internal/config"
	"github.com/rpgo/decimaledit/internal/mask"
)

var version = "dev" // set by the linker

func main() {
	if err := newRootCmd().Execute(); err != nil {
		// cobra has already printed the error
		os.Exit(1)
	}
}

// newRootCmd builds a fresh command tree, so tests can run commands in isolation.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decimaledit",
		Short: "Masked decimal input fields for the terminal.",
		Long: `decimaledit renders a number as "<prefix> <grouped digits> <suffix>"
and treats every keystroke as a shift of a fixed-point digit buffer:
typing 5, 7, 9 into a two-decimal field shows 0.05, 0.57, then 5.79.

Field flags apply to format, parse, limits and tui. Each flag can also be
set through a DECIMALEDIT_* environment variable, e.g. DECIMALEDIT_PREFIX.`,
		SilenceUsage: true,
		Version:      version,
	}

	config.AddFieldFlags(cmd)
	cmd.PersistentFlags().BoolP("verbose", "v", false, "log field activity to stderr")

	cmd.AddCommand(newFormatCmd())
	cmd.AddCommand(newParseCmd())
	cmd.AddCommand(newLimitsCmd())
	cmd.AddCommand(newReplayCmd())
	cmd.AddCommand(newTUICmd())
	return cmd
}

// loggerFor returns a stderr logger at debug level when --verbose is set,
// otherwise a no-op.
func loggerFor(cmd *cobra.Command) mask.Logger {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil || !verbose {
		return mask.NopLogger{}
	}
	return newCharmLogger(cmd.ErrOrStderr(), clog.DebugLevel)
}
