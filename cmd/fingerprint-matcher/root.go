package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

// errNoMatch signals a completed comparison that did not match.
var errNoMatch = errors.New("fingerprints do not match")

// Exit codes of the compare subcommand.
const (
	exitMatch   = 0
	exitNoMatch = 1
	exitError   = 2
)

// NewRootCmd creates the root command. Without a subcommand it opens the GUI.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fingerprint-matcher",
		Short: "Compare two fingerprint images",
		Long: `Fingerprint Matcher compares two fingerprint images by correlating their
grayscale intensity histograms and reports whether they likely match.

Run without a subcommand to open the desktop window.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			deps, err := newDependencies(cmd)
			if err != nil {
				return err
			}
			defer deps.Close()
			return runGUI(cmd.Context(), deps)
		},
	}

	cmd.PersistentFlags().String("config", "", "Path to a TOML or YAML config file")
	cmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn or error")
	cmd.PersistentFlags().String("backend", "", "Image backend: native or opencv")
	cmd.PersistentFlags().Float64("threshold", 0, "Correlation a pair must exceed to match")

	cmd.AddCommand(NewCompareCmd())

	return cmd
}

// Execute runs the root command and exits with the compare exit code.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := exitCode(NewRootCmd().ExecuteContext(ctx))
	stop()
	os.Exit(code)
}

func exitCode(err error) int {
	switch {
	case err == nil:
		return exitMatch
	case errors.Is(err, errNoMatch):
		return exitNoMatch
	default:
		fmt.Fprintln(os.Stderr, err)
		return exitError
	}
}
