package main

import (
	"encoding/json"
	"fmt"

	"fingerprint-matcher/internal/models"

	"github.com/spf13/cobra"
)

// NewCompareCmd creates the compare subcommand.
func NewCompareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare <image1> <image2>",
		Short: "Compare two fingerprint images from the command line",
		Long: `Compare two fingerprint images and print whether they likely match.

Exit status is 0 for a match, 1 for no match and 2 when an image cannot be
loaded or the configuration is invalid.`,
		Args: cobra.ExactArgs(2),
		RunE: runCompare,
	}

	cmd.Flags().Bool("json", false, "Print the result as JSON")

	return cmd
}

func runCompare(cmd *cobra.Command, args []string) error {
	deps, err := newDependencies(cmd)
	if err != nil {
		return err
	}
	defer deps.Close()

	result, err := deps.comparator.Compare(cmd.Context(), args[0], args[1])
	if err != nil {
		return err
	}

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		if err := writeJSON(cmd, result); err != nil {
			return err
		}
	} else {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, result.Message())
		fmt.Fprintf(out, "score: %.4f (threshold %.2f)\n", result.Score, result.Threshold)
	}

	if !result.Match {
		return errNoMatch
	}
	return nil
}

func writeJSON(cmd *cobra.Command, result models.Result) error {
	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(result); err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	return nil
}
