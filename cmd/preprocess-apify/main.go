// Package main provides the preprocess-apify tool, which converts Apify Google
// Maps exports (JSON or JSON Lines) into simplified records.
package main

import (
	"fmt"
	"io"
	"os"

	"listingprep/internal/logger"
	"listingprep/internal/preprocess"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "❌ Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd(out io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:           "preprocess-apify <input> <output.json>",
		Short:         "Extract simplified records from an Apify Google Maps export",
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, args []string) error {
			log := logger.NewLogger("info").WithRun("preprocess-apify")

			fmt.Fprintf(out, "📥 Loading Apify data from: %s\n", args[0])

			stats, err := preprocess.RunFile(out, args[0], args[1], preprocess.Apify)
			if err != nil {
				return err
			}

			log.Info("preprocess finished", "loaded", stats.Loaded, "extracted", stats.Extracted, "skipped", stats.Skipped)

			return nil
		},
	}
}
