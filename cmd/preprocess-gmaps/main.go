// Package main provides the preprocess-gmaps tool, which renames Google Maps
// scraper fields into simplified records.
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
		Use:           "preprocess-gmaps <input> <output.json>",
		Short:         "Extract simplified records from a Google Maps scrape",
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, args []string) error {
			log := logger.NewLogger("info").WithRun("preprocess-gmaps")

			fmt.Fprintf(out, "📥 Loading Google Maps data from: %s\n", args[0])

			stats, err := preprocess.RunFile(out, args[0], args[1], preprocess.GoogleMaps)
			if err != nil {
				return err
			}

			log.Info("preprocess finished", "loaded", stats.Loaded, "extracted", stats.Extracted, "skipped", stats.Skipped)

			return nil
		},
	}
}
