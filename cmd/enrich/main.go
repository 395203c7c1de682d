// Package main provides the enrich command-line tool that cleans consultant
// listings into an import-ready JSON document.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"listingprep/internal/config"
	"listingprep/internal/enrich"
	"listingprep/internal/logger"
	"listingprep/internal/normalizer"
	"listingprep/internal/report"
	"listingprep/pkg/utils"

	"github.com/spf13/cobra"
)

var errEmptyCompany = errors.New("--company must not be empty")

const usageExample = `  enrich raw.json clean.json --company "Mary Kay"
  enrich raw.json clean.json -c Avon --report skipped.md --log-level debug`

type options struct {
	company    string
	configPath string
	reportPath string
	logLevel   string
}

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "❌ Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd(out io.Writer) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:           "enrich <input.json> <output.json> --company <name>",
		Short:         "Clean and enrich consultant data for import",
		Example:       usageExample,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, args []string) error {
			return run(out, args[0], args[1], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.company, "company", "c", "", `Company name (e.g. "Mary Kay")`)
	cmd.Flags().StringVar(&opts.configPath, "config", "", "Path to YAML configuration file")
	cmd.Flags().StringVar(&opts.reportPath, "report", "", "Write a Markdown report of skipped records to this path")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "", "Override logging.level (debug, info, warn, error)")
	cobra.CheckErr(cmd.MarkFlagRequired("company"))

	return cmd
}

func run(out io.Writer, inputPath, outputPath string, opts *options) error {
	company := strings.TrimSpace(opts.company)
	if company == "" {
		return errEmptyCompany
	}

	cfg := config.Default()
	log := logger.NewLogger(cfg.Logging.Level).WithRun("enrich")

	if opts.configPath != "" {
		loaded, err := config.LoadConfig(opts.configPath)
		if err != nil {
			log.Error("failed to load config", "path", opts.configPath, "error", err)
			return err
		}

		cfg = loaded
	}

	if opts.logLevel != "" {
		cfg.Logging.Level = opts.logLevel
	}

	log.SetLevel(cfg.Logging.Level)
	log.Debug("configuration loaded", "config", cfg.String())

	validator, err := normalizer.NewValidatorWithPatterns(cfg.Enrich.ExtraNamePatterns)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "🔄 Enriching data for %s...\n", company)
	fmt.Fprintf(out, "📥 Input: %s\n", inputPath)
	fmt.Fprintf(out, "📤 Output: %s\n\n", outputPath)

	records, err := enrich.Load(inputPath, cfg.Enrich.RecordKeys)
	if err != nil {
		log.Error("failed to load input", "path", inputPath, "error", err)
		return err
	}

	fmt.Fprintf(out, "📊 Found %d raw records\n\n", len(records))

	res := enrich.NewEnricher(company, validator, log).Run(records)
	res.PrintSummary(out, cfg.Preview())

	doc := res.Document()
	if err := utils.WriteJSONFile(outputPath, doc, cfg.Output.Indent); err != nil {
		return err
	}

	if opts.reportPath != "" {
		if err := report.Write(opts.reportPath, doc, res.Skipped); err != nil {
			return err
		}

		fmt.Fprintf(out, "📝 Report saved to: %s\n", opts.reportPath)
	}

	fmt.Fprintf(out, "✅ Enriched data saved to: %s\n", outputPath)
	fmt.Fprintf(out, "🎯 Ready to import %d %s consultants!\n", doc.ValidRecords, company)

	return nil
}
