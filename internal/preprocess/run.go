package preprocess

import (
	"fmt"
	"io"
	"os"

	"listingprep/internal/models"
	"listingprep/pkg/utils"
)

// Converter turns loaded items into simplified records.
type Converter func(items []any) ([]models.SimplifiedRecord, Stats)

// RunFile loads inputPath, converts it and writes the simplified records to
// outputPath as a pretty-printed JSON array. Progress goes to out.
func RunFile(out io.Writer, inputPath, outputPath string, convert Converter) (Stats, error) {
	data, err := os.ReadFile(inputPath)
	if err != nil {
		return Stats{}, fmt.Errorf("failed to read input: %w", err)
	}

	items, load := LoadItems(data)
	if load.Format == FormatJSONL {
		fmt.Fprintln(out, "Reading as JSONL format...")
	}

	if load.BadLines > 0 {
		fmt.Fprintf(out, "⚠️  Dropped %d unparseable lines\n", load.BadLines)
	}

	fmt.Fprintf(out, "✅ Loaded %d records\n\n", len(items))

	records, stats := convert(items)
	stats.Print(out)

	if err := utils.WriteJSONFile(outputPath, records, utils.DefaultIndent); err != nil {
		return stats, err
	}

	fmt.Fprintf(out, "✅ Simplified data saved to: %s\n", outputPath)
	fmt.Fprintln(out, "🎯 Ready for enrichment!")

	return stats, nil
}
