package enrich

import (
	"fmt"
	"io"

	"listingprep/internal/models"
	"listingprep/pkg/utils"
)

// maxSummaryTitle caps the runes of a title printed in the run summary.
const maxSummaryTitle = 60

// PrintSummary writes the run counters followed by up to preview skipped
// titles with their reasons.
func (r *Result) PrintSummary(w io.Writer, preview int) {
	fmt.Fprintf(w, "✅ Valid records: %d\n", len(r.Consultants))
	fmt.Fprintf(w, "❌ Skipped records: %d\n", len(r.Skipped))
	fmt.Fprintf(w, "📈 Success rate: %s\n\n", FormatRate(r.SuccessRate()))

	if len(r.Skipped) == 0 || preview <= 0 {
		return
	}

	shown := r.Skipped
	if len(shown) <= preview {
		fmt.Fprintln(w, "🗑️  SKIPPED RECORDS:")
	} else {
		fmt.Fprintf(w, "🗑️  First %d skipped records:\n", preview)
		shown = shown[:preview]
	}

	for _, item := range shown {
		title := utils.TruncateString(DisplayTitle(item.Original), maxSummaryTitle)
		fmt.Fprintf(w, "  - %s (%s)\n", title, item.Reason)
	}

	if rest := len(r.Skipped) - len(shown); rest > 0 {
		fmt.Fprintf(w, "  ... and %d more\n", rest)
	}

	fmt.Fprintln(w)
}

// DisplayTitle returns the record title for human output, or "N/A".
func DisplayTitle(raw models.RawRecord) string {
	if title := raw.Text("title"); title != "" {
		return title
	}

	if v, ok := raw["title"]; ok && v != nil {
		return fmt.Sprint(v)
	}

	return "N/A"
}
