// Package report renders Markdown summaries of enrichment runs.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"listingprep/internal/models"
	"listingprep/pkg/utils"

	"github.com/mattn/go-runewidth"
)

// maxCellText caps the runes of a record value shown in a table cell.
const maxCellText = 80

// Build renders the run summary and a table of every skipped record.
func Build(doc models.OutputDocument, skipped []models.Rejection) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "# Enrichment report: %s\n\n", doc.Company)
	fmt.Fprintf(&sb, "- Total records: %d\n", doc.TotalRecords)
	fmt.Fprintf(&sb, "- Valid records: %d\n", doc.ValidRecords)
	fmt.Fprintf(&sb, "- Skipped records: %d\n", doc.SkippedRecords)
	fmt.Fprintf(&sb, "- Success rate: %s\n", doc.SuccessRate)

	if len(skipped) == 0 {
		sb.WriteString("\nNo records were skipped.\n")
		return sb.String()
	}

	sb.WriteString("\n## Skipped records\n\n")

	table := [][]string{{"#", "Title", "City", "State", "Reason"}}
	for i, item := range skipped {
		table = append(table, []string{
			strconv.Itoa(i + 1),
			titleCell(item.Original),
			cellText(item.Original, "city"),
			cellText(item.Original, "state"),
			item.Reason,
		})
	}

	for _, line := range AlignTable(table) {
		sb.WriteString(line)
		sb.WriteString("\n")
	}

	return sb.String()
}

// Write renders the report to path, creating parent directories.
func Write(path string, doc models.OutputDocument, skipped []models.Rejection) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create report directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(Build(doc, skipped)), 0644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	return nil
}

// titleCell shows the record title, or the bare value of a list item that
// was not an object.
func titleCell(raw models.RawRecord) string {
	if title := cellText(raw, "title"); title != "" {
		return title
	}

	return cellText(raw, models.ValueKey)
}

// cellText returns a record field made safe for a table cell.
func cellText(raw models.RawRecord, key string) string {
	v, ok := raw[key]
	if !ok || v == nil {
		return ""
	}

	s, ok := v.(string)
	if !ok {
		s = fmt.Sprint(v)
	}

	s = utils.TruncateString(utils.NormalizeWhitespace(s), maxCellText)

	return strings.ReplaceAll(s, "|", `\|`)
}

// AlignTable lays out rows as a Markdown table. The first row is the header
// and a separator row is generated after it. Columns are padded by display
// width so CJK text and emoji line up.
func AlignTable(table [][]string) []string {
	if len(table) == 0 {
		return nil
	}

	colCount := 0
	for _, row := range table {
		if len(row) > colCount {
			colCount = len(row)
		}
	}

	// 1. Calculate max widths (using display width)
	colWidths := make([]int, colCount)

	for _, row := range table {
		for i, cell := range row {
			if width := runewidth.StringWidth(cell); width > colWidths[i] {
				colWidths[i] = width
			}
		}
	}

	// Ensure min width for separator ("---")
	for i := range colWidths {
		if colWidths[i] < 3 {
			colWidths[i] = 3
		}
	}

	// 2. Reconstruct lines
	result := make([]string, 0, len(table)+1)

	for i, row := range table {
		result = append(result, renderRow(row, colWidths))

		if i == 0 {
			sep := make([]string, colCount)
			for j, w := range colWidths {
				sep[j] = strings.Repeat("-", w)
			}

			result = append(result, renderRow(sep, colWidths))
		}
	}

	return result
}

func renderRow(row []string, colWidths []int) string {
	var sb strings.Builder

	sb.WriteString("|")

	for j, width := range colWidths {
		content := ""
		if j < len(row) {
			content = row[j]
		}

		sb.WriteString(" ")
		sb.WriteString(content)

		// Pad with spaces based on display width
		if padding := width - runewidth.StringWidth(content); padding > 0 {
			sb.WriteString(strings.Repeat(" ", padding))
		}

		sb.WriteString(" |")
	}

	return sb.String()
}
