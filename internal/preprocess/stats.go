package preprocess

import (
	"fmt"
	"io"
)

// Stats counts what happened to the loaded items.
type Stats struct {
	Loaded     int
	Extracted  int
	Skipped    int
	NoLocation int
}

// Rate returns the share of extracted items as a percentage.
func (s Stats) Rate() float64 {
	if s.Loaded == 0 {
		return 0
	}

	return float64(s.Extracted) / float64(s.Loaded) * 100
}

// Print writes the extraction summary.
func (s Stats) Print(w io.Writer) {
	fmt.Fprintf(w, "✅ Extracted: %d records\n", s.Extracted)

	if s.NoLocation > 0 {
		fmt.Fprintf(w, "⚠️  Missing location data: %d records\n", s.NoLocation)
	}

	fmt.Fprintf(w, "❌ Skipped: %d records\n", s.Skipped)
	fmt.Fprintf(w, "📈 Extraction rate: %.1f%%\n\n", s.Rate())
}
