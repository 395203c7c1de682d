package normalizer

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"listingprep/internal/models"
	"listingprep/pkg/utils"
)

// Transformer assembles cleaned records from validated parts.
type Transformer struct {
	company string
}

// NewTransformer creates a transformer stamping records with company.
func NewTransformer(company string) *Transformer {
	return &Transformer{company: company}
}

// Transform builds the output record. Website and rating are copied only
// when usable; an unparsable rating is dropped without failing the record.
func (t *Transformer) Transform(first, last, city, state string, raw models.RawRecord) *models.CleanedRecord {
	rec := &models.CleanedRecord{
		FirstName: first,
		LastName:  last,
		City:      utils.TitleCase(city),
		State:     state,
		Company:   t.company,
		Website:   raw.Text("website"),
	}

	if rating, ok := ParseRating(raw["rating"]); ok {
		rec.Rating = &rating
	}

	return rec
}

// ParseRating converts a JSON rating value to a finite float.
func ParseRating(v any) (float64, bool) {
	var f float64

	switch val := v.(type) {
	case float64:
		f = val
	case float32:
		f = float64(val)
	case int:
		f = float64(val)
	case int64:
		f = float64(val)
	case json.Number:
		parsed, err := val.Float64()
		if err != nil {
			return 0, false
		}

		f = parsed
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil {
			return 0, false
		}

		f = parsed
	default:
		return 0, false
	}

	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}

	return f, true
}
