package preprocess

import (
	"encoding/json"

	"listingprep/internal/models"
)

// FromGoogleMaps renames the fields of one Google Maps scraper item. Values
// are passed through without validation; the enricher does that.
func FromGoogleMaps(item any) (models.SimplifiedRecord, error) {
	obj, ok := item.(map[string]any)
	if !ok {
		return models.SimplifiedRecord{}, ErrNotAnObject
	}

	raw := models.RawRecord(obj)

	rec := models.SimplifiedRecord{
		Title:   raw.Text("title"),
		City:    raw.FirstText("city", "address"),
		State:   raw.Text("state"),
		Website: raw.FirstText("website", "url"),
	}

	if v, ok := raw.First("totalScore", "rating"); ok && truthy(v) {
		rec.Rating = v
	}

	return rec, nil
}

// truthy reports whether a decoded JSON value is non-empty and non-zero.
func truthy(v any) bool {
	switch val := v.(type) {
	case nil:
		return false
	case bool:
		return val
	case string:
		return val != ""
	case json.Number:
		f, err := val.Float64()
		return err != nil || f != 0
	case []any:
		return len(val) > 0
	case map[string]any:
		return len(val) > 0
	default:
		return true
	}
}

// GoogleMaps converts every item, skipping anything that is not an object.
func GoogleMaps(items []any) ([]models.SimplifiedRecord, Stats) {
	stats := Stats{Loaded: len(items)}
	out := make([]models.SimplifiedRecord, 0, len(items))

	for _, item := range items {
		rec, err := FromGoogleMaps(item)
		if err != nil {
			stats.Skipped++
			continue
		}

		out = append(out, rec)
	}

	stats.Extracted = len(out)

	return out, stats
}
