package preprocess

import (
	"encoding/json"
	"errors"
	"regexp"
	"strings"

	"listingprep/internal/models"
	"listingprep/internal/normalizer"
)

// Apify record errors.
var (
	ErrNotAnObject     = errors.New("record is not an object")
	ErrMissingTitle    = errors.New("record has no title")
	ErrMissingLocation = errors.New("record address has no city and state")
)

var (
	// "..., City, ST 12345"
	cityStateZip = regexp.MustCompile(`,\s*([A-Za-z\s]+),\s*([A-Z]{2})\s*\d{5}`)

	// "..., City, ST ..."
	cityState = regexp.MustCompile(`,\s*([A-Za-z\s]+),\s*([A-Z]{2})\s`)
)

// ExtractLocation finds the city and state code in a free-text address such
// as "123 Main St, Houston, TX 77001, United States".
func ExtractLocation(address string) (string, string, bool) {
	if address == "" {
		return "", "", false
	}

	for _, re := range []*regexp.Regexp{cityStateZip, cityState} {
		if m := re.FindStringSubmatch(address); m != nil {
			return strings.TrimSpace(m[1]), strings.TrimSpace(m[2]), true
		}
	}

	return "", "", false
}

// FromApify converts one Apify Google Maps item.
func FromApify(item any) (models.SimplifiedRecord, error) {
	obj, ok := item.(map[string]any)
	if !ok {
		return models.SimplifiedRecord{}, ErrNotAnObject
	}

	raw := models.RawRecord(obj)

	title := raw.FirstText("title", "name")
	city, state, found := ExtractLocation(raw.Text("address"))

	if title == "" {
		return models.SimplifiedRecord{}, ErrMissingTitle
	}

	if !found {
		return models.SimplifiedRecord{}, ErrMissingLocation
	}

	rec := models.SimplifiedRecord{
		Title:   title,
		City:    city,
		State:   state,
		Website: raw.Text("website"),
	}

	if v, ok := raw.First("totalScore", "rating"); ok {
		if rating, ok := normalizer.ParseRating(v); ok && rating != 0 {
			rec.Rating = rating
		}
	}

	if loc, ok := raw["location"].(map[string]any); ok {
		rec.Lat = coordinate(loc["lat"])
		rec.Lng = coordinate(loc["lng"])
	}

	return rec, nil
}

func coordinate(v any) *float64 {
	n, ok := v.(json.Number)
	if !ok {
		return nil
	}

	f, err := n.Float64()
	if err != nil {
		return nil
	}

	return &f
}

// Apify converts every item, counting the ones dropped.
func Apify(items []any) ([]models.SimplifiedRecord, Stats) {
	stats := Stats{Loaded: len(items)}
	out := make([]models.SimplifiedRecord, 0, len(items))

	for _, item := range items {
		rec, err := FromApify(item)
		if err != nil {
			stats.Skipped++

			if errors.Is(err, ErrMissingLocation) {
				stats.NoLocation++
			}

			continue
		}

		out = append(out, rec)
	}

	stats.Extracted = len(out)

	return out, stats
}
