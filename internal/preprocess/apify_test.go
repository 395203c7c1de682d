package preprocess

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestExtractLocation(t *testing.T) {
	tests := []struct {
		address   string
		wantCity  string
		wantState string
		wantOK    bool
	}{
		{"123 Main St, Houston, TX 77001, United States", "Houston", "TX", true},
		{"9 Elm Rd, San Antonio, TX 78205", "San Antonio", "TX", true},
		{"Suite 4, 55 Oak Ave, Austin, TX 78701", "Austin", "TX", true},
		{"12 Pine St, Boise, ID , USA", "Boise", "ID", true},
		{"Dallas, TX 75201, USA", "", "", false},
		{"No commas here", "", "", false},
		{"", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.address, func(t *testing.T) {
			city, state, ok := ExtractLocation(tt.address)
			if ok != tt.wantOK || city != tt.wantCity || state != tt.wantState {
				t.Errorf("ExtractLocation(%q) = (%q, %q, %v), want (%q, %q, %v)",
					tt.address, city, state, ok, tt.wantCity, tt.wantState, tt.wantOK)
			}
		})
	}
}

func decode(t *testing.T, s string) any {
	t.Helper()

	items, _ := LoadItems([]byte(s))
	if len(items) != 1 {
		t.Fatalf("decode(%s) produced %d items", s, len(items))
	}

	return items[0]
}

func TestFromApify(t *testing.T) {
	item := decode(t, `{
		"title": "  Jane Doe - Mary Kay  ",
		"address": "1 Main St, Plano, TX 75024, United States",
		"website": " https://jane.example ",
		"totalScore": 4.7,
		"location": {"lat": 33.01, "lng": -96.7}
	}`)

	rec, err := FromApify(item)
	if err != nil {
		t.Fatalf("FromApify returned unexpected error: %v", err)
	}

	if rec.Title != "Jane Doe - Mary Kay" || rec.City != "Plano" || rec.State != "TX" {
		t.Errorf("Unexpected record: %+v", rec)
	}

	if rec.Website != "https://jane.example" {
		t.Errorf("Website = %q", rec.Website)
	}

	if rec.Rating != 4.7 {
		t.Errorf("Rating = %v, want 4.7", rec.Rating)
	}

	if rec.Lat == nil || *rec.Lat != 33.01 || rec.Lng == nil || *rec.Lng != -96.7 {
		t.Errorf("Lat/Lng = %v/%v", rec.Lat, rec.Lng)
	}
}

func TestFromApify_FallbackFields(t *testing.T) {
	item := decode(t, `{"name": "John Roe", "address": "2 Oak St, Tulsa, OK 74103", "rating": "bad"}`)

	rec, err := FromApify(item)
	if err != nil {
		t.Fatalf("FromApify returned unexpected error: %v", err)
	}

	if rec.Title != "John Roe" {
		t.Errorf("Title = %q, want John Roe", rec.Title)
	}

	if rec.Rating != nil {
		t.Errorf("Rating = %v, want nil", rec.Rating)
	}

	if rec.Lat != nil || rec.Lng != nil {
		t.Error("Expected no coordinates")
	}
}

func TestFromApify_Errors(t *testing.T) {
	tests := []struct {
		name    string
		item    any
		wantErr error
	}{
		{"Not an object", "string", ErrNotAnObject},
		{"No title", map[string]any{"address": "1 Main St, Plano, TX 75024"}, ErrMissingTitle},
		{"No location", map[string]any{"title": "Jane Doe", "address": "Plano Texas"}, ErrMissingLocation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromApify(tt.item)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("FromApify error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestApify_Stats(t *testing.T) {
	items := []any{
		map[string]any{"title": "Jane Doe", "address": "1 Main St, Plano, TX 75024"},
		map[string]any{"title": "John Roe", "address": "nowhere"},
		map[string]any{"address": "1 Main St, Plano, TX 75024"},
		json.Number("3"),
	}

	out, stats := Apify(items)

	if len(out) != 1 || stats.Extracted != 1 {
		t.Errorf("Extracted = %d, want 1", stats.Extracted)
	}

	if stats.Loaded != 4 || stats.Skipped != 3 || stats.NoLocation != 1 {
		t.Errorf("Unexpected stats: %+v", stats)
	}

	if stats.Rate() != 25 {
		t.Errorf("Rate = %v, want 25", stats.Rate())
	}
}
