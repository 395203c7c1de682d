package enrich

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"listingprep/internal/logger"
	"listingprep/internal/models"
	"listingprep/internal/normalizer"
)

func sampleRecords() []models.RawRecord {
	return []models.RawRecord{
		{"title": "Jane Doe", "city": "austin", "state": "texas", "rating": json.Number("4.5")},
		{"title": "Independent Beauty Consultant", "city": "Dallas", "state": "TX"},
		{"title": "John Smith", "city": "", "state": "TX"},
		{"title": "Maria Garcia", "city": "miami", "state": "FL", "website": "https://maria.example"},
		{"title": "Bob Stone", "city": "Denver", "state": "Colorodo"},
		{},
	}
}

func TestEnricher_Run(t *testing.T) {
	e := NewEnricher("Acme", nil, logger.Discard())

	res := e.Run(sampleRecords())

	if res.Total != 6 {
		t.Errorf("Total = %d, want 6", res.Total)
	}

	if len(res.Consultants) != 2 {
		t.Fatalf("Valid = %d, want 2", len(res.Consultants))
	}

	if len(res.Skipped) != 4 {
		t.Fatalf("Skipped = %d, want 4", len(res.Skipped))
	}

	jane := res.Consultants[0]
	if jane.FirstName != "Jane" || jane.City != "Austin" || jane.State != "TX" || jane.Company != "Acme" {
		t.Errorf("Unexpected first record: %+v", jane)
	}

	if jane.Rating == nil || *jane.Rating != 4.5 {
		t.Errorf("Rating = %v, want 4.5", jane.Rating)
	}

	wantReasons := []string{
		normalizer.ReasonInvalidName,
		normalizer.ReasonInvalidLocation,
		normalizer.ReasonInvalidLocation,
		normalizer.ReasonInvalidName,
	}

	for i, want := range wantReasons {
		if res.Skipped[i].Reason != want {
			t.Errorf("Skipped[%d].Reason = %q, want %q", i, res.Skipped[i].Reason, want)
		}
	}
}

func TestResult_CountsAlwaysAddUp(t *testing.T) {
	e := NewEnricher("Acme", nil, nil)
	records := sampleRecords()

	for n := 0; n <= len(records); n++ {
		doc := e.Run(records[:n]).Document()

		if doc.TotalRecords != doc.ValidRecords+doc.SkippedRecords {
			t.Errorf("n=%d: total %d != valid %d + skipped %d", n, doc.TotalRecords, doc.ValidRecords, doc.SkippedRecords)
		}
	}
}

func TestResult_Document(t *testing.T) {
	e := NewEnricher("Acme", nil, nil)

	doc := e.Run(sampleRecords()).Document()

	if doc.Company != "Acme" {
		t.Errorf("Company = %q", doc.Company)
	}

	if doc.SuccessRate != "33.3%" {
		t.Errorf("SuccessRate = %q, want 33.3%%", doc.SuccessRate)
	}
}

func TestResult_Document_Empty(t *testing.T) {
	doc := NewEnricher("Acme", nil, nil).Run(nil).Document()

	if doc.SuccessRate != "0.0%" {
		t.Errorf("SuccessRate = %q, want 0.0%%", doc.SuccessRate)
	}

	data, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	if !strings.Contains(string(data), `"consultants":[]`) {
		t.Errorf("Expected empty consultants list, got %s", data)
	}
}

func TestFormatRate(t *testing.T) {
	tests := map[float64]string{
		0:               "0.0%",
		100:             "100.0%",
		2.0 / 3.0 * 100: "66.7%",
		1.0 / 3.0 * 100: "33.3%",
		12.345:          "12.3%",
	}

	for rate, want := range tests {
		if got := FormatRate(rate); got != want {
			t.Errorf("FormatRate(%v) = %q, want %q", rate, got, want)
		}
	}
}

func TestResult_PrintSummary(t *testing.T) {
	res := NewEnricher("Acme", nil, nil).Run(sampleRecords())

	var buf bytes.Buffer
	res.PrintSummary(&buf, 10)

	out := buf.String()
	for _, want := range []string{
		"Valid records: 2",
		"Skipped records: 4",
		"Success rate: 33.3%",
		"SKIPPED RECORDS:",
		"  - Independent Beauty Consultant (Invalid name)",
		"  - John Smith (Missing/invalid location)",
		"  - N/A (Invalid name)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Summary missing %q:\n%s", want, out)
		}
	}
}

func TestResult_PrintSummary_Truncated(t *testing.T) {
	records := make([]models.RawRecord, 0, 12)
	for i := 0; i < 12; i++ {
		records = append(records, models.RawRecord{"title": fmt.Sprintf("Sales %d", i)})
	}

	res := NewEnricher("Acme", nil, nil).Run(records)

	var buf bytes.Buffer
	res.PrintSummary(&buf, 10)

	out := buf.String()
	if !strings.Contains(out, "First 10 skipped records:") {
		t.Errorf("Expected truncated header:\n%s", out)
	}

	if !strings.Contains(out, "... and 2 more") {
		t.Errorf("Expected remainder line:\n%s", out)
	}

	if strings.Contains(out, "Sales 10") {
		t.Errorf("Record beyond preview printed:\n%s", out)
	}
}

func TestResult_PrintSummary_LongTitle(t *testing.T) {
	long := "Senior Sales Director " + strings.Repeat("x", 80)
	res := NewEnricher("Acme", nil, nil).Run([]models.RawRecord{{"title": long}})

	var buf bytes.Buffer
	res.PrintSummary(&buf, 10)

	want := "  - " + long[:maxSummaryTitle] + "... (Invalid name)"
	if !strings.Contains(buf.String(), want) {
		t.Errorf("Summary missing truncated title %q:\n%s", want, buf.String())
	}
}

func TestDisplayTitle(t *testing.T) {
	tests := []struct {
		raw  models.RawRecord
		want string
	}{
		{models.RawRecord{"title": " Jane Doe "}, "Jane Doe"},
		{models.RawRecord{"title": 42}, "42"},
		{models.RawRecord{"title": nil}, "N/A"},
		{models.RawRecord{}, "N/A"},
	}

	for _, tt := range tests {
		if got := DisplayTitle(tt.raw); got != tt.want {
			t.Errorf("DisplayTitle(%v) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}
