// Package enrich runs the batch enrichment of scraped consultant listings.
package enrich

import (
	"fmt"

	"listingprep/internal/logger"
	"listingprep/internal/models"
	"listingprep/internal/normalizer"
)

// Enricher cleans a batch of records for one company.
type Enricher struct {
	cleaner *normalizer.Cleaner
	log     *logger.Logger
	company string
}

// NewEnricher creates an enricher. A nil validator means the built-in denylist.
func NewEnricher(company string, validator *normalizer.Validator, log *logger.Logger) *Enricher {
	if log == nil {
		log = logger.Discard()
	}

	return &Enricher{
		cleaner: normalizer.NewCleaner(company, validator),
		log:     log,
		company: company,
	}
}

// Result holds the outcome of one run.
type Result struct {
	Company     string
	Consultants []models.CleanedRecord
	Skipped     []models.Rejection
	Total       int
}

// Run cleans every record. Failures never stop the run; they are collected
// with the reason reported by the cleaner.
func (e *Enricher) Run(records []models.RawRecord) *Result {
	res := &Result{
		Company:     e.company,
		Consultants: make([]models.CleanedRecord, 0, len(records)),
		Skipped:     []models.Rejection{},
		Total:       len(records),
	}

	for i, raw := range records {
		rec, err := e.cleaner.Clean(raw)
		if err != nil {
			e.log.Debug("record skipped", "index", i, "title", raw["title"], "error", err)

			res.Skipped = append(res.Skipped, models.Rejection{
				Original: raw,
				Reason:   normalizer.Reason(err),
			})

			continue
		}

		res.Consultants = append(res.Consultants, *rec)
	}

	e.log.Info("enrichment finished",
		"total", res.Total,
		"valid", len(res.Consultants),
		"skipped", len(res.Skipped),
	)

	return res
}

// SuccessRate returns the share of valid records as a percentage.
func (r *Result) SuccessRate() float64 {
	if r.Total == 0 {
		return 0
	}

	return float64(len(r.Consultants)) / float64(r.Total) * 100
}

// FormatRate renders a percentage with one decimal place, e.g. "83.3%".
func FormatRate(rate float64) string {
	return fmt.Sprintf("%.1f%%", rate)
}

// Document builds the output file contents.
func (r *Result) Document() models.OutputDocument {
	return models.OutputDocument{
		Company:        r.Company,
		TotalRecords:   r.Total,
		ValidRecords:   len(r.Consultants),
		SkippedRecords: len(r.Skipped),
		SuccessRate:    FormatRate(r.SuccessRate()),
		Consultants:    r.Consultants,
	}
}
