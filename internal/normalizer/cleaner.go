// Package normalizer turns raw scraped listings into validated consultant records.
package normalizer

import (
	"errors"
	"strings"

	"listingprep/internal/models"
)

// Rejection reasons reported for skipped records.
const (
	ReasonInvalidName     = "Invalid name"
	ReasonInvalidLocation = "Missing/invalid location"
)

// Cleaner validates one raw record at a time and builds its cleaned form.
type Cleaner struct {
	validator   *Validator
	transformer *Transformer
}

// NewCleaner creates a cleaner for company. A nil validator means the
// built-in denylist.
func NewCleaner(company string, validator *Validator) *Cleaner {
	if validator == nil {
		validator = NewValidator()
	}

	return &Cleaner{
		validator:   validator,
		transformer: NewTransformer(company),
	}
}

// Clean validates raw and returns the cleaned record. The name is checked
// before the location, so the returned error names the first failing check.
func (c *Cleaner) Clean(raw models.RawRecord) (*models.CleanedRecord, error) {
	// 1. Name
	first, last, err := c.validator.ExtractName(titleOf(raw))
	if err != nil {
		return nil, err
	}

	// 2. Location
	city, state, err := c.validator.ValidateLocation(raw)
	if err != nil {
		return nil, err
	}

	// 3. Assemble
	return c.transformer.Transform(first, last, city, state, raw), nil
}

// titleOf returns the text holding the person's name. Records that were
// already cleaned carry first_name/last_name instead of a title.
func titleOf(raw models.RawRecord) string {
	if title := raw.Text("title"); title != "" {
		return title
	}

	return strings.TrimSpace(raw.Text("first_name") + " " + raw.Text("last_name"))
}

// Reason maps an error returned by Clean to its reported rejection reason.
func Reason(err error) string {
	if errors.Is(err, ErrInvalidLocation) {
		return ReasonInvalidLocation
	}

	return ReasonInvalidName
}
