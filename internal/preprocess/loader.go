// Package preprocess adapts scraper exports into simplified records for the enricher.
package preprocess

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"strings"
)

// Input formats detected by LoadItems.
const (
	FormatJSON  = "json"
	FormatJSONL = "jsonl"
)

// LoadStats describes how the input was read.
type LoadStats struct {
	Format   string
	BadLines int
}

// LoadItems reads scraper output. A single JSON document is tried first: an
// array yields its elements and any other value yields itself. Otherwise the
// data is read as JSON Lines, skipping blank lines and lines starting with #.
// Lines that fail to parse are dropped and counted.
func LoadItems(data []byte) ([]any, LoadStats) {
	if doc, err := decodeOne(data); err == nil {
		if items, ok := doc.([]any); ok {
			return items, LoadStats{Format: FormatJSON}
		}

		return []any{doc}, LoadStats{Format: FormatJSON}
	}

	stats := LoadStats{Format: FormatJSONL}
	items := []any{}

	for line := range strings.SplitSeq(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		item, err := decodeOne([]byte(line))
		if err != nil {
			stats.BadLines++
			continue
		}

		items = append(items, item)
	}

	return items, stats
}

var errTrailingData = errors.New("trailing data after document")

func decodeOne(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errTrailingData
	}

	return v, nil
}
