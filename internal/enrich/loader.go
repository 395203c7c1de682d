package enrich

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"listingprep/internal/models"
)

// Load errors. All of them are fatal for a run.
var (
	ErrInputNotFound   = errors.New("input file not found")
	ErrInvalidJSON     = errors.New("invalid JSON")
	ErrUnexpectedShape = errors.New("unexpected data format")
)

// Load reads the input file and returns its records.
// keys lists, in priority order, where to look for the record list when the
// document is an object.
func Load(path string, keys []string) ([]models.RawRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrInputNotFound, path)
		}

		return nil, fmt.Errorf("failed to read input: %w", err)
	}

	return Parse(data, keys)
}

// Parse decodes a single JSON document holding the records. An array is
// used as is. For an object the first present key in keys is used and a
// document with none of them yields no records.
func Parse(data []byte, keys []string) ([]models.RawRecord, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: trailing data after document", ErrInvalidJSON)
	}

	switch v := doc.(type) {
	case []any:
		return toRecords(v), nil
	case map[string]any:
		for _, key := range keys {
			list, ok := v[key]
			if !ok {
				continue
			}

			switch items := list.(type) {
			case []any:
				return toRecords(items), nil
			case nil:
				return []models.RawRecord{}, nil
			default:
				return nil, fmt.Errorf("%w: %q is %T, want a list", ErrUnexpectedShape, key, list)
			}
		}

		return []models.RawRecord{}, nil
	default:
		return nil, fmt.Errorf("%w: top-level %T", ErrUnexpectedShape, doc)
	}
}

// toRecords converts decoded list items to records. Items that are not
// objects are wrapped under models.ValueKey so they are counted and then
// rejected with their value intact.
func toRecords(items []any) []models.RawRecord {
	records := make([]models.RawRecord, 0, len(items))

	for _, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			obj = map[string]any{models.ValueKey: item}
		}

		records = append(records, models.RawRecord(obj))
	}

	return records
}
