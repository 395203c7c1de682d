// Package models defines the record shapes shared by the preprocessors and the enricher.
package models

import "strings"

// ValueKey holds a list item that was not a JSON object. The item is kept
// under this key so it is still counted, rejected and reported.
const ValueKey = "value"

// RawRecord is a single scraped listing as decoded from JSON.
// Its shape varies by data source and no schema is enforced.
type RawRecord map[string]any

// Text returns the trimmed string value for key.
// Missing keys and non-string values yield "".
func (r RawRecord) Text(key string) string {
	s, ok := r[key].(string)
	if !ok {
		return ""
	}

	return strings.TrimSpace(s)
}

// FirstText returns the first non-empty string value among keys.
func (r RawRecord) FirstText(keys ...string) string {
	for _, key := range keys {
		if s := r.Text(key); s != "" {
			return s
		}
	}

	return ""
}

// First returns the first value among keys that is present and not null.
func (r RawRecord) First(keys ...string) (any, bool) {
	for _, key := range keys {
		if v, ok := r[key]; ok && v != nil {
			return v, true
		}
	}

	return nil, false
}
