package utils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// DefaultIndent is the indentation used for written JSON files.
const DefaultIndent = "  "

// MarshalJSON encodes v with the given indent. Unlike json.MarshalIndent it
// leaves <, > and & unescaped so titles and URLs stay readable. Non-ASCII
// characters are always written literally by encoding/json.
func MarshalJSON(v any, indent string) ([]byte, error) {
	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", indent)

	if err := enc.Encode(v); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// WriteJSONFile writes v as pretty-printed JSON, creating parent directories.
func WriteJSONFile(path string, v any, indent string) error {
	data, err := MarshalJSON(v, indent)
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	return nil
}
