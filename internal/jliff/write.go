package jliff

import (
	"encoding/json"
	"fmt"
	"os"
)

// WriteDocument serializes a JLIFF document to path, pretty-printed when
// requested.
func WriteDocument(path string, doc *Document, pretty bool) error {
	return writeJSON(path, doc, pretty)
}

// WriteTagMap serializes a tag map to path.
func WriteTagMap(path string, tm *TagMap, pretty bool) error {
	return writeJSON(path, tm, pretty)
}

func writeJSON(path string, value any, pretty bool) error {
	var (
		payload []byte
		err     error
	)
	if pretty {
		payload, err = json.MarshalIndent(value, "", "  ")
	} else {
		payload, err = json.Marshal(value)
	}
	if err != nil {
		return fmt.Errorf("failed to serialize %s: %w", path, err)
	}

	if err := os.WriteFile(path, payload, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
