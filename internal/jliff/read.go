package jliff

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/tidwall/jsonc"
)

// ParseDocument parses JLIFF artifact bytes. Comments and trailing commas
// are tolerated (artifacts are occasionally hand-annotated during review).
func ParseDocument(data []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(jsonc.ToJSON(data), &doc); err != nil {
		return nil, fmt.Errorf("failed to parse JLIFF document: %w", err)
	}
	return &doc, nil
}

// ParseTagMap parses tag-map artifact bytes, with the same tolerance as
// ParseDocument.
func ParseTagMap(data []byte) (*TagMap, error) {
	var tm TagMap
	if err := json.Unmarshal(jsonc.ToJSON(data), &tm); err != nil {
		return nil, fmt.Errorf("failed to parse tag map: %w", err)
	}
	return &tm, nil
}

// ReadDocument reads and parses a JLIFF artifact from disk.
func ReadDocument(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	doc, err := ParseDocument(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// ReadTagMap reads and parses a tag-map artifact from disk.
func ReadTagMap(path string) (*TagMap, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	tm, err := ParseTagMap(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return tm, nil
}
