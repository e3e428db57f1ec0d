// Package converter turns XLIFF 2.0 documents into JLIFF and tag-map
// artifacts, replacing inline codes with the double-curly placeholders the
// segments package tokenizes.
package converter

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// PlaceholderStyle selects the placeholder flavour substituted for inline
// codes.
type PlaceholderStyle int

const (
	// DoubleCurly emits {{ph:1}} style placeholders.
	DoubleCurly PlaceholderStyle = iota
)

// String returns the canonical identifier stored in tag-map artifacts.
func (s PlaceholderStyle) String() string {
	switch s {
	case DoubleCurly:
		return "double-curly"
	}
	return "unknown"
}

// Options configures one XLIFF to JLIFF conversion.
type Options struct {
	// Input is the path of the XLIFF 2.0 file to convert.
	Input string
	// OutputDir receives the generated artifacts.
	OutputDir string
	// ProjectName is the human readable project name stored in the payload.
	ProjectName string
	// ProjectID is the stable project identifier; generated when empty.
	ProjectID string
	// User is the operator responsible for the conversion.
	User string
	// FilePrefix overrides the output filename prefix; defaults to the
	// input filename stem.
	FilePrefix string
	// Style selects the placeholder flavour.
	Style PlaceholderStyle
	// KeepInline suppresses placeholder substitution in the text, for
	// callers that post-process inline codes themselves.
	KeepInline bool
	// Pretty indents the generated JSON payloads.
	Pretty bool
}

// NewOptions builds Options with a generated project identifier and the
// default placeholder style.
func NewOptions(input, outputDir, projectName, user string) *Options {
	return &Options{
		Input:       input,
		OutputDir:   outputDir,
		ProjectName: projectName,
		ProjectID:   uuid.NewString(),
		User:        user,
		Style:       DoubleCurly,
	}
}

// prefix resolves the output filename prefix.
func (o *Options) prefix() (string, error) {
	if o.FilePrefix != "" {
		if strings.TrimSpace(o.FilePrefix) == "" {
			return "", fmt.Errorf("file prefix cannot be blank when provided")
		}
		return o.FilePrefix, nil
	}

	base := filepath.Base(o.Input)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	if stem == "" || stem == "." {
		return "", fmt.Errorf("cannot derive a file prefix from input %q", o.Input)
	}
	return stem, nil
}
