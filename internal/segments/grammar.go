package segments

import (
	"regexp"
	"strings"
)

const (
	markerOpen  = "{{"
	markerClose = "}}"
	separator   = ":"
)

// placeholderPattern recognizes one inline placeholder marker. The interior
// is an alphanumeric/underscore type, the separator, then one or more
// non-brace characters captured non-greedily so a marker stops at the first
// valid closing delimiter instead of spanning into the next marker.
// An interior without the separator is not a marker and stays ordinary text.
var placeholderPattern = regexp.MustCompile(`\{\{(\w+):([^{}]+?)\}\}`)

// ExtractPlaceholders returns the raw marker strings found in text, in
// order, without building full tokens. It agrees with Tokenize on which
// substrings are matches.
func ExtractPlaceholders(text string) []string {
	return placeholderPattern.FindAllString(text, -1)
}

// DecomposePlaceholder parses one raw marker string (delimiters attached)
// into its typed fields. It is total: any marker-shaped string decomposes
// into some structure, and malformed input degrades to partially filled
// fields rather than an error.
func DecomposePlaceholder(raw string) PlaceholderDetails {
	interior := strings.TrimSuffix(strings.TrimPrefix(raw, markerOpen), markerClose)
	fields := strings.Split(interior, separator)

	details := PlaceholderDetails{
		Raw:  raw,
		Type: fields[0],
	}
	if len(fields) > 1 {
		details.ID = fields[1]
	}
	if len(fields) > 2 {
		details.Suffix = strings.Join(fields[2:], separator)
	}
	return details
}
