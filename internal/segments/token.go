// Package segments splits bilingual segment text into plain-text and
// placeholder tokens, and memoizes the results under revision-aware cache
// keys so that re-rendering an unchanged segment is a map lookup instead of
// a rescan.
//
// Placeholders are the double-curly markers the JLIFF conversion pipeline
// substitutes for inline codes, e.g. {{ph:1}} or {{pc:1:start}}. Token
// sequences are lossless: concatenating Token.Value over a sequence
// reproduces the input text byte for byte.
package segments

// TokenKind discriminates the two token flavours produced by Tokenize.
type TokenKind string

const (
	// KindText marks a run of plain prose between placeholders.
	KindText TokenKind = "text"
	// KindPlaceholder marks one inline placeholder marker.
	KindPlaceholder TokenKind = "placeholder"
)

// Token is one contiguous slice of a segment's text.
type Token struct {
	// Kind is the token discriminator.
	Kind TokenKind `json:"kind"`

	// Value is the literal substring: free prose for text tokens, the full
	// original marker including delimiters for placeholder tokens.
	Value string `json:"value"`

	// PlaceholderID is the identifier encoded in a placeholder marker,
	// empty for text tokens and for markers that carry no identifier.
	PlaceholderID string `json:"placeholderId,omitempty"`
}

// PlaceholderDetails is the decomposed structure of one placeholder marker.
//
// Rejoining Type, ID and Suffix with the separator and re-wrapping them in
// delimiters need not reproduce Raw byte-identically (the separator is
// ambiguous inside Suffix), but Raw itself is always the verbatim marker.
type PlaceholderDetails struct {
	// Raw is the original marker text, unmodified, delimiters included.
	Raw string

	// Type is the mandatory leading tag classifying the placeholder,
	// e.g. "ph", "pc" or "cp". Empty only for degenerate input; callers
	// needing strict validation must check for that themselves.
	Type string

	// ID is the field after the first separator, empty when absent.
	ID string

	// Suffix is any remaining separator-joined fields after ID, empty when
	// none, e.g. "start" in {{pc:1:start}}.
	Suffix string
}
