package jliff

// TagMap is the companion artifact to a Document: metadata about the inline
// codes that were replaced by placeholders, keyed per unit and segment, so
// the original markup can be reconstructed around an edited translation.
type TagMap struct {
	FileID           string       `json:"file_id"`
	OriginalPath     string       `json:"original_path"`
	SourceLanguage   string       `json:"source_language"`
	TargetLanguage   string       `json:"target_language"`
	PlaceholderStyle string       `json:"placeholder_style"`
	Units            []TagMapUnit `json:"units"`
}

// TagMapUnit holds the tag mapping for one XLIFF <unit>.
type TagMapUnit struct {
	UnitID   string          `json:"unit_id"`
	Segments []TagMapSegment `json:"segments"`
}

// TagMapSegment holds the ordered placeholder inventory for one <segment>,
// plus the unit's originalData bucket the placeholders resolve against.
type TagMapSegment struct {
	SegmentID          string            `json:"segment_id"`
	Placeholders       []TagInstance     `json:"placeholders_in_order"`
	OriginalDataBucket map[string]string `json:"originalData_bucket"`
}

// TagInstance describes one placeholder emitted into segment text.
type TagInstance struct {
	// Placeholder is the exact marker string substituted into the text.
	Placeholder string `json:"placeholder"`
	// Elem is the XLIFF inline element name (ph, pc, sc, ec, cp).
	Elem string `json:"elem"`
	// ID is the element's id attribute, empty when it had none.
	ID string `json:"id,omitempty"`
	// Attrs preserves every attribute on the inline element.
	Attrs map[string]string `json:"attrs"`
	// OriginalData is the resolved original content, when referenced.
	OriginalData string `json:"originalData,omitempty"`
}
