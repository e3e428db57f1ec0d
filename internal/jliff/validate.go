package jliff

import (
	"fmt"

	"github.com/WeGentic/weg-translator-engine/internal/segments"
)

// Validate performs structural validation of a parsed JLIFF document:
// required header fields, per-unit identifiers, and consistency between
// each transunit_id and the segment key codec. It reports the first
// violation found.
func Validate(doc *Document) error {
	if doc == nil {
		return fmt.Errorf("document is nil")
	}
	if doc.ProjectName == "" {
		return fmt.Errorf("missing Project_name")
	}
	if doc.ProjectID == "" {
		return fmt.Errorf("missing Project_ID")
	}
	if doc.SourceLanguage == "" {
		return fmt.Errorf("missing Source_language")
	}
	if doc.TargetLanguage == "" {
		return fmt.Errorf("missing Target_language")
	}

	for i, tu := range doc.Transunits {
		if tu.UnitID == "" {
			return fmt.Errorf("transunit %d: missing unit id", i)
		}
		if tu.TransunitID == "" {
			return fmt.Errorf("transunit %d: missing transunit_id", i)
		}
		unitID, segmentID := segments.DecodeSegmentKey(tu.TransunitID)
		if unitID == "" && segmentID == "" {
			return fmt.Errorf("transunit %d: malformed transunit_id %q", i, tu.TransunitID)
		}
		if unitID != tu.UnitID {
			return fmt.Errorf("transunit %d: transunit_id %q does not address unit %q",
				i, tu.TransunitID, tu.UnitID)
		}
	}
	return nil
}

// ValidateTagMap checks the structural invariants of a tag map: required
// header fields and, per segment, that every recorded placeholder is
// recognized by the placeholder grammar so the renderer will tokenize it
// rather than displaying it as plain text.
func ValidateTagMap(tm *TagMap) error {
	if tm == nil {
		return fmt.Errorf("tag map is nil")
	}
	if tm.FileID == "" {
		return fmt.Errorf("missing file_id")
	}
	if tm.PlaceholderStyle == "" {
		return fmt.Errorf("missing placeholder_style")
	}

	for _, unit := range tm.Units {
		if unit.UnitID == "" {
			return fmt.Errorf("tag map unit with empty unit_id")
		}
		for _, seg := range unit.Segments {
			for _, ph := range seg.Placeholders {
				// cp markers for printable characters are recorded as the
				// literal character, not as a {{...}} marker.
				if ph.Elem == "cp" {
					continue
				}
				if matches := segments.ExtractPlaceholders(ph.Placeholder); len(matches) != 1 || matches[0] != ph.Placeholder {
					return fmt.Errorf("unit %s segment %s: placeholder %q is not a valid marker",
						unit.UnitID, seg.SegmentID, ph.Placeholder)
				}
			}
		}
	}
	return nil
}
