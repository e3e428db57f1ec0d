package segments

import (
	"strconv"
	"strings"
)

// Variant identifies which side of a segment a token sequence belongs to.
type Variant string

const (
	// VariantSource addresses the source-language text of a segment.
	VariantSource Variant = "source"
	// VariantTarget addresses the target-language text of a segment.
	VariantTarget Variant = "target"
)

const (
	unitMarker       = "u"
	segmentSeparator = "-s"
	cacheKeySep      = "::"
)

// EncodeSegmentKey flattens a (unitId, segmentId) pair into the composite
// key format used throughout the JLIFF artifacts as transunit_id, e.g.
// EncodeSegmentKey("42", "7") == "u42-s7". Neither identifier is validated.
func EncodeSegmentKey(unitID, segmentID string) string {
	return unitMarker + unitID + segmentSeparator + segmentID
}

// DecodeSegmentKey splits a composite segment key back into its unit and
// segment identifiers. A key that does not start with the unit marker is
// malformed and yields two empty strings rather than an error, so corrupt
// addressing metadata stays renderable downstream.
//
// The split point is the rightmost "-s" occurrence; when the unit id itself
// contains "-s" the round-trip with EncodeSegmentKey is not guaranteed.
// XLIFF NMTOKEN-style ids produced by the converter never hit that case.
func DecodeSegmentKey(key string) (unitID, segmentID string) {
	if !strings.HasPrefix(key, unitMarker) {
		return "", ""
	}
	rest := strings.TrimPrefix(key, unitMarker)
	if i := strings.LastIndex(rest, segmentSeparator); i >= 0 {
		return rest[:i], rest[i+len(segmentSeparator):]
	}
	return rest, ""
}

// ComposeCacheKey builds a revision- and variant-aware cache key from a
// segment key plus the literal text:
//
//	segmentKey + "::" + variant + "::" + revision + "::" + text
//
// Embedding the text makes a collision across different text values
// impossible by construction; a cache hit therefore also certifies that the
// text has not drifted from the key's revision stamp. Revision is a
// caller-supplied non-negative counter, bumped whenever prior cached tokens
// for the same literal text must be invalidated.
func ComposeCacheKey(segmentKey string, variant Variant, text string, revision int) string {
	return segmentKey + cacheKeySep + string(variant) + cacheKeySep +
		strconv.Itoa(revision) + cacheKeySep + text
}
