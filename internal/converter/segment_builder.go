package converter

import (
	"fmt"
	"maps"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/WeGentic/weg-translator-engine/internal/jliff"
)

// pcEntry tracks an open <pc> element so its closing half reuses the same
// placeholder identifier.
type pcEntry struct {
	placeholderID string
	tagID         string
}

// SegmentBuilder assembles the translatable text of one <source> or <target>
// container, substituting placeholders for inline codes and recording the
// tag metadata needed to reconstruct the original markup.
type SegmentBuilder struct {
	text         strings.Builder
	placeholders []jliff.TagInstance
	originalData map[string]string
	style        PlaceholderStyle
	keepInline   bool
	generated    int
	pcStack      []pcEntry
}

// NewSegmentBuilder returns a builder backed by the unit's originalData
// bucket.
func NewSegmentBuilder(originalData map[string]string, style PlaceholderStyle, keepInline bool) *SegmentBuilder {
	return &SegmentBuilder{
		placeholders: []jliff.TagInstance{},
		originalData: originalData,
		style:        style,
		keepInline:   keepInline,
	}
}

// PushText appends literal character data to the segment.
func (b *SegmentBuilder) PushText(text string) {
	b.text.WriteString(text)
}

// Text returns the accumulated segment text.
func (b *SegmentBuilder) Text() string {
	return b.text.String()
}

// Placeholders returns the recorded tag instances in document order.
func (b *SegmentBuilder) Placeholders() []jliff.TagInstance {
	return b.placeholders
}

// HandleStart processes the opening tag of an inline code element.
func (b *SegmentBuilder) HandleStart(name string, attrs map[string]string) {
	switch name {
	case "pc":
		id := attrs["id"]
		placeholder, effectiveID := b.composePlaceholder(name, id, "start")
		b.recordPlaceholder(placeholder, name, id, attrs)
		if !b.keepInline {
			b.text.WriteString(placeholder)
		}
		b.pcStack = append(b.pcStack, pcEntry{placeholderID: effectiveID, tagID: id})
	case "ec":
		// An isolated end code names its opening half through startRef.
		id := attrs["startRef"]
		if id == "" {
			id = attrs["id"]
		}
		placeholder, _ := b.composePlaceholder(name, id, "")
		b.recordPlaceholder(placeholder, name, id, attrs)
		if !b.keepInline {
			b.text.WriteString(placeholder)
		}
	case "cp":
		// Code points render in both modes: either as the character itself
		// when printable, or as a placeholder carrying the hex value.
		placeholder := b.composeCodePoint(attrs)
		b.recordPlaceholder(placeholder, name, "", attrs)
		b.text.WriteString(placeholder)
	default:
		id := attrs["id"]
		placeholder, _ := b.composePlaceholder(name, id, "")
		b.recordPlaceholder(placeholder, name, id, attrs)
		if !b.keepInline {
			b.text.WriteString(placeholder)
		}
	}
}

// HandleEnd closes a paired code, emitting the end placeholder for the
// matching start. Unbalanced end tags are ignored.
func (b *SegmentBuilder) HandleEnd(name string) {
	if name != "pc" || len(b.pcStack) == 0 {
		return
	}
	entry := b.pcStack[len(b.pcStack)-1]
	b.pcStack = b.pcStack[:len(b.pcStack)-1]

	placeholder, _ := b.composePlaceholder(name, entry.placeholderID, "end")
	attrs := map[string]string{}
	if entry.tagID != "" {
		attrs["id"] = entry.tagID
	}
	b.recordPlaceholder(placeholder, name, entry.tagID, attrs)
	if !b.keepInline {
		b.text.WriteString(placeholder)
	}
}

// composePlaceholder renders a marker for the element, generating an
// identifier when the source omitted one. It returns the marker and the
// identifier actually used.
func (b *SegmentBuilder) composePlaceholder(elem, id, suffix string) (string, string) {
	if id == "" {
		id = b.generateID(elem)
	}
	if suffix != "" {
		return "{{" + elem + ":" + id + ":" + suffix + "}}", id
	}
	return "{{" + elem + ":" + id + "}}", id
}

// composeCodePoint renders a <cp> element. Printable characters become the
// character itself; control characters other than newline and tab become a
// placeholder carrying the hex value.
func (b *SegmentBuilder) composeCodePoint(attrs map[string]string) string {
	hex := attrs["hex"]
	if hex != "" {
		if code, err := strconv.ParseUint(hex, 16, 32); err == nil {
			r := rune(code)
			if utf8.ValidRune(r) && (!unicode.IsControl(r) || r == '\n' || r == '\t') {
				return string(r)
			}
		}
	}

	id := hex
	if id == "" {
		id = b.generateID("cp")
	}
	return "{{cp:" + id + "}}"
}

// generateID mints a deterministic identifier for codes missing one.
func (b *SegmentBuilder) generateID(elem string) string {
	b.generated++
	return fmt.Sprintf("%s_auto%d", elem, b.generated)
}

// recordPlaceholder appends the tag instance backing a rendered marker.
func (b *SegmentBuilder) recordPlaceholder(placeholder, elem, id string, attrs map[string]string) {
	instance := jliff.TagInstance{
		Placeholder:  placeholder,
		Elem:         elem,
		ID:           id,
		Attrs:        maps.Clone(attrs),
		OriginalData: resolveOriginalData(b.originalData, attrs, id),
	}
	if instance.Attrs == nil {
		instance.Attrs = map[string]string{}
	}
	b.placeholders = append(b.placeholders, instance)
}
