package converter

import (
	"encoding/xml"
	"fmt"
	"io"
	"maps"
	"os"
	"strings"

	"github.com/WeGentic/weg-translator-engine/internal/jliff"
	"github.com/WeGentic/weg-translator-engine/internal/segments"
)

// xliff2Namespace is the only document namespace the converter accepts.
const xliff2Namespace = "urn:oasis:names:tc:xliff:document:2.0"

// FileConversion is the in-memory output for one XLIFF <file> element.
type FileConversion struct {
	FileID string
	Jliff  *jliff.Document
	TagMap *jliff.TagMap
}

// Convert parses the XLIFF document named by opts.Input and returns one
// conversion per <file> element, in document order.
func Convert(opts *Options) ([]FileConversion, error) {
	f, err := os.Open(opts.Input)
	if err != nil {
		return nil, fmt.Errorf("failed to open XLIFF input: %w", err)
	}
	defer f.Close()
	return convertReader(f, opts)
}

// convertReader runs the streaming conversion over an already-open document.
func convertReader(r io.Reader, opts *Options) ([]FileConversion, error) {
	dec := xml.NewDecoder(r)

	root, err := findRootElement(dec)
	if err != nil {
		return nil, err
	}
	if root.Name.Local != "xliff" || root.Name.Space != xliff2Namespace {
		return nil, fmt.Errorf("unsupported root element <%s> in namespace %q, expected <xliff> in %q",
			root.Name.Local, root.Name.Space, xliff2Namespace)
	}
	rootAttrs := collectAttrs(*root)
	if v := rootAttrs["version"]; v != "2.0" {
		return nil, fmt.Errorf("unsupported XLIFF version %q, expected 2.0", v)
	}
	srcLang := rootAttrs["srcLang"]
	if srcLang == "" {
		return nil, fmt.Errorf("XLIFF root is missing the required srcLang attribute")
	}
	trgLang := rootAttrs["trgLang"]

	var conversions []FileConversion
	for {
		t, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("malformed XLIFF document: %w", err)
		}
		switch tok := t.(type) {
		case xml.StartElement:
			if tok.Name.Local == "file" {
				fc, err := parseFile(dec, tok, opts, srcLang, trgLang)
				if err != nil {
					return nil, err
				}
				conversions = append(conversions, fc)
			} else if err := dec.Skip(); err != nil {
				return nil, fmt.Errorf("malformed XLIFF document: %w", err)
			}
		case xml.EndElement:
			if tok.Name.Local == "xliff" {
				return conversions, nil
			}
		}
	}
	return conversions, nil
}

// findRootElement advances past the prolog to the document element.
func findRootElement(dec *xml.Decoder) (*xml.StartElement, error) {
	for {
		t, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("failed to read XLIFF root element: %w", err)
		}
		if se, ok := t.(xml.StartElement); ok {
			return &se, nil
		}
	}
}

// parseFile consumes one <file> element and assembles its JLIFF document and
// tag map.
func parseFile(dec *xml.Decoder, start xml.StartElement, opts *Options, srcLang, trgLang string) (FileConversion, error) {
	attrs := collectAttrs(start)
	fileID := attrs["id"]
	if fileID == "" {
		return FileConversion{}, fmt.Errorf("<file> element is missing the required id attribute")
	}
	original := attrs["original"]

	var transUnits []jliff.TransUnit
	var tagUnits []jliff.TagMapUnit
	for {
		t, err := dec.Token()
		if err != nil {
			return FileConversion{}, fmt.Errorf("unexpected end of <file id=%q>: %w", fileID, err)
		}
		switch tok := t.(type) {
		case xml.StartElement:
			if tok.Name.Local == "unit" {
				units, tagUnit, err := parseUnit(dec, tok, opts)
				if err != nil {
					return FileConversion{}, err
				}
				transUnits = append(transUnits, units...)
				tagUnits = append(tagUnits, tagUnit)
			} else if err := dec.Skip(); err != nil {
				return FileConversion{}, fmt.Errorf("malformed <file id=%q>: %w", fileID, err)
			}
		case xml.EndElement:
			if tok.Name.Local == "file" {
				doc := &jliff.Document{
					ProjectName:    opts.ProjectName,
					ProjectID:      opts.ProjectID,
					File:           fileID,
					User:           opts.User,
					SourceLanguage: srcLang,
					TargetLanguage: trgLang,
					Transunits:     transUnits,
				}
				if doc.Transunits == nil {
					doc.Transunits = []jliff.TransUnit{}
				}
				tagMap := &jliff.TagMap{
					FileID:           fileID,
					OriginalPath:     original,
					SourceLanguage:   srcLang,
					TargetLanguage:   trgLang,
					PlaceholderStyle: opts.Style.String(),
					Units:            tagUnits,
				}
				if tagMap.Units == nil {
					tagMap.Units = []jliff.TagMapUnit{}
				}
				return FileConversion{FileID: fileID, Jliff: doc, TagMap: tagMap}, nil
			}
		}
	}
}

// parseUnit consumes one <unit> element, collecting its originalData bucket
// before converting each segment against it.
func parseUnit(dec *xml.Decoder, start xml.StartElement, opts *Options) ([]jliff.TransUnit, jliff.TagMapUnit, error) {
	attrs := collectAttrs(start)
	unitID := attrs["id"]
	if unitID == "" {
		return nil, jliff.TagMapUnit{}, fmt.Errorf("<unit> element is missing the required id attribute")
	}

	originalData := map[string]string{}
	var transUnits []jliff.TransUnit
	tagUnit := jliff.TagMapUnit{UnitID: unitID, Segments: []jliff.TagMapSegment{}}
	for {
		t, err := dec.Token()
		if err != nil {
			return nil, jliff.TagMapUnit{}, fmt.Errorf("unexpected end of <unit id=%q>: %w", unitID, err)
		}
		switch tok := t.(type) {
		case xml.StartElement:
			switch tok.Name.Local {
			case "originalData":
				if err := parseOriginalData(dec, originalData); err != nil {
					return nil, jliff.TagMapUnit{}, fmt.Errorf("malformed originalData in <unit id=%q>: %w", unitID, err)
				}
			case "segment":
				tu, tagSegment, err := parseSegment(dec, tok, unitID, originalData, opts)
				if err != nil {
					return nil, jliff.TagMapUnit{}, err
				}
				transUnits = append(transUnits, tu)
				tagUnit.Segments = append(tagUnit.Segments, tagSegment)
			default:
				if err := dec.Skip(); err != nil {
					return nil, jliff.TagMapUnit{}, fmt.Errorf("malformed <unit id=%q>: %w", unitID, err)
				}
			}
		case xml.EndElement:
			if tok.Name.Local == "unit" {
				return transUnits, tagUnit, nil
			}
		}
	}
}

// parseOriginalData fills the unit's id-to-markup bucket from its <data>
// children. Nested markup inside <data> is re-serialized verbatim.
func parseOriginalData(dec *xml.Decoder, store map[string]string) error {
	for {
		t, err := dec.Token()
		if err != nil {
			return err
		}
		switch tok := t.(type) {
		case xml.StartElement:
			if tok.Name.Local != "data" {
				if err := dec.Skip(); err != nil {
					return err
				}
				continue
			}
			id := collectAttrs(tok)["id"]
			content, err := readTextual(dec, tok.Name)
			if err != nil {
				return err
			}
			if id != "" {
				store[id] = content
			}
		case xml.EndElement:
			if tok.Name.Local == "originalData" {
				return nil
			}
		}
	}
}

// readTextual reads the textual content of the current element up to its
// matching end tag, re-serializing any nested markup.
func readTextual(dec *xml.Decoder, name xml.Name) (string, error) {
	var out strings.Builder
	for {
		t, err := dec.Token()
		if err != nil {
			return "", fmt.Errorf("unexpected end of <%s>: %w", name.Local, err)
		}
		switch tok := t.(type) {
		case xml.CharData:
			out.Write(tok)
		case xml.StartElement:
			out.WriteByte('<')
			out.WriteString(tok.Name.Local)
			for _, a := range tok.Attr {
				out.WriteString(" " + a.Name.Local + `="` + a.Value + `"`)
			}
			out.WriteByte('>')
			inner, err := readTextual(dec, tok.Name)
			if err != nil {
				return "", err
			}
			out.WriteString(inner)
			out.WriteString("</" + tok.Name.Local + ">")
		case xml.EndElement:
			if tok.Name == name {
				return out.String(), nil
			}
		}
	}
}

// parseSegment consumes one <segment> element and emits the transunit plus
// its tag-map entry. Source placeholders are authoritative for the tag map.
func parseSegment(dec *xml.Decoder, start xml.StartElement, unitID string, originalData map[string]string, opts *Options) (jliff.TransUnit, jliff.TagMapSegment, error) {
	segmentID := collectAttrs(start)["id"]
	if segmentID == "" {
		segmentID = "0"
	}

	source := NewSegmentBuilder(originalData, opts.Style, opts.KeepInline)
	target := NewSegmentBuilder(originalData, opts.Style, opts.KeepInline)
	for {
		t, err := dec.Token()
		if err != nil {
			return jliff.TransUnit{}, jliff.TagMapSegment{}, fmt.Errorf("unexpected end of <segment id=%q>: %w", segmentID, err)
		}
		switch tok := t.(type) {
		case xml.StartElement:
			switch tok.Name.Local {
			case "source":
				if err := parseTextContainer(dec, tok, source); err != nil {
					return jliff.TransUnit{}, jliff.TagMapSegment{}, err
				}
			case "target":
				if err := parseTextContainer(dec, tok, target); err != nil {
					return jliff.TransUnit{}, jliff.TagMapSegment{}, err
				}
			default:
				if err := dec.Skip(); err != nil {
					return jliff.TransUnit{}, jliff.TagMapSegment{}, fmt.Errorf("malformed <segment id=%q>: %w", segmentID, err)
				}
			}
		case xml.EndElement:
			if tok.Name.Local == "segment" {
				tu := jliff.TransUnit{
					UnitID:            unitID,
					TransunitID:       segments.EncodeSegmentKey(unitID, segmentID),
					Source:            source.Text(),
					TargetTranslation: target.Text(),
				}
				bucket := maps.Clone(originalData)
				if bucket == nil {
					bucket = map[string]string{}
				}
				tagSegment := jliff.TagMapSegment{
					SegmentID:          segmentID,
					Placeholders:       source.Placeholders(),
					OriginalDataBucket: bucket,
				}
				return tu, tagSegment, nil
			}
		}
	}
}

// parseTextContainer feeds the content of a <source> or <target> element
// into the builder, dispatching inline codes to their handlers and skipping
// anything else.
func parseTextContainer(dec *xml.Decoder, start xml.StartElement, b *SegmentBuilder) error {
	for {
		t, err := dec.Token()
		if err != nil {
			return fmt.Errorf("unexpected end of <%s>: %w", start.Name.Local, err)
		}
		switch tok := t.(type) {
		case xml.CharData:
			b.PushText(string(tok))
		case xml.StartElement:
			if isInlineCode(tok.Name.Local) {
				b.HandleStart(tok.Name.Local, collectAttrs(tok))
			} else if err := dec.Skip(); err != nil {
				return fmt.Errorf("malformed <%s>: %w", start.Name.Local, err)
			}
		case xml.EndElement:
			if isInlineCode(tok.Name.Local) {
				b.HandleEnd(tok.Name.Local)
			} else if tok.Name.Local == start.Name.Local {
				return nil
			}
		}
	}
}
