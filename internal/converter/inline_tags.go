package converter

import "encoding/xml"

// isInlineCode reports whether name is an XLIFF 2.0 inline code element.
func isInlineCode(name string) bool {
	switch name {
	case "ph", "pc", "sc", "ec", "cp":
		return true
	}
	return false
}

// collectAttrs flattens the attributes of a start element into a map keyed
// by local name.
func collectAttrs(se xml.StartElement) map[string]string {
	attrs := make(map[string]string, len(se.Attr))
	for _, a := range se.Attr {
		attrs[a.Name.Local] = a.Value
	}
	return attrs
}

// resolveOriginalData looks up the original inline markup for a code,
// preferring an explicit dataRef over the code's own id.
func resolveOriginalData(store map[string]string, attrs map[string]string, id string) string {
	if ref, ok := attrs["dataRef"]; ok {
		if data, ok := store[ref]; ok {
			return data
		}
	}
	if id != "" {
		if data, ok := store[id]; ok {
			return data
		}
	}
	return ""
}
