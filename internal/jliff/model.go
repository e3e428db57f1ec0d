// Package jliff defines the JLIFF document and tag-map models produced by
// the XLIFF conversion pipeline, plus reading, writing and structural
// validation of the on-disk artifacts. Field names mirror the JLIFF schema
// exactly, including its historical quirks ("unit id" with a space).
package jliff

// Document is one JLIFF artifact: the translatable payload extracted from a
// single XLIFF <file> element.
type Document struct {
	ProjectName    string      `json:"Project_name"`
	ProjectID      string      `json:"Project_ID"`
	File           string      `json:"File"`
	User           string      `json:"User"`
	SourceLanguage string      `json:"Source_language"`
	TargetLanguage string      `json:"Target_language"`
	Transunits     []TransUnit `json:"Transunits"`
}

// TransUnit is one translatable segment. TransunitID is the flattened
// segment key ("u<unit>-s<segment>") that the segments package encodes and
// decodes; UnitID repeats the parent unit identifier on its own.
type TransUnit struct {
	UnitID            string       `json:"unit id"`
	TransunitID       string       `json:"transunit_id"`
	Source            string       `json:"Source"`
	TargetTranslation string       `json:"Target_translation"`
	TargetQA1         string       `json:"Target_QA_1,omitempty"`
	TargetQA2         string       `json:"Target_QA_2,omitempty"`
	TargetPostedit    string       `json:"Target_Postedit,omitempty"`
	TranslationNotes  *NoteBlock   `json:"Translation_notes,omitempty"`
	QANotes           *NoteBlock   `json:"QA_notes,omitempty"`
	SourceNotes       *SourceNotes `json:"Source_notes,omitempty"`
}

// NoteBlock groups reviewer notes into WARNING/CRITICAL/SOURCE_ERROR buckets.
type NoteBlock struct {
	Warning     []string `json:"WARNING,omitempty"`
	Critical    []string `json:"CRITICAL,omitempty"`
	SourceError []string `json:"SOURCE_ERROR,omitempty"`
}

// SourceNotes omits the CRITICAL bucket per the schema.
type SourceNotes struct {
	Warning     []string `json:"WARNING,omitempty"`
	SourceError []string `json:"SOURCE_ERROR,omitempty"`
}
