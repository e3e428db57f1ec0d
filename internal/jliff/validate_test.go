package jliff_test

import (
	"testing"

	"github.com/WeGentic/weg-translator-engine/internal/jliff"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDocument() *jliff.Document {
	return &jliff.Document{
		ProjectName:    "Demo",
		ProjectID:      "p1",
		File:           "a.docx",
		User:           "u",
		SourceLanguage: "en",
		TargetLanguage: "de",
		Transunits: []jliff.TransUnit{
			{UnitID: "1", TransunitID: "u1-s1", Source: "Hi"},
			{UnitID: "1", TransunitID: "u1-s2", Source: "There"},
		},
	}
}

func TestValidateAcceptsWellFormedDocument(t *testing.T) {
	require.NoError(t, jliff.Validate(validDocument()))
}

func TestValidateRejections(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*jliff.Document)
		wantErr string
	}{
		{
			name:    "nil-safe",
			mutate:  nil,
			wantErr: "document is nil",
		},
		{
			name:    "missing project name",
			mutate:  func(d *jliff.Document) { d.ProjectName = "" },
			wantErr: "Project_name",
		},
		{
			name:    "missing languages",
			mutate:  func(d *jliff.Document) { d.SourceLanguage = "" },
			wantErr: "Source_language",
		},
		{
			name:    "missing unit id",
			mutate:  func(d *jliff.Document) { d.Transunits[0].UnitID = "" },
			wantErr: "missing unit id",
		},
		{
			name:    "malformed transunit_id",
			mutate:  func(d *jliff.Document) { d.Transunits[1].TransunitID = "x1-s2" },
			wantErr: "malformed transunit_id",
		},
		{
			name:    "transunit_id addresses a different unit",
			mutate:  func(d *jliff.Document) { d.Transunits[1].TransunitID = "u9-s2" },
			wantErr: "does not address unit",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var doc *jliff.Document
			if tt.mutate != nil {
				doc = validDocument()
				tt.mutate(doc)
			}
			err := jliff.Validate(doc)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateTagMap(t *testing.T) {
	tm := &jliff.TagMap{
		FileID:           "f1",
		PlaceholderStyle: "double-curly",
		Units: []jliff.TagMapUnit{
			{
				UnitID: "1",
				Segments: []jliff.TagMapSegment{
					{
						SegmentID: "1",
						Placeholders: []jliff.TagInstance{
							{Placeholder: "{{ph:1}}", Elem: "ph", ID: "1"},
							{Placeholder: "\n", Elem: "cp"},
						},
					},
				},
			},
		},
	}
	require.NoError(t, jliff.ValidateTagMap(tm))

	t.Run("unrecognizable placeholder", func(t *testing.T) {
		tm.Units[0].Segments[0].Placeholders[0].Placeholder = "{{broken"
		err := jliff.ValidateTagMap(tm)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not a valid marker")
	})

	t.Run("missing file id", func(t *testing.T) {
		err := jliff.ValidateTagMap(&jliff.TagMap{PlaceholderStyle: "double-curly"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "file_id")
	})
}
