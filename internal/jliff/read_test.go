package jliff_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/WeGentic/weg-translator-engine/internal/jliff"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDocumentToleratesComments(t *testing.T) {
	payload := `{
  // annotated during review
  "Project_name": "Demo",
  "Project_ID": "p1",
  "File": "a.docx",
  "User": "u",
  "Source_language": "en",
  "Target_language": "de",
  "Transunits": [
    {
      "unit id": "1",
      "transunit_id": "u1-s1",
      "Source": "Hello",
      "Target_translation": "Hallo",
    },
  ],
}`

	doc, err := jliff.ParseDocument([]byte(payload))
	require.NoError(t, err, "comments and trailing commas should be tolerated")
	assert.Equal(t, "Demo", doc.ProjectName)
	require.Len(t, doc.Transunits, 1)
	assert.Equal(t, "u1-s1", doc.Transunits[0].TransunitID)
}

func TestParseDocumentInvalidJSON(t *testing.T) {
	_, err := jliff.ParseDocument([]byte("not json at all"))
	assert.Error(t, err)
}

func TestReadWriteDocumentRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "demo.jliff.json")

	doc := &jliff.Document{
		ProjectName:    "Demo",
		ProjectID:      "p1",
		File:           "a.docx",
		User:           "u",
		SourceLanguage: "en",
		TargetLanguage: "de",
		Transunits: []jliff.TransUnit{
			{UnitID: "1", TransunitID: "u1-s1", Source: "Hi", TargetTranslation: "Hallo"},
		},
	}

	require.NoError(t, jliff.WriteDocument(path, doc, true))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "\n  ", "pretty output should be indented")

	parsed, err := jliff.ReadDocument(path)
	require.NoError(t, err)
	assert.Equal(t, doc, parsed)
}

func TestReadDocumentMissingFile(t *testing.T) {
	_, err := jliff.ReadDocument(filepath.Join(t.TempDir(), "absent.jliff.json"))
	assert.Error(t, err)
}

func TestReadWriteTagMapRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "demo.tags.json")

	tm := &jliff.TagMap{
		FileID:           "f1",
		PlaceholderStyle: "double-curly",
		Units:            []jliff.TagMapUnit{{UnitID: "1"}},
	}

	require.NoError(t, jliff.WriteTagMap(path, tm, false))

	parsed, err := jliff.ReadTagMap(path)
	require.NoError(t, err)
	assert.Equal(t, tm, parsed)
}
