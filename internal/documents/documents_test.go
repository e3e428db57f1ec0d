package documents

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/WeGentic/weg-translator-engine/internal/jliff"
	"github.com/WeGentic/weg-translator-engine/internal/segments"
)

func sampleDocument() *jliff.Document {
	return &jliff.Document{
		ProjectName:    "Guide",
		ProjectID:      "proj-1",
		File:           "f1",
		User:           "reviewer",
		SourceLanguage: "en-US",
		TargetLanguage: "it-IT",
		Transunits: []jliff.TransUnit{
			{
				UnitID:            "1",
				TransunitID:       "u1-s1",
				Source:            "Hello {{pc:1:start}}world{{pc:1:end}}!",
				TargetTranslation: "Ciao {{pc:1:start}}mondo{{pc:1:end}}!",
			},
			{
				UnitID:      "1",
				TransunitID: "u1-s2",
				Source:      "Press {{ph:br1}} to continue.",
			},
		},
	}
}

func writeArtifact(t *testing.T, doc *jliff.Document) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "guide.jliff.json")
	require.NoError(t, jliff.WriteDocument(path, doc, false))
	return path
}

func TestManagerOpen(t *testing.T) {
	m := NewManager()
	path := writeArtifact(t, sampleDocument())

	doc, err := m.Open(path)
	require.NoError(t, err)
	assert.Equal(t, path, doc.Path)
	assert.Equal(t, 0, doc.Version)
	assert.Len(t, doc.Payload.Transunits, 2)
	assert.Nil(t, doc.TagMap)
	assert.Equal(t, []string{path}, m.Paths())
}

func TestManagerOpenLoadsCompanionTagMap(t *testing.T) {
	m := NewManager()
	path := writeArtifact(t, sampleDocument())

	tagPath := filepath.Join(filepath.Dir(path), "guide.tags.json")
	tm := &jliff.TagMap{
		FileID:           "f1",
		PlaceholderStyle: "double-curly",
		Units:            []jliff.TagMapUnit{{UnitID: "1", Segments: []jliff.TagMapSegment{}}},
	}
	require.NoError(t, jliff.WriteTagMap(tagPath, tm, false))

	doc, err := m.Open(path)
	require.NoError(t, err)
	require.NotNil(t, doc.TagMap)
	assert.Equal(t, "f1", doc.TagMap.FileID)
}

func TestManagerOpenRejectsInvalidDocument(t *testing.T) {
	m := NewManager()
	broken := sampleDocument()
	broken.ProjectName = ""
	path := writeArtifact(t, broken)

	_, err := m.Open(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Project_name")
}

func TestManagerGetUnopened(t *testing.T) {
	m := NewManager()
	_, err := m.Get("nope.jliff.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not open")
}

func TestManagerUpdateTarget(t *testing.T) {
	m := NewManager()
	path := writeArtifact(t, sampleDocument())
	doc, err := m.Open(path)
	require.NoError(t, err)

	updated, err := m.UpdateTarget(path, "u1-s2", doc.Version, "Premi {{ph:br1}} per continuare.")
	require.NoError(t, err)
	assert.Equal(t, 1, updated.Version)
	assert.Equal(t, 1, updated.Revision("u1-s2", segments.VariantTarget))
	assert.Equal(t, 0, updated.Revision("u1-s2", segments.VariantSource))

	tu := updated.Payload.Transunits[1]
	assert.Equal(t, "Premi {{ph:br1}} per continuare.", tu.TargetTranslation)
}

func TestManagerUpdateTargetRejectsStaleVersion(t *testing.T) {
	m := NewManager()
	path := writeArtifact(t, sampleDocument())
	_, err := m.Open(path)
	require.NoError(t, err)

	_, err = m.UpdateTarget(path, "u1-s1", 0, "first")
	require.NoError(t, err)

	_, err = m.UpdateTarget(path, "u1-s1", 0, "second")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "stale edit")
}

func TestManagerUpdateTargetUnknownSegment(t *testing.T) {
	m := NewManager()
	path := writeArtifact(t, sampleDocument())
	_, err := m.Open(path)
	require.NoError(t, err)

	_, err = m.UpdateTarget(path, "u9-s9", 0, "text")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no segment")
}

func TestManagerTokens(t *testing.T) {
	m := NewManager()
	path := writeArtifact(t, sampleDocument())
	_, err := m.Open(path)
	require.NoError(t, err)

	tokens, err := m.SourceTokens(path, "u1-s2")
	require.NoError(t, err)
	require.Len(t, tokens, 3)
	assert.Equal(t, segments.KindText, tokens[0].Kind)
	assert.Equal(t, "Press ", tokens[0].Value)
	assert.Equal(t, segments.KindPlaceholder, tokens[1].Kind)
	assert.Equal(t, "{{ph:br1}}", tokens[1].Value)
	assert.Equal(t, "br1", tokens[1].PlaceholderID)

	target, err := m.TargetTokens(path, "u1-s1")
	require.NoError(t, err)
	var rebuilt string
	for _, tok := range target {
		rebuilt += tok.Value
	}
	assert.Equal(t, "Ciao {{pc:1:start}}mondo{{pc:1:end}}!", rebuilt)
}

func TestManagerTokenCaching(t *testing.T) {
	m := NewManager()
	path := writeArtifact(t, sampleDocument())
	_, err := m.Open(path)
	require.NoError(t, err)

	_, err = m.SourceTokens(path, "u1-s1")
	require.NoError(t, err)
	_, err = m.SourceTokens(path, "u1-s1")
	require.NoError(t, err)
	assert.Equal(t, 1, m.CachedTokenRuns())

	// An applied edit bumps the target revision and lands under a new key.
	_, err = m.TargetTokens(path, "u1-s1")
	require.NoError(t, err)
	_, err = m.UpdateTarget(path, "u1-s1", 0, "Ciao mondo!")
	require.NoError(t, err)
	_, err = m.TargetTokens(path, "u1-s1")
	require.NoError(t, err)
	assert.Equal(t, 3, m.CachedTokenRuns())

	m.ResetTokenCache()
	assert.Equal(t, 0, m.CachedTokenRuns())
}

func TestManagerSaveRoundTrip(t *testing.T) {
	m := NewManager()
	path := writeArtifact(t, sampleDocument())
	_, err := m.Open(path)
	require.NoError(t, err)

	_, err = m.UpdateTarget(path, "u1-s2", 0, "Premi per continuare.")
	require.NoError(t, err)
	require.NoError(t, m.Save(path, true))

	reloaded, err := jliff.ReadDocument(path)
	require.NoError(t, err)
	assert.Equal(t, "Premi per continuare.", reloaded.Transunits[1].TargetTranslation)
}

func TestManagerClose(t *testing.T) {
	m := NewManager()
	path := writeArtifact(t, sampleDocument())
	_, err := m.Open(path)
	require.NoError(t, err)

	m.Close(path)
	_, err = m.Get(path)
	require.Error(t, err)

	// Closing again is harmless.
	m.Close(path)
}
