// Package documents manages the JLIFF documents a translation session has
// open: loading artifacts from disk, applying target edits with optimistic
// version checks, and tokenizing segment text through a shared token cache.
package documents

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/WeGentic/weg-translator-engine/internal/jliff"
	"github.com/WeGentic/weg-translator-engine/internal/log"
	"github.com/WeGentic/weg-translator-engine/internal/segments"
)

// Document is one open JLIFF artifact plus its editing state. Version
// increments on every applied edit; revs tracks per-segment, per-variant
// revision counters so cached token runs invalidate independently.
type Document struct {
	Path    string
	Payload *jliff.Document
	TagMap  *jliff.TagMap
	Version int

	revs map[string]int
}

// revKey joins a segment key and variant into the revs map key.
func revKey(segmentKey string, variant segments.Variant) string {
	return segmentKey + "::" + string(variant)
}

// Revision returns the current revision counter for one segment variant.
// Unedited segments are at revision zero.
func (d *Document) Revision(segmentKey string, variant segments.Variant) int {
	return d.revs[revKey(segmentKey, variant)]
}

// transunit finds the transunit addressed by a segment key.
func (d *Document) transunit(segmentKey string) (*jliff.TransUnit, error) {
	for i := range d.Payload.Transunits {
		if d.Payload.Transunits[i].TransunitID == segmentKey {
			return &d.Payload.Transunits[i], nil
		}
	}
	return nil, fmt.Errorf("document %s has no segment %q", d.Path, segmentKey)
}

// Manager tracks the set of open documents, keyed by JLIFF artifact path.
// All methods are safe for concurrent use.
type Manager struct {
	mu        sync.RWMutex
	open      map[string]*Document
	tokenizer *segments.Tokenizer
}

// NewManager returns a manager with an empty document set and its own
// token cache.
func NewManager() *Manager {
	return &Manager{
		open:      make(map[string]*Document),
		tokenizer: segments.NewTokenizer(nil),
	}
}

// Open loads and validates the JLIFF artifact at path, together with its
// companion tag map when one exists alongside it. Reopening a path replaces
// the previous state.
func (m *Manager) Open(path string) (*Document, error) {
	payload, err := jliff.ReadDocument(path)
	if err != nil {
		return nil, err
	}
	if err := jliff.Validate(payload); err != nil {
		return nil, fmt.Errorf("invalid JLIFF document %s: %w", path, err)
	}

	doc := &Document{
		Path:    path,
		Payload: payload,
		revs:    make(map[string]int),
	}

	if tagPath, ok := companionTagMapPath(path); ok && fileExists(tagPath) {
		tm, err := jliff.ReadTagMap(tagPath)
		if err != nil {
			log.Warn("Ignoring unreadable tag map %s: %s", tagPath, err)
		} else if err := jliff.ValidateTagMap(tm); err != nil {
			log.Warn("Ignoring invalid tag map %s: %s", tagPath, err)
		} else {
			doc.TagMap = tm
		}
	}

	m.mu.Lock()
	m.open[path] = doc
	m.mu.Unlock()
	log.Debug("Opened document %s (%d segments)", path, len(payload.Transunits))
	return doc, nil
}

// Get returns the open document at path.
func (m *Manager) Get(path string) (*Document, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	doc, ok := m.open[path]
	if !ok {
		return nil, fmt.Errorf("document %s is not open", path)
	}
	return doc, nil
}

// Close forgets the document at path. Closing an unopened path is a no-op.
func (m *Manager) Close(path string) {
	m.mu.Lock()
	delete(m.open, path)
	m.mu.Unlock()
}

// Paths returns the open artifact paths.
func (m *Manager) Paths() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	paths := make([]string, 0, len(m.open))
	for p := range m.open {
		paths = append(paths, p)
	}
	return paths
}

// UpdateTarget applies an edit to one segment's target text. The caller
// passes the document version it last observed; a mismatch means another
// writer got there first and the edit is rejected.
func (m *Manager) UpdateTarget(path, segmentKey string, version int, text string) (*Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	doc, ok := m.open[path]
	if !ok {
		return nil, fmt.Errorf("document %s is not open", path)
	}
	if doc.Version != version {
		return nil, fmt.Errorf("stale edit for %s: document is at version %d, edit based on %d",
			path, doc.Version, version)
	}

	tu, err := doc.transunit(segmentKey)
	if err != nil {
		return nil, err
	}
	tu.TargetTranslation = text
	doc.Version++
	doc.revs[revKey(segmentKey, segments.VariantTarget)]++
	log.Debug("Updated %s %s target (version %d)", path, segmentKey, doc.Version)
	return doc, nil
}

// Save writes the document's current payload back to its artifact path.
func (m *Manager) Save(path string, pretty bool) error {
	m.mu.RLock()
	doc, ok := m.open[path]
	m.mu.RUnlock()
	if !ok {
		return fmt.Errorf("document %s is not open", path)
	}
	return jliff.WriteDocument(doc.Path, doc.Payload, pretty)
}

// SourceTokens tokenizes a segment's source text, served from the shared
// cache when the segment has not changed.
func (m *Manager) SourceTokens(path, segmentKey string) ([]segments.Token, error) {
	return m.tokens(path, segmentKey, segments.VariantSource)
}

// TargetTokens tokenizes a segment's current target text.
func (m *Manager) TargetTokens(path, segmentKey string) ([]segments.Token, error) {
	return m.tokens(path, segmentKey, segments.VariantTarget)
}

func (m *Manager) tokens(path, segmentKey string, variant segments.Variant) ([]segments.Token, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	doc, ok := m.open[path]
	if !ok {
		return nil, fmt.Errorf("document %s is not open", path)
	}
	tu, err := doc.transunit(segmentKey)
	if err != nil {
		return nil, err
	}

	text := tu.Source
	if variant == segments.VariantTarget {
		text = tu.TargetTranslation
	}
	cacheKey := segments.ComposeCacheKey(segmentKey, variant, text, doc.Revision(segmentKey, variant))
	return m.tokenizer.TokenizeWithKey(text, cacheKey), nil
}

// ResetTokenCache drops every cached token run. Documents stay open.
func (m *Manager) ResetTokenCache() {
	m.tokenizer.Reset()
}

// CachedTokenRuns reports the number of token runs currently cached.
func (m *Manager) CachedTokenRuns() int {
	return m.tokenizer.Cache().Len()
}

// companionTagMapPath derives the tag map path next to a JLIFF artifact.
func companionTagMapPath(jliffPath string) (string, bool) {
	const suffix = ".jliff.json"
	if !strings.HasSuffix(jliffPath, suffix) {
		return "", false
	}
	return strings.TrimSuffix(jliffPath, suffix) + ".tags.json", true
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
