package project

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/WeGentic/weg-translator-engine/internal/collections"
	"github.com/WeGentic/weg-translator-engine/internal/log"
)

// Artifact is one discovered JLIFF payload and its companion tag map, if
// present. Paths are absolute within the scanned root.
type Artifact struct {
	JliffPath  string
	TagMapPath string
}

// Workspace is a project root together with its manifest.
type Workspace struct {
	Root     string
	Manifest *Manifest
}

// OpenWorkspace loads the manifest at root.
func OpenWorkspace(root string) (*Workspace, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("failed to open workspace: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("workspace root %s is not a directory", root)
	}

	manifest, err := LoadManifest(filepath.Join(root, ManifestFilename))
	if err != nil {
		return nil, err
	}
	return &Workspace{Root: root, Manifest: manifest}, nil
}

// Artifacts discovers the workspace's generated artifacts.
func (w *Workspace) Artifacts() ([]Artifact, error) {
	return DiscoverArtifacts(w.Root)
}

// DiscoverArtifacts walks root for JLIFF payloads and pairs each with its
// tag map. Results are sorted by payload path.
func DiscoverArtifacts(root string) ([]Artifact, error) {
	matches, err := doublestar.Glob(os.DirFS(root), "**/*.jliff.json")
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s for artifacts: %w", root, err)
	}

	seen := collections.NewSet[string]()
	artifacts := make([]Artifact, 0, len(matches))
	for _, rel := range matches {
		jliffPath := filepath.Join(root, filepath.FromSlash(rel))
		if seen.Has(jliffPath) {
			continue
		}
		seen.Add(jliffPath)

		artifact := Artifact{JliffPath: jliffPath}
		tagPath := strings.TrimSuffix(jliffPath, ".jliff.json") + ".tags.json"
		if _, err := os.Stat(tagPath); err == nil {
			artifact.TagMapPath = tagPath
		} else {
			log.Debug("Artifact %s has no tag map companion", jliffPath)
		}
		artifacts = append(artifacts, artifact)
	}

	sort.Slice(artifacts, func(i, j int) bool {
		return artifacts[i].JliffPath < artifacts[j].JliffPath
	})
	return artifacts, nil
}

// MatchArtifacts filters discovered artifacts by a doublestar pattern
// applied to the payload path relative to root.
func MatchArtifacts(root, pattern string, artifacts []Artifact) ([]Artifact, error) {
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid artifact pattern %q", pattern)
	}

	var matched []Artifact
	for _, a := range artifacts {
		rel, err := filepath.Rel(root, a.JliffPath)
		if err != nil {
			return nil, fmt.Errorf("artifact %s is outside root %s: %w", a.JliffPath, root, err)
		}
		ok, err := doublestar.Match(pattern, filepath.ToSlash(rel))
		if err != nil {
			return nil, fmt.Errorf("invalid artifact pattern %q: %w", pattern, err)
		}
		if ok {
			matched = append(matched, a)
		}
	}
	return matched, nil
}
