package converter

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/WeGentic/weg-translator-engine/internal/jliff"
	"github.com/WeGentic/weg-translator-engine/internal/log"
)

// GeneratedArtifact records where a conversion's outputs were written.
type GeneratedArtifact struct {
	FileID     string
	JliffPath  string
	TagMapPath string
}

// scoredConversion ranks a <file> element by how much translatable content
// it carries.
type scoredConversion struct {
	fc          FileConversion
	segments    int
	sourceChars int
}

// WriteArtifacts converts opts.Input and writes the JLIFF and tag-map
// artifacts for the most substantial <file> element to opts.OutputDir,
// replacing any stale artifacts that share the prefix.
func WriteArtifacts(opts *Options) ([]GeneratedArtifact, error) {
	if opts.ProjectID == "" {
		opts.ProjectID = uuid.NewString()
	}
	prefix, err := opts.prefix()
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(opts.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	conversions, err := Convert(opts)
	if err != nil {
		return nil, err
	}

	scored := scoreConversions(conversions)
	if len(scored) == 0 {
		return nil, fmt.Errorf("no translatable <file> elements found in %s", opts.Input)
	}
	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].segments != scored[j].segments {
			return scored[i].segments > scored[j].segments
		}
		return scored[i].sourceChars > scored[j].sourceChars
	})
	primary := scored[0]
	log.Debug("Selected <file id=%q> as primary (%d segments, %d source chars)",
		primary.fc.FileID, primary.segments, primary.sourceChars)
	for _, s := range scored[1:] {
		log.Debug("Discarding secondary <file id=%q> (%d segments, %d source chars)",
			s.fc.FileID, s.segments, s.sourceChars)
	}

	if err := jliff.Validate(primary.fc.Jliff); err != nil {
		return nil, fmt.Errorf("generated JLIFF for <file id=%q> is invalid: %w", primary.fc.FileID, err)
	}

	if err := removeStaleArtifacts(opts.OutputDir, prefix); err != nil {
		return nil, err
	}

	jliffPath := filepath.Join(opts.OutputDir, prefix+".jliff.json")
	tagMapPath := filepath.Join(opts.OutputDir, prefix+".tags.json")
	if err := jliff.WriteDocument(jliffPath, primary.fc.Jliff, opts.Pretty); err != nil {
		return nil, err
	}
	if err := jliff.WriteTagMap(tagMapPath, primary.fc.TagMap, opts.Pretty); err != nil {
		return nil, err
	}
	log.Info("Wrote artifacts for <file id=%q>: %s, %s", primary.fc.FileID, jliffPath, tagMapPath)

	return []GeneratedArtifact{{
		FileID:     primary.fc.FileID,
		JliffPath:  jliffPath,
		TagMapPath: tagMapPath,
	}}, nil
}

// scoreConversions drops <file> elements with no translatable content and
// scores the rest.
func scoreConversions(conversions []FileConversion) []scoredConversion {
	var scored []scoredConversion
	for _, fc := range conversions {
		nonEmpty := 0
		chars := 0
		for _, tu := range fc.Jliff.Transunits {
			src := strings.TrimSpace(tu.Source)
			if src != "" || strings.TrimSpace(tu.TargetTranslation) != "" {
				nonEmpty++
			}
			chars += utf8.RuneCountInString(src)
		}
		if nonEmpty == 0 {
			log.Debug("Skipping <file id=%q>: no translatable segments", fc.FileID)
			continue
		}
		scored = append(scored, scoredConversion{fc: fc, segments: nonEmpty, sourceChars: chars})
	}
	return scored
}

// removeStaleArtifacts deletes previously generated outputs for the prefix
// so reruns never leave mixed generations behind.
func removeStaleArtifacts(dir, prefix string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("failed to scan output directory: %w", err)
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasSuffix(name, ".jliff.json") && !strings.HasSuffix(name, ".tags.json") {
			continue
		}
		if name != prefix+".jliff.json" && name != prefix+".tags.json" &&
			!strings.HasPrefix(name, prefix+"-") {
			continue
		}
		if err := os.Remove(filepath.Join(dir, name)); err != nil {
			return fmt.Errorf("failed to remove stale artifact %s: %w", name, err)
		}
	}
	return nil
}
