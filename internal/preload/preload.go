// Package preload derives the fixed set of gallery entries present before
// any upload by scanning a directory of trusted static assets.
package preload

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/thinkkisan/think-kisan-blog/internal/gallery"
	"github.com/thinkkisan/think-kisan-blog/internal/ingest"
)

// ScanConfig controls the preload scan.
type ScanConfig struct {
	Dir     string   // Directory holding the static gallery assets.
	Include []string // Glob patterns — only matching files are included.
	Exclude []string // Glob patterns — matching files are excluded.
}

// Scan walks cfg.Dir and returns one Preload per image file that passes
// filtering, ordered by relative path so the preload set is the same every
// session. A missing directory yields an empty set, not an error.
func Scan(cfg ScanConfig) ([]gallery.Preload, error) {
	root, err := filepath.Abs(cfg.Dir)
	if err != nil {
		return nil, fmt.Errorf("preload: resolve dir: %w", err)
	}

	if _, err := os.Stat(root); os.IsNotExist(err) {
		return nil, nil
	}

	var preloads []gallery.Preload

	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			// Skip entries we cannot read instead of aborting.
			return nil
		}
		if d.IsDir() || !d.Type().IsRegular() {
			return nil
		}

		relPath, err := filepath.Rel(root, path)
		if err != nil {
			return nil
		}

		if !ingest.HasImageExtension(relPath) {
			return nil
		}
		if !MatchesInclude(relPath, cfg.Include) {
			return nil
		}
		if MatchesExclude(relPath, cfg.Exclude) {
			return nil
		}

		preloads = append(preloads, gallery.Preload{
			Path:      path,
			MediaType: ingest.TypeByExtension(path),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("preload: walking %s: %w", root, err)
	}

	sort.Slice(preloads, func(i, j int) bool { return preloads[i].Path < preloads[j].Path })
	return preloads, nil
}
