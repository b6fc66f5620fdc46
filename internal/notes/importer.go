package notes

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/ravikh-dev/studykit/internal/progress"
)

// DefaultMaxFileSize is the maximum note file size to import (1 MB).
const DefaultMaxFileSize int64 = 1 << 20

// defaultExcludedDirs are directory names skipped during traversal.
var defaultExcludedDirs = []string{
	".git",
	"node_modules",
	"vendor",
	".studykit",
	".idea",
	".vscode",
}

// ImportConfig controls the behaviour of Import.
type ImportConfig struct {
	RootDir     string   // Root directory to scan.
	Include     []string // Glob patterns — only matching files are imported.
	Exclude     []string // Glob patterns — matching files are skipped.
	MaxFileSize int64    // Files larger than this are skipped (0 = use default).
}

func shouldExcludeDir(name string) bool {
	for _, excl := range defaultExcludedDirs {
		if strings.EqualFold(name, excl) {
			return true
		}
	}
	return false
}

func matchesAny(relPath string, patterns []string) bool {
	relPath = filepath.ToSlash(relPath)
	for _, pattern := range patterns {
		if ok, err := doublestar.Match(pattern, relPath); err == nil && ok {
			return true
		}
	}
	return false
}

// noteTitle derives a display title from the file content, preferring the
// first markdown heading, then the first non-empty line, then the filename.
func noteTitle(relPath, content string) string {
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		return strings.TrimSpace(strings.TrimLeft(line, "# "))
	}
	return filepath.Base(relPath)
}

// Import scans config.RootDir for note files matching the include/exclude
// patterns and indexes them into the library. reporter may be nil.
func Import(ctx context.Context, lib *Library, config ImportConfig, reporter progress.Reporter) (*ImportStats, error) {
	root, err := filepath.Abs(config.RootDir)
	if err != nil {
		return nil, fmt.Errorf("notes: resolve root: %w", err)
	}

	maxSize := config.MaxFileSize
	if maxSize <= 0 {
		maxSize = DefaultMaxFileSize
	}

	// Collect candidate paths first so progress has a total.
	var paths []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			// Skip entries we cannot read instead of aborting.
			return nil
		}
		if d.IsDir() {
			if shouldExcludeDir(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}

		relPath, err := filepath.Rel(root, path)
		if err != nil {
			return nil
		}
		if len(config.Include) > 0 && !matchesAny(relPath, config.Include) {
			return nil
		}
		if matchesAny(relPath, config.Exclude) {
			return nil
		}
		paths = append(paths, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("notes: walking %s: %w", root, err)
	}

	stats := &ImportStats{Scanned: len(paths)}

	if reporter != nil {
		reporter.Start(len(paths))
		defer reporter.Finish()
	}

	var batch []Note
	for i, path := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		relPath, _ := filepath.Rel(root, path)
		if reporter != nil {
			reporter.Update(i+1, relPath)
		}

		info, err := os.Stat(path)
		if err != nil || info.Size() > maxSize {
			stats.Skipped++
			continue
		}

		content, err := os.ReadFile(path)
		if err != nil {
			stats.Skipped++
			continue
		}
		text := strings.TrimSpace(string(content))
		if text == "" {
			stats.Skipped++
			continue
		}

		batch = append(batch, Note{
			Path:    relPath,
			Title:   noteTitle(relPath, text),
			Content: text,
		})
	}

	if err := lib.Add(ctx, batch); err != nil {
		return nil, fmt.Errorf("notes: indexing: %w", err)
	}
	stats.Imported = len(batch)
	return stats, nil
}
