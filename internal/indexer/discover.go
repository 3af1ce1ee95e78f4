package indexer

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/colorpeek/colorpeek/internal/log"
)

// DefaultStylesheetPatterns are the glob patterns used to discover
// stylesheets when the workspace config does not override them.
var DefaultStylesheetPatterns = []string{
	"**/*.css",
	"**/*.scss",
	"**/*.less",
}

// shouldSkipDirectory checks if a directory should be skipped during file
// discovery: hidden directories and common build/dependency directories.
func shouldSkipDirectory(info os.FileInfo) bool {
	if !info.IsDir() {
		return false
	}
	if strings.HasPrefix(info.Name(), ".") {
		return true
	}
	skipDirs := []string{"node_modules", "dist", "build"}
	return slices.Contains(skipDirs, info.Name())
}

// matchesAnyPattern checks if a file path matches any of the given glob
// patterns. Patterns use doublestar syntax, so ** recurses.
func matchesAnyPattern(relPath string, patterns []string) bool {
	normalized := filepath.ToSlash(relPath)
	for _, pattern := range patterns {
		matched, err := doublestar.Match(pattern, normalized)
		if err == nil && matched {
			return true
		}
	}
	return false
}

// DiscoverStylesheets walks rootDir and returns every file matching one of
// the glob patterns, skipping hidden and build directories.
func DiscoverStylesheets(rootDir string, patterns []string) ([]string, error) {
	if rootDir == "" {
		return nil, fmt.Errorf("root directory is required")
	}
	if len(patterns) == 0 {
		patterns = DefaultStylesheetPatterns
	}

	var files []string
	err := filepath.Walk(rootDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil // Skip errors, continue walking
		}
		if shouldSkipDirectory(info) {
			return filepath.SkipDir
		}
		if info.IsDir() {
			return nil
		}
		relPath, err := filepath.Rel(rootDir, path)
		if err != nil {
			return nil
		}
		if matchesAnyPattern(relPath, patterns) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk directory: %w", err)
	}
	return files, nil
}

// ReindexWorkspace clears the registry and rebuilds it from every stylesheet
// under rootDir matching the patterns. Unreadable files are logged and
// skipped; the re-index proceeds with whatever data it has, and the joined
// read errors come back to the caller.
func (ix *Indexer) ReindexWorkspace(rootDir string, patterns []string) error {
	files, err := DiscoverStylesheets(rootDir, patterns)
	if err != nil {
		return err
	}

	log.Info("re-indexing %d stylesheets under %s", len(files), rootDir)
	ix.registry.Clear()

	var errs []error
	for _, path := range files {
		content, err := os.ReadFile(path)
		if err != nil {
			errs = append(errs, fmt.Errorf("failed to read %s: %w", path, err))
			continue
		}
		ix.IndexDocument(path, string(content))
	}

	ix.logCounts()
	return errors.Join(errs...)
}
