// Package cliutil holds small filesystem helpers shared by the "shift"
// CLI subcommands: relative-path display formatting (spec §6's
// "<relative-path>:<line>:<col>" diagnostic format) and glob expansion
// for the -lib-path/-lib flags (SPEC_FULL.md §3/§4).
package cliutil

import (
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
)

// RelPath returns path relative to the current working directory for
// diagnostic display, or path itself if no working directory is
// available or no relative form exists. A path outside the working
// directory comes back in "../" form.
func RelPath(path string) string {
	wd, err := os.Getwd()
	if err != nil {
		return path
	}
	rel, err := filepath.Rel(wd, path)
	if err != nil {
		return path
	}
	return rel
}

// ExpandLibPaths expands each -lib-path glob pattern (e.g.
// "vendor/**/*.shift") into concrete file paths, using doublestar's
// "**" support. Patterns that match nothing are reported through the
// returned error rather than silently dropped, so a typo'd -lib-path
// is visible instead of quietly contributing zero files.
func ExpandLibPaths(patterns []string) ([]string, error) {
	var files []string
	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, err
		}
		if len(matches) == 0 {
			return nil, &os.PathError{Op: "glob", Path: pattern, Err: os.ErrNotExist}
		}
		files = append(files, matches...)
	}
	return files, nil
}
