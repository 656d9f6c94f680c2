// Package source holds the raw bytes of one parsed file plus a line index
// used to render diagnostics.
package source

import "strings"

// Map is the source map of a single file: its raw bytes and a 1-based
// index of line slices. It is constructed once per file and kept alive
// for the entire front-end run, since tokens, names, and expressions all
// borrow string slices from it.
type Map struct {
	path        string
	displayPath string
	text        string
	lines       []string
}

// New builds a Map from the raw bytes of a file. displayPath is the
// path used in diagnostic output (typically a path relative to the
// invocation directory); path is the path used to re-read or identify
// the file.
func New(path, displayPath string, data []byte) *Map {
	text := string(data)
	m := &Map{
		path:        path,
		displayPath: displayPath,
		text:        text,
		lines:       splitLines(text),
	}
	return m
}

// splitLines splits text into line slices, preserving the invariant that
// an empty source has exactly one (empty) line, and that a source with
// no trailing newline still yields a final line slice.
func splitLines(text string) []string {
	if text == "" {
		return []string{""}
	}
	return strings.Split(text, "\n")
}

// Path returns the path the file was read from.
func (m *Map) Path() string { return m.path }

// DisplayPath returns the path used for diagnostic messages.
func (m *Map) DisplayPath() string { return m.displayPath }

// Text returns the full source buffer.
func (m *Map) Text() string { return m.text }

// Line returns the 1-based line n, or "" if n is out of range.
func (m *Map) Line(n int) string {
	if n < 1 || n > len(m.lines) {
		return ""
	}
	return m.lines[n-1]
}

// LineCount returns the number of line slices.
func (m *Map) LineCount() int { return len(m.lines) }
