package cmd

import (
	"fmt"
	"os"

	"github.com/ark1409/shiftc/internal/ast"
	"github.com/ark1409/shiftc/internal/cliutil"
	"github.com/ark1409/shiftc/internal/diag"
	"github.com/ark1409/shiftc/internal/lexer"
	"github.com/ark1409/shiftc/internal/lexer/token"
	"github.com/ark1409/shiftc/internal/parser"
	"github.com/ark1409/shiftc/internal/source"
)

// readFile reads path's bytes and wraps them in a source.Map displayed
// with a working-directory-relative path (spec §6's diagnostic format).
func readFile(path string) (*source.Map, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return source.New(path, cliutil.RelPath(path), data), nil
}

// lexFile reads and tokenizes one file, reporting lexical errors to sink.
func lexFile(path string, sink *diag.Sink) (*source.Map, []token.Token, error) {
	src, err := readFile(path)
	if err != nil {
		return nil, nil, err
	}
	toks := lexer.New(src, sink).Tokenize()
	return src, toks, nil
}

// parseFile lexes and parses one file, reporting lexical and syntax
// errors to sink.
func parseFile(path string, sink *diag.Sink) (*ast.File, error) {
	src, toks, err := lexFile(path, sink)
	if err != nil {
		return nil, err
	}
	return parser.New(src, toks, sink).ParseFile(), nil
}

// parseFiles parses every path, stopping at the first file-read
// failure (a missing file is a driver-level error, not a diagnostic).
func parseFiles(paths []string, sink *diag.Sink) ([]*ast.File, error) {
	files := make([]*ast.File, 0, len(paths))
	for _, p := range paths {
		f, err := parseFile(p, sink)
		if err != nil {
			return nil, err
		}
		files = append(files, f)
	}
	return files, nil
}
