package semantic

import (
	"bytes"

	"github.com/ark1409/shiftc/internal/ast"
	"github.com/ark1409/shiftc/internal/diag"
	"github.com/ark1409/shiftc/internal/lexer"
	"github.com/ark1409/shiftc/internal/parser"
	"github.com/ark1409/shiftc/internal/source"
)

// parseFile lexes and parses one in-memory file, returning its AST. Used
// by every test below to build real ast.File values instead of hand
// constructing them, so the analyzer is exercised the same way the CLI
// drives it (spec §4.4's lexer -> parser -> analyzer pipeline).
func parseFile(path, text string) *ast.File {
	src := source.New(path, path, []byte(text))
	sink := diag.New(&bytes.Buffer{})
	toks := lexer.New(src, sink).Tokenize()
	return parser.New(src, toks, sink).ParseFile()
}

// analyze runs the analyzer over files and returns its tables and sink,
// with every diagnostic flushed so HasErrors()/Committed() reflect it.
func analyze(files ...*ast.File) (*Tables, *diag.Sink) {
	sink := diag.New(&bytes.Buffer{})
	a := New(sink)
	a.Analyze(files)
	sink.FlushAll()
	return a.Tables(), sink
}

func warningCount(sink *diag.Sink) int {
	n := 0
	for _, d := range sink.Committed() {
		if d.Kind == diag.Warning {
			n++
		}
	}
	return n
}

func errorCount(sink *diag.Sink) int {
	n := 0
	for _, d := range sink.Committed() {
		if d.Kind == diag.Error {
			n++
		}
	}
	return n
}
