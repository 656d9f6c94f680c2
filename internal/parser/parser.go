// Package parser implements Shift's recursive-descent parser (spec §4.3):
// top-level declarations, the precedence-climbing expression parser
// (expressions.go), and the statement grammar (statements.go).
package parser

import (
	"github.com/ark1409/shiftc/internal/ast"
	"github.com/ark1409/shiftc/internal/diag"
	"github.com/ark1409/shiftc/internal/lexer/cursor"
	"github.com/ark1409/shiftc/internal/lexer/token"
	"github.com/ark1409/shiftc/internal/source"
)

// modTok pairs an accumulated modifier bit with the token that spelled
// it, so a validation error or redundancy warning can be anchored to
// the exact keyword occurrence (spec §4.3.1's "pending list").
type modTok struct {
	flag ast.Modifiers
	tok  token.Token
}

// Parser builds the AST of one file from its token vector. It holds no
// state beyond the current pending-modifier list and the class and
// function it is currently inside (nil outside them); every other piece of context is
// threaded through explicit parameters.
type Parser struct {
	cursor *cursor.Cursor
	sink   *diag.Sink
	src    *source.Map
	file   *ast.File

	pendingMods     []modTok
	currentClass    *ast.Class
	currentFunction *ast.Function
}

// New creates a Parser over toks (as produced by lexer.Lexer.Tokenize),
// reporting diagnostics to sink and anchoring them to src.
func New(src *source.Map, toks []token.Token, sink *diag.Sink) *Parser {
	return &Parser{
		cursor: cursor.New(toks),
		sink:   sink,
		src:    src,
		file:   &ast.File{Path: src.Path(), Source: src, Tokens: toks},
	}
}

// ParseFile consumes the entire token vector as a sequence of top-level
// items (spec §4.3.1's "file = { top_item }") and returns the resulting
// translation unit.
func (p *Parser) ParseFile() *ast.File {
	for !p.atEnd() {
		start := p.cursor.Pos()
		p.parseTopItem()
		if p.cursor.Pos() == start {
			// Safety net: a production that consumed nothing (a token
			// this grammar has no rule for at file scope) would loop
			// forever. Report it once and force progress.
			p.errorHere("unexpected token at file scope")
			p.advance()
		}
	}
	p.flushDanglingModifiers()
	return p.file
}

// flushDanglingModifiers reports every modifier left pending at EOF
// (spec §4.3.1: "the pending list must be empty at end-of-file").
func (p *Parser) flushDanglingModifiers() {
	for _, m := range p.pendingMods {
		p.errorAt(m.tok, "modifier '%s' is not attached to a declaration", m.tok.Text)
	}
	p.pendingMods = nil
}
