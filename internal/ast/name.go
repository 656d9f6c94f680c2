// Package ast defines Shift's abstract syntax tree (spec §3): modules,
// classes, functions, variables, statements, expressions, types, and
// names, plus the cross-reference fields the semantic analyzer fills in.
package ast

import (
	"strings"

	"github.com/ark1409/shiftc/internal/lexer/token"
)

// Name is a dot-separated identifier path ("m.C.f"), stored as the
// [begin,end) half-open slice of identifier tokens that spelled it.
// Equality and lookup are defined on the reconstructed dotted string, so
// a Name works directly as a Go map key's String() form without a
// separate hash function — Go's native string-keyed maps are the
// idiomatic replacement for the source's hand-rolled hash.
type Name struct {
	Tokens []token.Token
}

// NewName builds a Name from a single identifier token.
func NewName(tok token.Token) Name {
	return Name{Tokens: []token.Token{tok}}
}

// String reconstructs the dotted identifier path.
func (n Name) String() string {
	if len(n.Tokens) == 0 {
		return ""
	}
	parts := make([]string, len(n.Tokens))
	for i, t := range n.Tokens {
		parts[i] = t.Text
	}
	return strings.Join(parts, ".")
}

// Last returns the final segment of the path (the "simple name"), e.g.
// "f" for "m.C.f".
func (n Name) Last() string {
	if len(n.Tokens) == 0 {
		return ""
	}
	return n.Tokens[len(n.Tokens)-1].Text
}

// IsEmpty reports whether the name has no tokens.
func (n Name) IsEmpty() bool { return len(n.Tokens) == 0 }

// Pos returns the line/col of the name's first token.
func (n Name) Pos() (line, col int) {
	if len(n.Tokens) == 0 {
		return 0, 0
	}
	return n.Tokens[0].Line, n.Tokens[0].Col
}

// LastTok returns the name's final token, used to anchor diagnostics at
// the innermost segment (e.g. the unresolved member of a dotted path).
func (n Name) LastTok() token.Token {
	if len(n.Tokens) == 0 {
		return token.Null
	}
	return n.Tokens[len(n.Tokens)-1]
}
