package parser

import (
	"github.com/ark1409/shiftc/internal/diag"
	"github.com/ark1409/shiftc/internal/lexer/token"
)

func tokenLen(tok token.Token) int {
	if tok.IsNull() {
		return 1
	}
	n := len([]rune(tok.Text))
	if n == 0 {
		return 1
	}
	return n
}

// errorAt emits an error diagnostic anchored to tok.
func (p *Parser) errorAt(tok token.Token, format string, args ...any) {
	p.sink.Emit(diag.Error, p.spanFor(tok), format, args...)
}

// warnAt emits a warning diagnostic anchored to tok.
func (p *Parser) warnAt(tok token.Token, format string, args ...any) {
	p.sink.Emit(diag.Warning, p.spanFor(tok), format, args...)
}

// errorHere emits an error at the current token (used by expect/expectWord).
func (p *Parser) errorHere(format string, args ...any) {
	p.errorAt(p.cur(), format, args...)
}

func (p *Parser) spanFor(tok token.Token) diag.Span {
	return diag.Span{Source: p.src, Line: tok.Line, Col: tok.Col, Len: tokenLen(tok)}
}
