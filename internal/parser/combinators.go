package parser

import (
	"github.com/ark1409/shiftc/internal/lexer/token"
)

// cur returns the token under the cursor without advancing.
func (p *Parser) cur() token.Token { return p.cursor.Current() }

// peek returns the token n positions ahead (default 1).
func (p *Parser) peek(n int) token.Token { return p.cursor.Peek(n) }

// advance consumes the current token and returns it.
func (p *Parser) advance() token.Token {
	t := p.cur()
	p.cursor.Next(1)
	return t
}

// atEnd reports whether the cursor has run off the token vector.
func (p *Parser) atEnd() bool { return p.cur().IsNull() }

// accept consumes and returns (tok, true) if the current token has kind
// k, otherwise leaves the cursor alone and returns (Null, false).
func (p *Parser) accept(k token.Kind) (token.Token, bool) {
	if p.cur().Kind == k {
		return p.advance(), true
	}
	return token.Null, false
}

// acceptWord consumes and returns (tok, true) if the current token is
// the identifier/keyword word.
func (p *Parser) acceptWord(word string) (token.Token, bool) {
	if p.cur().Is(word) {
		return p.advance(), true
	}
	return token.Null, false
}

// expect consumes a token of kind k, or emits a syntax error naming
// what was expected and leaves the cursor in place.
func (p *Parser) expect(k token.Kind, what string) (token.Token, bool) {
	if tok, ok := p.accept(k); ok {
		return tok, true
	}
	p.errorHere("expected %s", what)
	return token.Null, false
}

// expectWord consumes the keyword word, or emits a syntax error.
func (p *Parser) expectWord(word string) (token.Token, bool) {
	if tok, ok := p.acceptWord(word); ok {
		return tok, true
	}
	p.errorHere("expected '%s'", word)
	return token.Null, false
}

// markBoth pushes a save point on both the cursor and the diagnostic
// sink, mirroring spec §4.3.2's speculative-parse contract.
func (p *Parser) markBoth() (cursorMark, sinkMark int) {
	return p.cursor.Mark(), p.sink.Mark()
}

// rollbackBoth restores both the cursor and the sink to a prior markBoth.
func (p *Parser) rollbackBoth(cursorMark, sinkMark int) {
	p.cursor.Rollback(cursorMark)
	p.sink.Rollback(sinkMark)
}

// popMarkBoth discards a prior markBoth's save points without restoring
// anything, committing the speculative attempt.
func (p *Parser) popMarkBoth() {
	p.cursor.PopMark()
	p.sink.PopMark()
}

// skipUntil advances the cursor until the current token is one of kinds
// or the token vector is exhausted, without consuming the matched token.
func (p *Parser) skipUntil(kinds ...token.Kind) {
	for !p.atEnd() {
		for _, k := range kinds {
			if p.cur().Kind == k {
				return
			}
		}
		p.advance()
	}
}

// skipAfter advances past the next occurrence of one of kinds (consuming
// it), used to resynchronize after a statement-level error.
func (p *Parser) skipAfter(kinds ...token.Kind) {
	p.skipUntil(kinds...)
	if !p.atEnd() {
		p.advance()
	}
}
