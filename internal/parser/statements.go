package parser

import (
	"github.com/ark1409/shiftc/internal/ast"
	"github.com/ark1409/shiftc/internal/lexer/token"
)

// parseBlockBody parses "'{' statement* '}'" (spec §4.3.1's block),
// returning the statement list.
func (p *Parser) parseBlockBody() []*ast.Statement {
	p.expect(token.LeftScopeBracket, "'{'")
	var body []*ast.Statement
	for !p.atEnd() && p.cur().Kind != token.RightScopeBracket {
		start := p.cursor.Pos()
		body = append(body, p.parseStatement())
		if p.cursor.Pos() == start {
			p.advance()
		}
	}
	p.expect(token.RightScopeBracket, "'}'")
	return body
}

// parseStatement dispatches on the current token to one of spec
// §4.3.1's statement productions.
func (p *Parser) parseStatement() *ast.Statement {
	tok := p.cur()

	switch {
	case tok.Kind == token.LeftScopeBracket:
		return ast.NewBlockStmt(tok, p.parseBlockBody())
	case tok.Is("if"):
		return p.parseIfStatement()
	case tok.Is("while"):
		return p.parseWhileStatement()
	case tok.Is("for"):
		return p.parseForStatement()
	case tok.Is("return"):
		return p.parseReturnStatement()
	case tok.Is("throw"):
		return p.parseThrowStatement()
	case tok.Is("break"):
		p.advance()
		p.expectSemicolonRecover()
		return ast.NewBreakStmt(tok)
	case tok.Is("continue"):
		p.advance()
		p.expectSemicolonRecover()
		return ast.NewContinueStmt(tok)
	case tok.Is("use"):
		return p.parseLocalUseStatement()
	case tok.Is("else"):
		p.errorHere("'else' without a preceding 'if'")
		p.advance()
		return ast.NewExprStmt(tok, ast.NewInvalid(tok))
	default:
		return p.parseExprOrDeclStatement()
	}
}

// expectSemicolonRecover consumes a trailing ';', or reports and
// resynchronizes to the next one if absent.
func (p *Parser) expectSemicolonRecover() {
	if !p.expectSemicolon() {
		p.skipAfter(token.Semicolon)
	}
}

func (p *Parser) parseIfStatement() *ast.Statement {
	tok, _ := p.acceptWord("if")
	p.expect(token.LeftBracket, "'('")
	cond := p.parseExpression()
	p.expect(token.RightBracket, "')'")
	then := p.parseStatement()
	var els *ast.Statement
	if _, ok := p.acceptWord("else"); ok {
		els = p.parseStatement()
	}
	return ast.NewIfStmt(tok, cond, then, els)
}

func (p *Parser) parseWhileStatement() *ast.Statement {
	tok, _ := p.acceptWord("while")
	p.expect(token.LeftBracket, "'('")
	cond := p.parseExpression()
	p.expect(token.RightBracket, "')'")
	body := p.parseStatement()
	return ast.NewWhileStmt(tok, cond, body)
}

// parseForStatement parses spec §4.3.1's three-slot "for (init; cond;
// incr) body", each slot independently optional.
func (p *Parser) parseForStatement() *ast.Statement {
	tok, _ := p.acceptWord("for")
	p.expect(token.LeftBracket, "'('")

	var init *ast.Statement
	if p.cur().Kind != token.Semicolon {
		init = p.parseExprOrDeclStatement()
	} else {
		p.advance()
	}

	var cond *ast.Expression
	if p.cur().Kind != token.Semicolon {
		cond = p.parseExpression()
	}
	p.expect(token.Semicolon, "';'")

	var incr *ast.Expression
	if p.cur().Kind != token.RightBracket {
		incr = p.parseExpression()
	}
	p.expect(token.RightBracket, "')'")

	body := p.parseStatement()
	return ast.NewForStmt(tok, init, cond, incr, body)
}

func (p *Parser) parseReturnStatement() *ast.Statement {
	tok, _ := p.acceptWord("return")
	var expr *ast.Expression
	if p.cur().Kind != token.Semicolon {
		expr = p.parseExpression()
	}
	p.expectSemicolonRecover()
	return ast.NewReturnStmt(tok, expr)
}

// parseThrowStatement parses "throw Expr;" (SPEC_FULL.md §4's
// supplemented statement, modeled on the original's exception support).
func (p *Parser) parseThrowStatement() *ast.Statement {
	tok, _ := p.acceptWord("throw")
	expr := p.parseExpression()
	p.expectSemicolonRecover()
	return ast.NewThrowStmt(tok, expr)
}

// parseLocalUseStatement parses a function-body-local "use Name;". The
// name is kept on the Statement node only (ast.StmtUse); it is
// deliberately NOT appended to p.file.Uses, since spec §4.4.3 treats a
// local use as a distinct, narrower-scoped candidate set from the
// file-level global use list.
func (p *Parser) parseLocalUseStatement() *ast.Statement {
	tok, _ := p.acceptWord("use")
	name := p.parseName()
	p.expectSemicolonRecover()
	return ast.NewUseStmt(tok, name)
}

// looksLikeDeclStart reports whether tok can begin a type in a
// statement position: any non-keyword identifier (a class name) or the
// "void"/"const" keywords, which only ever start a type.
func looksLikeDeclStart(tok token.Token) bool {
	if !tok.IsIdentifier() {
		return false
	}
	if tok.Text == "void" || tok.Text == "const" {
		return true
	}
	return !tok.IsKeyword()
}

// parseExprOrDeclStatement implements spec §4.3.2's speculative
// declaration-vs-expression disambiguation: mark both the cursor and
// the diagnostic sink, tentatively parse a type; if an identifier
// immediately follows it, commit (pop the mark) and finish parsing a
// variable declaration non-speculatively. Otherwise roll back both
// marks entirely and reparse the same tokens as a plain expression
// statement.
func (p *Parser) parseExprOrDeclStatement() *ast.Statement {
	startTok := p.cur()
	if !looksLikeDeclStart(startTok) {
		return p.parseBareExprStatement()
	}

	cm, sm := p.markBoth()
	typ := p.parseType()
	if p.cur().IsIdentifier() && !p.cur().IsKeyword() {
		p.popMarkBoth()
		nameTok := p.advance()
		return p.finishLocalVarDecl(typ, nameTok)
	}
	p.rollbackBoth(cm, sm)
	return p.parseBareExprStatement()
}

func (p *Parser) parseBareExprStatement() *ast.Statement {
	tok := p.cur()
	expr := p.parseExpression()
	p.expectSemicolonRecover()
	return ast.NewExprStmt(tok, expr)
}

// finishLocalVarDecl parses the "['=' expr] ';'" tail of a local
// variable declaration, after "type ident" has already been committed
// by parseExprOrDeclStatement.
func (p *Parser) finishLocalVarDecl(typ *ast.Type, nameTok token.Token) *ast.Statement {
	v := &ast.Variable{
		NameToken:      nameTok,
		Type:           typ,
		Function:       p.currentFunction,
		IsLocal:        true,
		UseCountAtDecl: len(p.file.Uses),
	}
	if _, ok := p.accept(token.Assign); ok {
		v.Init = p.parseExpression()
	}
	p.expectSemicolonRecover()
	return ast.NewVarDeclStmt(nameTok, v)
}
