package parser

import (
	"github.com/ark1409/shiftc/internal/ast"
	"github.com/ark1409/shiftc/internal/lexer/token"
)

// Priority table from spec §4.3.3. Base priority P=16; lower numbers
// bind looser. PrefixOffset is chosen so that P+PrefixOffset exceeds
// every binary and suffix priority below, matching the spec's
// "prefix priority exceeds every binary priority and every suffix
// priority" requirement.
const (
	pBase         = 16
	pPrefixOffset = 10

	pBitwise        = pBase + 2
	pLogical        = pBase + 3
	pCompare        = pBase + 4
	pAdditive       = pBase + 5
	pMultiplicative = pBase + 6
	pSuffix         = pBase + 7
	pPrefix         = pBase + pPrefixOffset
	pAtom           = pPrefix + 1
)

// binaryPriority returns the priority of a non-assignment binary
// operator kind, per the table in spec §4.3.3.
func binaryPriority(k token.Kind) (int, bool) {
	switch k {
	case token.And, token.Or, token.Xor, token.ShiftLeft, token.ShiftRight:
		return pBitwise, true
	case token.AndAnd, token.OrOr:
		return pLogical, true
	case token.LessThan, token.GreaterThan, token.LessThanOrEqual, token.GreaterThanOrEqual,
		token.EqualsEquals, token.NotEqual:
		return pCompare, true
	case token.Plus, token.Minus:
		return pAdditive, true
	case token.Multiply, token.Divide, token.Modulo:
		return pMultiplicative, true
	default:
		return 0, false
	}
}

// isAssignKind reports whether k is a member of the assignment family.
func isAssignKind(k token.Kind) bool {
	switch k {
	case token.Assign, token.PlusEquals, token.MinusEquals, token.MultiplyEquals,
		token.DivideEquals, token.ModuloEquals, token.AndEquals, token.OrEquals,
		token.XorEquals, token.ShiftLeftEquals, token.ShiftRightEquals:
		return true
	default:
		return false
	}
}

// assignPriority computes an assignment operator's priority as
// priority_of(strip_equals(kind)) - base (spec §4.3.3's last table row).
// Bare "=" strips to NullToken, which has no table entry; it is given
// priority 0, looser than every compound assignment, since it carries no
// arithmetic restriction of its own.
func assignPriority(k token.Kind) int {
	base := token.StripEquals(k)
	if base == token.NullToken {
		return 0
	}
	if p, ok := binaryPriority(base); ok {
		return p - pBase
	}
	return 0
}

// infixPriority returns the priority and associativity of k used as an
// infix (binary or assignment) operator while climbing. Suffix ++/-- are
// not infix operators in this recursive formulation: parseUnary applies
// them to the operand built from the atom and its prefix operators, which
// is equivalent to giving them priority P+7, below every prefix operator
// and ahead of every binary operator.
func infixPriority(k token.Kind) (priority int, rightAssoc, ok bool) {
	if isAssignKind(k) {
		return assignPriority(k), true, true
	}
	if p, ok2 := binaryPriority(k); ok2 {
		return p, false, true
	}
	return 0, false, false
}

// parseExpression parses one expression at the lowest priority floor,
// i.e. a complete expression including any top-level assignment.
func (p *Parser) parseExpression() *ast.Expression {
	left := p.parseUnary()
	return p.parseBinaryRHS(0, left)
}

// parseBinaryRHS implements precedence climbing: it repeatedly consumes
// an infix operator whose priority is at least minPrio, recursing with a
// tighter floor for left-associative operators (minPrio = priority+1) or
// the same floor for right-associative ones (minPrio = priority), which
// lets a chain of right-associative operators nest instead of
// flattening. This produces the same trees as the spec's imperative
// "walk up parent pointers and rewrite" insertion algorithm for this
// priority table; Expression.Parent is still set on every node via the
// ast package's link() helper, so invariant 2 (child.Parent == parent)
// holds regardless of which equivalent construction strategy built the
// tree.
func (p *Parser) parseBinaryRHS(minPrio int, left *ast.Expression) *ast.Expression {
	for {
		opTok := p.cur()
		prio, rightAssoc, ok := infixPriority(opTok.Kind)
		if !ok || prio < minPrio {
			return left
		}
		p.advance()
		nextMin := prio + 1
		if rightAssoc {
			nextMin = prio
		}
		right := p.parseUnary()
		right = p.parseBinaryRHS(nextMin, right)
		if isAssignKind(opTok.Kind) {
			left = ast.NewAssign(opTok, left, right)
		} else {
			left = ast.NewBinary(opTok, left, right)
		}
	}
}

// parseUnary handles the prefix operator family (-, +, !, ~, ++, --),
// nesting them right to left so that "--!x" is (-- (! x)), over a
// postfix-chained atom, then applies at most one trailing ++/-- to the
// whole prefixed operand: prefix operators bind tighter than suffixes,
// so "-x++" is ((- x) ++).
func (p *Parser) parseUnary() *ast.Expression {
	var prefixes []token.Token
	for p.cur().IsUnaryOperator() {
		prefixes = append(prefixes, p.cur())
		p.advance()
	}
	expr := p.parsePostfix()
	for i := len(prefixes) - 1; i >= 0; i-- {
		expr = ast.NewPrefix(prefixes[i], expr)
	}
	if tok, ok := p.accept(token.PlusPlus); ok {
		expr = ast.NewSuffix(tok, expr)
	} else if tok, ok := p.accept(token.MinusMinus); ok {
		expr = ast.NewSuffix(tok, expr)
	}
	return expr
}

// parsePostfix parses one atom followed by any chain of call/index
// suffixes, all of which bind tighter than every other operator (spec
// §4.3.3's atom/call/index row).
func (p *Parser) parsePostfix() *ast.Expression {
	expr := p.parseAtom()
	for {
		switch p.cur().Kind {
		case token.LeftBracket:
			expr = p.parseCallSuffix(expr)
		case token.LeftSquareBracket:
			expr = p.parseIndexSuffix(expr)
		default:
			goto postfixDone
		}
	}
postfixDone:
	return expr
}

func (p *Parser) parseCallSuffix(callee *ast.Expression) *ast.Expression {
	paren, _ := p.expect(token.LeftBracket, "'('")
	args := p.parseArgList(token.RightBracket)
	p.expect(token.RightBracket, "')'")
	return ast.NewCall(paren, callee, args)
}

func (p *Parser) parseIndexSuffix(operand *ast.Expression) *ast.Expression {
	bracket, _ := p.expect(token.LeftSquareBracket, "'['")
	args := p.parseArgList(token.RightSquareBracket)
	p.expect(token.RightSquareBracket, "']'")
	return ast.NewIndex(bracket, operand, args)
}

// parseArgList parses a comma-separated expression list up to (but not
// consuming) closer. A bare comma is only legal in this argument-list
// context (spec §4.3.3's "Brackets" paragraph).
func (p *Parser) parseArgList(closer token.Kind) []*ast.Expression {
	var args []*ast.Expression
	if p.cur().Kind == closer {
		return args
	}
	for {
		args = append(args, p.parseExpression())
		if _, ok := p.accept(token.Comma); ok {
			continue
		}
		break
	}
	return args
}

// parseAtom parses a single operand: a literal, "this"/"base", a
// dotted identifier, a "new" expression, or a parenthesized expression.
func (p *Parser) parseAtom() *ast.Expression {
	tok := p.cur()

	switch tok.Kind {
	case token.IntegerLiteral, token.BinaryNumber, token.HexNumber, token.FloatLiteral,
		token.DoubleLiteral, token.StringLiteral, token.CharLiteral:
		p.advance()
		return ast.NewLiteral(tok)
	case token.LeftBracket:
		return p.parseBracket()
	}

	if tok.IsIdentifier() {
		switch tok.Text {
		case "true", "false", "null":
			p.advance()
			return ast.NewLiteral(tok)
		case "this":
			p.advance()
			return ast.NewPseudo(ast.ExprThis, tok)
		case "base":
			p.advance()
			return ast.NewPseudo(ast.ExprBase, tok)
		case "new":
			return p.parseNewExpr()
		}
		if !tok.IsKeyword() {
			name := p.parseDottedName()
			return ast.NewIdent(name)
		}
	}

	p.errorAt(tok, "unexpected %s in expression", describeToken(tok))
	return ast.NewInvalid(tok)
}

func (p *Parser) parseBracket() *ast.Expression {
	paren, _ := p.expect(token.LeftBracket, "'('")
	inner := p.parseExpression()
	p.expect(token.RightBracket, "')'")
	bracket := ast.NewBracket(paren, inner)
	return p.checkTrailingAtom(bracket)
}

// checkTrailingAtom implements scenario 3 from spec §8: a bracket
// expression immediately followed by another atom-starting token (with
// no operator in between) is an error, not an implicit cast or
// multiplication — "(x)5" parses the bracket, then reports the
// following literal as unexpected.
func (p *Parser) checkTrailingAtom(expr *ast.Expression) *ast.Expression {
	tok := p.cur()
	if isAtomStart(tok) {
		p.errorAt(tok, "unexpected %s in expression", describeToken(tok))
	}
	return expr
}

func isAtomStart(tok token.Token) bool {
	switch tok.Kind {
	case token.IntegerLiteral, token.BinaryNumber, token.HexNumber, token.FloatLiteral,
		token.DoubleLiteral, token.StringLiteral, token.CharLiteral:
		return true
	}
	return tok.IsIdentifier() && !tok.Is("else")
}

func describeToken(tok token.Token) string {
	switch tok.Kind {
	case token.IntegerLiteral, token.BinaryNumber, token.HexNumber:
		return "number literal"
	case token.FloatLiteral, token.DoubleLiteral:
		return "number literal"
	case token.StringLiteral:
		return "string literal"
	case token.CharLiteral:
		return "character literal"
	default:
		if tok.IsIdentifier() {
			return "identifier"
		}
		return "token"
	}
}

// parseDottedName collects IDENT ('.' IDENT)* into a Name.
func (p *Parser) parseDottedName() ast.Name {
	first, _ := p.accept(token.Identifier)
	name := ast.NewName(first)
	for p.cur().Kind == token.Dot && p.peek(1).IsIdentifier() && !p.peek(1).IsKeyword() {
		p.advance() // '.'
		next := p.advance()
		name.Tokens = append(name.Tokens, next)
	}
	return name
}

// parseNewExpr parses "new Type(args)" or "new Type[dim]...".
func (p *Parser) parseNewExpr() *ast.Expression {
	newTok, _ := p.acceptWord("new")
	name := p.parseDottedName()
	typ := &ast.Type{Name: name}

	switch p.cur().Kind {
	case token.LeftBracket:
		paren, _ := p.expect(token.LeftBracket, "'('")
		args := p.parseArgList(token.RightBracket)
		p.expect(token.RightBracket, "')'")
		_ = paren
		return ast.NewNew(newTok, typ, args, false)
	case token.LeftSquareBracket:
		var dims []*ast.Expression
		for p.cur().Kind == token.LeftSquareBracket {
			p.advance()
			if p.cur().Kind != token.RightSquareBracket {
				dims = append(dims, p.parseExpression())
			}
			p.expect(token.RightSquareBracket, "']'")
		}
		return ast.NewNew(newTok, typ, dims, true)
	default:
		p.errorAt(p.cur(), "expected '(' or '[' after 'new %s'", name.String())
		return ast.NewNew(newTok, typ, nil, false)
	}
}
