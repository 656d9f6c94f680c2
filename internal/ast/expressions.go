package ast

import "github.com/ark1409/shiftc/internal/lexer/token"

// ExprKind tags the variant an Expression node holds. Expression is a
// single struct rather than an interface-per-variant hierarchy: the
// grammar's expression forms share almost every field (operator token,
// operand links, resolved-symbol slots), so a tagged union keeps the
// precedence-climbing parser and the analyzer's resolution pass working
// against one concrete type, matching spec §3's description of
// Expression as a tagged union of these forms.
type ExprKind int

const (
	ExprInvalid ExprKind = iota
	ExprLiteral          // numeric/string/char/bool/null literal
	ExprIdent            // bare or dotted identifier (Name)
	ExprThis             // the "this" pseudo-variable
	ExprBase             // the "base" pseudo-variable
	ExprBracket          // ( Operand )
	ExprBinary           // Left Op Right
	ExprPrefix           // Op Operand (unary prefix, including ++/-- prefix form)
	ExprSuffix           // Operand Op (postfix ++/--)
	ExprAssign           // Left = Right, or Left OP= Right
	ExprCall             // Callee ( Args... )
	ExprIndex            // Operand [ Args... ] (array indexing)
	ExprNew              // new Type [ Args... ] or new Type ( Args... )
	ExprCast             // ( TypeName ) Operand
)

// Expression is one node of an expression tree. Only the fields relevant
// to Kind are populated; Parent is set by every constructor helper below
// so the analyzer and any tree walk can climb back up without a
// separate visitor-maintained stack.
type Expression struct {
	Kind   ExprKind
	Token  token.Token // anchoring token: literal, operator, identifier, "new", "("
	Op     token.Kind  // operator kind for Binary/Prefix/Suffix/Assign
	Name   Name        // identifier path for Ident/Call callee-by-name/New's type name
	Type   *Type        // explicit type for New/Cast

	Left     *Expression // binary left operand, bracket/prefix/suffix/cast operand
	Right    *Expression // binary/assign right operand
	Callee   *Expression // Call's callee expression (nil when Name is used directly)
	Args     []*Expression
	ArrayNew bool // ExprNew: Args are array-dimension sizes rather than constructor args

	Parent *Expression

	// Filled in by the semantic analyzer.
	ResolvedVariable *Variable
	ResolvedFunction *Function
	ResolvedClass    *Class
	ResolvedType     *Type
}

func link(parent, child *Expression) *Expression {
	if child != nil {
		child.Parent = parent
	}
	return child
}

// NewLiteral builds a literal expression node from a lexed literal token.
func NewLiteral(tok token.Token) *Expression {
	return &Expression{Kind: ExprLiteral, Token: tok}
}

// NewIdent builds an identifier expression over a (possibly dotted) name.
func NewIdent(name Name) *Expression {
	return &Expression{Kind: ExprIdent, Token: name.LastTok(), Name: name}
}

// NewPseudo builds the "this"/"base" pseudo-variable expression.
func NewPseudo(kind ExprKind, tok token.Token) *Expression {
	return &Expression{Kind: kind, Token: tok}
}

// NewBracket wraps inner in a parenthesized expression node.
func NewBracket(paren token.Token, inner *Expression) *Expression {
	e := &Expression{Kind: ExprBracket, Token: paren}
	e.Left = link(e, inner)
	return e
}

// NewBinary builds a binary operator node, linking both operands.
func NewBinary(op token.Token, left, right *Expression) *Expression {
	e := &Expression{Kind: ExprBinary, Token: op, Op: op.Kind}
	e.Left = link(e, left)
	e.Right = link(e, right)
	return e
}

// NewAssign builds an assignment node (=, +=, -=, ...).
func NewAssign(op token.Token, left, right *Expression) *Expression {
	e := &Expression{Kind: ExprAssign, Token: op, Op: op.Kind}
	e.Left = link(e, left)
	e.Right = link(e, right)
	return e
}

// NewPrefix builds a unary prefix node (-x, !x, ~x, ++x, --x).
func NewPrefix(op token.Token, operand *Expression) *Expression {
	e := &Expression{Kind: ExprPrefix, Token: op, Op: op.Kind}
	e.Left = link(e, operand)
	return e
}

// NewSuffix builds a postfix ++/-- node.
func NewSuffix(op token.Token, operand *Expression) *Expression {
	e := &Expression{Kind: ExprSuffix, Token: op, Op: op.Kind}
	e.Left = link(e, operand)
	return e
}

// NewCall builds a call node over an arbitrary callee expression (e.g.
// the result of a prior index/call), or directly over a name.
func NewCall(paren token.Token, callee *Expression, args []*Expression) *Expression {
	e := &Expression{Kind: ExprCall, Token: paren}
	e.Callee = link(e, callee)
	e.Args = make([]*Expression, len(args))
	for i, a := range args {
		e.Args[i] = link(e, a)
	}
	return e
}

// NewIndex builds an array-index node: operand[args...].
func NewIndex(bracket token.Token, operand *Expression, args []*Expression) *Expression {
	e := &Expression{Kind: ExprIndex, Token: bracket}
	e.Left = link(e, operand)
	e.Args = make([]*Expression, len(args))
	for i, a := range args {
		e.Args[i] = link(e, a)
	}
	return e
}

// NewNew builds a "new Type(...)"/"new Type[...]" node. arrayForm marks
// the "new Type[size]..." variant, where args are dimension sizes
// rather than constructor arguments.
func NewNew(newTok token.Token, typ *Type, args []*Expression, arrayForm bool) *Expression {
	e := &Expression{Kind: ExprNew, Token: newTok, Type: typ, Name: typ.Name, ArrayNew: arrayForm}
	e.Args = make([]*Expression, len(args))
	for i, a := range args {
		e.Args[i] = link(e, a)
	}
	return e
}

// NewCast builds a "(TypeName) operand" cast node.
func NewCast(paren token.Token, typ *Type, operand *Expression) *Expression {
	e := &Expression{Kind: ExprCast, Token: paren, Type: typ, Name: typ.Name}
	e.Left = link(e, operand)
	return e
}

// NewInvalid builds the placeholder "empty" expression (spec §3
// invariant 9): the canonical NullToken-kind node stood in for a child
// that failed to parse, never a final result for a non-empty statement.
func NewInvalid(tok token.Token) *Expression {
	return &Expression{Kind: ExprInvalid, Token: tok}
}

// Children returns every direct child expression, regardless of which
// fields the node's Kind actually uses — the uniform shape tests and
// tree walks need to verify the Parent-pointer invariant without a
// switch over Kind at every call site.
func (e *Expression) Children() []*Expression {
	if e == nil {
		return nil
	}
	var out []*Expression
	if e.Left != nil {
		out = append(out, e.Left)
	}
	if e.Right != nil {
		out = append(out, e.Right)
	}
	if e.Callee != nil {
		out = append(out, e.Callee)
	}
	out = append(out, e.Args...)
	return out
}
