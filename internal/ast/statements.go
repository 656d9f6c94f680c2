package ast

import "github.com/ark1409/shiftc/internal/lexer/token"

// StmtKind tags the variant a Statement node holds (spec §3: "Statement
// is a tagged union" of these forms, plus the supplemented throw
// statement from SPEC_FULL.md §4).
type StmtKind int

const (
	StmtInvalid StmtKind = iota
	StmtExpr             // a bare expression statement
	StmtVarDecl          // local variable declaration
	StmtBlock            // { ... }
	StmtUse              // local "use Name;"
	StmtIf               // if (Cond) Then [else Else]
	StmtWhile            // while (Cond) Body
	StmtFor              // for (Init; Cond; Incr) Body
	StmtReturn           // return [Expr];
	StmtContinue
	StmtBreak
	StmtThrow // throw Expr; (SPEC_FULL.md supplemented statement)
)

// Statement is one node of a function body. Like Expression, it is a
// single tagged struct: most variants need only a subset of (Expr,
// Body, Else, Var), and control-flow resolution (break/continue ->
// enclosing loop) is a cross-link the analyzer fills in rather than a
// separate node kind.
type Statement struct {
	Kind  StmtKind
	Token token.Token

	Expr  *Expression // StmtExpr/StmtReturn/StmtThrow payload, StmtIf/While/For condition
	Var   *Variable   // StmtVarDecl
	Use   Name        // StmtUse target

	Body []*Statement // StmtBlock contents, StmtIf "then", StmtWhile/For loop body
	Else *Statement   // StmtIf's optional else (itself a StmtBlock or nested StmtIf)

	ForInit *Statement  // StmtFor's init clause (StmtVarDecl or StmtExpr), may be nil
	ForCond *Expression // StmtFor's condition, may be nil
	ForIncr *Expression // StmtFor's increment, may be nil

	// EnclosingLoop links a StmtBreak/StmtContinue back to the nearest
	// enclosing StmtWhile/StmtFor; filled in by the semantic analyzer so
	// that later passes need not re-walk the block stack.
	EnclosingLoop *Statement
}

func NewExprStmt(tok token.Token, expr *Expression) *Statement {
	return &Statement{Kind: StmtExpr, Token: tok, Expr: expr}
}

func NewVarDeclStmt(tok token.Token, v *Variable) *Statement {
	return &Statement{Kind: StmtVarDecl, Token: tok, Var: v}
}

func NewBlockStmt(tok token.Token, body []*Statement) *Statement {
	return &Statement{Kind: StmtBlock, Token: tok, Body: body}
}

func NewUseStmt(tok token.Token, name Name) *Statement {
	return &Statement{Kind: StmtUse, Token: tok, Use: name}
}

func NewIfStmt(tok token.Token, cond *Expression, then *Statement, els *Statement) *Statement {
	return &Statement{Kind: StmtIf, Token: tok, Expr: cond, Body: []*Statement{then}, Else: els}
}

func NewWhileStmt(tok token.Token, cond *Expression, body *Statement) *Statement {
	return &Statement{Kind: StmtWhile, Token: tok, Expr: cond, Body: []*Statement{body}}
}

func NewForStmt(tok token.Token, init *Statement, cond, incr *Expression, body *Statement) *Statement {
	return &Statement{
		Kind:    StmtFor,
		Token:   tok,
		ForInit: init,
		ForCond: cond,
		ForIncr: incr,
		Body:    []*Statement{body},
	}
}

func NewReturnStmt(tok token.Token, expr *Expression) *Statement {
	return &Statement{Kind: StmtReturn, Token: tok, Expr: expr}
}

func NewThrowStmt(tok token.Token, expr *Expression) *Statement {
	return &Statement{Kind: StmtThrow, Token: tok, Expr: expr}
}

func NewContinueStmt(tok token.Token) *Statement {
	return &Statement{Kind: StmtContinue, Token: tok}
}

func NewBreakStmt(tok token.Token) *Statement {
	return &Statement{Kind: StmtBreak, Token: tok}
}

// LoopBody returns a for/while statement's single body statement, or nil
// for any other kind.
func (s *Statement) LoopBody() *Statement {
	if s == nil || len(s.Body) == 0 {
		return nil
	}
	return s.Body[0]
}

// IfThen returns an if-statement's "then" branch.
func (s *Statement) IfThen() *Statement {
	if s == nil || s.Kind != StmtIf || len(s.Body) == 0 {
		return nil
	}
	return s.Body[0]
}
