package parser

import (
	"bytes"
	"testing"

	"github.com/ark1409/shiftc/internal/ast"
	"github.com/ark1409/shiftc/internal/diag"
	"github.com/ark1409/shiftc/internal/lexer"
	"github.com/ark1409/shiftc/internal/source"
)

// newParser lexes text and returns a Parser ready to drive, plus the
// sink it reports diagnostics to so tests can assert on error counts.
func newParser(text string) (*Parser, *diag.Sink) {
	src := source.New("t.shift", "t.shift", []byte(text))
	sink := diag.New(&bytes.Buffer{})
	toks := lexer.New(src, sink).Tokenize()
	return New(src, toks, sink), sink
}

func exprOf(text string) (*ast.Expression, *diag.Sink) {
	p, sink := newParser(text)
	e := p.parseExpression()
	sink.FlushAll()
	return e, sink
}

// dump renders an expression as a fully-parenthesized S-expression so
// tests can assert tree shape without hand-walking pointers.
func dump(e *ast.Expression) string {
	if e == nil {
		return "<nil>"
	}
	switch e.Kind {
	case ast.ExprLiteral:
		return e.Token.Text
	case ast.ExprIdent:
		return e.Name.String()
	case ast.ExprThis:
		return "this"
	case ast.ExprBase:
		return "base"
	case ast.ExprBracket:
		return "(" + dump(e.Left) + ")"
	case ast.ExprBinary:
		return "(" + e.Token.Text + " " + dump(e.Left) + " " + dump(e.Right) + ")"
	case ast.ExprAssign:
		return "(" + e.Token.Text + " " + dump(e.Left) + " " + dump(e.Right) + ")"
	case ast.ExprPrefix:
		return "(" + e.Token.Text + " " + dump(e.Left) + ")"
	case ast.ExprSuffix:
		return "(" + dump(e.Left) + " " + e.Token.Text + ")"
	case ast.ExprCall:
		s := dump(e.Callee) + "("
		for i, a := range e.Args {
			if i > 0 {
				s += ", "
			}
			s += dump(a)
		}
		return s + ")"
	case ast.ExprIndex:
		s := dump(e.Left) + "["
		for i, a := range e.Args {
			if i > 0 {
				s += ", "
			}
			s += dump(a)
		}
		return s + "]"
	case ast.ExprNew:
		return "new " + e.Name.String()
	case ast.ExprInvalid:
		return "<invalid>"
	default:
		return "?"
	}
}

// TestPrecedenceMultiplyBindsTighterThanPlus is spec §8 scenario 1:
// "1 + 2 * 3" parses as (+ 1 (* 2 3)).
func TestPrecedenceMultiplyBindsTighterThanPlus(t *testing.T) {
	e, sink := exprOf("1 + 2 * 3")
	if sink.HasErrors() {
		t.Fatalf("unexpected errors: %v", sink.Committed())
	}
	if got, want := dump(e), "(+ 1 (* 2 3))"; got != want {
		t.Errorf("dump = %q, want %q", got, want)
	}
}

// TestAssignmentIsRightAssociative is spec §8 scenario 2: "a = b = 1"
// parses as (= a (= b 1)).
func TestAssignmentIsRightAssociative(t *testing.T) {
	e, sink := exprOf("a = b = 1")
	if sink.HasErrors() {
		t.Fatalf("unexpected errors: %v", sink.Committed())
	}
	if got, want := dump(e), "(= a (= b 1))"; got != want {
		t.Errorf("dump = %q, want %q", got, want)
	}
}

// TestBracketFollowedByAtomIsNotACast is spec §8 scenario 3: "(x)5" is
// a bracket expression followed by an error, never an implicit cast.
func TestBracketFollowedByAtomIsNotACast(t *testing.T) {
	e, sink := exprOf("(x)5")
	if !sink.HasErrors() {
		t.Fatal("expected an error for the trailing literal, got none")
	}
	if got, want := dump(e), "(x)"; got != want {
		t.Errorf("dump = %q, want %q (the cast must not be formed)", got, want)
	}
	msgs := sink.Committed()
	found := false
	for _, d := range msgs {
		if d.Kind == diag.Error {
			found = true
		}
	}
	if !found {
		t.Error("no error diagnostic recorded")
	}
}

func TestBitwiseLooserThanAdditive(t *testing.T) {
	e, _ := exprOf("1 & 2 + 3")
	if got, want := dump(e), "(& 1 (+ 2 3))"; got != want {
		t.Errorf("dump = %q, want %q", got, want)
	}
}

func TestLogicalLooserThanCompare(t *testing.T) {
	e, _ := exprOf("a < b && c > d")
	if got, want := dump(e), "(&& (< a b) (> c d))"; got != want {
		t.Errorf("dump = %q, want %q", got, want)
	}
}

func TestUnaryPrefixNestsRightToLeft(t *testing.T) {
	e, _ := exprOf("--!x")
	if got, want := dump(e), "(-- (! x))"; got != want {
		t.Errorf("dump = %q, want %q", got, want)
	}
}

func TestPrefixBindsTighterThanPostfix(t *testing.T) {
	e, _ := exprOf("-x++")
	if got, want := dump(e), "((- x) ++)"; got != want {
		t.Errorf("dump = %q, want %q", got, want)
	}
}

func TestCallAndIndexChain(t *testing.T) {
	e, sink := exprOf("a.b(1, 2)[3]")
	if sink.HasErrors() {
		t.Fatalf("unexpected errors: %v", sink.Committed())
	}
	if got, want := dump(e), "a.b(1, 2)[3]"; got != want {
		t.Errorf("dump = %q, want %q", got, want)
	}
}

func TestNewCallForm(t *testing.T) {
	e, sink := exprOf("new Foo(1)")
	if sink.HasErrors() {
		t.Fatalf("unexpected errors: %v", sink.Committed())
	}
	if e.Kind != ast.ExprNew || e.ArrayNew {
		t.Fatalf("Kind/ArrayNew = %v,%v, want ExprNew,false", e.Kind, e.ArrayNew)
	}
	if len(e.Args) != 1 {
		t.Errorf("Args = %d, want 1", len(e.Args))
	}
}

func TestNewArrayForm(t *testing.T) {
	e, sink := exprOf("new int[5]")
	if sink.HasErrors() {
		t.Fatalf("unexpected errors: %v", sink.Committed())
	}
	if e.Kind != ast.ExprNew || !e.ArrayNew {
		t.Fatalf("Kind/ArrayNew = %v,%v, want ExprNew,true", e.Kind, e.ArrayNew)
	}
}

func TestThisAndBasePseudoVars(t *testing.T) {
	e, _ := exprOf("this")
	if e.Kind != ast.ExprThis {
		t.Errorf("Kind = %v, want ExprThis", e.Kind)
	}
	e, _ = exprOf("base")
	if e.Kind != ast.ExprBase {
		t.Errorf("Kind = %v, want ExprBase", e.Kind)
	}
}

func TestCompoundAssignLooserThanItsBaseOperator(t *testing.T) {
	// "a += b * c" must bind like "a = a + (b*c)" in priority terms: the
	// multiply binds first, then +=.
	e, _ := exprOf("a += b * c")
	if got, want := dump(e), "(+= a (* b c))"; got != want {
		t.Errorf("dump = %q, want %q", got, want)
	}
}

func TestUnexpectedTokenProducesInvalidNode(t *testing.T) {
	e, sink := exprOf(";")
	if e.Kind != ast.ExprInvalid {
		t.Errorf("Kind = %v, want ExprInvalid", e.Kind)
	}
	if !sink.HasErrors() {
		t.Error("expected an error for an expression starting with ';'")
	}
}
