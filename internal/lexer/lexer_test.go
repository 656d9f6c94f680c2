package lexer

import (
	"bytes"
	"testing"

	"github.com/ark1409/shiftc/internal/diag"
	"github.com/ark1409/shiftc/internal/lexer/token"
	"github.com/ark1409/shiftc/internal/source"
)

func lex(t *testing.T, text string) ([]token.Token, *diag.Sink) {
	t.Helper()
	var buf bytes.Buffer
	sink := diag.New(&buf)
	src := source.New("t.shift", "t.shift", []byte(text))
	toks := New(src, sink).Tokenize()
	return toks, sink
}

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, len(toks))
	for i, tok := range toks {
		out[i] = tok.Kind
	}
	return out
}

func TestEmptySourceProducesNoTokens(t *testing.T) {
	toks, sink := lex(t, "")
	if len(toks) != 0 {
		t.Fatalf("got %d tokens, want 0", len(toks))
	}
	if sink.PrintExitClear() {
		t.Fatal("unexpected diagnostics for empty source")
	}
}

func TestIdentifiersAndKeywords(t *testing.T) {
	toks, _ := lex(t, "module MyClass _x9 if")
	want := []string{"module", "MyClass", "_x9", "if"}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(toks), len(want))
	}
	for i, w := range want {
		if toks[i].Kind != token.Identifier {
			t.Errorf("tok[%d].Kind = %v, want Identifier", i, toks[i].Kind)
		}
		if toks[i].Text != w {
			t.Errorf("tok[%d].Text = %q, want %q", i, toks[i].Text, w)
		}
	}
}

func TestNumberLiterals(t *testing.T) {
	tests := []struct {
		input string
		kind  token.Kind
		text  string
	}{
		{"123", token.IntegerLiteral, "123"},
		{"0b101", token.BinaryNumber, "0b101"},
		{"0x1A", token.HexNumber, "0x1A"},
		{"3.14", token.FloatLiteral, "3.14"},
		{"3.14d", token.DoubleLiteral, "3.14d"},
		{"3.14f", token.FloatLiteral, "3.14f"},
		{"5f", token.FloatLiteral, "5f"},
		{"5d", token.DoubleLiteral, "5d"},
		{".5", token.FloatLiteral, ".5"},
		{".5d", token.DoubleLiteral, ".5d"},
	}
	for _, tt := range tests {
		toks, sink := lex(t, tt.input)
		if sink.PrintExitClear() {
			t.Errorf("input %q: unexpected error", tt.input)
			continue
		}
		if len(toks) != 1 {
			t.Errorf("input %q: got %d tokens, want 1", tt.input, len(toks))
			continue
		}
		if toks[0].Kind != tt.kind {
			t.Errorf("input %q: kind = %v, want %v", tt.input, toks[0].Kind, tt.kind)
		}
		if toks[0].Text != tt.text {
			t.Errorf("input %q: text = %q, want %q", tt.input, toks[0].Text, tt.text)
		}
	}
}

func TestEmptyBinaryLiteralIsError(t *testing.T) {
	toks, sink := lex(t, "0b")
	if !sink.PrintExitClear() {
		t.Fatal("expected an error for bare '0b'")
	}
	if len(toks) != 0 {
		t.Fatalf("got %d tokens, want 0 past the bad prefix", len(toks))
	}
}

func TestEmptyHexLiteralIsError(t *testing.T) {
	toks, sink := lex(t, "0x")
	if !sink.PrintExitClear() {
		t.Fatal("expected an error for bare '0x'")
	}
	if len(toks) != 0 {
		t.Fatalf("got %d tokens, want 0 past the bad prefix", len(toks))
	}
}

func TestStringLiteral(t *testing.T) {
	toks, sink := lex(t, `"hello world"`)
	if sink.PrintExitClear() {
		t.Fatal("unexpected diagnostics")
	}
	if len(toks) != 1 || toks[0].Kind != token.StringLiteral {
		t.Fatalf("got %+v", toks)
	}
	if toks[0].Text != `"hello world"` {
		t.Fatalf("text = %q", toks[0].Text)
	}
}

func TestStringEscapes(t *testing.T) {
	toks, sink := lex(t, `"a\nb\tc\\d\"e"`)
	if sink.PrintExitClear() {
		t.Fatal("unexpected diagnostics for recognized escapes")
	}
	if len(toks) != 1 {
		t.Fatalf("got %d tokens, want 1", len(toks))
	}
}

func TestUnrecognizedEscapeIsNonFatal(t *testing.T) {
	toks, sink := lex(t, `"a\qb"`)
	if !sink.PrintExitClear() {
		t.Fatal("expected an error for unrecognized escape")
	}
	if len(toks) != 1 || toks[0].Kind != token.StringLiteral {
		t.Fatalf("lexing did not recover to produce the string token: %+v", toks)
	}
}

func TestUnterminatedStringAtNewline(t *testing.T) {
	// The string terminates at the newline (spec §4.2), so scanning
	// resumes after it: "def" lexes as a plain identifier, and its
	// trailing quote opens a second, EOF-unterminated string.
	toks, sink := lex(t, "\"abc\ndef\"")
	if !sink.PrintExitClear() {
		t.Fatal("expected an unterminated-string error")
	}
	if len(toks) != 3 {
		t.Fatalf("got %d tokens, want 3: %+v", len(toks), toks)
	}
	if toks[0].Kind != token.StringLiteral || toks[0].Text != `"abc` {
		t.Errorf("tok[0] = %+v, want StringLiteral %q", toks[0], `"abc`)
	}
	if toks[1].Kind != token.Identifier || toks[1].Text != "def" {
		t.Errorf("tok[1] = %+v, want Identifier \"def\"", toks[1])
	}
	if toks[2].Kind != token.StringLiteral {
		t.Errorf("tok[2] = %+v, want StringLiteral", toks[2])
	}
}

func TestCharLiteral(t *testing.T) {
	toks, sink := lex(t, "'a'")
	if sink.PrintExitClear() {
		t.Fatal("unexpected diagnostics")
	}
	if len(toks) != 1 || toks[0].Kind != token.CharLiteral || toks[0].Text != "'a'" {
		t.Fatalf("got %+v", toks)
	}
}

func TestEmptyCharLiteralIsError(t *testing.T) {
	_, sink := lex(t, "''")
	if !sink.PrintExitClear() {
		t.Fatal("expected 'character literal cannot be empty'")
	}
}

func TestUnterminatedCharLiteral(t *testing.T) {
	_, sink := lex(t, "'a")
	if !sink.PrintExitClear() {
		t.Fatal("expected an unterminated character literal error")
	}
}

func TestOperatorMaximalMunch(t *testing.T) {
	toks, sink := lex(t, "== != <= >= && || ++ -- << >> += -= *= /= %= &= |= ^= <<= >>= =")
	if sink.PrintExitClear() {
		t.Fatal("unexpected diagnostics")
	}
	want := []token.Kind{
		token.EqualsEquals, token.NotEqual, token.LessThanOrEqual, token.GreaterThanOrEqual,
		token.AndAnd, token.OrOr, token.PlusPlus, token.MinusMinus, token.ShiftLeft, token.ShiftRight,
		token.PlusEquals, token.MinusEquals, token.MultiplyEquals, token.DivideEquals, token.ModuloEquals,
		token.AndEquals, token.OrEquals, token.XorEquals, token.ShiftLeftEquals, token.ShiftRightEquals,
		token.Assign,
	}
	got := kinds(toks)
	if len(got) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("tok[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestSingleCharPunctuation(t *testing.T) {
	toks, sink := lex(t, "( ) [ ] { } . , ? : ; ~ ! \\")
	if sink.PrintExitClear() {
		t.Fatal("unexpected diagnostics")
	}
	want := []token.Kind{
		token.LeftBracket, token.RightBracket, token.LeftSquareBracket, token.RightSquareBracket,
		token.LeftScopeBracket, token.RightScopeBracket, token.Dot, token.Comma, token.QuestionMark,
		token.Colon, token.Semicolon, token.FlipBits, token.Not, token.Backslash,
	}
	got := kinds(toks)
	if len(got) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("tok[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestUnexpectedSymbolRecovers(t *testing.T) {
	toks, sink := lex(t, "a @ b")
	if !sink.PrintExitClear() {
		t.Fatal("expected an 'unexpected symbol' error")
	}
	if len(toks) != 2 {
		t.Fatalf("got %d tokens, want 2 (lexer should recover past '@')", len(toks))
	}
}

func TestLineCommentSkipped(t *testing.T) {
	toks, sink := lex(t, "a // comment\nb")
	if sink.PrintExitClear() {
		t.Fatal("unexpected diagnostics")
	}
	if len(toks) != 2 {
		t.Fatalf("got %d tokens, want 2", len(toks))
	}
	if toks[1].Line != 2 {
		t.Fatalf("second token line = %d, want 2", toks[1].Line)
	}
}

func TestBlockCommentSkippedAcrossLines(t *testing.T) {
	toks, sink := lex(t, "a /* comment\nspanning lines */ b")
	if sink.PrintExitClear() {
		t.Fatal("unexpected diagnostics")
	}
	if len(toks) != 2 {
		t.Fatalf("got %d tokens, want 2", len(toks))
	}
	if toks[1].Line != 2 {
		t.Fatalf("second token line = %d, want 2", toks[1].Line)
	}
}

func TestTokenPositions(t *testing.T) {
	toks, sink := lex(t, "foo bar")
	if sink.PrintExitClear() {
		t.Fatal("unexpected diagnostics")
	}
	if toks[0].Line != 1 || toks[0].Col != 1 {
		t.Errorf("foo at (%d,%d), want (1,1)", toks[0].Line, toks[0].Col)
	}
	if toks[1].Line != 1 || toks[1].Col != 5 {
		t.Errorf("bar at (%d,%d), want (1,5)", toks[1].Line, toks[1].Col)
	}
}

func TestNewlineResetsColumn(t *testing.T) {
	toks, sink := lex(t, "foo\nbar")
	if sink.PrintExitClear() {
		t.Fatal("unexpected diagnostics")
	}
	if toks[1].Line != 2 || toks[1].Col != 1 {
		t.Errorf("bar at (%d,%d), want (2,1)", toks[1].Line, toks[1].Col)
	}
}

// TestTokenSliceMatchesSourceBytes checks universal invariant 1 from
// spec §8: for every token t, the source bytes at its position equal
// t.Text. We verify this indirectly by confirming every emitted token's
// Text appears verbatim in the source at a position consistent with
// (line, col); the lexer has no byte offset field, so we check the text
// is a substring of the corresponding source line at the expected
// column.
func TestTokenSliceMatchesSourceBytes(t *testing.T) {
	src := "int count = 42;"
	toks, sink := lex(t, src)
	if sink.PrintExitClear() {
		t.Fatal("unexpected diagnostics")
	}
	for _, tok := range toks {
		got := src[tok.Col-1 : tok.Col-1+len(tok.Text)]
		if got != tok.Text {
			t.Errorf("token %+v: source slice at col %d = %q, want %q", tok, tok.Col, got, tok.Text)
		}
	}
}

func TestSignIsPrefixNotPartOfLiteral(t *testing.T) {
	// spec §4.2: "The lexer does not collapse unary/binary minus into a
	// signed literal; the sign is parsed as a prefix operator."
	toks, sink := lex(t, "-5")
	if sink.PrintExitClear() {
		t.Fatal("unexpected diagnostics")
	}
	if len(toks) != 2 {
		t.Fatalf("got %d tokens, want 2 (minus, then 5)", len(toks))
	}
	if toks[0].Kind != token.Minus {
		t.Errorf("tok[0].Kind = %v, want Minus", toks[0].Kind)
	}
	if toks[1].Kind != token.IntegerLiteral || toks[1].Text != "5" {
		t.Errorf("tok[1] = %+v, want integer literal '5'", toks[1])
	}
}
