package token

import "testing"

func TestStripEqualsRecoversBaseOperator(t *testing.T) {
	tests := []struct {
		composite Kind
		want      Kind
	}{
		{PlusEquals, Plus},
		{MinusEquals, Minus},
		{MultiplyEquals, Multiply},
		{DivideEquals, Divide},
		{ModuloEquals, Modulo},
		{AndEquals, And},
		{OrEquals, Or},
		{XorEquals, Xor},
		{ShiftLeftEquals, ShiftLeft},
		{ShiftRightEquals, ShiftRight},
		{GreaterThanOrEqual, GreaterThan},
		{LessThanOrEqual, LessThan},
		{NotEqual, Not},
	}
	for _, tt := range tests {
		if got := StripEquals(tt.composite); got != tt.want {
			t.Errorf("StripEquals(%v) = %v, want %v", tt.composite, got, tt.want)
		}
	}
}

func TestStripEqualsOnAssignHasNoBase(t *testing.T) {
	if got := StripEquals(Assign); got != NullToken {
		t.Errorf("StripEquals(Assign) = %v, want NullToken", got)
	}
}

func TestStripEqualsOnPlainKindIsIdentity(t *testing.T) {
	if got := StripEquals(Plus); got != Plus {
		t.Errorf("StripEquals(Plus) = %v, want Plus", got)
	}
}

func TestHasEquals(t *testing.T) {
	if !HasEquals(PlusEquals) {
		t.Error("HasEquals(PlusEquals) = false, want true")
	}
	if HasEquals(Plus) {
		t.Error("HasEquals(Plus) = true, want false")
	}
	if !HasEquals(Assign) {
		t.Error("HasEquals(Assign) = false, want true")
	}
}

func TestDoubledOperatorsDoNotCarryEquals(t *testing.T) {
	for _, k := range []Kind{OrOr, AndAnd, PlusPlus, MinusMinus} {
		if HasEquals(k) {
			t.Errorf("HasEquals(%v) = true, want false", k)
		}
	}
}

func TestIsKeyword(t *testing.T) {
	for _, word := range []string{"module", "use", "class", "if", "else", "while", "for",
		"return", "break", "continue", "new", "this", "base", "null", "true", "false",
		"void", "public", "protected", "private", "static", "const", "extern", "ext",
		"binary", "explicit", "operator", "constructor", "destructor", "init", "throw"} {
		if !IsKeyword(word) {
			t.Errorf("IsKeyword(%q) = false, want true", word)
		}
	}
	if IsKeyword("notAKeyword") {
		t.Error("IsKeyword(notAKeyword) = true, want false")
	}
}

func TestKindStringUnknownFallback(t *testing.T) {
	if got := Kind(0xFFFF).String(); got != "UNKNOWN" {
		t.Errorf("String() = %q, want UNKNOWN", got)
	}
	if got := Plus.String(); got != "+" {
		t.Errorf("Plus.String() = %q, want +", got)
	}
}
