// Package token defines Shift's token kinds and the Token type the lexer
// produces. Keywords are not separate kinds: they are IDENT tokens whose
// text matches a reserved word, checked with IsKeyword.
package token

// Kind is a bit-flag token kind, ported directly from the original
// compiler's token_type encoding
// (_examples/original_source/src/compiler/shift_tokenizer.h): a block of
// simple kinds occupies the low bits, and several high bits act as flags
// that compose with a base kind to form two-character operators. EqualsFlag
// composes with a base to form the "...=" family (PLUS -> PLUS_EQUALS);
// the other flag bits form the doubled-operator kinds (PLUS -> PLUS_PLUS,
// AND -> AND_AND, OR -> OR_OR, ...); "<<" and ">>" are simple kinds of
// their own. StripEquals
// recovers the base operator from any "...=" composite.
type Kind uint16

const (
	NullToken Kind = iota // 0: no token / out-of-range sentinel

	Identifier
	IntegerLiteral
	BinaryNumber
	HexNumber
	FloatLiteral
	DoubleLiteral
	GreaterThan
	LessThan
	Modulo
	Or
	And
	Xor
	FlipBits
	Not
	Plus
	Minus
	Multiply
	Divide
	LeftBracket
	RightBracket
	LeftSquareBracket
	RightSquareBracket
	LeftScopeBracket
	RightScopeBracket
	Dot
	Comma
	QuestionMark
	Colon
	Semicolon
	StringLiteral
	CharLiteral
	ShiftLeft
	ShiftRight
	Backslash

	// NumberLiteral is an alias kept for readability at call sites that
	// mean "any plain base-10 integer", matching the original's
	// NUMBER_LITERAL = INTEGER_LITERAL alias.
	NumberLiteral = IntegerLiteral
)

// High bit-flags, composed with a base kind via bitwise OR. These mirror
// the original's 1<<15 .. 1<<10 layout; the exact bit positions don't
// matter to callers (only StripEquals's contract does), but are kept
// numerically identical to the source for fidelity.
const (
	EqualsFlag  Kind = 1 << 15
	doubleFlagA Kind = 1 << 14 // ==
	doubleFlagB Kind = 1 << 13 // ||
	doubleFlagC Kind = 1 << 12 // &&
	doubleFlagD Kind = 1 << 11 // ++
	doubleFlagE Kind = 1 << 10 // --
)

// Composite kinds formed from a base kind plus a flag.
const (
	EqualsEquals        = doubleFlagA | EqualsFlag
	GreaterThanOrEqual  = GreaterThan | EqualsFlag
	LessThanOrEqual     = LessThan | EqualsFlag
	ModuloEquals        = Modulo | EqualsFlag
	OrEquals            = Or | EqualsFlag
	OrOr                = doubleFlagB | Or
	AndEquals           = And | EqualsFlag
	AndAnd              = doubleFlagC | And
	XorEquals           = Xor | EqualsFlag
	NotEqual            = Not | EqualsFlag
	PlusEquals          = Plus | EqualsFlag
	PlusPlus            = doubleFlagD | Plus
	MinusEquals         = Minus | EqualsFlag
	MinusMinus          = doubleFlagE | Minus
	MultiplyEquals      = Multiply | EqualsFlag
	DivideEquals        = Divide | EqualsFlag
	ShiftLeftEquals     = ShiftLeft | EqualsFlag
	ShiftRightEquals    = ShiftRight | EqualsFlag

	// Assign is the bare "=" token: it carries only the EqualsFlag bit
	// with no base operator, so StripEquals(Assign) == NullToken. This
	// mirrors the original encoding, where plain assignment has no
	// "non-equals" counterpart to strip back to.
	Assign = EqualsFlag
)

// HasEquals reports whether k carries the EqualsFlag bit.
func HasEquals(k Kind) bool { return k&EqualsFlag != 0 }

// StripEquals recovers the base operator kind from a composite "...="
// kind, e.g. StripEquals(PlusEquals) == Plus. Calling it on a kind
// without EqualsFlag returns k unchanged.
func StripEquals(k Kind) Kind { return k &^ EqualsFlag }

// keywords is the reserved-word set from spec.md §1; any IDENT token
// whose text matches one of these is a keyword, but still carries
// Kind == Identifier.
var keywords = map[string]bool{
	"module": true, "use": true, "class": true, "if": true, "else": true,
	"while": true, "for": true, "return": true, "break": true, "continue": true,
	"new": true, "this": true, "base": true, "null": true, "true": true, "false": true,
	"void": true, "public": true, "protected": true, "private": true, "static": true,
	"const": true, "extern": true, "ext": true, "binary": true, "explicit": true,
	"operator": true, "constructor": true, "destructor": true, "init": true,
	"throw": true, "unsafe": true,
}

// IsKeyword reports whether text is a reserved word.
func IsKeyword(text string) bool { return keywords[text] }

var kindNames = map[Kind]string{
	NullToken:          "NULL",
	Identifier:         "IDENT",
	IntegerLiteral:     "INT",
	BinaryNumber:       "BIN",
	HexNumber:          "HEX",
	FloatLiteral:       "FLOAT",
	DoubleLiteral:      "DOUBLE",
	GreaterThan:        ">",
	LessThan:           "<",
	Modulo:             "%",
	Or:                 "|",
	And:                "&",
	Xor:                "^",
	FlipBits:           "~",
	Not:                "!",
	Plus:               "+",
	Minus:              "-",
	Multiply:           "*",
	Divide:             "/",
	LeftBracket:        "(",
	RightBracket:       ")",
	LeftSquareBracket:  "[",
	RightSquareBracket: "]",
	LeftScopeBracket:   "{",
	RightScopeBracket:  "}",
	Dot:                ".",
	Comma:              ",",
	QuestionMark:       "?",
	Colon:              ":",
	Semicolon:          ";",
	StringLiteral:      "STRING",
	CharLiteral:        "CHAR",
	ShiftLeft:          "<<",
	ShiftRight:         ">>",
	Backslash:          "\\",
	EqualsEquals:       "==",
	GreaterThanOrEqual: ">=",
	LessThanOrEqual:    "<=",
	ModuloEquals:       "%=",
	OrEquals:           "|=",
	OrOr:               "||",
	AndEquals:          "&=",
	AndAnd:             "&&",
	XorEquals:          "^=",
	NotEqual:           "!=",
	PlusEquals:         "+=",
	PlusPlus:           "++",
	MinusEquals:        "-=",
	MinusMinus:         "--",
	MultiplyEquals:     "*=",
	DivideEquals:       "/=",
	ShiftLeftEquals:    "<<=",
	ShiftRightEquals:   ">>=",
	Assign:             "=",
}

// String returns a short display name for k, used by the "lex" CLI
// subcommand and diagnostic-adjacent debug output.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "UNKNOWN"
}
