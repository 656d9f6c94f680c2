package ast

import "github.com/ark1409/shiftc/internal/lexer/token"

// Type is a type reference as written in source: a (possibly dotted)
// class name, or "void", plus an array-dimension count for "T[]"/"T[][]"
// forms. Resolved points at the declaration the name refers to once the
// semantic analyzer has run; it stays nil for "void" and for names that
// failed to resolve (the analyzer will already have emitted a
// diagnostic in that case).
type Type struct {
	Name      Name
	ArrayDims int
	IsVoid    bool
	Const     bool

	Resolved *Class
}

// NewVoidType builds the implicit "void" return type at tok's position.
func NewVoidType(tok token.Token) *Type {
	return &Type{Name: NewName(tok), IsVoid: true}
}

// String renders the type the way it was spelled, e.g. "m.C[][]".
func (t *Type) String() string {
	s := t.Name.String()
	for i := 0; i < t.ArrayDims; i++ {
		s += "[]"
	}
	return s
}

// IsArray reports whether t has at least one array dimension.
func (t *Type) IsArray() bool { return t.ArrayDims > 0 }
