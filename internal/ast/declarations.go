package ast

import "github.com/ark1409/shiftc/internal/lexer/token"

// Variable is a variable declaration: a module-scoped global, a class
// field, a function parameter, or a local in a function body. Which one
// it is follows from which of Module/Class/Function is non-nil and from
// IsParam/IsLocal.
type Variable struct {
	NameToken token.Token
	Type      *Type
	Init      *Expression // optional initializer; nil for parameters
	Modifiers Modifiers

	Module   *Module
	Class    *Class
	Function *Function

	IsParam bool
	IsLocal bool

	// UseCountAtDecl is the number of file-level use statements that
	// precede this declaration at the point it was parsed (spec
	// §4.4.3's implicit_use_statements slice bound),
	// recorded by the parser and consumed by the analyzer's scope walk.
	UseCountAtDecl int
}

func (v *Variable) Name() string { return v.NameToken.Text }

// Param is one entry of a Function's parameter list. Key is the
// parameter's declared name, or a synthetic "@0", "@1", ... placeholder
// when the source left it unnamed — spec §4.3.1's anonymous-parameter
// allowance — so Function.Params can stay a name-keyed structure even
// when some entries have no real name.
type Param struct {
	Key       string
	NameToken token.Token // zero value when the parameter is unnamed
	Type      *Type
}

// Function is a function or method declaration: module-scoped when
// Class is nil, a method otherwise. Constructors and destructors are
// ordinary Functions distinguished by Name ("constructor"/"destructor"
// keywords are lexed as identifiers, spec §1).
type Function struct {
	NameToken  token.Token
	ReturnType *Type
	Params     []Param
	Body       []*Statement
	Modifiers  Modifiers

	Module *Module
	Class  *Class

	// OverloadIndex is this function's position (0-based) among every
	// function sharing its fully-qualified name, assigned by the
	// analyzer in declaration order — spec §4.4.3's "@i" overload key.
	OverloadIndex int

	UseCountAtDecl int
}

func (f *Function) Name() string { return f.NameToken.Text }

// IsMethod reports whether f is declared inside a class.
func (f *Function) IsMethod() bool { return f.Class != nil }

// ParamType looks up a parameter's type by its Key (declared name or
// synthetic "@i" placeholder).
func (f *Function) ParamType(key string) (*Type, bool) {
	for _, p := range f.Params {
		if p.Key == key {
			return p.Type, true
		}
	}
	return nil, false
}
