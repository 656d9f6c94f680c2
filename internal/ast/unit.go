package ast

import (
	"github.com/ark1409/shiftc/internal/lexer/token"
	"github.com/ark1409/shiftc/internal/source"
)

// Module is the "module x.y.z;" declaration at the top of a file. Two
// files may declare the same Module (they contribute to one logical
// module); Module here is the per-file declaration node, and the
// semantic analyzer groups files by Name.String() when building its
// module-level symbol tables.
type Module struct {
	Name Name
}

// File is one parsed translation unit: the tokens the lexer produced,
// the module/use/class/function/variable declarations the parser found
// at file scope, and the source.Map that owns the text and backs every
// token's position.
type File struct {
	Path   string
	Source *source.Map
	Tokens []token.Token

	ModuleDecl *Module // nil if the file never declared "module ...;"

	// Uses is the file-level "use" set (spec §4.4.1), in declaration
	// order; it is the third-priority slice the six-step lookup walks,
	// bounded per-declaration by that declaration's UseCountAtDecl.
	Uses []Name

	Classes []*Class
	Funcs   []*Function // module-scoped (non-method) functions
	Vars    []*Variable // module-scoped (non-field) variables
}

// UsesUpTo returns the file's use-set prefix visible to a declaration
// recorded with the given UseCountAtDecl (spec §4.4.3 step 3).
func (f *File) UsesUpTo(count int) []Name {
	if count > len(f.Uses) {
		count = len(f.Uses)
	}
	return f.Uses[:count]
}

// ModuleName returns the file's module path, or "" if it never declared
// one (spec §4.3.2's default-module behavior).
func (f *File) ModuleName() string {
	if f.ModuleDecl == nil {
		return ""
	}
	return f.ModuleDecl.Name.String()
}
