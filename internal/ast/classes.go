package ast

import "github.com/ark1409/shiftc/internal/lexer/token"

// Class is a class declaration: an optional base-class name, an ordered
// "use" set, and its member variables/functions. The implicit "this" and
// "base" pseudo-variables are materialized here (ThisVar/BaseVar) so the
// six-step scope lookup (spec §4.4.3) can return them as ordinary
// Variable values; the lookup maps the names "this" and "base" to them
// at the class frame.
type Class struct {
	NameToken token.Token
	Modifiers Modifiers

	BaseName Name   // as written; empty when there is no "extends"-style base
	Base     *Class // resolved by the analyzer; nil if BaseName is empty or unresolved

	Module *Module

	// Uses is the class's own "use" set (spec §4.4.1's per-class use
	// list), in declaration order.
	Uses []Name

	Vars  []*Variable
	Funcs []*Function

	ThisVar *Variable
	BaseVar *Variable

	UseCountAtDecl int
}

func (c *Class) Name() string { return c.NameToken.Text }

// HasBase reports whether the class declares a base class.
func (c *Class) HasBase() bool { return !c.BaseName.IsEmpty() }

// FullName returns the class's module-qualified name, e.g. "m.C".
func (c *Class) FullName() string {
	if c.Module == nil {
		return c.Name()
	}
	return c.Module.Name.String() + "." + c.Name()
}
