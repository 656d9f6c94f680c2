// Package semantic implements Shift's analyzer (spec §4.4): it builds
// the global module/class/function/variable tables, then walks every
// file resolving type occurrences against those tables using the
// six-step scope lookup (scope.go).
package semantic

import (
	"fmt"

	"github.com/ark1409/shiftc/internal/ast"
	"github.com/ark1409/shiftc/internal/diag"
)

// Tables holds the global symbol tables built in one pass over every
// parsed file (spec §4.4.1).
type Tables struct {
	Modules map[string]bool

	// Classes maps a fully qualified class name ("m.C") to its
	// declaration.
	Classes map[string]*ast.Class

	// Functions maps an overload key ("m.C.f@0") to its declaration.
	Functions map[string]*ast.Function

	// Variables maps a fully qualified name to a module-scoped global
	// variable declaration; class fields and locals are not entered here.
	Variables map[string]*ast.Variable

	// FuncDupeCount maps a function's plain fqn ("m.C.f") to how many
	// overloads were registered under it.
	FuncDupeCount map[string]int
}

func newTables() *Tables {
	return &Tables{
		Modules:       make(map[string]bool),
		Classes:       make(map[string]*ast.Class),
		Functions:     make(map[string]*ast.Function),
		Variables:     make(map[string]*ast.Variable),
		FuncDupeCount: make(map[string]int),
	}
}

// buildTables populates a fresh Tables from every file, reporting
// duplicate classes, duplicate globals, and duplicate function
// signatures at the redeclaration's name token (spec §4.4.1).
func buildTables(files []*ast.File, sink *diag.Sink) *Tables {
	t := newTables()

	for _, f := range files {
		if f.ModuleDecl != nil {
			t.Modules[f.ModuleName()] = true
		}
	}

	for _, f := range files {
		modPrefix := ""
		if f.ModuleDecl != nil {
			modPrefix = f.ModuleName() + "."
		}

		for _, c := range f.Classes {
			fqn := modPrefix + c.Name()
			if existing, ok := t.Classes[fqn]; ok {
				emitError(sink, f, c.NameToken, "duplicate class '%s' (also declared at %d:%d)",
					fqn, existing.NameToken.Line, existing.NameToken.Col)
				continue
			}
			t.Classes[fqn] = c
		}

		for _, v := range f.Vars {
			fqn := modPrefix + v.Name()
			if existing, ok := t.Variables[fqn]; ok {
				emitError(sink, f, v.NameToken, "duplicate variable '%s' (also declared at %d:%d)",
					fqn, existing.NameToken.Line, existing.NameToken.Col)
				continue
			}
			t.Variables[fqn] = v
		}

		for _, fn := range f.Funcs {
			registerFunction(t, modPrefix+fn.Name(), fn)
		}
		for _, c := range f.Classes {
			fqn := modPrefix + c.Name()
			for _, fn := range c.Funcs {
				registerFunction(t, fqn+"."+fn.Name(), fn)
			}
		}
	}

	reportDuplicateSignatures(t, files, sink)
	return t
}

// registerFunction assigns fn its overload index and inserts it under
// fqn's "@i" key (spec §4.4.1, and the fqn@i layout tested by spec §8
// scenario 4).
func registerFunction(t *Tables, fqn string, fn *ast.Function) {
	idx := t.FuncDupeCount[fqn]
	fn.OverloadIndex = idx
	t.FuncDupeCount[fqn] = idx + 1
	t.Functions[fmt.Sprintf("%s@%d", fqn, idx)] = fn
}

// reportDuplicateSignatures flags two overloads of the same fqn whose
// parameter type spellings match exactly, i.e. functions that differ
// only in name visibility or body, not in the signature that
// distinguishes overloads. This needs only the written type spelling
// (Type.String()), not resolved classes, so it runs before type
// resolution.
func reportDuplicateSignatures(t *Tables, files []*ast.File, sink *diag.Sink) {
	byFqn := make(map[string][]*ast.Function)
	fileOf := make(map[*ast.Function]*ast.File)
	for _, f := range files {
		modPrefix := ""
		if f.ModuleDecl != nil {
			modPrefix = f.ModuleName() + "."
		}
		for _, fn := range f.Funcs {
			fqn := modPrefix + fn.Name()
			byFqn[fqn] = append(byFqn[fqn], fn)
			fileOf[fn] = f
		}
		for _, c := range f.Classes {
			fqn := modPrefix + c.Name()
			for _, fn := range c.Funcs {
				full := fqn + "." + fn.Name()
				byFqn[full] = append(byFqn[full], fn)
				fileOf[fn] = f
			}
		}
	}

	for _, fns := range byFqn {
		seen := make(map[string]*ast.Function)
		for _, fn := range fns {
			sig := signatureOf(fn)
			if existing, ok := seen[sig]; ok {
				emitError(sink, fileOf[fn], fn.NameToken,
					"duplicate function signature '%s(%s)' (also declared at %d:%d)",
					fn.Name(), sig, existing.NameToken.Line, existing.NameToken.Col)
				continue
			}
			seen[sig] = fn
		}
	}
}

func signatureOf(fn *ast.Function) string {
	s := ""
	for i, p := range fn.Params {
		if i > 0 {
			s += ","
		}
		s += p.Type.String()
	}
	return s
}
