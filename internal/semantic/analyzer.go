package semantic

import (
	"github.com/ark1409/shiftc/internal/ast"
	"github.com/ark1409/shiftc/internal/diag"
)

// Analyzer runs spec §4.4's table-building and post-parse resolution
// pass over every parsed file. It never aborts (spec §4.4.5): every
// problem is reported to the injected sink and unresolved fields are
// left nil so a later stage can check resolved-ness.
type Analyzer struct {
	sink   *diag.Sink
	tables *Tables
}

// New creates an Analyzer reporting to sink.
func New(sink *diag.Sink) *Analyzer {
	return &Analyzer{sink: sink}
}

// Tables returns the tables built by the most recent Analyze call, for
// a caller that wants to print a report (e.g. the "analyze" CLI
// subcommand's --report mode).
func (a *Analyzer) Tables() *Tables { return a.tables }

// Analyze builds the global tables and resolves every type occurrence
// across files, reporting every problem to the sink given to New and
// returning that same sink for convenient chaining (spec §4.4's
// Analyzer.Analyze signature).
func (a *Analyzer) Analyze(files []*ast.File) *diag.Sink {
	a.tables = buildTables(files, a.sink)

	for _, f := range files {
		a.checkModuleDecl(f)
		a.checkUseStatements(f)
	}

	for _, f := range files {
		for _, c := range f.Classes {
			a.resolveBase(f, c)
		}
	}
	a.checkBaseCycles(files)

	for _, f := range files {
		for _, v := range f.Vars {
			scope := a.rootScope(f, v.UseCountAtDecl)
			a.resolveType(scope, f, v.Type)
		}
		for _, c := range f.Classes {
			for _, v := range c.Vars {
				fieldScope := a.rootScope(f, v.UseCountAtDecl).Class(c)
				a.resolveType(fieldScope, f, v.Type)
			}
			for _, fn := range c.Funcs {
				a.analyzeFunction(f, c, fn)
			}
		}
		for _, fn := range f.Funcs {
			a.analyzeFunction(f, nil, fn)
		}
	}

	return a.sink
}

func (a *Analyzer) rootScope(f *ast.File, useBound int) *Scope {
	return NewRootScope(a.tables, f, useBound)
}

// resolveBase resolves a class's optional base-class name, using the
// scope visible to the class declaration itself (spec §4.4.3 applied
// to a class's own type reference).
func (a *Analyzer) resolveBase(f *ast.File, c *ast.Class) {
	if !c.HasBase() {
		return
	}
	scope := a.rootScope(f, c.UseCountAtDecl)
	name := c.BaseName.String()
	if base, ok := scope.FindClass(name); ok {
		c.Base = base
		return
	}
	a.reportClassLookupFailure(f, scope, c.BaseName)
}

// checkBaseCycles verifies invariant 4: every class's base chain is
// cycle-free. Every class whose base chain runs into a cycle gets one
// error, reported at that class.
func (a *Analyzer) checkBaseCycles(files []*ast.File) {
	for _, f := range files {
		for _, c := range f.Classes {
			seen := map[*ast.Class]bool{}
			for cur := c; cur != nil; cur = cur.Base {
				if seen[cur] {
					emitError(a.sink, f, c.NameToken, "circular base class chain for '%s'", c.FullName())
					break
				}
				seen[cur] = true
			}
		}
	}
}

// analyzeFunction resolves fn's return/parameter types and walks its
// body resolving local variable types and linking break/continue back
// to their enclosing loop.
func (a *Analyzer) analyzeFunction(f *ast.File, class *ast.Class, fn *ast.Function) {
	scope := a.rootScope(f, fn.UseCountAtDecl)
	if class != nil {
		scope = scope.Class(class)
	}
	scope = scope.Function(fn)

	a.resolveType(scope, f, fn.ReturnType)
	a.checkDuplicateParams(f, fn)
	for _, p := range fn.Params {
		a.resolveType(scope, f, p.Type)
	}

	a.analyzeStatements(f, scope, fn.Body, nil)
}

func (a *Analyzer) checkDuplicateParams(f *ast.File, fn *ast.Function) {
	seen := make(map[string]bool)
	for _, p := range fn.Params {
		if p.NameToken.IsNull() {
			continue
		}
		if seen[p.NameToken.Text] {
			emitError(a.sink, f, p.NameToken, "duplicate parameter name '%s'", p.NameToken.Text)
			continue
		}
		seen[p.NameToken.Text] = true
	}
}

// analyzeStatements walks a statement list in order, threading a
// growing local-use scope and an enclosing-loop stack down into
// nested bodies.
func (a *Analyzer) analyzeStatements(f *ast.File, scope *Scope, stmts []*ast.Statement, loopStack []*ast.Statement) {
	for _, st := range stmts {
		if st == nil {
			continue
		}
		switch st.Kind {
		case ast.StmtVarDecl:
			a.resolveType(scope, f, st.Var.Type)

		case ast.StmtUse:
			if !a.tables.Modules[st.Use.String()] {
				emitNameError(a.sink, f, st.Use, "use of unknown module '%s'", st.Use.String())
			}
			scope = scope.WithLocalUse(st.Use)

		case ast.StmtBlock:
			a.analyzeStatements(f, scope, st.Body, loopStack)

		case ast.StmtIf:
			a.analyzeStatements(f, scope, []*ast.Statement{st.IfThen()}, loopStack)
			if st.Else != nil {
				a.analyzeStatements(f, scope, []*ast.Statement{st.Else}, loopStack)
			}

		case ast.StmtWhile, ast.StmtFor:
			if st.Kind == ast.StmtFor && st.ForInit != nil {
				a.analyzeStatements(f, scope, []*ast.Statement{st.ForInit}, loopStack)
			}
			nested := append(append([]*ast.Statement{}, loopStack...), st)
			a.analyzeStatements(f, scope, []*ast.Statement{st.LoopBody()}, nested)

		case ast.StmtBreak, ast.StmtContinue:
			if len(loopStack) > 0 {
				st.EnclosingLoop = loopStack[len(loopStack)-1]
			}
		}
	}
}

// resolveType resolves typ.Name against scope, setting typ.Resolved on
// success or emitting the appropriate "unable to resolve"/"ambiguous"
// diagnostic (spec §4.4.3's ambiguity rule) otherwise. "void" and
// array-only nil types are left alone.
func (a *Analyzer) resolveType(scope *Scope, f *ast.File, typ *ast.Type) {
	if typ == nil || typ.IsVoid || typ.Name.IsEmpty() {
		return
	}
	if c, ok := scope.FindClass(typ.Name.String()); ok {
		typ.Resolved = c
		return
	}
	a.reportClassLookupFailure(f, scope, typ.Name)
}

func (a *Analyzer) reportClassLookupFailure(f *ast.File, scope *Scope, name ast.Name) {
	cands := scope.FindClasses(name.String())
	if len(cands) == 0 {
		emitNameError(a.sink, f, name, "unable to resolve class '%s'", name.String())
	} else {
		emitNameError(a.sink, f, name, "ambiguous class reference to '%s'", name.String())
	}
}

// checkModuleDecl reports an error when a file has no "module ...;" declaration
// (spec §4.4.4's "missing module declarations").
func (a *Analyzer) checkModuleDecl(f *ast.File) {
	if f.ModuleDecl == nil {
		emitFileError(a.sink, f, "file has no 'module' declaration")
	}
}

// checkUseStatements reports redundant and unknown-module "use"
// statements at both file and class scope (spec §4.4.4).
func (a *Analyzer) checkUseStatements(f *ast.File) {
	seen := make(map[string]bool)
	for _, u := range f.Uses {
		a.checkOneUse(f, u, seen)
	}
	for _, c := range f.Classes {
		classSeen := make(map[string]bool, len(seen))
		for k := range seen {
			classSeen[k] = true
		}
		for _, u := range c.Uses {
			a.checkOneUse(f, u, classSeen)
		}
	}
}

func (a *Analyzer) checkOneUse(f *ast.File, u ast.Name, seen map[string]bool) {
	s := u.String()
	if !a.tables.Modules[s] {
		emitNameError(a.sink, f, u, "use of unknown module '%s'", s)
	}
	if s == f.ModuleName() || seen[s] {
		emitNameWarn(a.sink, f, u, "redundant 'use' statement")
	}
	seen[s] = true
}
