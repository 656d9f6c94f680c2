package semantic

import (
	"testing"

	"github.com/ark1409/shiftc/internal/ast"
	"github.com/ark1409/shiftc/internal/lexer/token"
)

func idTok(text string) token.Token { return token.Token{Kind: token.Identifier, Text: text} }

func nameOf(text string) ast.Name { return ast.NewName(idTok(text)) }

func fileNamed(mod string) *ast.File {
	return &ast.File{ModuleDecl: &ast.Module{Name: nameOf(mod)}}
}

// TestFindClassesLocalUsePriorityOverModule exercises spec §4.4.3 step 1:
// a class-use-set candidate must appear ahead of the current module's
// own (distinct) class of the same simple name.
func TestFindClassesLocalUsePriorityOverModule(t *testing.T) {
	tb := newTables()
	aC := &ast.Class{NameToken: idTok("C")}
	mC := &ast.Class{NameToken: idTok("C")}
	tb.Classes["a.C"] = aC
	tb.Classes["m.C"] = mC

	root := NewRootScope(tb, fileNamed("m"), 0)
	local := root.Class(&ast.Class{Uses: []ast.Name{nameOf("a")}})

	cands := local.FindClasses("C")
	if len(cands) == 0 || cands[0] != aC {
		t.Fatalf("FindClasses(C)[0] = %v, want a.C first", cands)
	}
}

// TestFindClassesStepOrder exercises the full priority order from spec
// §4.4.3: class-use, file-use (bounded), current-module, bare global.
func TestFindClassesStepOrder(t *testing.T) {
	tb := newTables()
	aC := &ast.Class{NameToken: idTok("C")}
	bC := &ast.Class{NameToken: idTok("C")}
	mC := &ast.Class{NameToken: idTok("C")}
	bare := &ast.Class{NameToken: idTok("C")}
	tb.Classes["a.C"] = aC
	tb.Classes["b.C"] = bC
	tb.Classes["m.C"] = mC
	tb.Classes["C"] = bare

	file := fileNamed("m")
	file.Uses = []ast.Name{nameOf("b")}

	root := NewRootScope(tb, file, 1)
	scope := root.Class(&ast.Class{Uses: []ast.Name{nameOf("a")}})

	cands := scope.FindClasses("C")
	want := []*ast.Class{aC, bC, mC, bare}
	if len(cands) != len(want) {
		t.Fatalf("FindClasses(C) = %d candidates, want %d", len(cands), len(want))
	}
	for i, c := range want {
		if cands[i] != c {
			t.Errorf("FindClasses(C)[%d] = %p, want %p", i, cands[i], c)
		}
	}
}

// TestFindClassesFileUseIsBoundedByUseCountAtDecl exercises spec
// §4.4.3's per-declaration use-count bound: a use statement appearing
// after the declaration must not be a candidate for it.
func TestFindClassesFileUseIsBoundedByUseCountAtDecl(t *testing.T) {
	tb := newTables()
	bC := &ast.Class{NameToken: idTok("C")}
	tb.Classes["b.C"] = bC

	file := fileNamed("m")
	file.Uses = []ast.Name{nameOf("b")} // declared AFTER the var in source order

	// useBound 0 models a declaration parsed before any "use" was seen.
	root := NewRootScope(tb, file, 0)
	cands := root.FindClasses("C")
	if len(cands) != 0 {
		t.Errorf("FindClasses(C) = %v, want no candidates (use not yet in scope)", cands)
	}
}

func TestFindVariablesThisAndBase(t *testing.T) {
	base := &ast.Class{NameToken: idTok("Base")}
	derived := &ast.Class{NameToken: idTok("Derived"), BaseName: nameOf("Base"), Base: base}
	derived.ThisVar = &ast.Variable{NameToken: idTok("this"), Class: derived}
	derived.BaseVar = &ast.Variable{NameToken: idTok("base"), Class: derived}

	tb := newTables()
	root := NewRootScope(tb, fileNamed("m"), 0)
	scope := root.Class(derived)

	if v, ok := scope.FindVariable("this"); !ok || v != derived.ThisVar {
		t.Errorf("FindVariable(this) = %v,%v, want derived.ThisVar", v, ok)
	}
	if v, ok := scope.FindVariable("base"); !ok || v != derived.BaseVar {
		t.Errorf("FindVariable(base) = %v,%v, want derived.BaseVar", v, ok)
	}
}

func TestFindVariableBaseAbsentWithNoBaseClass(t *testing.T) {
	cls := &ast.Class{NameToken: idTok("Lonely")}
	cls.ThisVar = &ast.Variable{NameToken: idTok("this"), Class: cls}

	tb := newTables()
	root := NewRootScope(tb, fileNamed("m"), 0)
	scope := root.Class(cls)

	if _, ok := scope.FindVariable("base"); ok {
		t.Error("FindVariable(base) should fail: class has no base")
	}
}

func TestFindVariablesInheritedField(t *testing.T) {
	baseField := &ast.Variable{NameToken: idTok("x")}
	base := &ast.Class{NameToken: idTok("Base"), Vars: []*ast.Variable{baseField}}
	derived := &ast.Class{NameToken: idTok("Derived"), Base: base}

	tb := newTables()
	root := NewRootScope(tb, fileNamed("m"), 0)
	scope := root.Class(derived)

	v, ok := scope.FindVariable("x")
	if !ok || v != baseField {
		t.Errorf("FindVariable(x) = %v,%v, want the inherited base field", v, ok)
	}
}

func TestFindVariablesFunctionParam(t *testing.T) {
	fn := &ast.Function{NameToken: idTok("f"), Params: []ast.Param{
		{Key: "a", NameToken: idTok("a"), Type: &ast.Type{Name: nameOf("int")}},
	}}
	tb := newTables()
	root := NewRootScope(tb, fileNamed("m"), 0)
	scope := root.Function(fn)

	v, ok := scope.FindVariable("a")
	if !ok || v.Type.Name.String() != "int" {
		t.Errorf("FindVariable(a) = %v,%v", v, ok)
	}
}

func TestFindFunctionsWalksBaseChain(t *testing.T) {
	baseFn := &ast.Function{NameToken: idTok("f")}
	base := &ast.Class{NameToken: idTok("Base"), Funcs: []*ast.Function{baseFn}}
	derived := &ast.Class{NameToken: idTok("Derived"), Base: base}

	tb := newTables()
	root := NewRootScope(tb, fileNamed("m"), 0)
	scope := root.Class(derived)

	fn, ok := scope.FindFunction("f")
	if !ok || fn != baseFn {
		t.Errorf("FindFunction(f) = %v,%v, want the inherited base method", fn, ok)
	}
}

func TestFindFunctionsOverloadSetViaUse(t *testing.T) {
	tb := newTables()
	f0 := &ast.Function{NameToken: idTok("f")}
	f1 := &ast.Function{NameToken: idTok("f")}
	tb.Functions["a.f@0"] = f0
	tb.Functions["a.f@1"] = f1
	tb.FuncDupeCount["a.f"] = 2

	root := NewRootScope(tb, fileNamed("m"), 0)
	scope := root.Class(&ast.Class{Uses: []ast.Name{nameOf("a")}})

	fns := scope.FindFunctions("f")
	if len(fns) != 2 {
		t.Fatalf("FindFunctions(f) = %d, want 2 overloads", len(fns))
	}
}
