package semantic

import (
	"strconv"

	"github.com/ark1409/shiftc/internal/ast"
)

// Scope is a chain of lookup frames (spec §4.4.2): a module/file frame
// at the root, optionally a class frame, optionally a function frame,
// optionally a sequence of local-use frames threaded through a
// function body. Each frame owns exactly the pieces of candidate data
// the six-step algorithm (spec §4.4.3) draws from it, so Find* never
// needs to ask "did my parent already check this" — every field is
// populated by exactly one frame in the chain.
type Scope struct {
	parent *Scope
	tables *Tables
	file   *ast.File // set only on the root frame

	class    *ast.Class    // set only on the class frame
	function *ast.Function // set only on the function frame

	// useBound is this frame's implicit_use_statements count: the file
	// global use-set prefix its owning declaration may see (spec
	// §4.4.3 step 3). Only meaningful together with file != nil.
	useBound int

	// localUses is this frame's own explicit "use" set: a class's
	// declared uses at the class frame, or the use statements seen so
	// far in a function body at a local-use frame.
	localUses []ast.Name
}

// NewRootScope builds the file-level frame a type occurrence declared
// with the given implicit use count resolves against.
func NewRootScope(tables *Tables, file *ast.File, useBound int) *Scope {
	return &Scope{tables: tables, file: file, useBound: useBound}
}

// Class returns a child frame introducing class's own use set.
func (s *Scope) Class(class *ast.Class) *Scope {
	return &Scope{parent: s, tables: s.tables, class: class, localUses: class.Uses}
}

// Function returns a child frame introducing function's parameters.
func (s *Scope) Function(function *ast.Function) *Scope {
	return &Scope{parent: s, tables: s.tables, function: function}
}

// WithLocalUse returns a child frame that additionally sees localUse,
// used while walking a function body's statements in order so that a
// local variable's type resolution only sees "use" statements that
// lexically precede it.
func (s *Scope) WithLocalUse(localUse ast.Name) *Scope {
	uses := make([]ast.Name, 0, len(s.localUses)+1)
	uses = append(uses, s.localUses...)
	uses = append(uses, localUse)
	return &Scope{parent: s.parent, tables: s.tables, file: s.file, class: s.class,
		function: s.function, useBound: s.useBound, localUses: uses}
}

// FindClasses returns every class candidate for name, in the spec
// §4.4.3 priority order, de-duplicated by identity while preserving
// first-seen order.
func (s *Scope) FindClasses(name string) []*ast.Class {
	var out []*ast.Class
	seen := make(map[*ast.Class]bool)
	add := func(c *ast.Class) {
		if c != nil && !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}

	// Step 1: local scope's explicit use set.
	for _, u := range s.localUses {
		add(s.tables.Classes[u.String()+"."+name])
	}

	// Step 2: enclosing class's use set (the class frame also stores
	// its own Uses into localUses via Class(), so this is already
	// covered by step 1 when s.class != nil; kept distinct per spec's
	// own numbering for readability).

	// Step 3: file global use set, bounded by this frame's useBound.
	if s.file != nil {
		bound := s.useBound
		if bound > len(s.file.Uses) {
			bound = len(s.file.Uses)
		}
		for _, u := range s.file.Uses[:bound] {
			add(s.tables.Classes[u.String()+"."+name])
		}

		// Step 4: current-module.X.
		if mod := s.file.ModuleName(); mod != "" {
			add(s.tables.Classes[mod+"."+name])
		}

		// Step 5: bare X in the global class table.
		add(s.tables.Classes[name])
	}

	// Step 6: ask the parent, merging its candidates at the end.
	if s.parent != nil {
		out2 := s.parent.FindClasses(name)
		for _, c := range out2 {
			add(c)
		}
	}

	return out
}

// FindClass returns the unique class candidate, or (nil, false) if the
// candidate list is empty or ambiguous.
func (s *Scope) FindClass(name string) (*ast.Class, bool) {
	cs := s.FindClasses(name)
	if len(cs) == 1 {
		return cs[0], true
	}
	return nil, false
}

// FindVariables returns every variable candidate for name: the
// pseudo-variables this/base and the current class's own and inherited
// fields at the class frame, the current function's parameters at the
// function frame, and module-scoped globals at the root frame (spec
// §4.4.2/4.4.3). Expression-level resolution is not required by this
// front end's core (spec §4.4.4), but the method is exposed so a later
// typing pass (or a test) can drive it directly.
func (s *Scope) FindVariables(name string) []*ast.Variable {
	var out []*ast.Variable
	seen := make(map[*ast.Variable]bool)
	add := func(v *ast.Variable) {
		if v != nil && !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}

	if s.class != nil {
		switch name {
		case "this":
			add(s.class.ThisVar)
		case "base":
			if s.class.HasBase() {
				add(s.class.BaseVar)
			}
		default:
			for c := s.class; c != nil; c = c.Base {
				for _, v := range c.Vars {
					if v.Name() == name {
						add(v)
					}
				}
			}
		}
	}

	if s.function != nil {
		for _, p := range s.function.Params {
			if p.Key == name {
				add(&ast.Variable{NameToken: p.NameToken, Type: p.Type, Function: s.function, IsParam: true})
			}
		}
	}

	if s.file != nil {
		if mod := s.file.ModuleName(); mod != "" {
			add(s.tables.Variables[mod+"."+name])
		}
	}

	if s.parent != nil {
		for _, v := range s.parent.FindVariables(name) {
			add(v)
		}
	}

	return out
}

// FindVariable returns the unique variable candidate, or (nil, false).
func (s *Scope) FindVariable(name string) (*ast.Variable, bool) {
	vs := s.FindVariables(name)
	if len(vs) == 1 {
		return vs[0], true
	}
	return nil, false
}

// FindFunctions returns every function overload candidate for name,
// walking the base-class chain for methods and the use-set priority
// order for free functions, mirroring FindClasses's structure.
func (s *Scope) FindFunctions(name string) []*ast.Function {
	var out []*ast.Function
	seen := make(map[*ast.Function]bool)
	add := func(fn *ast.Function) {
		if fn != nil && !seen[fn] {
			seen[fn] = true
			out = append(out, fn)
		}
	}
	addFqn := func(fqn string) {
		n := s.tables.FuncDupeCount[fqn]
		for i := 0; i < n; i++ {
			add(s.tables.Functions[fqnOverloadKey(fqn, i)])
		}
	}

	if s.class != nil {
		for c := s.class; c != nil; c = c.Base {
			for _, fn := range c.Funcs {
				if fn.Name() == name {
					add(fn)
				}
			}
		}
		for _, u := range s.class.Uses {
			addFqn(u.String() + "." + name)
		}
	}

	if s.file != nil {
		bound := s.useBound
		if bound > len(s.file.Uses) {
			bound = len(s.file.Uses)
		}
		for _, u := range s.file.Uses[:bound] {
			addFqn(u.String() + "." + name)
		}
		if mod := s.file.ModuleName(); mod != "" {
			addFqn(mod + "." + name)
		}
	}

	if s.parent != nil {
		for _, fn := range s.parent.FindFunctions(name) {
			add(fn)
		}
	}

	return out
}

// FindFunction returns the unique function candidate, or (nil, false).
func (s *Scope) FindFunction(name string) (*ast.Function, bool) {
	fns := s.FindFunctions(name)
	if len(fns) == 1 {
		return fns[0], true
	}
	return nil, false
}

func fqnOverloadKey(fqn string, i int) string {
	return fqn + "@" + strconv.Itoa(i)
}
