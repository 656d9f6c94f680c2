package parser

import (
	"fmt"

	"github.com/ark1409/shiftc/internal/ast"
	"github.com/ark1409/shiftc/internal/lexer/token"
)

// declModifiers is every modifier bit accepted on a plain function
// declaration (variables use variableModifiers). "const" is deliberately absent: per spec §9's
// open question this front end treats const exclusively as a type
// modifier (parseType), never as a declaration-level flag.
const declModifiers = ast.ModPublic | ast.ModProtected | ast.ModPrivate | ast.ModStatic |
	ast.ModExtern | ast.ModExt | ast.ModBinary | ast.ModExplicit | ast.ModUnsafe

const classModifiers = ast.ModPublic | ast.ModProtected | ast.ModPrivate

const variableModifiers = ast.ModPublic | ast.ModProtected | ast.ModPrivate | ast.ModStatic | ast.ModUnsafe

const constructorModifiers = ast.ModPublic | ast.ModProtected | ast.ModPrivate | ast.ModExplicit | ast.ModUnsafe

const destructorModifiers = ast.ModPublic | ast.ModProtected | ast.ModPrivate | ast.ModUnsafe

// parseTopItem parses one production of spec §4.3.1's "top_item" rule:
// a module/use declaration, a class, a modifier keyword (accumulated
// for the declaration that follows), a constructor/destructor, or a
// plain variable/function declaration.
func (p *Parser) parseTopItem() {
	if p.tryAccessSpecifier() {
		return
	}
	switch {
	case p.cur().Is("module"):
		p.parseModuleDecl()
	case p.cur().Is("use"):
		p.parseUseDecl()
	case p.cur().Is("class"):
		p.parseClass()
	case p.cur().Is("constructor"):
		p.parseConstructor()
	case p.cur().Is("destructor"):
		p.parseDestructor()
	default:
		p.parseVarOrFunc()
	}
}

// tryAccessSpecifier consumes one modifier keyword into the pending
// list and reports true, or reports false without consuming anything.
// "const" is excluded here: it is parsed as part of a type (parseType),
// never accumulated as a declaration modifier.
func (p *Parser) tryAccessSpecifier() bool {
	tok := p.cur()
	if !tok.IsAccessSpecifier() || tok.Text == "const" {
		return false
	}
	p.advance()
	flag, _ := ast.ModifierFromText(tok.Text)
	p.pendingMods = append(p.pendingMods, modTok{flag: flag, tok: tok})
	return true
}

func isVisibility(m ast.Modifiers) bool {
	return m == ast.ModPublic || m == ast.ModProtected || m == ast.ModPrivate
}

// takeModifiers validates and drains the pending modifier list against
// allowed, the set of flags legal on the declaration kind named by
// what. A flag outside allowed is an error; a repeated identical flag
// is a warning (spec invariant 5); a different visibility flag than one
// already taken is an error.
func (p *Parser) takeModifiers(allowed ast.Modifiers, what string) ast.Modifiers {
	var result ast.Modifiers
	for _, m := range p.pendingMods {
		if !allowed.Any(m.flag) {
			p.errorAt(m.tok, "modifier '%s' is not allowed on %s", m.tok.Text, what)
			continue
		}
		switch {
		case result.Has(m.flag):
			p.warnAt(m.tok, "redundant modifier '%s'", m.tok.Text)
		case isVisibility(m.flag) && result.VisibilityCount() > 0:
			p.errorAt(m.tok, "conflicting visibility modifier '%s'", m.tok.Text)
			result |= m.flag
		default:
			result |= m.flag
		}
	}
	p.pendingMods = nil
	return result
}

// rejectModifiers reports every pending modifier as disallowed on a
// construct that never takes modifiers (module/use declarations).
func (p *Parser) rejectModifiers(what string) {
	for _, m := range p.pendingMods {
		p.errorAt(m.tok, "modifiers are not allowed on %s", what)
	}
	p.pendingMods = nil
}

// parseName parses a dotted identifier path, reporting an error and
// returning an empty Name if the current token cannot start one.
func (p *Parser) parseName() ast.Name {
	if !p.cur().IsIdentifier() {
		p.errorHere("expected identifier")
		return ast.Name{}
	}
	return p.parseDottedName()
}

func (p *Parser) expectSemicolon() bool {
	_, ok := p.expect(token.Semicolon, "';'")
	return ok
}

// parseModuleDecl parses "module name;" (spec §4.3.1), enforcing
// invariant: a module declaration must be the first thing in the file
// and must appear at most once.
func (p *Parser) parseModuleDecl() {
	tok, _ := p.acceptWord("module")
	p.rejectModifiers("'module'")
	name := p.parseName()
	if !p.expectSemicolon() {
		p.skipAfter(token.Semicolon)
	}
	if name.IsEmpty() {
		return
	}
	if p.file.ModuleDecl != nil {
		p.errorAt(tok, "module already declared for this file")
		return
	}
	if len(p.file.Classes) > 0 || len(p.file.Funcs) > 0 || len(p.file.Vars) > 0 || len(p.file.Uses) > 0 {
		p.errorAt(tok, "'module' declaration must precede every other declaration")
	}
	p.file.ModuleDecl = &ast.Module{Name: name}
}

// parseUseDecl parses "use name;" at file scope or (when p.currentClass
// is non-nil) inside a class body, appending to the matching use set.
func (p *Parser) parseUseDecl() {
	_, _ = p.acceptWord("use")
	p.rejectModifiers("'use'")
	name := p.parseName()
	if !p.expectSemicolon() {
		p.skipAfter(token.Semicolon)
	}
	if name.IsEmpty() {
		return
	}
	if p.currentClass != nil {
		p.currentClass.Uses = append(p.currentClass.Uses, name)
	} else {
		p.file.Uses = append(p.file.Uses, name)
	}
}

// parseClass parses "modifier* class IDENT [: name] { top_item* }"
// (spec §4.3.1's class_body), materializing the implicit this/base
// pseudo-variables so the analyzer's scope lookup can treat them like
// any other Variable (see internal/ast/classes.go).
func (p *Parser) parseClass() {
	_, _ = p.acceptWord("class")
	mods := p.takeModifiers(classModifiers, "a class")

	nameTok := p.cur()
	if !nameTok.IsValidClassName() {
		p.errorHere("expected class name")
		p.skipUntil(token.LeftScopeBracket, token.Semicolon)
	} else {
		p.advance()
	}

	cls := &ast.Class{
		NameToken:      nameTok,
		Modifiers:      mods,
		Module:         p.file.ModuleDecl,
		UseCountAtDecl: len(p.file.Uses),
	}
	cls.ThisVar = &ast.Variable{NameToken: token.Token{Kind: token.Identifier, Text: "this"}, Class: cls}
	cls.BaseVar = &ast.Variable{NameToken: token.Token{Kind: token.Identifier, Text: "base"}, Class: cls}

	if _, ok := p.accept(token.Colon); ok {
		cls.BaseName = p.parseName()
	}

	if _, ok := p.expect(token.LeftScopeBracket, "'{'"); ok {
		prevClass := p.currentClass
		p.currentClass = cls
		for !p.atEnd() && p.cur().Kind != token.RightScopeBracket {
			start := p.cursor.Pos()
			p.parseTopItem()
			if p.cursor.Pos() == start {
				p.advance()
			}
		}
		p.currentClass = prevClass
		p.expect(token.RightScopeBracket, "'}'")
	} else {
		p.skipUntil(token.RightScopeBracket, token.Semicolon)
		p.accept(token.RightScopeBracket)
	}

	p.file.Classes = append(p.file.Classes, cls)
}

// parseType parses spec §4.3.1's "type = name { '[' ']' }" production,
// with a leading optional "const" consumed here rather than as a
// declaration modifier (spec §9's const/visibility-modifier ambiguity
// resolution, recorded in DESIGN.md).
func (p *Parser) parseType() *ast.Type {
	_, isConst := p.acceptWord("const")

	if tok, ok := p.acceptWord("void"); ok {
		t := ast.NewVoidType(tok)
		t.Const = isConst
		return t
	}

	name := p.parseName()
	t := &ast.Type{Name: name, Const: isConst}
	for p.cur().Kind == token.LeftSquareBracket && p.peek(1).Kind == token.RightSquareBracket {
		p.advance()
		p.advance()
		t.ArrayDims++
	}
	return t
}

// parseVarOrFunc parses the shared "type ident" prefix of spec
// §4.3.1's "modifier* type ident var_or_fn" rule, then dispatches on
// whether '(' follows the name (a function) or not (a variable).
// Modifiers are validated only once the declaration kind is known, so
// parseFunction/parseVariable each take their own allowed set.
func (p *Parser) parseVarOrFunc() {
	typ := p.parseType()

	nameTok := p.cur()
	if !nameTok.IsIdentifier() || nameTok.IsKeyword() {
		p.errorHere("expected declaration name")
		p.skipAfter(token.Semicolon)
		p.pendingMods = nil
		return
	}
	p.advance()

	if p.cur().Kind == token.LeftBracket {
		p.parseFunction(typ, nameTok)
		return
	}
	p.parseVariable(typ, nameTok)
}

func (p *Parser) newFunction(nameTok token.Token, ret *ast.Type, mods ast.Modifiers) *ast.Function {
	return &ast.Function{
		NameToken:      nameTok,
		ReturnType:     ret,
		Modifiers:      mods,
		Module:         p.file.ModuleDecl,
		Class:          p.currentClass,
		UseCountAtDecl: len(p.file.Uses),
	}
}

func (p *Parser) attachFunction(fn *ast.Function) {
	if p.currentClass != nil {
		p.currentClass.Funcs = append(p.currentClass.Funcs, fn)
	} else {
		p.file.Funcs = append(p.file.Funcs, fn)
	}
}

func (p *Parser) attachVariable(v *ast.Variable) {
	if p.currentClass != nil {
		p.currentClass.Vars = append(p.currentClass.Vars, v)
	} else {
		p.file.Vars = append(p.file.Vars, v)
	}
}

// parseFunction parses a plain function/method declaration's
// parameter list and body, after "type ident" has already been
// consumed by parseVarOrFunc.
func (p *Parser) parseFunction(ret *ast.Type, nameTok token.Token) {
	mods := p.takeModifiers(declModifiers, "a function")
	fn := p.newFunction(nameTok, ret, mods)
	p.parseParamList(fn)
	p.finishFunctionBody(fn)
	p.attachFunction(fn)
}

// parseConstructor parses "modifier* constructor param_list block"
// (spec §4.3.1). The constructed Function's name is the "constructor"
// keyword token itself, per spec §1's "keywords are not separate
// kinds" and §3's "constructors ... are ordinary Functions
// distinguished by Name".
func (p *Parser) parseConstructor() {
	tok, _ := p.acceptWord("constructor")
	mods := p.takeModifiers(constructorModifiers, "a constructor")
	fn := p.newFunction(tok, ast.NewVoidType(tok), mods)
	p.parseParamList(fn)
	if mods.Has(ast.ModExplicit) && len(fn.Params) != 1 {
		p.warnAt(tok, "redundant 'explicit' on a constructor with %d parameters", len(fn.Params))
	}
	p.finishFunctionBody(fn)
	p.attachFunction(fn)
}

// parseDestructor parses "modifier* destructor '(' ')' block" (spec
// §4.3.1), enforcing invariant 7: a destructor has zero parameters.
func (p *Parser) parseDestructor() {
	tok, _ := p.acceptWord("destructor")
	mods := p.takeModifiers(destructorModifiers, "a destructor")
	fn := p.newFunction(tok, ast.NewVoidType(tok), mods)

	p.expect(token.LeftBracket, "'('")
	if p.cur().Kind != token.RightBracket {
		p.errorHere("a destructor must have zero parameters")
		p.skipUntil(token.RightBracket)
	}
	p.expect(token.RightBracket, "')'")

	p.finishFunctionBody(fn)
	p.attachFunction(fn)
}

// parseParamList parses "'(' params ')'", assigning every unnamed
// parameter a synthetic "@0", "@1", ... key in declaration order (spec
// §3's Function.Params description; the per-function counter replaces
// the source's hidden global func_null_params, per spec §9).
func (p *Parser) parseParamList(fn *ast.Function) {
	p.expect(token.LeftBracket, "'('")
	if p.cur().Kind != token.RightBracket && !p.atEnd() {
		idx := 0
		for {
			ptype := p.parseType()
			var nameTok token.Token
			key := fmt.Sprintf("@%d", idx)
			if p.cur().IsIdentifier() && !p.cur().IsKeyword() {
				nameTok = p.advance()
				key = nameTok.Text
			}
			fn.Params = append(fn.Params, ast.Param{Key: key, NameToken: nameTok, Type: ptype})
			idx++
			if _, ok := p.accept(token.Comma); ok {
				continue
			}
			break
		}
	}
	p.expect(token.RightBracket, "')'")
}

// finishFunctionBody enforces invariant 6: extern/ext functions take
// ";" only, every other function requires a "{ ... }" body.
func (p *Parser) finishFunctionBody(fn *ast.Function) {
	isExtern := fn.Modifiers.Has(ast.ModExtern) || fn.Modifiers.Has(ast.ModExt)
	if isExtern {
		if p.cur().Kind == token.LeftScopeBracket {
			p.errorHere("an extern function must not have a body")
			fn.Body = p.parseBlockBody()
			return
		}
		if !p.expectSemicolon() {
			p.skipAfter(token.Semicolon)
		}
		return
	}
	if p.cur().Kind != token.LeftScopeBracket {
		p.errorHere("expected '{'")
		p.skipAfter(token.Semicolon)
		return
	}
	prevFn := p.currentFunction
	p.currentFunction = fn
	fn.Body = p.parseBlockBody()
	p.currentFunction = prevFn
}

// parseVariable parses the "'=' expression ';' | ';'" tail of a
// variable declaration, after "type ident" has already been consumed.
func (p *Parser) parseVariable(typ *ast.Type, nameTok token.Token) {
	mods := p.takeModifiers(variableModifiers, "a variable")
	v := &ast.Variable{
		NameToken:      nameTok,
		Type:           typ,
		Modifiers:      mods,
		Module:         p.file.ModuleDecl,
		Class:          p.currentClass,
		UseCountAtDecl: len(p.file.Uses),
	}
	if _, ok := p.accept(token.Assign); ok {
		v.Init = p.parseExpression()
	}
	if !p.expectSemicolon() {
		p.skipAfter(token.Semicolon)
	}
	p.attachVariable(v)
}
