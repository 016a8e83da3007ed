// Copyright 2024 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package theoryscript

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ulkb/ulkb/errs"
	"github.com/ulkb/ulkb/expr"
	"github.com/ulkb/ulkb/theory"
)

// parser holds per-directive lexer state plus the set of lambda-bound
// variables currently in scope, so a bare identifier inside a term can be
// resolved as a local Var before falling back to a theory Const lookup.
type parser struct {
	toks  []token
	pos   int
	line  int
	th    *theory.Theory
	scope []expr.Var
}

func (p *parser) peek() token  { return p.toks[p.pos] }
func (p *parser) advance() token {
	t := p.toks[p.pos]
	if p.pos < len(p.toks)-1 {
		p.pos++
	}
	return t
}

func (p *parser) errf(format string, args ...any) error {
	return errs.NewParserError(p.line, fmt.Sprintf(format, args...))
}

func (p *parser) expectPunct(s string) error {
	t := p.advance()
	if t.kind != tokPunct || t.text != s {
		return p.errf("expected %q, got %q", s, t.text)
	}
	return nil
}

func (p *parser) expectIdent() (string, error) {
	t := p.advance()
	if t.kind != tokIdent {
		return "", p.errf("expected identifier, got %q", t.text)
	}
	return t.text, nil
}

// parseType := atom ('->' type)?  (right-associative, matching expr's fun)
func (p *parser) parseType() (expr.Type, error) {
	left, err := p.parseTypeAtom()
	if err != nil {
		return nil, err
	}
	if p.peek().kind == tokPunct && p.peek().text == "->" {
		p.advance()
		right, err := p.parseType()
		if err != nil {
			return nil, err
		}
		return expr.NewFunctionType(left, right), nil
	}
	return left, nil
}

// parseTypeAtom := "'" IDENT | IDENT | '(' type ')'
func (p *parser) parseTypeAtom() (expr.Type, error) {
	t := p.peek()
	if t.kind == tokPunct && t.text == "'" {
		p.advance()
		name, err := p.expectIdent()
		if err != nil {
			return nil, err
		}
		return expr.TypeVariable{Name: name}, nil
	}
	if t.kind == tokPunct && t.text == "(" {
		p.advance()
		ty, err := p.parseType()
		if err != nil {
			return nil, err
		}
		if err := p.expectPunct(")"); err != nil {
			return nil, err
		}
		return ty, nil
	}
	if t.kind != tokIdent {
		return nil, p.errf("expected a type, got %q", t.text)
	}
	p.advance()
	tc, err := p.th.LookupTypeConstructor(t.text)
	if err != nil {
		return nil, p.errf("undeclared type constructor %q", t.text)
	}
	if tc.Arity != 0 {
		return nil, p.errf("type constructor %q expects %d argument(s)", t.text, tc.Arity)
	}
	return expr.TypeApplication{Head: tc}, nil
}

// lookupVar resolves name against the lambda-bound scope, innermost first.
func (p *parser) lookupVar(name string) (expr.Var, bool) {
	for i := len(p.scope) - 1; i >= 0; i-- {
		if p.scope[i].Name == name {
			return p.scope[i], true
		}
	}
	return expr.Var{}, false
}

// parseTerm := lambda | equality
func (p *parser) parseTerm() (expr.Term, error) {
	if p.peek().kind == tokPunct && p.peek().text == "\\" {
		return p.parseLambda()
	}
	return p.parseEquality()
}

func (p *parser) parseLambda() (expr.Term, error) {
	if err := p.expectPunct("\\"); err != nil {
		return nil, err
	}
	name, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	if err := p.expectPunct(":"); err != nil {
		return nil, err
	}
	ty, err := p.parseType()
	if err != nil {
		return nil, err
	}
	if err := p.expectPunct("."); err != nil {
		return nil, err
	}
	binder := expr.Var{Name: name, Ty: ty}
	p.scope = append(p.scope, binder)
	body, err := p.parseTerm()
	p.scope = p.scope[:len(p.scope)-1]
	if err != nil {
		return nil, err
	}
	return expr.NewAbs(binder, body), nil
}

// parseEquality := application ('=' application)?
func (p *parser) parseEquality() (expr.Term, error) {
	left, err := p.parseApplication()
	if err != nil {
		return nil, err
	}
	if p.peek().kind == tokPunct && p.peek().text == "=" {
		p.advance()
		right, err := p.parseApplication()
		if err != nil {
			return nil, err
		}
		if !left.Type().Equal(right.Type()) {
			return nil, p.errf("equated terms have differing types %s, %s", left.Type(), right.Type())
		}
		eqTy := expr.NewFunctionType(left.Type(), expr.NewFunctionType(left.Type(), expr.BoolType))
		eqConst := expr.Const{Name: "=", Ty: eqTy}
		lhs, err := expr.NewComb(eqConst, left)
		if err != nil {
			return nil, p.errf("%s", err)
		}
		return expr.NewComb(lhs, right)
	}
	return left, nil
}

// parseApplication := atom+, left-associative juxtaposition.
func (p *parser) parseApplication() (expr.Term, error) {
	fn, err := p.parseTermAtom()
	if err != nil {
		return nil, err
	}
	for p.startsTermAtom() {
		arg, err := p.parseTermAtom()
		if err != nil {
			return nil, err
		}
		fn, err = expr.NewComb(fn, arg)
		if err != nil {
			return nil, p.errf("%s", err)
		}
	}
	return fn, nil
}

func (p *parser) startsTermAtom() bool {
	t := p.peek()
	if t.kind == tokIdent {
		return true
	}
	return t.kind == tokPunct && t.text == "("
}

// parseTermAtom := IDENT | '(' term ')'
func (p *parser) parseTermAtom() (expr.Term, error) {
	t := p.peek()
	if t.kind == tokPunct && t.text == "(" {
		p.advance()
		term, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		if err := p.expectPunct(")"); err != nil {
			return nil, err
		}
		return term, nil
	}
	if t.kind != tokIdent {
		return nil, p.errf("expected a term, got %q", t.text)
	}
	p.advance()
	if v, ok := p.lookupVar(t.text); ok {
		return v, nil
	}
	c, err := p.th.LookupConstant(t.text)
	if err != nil {
		return nil, p.errf("undeclared identifier %q", t.text)
	}
	return c, nil
}

// Load reads a theory script from r, applying each directive to th in
// order, and returns the first error encountered (with its line number).
func Load(th *theory.Theory, r io.Reader) error {
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		toks := lex(line)
		if len(toks) == 1 { // just EOF: comment-only after stripping
			continue
		}
		p := &parser{toks: toks, th: th, line: lineNo}
		if err := p.directive(); err != nil {
			if _, ok := err.(*errs.ParserError); ok {
				return err
			}
			return fmt.Errorf("line %d: %w", lineNo, err)
		}
	}
	return sc.Err()
}

// directive dispatches on the line's first identifier.
func (p *parser) directive() error {
	kw, err := p.expectIdent()
	if err != nil {
		return err
	}
	switch kw {
	case "type":
		return p.directiveType()
	case "const":
		return p.directiveConst()
	case "axiom":
		return p.directiveAxiom()
	case "definition":
		return p.directiveDefinition()
	default:
		return p.errf("unknown directive %q", kw)
	}
}

// type <id> <arity>
func (p *parser) directiveType() error {
	id, err := p.expectIdent()
	if err != nil {
		return err
	}
	arityTok, err := p.expectIdent()
	if err != nil {
		return err
	}
	arity, err := strconv.Atoi(arityTok)
	if err != nil {
		return p.errf("arity %q is not a number", arityTok)
	}
	_, err = p.th.NewTypeConstructorDecl(id, arity, expr.AssocNone)
	return err
}

// const <id> : <type>
func (p *parser) directiveConst() error {
	id, err := p.expectIdent()
	if err != nil {
		return err
	}
	if err := p.expectPunct(":"); err != nil {
		return err
	}
	ty, err := p.parseType()
	if err != nil {
		return err
	}
	_, err = p.th.NewConstantDecl(id, ty)
	return err
}

// axiom <name> : <formula>
func (p *parser) directiveAxiom() error {
	name, err := p.expectIdent()
	if err != nil {
		return err
	}
	if err := p.expectPunct(":"); err != nil {
		return err
	}
	formula, err := p.parseTerm()
	if err != nil {
		return err
	}
	_, err = p.th.NewAxiomDecl(name, formula)
	return err
}

// definition <name> : <type> := <term>
func (p *parser) directiveDefinition() error {
	name, err := p.expectIdent()
	if err != nil {
		return err
	}
	if err := p.expectPunct(":"); err != nil {
		return err
	}
	declared, err := p.parseType()
	if err != nil {
		return err
	}
	if err := p.expectPunct(":="); err != nil {
		return err
	}
	definiens, err := p.parseTerm()
	if err != nil {
		return err
	}
	if !declared.Equal(definiens.Type()) {
		return p.errf("declared type %s does not match definiens type %s", declared, definiens.Type())
	}
	_, err = p.th.NewDefinitionDecl(name, definiens)
	return err
}
