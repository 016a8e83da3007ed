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

package expr

import (
	"fmt"
	"strconv"
	"strings"
)

// Term is the sealed interface implemented by the five term kinds of spec
// §3.2: Var, BVar, Const, Comb, Abs. Only this package may add
// implementations (the unexported isTerm marker), the same sealed-interface
// idiom used for Type.
type Term interface {
	isTerm()
	// Type returns the term's type.
	Type() Type
	String() string
	// Equal reports α-equivalence: structural equality that ignores the
	// display hint carried by Abs binders (spec §3.2 invariant 2).
	Equal(Term) bool
}

// Var is a free (named) variable.
type Var struct {
	Name string
	Ty   Type
}

func (Var) isTerm()         {}
func (v Var) Type() Type    { return v.Ty }
func (v Var) String() string { return v.Name }
func (v Var) Equal(o Term) bool {
	w, ok := o.(Var)
	return ok && w.Name == v.Name && w.Ty.Equal(v.Ty)
}

// BVar is a De Bruijn bound-variable placeholder: Index counts the number
// of Abs binders enclosing it between the occurrence and its binder.
// BVar is only ever well-formed inside an Abs body; a BVar reachable from
// outside any enclosing Abs is a representation bug, not a user error.
type BVar struct {
	Index int
	Ty    Type
}

func (BVar) isTerm()         {}
func (b BVar) Type() Type    { return b.Ty }
func (b BVar) String() string { return fmt.Sprintf("#%d", b.Index) }
func (b BVar) Equal(o Term) bool {
	w, ok := o.(BVar)
	return ok && w.Index == b.Index && w.Ty.Equal(b.Ty)
}

// Const is a named constant, declared in some Theory.
type Const struct {
	Name string
	Ty   Type
}

func (Const) isTerm()         {}
func (c Const) Type() Type    { return c.Ty }
func (c Const) String() string { return c.Name }
func (c Const) Equal(o Term) bool {
	w, ok := o.(Const)
	return ok && w.Name == c.Name && w.Ty.Equal(c.Ty)
}

// Comb is the application of Fun to Arg (spec's Application).
type Comb struct {
	Fun Term
	Arg Term
}

func (Comb) isTerm() {}

// Type returns the codomain of Fun's function type, as fixed at
// construction time by NewComb's type match.
func (c Comb) Type() Type {
	_, cod, ok := IsFunctionType(c.Fun.Type())
	if !ok {
		return nil
	}
	return cod
}

func (c Comb) String() string {
	return fmt.Sprintf("(%s %s)", c.Fun.String(), c.Arg.String())
}

func (c Comb) Equal(o Term) bool {
	w, ok := o.(Comb)
	return ok && w.Fun.Equal(c.Fun) && w.Arg.Equal(c.Arg)
}

// Abs is the abstraction λx. body, stored locally-nameless: Hint is the
// display-only name of the binder (never consulted by Equal); VarTy is the
// binder's type; Body has every bound occurrence of the binder represented
// as a BVar whose index is the binder's nesting depth.
type Abs struct {
	Hint string
	VarTy Type
	Body Term
}

func (Abs) isTerm() {}

// Type returns VarTy -> Body.Type().
func (a Abs) Type() Type {
	return NewFunctionType(a.VarTy, a.Body.Type())
}

func (a Abs) String() string {
	return fmt.Sprintf("(\\%s:%s. %s)", a.Hint, a.VarTy.String(), a.Body.String())
}

// Equal implements α-equivalence: the binder Hint is never compared.
func (a Abs) Equal(o Term) bool {
	w, ok := o.(Abs)
	return ok && w.VarTy.Equal(a.VarTy) && w.Body.Equal(a.Body)
}

// NewComb builds an Application, enforcing spec §3.2's well-typedness rule
// via a one-way type match of arg's type against fun's domain, performing
// an implicit InstType on fun if that match binds any type variable.
func NewComb(fn, arg Term) (Term, error) {
	dom, _, ok := IsFunctionType(fn.Type())
	if !ok {
		return nil, fmt.Errorf("NewComb: %s is not of function type", fn)
	}
	theta, ok := MatchType(dom, arg.Type(), nil)
	if !ok {
		return nil, fmt.Errorf("NewComb: argument type %s does not match domain %s", arg.Type(), dom)
	}
	if len(theta) > 0 {
		fn = InstantiateTerm(fn, theta)
	}
	return Comb{Fun: fn, Arg: arg}, nil
}

// NewAbs builds the abstraction λbinder. body, closing over binder's free
// occurrences in body (spec's "open"/"close" pair, §4.2).
func NewAbs(binder Var, body Term) Abs {
	return Abs{Hint: binder.Name, VarTy: binder.Ty, Body: closeVar(body, binder.Name, 0)}
}

// closeVar replaces every free occurrence of the variable named `name` in t
// by a BVar whose index is `depth`, the number of Abs binders already
// passed while descending. This is spec §4.2's close(t, r) specialized to
// a named free variable, used by NewAbs to go from surface (named binder)
// form to the stored locally-nameless form.
func closeVar(t Term, name string, depth int) Term {
	switch v := t.(type) {
	case Var:
		if v.Name == name {
			return BVar{Index: depth, Ty: v.Ty}
		}
		return t
	case BVar, Const:
		return t
	case Comb:
		nf := closeVar(v.Fun, name, depth)
		na := closeVar(v.Arg, name, depth)
		if nf.Equal(v.Fun) && na.Equal(v.Arg) {
			return t
		}
		return Comb{Fun: nf, Arg: na}
	case Abs:
		nb := closeVar(v.Body, name, depth+1)
		if nb.Equal(v.Body) {
			return t
		}
		return Abs{Hint: v.Hint, VarTy: v.VarTy, Body: nb}
	default:
		return t
	}
}

// openVar replaces the BVar at the given depth with repl, the dual of
// closeVar. This is spec §4.2's open(t, x) specialized to substituting a
// concrete replacement term (usually a fresh Var) for the binder currently
// at depth 0.
func openVar(t Term, depth int, repl Term) Term {
	switch v := t.(type) {
	case BVar:
		if v.Index == depth {
			return repl
		}
		return t
	case Var, Const:
		return t
	case Comb:
		nf := openVar(v.Fun, depth, repl)
		na := openVar(v.Arg, depth, repl)
		if nf.Equal(v.Fun) && na.Equal(v.Arg) {
			return t
		}
		return Comb{Fun: nf, Arg: na}
	case Abs:
		nb := openVar(v.Body, depth+1, repl)
		if nb.Equal(v.Body) {
			return t
		}
		return Abs{Hint: v.Hint, VarTy: v.VarTy, Body: nb}
	default:
		return t
	}
}

// Open unfolds a into (x, body) where x is a fresh variable — a variant of
// a's display hint not free in a's body — and body is a.Body with every
// bound occurrence of the binder replaced by x. This is spec §4.2's
// open(term, variable) used "to unfold a binder".
func (a Abs) Open() (Var, Term) {
	fv := FreeVars(a.Body)
	x := GetVariantNotIn(Var{Name: a.Hint, Ty: a.VarTy}, fv)
	return x, openVar(a.Body, 0, x)
}

// OpenWith unfolds a using the caller-supplied replacement term r, without
// requiring r to be a fresh variable. Used by RuleBeta (spec §4.2 β-redex).
func (a Abs) OpenWith(r Term) Term {
	return openVar(a.Body, 0, r)
}

// IsBetaRedex reports whether t is an Application whose function is an
// Abstraction (spec §4.2).
func IsBetaRedex(t Term) (Abs, Term, bool) {
	c, ok := t.(Comb)
	if !ok {
		return Abs{}, nil, false
	}
	a, ok := c.Fun.(Abs)
	if !ok {
		return Abs{}, nil, false
	}
	return a, c.Arg, true
}

// TermSubst maps free-variable names to their replacement term (spec
// §4.2's θ: Variable → Term). Both key and value must share a type at each
// entry; Substitute does not itself re-check this (NewComb/rule
// constructors do, at the boundaries that matter).
type TermSubst map[string]Term

// Substitute performs spec §4.2's capture-avoiding substitution. Because
// terms are locally-nameless, a bound occurrence is never represented as a
// Var, so no traditional variable-capture can arise while substituting
// under an Abs: the descent simply continues into Body. Returns t itself
// (same value) when theta induces no change, preserving the "identity
// preservation" contract of spec §9/property 3.
func Substitute(t Term, theta TermSubst) Term {
	if len(theta) == 0 {
		return t
	}
	switch v := t.(type) {
	case Var:
		if r, ok := theta[v.Name]; ok {
			return r
		}
		return t
	case BVar, Const:
		return t
	case Comb:
		nf := Substitute(v.Fun, theta)
		na := Substitute(v.Arg, theta)
		if nf.Equal(v.Fun) && na.Equal(v.Arg) {
			return t
		}
		return Comb{Fun: nf, Arg: na}
	case Abs:
		nb := Substitute(v.Body, theta)
		if nb.Equal(v.Body) {
			return t
		}
		return Abs{Hint: v.Hint, VarTy: v.VarTy, Body: nb}
	default:
		return t
	}
}

// InstantiateTerm walks t replacing every type annotation per theta (spec
// §4.2's instantiate(θ: TypeVariable → Type)). Returns t unchanged if theta
// leaves every annotation unchanged.
func InstantiateTerm(t Term, theta TypeSubst) Term {
	if len(theta) == 0 {
		return t
	}
	switch v := t.(type) {
	case Var:
		nt := InstantiateType(v.Ty, theta)
		if nt.Equal(v.Ty) {
			return t
		}
		return Var{Name: v.Name, Ty: nt}
	case BVar:
		nt := InstantiateType(v.Ty, theta)
		if nt.Equal(v.Ty) {
			return t
		}
		return BVar{Index: v.Index, Ty: nt}
	case Const:
		nt := InstantiateType(v.Ty, theta)
		if nt.Equal(v.Ty) {
			return t
		}
		return Const{Name: v.Name, Ty: nt}
	case Comb:
		nf := InstantiateTerm(v.Fun, theta)
		na := InstantiateTerm(v.Arg, theta)
		if nf.Equal(v.Fun) && na.Equal(v.Arg) {
			return t
		}
		return Comb{Fun: nf, Arg: na}
	case Abs:
		nvt := InstantiateType(v.VarTy, theta)
		nb := InstantiateTerm(v.Body, theta)
		if nvt.Equal(v.VarTy) && nb.Equal(v.Body) {
			return t
		}
		return Abs{Hint: v.Hint, VarTy: nvt, Body: nb}
	default:
		return t
	}
}

// FreeVars returns the set of free variables of t, in first-occurrence
// order.
func FreeVars(t Term) []Var {
	var out []Var
	seen := map[string]bool{}
	var walk func(Term)
	walk = func(t Term) {
		switch v := t.(type) {
		case Var:
			if !seen[v.Name] {
				seen[v.Name] = true
				out = append(out, v)
			}
		case Comb:
			walk(v.Fun)
			walk(v.Arg)
		case Abs:
			walk(v.Body)
		}
	}
	walk(t)
	return out
}

// Constants returns the set of constants occurring in t, in
// first-occurrence order.
func Constants(t Term) []Const {
	var out []Const
	seen := map[string]bool{}
	var walk func(Term)
	walk = func(t Term) {
		switch v := t.(type) {
		case Const:
			key := v.Name + ":" + v.Ty.String()
			if !seen[key] {
				seen[key] = true
				out = append(out, v)
			}
		case Comb:
			walk(v.Fun)
			walk(v.Arg)
		case Abs:
			walk(v.Body)
		}
	}
	walk(t)
	return out
}

// TermTypeVariables returns the set of type variables occurring anywhere in
// t's type annotations, in first-occurrence order.
func TermTypeVariables(t Term) []TypeVariable {
	var out []TypeVariable
	seen := map[string]bool{}
	add := func(ty Type) {
		for _, v := range TypeVariables(ty) {
			if !seen[v.Name] {
				seen[v.Name] = true
				out = append(out, v)
			}
		}
	}
	var walk func(Term)
	walk = func(t Term) {
		switch v := t.(type) {
		case Var:
			add(v.Ty)
		case BVar:
			add(v.Ty)
		case Const:
			add(v.Ty)
		case Comb:
			walk(v.Fun)
			walk(v.Arg)
		case Abs:
			add(v.VarTy)
			walk(v.Body)
		}
	}
	walk(t)
	return out
}

// TermTypeConstructors returns the set of type constructors occurring
// anywhere in t's type annotations, in first-occurrence order.
func TermTypeConstructors(t Term) []TypeConstructor {
	var out []TypeConstructor
	seen := map[string]bool{}
	add := func(ty Type) {
		for _, c := range TypeConstructors(ty) {
			key := c.String()
			if !seen[key] {
				seen[key] = true
				out = append(out, c)
			}
		}
	}
	var walk func(Term)
	walk = func(t Term) {
		switch v := t.(type) {
		case Var:
			add(v.Ty)
		case BVar:
			add(v.Ty)
		case Const:
			add(v.Ty)
		case Comb:
			walk(v.Fun)
			walk(v.Arg)
		case Abs:
			add(v.VarTy)
			walk(v.Body)
		}
	}
	walk(t)
	return out
}

// IsFree reports whether v occurs free in t.
func IsFree(v Var, t Term) bool {
	for _, w := range FreeVars(t) {
		if w.Name == v.Name {
			return true
		}
	}
	return false
}

// IsFreeInAny reports whether v occurs free in any of ts.
func IsFreeInAny(v Var, ts []Term) bool {
	for _, t := range ts {
		if IsFree(v, t) {
			return true
		}
	}
	return false
}

// GetVariant implements spec §4.2's get_variant(x, reject): it yields x if
// reject(x) is false, otherwise successively renames x to x0, x1, ... until
// reject returns false. Variant naming splits x.Name into (prefix, numeric
// suffix): an empty suffix produces "<prefix>0"; a present suffix is
// incremented.
func GetVariant(x Var, reject func(Var) bool) Var {
	if !reject(x) {
		return x
	}
	prefix, n := splitNumericSuffix(x.Name)
	for {
		candidate := Var{Name: prefix + strconv.Itoa(n), Ty: x.Ty}
		if !reject(candidate) {
			return candidate
		}
		n++
	}
}

// GetVariantNotIn specializes GetVariant to reject any variant whose name
// collides with a free variable in vs.
func GetVariantNotIn(x Var, vs []Var) Var {
	return GetVariant(x, func(c Var) bool {
		for _, v := range vs {
			if v.Name == c.Name {
				return true
			}
		}
		return false
	})
}

// GetVariantNotFreeIn specializes GetVariant to reject any variant that
// occurs free in any of ts.
func GetVariantNotFreeIn(x Var, ts ...Term) Var {
	return GetVariant(x, func(c Var) bool { return IsFreeInAny(c, ts) })
}

// splitNumericSuffix splits name into a non-numeric prefix and the next
// number to try: one more than its trailing base-10 numeric suffix, or 0
// if none is present.
func splitNumericSuffix(name string) (string, int) {
	i := len(name)
	for i > 0 && name[i-1] >= '0' && name[i-1] <= '9' {
		i--
	}
	if i == len(name) {
		return name, 0
	}
	n, err := strconv.Atoi(name[i:])
	if err != nil {
		return name, 0
	}
	return name[:i], n + 1
}

// Formula is a term of type Bool (spec GLOSSARY).
type Formula = Term

// IsFormula reports whether t has type Bool.
func IsFormula(t Term) bool {
	return t.Type().Equal(BoolType)
}

// IsClosed reports whether t has no free variables.
func IsClosed(t Term) bool {
	return len(FreeVars(t)) == 0
}

// CanonicalKey renders t into a string that two terms share iff they are
// α-equal: unlike String, it never mentions an Abs's display Hint. It is
// used wherever a term needs to live as a map key under α-equivalence —
// the hypothesis set of a Sequent (spec §3.3) — and wherever a term
// feeds a content digest, as in Theory.Digest.
func CanonicalKey(t Term) string {
	switch v := t.(type) {
	case Var:
		return "V:" + v.Name + ":" + v.Ty.String()
	case BVar:
		return fmt.Sprintf("B:%d:%s", v.Index, v.Ty.String())
	case Const:
		return "C:" + v.Name + ":" + v.Ty.String()
	case Comb:
		return "(" + CanonicalKey(v.Fun) + " " + CanonicalKey(v.Arg) + ")"
	case Abs:
		return "(L:" + v.VarTy.String() + "." + CanonicalKey(v.Body) + ")"
	default:
		return ""
	}
}

func joinTerms(ts []Term, sep string) string {
	parts := make([]string, len(ts))
	for i, t := range ts {
		parts[i] = t.String()
	}
	return strings.Join(parts, sep)
}
