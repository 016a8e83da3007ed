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

// Package expr implements the locally-nameless expression language of types
// and terms: type variables and type applications, free/bound variables,
// constants, applications, and abstractions, together with the
// capture-avoiding substitution, instantiation, and α-equivalence machinery
// that the kernel's primitive rules are built on.
package expr

import (
	"fmt"
	"strings"
)

// Assoc records the declared associativity of a binary type constructor;
// it affects only how a variadic surface syntax is folded into nested
// binary TypeApplications, never the stored (always binary) shape.
type Assoc int

const (
	// AssocNone means the constructor has no declared associativity.
	AssocNone Assoc = iota
	// AssocLeft folds a, b, c as ((a b) c).
	AssocLeft
	// AssocRight folds a, b, c as (a (b c)).
	AssocRight
)

// TypeConstructor is the head of a TypeApplication. Its identity is the
// pair (ID, Arity): two constructors with the same ID but different arity
// are distinct.
type TypeConstructor struct {
	ID     string
	Arity  int
	Assoc  Assoc
}

// Equal reports whether two type constructors share the same identity.
func (tc TypeConstructor) Equal(other TypeConstructor) bool {
	return tc.ID == other.ID && tc.Arity == other.Arity
}

func (tc TypeConstructor) String() string {
	return fmt.Sprintf("%s/%d", tc.ID, tc.Arity)
}

// Type is the sealed interface implemented by TypeVariable and
// TypeApplication. The unexported marker method mirrors the
// sealed-interface pattern used throughout this codebase for every other
// tagged-variant family (Term, Extension, Rule outcome): only this package
// can add new implementations.
type Type interface {
	isType()
	// String renders the type using default (ASCII) settings.
	String() string
	// Equal reports structural equality.
	Equal(Type) bool
}

// TypeVariable is a type-level variable, identified by name alone.
type TypeVariable struct {
	Name string
}

func (TypeVariable) isType() {}

// String implements Type.
func (v TypeVariable) String() string { return "'" + v.Name }

// Equal implements Type.
func (v TypeVariable) Equal(other Type) bool {
	o, ok := other.(TypeVariable)
	return ok && o.Name == v.Name
}

// TypeApplication applies a TypeConstructor to exactly Head.Arity argument
// types. A TypeApplication whose head has arity 0 is a BaseType; one whose
// head is the distinguished 2-ary right-associative `fun` constructor is a
// FunctionType.
type TypeApplication struct {
	Head TypeConstructor
	Args []Type
}

func (TypeApplication) isType() {}

// String implements Type.
func (a TypeApplication) String() string {
	if len(a.Args) == 0 {
		return a.Head.ID
	}
	if a.Head.ID == FunConstructor.ID && a.Head.Arity == 2 {
		return fmt.Sprintf("(%s -> %s)", a.Args[0].String(), a.Args[1].String())
	}
	parts := make([]string, len(a.Args))
	for i, t := range a.Args {
		parts[i] = t.String()
	}
	return fmt.Sprintf("%s(%s)", a.Head.ID, strings.Join(parts, ", "))
}

// Equal implements Type.
func (a TypeApplication) Equal(other Type) bool {
	o, ok := other.(TypeApplication)
	if !ok || !a.Head.Equal(o.Head) || len(a.Args) != len(o.Args) {
		return false
	}
	for i := range a.Args {
		if !a.Args[i].Equal(o.Args[i]) {
			return false
		}
	}
	return true
}

// NewTypeApplication builds a TypeApplication, enforcing the arity
// invariant of spec §3.1.
func NewTypeApplication(head TypeConstructor, args ...Type) (TypeApplication, error) {
	if len(args) != head.Arity {
		return TypeApplication{}, fmt.Errorf("type constructor %s expects %d args, got %d", head.ID, head.Arity, len(args))
	}
	return TypeApplication{Head: head, Args: append([]Type(nil), args...)}, nil
}

// NewBaseType builds a TypeApplication with a fresh arity-0 head.
func NewBaseType(id string) TypeApplication {
	return TypeApplication{Head: TypeConstructor{ID: id, Arity: 0}}
}

// FunConstructor is the distinguished 2-ary right-associative function-type
// constructor `fun`, spec §3.1.
var FunConstructor = TypeConstructor{ID: "fun", Arity: 2, Assoc: AssocRight}

// NewFunctionType builds dom -> cod.
func NewFunctionType(dom, cod Type) TypeApplication {
	return TypeApplication{Head: FunConstructor, Args: []Type{dom, cod}}
}

// IsFunctionType reports whether t is a FunctionType and returns its domain
// and codomain.
func IsFunctionType(t Type) (dom, cod Type, ok bool) {
	a, isApp := t.(TypeApplication)
	if !isApp || !a.Head.Equal(FunConstructor) {
		return nil, nil, false
	}
	return a.Args[0], a.Args[1], true
}

// BoolConstructor is the distinguished 0-ary Boolean type constructor.
var BoolConstructor = TypeConstructor{ID: "Bool", Arity: 0}

// BoolType is the type of formulas.
var BoolType = TypeApplication{Head: BoolConstructor}

// TypeVariables returns the set of type variables occurring in t, in
// first-occurrence order.
func TypeVariables(t Type) []TypeVariable {
	var out []TypeVariable
	seen := map[string]bool{}
	var walk func(Type)
	walk = func(t Type) {
		switch v := t.(type) {
		case TypeVariable:
			if !seen[v.Name] {
				seen[v.Name] = true
				out = append(out, v)
			}
		case TypeApplication:
			for _, a := range v.Args {
				walk(a)
			}
		}
	}
	walk(t)
	return out
}

// TypeConstructors returns the set of type constructors occurring in t (by
// ID/Arity identity), in first-occurrence order.
func TypeConstructors(t Type) []TypeConstructor {
	var out []TypeConstructor
	seen := map[string]bool{}
	var walk func(Type)
	walk = func(t Type) {
		if a, ok := t.(TypeApplication); ok {
			key := a.Head.String()
			if !seen[key] {
				seen[key] = true
				out = append(out, a.Head)
			}
			for _, arg := range a.Args {
				walk(arg)
			}
		}
	}
	walk(t)
	return out
}

// TypeSubst maps type variable names to replacement types; it is the θ of
// spec §3.5/§4.1.
type TypeSubst map[string]Type

// InstantiateType performs θ's structural replacement of free type
// variables in t, per spec §4.1. It returns t unchanged (same value) if no
// substitution applies, preserving the "returns self if unchanged"
// contract of spec §9.
func InstantiateType(t Type, theta TypeSubst) Type {
	if len(theta) == 0 {
		return t
	}
	switch v := t.(type) {
	case TypeVariable:
		if r, ok := theta[v.Name]; ok {
			return r
		}
		return t
	case TypeApplication:
		changed := false
		args := make([]Type, len(v.Args))
		for i, a := range v.Args {
			na := InstantiateType(a, theta)
			args[i] = na
			if !na.Equal(a) {
				changed = true
			}
		}
		if !changed {
			return t
		}
		return TypeApplication{Head: v.Head, Args: args}
	default:
		return t
	}
}

// MatchType implements the one-way type matcher of spec §3.5: it extends
// theta so that InstantiateType(pattern, theta) equals target, or reports
// failure. theta may be nil, in which case a fresh map is allocated.
func MatchType(pattern, target Type, theta TypeSubst) (TypeSubst, bool) {
	if theta == nil {
		theta = TypeSubst{}
	}
	switch p := pattern.(type) {
	case TypeVariable:
		if bound, ok := theta[p.Name]; ok {
			return theta, bound.Equal(target)
		}
		theta[p.Name] = target
		return theta, true
	case TypeApplication:
		ta, ok := target.(TypeApplication)
		if !ok || !p.Head.Equal(ta.Head) {
			return theta, false
		}
		for i := range p.Args {
			var ok2 bool
			theta, ok2 = MatchType(p.Args[i], ta.Args[i], theta)
			if !ok2 {
				return theta, false
			}
		}
		return theta, true
	default:
		return theta, false
	}
}

// MatchesType reports whether pattern matches target, discarding the
// resulting substitution.
func MatchesType(pattern, target Type) bool {
	_, ok := MatchType(pattern, target, nil)
	return ok
}
