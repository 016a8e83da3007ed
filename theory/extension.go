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

// Package theory implements the ordered, append-only log of Extensions
// (spec §3.4/§4.7): the Theory object itself, its per-kind lookup indices,
// Extend/Reset, and the definition mechanism.
package theory

import (
	"github.com/ulkb/ulkb/expr"
	"github.com/ulkb/ulkb/kernel"
)

// Extension is the sealed interface implemented by the seven tagged
// variants of spec §3.4. The unexported marker method follows the same
// sealed-interface idiom as expr.Type and expr.Term: only this package may
// add new kinds, and callers get exhaustive type switches instead of
// dynamic Python-style metaclassing (spec §9).
type Extension interface {
	isExtension()
	// ExtID returns the extension's lookup id.
	ExtID() string
	// Equal reports structural equality, used by Extend's duplicate-
	// re-insertion check (spec §9, Open Question 1).
	Equal(Extension) bool
	String() string
}

// NewTypeConstructor declares a type constructor.
type NewTypeConstructor struct {
	TC expr.TypeConstructor
}

func (NewTypeConstructor) isExtension()    {}
func (e NewTypeConstructor) ExtID() string { return e.TC.ID }
func (e NewTypeConstructor) Equal(o Extension) bool {
	w, ok := o.(NewTypeConstructor)
	return ok && w.TC.Equal(e.TC) && w.TC.Assoc == e.TC.Assoc
}
func (e NewTypeConstructor) String() string { return "type " + e.TC.String() }

// NewConstant declares a constant.
type NewConstant struct {
	C expr.Const
}

func (NewConstant) isExtension()    {}
func (e NewConstant) ExtID() string { return e.C.Name }
func (e NewConstant) Equal(o Extension) bool {
	w, ok := o.(NewConstant)
	return ok && w.C.Equal(e.C)
}
func (e NewConstant) String() string { return "const " + e.C.Name + " : " + e.C.Ty.String() }

// NewAxiom postulates formula Formula under the name Name, which also
// becomes a nullary Bool-typed constant (spec §4.7 step 3).
type NewAxiom struct {
	Name    string
	Formula expr.Formula
}

func (NewAxiom) isExtension()    {}
func (e NewAxiom) ExtID() string { return e.Name }
func (e NewAxiom) Equal(o Extension) bool {
	w, ok := o.(NewAxiom)
	return ok && w.Name == e.Name && w.Formula.Equal(e.Formula)
}
func (e NewAxiom) String() string { return "axiom " + e.Name + " : " + e.Formula.String() }

// NewDefinition introduces a new constant whose meaning is fixed by the
// equation Var = Definiens (spec §4.8). Var's name is the new constant's
// name.
type NewDefinition struct {
	Var       expr.Var
	Definiens expr.Term
}

func (NewDefinition) isExtension()    {}
func (e NewDefinition) ExtID() string { return e.Var.Name }
func (e NewDefinition) Equal(o Extension) bool {
	w, ok := o.(NewDefinition)
	return ok && w.Var.Equal(e.Var) && w.Definiens.Equal(e.Definiens)
}
func (e NewDefinition) String() string {
	return "definition " + e.Var.Name + " := " + e.Definiens.String()
}

// NewTheorem installs a proved Sequent under the name Name (also a nullary
// Bool-typed constant).
type NewTheorem struct {
	Name string
	Seq  kernel.Sequent
}

func (NewTheorem) isExtension()    {}
func (e NewTheorem) ExtID() string { return e.Name }
func (e NewTheorem) Equal(o Extension) bool {
	w, ok := o.(NewTheorem)
	return ok && w.Name == e.Name && w.Seq.Equal(e.Seq)
}
func (e NewTheorem) String() string { return "theorem " + e.Name + " : " + e.Seq.String() }

// NewPythonTypeAlias registers a pure-notation alias between a native type
// name and a ulkb Type; it carries no logical content.
type NewPythonTypeAlias struct {
	Name     string
	Native   string
	ULKBType expr.Type
	Spec     string
}

func (NewPythonTypeAlias) isExtension()    {}
func (e NewPythonTypeAlias) ExtID() string { return e.Name }
func (e NewPythonTypeAlias) Equal(o Extension) bool {
	w, ok := o.(NewPythonTypeAlias)
	return ok && w.Name == e.Name && w.Native == e.Native && w.ULKBType.Equal(e.ULKBType) && w.Spec == e.Spec
}
func (e NewPythonTypeAlias) String() string {
	return "python-type-alias " + e.Name + " = " + e.Native
}

// NewTypeSpec is a pure-notation marker naming a type specification.
type NewTypeSpec struct {
	Name string
}

func (NewTypeSpec) isExtension()    {}
func (e NewTypeSpec) ExtID() string { return e.Name }
func (e NewTypeSpec) Equal(o Extension) bool {
	w, ok := o.(NewTypeSpec)
	return ok && w.Name == e.Name
}
func (e NewTypeSpec) String() string { return "type-spec " + e.Name }
