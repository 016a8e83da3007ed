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

package theory

import (
	"github.com/ulkb/ulkb/expr"
	"github.com/ulkb/ulkb/kernel"
)

// NewBaseType declares a fresh arity-0 type constructor and returns the
// BaseType built from it.
func (t *Theory) NewBaseType(id string) (expr.TypeApplication, error) {
	tc := expr.TypeConstructor{ID: id, Arity: 0}
	if _, err := t.Extend(NewTypeConstructor{TC: tc}); err != nil {
		return expr.TypeApplication{}, err
	}
	return expr.TypeApplication{Head: tc}, nil
}

// NewTypeConstructorDecl declares a type constructor of the given arity and
// associativity.
func (t *Theory) NewTypeConstructorDecl(id string, arity int, assoc expr.Assoc) (expr.TypeConstructor, error) {
	tc := expr.TypeConstructor{ID: id, Arity: arity, Assoc: assoc}
	if _, err := t.Extend(NewTypeConstructor{TC: tc}); err != nil {
		return expr.TypeConstructor{}, err
	}
	return tc, nil
}

// NewConstantDecl declares a constant of the given type.
func (t *Theory) NewConstantDecl(id string, ty expr.Type) (expr.Const, error) {
	c := expr.Const{Name: id, Ty: ty}
	if _, err := t.Extend(NewConstant{C: c}); err != nil {
		return expr.Const{}, err
	}
	return c, nil
}

// NewAxiomDecl postulates formula under name and returns Assume(formula),
// the sequent {formula} |- formula; it does not build a hypothesis-free
// sequent {} |- formula for the axiom.
func (t *Theory) NewAxiomDecl(name string, formula expr.Formula) (kernel.Sequent, error) {
	if _, err := t.Extend(NewAxiom{Name: name, Formula: formula}); err != nil {
		return kernel.Sequent{}, err
	}
	return kernel.Assume(formula)
}

// NewDefinitionDecl is the definition mechanism of spec §4.8: it wraps
// NewDefinition with the freshness/closedness/type-variable-containment
// checks (performed inside Extend's NewDefinition case) and returns the
// newly added constant on success.
func (t *Theory) NewDefinitionDecl(name string, definiens expr.Term) (expr.Const, error) {
	v := expr.Var{Name: name, Ty: definiens.Type()}
	if _, err := t.Extend(NewDefinition{Var: v, Definiens: definiens}); err != nil {
		return expr.Const{}, err
	}
	return expr.Const{Name: name, Ty: v.Ty}, nil
}

// DefinitionEquation returns the sequent {} |- name = definiens granted by
// the definitional extension installed under name (spec §4.8): the fact
// that licenses every subsequent theorem about a defined constant.
func (t *Theory) DefinitionEquation(name string) (kernel.Sequent, error) {
	d, err := t.LookupDefinition(name)
	if err != nil {
		return kernel.Sequent{}, err
	}
	c := expr.Const{Name: d.Var.Name, Ty: d.Var.Ty}
	return kernel.DefiningEquation(c, d.Definiens)
}

// NewTheoremDecl installs seq under name.
func (t *Theory) NewTheoremDecl(name string, seq kernel.Sequent) (kernel.Sequent, error) {
	if _, err := t.Extend(NewTheorem{Name: name, Seq: seq}); err != nil {
		return kernel.Sequent{}, err
	}
	return seq, nil
}

// NewPythonTypeAliasDecl registers a pure-notation alias between a native
// type name and a ulkb Type.
func (t *Theory) NewPythonTypeAliasDecl(name, native string, ulkbType expr.Type, spec string) (NewPythonTypeAlias, error) {
	e := NewPythonTypeAlias{Name: name, Native: native, ULKBType: ulkbType, Spec: spec}
	if _, err := t.Extend(e); err != nil {
		return NewPythonTypeAlias{}, err
	}
	return e, nil
}

// NewTypeSpecDecl registers a pure-notation type-spec marker.
func (t *Theory) NewTypeSpecDecl(name string) (NewTypeSpec, error) {
	e := NewTypeSpec{Name: name}
	if _, err := t.Extend(e); err != nil {
		return NewTypeSpec{}, err
	}
	return e, nil
}
