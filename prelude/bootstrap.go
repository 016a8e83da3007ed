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

// Package prelude bootstraps a fresh theory.Theory with the vocabulary
// every ulkb proof script expects to find already loaded: the Bool and fun
// type constructors, the polymorphic equality constant, and the logical
// connectives and quantifiers, each installed as a defined constant whose
// meaning is fixed by the same equation used by original_source's
// ulkb/prelude/{bootstrap,formula}.py.
package prelude

import (
	"github.com/ulkb/ulkb/errs"
	"github.com/ulkb/ulkb/expr"
	"github.com/ulkb/ulkb/kernel"
	"github.com/ulkb/ulkb/theory"
)

var boolTy = expr.BoolType
var typeVarA = expr.TypeVariable{Name: "a"}

// apply folds expr.NewComb over f and args, left to right.
func apply(f expr.Term, args ...expr.Term) (expr.Term, error) {
	cur := f
	for _, a := range args {
		next, err := expr.NewComb(cur, a)
		if err != nil {
			return nil, err
		}
		cur = next
	}
	return cur, nil
}

// NewTheory returns a Theory with the prelude vocabulary already loaded and
// its prelude/user-extension boundary marked (theory.Theory.MarkPrelude),
// standing in for ulkb's internal `_load_prelude` step.
func NewTheory() (*theory.Theory, error) {
	th := theory.New()

	if _, err := th.NewTypeConstructorDecl(expr.BoolConstructor.ID, expr.BoolConstructor.Arity, expr.AssocNone); err != nil {
		return nil, errs.NewExtensionError("Bool", err.Error())
	}
	if _, err := th.NewTypeConstructorDecl(expr.FunConstructor.ID, expr.FunConstructor.Arity, expr.FunConstructor.Assoc); err != nil {
		return nil, errs.NewExtensionError("fun", err.Error())
	}
	eqTy := expr.NewFunctionType(typeVarA, expr.NewFunctionType(typeVarA, boolTy))
	if _, err := th.NewConstantDecl(kernel.EqualID, eqTy); err != nil {
		return nil, errs.NewExtensionError(kernel.EqualID, err.Error())
	}

	for _, step := range []func(*theory.Theory) error{
		bootstrapTruth,
		bootstrapAnd,
		bootstrapImplies,
		bootstrapForall,
		bootstrapFalsity,
		bootstrapNot,
		bootstrapOr,
		bootstrapExists,
		bootstrapExists1,
	} {
		if err := step(th); err != nil {
			return nil, err
		}
	}

	th.MarkPrelude()
	return th, nil
}

// bootstrapTruth installs T := (\p:Bool. p) = (\p:Bool. p) and the theorem
// "truth" : |- T, exercising kernel.Truth.
func bootstrapTruth(th *theory.Theory) error {
	p := expr.Var{Name: "p", Ty: boolTy}
	idp := expr.NewAbs(p, p)
	definiens, err := kernel.MkEqual(idp, idp)
	if err != nil {
		return errs.NewExtensionError("T", err.Error())
	}
	if _, err := th.NewDefinitionDecl("T", definiens); err != nil {
		return err
	}
	defEq, err := th.DefinitionEquation("T")
	if err != nil {
		return err
	}
	truthThm, err := kernel.Truth(defEq)
	if err != nil {
		return errs.NewExtensionError("truth", err.Error())
	}
	_, err = th.NewTheoremDecl("truth", truthThm)
	return err
}
