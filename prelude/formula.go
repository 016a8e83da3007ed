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

// The connectives and quantifiers, each grounded on the defining equation
// of original_source/ulkb/prelude/formula.py. "Iff" is not installed as a
// separate constant: per kernel.IsEqual, a <-> b is literally a = b at
// Bool, so where a defining equation below needs Iff (as Implies does) it
// uses kernel.MkEqual directly.
package prelude

import (
	"github.com/ulkb/ulkb/errs"
	"github.com/ulkb/ulkb/expr"
	"github.com/ulkb/ulkb/kernel"
	"github.com/ulkb/ulkb/theory"
)

// bootstrapAnd installs and := \p q. (\f. f p q) = (\f. f T T).
func bootstrapAnd(th *theory.Theory) error {
	p := expr.Var{Name: "p", Ty: boolTy}
	q := expr.Var{Name: "q", Ty: boolTy}
	fTy := expr.NewFunctionType(boolTy, expr.NewFunctionType(boolTy, boolTy))
	f := expr.Var{Name: "f", Ty: fTy}
	truthConst := expr.Const{Name: "T", Ty: boolTy}

	fpq, err := apply(f, p, q)
	if err != nil {
		return errs.NewExtensionError("and", err.Error())
	}
	fTT, err := apply(f, truthConst, truthConst)
	if err != nil {
		return errs.NewExtensionError("and", err.Error())
	}
	eqInner, err := kernel.MkEqual(expr.NewAbs(f, fpq), expr.NewAbs(f, fTT))
	if err != nil {
		return errs.NewExtensionError("and", err.Error())
	}
	definiens := expr.NewAbs(p, expr.NewAbs(q, eqInner))
	_, err = th.NewDefinitionDecl("and", definiens)
	return err
}

// bootstrapImplies installs implies := \p q. and(p, q) = p (Iff specialized
// via kernel.MkEqual, per the comment atop this file).
func bootstrapImplies(th *theory.Theory) error {
	p := expr.Var{Name: "p", Ty: boolTy}
	q := expr.Var{Name: "q", Ty: boolTy}
	andConst := expr.Const{Name: "and", Ty: expr.NewFunctionType(boolTy, expr.NewFunctionType(boolTy, boolTy))}

	andpq, err := apply(andConst, p, q)
	if err != nil {
		return errs.NewExtensionError("implies", err.Error())
	}
	eq, err := kernel.MkEqual(andpq, p)
	if err != nil {
		return errs.NewExtensionError("implies", err.Error())
	}
	definiens := expr.NewAbs(p, expr.NewAbs(q, eq))
	_, err = th.NewDefinitionDecl("implies", definiens)
	return err
}

// bootstrapForall installs forall := \p:(a->Bool). p = (\x:a. T).
func bootstrapForall(th *theory.Theory) error {
	predTy := expr.NewFunctionType(typeVarA, boolTy)
	p := expr.Var{Name: "p", Ty: predTy}
	x := expr.Var{Name: "x", Ty: typeVarA}
	truthConst := expr.Const{Name: "T", Ty: boolTy}

	rhs := expr.NewAbs(x, truthConst)
	eq, err := kernel.MkEqual(p, rhs)
	if err != nil {
		return errs.NewExtensionError("forall", err.Error())
	}
	definiens := expr.NewAbs(p, eq)
	_, err = th.NewDefinitionDecl("forall", definiens)
	return err
}

// bootstrapFalsity installs false := forall (\p:Bool. p).
func bootstrapFalsity(th *theory.Theory) error {
	forallConst := expr.Const{
		Name: "forall",
		Ty:   expr.NewFunctionType(expr.NewFunctionType(boolTy, boolTy), boolTy),
	}
	p := expr.Var{Name: "p", Ty: boolTy}
	idp := expr.NewAbs(p, p)

	definiens, err := apply(forallConst, idp)
	if err != nil {
		return errs.NewExtensionError("false", err.Error())
	}
	_, err = th.NewDefinitionDecl("false", definiens)
	return err
}

// bootstrapNot installs not := \p. implies(p, false).
func bootstrapNot(th *theory.Theory) error {
	impliesConst := expr.Const{Name: "implies", Ty: expr.NewFunctionType(boolTy, expr.NewFunctionType(boolTy, boolTy))}
	falseConst := expr.Const{Name: "false", Ty: boolTy}
	p := expr.Var{Name: "p", Ty: boolTy}

	body, err := apply(impliesConst, p, falseConst)
	if err != nil {
		return errs.NewExtensionError("not", err.Error())
	}
	definiens := expr.NewAbs(p, body)
	_, err = th.NewDefinitionDecl("not", definiens)
	return err
}

// bootstrapOr installs
// or := \p q. forall (\r:Bool. implies(implies(p,r), implies(implies(q,r), r))).
func bootstrapOr(th *theory.Theory) error {
	impliesConst := expr.Const{Name: "implies", Ty: expr.NewFunctionType(boolTy, expr.NewFunctionType(boolTy, boolTy))}
	forallBoolConst := expr.Const{
		Name: "forall",
		Ty:   expr.NewFunctionType(expr.NewFunctionType(boolTy, boolTy), boolTy),
	}
	p := expr.Var{Name: "p", Ty: boolTy}
	q := expr.Var{Name: "q", Ty: boolTy}
	r := expr.Var{Name: "r", Ty: boolTy}

	pr, err := apply(impliesConst, p, r)
	if err != nil {
		return errs.NewExtensionError("or", err.Error())
	}
	qr, err := apply(impliesConst, q, r)
	if err != nil {
		return errs.NewExtensionError("or", err.Error())
	}
	qrThenR, err := apply(impliesConst, qr, r)
	if err != nil {
		return errs.NewExtensionError("or", err.Error())
	}
	inner, err := apply(impliesConst, pr, qrThenR)
	if err != nil {
		return errs.NewExtensionError("or", err.Error())
	}
	forallApplied, err := apply(forallBoolConst, expr.NewAbs(r, inner))
	if err != nil {
		return errs.NewExtensionError("or", err.Error())
	}
	definiens := expr.NewAbs(p, expr.NewAbs(q, forallApplied))
	_, err = th.NewDefinitionDecl("or", definiens)
	return err
}

// bootstrapExists installs
// exists := \p:(a->Bool). forall (\q:Bool. implies(forall (\x:a. implies(p x, q)), q)).
func bootstrapExists(th *theory.Theory) error {
	predTy := expr.NewFunctionType(typeVarA, boolTy)
	impliesConst := expr.Const{Name: "implies", Ty: expr.NewFunctionType(boolTy, expr.NewFunctionType(boolTy, boolTy))}
	forallAConst := expr.Const{Name: "forall", Ty: expr.NewFunctionType(predTy, boolTy)}
	forallBoolConst := expr.Const{
		Name: "forall",
		Ty:   expr.NewFunctionType(expr.NewFunctionType(boolTy, boolTy), boolTy),
	}
	p := expr.Var{Name: "p", Ty: predTy}
	x := expr.Var{Name: "x", Ty: typeVarA}
	q := expr.Var{Name: "q", Ty: boolTy}

	px, err := apply(p, x)
	if err != nil {
		return errs.NewExtensionError("exists", err.Error())
	}
	pxq, err := apply(impliesConst, px, q)
	if err != nil {
		return errs.NewExtensionError("exists", err.Error())
	}
	forallX, err := apply(forallAConst, expr.NewAbs(x, pxq))
	if err != nil {
		return errs.NewExtensionError("exists", err.Error())
	}
	implF, err := apply(impliesConst, forallX, q)
	if err != nil {
		return errs.NewExtensionError("exists", err.Error())
	}
	forallQ, err := apply(forallBoolConst, expr.NewAbs(q, implF))
	if err != nil {
		return errs.NewExtensionError("exists", err.Error())
	}
	definiens := expr.NewAbs(p, forallQ)
	_, err = th.NewDefinitionDecl("exists", definiens)
	return err
}

// bootstrapExists1 installs
// exists1 := \p:(a->Bool). and(exists(p), forall (\x:a. forall (\y:a. implies(and(p x, p y), x = y)))).
func bootstrapExists1(th *theory.Theory) error {
	predTy := expr.NewFunctionType(typeVarA, boolTy)
	existsConst := expr.Const{Name: "exists", Ty: expr.NewFunctionType(predTy, boolTy)}
	andConst := expr.Const{Name: "and", Ty: expr.NewFunctionType(boolTy, expr.NewFunctionType(boolTy, boolTy))}
	impliesConst := expr.Const{Name: "implies", Ty: expr.NewFunctionType(boolTy, expr.NewFunctionType(boolTy, boolTy))}
	forallAConst := expr.Const{Name: "forall", Ty: expr.NewFunctionType(predTy, boolTy)}
	p := expr.Var{Name: "p", Ty: predTy}
	x := expr.Var{Name: "x", Ty: typeVarA}
	y := expr.Var{Name: "y", Ty: typeVarA}

	existsP, err := apply(existsConst, p)
	if err != nil {
		return errs.NewExtensionError("exists1", err.Error())
	}
	px, err := apply(p, x)
	if err != nil {
		return errs.NewExtensionError("exists1", err.Error())
	}
	py, err := apply(p, y)
	if err != nil {
		return errs.NewExtensionError("exists1", err.Error())
	}
	andPxPy, err := apply(andConst, px, py)
	if err != nil {
		return errs.NewExtensionError("exists1", err.Error())
	}
	eqxy, err := kernel.MkEqual(x, y)
	if err != nil {
		return errs.NewExtensionError("exists1", err.Error())
	}
	implF, err := apply(impliesConst, andPxPy, eqxy)
	if err != nil {
		return errs.NewExtensionError("exists1", err.Error())
	}
	forallY, err := apply(forallAConst, expr.NewAbs(y, implF))
	if err != nil {
		return errs.NewExtensionError("exists1", err.Error())
	}
	forallX, err := apply(forallAConst, expr.NewAbs(x, forallY))
	if err != nil {
		return errs.NewExtensionError("exists1", err.Error())
	}
	andBody, err := apply(andConst, existsP, forallX)
	if err != nil {
		return errs.NewExtensionError("exists1", err.Error())
	}
	definiens := expr.NewAbs(p, andBody)
	_, err = th.NewDefinitionDecl("exists1", definiens)
	return err
}
