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

// The representative derived rules of spec §4.5: each is built entirely
// from the nine primitives of rule_primitive.go — no new primitive is ever
// introduced here.
package kernel

import (
	"fmt"

	"github.com/ulkb/ulkb/errs"
	"github.com/ulkb/ulkb/expr"
)

// Cut(s1, s2) = EqMP(DeductAntisym(s1, s2), s1).
func Cut(s1, s2 Sequent) (Sequent, error) {
	da, err := DeductAntisym(s1, s2)
	if err != nil {
		return Sequent{}, errs.NewRuleError("Cut", err.Error())
	}
	return EqMP(da, s1)
}

// Weaken(q, s) = Cut(Assume(q), s): adds q to s's hypotheses.
func Weaken(q expr.Formula, s Sequent) (Sequent, error) {
	as, err := Assume(q)
	if err != nil {
		return Sequent{}, errs.NewRuleError("Weaken", err.Error())
	}
	return Cut(as, s)
}

// ApTerm(f, s) = MkComb(Refl(f), s): congruence of f under an equation.
func ApTerm(f expr.Term, s Sequent) (Sequent, error) {
	rf, err := Refl(f)
	if err != nil {
		return Sequent{}, errs.NewRuleError("ApTerm", err.Error())
	}
	return MkComb(rf, s)
}

// ApThm(s, t) = MkComb(s, Refl(t)): congruence of an equation applied to t.
func ApThm(s Sequent, t expr.Term) (Sequent, error) {
	rt, err := Refl(t)
	if err != nil {
		return Sequent{}, errs.NewRuleError("ApThm", err.Error())
	}
	return MkComb(s, rt)
}

// Sym(s): from Γ ⊢ t1 = t2, derive Γ ⊢ t2 = t1. Grounded on the standard
// congruence trick: apply the bare equality constant to both sides of s
// (ApTerm), apply the resulting functional equation to t1 itself (MkComb
// with Refl(t1)), which yields Γ ⊢ (t1 = t1) = (t2 = t1); EqMP against
// Refl(t1) then discharges the (t1 = t1) side, leaving Γ ⊢ t2 = t1. No
// primitive beyond MkComb/ApTerm/Refl/EqMP is used.
func Sym(s Sequent) (Sequent, error) {
	l, _, ok := IsEqual(s.concl)
	if !ok {
		return Sequent{}, errs.NewRuleError("Sym", "sequent must conclude an equation")
	}
	ty := l.Type()
	eqConst := expr.Const{Name: EqualID, Ty: expr.NewFunctionType(ty, expr.NewFunctionType(ty, expr.BoolType))}
	congr1, err := ApTerm(eqConst, s) // |- Equal l = Equal r
	if err != nil {
		return Sequent{}, errs.NewRuleError("Sym", err.Error())
	}
	reflL, err := Refl(l) // |- l = l
	if err != nil {
		return Sequent{}, errs.NewRuleError("Sym", err.Error())
	}
	congr2, err := MkComb(congr1, reflL) // |- (l = l) = (r = l)
	if err != nil {
		return Sequent{}, errs.NewRuleError("Sym", err.Error())
	}
	return EqMP(congr2, reflL)
}

// Alpha(t1, t2): |- t1 = t2 when t1 is alpha-equal to t2; derived from two
// Refls joined by Trans.
func Alpha(t1, t2 expr.Term) (Sequent, error) {
	if !t1.Equal(t2) {
		return Sequent{}, errs.NewRuleError("Alpha", "terms are not alpha-equal")
	}
	r1, err := Refl(t1)
	if err != nil {
		return Sequent{}, errs.NewRuleError("Alpha", err.Error())
	}
	r2, err := Refl(t2)
	if err != nil {
		return Sequent{}, errs.NewRuleError("Alpha", err.Error())
	}
	return Trans(r1, r2)
}

// AlphaRename(y, a): |- (\x. t) = (\y. t[x|->y]), precondition y does not
// occur free in t (or y = x). Because the stored representation is
// locally-nameless, the renamed abstraction is structurally identical to a
// whenever the precondition holds, so this reduces to Alpha.
func AlphaRename(y expr.Var, a expr.Abs) (Sequent, error) {
	x := expr.Var{Name: a.Hint, Ty: a.VarTy}
	body := a.OpenWith(x)
	if y.Name != x.Name && expr.IsFree(y, body) {
		return Sequent{}, errs.NewRuleError("AlphaRename", fmt.Sprintf("%s occurs free in the abstraction body", y.Name))
	}
	renamed := expr.NewAbs(y, expr.Substitute(body, expr.TermSubst{x.Name: y}))
	return Alpha(a, renamed)
}

// Truth(def) derives |- c from a no-hypothesis defining equation
// def = (|- c = (t = t)) for some term t — the shape every "true"-like
// constant's definition takes (e.g. T := (\p. p) = (\p. p)). Generic over
// the definiens so the kernel never needs to know the constant's name.
func Truth(def Sequent) (Sequent, error) {
	if len(def.hyps) != 0 {
		return Sequent{}, errs.NewRuleError("Truth", "defining sequent must have no hypotheses")
	}
	_, r, ok := IsEqual(def.concl)
	if !ok {
		return Sequent{}, errs.NewRuleError("Truth", "argument must be a defining equation")
	}
	t1, t2, ok2 := IsEqual(r)
	if !ok2 || !t1.Equal(t2) {
		return Sequent{}, errs.NewRuleError("Truth", "definiens is not a trivial self-equation")
	}
	sRefl, err := Refl(t1)
	if err != nil {
		return Sequent{}, errs.NewRuleError("Truth", err.Error())
	}
	sSym, err := Sym(def)
	if err != nil {
		return Sequent{}, errs.NewRuleError("Truth", err.Error())
	}
	return EqMP(sSym, sRefl)
}

// EqTruthIntro(s, truth): from Γ ⊢ p and truth = (|- T), derive Γ ⊢ p <-> T.
func EqTruthIntro(s, truth Sequent) (Sequent, error) {
	return DeductAntisym(s, truth)
}

// EqTruthElim(s, truth): from Γ ⊢ p <-> T and truth = (|- T), derive Γ ⊢ p.
func EqTruthElim(s, truth Sequent) (Sequent, error) {
	sym, err := Sym(s)
	if err != nil {
		return Sequent{}, errs.NewRuleError("EqTruthElim", err.Error())
	}
	return EqMP(sym, truth)
}
