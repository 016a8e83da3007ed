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

// The nine primitive rule constructors of spec §4.4. Each wraps (a) the
// kind/type checking of its arguments, (b) the inference itself, and (c)
// optional proof-term recording — no rule observes any state beyond its
// arguments.
package kernel

import (
	"fmt"

	"github.com/ulkb/ulkb/errs"
	"github.com/ulkb/ulkb/expr"
)

// Assume(p) requires p to be a formula and yields ({p} |- p).
func Assume(p expr.Formula) (Sequent, error) {
	if !expr.IsFormula(p) {
		return Sequent{}, errs.NewRuleError("Assume", "argument is not a formula of type Bool")
	}
	return newSequent(hypsFromList(p), p, recordProof("Assume", nil)), nil
}

// Refl(t) yields (|- t = t).
func Refl(t expr.Term) (Sequent, error) {
	eq, err := MkEqual(t, t)
	if err != nil {
		return Sequent{}, errs.NewRuleError("Refl", err.Error())
	}
	return newSequent(nil, eq, recordProof("Refl", nil)), nil
}

// Trans(s1, s2): s1 = (G1 |- l1 = r1), s2 = (G2 |- l2 = r2); requires r1
// alpha-equal l2. Yields G1 u G2 |- l1 = r2.
func Trans(s1, s2 Sequent) (Sequent, error) {
	l1, r1, ok1 := IsEqual(s1.concl)
	l2, r2, ok2 := IsEqual(s2.concl)
	if !ok1 || !ok2 {
		return Sequent{}, errs.NewRuleError("Trans", "both sequents must conclude an equation")
	}
	if !r1.Equal(l2) {
		return Sequent{}, errs.NewRuleError("Trans", "pivots are not alpha-equal")
	}
	eq, err := MkEqual(l1, r2)
	if err != nil {
		return Sequent{}, errs.NewRuleError("Trans", err.Error())
	}
	return newSequent(unionHyps(s1.hyps, s2.hyps), eq, recordProof("Trans", []Sequent{s1, s2})), nil
}

// MkComb(sF, sA): sF = (G1 |- f = g), sA = (G2 |- x = y); requires f x, g y
// well-typed. Yields G1 u G2 |- f x = g y.
func MkComb(sF, sA Sequent) (Sequent, error) {
	f, g, ok1 := IsEqual(sF.concl)
	x, y, ok2 := IsEqual(sA.concl)
	if !ok1 || !ok2 {
		return Sequent{}, errs.NewRuleError("MkComb", "both sequents must conclude an equation")
	}
	fx, err := expr.NewComb(f, x)
	if err != nil {
		return Sequent{}, errs.NewRuleError("MkComb", err.Error())
	}
	gy, err := expr.NewComb(g, y)
	if err != nil {
		return Sequent{}, errs.NewRuleError("MkComb", err.Error())
	}
	eq, err := MkEqual(fx, gy)
	if err != nil {
		return Sequent{}, errs.NewRuleError("MkComb", err.Error())
	}
	return newSequent(unionHyps(sF.hyps, sA.hyps), eq, recordProof("MkComb", []Sequent{sF, sA})), nil
}

// Abs(x, s): s = (G |- l = r); requires x not free in any hypothesis of G.
// Yields G |- (\x. l) = (\x. r).
func Abs(x expr.Var, s Sequent) (Sequent, error) {
	l, r, ok := IsEqual(s.concl)
	if !ok {
		return Sequent{}, errs.NewRuleError("Abs", "sequent must conclude an equation")
	}
	for _, h := range s.hyps {
		if expr.IsFree(x, h) {
			return Sequent{}, errs.NewRuleError("Abs", fmt.Sprintf("%s occurs free in a hypothesis", x.Name))
		}
	}
	eq, err := MkEqual(expr.NewAbs(x, l), expr.NewAbs(x, r))
	if err != nil {
		return Sequent{}, errs.NewRuleError("Abs", err.Error())
	}
	return newSequent(s.hyps, eq, recordProof("Abs", []Sequent{s})), nil
}

// Beta(e) requires e to be a beta-redex (\x. t) u and yields |- e = t[x|->u].
func Beta(e expr.Term) (Sequent, error) {
	abs, arg, ok := expr.IsBetaRedex(e)
	if !ok {
		return Sequent{}, errs.NewRuleError("Beta", "term is not a beta-redex")
	}
	rhs := abs.OpenWith(arg)
	eq, err := MkEqual(e, rhs)
	if err != nil {
		return Sequent{}, errs.NewRuleError("Beta", err.Error())
	}
	return newSequent(nil, eq, recordProof("Beta", nil)), nil
}

// EqMP(sEq, sP): sEq = (G1 |- p <-> q), sP = (G2 |- p'); requires p
// alpha-equal p'. Yields G1 u G2 |- q.
func EqMP(sEq, sP Sequent) (Sequent, error) {
	p, q, ok := IsEqual(sEq.concl)
	if !ok {
		return Sequent{}, errs.NewRuleError("EqMP", "first sequent must conclude an equivalence")
	}
	if !p.Equal(sP.concl) {
		return Sequent{}, errs.NewRuleError("EqMP", "pivots are not alpha-equal")
	}
	return newSequent(unionHyps(sEq.hyps, sP.hyps), q, recordProof("EqMP", []Sequent{sEq, sP})), nil
}

// DeductAntisym(s1, s2): s1 = (G1 |- p), s2 = (G2 |- q). Yields
// (G1 \ {q}) u (G2 \ {p}) |- p <-> q.
func DeductAntisym(s1, s2 Sequent) (Sequent, error) {
	eq, err := MkEqual(s1.concl, s2.concl)
	if err != nil {
		return Sequent{}, errs.NewRuleError("DeductAntisym", err.Error())
	}
	h1 := removeHyp(s1.hyps, s2.concl)
	h2 := removeHyp(s2.hyps, s1.concl)
	return newSequent(unionHyps(h1, h2), eq, recordProof("DeductAntisym", []Sequent{s1, s2})), nil
}

// InstType(theta, s) instantiates both the hypotheses and the conclusion
// of s under the type substitution theta.
func InstType(theta expr.TypeSubst, s Sequent) (Sequent, error) {
	nh := make(map[string]expr.Formula, len(s.hyps))
	for _, h := range s.hyps {
		nt := expr.InstantiateTerm(h, theta)
		nh[expr.CanonicalKey(nt)] = nt
	}
	nc := expr.InstantiateTerm(s.concl, theta)
	return newSequent(nh, nc, recordProof("InstType", []Sequent{s})), nil
}

// Binding pairs a free variable with its capture-avoiding replacement term
// for Subst; Var and Term must share a type.
type Binding struct {
	Var  expr.Var
	Term expr.Term
}

// Subst(theta, s) substitutes both the hypotheses and the conclusion of s
// under the capture-avoiding term substitution theta.
func Subst(theta []Binding, s Sequent) (Sequent, error) {
	m := make(expr.TermSubst, len(theta))
	for _, b := range theta {
		if !b.Var.Ty.Equal(b.Term.Type()) {
			return Sequent{}, errs.NewRuleError("Subst", fmt.Sprintf("%s and its replacement have differing types", b.Var.Name))
		}
		m[b.Var.Name] = b.Term
	}
	nh := make(map[string]expr.Formula, len(s.hyps))
	for _, h := range s.hyps {
		nt := expr.Substitute(h, m)
		nh[expr.CanonicalKey(nt)] = nt
	}
	nc := expr.Substitute(s.concl, m)
	return newSequent(nh, nc, recordProof("Subst", []Sequent{s})), nil
}
