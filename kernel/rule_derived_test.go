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

package kernel

import (
	"testing"

	"github.com/ulkb/ulkb/expr"
)

func TestSymFlipsEquation(t *testing.T) {
	x := boolVar("x")
	y := boolVar("y")
	s, _ := Assume(mustEqual(t, x, y))
	got, err := Sym(s)
	if err != nil {
		t.Fatalf("Sym failed: %v", err)
	}
	l, r, ok := IsEqual(got.Concl())
	if !ok || !l.Equal(y) || !r.Equal(x) {
		t.Errorf("Sym(|- x = y) = %v, want y = x", got.Concl())
	}
}

func TestAlphaAcceptsAlphaEqualTerms(t *testing.T) {
	x := boolVar("x")
	y := boolVar("y")
	lamX := expr.NewAbs(x, x)
	lamY := expr.NewAbs(y, y)
	if _, err := Alpha(lamX, lamY); err != nil {
		t.Errorf("Alpha should accept alpha-equal terms: %v", err)
	}
}

func TestAlphaRejectsNonAlphaEqualTerms(t *testing.T) {
	p, q := boolVar("p"), boolVar("q")
	if _, err := Alpha(p, q); err == nil {
		t.Errorf("Alpha should reject terms that are not alpha-equal")
	}
}

func TestAlphaRenameRejectsCapture(t *testing.T) {
	x := boolVar("x")
	y := boolVar("y")
	abs := expr.NewAbs(x, y) // \x. y
	if _, err := AlphaRename(y, abs); err == nil {
		t.Errorf("AlphaRename should reject renaming to a variable free in the body")
	}
}

func TestAlphaRenameAcceptsFreshVariable(t *testing.T) {
	x := boolVar("x")
	z := boolVar("z")
	abs := expr.NewAbs(x, x) // \x. x
	s, err := AlphaRename(z, abs)
	if err != nil {
		t.Fatalf("AlphaRename failed: %v", err)
	}
	_, r, ok := IsEqual(s.Concl())
	if !ok {
		t.Fatalf("AlphaRename should conclude an equation")
	}
	if !r.Equal(expr.NewAbs(z, z)) {
		t.Errorf("AlphaRename(z, \\x.x) = %v, want \\z.z", r)
	}
}

func TestCutChainsTwoSequents(t *testing.T) {
	p := boolVar("p")
	sp, _ := Assume(p) // {p} |- p
	cut, err := Cut(sp, sp)
	if err != nil {
		t.Fatalf("Cut failed: %v", err)
	}
	if !cut.Concl().Equal(p) {
		t.Errorf("Cut concl = %v, want p", cut.Concl())
	}
}

func TestWeakenAddsHypothesis(t *testing.T) {
	p, q := boolVar("p"), boolVar("q")
	sp, _ := Assume(p)
	got, err := Weaken(q, sp)
	if err != nil {
		t.Fatalf("Weaken failed: %v", err)
	}
	if !got.Concl().Equal(p) {
		t.Errorf("Weaken concl = %v, want p", got.Concl())
	}
	if len(got.Hyps()) != 2 {
		t.Errorf("Weaken(q, {p}|-p).Hyps() = %v, want [p, q]", got.Hyps())
	}
}

func TestApTermAndApThmCongruence(t *testing.T) {
	x, y := boolVar("x"), boolVar("y")
	s, _ := Assume(mustEqual(t, x, y))
	notConst := expr.Const{Name: "not", Ty: expr.NewFunctionType(expr.BoolType, expr.BoolType)}
	s1, err := ApTerm(notConst, s)
	if err != nil {
		t.Fatalf("ApTerm failed: %v", err)
	}
	l, r, ok := IsEqual(s1.Concl())
	if !ok {
		t.Fatalf("ApTerm should conclude an equation")
	}
	wantL, _ := expr.NewComb(notConst, x)
	wantR, _ := expr.NewComb(notConst, y)
	if !l.Equal(wantL) || !r.Equal(wantR) {
		t.Errorf("ApTerm concl = %v, want not x = not y", s1.Concl())
	}

	fnTy := expr.NewFunctionType(expr.BoolType, expr.BoolType)
	f, g := expr.Var{Name: "f", Ty: fnTy}, expr.Var{Name: "g", Ty: fnTy}
	sfg, _ := Assume(mustEqual(t, f, g))
	s2, err := ApThm(sfg, x)
	if err != nil {
		t.Fatalf("ApThm failed: %v", err)
	}
	l2, r2, ok := IsEqual(s2.Concl())
	if !ok {
		t.Fatalf("ApThm should conclude an equation")
	}
	wantL2, _ := expr.NewComb(f, x)
	wantR2, _ := expr.NewComb(g, x)
	if !l2.Equal(wantL2) || !r2.Equal(wantR2) {
		t.Errorf("ApThm concl = %v, want (f x) = (g x)", s2.Concl())
	}
}

func TestEqTruthIntroAndElimRoundTrip(t *testing.T) {
	p := boolVar("p")
	truth, _ := Assume(boolVar("T"))
	sp, _ := Assume(p)
	intro, err := EqTruthIntro(sp, truth)
	if err != nil {
		t.Fatalf("EqTruthIntro failed: %v", err)
	}
	l, r, ok := IsEqual(intro.Concl())
	if !ok || !l.Equal(p) || !r.Equal(boolVar("T")) {
		t.Errorf("EqTruthIntro concl = %v, want p <-> T", intro.Concl())
	}
	elim, err := EqTruthElim(intro, truth)
	if err != nil {
		t.Fatalf("EqTruthElim failed: %v", err)
	}
	if !elim.Concl().Equal(p) {
		t.Errorf("EqTruthElim concl = %v, want p", elim.Concl())
	}
}
