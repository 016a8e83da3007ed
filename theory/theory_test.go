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
	"testing"

	"github.com/ulkb/ulkb/expr"
	"github.com/ulkb/ulkb/kernel"
)

func natTheory(t *testing.T) (*Theory, expr.Type) {
	t.Helper()
	th := New()
	nat, err := th.NewBaseType("nat")
	if err != nil {
		t.Fatalf("NewBaseType failed: %v", err)
	}
	return th, nat
}

func TestExtendRejectsDuplicateID(t *testing.T) {
	th, nat := natTheory(t)
	if _, err := th.NewConstantDecl("zero", nat); err != nil {
		t.Fatalf("NewConstantDecl failed: %v", err)
	}
	if _, err := th.NewConstantDecl("zero", expr.BoolType); err == nil {
		t.Errorf("Extend should reject a second, structurally different constant sharing the id \"zero\"")
	}
}

func TestExtendDeduplicatesIdenticalReinsertion(t *testing.T) {
	th, nat := natTheory(t)
	c1, err := th.NewConstantDecl("zero", nat)
	if err != nil {
		t.Fatalf("NewConstantDecl failed: %v", err)
	}
	lenBefore := th.Len()
	ext, err := th.Extend(NewConstant{C: c1})
	if err != nil {
		t.Fatalf("re-inserting an identical extension should succeed: %v", err)
	}
	if got, ok := ext.(NewConstant); !ok || !got.C.Equal(c1) {
		t.Errorf("Extend should return the existing entry on a structurally identical re-insertion")
	}
	if th.Len() != lenBefore {
		t.Errorf("identical re-insertion should be a no-op, Len() changed from %d to %d", lenBefore, th.Len())
	}
}

func TestExtendRejectsUndeclaredTypeConstructor(t *testing.T) {
	th := New()
	undeclared := expr.NewBaseType("ghost")
	if _, err := th.NewConstantDecl("x", undeclared); err == nil {
		t.Errorf("NewConstantDecl should reject a type built from an undeclared type constructor")
	}
}

func TestNewAxiomInstallsImplicitConstant(t *testing.T) {
	th := New()
	p := expr.Var{Name: "p", Ty: expr.BoolType}
	eqFormula, err := kernel.MkEqual(p, p)
	if err != nil {
		t.Fatalf("MkEqual failed: %v", err)
	}
	if _, err := th.NewAxiomDecl("refl_p", eqFormula); err != nil {
		t.Fatalf("NewAxiomDecl failed: %v", err)
	}
	if _, err := th.LookupConstant("refl_p"); err != nil {
		t.Errorf("NewAxiomDecl should install an implicit Bool-typed constant under the axiom's name: %v", err)
	}
}

func TestNewDefinitionRejectsOpenDefiniens(t *testing.T) {
	th, nat := natTheory(t)
	x := expr.Var{Name: "x", Ty: nat}
	if _, err := th.NewDefinitionDecl("bad", x); err == nil {
		t.Errorf("NewDefinitionDecl should reject a definiens with a free variable")
	}
}

func TestNewDefinitionRejectsUnboundTypeVariable(t *testing.T) {
	th := New()
	a := expr.TypeVariable{Name: "a"}
	x := expr.Var{Name: "x", Ty: a}
	id := expr.NewAbs(x, x) // \x:a. x : a -> a, but we will declare it at Bool -> Bool
	v := expr.Var{Name: "weird", Ty: expr.NewFunctionType(expr.BoolType, expr.BoolType)}
	if _, err := th.Extend(NewDefinition{Var: v, Definiens: id}); err == nil {
		t.Errorf("checkDefinition should reject a definiens whose type variables don't occur in the declared type")
	}
}

func TestDefinitionEquationGrantsEquality(t *testing.T) {
	th, nat := natTheory(t)
	zero, err := th.NewConstantDecl("zero", nat)
	if err != nil {
		t.Fatalf("NewConstantDecl failed: %v", err)
	}
	if _, err := th.NewDefinitionDecl("one", zero); err != nil {
		t.Fatalf("NewDefinitionDecl failed: %v", err)
	}
	seq, err := th.DefinitionEquation("one")
	if err != nil {
		t.Fatalf("DefinitionEquation failed: %v", err)
	}
	l, r, ok := kernel.IsEqual(seq.Concl())
	if !ok || l.(expr.Const).Name != "one" || !r.Equal(zero) {
		t.Errorf("DefinitionEquation(\"one\") = %v, want one = zero", seq.Concl())
	}
	if len(seq.Hyps()) != 0 {
		t.Errorf("a definitional equation must carry no hypotheses, got %v", seq.Hyps())
	}
}

func TestResetToPreludeBoundary(t *testing.T) {
	th, nat := natTheory(t)
	th.MarkPrelude()
	if _, err := th.NewConstantDecl("zero", nat); err != nil {
		t.Fatalf("NewConstantDecl failed: %v", err)
	}
	lenAfterUser := th.Len()
	if err := th.Reset(nil); err != nil {
		t.Fatalf("Reset(nil) failed: %v", err)
	}
	if th.Len() >= lenAfterUser {
		t.Errorf("Reset(nil) should roll back to the prelude boundary, Len() = %d", th.Len())
	}
	if _, err := th.LookupConstant("zero"); err == nil {
		t.Errorf("zero should no longer be looked up after Reset(nil)")
	}
}

func TestResetByID(t *testing.T) {
	th, nat := natTheory(t)
	if _, err := th.NewConstantDecl("zero", nat); err != nil {
		t.Fatalf("NewConstantDecl failed: %v", err)
	}
	if _, err := th.NewConstantDecl("one", nat); err != nil {
		t.Fatalf("NewConstantDecl failed: %v", err)
	}
	if err := th.Reset("zero"); err != nil {
		t.Fatalf("Reset(\"zero\") failed: %v", err)
	}
	if _, err := th.LookupConstant("zero"); err == nil {
		t.Errorf("Reset(\"zero\") should drop zero itself")
	}
	if _, err := th.LookupConstant("one"); err == nil {
		t.Errorf("Reset(\"zero\") should drop everything after zero too")
	}
}

func TestDigestIsDeterministicAndChangesOnMutation(t *testing.T) {
	th1, _ := natTheory(t)
	th2, _ := natTheory(t)
	if th1.Digest() != th2.Digest() {
		t.Errorf("two structurally identical theories should have equal digests")
	}
	d1 := th1.Digest()
	if _, err := th1.NewConstantDecl("zero", expr.NewBaseType("nat")); err != nil {
		t.Fatalf("NewConstantDecl failed: %v", err)
	}
	if th1.Digest() == d1 {
		t.Errorf("Digest() should change after a mutation")
	}
}

func TestEnumerateExtensionsByKind(t *testing.T) {
	th, nat := natTheory(t)
	if _, err := th.NewConstantDecl("zero", nat); err != nil {
		t.Fatalf("NewConstantDecl failed: %v", err)
	}
	if _, err := th.NewConstantDecl("one", nat); err != nil {
		t.Fatalf("NewConstantDecl failed: %v", err)
	}
	got := th.EnumerateExtensions(EnumerateOptions{Offset: -1, Kind: NewConstant{}})
	if len(got) != 2 {
		t.Errorf("EnumerateExtensions(Kind: NewConstant{}) returned %d results, want 2", len(got))
	}
}
