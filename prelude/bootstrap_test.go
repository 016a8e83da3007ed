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

package prelude

import (
	"testing"

	"github.com/ulkb/ulkb/expr"
)

func TestNewTheoryBootstrapsWithoutError(t *testing.T) {
	th, err := NewTheory()
	if err != nil {
		t.Fatalf("NewTheory failed: %v", err)
	}
	if th.Len() == 0 {
		t.Errorf("a bootstrapped theory should not be empty")
	}
}

func TestNewTheoryDigestIsDeterministic(t *testing.T) {
	th1, err := NewTheory()
	if err != nil {
		t.Fatalf("NewTheory failed: %v", err)
	}
	th2, err := NewTheory()
	if err != nil {
		t.Fatalf("NewTheory failed: %v", err)
	}
	if th1.Digest() != th2.Digest() {
		t.Errorf("two independently bootstrapped theories should have identical digests")
	}
}

func TestTruthTheoremConcludesT(t *testing.T) {
	th, err := NewTheory()
	if err != nil {
		t.Fatalf("NewTheory failed: %v", err)
	}
	thm, err := th.LookupTheorem("truth")
	if err != nil {
		t.Fatalf("LookupTheorem(\"truth\") failed: %v", err)
	}
	if len(thm.Seq.Hyps()) != 0 {
		t.Errorf("truth should have no hypotheses, got %v", thm.Seq.Hyps())
	}
	want := expr.Const{Name: "T", Ty: expr.BoolType}
	if !thm.Seq.Concl().Equal(want) {
		t.Errorf("truth concludes %v, want T", thm.Seq.Concl())
	}
}

func TestConnectivesAreInstalledAtExpectedTypes(t *testing.T) {
	th, err := NewTheory()
	if err != nil {
		t.Fatalf("NewTheory failed: %v", err)
	}
	boolBinop := expr.NewFunctionType(expr.BoolType, expr.NewFunctionType(expr.BoolType, expr.BoolType))
	for _, name := range []string{"and", "implies", "or"} {
		c, err := th.LookupConstant(name)
		if err != nil {
			t.Fatalf("LookupConstant(%q) failed: %v", name, err)
		}
		if !c.Ty.Equal(boolBinop) {
			t.Errorf("%s : %s, want %s", name, c.Ty, boolBinop)
		}
	}

	not, err := th.LookupConstant("not")
	if err != nil {
		t.Fatalf("LookupConstant(\"not\") failed: %v", err)
	}
	if want := expr.NewFunctionType(expr.BoolType, expr.BoolType); !not.Ty.Equal(want) {
		t.Errorf("not : %s, want %s", not.Ty, want)
	}

	falsity, err := th.LookupConstant("false")
	if err != nil {
		t.Fatalf("LookupConstant(\"false\") failed: %v", err)
	}
	if !falsity.Ty.Equal(expr.BoolType) {
		t.Errorf("false : %s, want Bool", falsity.Ty)
	}

	a := expr.TypeVariable{Name: "a"}
	quantifierTy := expr.NewFunctionType(expr.NewFunctionType(a, expr.BoolType), expr.BoolType)
	for _, name := range []string{"forall", "exists", "exists1"} {
		c, err := th.LookupConstant(name)
		if err != nil {
			t.Fatalf("LookupConstant(%q) failed: %v", name, err)
		}
		if !c.Ty.Equal(quantifierTy) {
			t.Errorf("%s : %s, want %s", name, c.Ty, quantifierTy)
		}
	}
}
