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

func TestPassAndFail(t *testing.T) {
	p := boolVar("p")
	s, err := Pass(p)
	if err != nil {
		t.Fatalf("Pass failed: %v", err)
	}
	l, r, ok := IsEqual(s.Concl())
	if !ok || !l.Equal(p) || !r.Equal(p) {
		t.Errorf("Pass(p) = %v, want p = p", s.Concl())
	}
	if _, err := Fail(p); err == nil {
		t.Errorf("Fail should always return an error")
	}
}

func TestThenComposesConversions(t *testing.T) {
	x := boolVar("x")
	abs := expr.NewAbs(x, x)
	arg := boolVar("y")
	redex, _ := expr.NewComb(abs, arg)
	c := Then(BetaConv, Pass)
	s, err := c(redex)
	if err != nil {
		t.Fatalf("Then(Beta, Pass) failed: %v", err)
	}
	_, r, _ := IsEqual(s.Concl())
	if !r.Equal(arg) {
		t.Errorf("Then(Beta, Pass) rhs = %v, want y", r)
	}
}

func TestOrElseAndTry(t *testing.T) {
	p := boolVar("p")
	c := OrElse(Fail, Pass)
	if _, err := c(p); err != nil {
		t.Errorf("OrElse(Fail, Pass) should fall back to Pass: %v", err)
	}
	tried := Try(Fail)
	if _, err := tried(p); err != nil {
		t.Errorf("Try(Fail) should never fail: %v", err)
	}
}

func TestChangedRejectsNoOpConversion(t *testing.T) {
	p := boolVar("p")
	if _, err := Changed(Pass)(p); err == nil {
		t.Errorf("Changed(Pass) should fail since Pass never changes its argument")
	}
}

func TestRepeatReducesNestedRedexes(t *testing.T) {
	x := boolVar("x")
	id := expr.NewAbs(x, x)
	inner, _ := expr.NewComb(id, boolVar("z")) // (\x.x) z
	outer, _ := expr.NewComb(id, inner)        // (\x.x) ((\x.x) z)
	s, err := Repeat(BetaConv, 10)(outer)
	if err != nil {
		t.Fatalf("Repeat(Beta) failed: %v", err)
	}
	_, r, ok := IsEqual(s.Concl())
	if !ok || !r.Equal(boolVar("z")) {
		t.Errorf("Repeat(Beta) on doubly-nested redex = %v, want z", s.Concl())
	}
}

func TestAlphaConvRejectsNonAbstraction(t *testing.T) {
	p := boolVar("p")
	if _, err := AlphaConv(boolVar("q"))(p); err == nil {
		t.Errorf("AlphaConv should reject a non-abstraction term")
	}
}
