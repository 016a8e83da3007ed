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

package expr

import "testing"

func TestNewAbsIsAlphaInvariant(t *testing.T) {
	x := Var{Name: "x", Ty: BoolType}
	y := Var{Name: "y", Ty: BoolType}
	lamX := NewAbs(x, x)
	lamY := NewAbs(y, y)
	if !lamX.Equal(lamY) {
		t.Errorf("(\\x. x) and (\\y. y) should be alpha-equal, got lamX=%s lamY=%s", lamX, lamY)
	}
	if CanonicalKey(lamX) != CanonicalKey(lamY) {
		t.Errorf("CanonicalKey should agree on alpha-equal abstractions")
	}
}

func TestAbsOpenRoundTrips(t *testing.T) {
	x := Var{Name: "x", Ty: BoolType}
	abs := NewAbs(x, x)
	v, body := abs.Open()
	if !body.Equal(v) {
		t.Errorf("Open() of (\\x. x) should yield body == bound variable, got %s", body)
	}
}

func TestSubstituteUnderBinderDoesNotCapture(t *testing.T) {
	// (\x. y)[y := x] should NOT turn into (\x. x): the x introduced by the
	// replacement must not be captured by the enclosing binder. Because the
	// representation is locally-nameless, the bound occurrence is a BVar,
	// so substitution of the free variable y can never reach it by name
	// collision; the result is alpha-equal to (\x0. x) instead.
	x := Var{Name: "x", Ty: BoolType}
	y := Var{Name: "y", Ty: BoolType}
	abs := NewAbs(x, y) // \x. y
	got := Substitute(abs, TermSubst{"y": x}).(Abs)
	_, body := got.Open()
	if !body.Equal(x) {
		t.Errorf("substituted body = %s, want free occurrence of x", body)
	}
	// the binder itself must not have been renamed to collide with the
	// substituted-in x: opening with a fresh variant must avoid capturing it.
	freshVar, freshBody := got.Open()
	if freshVar.Name == "x" {
		t.Errorf("Open() variant %s collides with the substituted free variable", freshVar)
	}
	if !freshBody.Equal(x) {
		t.Errorf("fresh body = %s, want x", freshBody)
	}
}

func TestNewCombInstantiatesPolymorphicFunction(t *testing.T) {
	a := TypeVariable{Name: "a"}
	nat := NewBaseType("nat")
	// f : a -> a, applied to a nat-typed argument should yield type nat.
	f := Var{Name: "f", Ty: NewFunctionType(a, a)}
	arg := Var{Name: "n", Ty: nat}
	app, err := NewComb(f, arg)
	if err != nil {
		t.Fatalf("NewComb failed: %v", err)
	}
	if !app.Type().Equal(nat) {
		t.Errorf("application type = %s, want %s", app.Type(), nat)
	}
}

func TestNewCombRejectsTypeMismatch(t *testing.T) {
	nat := NewBaseType("nat")
	f := Var{Name: "f", Ty: NewFunctionType(nat, nat)}
	arg := Var{Name: "p", Ty: BoolType}
	if _, err := NewComb(f, arg); err == nil {
		t.Errorf("NewComb should reject a Bool-typed argument against a nat-typed domain")
	}
}

func TestIsClosedAndFreeVars(t *testing.T) {
	x := Var{Name: "x", Ty: BoolType}
	y := Var{Name: "y", Ty: BoolType}
	term, err := NewComb(NewAbs(x, x), y)
	if err != nil {
		t.Fatalf("NewComb failed: %v", err)
	}
	if IsClosed(term) {
		t.Errorf("term mentioning free y should not be closed")
	}
	fv := FreeVars(term)
	if len(fv) != 1 || fv[0].Name != "y" {
		t.Errorf("FreeVars = %v, want just [y]", fv)
	}
}

func TestGetVariantAvoidsCollisions(t *testing.T) {
	x := Var{Name: "x", Ty: BoolType}
	reject := func(c Var) bool { return c.Name == "x" || c.Name == "x0" }
	got := GetVariant(x, reject)
	if got.Name != "x1" {
		t.Errorf("GetVariant = %s, want x1", got.Name)
	}
}
