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

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewFunctionTypeString(t *testing.T) {
	nat := NewBaseType("nat")
	ft := NewFunctionType(nat, BoolType)
	if got, want := ft.String(), "(nat -> Bool)"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestMatchTypeInstantiates(t *testing.T) {
	a := TypeVariable{Name: "a"}
	pattern := NewFunctionType(a, NewFunctionType(a, BoolType))
	nat := NewBaseType("nat")
	target := NewFunctionType(nat, NewFunctionType(nat, BoolType))

	theta, ok := MatchType(pattern, target, nil)
	if !ok {
		t.Fatalf("MatchType failed")
	}
	if diff := cmp.Diff(TypeSubst{"a": nat}, theta); diff != "" {
		t.Errorf("theta mismatch (-want +got):\n%s", diff)
	}
	if !InstantiateType(pattern, theta).Equal(target) {
		t.Errorf("InstantiateType(pattern, theta) != target")
	}
}

func TestMatchTypeRejectsInconsistentBinding(t *testing.T) {
	a := TypeVariable{Name: "a"}
	pattern := NewFunctionType(a, a)
	nat := NewBaseType("nat")
	boolT := BoolType
	if _, ok := MatchType(pattern, NewFunctionType(nat, boolT), nil); ok {
		t.Errorf("MatchType should fail when a is bound to two different types")
	}
}

func TestInstantiateTypeIdentityPreservation(t *testing.T) {
	nat := NewBaseType("nat")
	ft := NewFunctionType(nat, BoolType)
	if got := InstantiateType(ft, TypeSubst{"unrelated": nat}); !got.Equal(ft) {
		t.Errorf("InstantiateType changed a type with no matching substitution")
	}
}

func TestTypeVariablesOrderAndDedup(t *testing.T) {
	a := TypeVariable{Name: "a"}
	b := TypeVariable{Name: "b"}
	ty := NewFunctionType(a, NewFunctionType(b, a))
	got := TypeVariables(ty)
	want := []TypeVariable{a, b}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("TypeVariables mismatch (-want +got):\n%s", diff)
	}
}
