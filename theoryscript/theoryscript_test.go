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

package theoryscript

import (
	"strings"
	"testing"

	"github.com/ulkb/ulkb/expr"
	"github.com/ulkb/ulkb/theory"
)

const exampleScript = `
# a tiny standalone vocabulary, independent of the prelude
type nat 0
type list 1
const zero : nat
axiom zero-is-zero : zero = zero
definition one : nat := zero
`

func TestLoadExampleScript(t *testing.T) {
	th := theory.New()
	if err := Load(th, strings.NewReader(exampleScript)); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if _, err := th.LookupTypeConstructor("nat"); err != nil {
		t.Errorf("nat should be declared: %v", err)
	}
	if _, err := th.LookupTypeConstructor("list"); err != nil {
		t.Errorf("list should be declared: %v", err)
	}
	if _, err := th.LookupConstant("zero"); err != nil {
		t.Errorf("zero should be declared: %v", err)
	}
	if _, err := th.LookupAxiom("zero-is-zero"); err != nil {
		t.Errorf("zero-is-zero should be postulated: %v", err)
	}
	if _, err := th.LookupDefinition("one"); err != nil {
		t.Errorf("one should be defined: %v", err)
	}
}

func TestLoadRejectsUndeclaredIdentifier(t *testing.T) {
	th := theory.New()
	if err := Load(th, strings.NewReader("type nat 0\nconst zero : nat\naxiom bad : zero = ghost\n")); err == nil {
		t.Errorf("Load should fail on a reference to an undeclared constant")
	}
}

func TestLoadRejectsDefinitionTypeMismatch(t *testing.T) {
	th := theory.New()
	script := "type nat 0\ntype fruit 0\nconst zero : nat\ndefinition bad : fruit := zero\n"
	if err := Load(th, strings.NewReader(script)); err == nil {
		t.Errorf("Load should fail when the declared type doesn't match the definiens' type")
	}
}

func TestLoadParsesLambdaAndApplication(t *testing.T) {
	th := theory.New()
	script := "type nat 0\nconst zero : nat\nconst succ : nat -> nat\ndefinition applied-id : nat := (\\x:nat. x) zero\n"
	if err := Load(th, strings.NewReader(script)); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	d, err := th.LookupDefinition("applied-id")
	if err != nil {
		t.Fatalf("LookupDefinition failed: %v", err)
	}
	if !d.Var.Ty.Equal(expr.NewBaseType("nat")) {
		t.Errorf("applied-id : %s, want nat", d.Var.Ty)
	}
}
