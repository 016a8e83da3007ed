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
	"github.com/ulkb/ulkb/errs"
	"github.com/ulkb/ulkb/expr"
)

// Prover decides whether p holds, answering on its own terms (a decision
// procedure, an external solver process, a lookup table) — the contract
// spec.md §6.3 gives the out-of-scope TPTP/Z3/SPARQL back-ends: "take a
// formula and return a sequent on acceptance".
type Prover func(p expr.Formula) (bool, error)

// RuleExternal(p, prove) yields {} |- p if prove accepts p. Unlike every
// rule in rule_primitive.go/rule_derived.go, this is not checked by the
// nine primitives — its soundness rests entirely on prove, which is why it
// is named and recorded distinctly ("External", not any real rule name) in
// the proof term, so a later audit can tell a kernel-checked sequent from
// an externally-trusted one at a glance.
func RuleExternal(p expr.Formula, prove Prover) (Sequent, error) {
	if !expr.IsFormula(p) {
		return Sequent{}, errs.NewRuleError("External", "argument is not a formula of type Bool")
	}
	ok, err := prove(p)
	if err != nil {
		return Sequent{}, errs.NewRuleError("External", err.Error())
	}
	if !ok {
		return Sequent{}, errs.NewRuleError("External", "prover did not accept the formula")
	}
	return newSequent(nil, p, recordProof("External", nil)), nil
}
