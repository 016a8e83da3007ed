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

// DefiningEquation returns |- c = definiens with no hypotheses: the fact a
// conservative definitional extension (spec §4.8, component 9 of §2)
// grants for free once theory.Theory has accepted the well-formedness
// checks. It is not one of the nine primitive rules of §4.4 — no
// consistency proof is required of the caller, by design of the
// definition mechanism itself — but it is still the kernel, not theory,
// that fabricates the Sequent, preserving the "only rule constructors make
// sequents" invariant of spec §3.3.
func DefiningEquation(c expr.Const, definiens expr.Term) (Sequent, error) {
	eq, err := MkEqual(c, definiens)
	if err != nil {
		return Sequent{}, errs.NewRuleError("Definition", err.Error())
	}
	return newSequent(nil, eq, recordProof("Definition", nil)), nil
}
