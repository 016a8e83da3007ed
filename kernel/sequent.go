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

// Package kernel implements the inference core of the proof system: the
// Sequent type, the nine primitive rules that construct one (besides
// DefiningEquation for definitional extensions and the unchecked
// RuleExternal), a handful of representative derived rules, and the
// Conversion combinator library. No exported function in this package
// performs I/O or blocks; every rule is a pure function of its arguments
// (spec §5).
package kernel

import (
	"sort"
	"sync/atomic"

	"github.com/ulkb/ulkb/expr"
)

// recordProofs gates whether rule constructors attach a Proof to the
// Sequents they build. It is process-wide, toggled only through
// SetRecordProofs, and — per spec §9 — never observed by Sequent equality.
var recordProofs atomic.Bool

func init() {
	recordProofs.Store(true)
}

// SetRecordProofs enables or disables proof-term recording for every
// subsequent rule application in this process. theory.Settings.RecordProofs
// is the ambient surface that calls this; the kernel itself carries no
// settings object (spec §1 excludes the settings subsystem from the core).
func SetRecordProofs(on bool) { recordProofs.Store(on) }

// RecordProofs reports the current proof-recording setting.
func RecordProofs() bool { return recordProofs.Load() }

// Proof is a tree-shaped certificate: the rule name plus the
// argument sequents it was built from (spec §4.3). A leaf rule (Assume,
// Refl, Beta) has no Args.
type Proof struct {
	Rule string
	Args []Sequent
}

func recordProof(rule string, args []Sequent) *Proof {
	if !recordProofs.Load() {
		return nil
	}
	return &Proof{Rule: rule, Args: args}
}

// Sequent is a (hypothesis-set, conclusion) judgment. Its only constructor
// is a successful rule application — newSequent is unexported, so no code
// outside this package can fabricate one (spec §3.3).
type Sequent struct {
	hyps  map[string]expr.Formula
	concl expr.Formula
	proof *Proof
}

func newSequent(hyps map[string]expr.Formula, concl expr.Formula, proof *Proof) Sequent {
	return Sequent{hyps: hyps, concl: concl, proof: proof}
}

// Hyps returns the sequent's hypotheses, sorted by their canonical
// α-invariant key for determinism.
func (s Sequent) Hyps() []expr.Formula {
	out := make([]expr.Formula, 0, len(s.hyps))
	keys := make([]string, 0, len(s.hyps))
	for k := range s.hyps {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		out = append(out, s.hyps[k])
	}
	return out
}

// Concl returns the sequent's conclusion.
func (s Sequent) Concl() expr.Formula { return s.concl }

// Proof returns the sequent's proof certificate, or nil if proof recording
// was disabled when the sequent was built.
func (s Sequent) Proof() *Proof { return s.proof }

// Equal reports whether two sequents have the same hypothesis set (under
// α-equivalence) and α-equal conclusions. Proof state is never compared
// (spec §9).
func (s Sequent) Equal(o Sequent) bool {
	if !s.concl.Equal(o.concl) || len(s.hyps) != len(o.hyps) {
		return false
	}
	for k, h := range s.hyps {
		oh, ok := o.hyps[k]
		if !ok || !oh.Equal(h) {
			return false
		}
	}
	return true
}

// DigestKey renders the sequent into a string stable under α-equivalence,
// for use by Theory's content digest (spec §4.7, testable property 6).
func (s Sequent) DigestKey() string {
	hs := s.Hyps()
	parts := make([]string, len(hs))
	for i, h := range hs {
		parts[i] = expr.CanonicalKey(h)
	}
	out := ""
	for _, p := range parts {
		out += p + ";"
	}
	return out + "|-" + expr.CanonicalKey(s.concl)
}

func (s Sequent) String() string {
	hs := s.Hyps()
	if len(hs) == 0 {
		return "|- " + s.concl.String()
	}
	out := ""
	for i, h := range hs {
		if i > 0 {
			out += ", "
		}
		out += h.String()
	}
	return out + " |- " + s.concl.String()
}

func hypsFromList(fs ...expr.Formula) map[string]expr.Formula {
	m := make(map[string]expr.Formula, len(fs))
	for _, f := range fs {
		m[expr.CanonicalKey(f)] = f
	}
	return m
}

func unionHyps(a, b map[string]expr.Formula) map[string]expr.Formula {
	m := make(map[string]expr.Formula, len(a)+len(b))
	for k, v := range a {
		m[k] = v
	}
	for k, v := range b {
		m[k] = v
	}
	return m
}

func removeHyp(m map[string]expr.Formula, f expr.Formula) map[string]expr.Formula {
	key := expr.CanonicalKey(f)
	if _, ok := m[key]; !ok {
		return m
	}
	out := make(map[string]expr.Formula, len(m))
	for k, v := range m {
		if k != key {
			out[k] = v
		}
	}
	return out
}
