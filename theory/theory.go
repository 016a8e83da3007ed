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
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sync"

	"github.com/golang/glog"
	"go.uber.org/multierr"

	"github.com/ulkb/ulkb/errs"
	"github.com/ulkb/ulkb/expr"
	"github.com/ulkb/ulkb/kernel"
)

// Settings holds the configuration of a Theory — the systems-language
// counterpart of ulkb's dynamic TheorySettings mixin (SPEC_FULL.md §A.3).
// There is no dynamic attribute protocol here: callers set fields on a
// plain struct.
type Settings struct {
	// RecordProofs mirrors kernel.SetRecordProofs for sequents built while
	// this theory is in use; it defaults to true, matching ulkb's
	// TheorySettings.record_proofs default.
	RecordProofs bool
	// GeneratedIDPrefix is carried in the settings (default "_g"); no code
	// in this package reads it.
	GeneratedIDPrefix string
}

// DefaultSettings returns the conventional defaults.
func DefaultSettings() Settings {
	return Settings{RecordProofs: true, GeneratedIDPrefix: "_g"}
}

// Theory is an ordered, append-only log of Extensions plus incrementally
// maintained per-kind indices (spec §4.7). The zero value is not usable;
// construct with New.
type Theory struct {
	mu sync.Mutex

	args          []Extension
	preludeOffset int

	byID            map[string]Extension
	typeConstrs     map[string]expr.TypeConstructor
	constants       map[string]expr.Const
	axioms          map[string]NewAxiom
	definitions     map[string]NewDefinition
	theorems        map[string]NewTheorem
	pythonAliases   map[string]NewPythonTypeAlias

	digest      string
	digestValid bool

	settings Settings
}

// New returns a Theory with default settings whose log holds only the
// built-in Bool and fun type constructors; the prelude boundary is set
// just after them, so Reset(nil) keeps them.
func New() *Theory {
	th := &Theory{
		byID:          map[string]Extension{},
		typeConstrs:   map[string]expr.TypeConstructor{},
		constants:     map[string]expr.Const{},
		axioms:        map[string]NewAxiom{},
		definitions:   map[string]NewDefinition{},
		theorems:      map[string]NewTheorem{},
		pythonAliases: map[string]NewPythonTypeAlias{},
		settings:      DefaultSettings(),
	}
	th.append(NewTypeConstructor{TC: expr.BoolConstructor})
	th.append(NewTypeConstructor{TC: expr.FunConstructor})
	th.preludeOffset = len(th.args)
	return th
}

// Settings returns the theory's current settings.
func (t *Theory) Settings() Settings {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.settings
}

// SetSettings replaces the theory's settings and applies RecordProofs to
// the kernel's process-wide proof-recording flag.
func (t *Theory) SetSettings(s Settings) {
	t.mu.Lock()
	t.settings = s
	t.mu.Unlock()
	kernel.SetRecordProofs(s.RecordProofs)
}

// MarkPrelude records the current length of the extension log as the
// prelude/user-extension boundary (spec's prelude_offset). Called once,
// immediately after a prelude package finishes bootstrapping a Theory.
func (t *Theory) MarkPrelude() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.preludeOffset = len(t.args)
}

func typeConstrKey(tc expr.TypeConstructor) string { return tc.String() }

// allTypeConstructorsDeclared reports whether every type constructor
// mentioned by ty is present in the theory's index.
func (t *Theory) allTypeConstructorsDeclared(ty expr.Type) error {
	for _, tc := range expr.TypeConstructors(ty) {
		if _, ok := t.typeConstrs[typeConstrKey(tc)]; !ok {
			return fmt.Errorf("type constructor %s is not declared", tc)
		}
	}
	return nil
}

func (t *Theory) allTypeConstructorsDeclaredInTerm(term expr.Term) error {
	for _, tc := range expr.TermTypeConstructors(term) {
		if _, ok := t.typeConstrs[typeConstrKey(tc)]; !ok {
			return fmt.Errorf("type constructor %s is not declared", tc)
		}
	}
	return nil
}

// Extend validates and appends ext to the theory's log, per the six-step
// ordered check of spec §4.7. Validation is fatal on the first violated
// top-level step; within NewDefinition's own several independent checks,
// violations are aggregated with multierr so a caller sees every problem
// at once.
//
// A structurally identical re-insertion (ext.Equal to an existing log
// entry) is a silent no-op that returns the existing entry — SPEC_FULL.md
// §E resolves spec §9's Open Question 1 this way, following
// ulkb/theory.py's `if ext in self.args: return ext`.
func (t *Theory) Extend(ext Extension) (Extension, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for _, existing := range t.args {
		if existing.Equal(ext) {
			return existing, nil
		}
	}

	id := ext.ExtID()
	if id != "" {
		if _, ok := t.byID[id]; ok {
			return nil, errs.NewExtensionError(id, "extension already exists")
		}
	}

	switch e := ext.(type) {
	case NewTypeConstructor:
		// no further checks: a type constructor declaration is always
		// well-formed on its own.
	case NewConstant:
		if err := t.allTypeConstructorsDeclared(e.C.Ty); err != nil {
			return nil, errs.NewExtensionError(id, err.Error())
		}
	case NewAxiom:
		if !expr.IsFormula(e.Formula) {
			return nil, errs.NewExtensionError(id, "axiom body is not a formula of type Bool")
		}
		if err := t.allTypeConstructorsDeclaredInTerm(e.Formula); err != nil {
			return nil, errs.NewExtensionError(id, err.Error())
		}
		implicit := NewConstant{C: expr.Const{Name: e.Name, Ty: expr.BoolType}}
		if err := t.installConstant(implicit); err != nil {
			return nil, errs.NewExtensionError(id, err.Error())
		}
	case NewDefinition:
		if err := t.checkDefinition(e); err != nil {
			return nil, errs.NewExtensionError(id, err.Error())
		}
		implicit := NewConstant{C: expr.Const{Name: e.Var.Name, Ty: e.Var.Ty}}
		if err := t.installConstant(implicit); err != nil {
			return nil, errs.NewExtensionError(id, err.Error())
		}
	case NewTheorem:
		for _, f := range append(e.Seq.Hyps(), e.Seq.Concl()) {
			if err := t.allTypeConstructorsDeclaredInTerm(f); err != nil {
				return nil, errs.NewExtensionError(id, err.Error())
			}
		}
		implicit := NewConstant{C: expr.Const{Name: e.Name, Ty: expr.BoolType}}
		if err := t.installConstant(implicit); err != nil {
			return nil, errs.NewExtensionError(id, err.Error())
		}
	case NewPythonTypeAlias:
		if err := t.allTypeConstructorsDeclared(e.ULKBType); err != nil {
			return nil, errs.NewExtensionError(id, err.Error())
		}
	case NewTypeSpec:
		// notation only; nothing further to validate.
	default:
		return nil, errs.NewExtensionError(id, fmt.Sprintf("unknown extension kind %T", ext))
	}

	t.append(ext)
	glog.V(1).Infof("theory: extended with %s", ext)
	return ext, nil
}

// installConstant is Extend's recursive call for the implicit NewConstant
// synthesized by NewAxiom/NewDefinition/NewTheorem (spec §4.7 steps 3-5).
// It is not re-entrant through the public Extend/dup-check path because
// the implicit constant's id was already confirmed free by the caller's
// own duplicate check (constants and their introducing axiom/definition/
// theorem never collide: they share one id namespace by construction).
func (t *Theory) installConstant(nc NewConstant) error {
	if _, ok := t.byID[nc.C.Name]; ok {
		return fmt.Errorf("extension already exists: %s", nc.C.Name)
	}
	if err := t.allTypeConstructorsDeclared(nc.C.Ty); err != nil {
		return err
	}
	t.append(nc)
	return nil
}

// checkDefinition performs spec §4.8's well-formedness checks on a
// NewDefinition, aggregating every violation with multierr rather than
// stopping at the first.
func (t *Theory) checkDefinition(e NewDefinition) error {
	var errs_ error
	if !expr.IsClosed(e.Definiens) {
		errs_ = multierr.Append(errs_, fmt.Errorf("definiens of %s is not closed", e.Var.Name))
	}
	vTypeVars := map[string]bool{}
	for _, tv := range expr.TypeVariables(e.Var.Ty) {
		vTypeVars[tv.Name] = true
	}
	for _, tv := range expr.TermTypeVariables(e.Definiens) {
		if !vTypeVars[tv.Name] {
			errs_ = multierr.Append(errs_, fmt.Errorf("type variable %s of the definiens does not occur in %s's type", tv.Name, e.Var.Name))
		}
	}
	if err := t.allTypeConstructorsDeclaredInTerm(e.Definiens); err != nil {
		errs_ = multierr.Append(errs_, err)
	}
	for _, c := range expr.Constants(e.Definiens) {
		declared, ok := t.constants[c.Name]
		if !ok {
			errs_ = multierr.Append(errs_, fmt.Errorf("constant %s is not declared", c.Name))
			continue
		}
		if !expr.MatchesType(declared.Ty, c.Ty) {
			errs_ = multierr.Append(errs_, fmt.Errorf("constant %s used at type %s but declared at (polymorphic) type %s", c.Name, c.Ty, declared.Ty))
		}
	}
	return errs_
}

// append records ext in the log and every per-kind index; callers must
// hold t.mu.
func (t *Theory) append(ext Extension) {
	t.args = append(t.args, ext)
	if id := ext.ExtID(); id != "" {
		t.byID[id] = ext
	}
	switch e := ext.(type) {
	case NewTypeConstructor:
		t.typeConstrs[typeConstrKey(e.TC)] = e.TC
	case NewConstant:
		t.constants[e.C.Name] = e.C
	case NewAxiom:
		t.axioms[e.Name] = e
	case NewDefinition:
		t.definitions[e.Var.Name] = e
	case NewTheorem:
		t.theorems[e.Name] = e
	case NewPythonTypeAlias:
		t.pythonAliases[e.Name] = e
	}
	t.digestValid = false
}

// unindex removes ext from every per-kind index; callers must hold t.mu.
func (t *Theory) unindex(ext Extension) {
	if id := ext.ExtID(); id != "" {
		delete(t.byID, id)
	}
	switch e := ext.(type) {
	case NewTypeConstructor:
		delete(t.typeConstrs, typeConstrKey(e.TC))
	case NewConstant:
		delete(t.constants, e.C.Name)
	case NewAxiom:
		delete(t.axioms, e.Name)
	case NewDefinition:
		delete(t.definitions, e.Var.Name)
	case NewTheorem:
		delete(t.theorems, e.Name)
	case NewPythonTypeAlias:
		delete(t.pythonAliases, e.Name)
	}
	t.digestValid = false
}

// Reset rolls back the theory to the state immediately before a chosen
// point (spec §4.7):
//
//	nil         -> reset to the prelude boundary
//	int n >= 0  -> drop everything at index >= n
//	int n < 0   -> drop the last -n extensions
//	string id   -> drop from the extension introducing id onward
//	Extension   -> drop from that extension onward
func (t *Theory) Reset(x any) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	idx := 0
	switch v := x.(type) {
	case nil:
		idx = t.preludeOffset
	case int:
		if v >= 0 {
			idx = v
		} else {
			idx = len(t.args) + v
		}
	case string:
		i, ok := t.indexOfID(v)
		if !ok {
			return errs.NewLookupError("extension", v)
		}
		idx = i
	case Extension:
		i, ok := t.indexOfExtension(v)
		if !ok {
			return errs.NewLookupError("extension", v.ExtID())
		}
		idx = i
	default:
		return fmt.Errorf("Reset: unsupported argument type %T", x)
	}
	if idx < 0 {
		idx = 0
	}
	if idx > len(t.args) {
		idx = len(t.args)
	}
	for i := len(t.args) - 1; i >= idx; i-- {
		t.unindex(t.args[i])
	}
	t.args = t.args[:idx]
	if t.preludeOffset > idx {
		t.preludeOffset = idx
	}
	t.digestValid = false
	glog.V(1).Infof("theory: reset to index %d", idx)
	return nil
}

func (t *Theory) indexOfID(id string) (int, bool) {
	for i, e := range t.args {
		if e.ExtID() == id {
			return i, true
		}
	}
	return 0, false
}

func (t *Theory) indexOfExtension(ext Extension) (int, bool) {
	for i, e := range t.args {
		if e.Equal(ext) {
			return i, true
		}
	}
	return 0, false
}

// Len returns the number of extensions currently in the log.
func (t *Theory) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.args)
}

// Digest returns a hex-encoded content digest of the theory's current
// state, cached until the next mutation (spec §4.7, testable property 6).
func (t *Theory) Digest() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.digestValid {
		return t.digest
	}
	h := sha256.New()
	for _, e := range t.args {
		h.Write([]byte(digestKeyOf(e)))
		h.Write([]byte{0})
	}
	t.digest = hex.EncodeToString(h.Sum(nil))
	t.digestValid = true
	return t.digest
}

func digestKeyOf(e Extension) string {
	switch v := e.(type) {
	case NewTypeConstructor:
		return "tc:" + v.TC.String()
	case NewConstant:
		return "c:" + v.C.Name + ":" + v.C.Ty.String()
	case NewAxiom:
		return "ax:" + v.Name + ":" + expr.CanonicalKey(v.Formula)
	case NewDefinition:
		return "def:" + v.Var.Name + ":" + v.Var.Ty.String() + ":" + expr.CanonicalKey(v.Definiens)
	case NewTheorem:
		return "thm:" + v.Name + ":" + v.Seq.DigestKey()
	case NewPythonTypeAlias:
		return "pyalias:" + v.Name + ":" + v.Native + ":" + v.ULKBType.String()
	case NewTypeSpec:
		return "typespec:" + v.Name
	default:
		return e.String()
	}
}
