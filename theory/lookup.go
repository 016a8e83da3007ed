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
	"regexp"
	"strings"

	"github.com/ulkb/ulkb/errs"
	"github.com/ulkb/ulkb/expr"
)

// EnumerateOptions filters EnumerateExtensions (spec §4.7 "Lookup").
type EnumerateOptions struct {
	// Offset starts iteration at this index (default: the prelude
	// boundary; pass a negative value to mean "from 0").
	Offset int
	// IDPattern, if non-nil, restricts results to ids it matches.
	IDPattern *regexp.Regexp
	// Kind, if non-nil, restricts results to extensions whose dynamic
	// type equals a sample value's (e.g. NewAxiom{}).
	Kind Extension
	// Mentions, if non-nil, restricts results to extensions whose
	// components mention every constant and type constructor occurring in
	// Mentions. Only axioms, definitions and theorems are tested; every
	// other kind of extension carries no term and always passes this
	// filter.
	Mentions expr.Term
	// Limit caps the number of results; 0 means unlimited.
	Limit int
}

// EnumerateExtensions iterates (index, extension) pairs per opts.
func (t *Theory) EnumerateExtensions(opts EnumerateOptions) []struct {
	Index int
	Ext   Extension
} {
	t.mu.Lock()
	defer t.mu.Unlock()

	offset := opts.Offset
	if offset == 0 {
		offset = t.preludeOffset
	}
	if offset < 0 {
		offset = 0
	}

	var wantConstants map[string]bool
	var wantTypeConstrs map[string]bool
	if opts.Mentions != nil {
		wantConstants = map[string]bool{}
		for _, c := range expr.Constants(opts.Mentions) {
			wantConstants[c.Name] = true
		}
		wantTypeConstrs = map[string]bool{}
		for _, tc := range expr.TermTypeConstructors(opts.Mentions) {
			wantTypeConstrs[typeConstrKey(tc)] = true
		}
	}

	var out []struct {
		Index int
		Ext   Extension
	}
	for i := offset; i < len(t.args); i++ {
		e := t.args[i]
		if opts.IDPattern != nil && !opts.IDPattern.MatchString(e.ExtID()) {
			continue
		}
		if opts.Kind != nil && extKind(e) != extKind(opts.Kind) {
			continue
		}
		if opts.Mentions != nil && !mentionsAll(e, wantConstants, wantTypeConstrs) {
			continue
		}
		out = append(out, struct {
			Index int
			Ext   Extension
		}{i, e})
		if opts.Limit > 0 && len(out) >= opts.Limit {
			break
		}
	}
	return out
}

func extKind(e Extension) string {
	switch e.(type) {
	case NewTypeConstructor:
		return "type_constructor"
	case NewConstant:
		return "constant"
	case NewAxiom:
		return "axiom"
	case NewDefinition:
		return "definition"
	case NewTheorem:
		return "theorem"
	case NewPythonTypeAlias:
		return "python_type_alias"
	case NewTypeSpec:
		return "type_spec"
	default:
		return "unknown"
	}
}

func mentionsAll(e Extension, wantConstants, wantTypeConstrs map[string]bool) bool {
	var terms []expr.Term
	switch v := e.(type) {
	case NewAxiom:
		terms = []expr.Term{v.Formula}
	case NewDefinition:
		terms = []expr.Term{v.Var, v.Definiens}
	case NewTheorem:
		terms = append(append([]expr.Term{}, v.Seq.Hyps()...), v.Seq.Concl())
	default:
		return true
	}
	haveConstants := map[string]bool{}
	haveTypeConstrs := map[string]bool{}
	for _, term := range terms {
		for _, c := range expr.Constants(term) {
			haveConstants[c.Name] = true
		}
		for _, tc := range expr.TermTypeConstructors(term) {
			haveTypeConstrs[typeConstrKey(tc)] = true
		}
	}
	for name := range wantConstants {
		if !haveConstants[name] {
			return false
		}
	}
	for key := range wantTypeConstrs {
		if !haveTypeConstrs[key] {
			return false
		}
	}
	return true
}

// LookupExtension returns the extension installed under id.
func (t *Theory) LookupExtension(id string) (Extension, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	e, ok := t.byID[id]
	if !ok {
		return nil, errs.NewLookupError("extension", id)
	}
	return e, nil
}

// LookupTypeConstructor returns the type constructor declared under id.
func (t *Theory) LookupTypeConstructor(id string) (expr.TypeConstructor, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, tc := range t.typeConstrs {
		if tc.ID == id {
			return tc, nil
		}
	}
	return expr.TypeConstructor{}, errs.NewLookupError("type constructor", id)
}

// LookupConstant returns the constant declared under id.
func (t *Theory) LookupConstant(id string) (expr.Const, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	c, ok := t.constants[id]
	if !ok {
		return expr.Const{}, errs.NewLookupError("constant", id)
	}
	return c, nil
}

// LookupAxiom returns the axiom installed under id.
func (t *Theory) LookupAxiom(id string) (NewAxiom, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	a, ok := t.axioms[id]
	if !ok {
		return NewAxiom{}, errs.NewLookupError("axiom", id)
	}
	return a, nil
}

// LookupDefinition returns the definition installed under id.
func (t *Theory) LookupDefinition(id string) (NewDefinition, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	d, ok := t.definitions[id]
	if !ok {
		return NewDefinition{}, errs.NewLookupError("definition", id)
	}
	return d, nil
}

// LookupTheorem returns the theorem installed under id.
func (t *Theory) LookupTheorem(id string) (NewTheorem, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	th, ok := t.theorems[id]
	if !ok {
		return NewTheorem{}, errs.NewLookupError("theorem", id)
	}
	return th, nil
}

// LookupPythonTypeAlias returns the python type alias installed under id.
func (t *Theory) LookupPythonTypeAlias(id string) (NewPythonTypeAlias, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	a, ok := t.pythonAliases[id]
	if !ok {
		return NewPythonTypeAlias{}, errs.NewLookupError("python type alias", id)
	}
	return a, nil
}

// ShowExtensions renders the theory's log, one extension per line, in
// insertion order — the systems-language analogue of ulkb's
// Theory.show_extensions debugging helper.
func (t *Theory) ShowExtensions() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	var b strings.Builder
	for i, e := range t.args {
		if i == t.preludeOffset {
			b.WriteString("-- end of prelude --\n")
		}
		b.WriteString(e.String())
		b.WriteString("\n")
	}
	return b.String()
}
