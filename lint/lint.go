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

// Package lint is a standalone linter for theory.Theory values, grounded
// on the teacher's lint package (Severity levels, a Finding-per-problem
// shape) but checking kernel/theory-specific properties instead of
// Datalog programs.
package lint

import (
	"fmt"
	"regexp"

	"github.com/golang/glog"
	"go.uber.org/multierr"

	"github.com/ulkb/ulkb/expr"
	"github.com/ulkb/ulkb/theory"
)

// Severity levels for lint findings.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "info"
	}
}

// Finding is a single lint result.
type Finding struct {
	Rule     string
	Severity Severity
	ID       string // the offending extension's id, if any
	Message  string
}

func (f Finding) String() string {
	if f.ID == "" {
		return fmt.Sprintf("[%s] %s: %s", f.Severity, f.Rule, f.Message)
	}
	return fmt.Sprintf("[%s] %s: %s: %s", f.Severity, f.Rule, f.ID, f.Message)
}

var identStyle = regexp.MustCompile(`^[a-z][a-zA-Z0-9_]*$`)

// Check runs every rule against th and returns the findings plus a single
// aggregated multierr-joined error (nil if there were no SeverityError
// findings).
func Check(th *theory.Theory) ([]Finding, error) {
	var findings []Finding
	findings = append(findings, checkUnused(th)...)
	findings = append(findings, checkNaming(th)...)
	findings = append(findings, checkUnrecordedProofs(th)...)

	var errs_ error
	for _, f := range findings {
		glog.V(1).Infof("lint: %s", f)
		if f.Severity == SeverityError {
			errs_ = multierr.Append(errs_, fmt.Errorf("%s", f))
		}
	}
	return findings, errs_
}

// checkUnused flags axioms/definitions/theorems whose constant is never
// mentioned by any later extension — the theory-level analogue of the
// teacher's unused-predicate check.
func checkUnused(th *theory.Theory) []Finding {
	all := th.EnumerateExtensions(theory.EnumerateOptions{Offset: -1})
	mentioned := map[string]bool{}
	for _, entry := range all {
		for _, t := range extensionTerms(entry.Ext) {
			for _, c := range expr.Constants(t) {
				mentioned[c.Name] = true
			}
		}
	}
	var out []Finding
	for _, entry := range all {
		id := entry.Ext.ExtID()
		switch entry.Ext.(type) {
		case theory.NewAxiom, theory.NewDefinition, theory.NewTheorem:
			if !mentioned[id] {
				out = append(out, Finding{
					Rule: "unused", Severity: SeverityWarning, ID: id,
					Message: "never mentioned by any later extension",
				})
			}
		}
	}
	return out
}

func extensionTerms(e theory.Extension) []expr.Term {
	switch v := e.(type) {
	case theory.NewAxiom:
		return []expr.Term{v.Formula}
	case theory.NewDefinition:
		return []expr.Term{v.Definiens}
	case theory.NewTheorem:
		return append(append([]expr.Term{}, v.Seq.Hyps()...), v.Seq.Concl())
	default:
		return nil
	}
}

// checkNaming flags type-constructor/constant ids that are not
// lower-camel-case identifiers.
func checkNaming(th *theory.Theory) []Finding {
	var out []Finding
	for _, entry := range th.EnumerateExtensions(theory.EnumerateOptions{Offset: -1}) {
		var id string
		switch v := entry.Ext.(type) {
		case theory.NewTypeConstructor:
			id = v.TC.ID
		case theory.NewConstant:
			id = v.C.Name
		default:
			continue
		}
		if !identStyle.MatchString(id) {
			out = append(out, Finding{
				Rule: "naming", Severity: SeverityInfo, ID: id,
				Message: "id is not a lower-camel-case identifier",
			})
		}
	}
	return out
}

// checkUnrecordedProofs flags installed theorems that carry no proof term
// while the theory's settings request proof recording — grounded directly
// on spec.md §4.3's proof-term contract rather than any teacher analogue.
func checkUnrecordedProofs(th *theory.Theory) []Finding {
	if !th.Settings().RecordProofs {
		return nil
	}
	var out []Finding
	for _, entry := range th.EnumerateExtensions(theory.EnumerateOptions{Offset: -1}) {
		thm, ok := entry.Ext.(theory.NewTheorem)
		if !ok {
			continue
		}
		if thm.Seq.Proof() == nil {
			out = append(out, Finding{
				Rule: "unrecorded-proof", Severity: SeverityError, ID: thm.Name,
				Message: "theorem installed with no recorded proof term",
			})
		}
	}
	return out
}
