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

package serializer

import (
	"fmt"
	"strings"

	"github.com/ulkb/ulkb/expr"
	"github.com/ulkb/ulkb/kernel"
)

// Settings controls Print's output, the systems-language counterpart of
// ulkb's dynamic pretty-printer settings.
type Settings struct {
	// ShowTypes annotates every Var/Const occurrence with ": type".
	ShowTypes bool
	// Unicode selects "λ"/"→"/"↔"/"⊢" over their ASCII spellings; constants
	// such as forall, not and and are printed by name either way.
	Unicode bool
	// OmitOuterParens drops the outermost parenthesization of the result.
	OmitOuterParens bool
}

// DefaultSettings returns ASCII, untyped, fully-parenthesized output.
func DefaultSettings() Settings {
	return Settings{}
}

func (s Settings) lambda() string {
	if s.Unicode {
		return "λ"
	}
	return "\\"
}

// Print renders t under s.
func Print(t expr.Term, s Settings) string {
	out := printTerm(t, s)
	if s.OmitOuterParens {
		out = strings.TrimSuffix(strings.TrimPrefix(out, "("), ")")
	}
	return out
}

func printTerm(t expr.Term, s Settings) string {
	switch v := t.(type) {
	case expr.Var:
		if s.ShowTypes {
			return fmt.Sprintf("%s:%s", v.Name, printType(v.Ty, s))
		}
		return v.Name
	case expr.BVar:
		return fmt.Sprintf("#%d", v.Index)
	case expr.Const:
		if s.ShowTypes {
			return fmt.Sprintf("%s:%s", v.Name, printType(v.Ty, s))
		}
		return v.Name
	case expr.Comb:
		if l, r, ok := kernel.IsEqual(t); ok {
			op := "="
			if r.Type().Equal(expr.BoolType) {
				if s.Unicode {
					op = "↔"
				} else {
					op = "<->"
				}
			}
			return fmt.Sprintf("(%s %s %s)", printTerm(l, s), op, printTerm(r, s))
		}
		return fmt.Sprintf("(%s %s)", printTerm(v.Fun, s), printTerm(v.Arg, s))
	case expr.Abs:
		x, body := v.Open()
		return fmt.Sprintf("(%s%s:%s. %s)", s.lambda(), x.Name, printType(v.VarTy, s), printTerm(body, s))
	default:
		return "?"
	}
}

func printType(t expr.Type, s Settings) string {
	switch v := t.(type) {
	case expr.TypeVariable:
		return "'" + v.Name
	case expr.TypeApplication:
		if dom, cod, ok := expr.IsFunctionType(v); ok {
			arrow := "->"
			if s.Unicode {
				arrow = "→"
			}
			return fmt.Sprintf("(%s %s %s)", printType(dom, s), arrow, printType(cod, s))
		}
		if len(v.Args) == 0 {
			return v.Head.ID
		}
		parts := make([]string, len(v.Args))
		for i, a := range v.Args {
			parts[i] = printType(a, s)
		}
		return fmt.Sprintf("%s(%s)", v.Head.ID, strings.Join(parts, ", "))
	default:
		return "?"
	}
}

// PrintSequent renders a Sequent's hypotheses and conclusion under s.
func PrintSequent(seq kernel.Sequent, s Settings) string {
	hs := seq.Hyps()
	parts := make([]string, len(hs))
	for i, h := range hs {
		parts[i] = Print(h, s)
	}
	turnstile := "|-"
	if s.Unicode {
		turnstile = "⊢"
	}
	if len(parts) == 0 {
		return turnstile + " " + Print(seq.Concl(), s)
	}
	return strings.Join(parts, ", ") + " " + turnstile + " " + Print(seq.Concl(), s)
}
