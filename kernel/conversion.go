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

// The Conversion combinator library of spec §4.6.
package kernel

import (
	"github.com/ulkb/ulkb/errs"
	"github.com/ulkb/ulkb/expr"
)

// Conversion is a total function from a term t to a sequent |- t = t', or a
// failure. Conversions are ordinary Go values (func types), not objects
// with Clone semantics — composed freely by value, matching spec §9's
// "boxed function objects" guidance.
type Conversion func(expr.Term) (Sequent, error)

// Pass is the identity conversion: Pass(t) = Refl(t).
func Pass(t expr.Term) (Sequent, error) {
	return Refl(t)
}

// Fail always fails.
func Fail(t expr.Term) (Sequent, error) {
	return Sequent{}, errs.NewConversionError("Fail", "unconditional failure")
}

// Then composes c1 then c2: apply c1 to t giving |- t = t', apply c2 to t'
// giving |- t' = t'', and return Trans of the two.
func Then(c1, c2 Conversion) Conversion {
	return func(t expr.Term) (Sequent, error) {
		s1, err := c1(t)
		if err != nil {
			return Sequent{}, err
		}
		_, t2, ok := IsEqual(s1.concl)
		if !ok {
			return Sequent{}, errs.NewConversionError("Then", "inner conversion did not produce an equation")
		}
		s2, err := c2(t2)
		if err != nil {
			return Sequent{}, err
		}
		return Trans(s1, s2)
	}
}

// OrElse tries c1, falling back to c2 on any failure.
func OrElse(c1, c2 Conversion) Conversion {
	return func(t expr.Term) (Sequent, error) {
		s, err := c1(t)
		if err == nil {
			return s, nil
		}
		return c2(t)
	}
}

// Try(c) = c | Pass: never fails.
func Try(c Conversion) Conversion {
	return OrElse(c, Pass)
}

// Repeat(c) = (c >> Repeat(c)) | Pass, applied with an explicit step budget
// to guarantee termination even if c never fails on its own fixed point
// (spec §9's "expose a caller depth/step budget" guidance for repeat).
// maxSteps <= 0 means unbounded (caller accepts the termination risk spec
// §5 calls out).
func Repeat(c Conversion, maxSteps int) Conversion {
	var rep func(steps int) Conversion
	rep = func(steps int) Conversion {
		return func(t expr.Term) (Sequent, error) {
			if maxSteps > 0 && steps >= maxSteps {
				return Pass(t)
			}
			return Try(Then(c, rep(steps+1)))(t)
		}
	}
	return rep(0)
}

// Changed(c): apply c; fail if the two sides are alpha-equal (i.e. c made
// no progress).
func Changed(c Conversion) Conversion {
	return func(t expr.Term) (Sequent, error) {
		s, err := c(t)
		if err != nil {
			return Sequent{}, err
		}
		l, r, ok := IsEqual(s.concl)
		if ok && l.Equal(r) {
			return Sequent{}, errs.NewConversionError("Changed", "conversion made no progress")
		}
		return s, nil
	}
}

// AlphaConv(y) renames t's outermost binder to y, failing if t is not an
// Abstraction.
func AlphaConv(y expr.Var) Conversion {
	return func(t expr.Term) (Sequent, error) {
		a, ok := t.(expr.Abs)
		if !ok {
			return Sequent{}, errs.NewConversionError("AlphaConv", "term is not an abstraction")
		}
		return AlphaRename(y, a)
	}
}

// BetaConv is RuleBeta viewed as a Conversion.
func BetaConv(t expr.Term) (Sequent, error) {
	return Beta(t)
}
