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
	"fmt"

	"github.com/ulkb/ulkb/expr"
)

// EqualID is the name of the kernel's single built-in constant: the
// polymorphic equality "=" of type a -> a -> Bool. Every primitive rule of
// spec §4.4 is stated in terms of equations, so equality (unlike every
// other logical connective, all of which are defined constants installed
// by the prelude) must be wired into the kernel itself.
const EqualID = "="

// MkEqual builds the formula l = r, requiring l and r to share a type.
func MkEqual(l, r expr.Term) (expr.Term, error) {
	if !l.Type().Equal(r.Type()) {
		return nil, fmt.Errorf("MkEqual: %s : %s and %s : %s have differing types", l, l.Type(), r, r.Type())
	}
	ty := l.Type()
	eq := expr.Const{Name: EqualID, Ty: expr.NewFunctionType(ty, expr.NewFunctionType(ty, expr.BoolType))}
	lhs, err := expr.NewComb(eq, l)
	if err != nil {
		return nil, err
	}
	return expr.NewComb(lhs, r)
}

// IsEqual reports whether t is of the form l = r, returning its operands.
// Since a Formula is a Bool-typed term, IsEqual with both operands of type
// Bool is exactly the "p <-> q" shape referenced throughout spec §4.4 —
// Iff is equality specialized to Bool, not a separate primitive notion.
func IsEqual(t expr.Term) (l, r expr.Term, ok bool) {
	outer, isComb := t.(expr.Comb)
	if !isComb {
		return nil, nil, false
	}
	inner, isComb := outer.Fun.(expr.Comb)
	if !isComb {
		return nil, nil, false
	}
	eqConst, isConst := inner.Fun.(expr.Const)
	if !isConst || eqConst.Name != EqualID {
		return nil, nil, false
	}
	return inner.Arg, outer.Arg, true
}
