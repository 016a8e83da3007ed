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

package walker

import (
	"testing"

	"github.com/ulkb/ulkb/expr"
	"github.com/ulkb/ulkb/kernel"
	"github.com/ulkb/ulkb/theory"
)

func TestWalkTermVisitsChildFirst(t *testing.T) {
	x := expr.Var{Name: "x", Ty: expr.BoolType}
	eq, err := kernel.MkEqual(x, x)
	if err != nil {
		t.Fatalf("MkEqual failed: %v", err)
	}
	term := expr.NewAbs(x, eq) // \x. x = x

	var order []Kind
	WalkTerm(term, func(n Node) { order = append(order, n.Kind) })

	// the equality const, two occurrences of x, two Combs (inner
	// application and the outer equation), then the outer Abs — children
	// always precede their parent in this child-first (post-order) walk.
	if len(order) != 6 {
		t.Fatalf("visited %d nodes, want 6: %v", len(order), order)
	}
	if order[len(order)-1] != KindAbs {
		t.Errorf("the root Abs should be visited last (post-order), got %v", order)
	}
	var combs, vars int
	for _, k := range order[:len(order)-1] {
		switch k {
		case KindComb:
			combs++
		case KindVar:
			vars++
		}
	}
	if combs != 2 || vars != 2 {
		t.Errorf("order = %v, want 2 Combs and 2 Vars among the non-root nodes", order)
	}
}

func TestWalkTypeLabelsTypeApplicationByHeadID(t *testing.T) {
	nat := expr.NewBaseType("nat")
	var labels []string
	WalkType(nat, func(n Node) { labels = append(labels, n.Label) })
	if len(labels) != 1 || labels[0] != "nat" {
		t.Errorf("WalkType(nat) labels = %v, want [\"nat\"]", labels)
	}
}

func TestWalkExtensionRootIsExtensionKind(t *testing.T) {
	nat := expr.NewBaseType("nat")
	ext := theory.NewConstant{C: expr.Const{Name: "zero", Ty: nat}}
	root := WalkExtension(ext, func(Node) {})
	if root.Kind != KindExtension || root.Label != "zero" {
		t.Errorf("WalkExtension root = %+v, want Kind=KindExtension Label=zero", root)
	}
	if len(root.Children) != 1 {
		t.Errorf("WalkExtension(NewConstant) should walk the constant's type as its one child")
	}
}
