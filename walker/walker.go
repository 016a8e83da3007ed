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

// Package walker implements the read-only, child-first tree walk of
// spec.md §6.3: the only view of a Term/Type/Extension that an external
// back-end (a pretty-printer, a converter, an out-of-scope solver) needs,
// without depending on expr/theory's internal representation.
package walker

import (
	"github.com/ulkb/ulkb/expr"
	"github.com/ulkb/ulkb/theory"
)

// Kind tags the shape of a visited Node.
type Kind int

const (
	KindTypeVariable Kind = iota
	KindTypeApplication
	KindVar
	KindBVar
	KindConst
	KindComb
	KindAbs
	KindExtension
)

// Node is the tuple presented to a Visitor at each step of the walk:
// (kind, head label, children, type annotation).
type Node struct {
	Kind     Kind
	Label    string
	Children []Node
	Type     expr.Type
}

// Visitor receives each Node after its children have already been visited
// (child-first, i.e. post-order) — the order a pretty-printer or AST
// serializer needs to build its own output bottom-up.
type Visitor func(n Node)

// WalkType walks a Type, invoking visit child-first.
func WalkType(t expr.Type, visit Visitor) Node {
	switch v := t.(type) {
	case expr.TypeVariable:
		n := Node{Kind: KindTypeVariable, Label: v.Name}
		visit(n)
		return n
	case expr.TypeApplication:
		children := make([]Node, len(v.Args))
		for i, a := range v.Args {
			children[i] = WalkType(a, visit)
		}
		n := Node{Kind: KindTypeApplication, Label: v.Head.ID, Children: children}
		visit(n)
		return n
	default:
		n := Node{Label: "?"}
		visit(n)
		return n
	}
}

// WalkTerm walks a Term, invoking visit child-first.
func WalkTerm(t expr.Term, visit Visitor) Node {
	switch v := t.(type) {
	case expr.Var:
		n := Node{Kind: KindVar, Label: v.Name, Type: v.Ty}
		visit(n)
		return n
	case expr.BVar:
		n := Node{Kind: KindBVar, Type: v.Ty}
		visit(n)
		return n
	case expr.Const:
		n := Node{Kind: KindConst, Label: v.Name, Type: v.Ty}
		visit(n)
		return n
	case expr.Comb:
		fun := WalkTerm(v.Fun, visit)
		arg := WalkTerm(v.Arg, visit)
		n := Node{Kind: KindComb, Children: []Node{fun, arg}, Type: v.Type()}
		visit(n)
		return n
	case expr.Abs:
		x, body := v.Open()
		child := WalkTerm(body, visit)
		n := Node{Kind: KindAbs, Label: x.Name, Children: []Node{child}, Type: v.Type()}
		visit(n)
		return n
	default:
		n := Node{Label: "?"}
		visit(n)
		return n
	}
}

// WalkExtension walks the terms/types carried by a theory.Extension,
// presenting the extension itself as the final (root) Node.
func WalkExtension(e theory.Extension, visit Visitor) Node {
	var children []Node
	switch v := e.(type) {
	case theory.NewTypeConstructor:
		// no Term/Type payload beyond the declaration itself.
	case theory.NewConstant:
		children = []Node{WalkType(v.C.Ty, visit)}
	case theory.NewAxiom:
		children = []Node{WalkTerm(v.Formula, visit)}
	case theory.NewDefinition:
		children = []Node{WalkTerm(v.Var, visit), WalkTerm(v.Definiens, visit)}
	case theory.NewTheorem:
		for _, h := range v.Seq.Hyps() {
			children = append(children, WalkTerm(h, visit))
		}
		children = append(children, WalkTerm(v.Seq.Concl(), visit))
	case theory.NewPythonTypeAlias:
		children = []Node{WalkType(v.ULKBType, visit)}
	case theory.NewTypeSpec:
		// notation only.
	}
	n := Node{Kind: KindExtension, Label: e.ExtID(), Children: children}
	visit(n)
	return n
}
