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

// Package serializer implements spec.md §6.2's AST interchange format and
// pretty-printer. The interchange value is a *structpb.Struct tagged
// record ("class"/"args"), grounded on the teacher's
// proto2struct/proto2struct.go (a protoreflect.Message -> structpb-shaped
// ast.Constant converter) — the nearest ambient analogue of converting a
// typed in-memory value into a schema-less wire value.
package serializer

import (
	"fmt"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/ulkb/ulkb/errs"
	"github.com/ulkb/ulkb/expr"
)

func strct(s *structpb.Struct) *structpb.Value { return structpb.NewStructValue(s) }

// TypeToAST converts a Type into its interchange record.
func TypeToAST(t expr.Type) (*structpb.Struct, error) {
	switch v := t.(type) {
	case expr.TypeVariable:
		return structpb.NewStruct(map[string]any{
			"class": "TypeVariable",
			"name":  v.Name,
		})
	case expr.TypeApplication:
		s, err := structpb.NewStruct(map[string]any{
			"class": "TypeApplication",
			"head":  v.Head.ID,
			"arity": float64(v.Head.Arity),
		})
		if err != nil {
			return nil, err
		}
		args := make([]*structpb.Value, len(v.Args))
		for i, a := range v.Args {
			as, err := TypeToAST(a)
			if err != nil {
				return nil, err
			}
			args[i] = strct(as)
		}
		s.Fields["args"] = structpb.NewListValue(&structpb.ListValue{Values: args})
		return s, nil
	default:
		return nil, errs.NewSerializerError(fmt.Sprintf("unrecognized Type %T", t))
	}
}

// TypeFromAST rebuilds a Type from its interchange record.
func TypeFromAST(s *structpb.Struct) (expr.Type, error) {
	class := s.Fields["class"].GetStringValue()
	switch class {
	case "TypeVariable":
		return expr.TypeVariable{Name: s.Fields["name"].GetStringValue()}, nil
	case "TypeApplication":
		head := expr.TypeConstructor{
			ID:    s.Fields["head"].GetStringValue(),
			Arity: int(s.Fields["arity"].GetNumberValue()),
		}
		list := s.Fields["args"].GetListValue().GetValues()
		args := make([]expr.Type, len(list))
		for i, v := range list {
			a, err := TypeFromAST(v.GetStructValue())
			if err != nil {
				return nil, err
			}
			args[i] = a
		}
		return expr.TypeApplication{Head: head, Args: args}, nil
	default:
		return nil, errs.NewSerializerError("unrecognized type class " + class)
	}
}

// TermToAST converts a Term into its interchange record.
func TermToAST(t expr.Term) (*structpb.Struct, error) {
	switch v := t.(type) {
	case expr.Var:
		ty, err := TypeToAST(v.Ty)
		if err != nil {
			return nil, err
		}
		s, err := structpb.NewStruct(map[string]any{"class": "Var", "name": v.Name})
		if err != nil {
			return nil, err
		}
		s.Fields["type"] = strct(ty)
		return s, nil
	case expr.BVar:
		ty, err := TypeToAST(v.Ty)
		if err != nil {
			return nil, err
		}
		s, err := structpb.NewStruct(map[string]any{"class": "BVar", "index": float64(v.Index)})
		if err != nil {
			return nil, err
		}
		s.Fields["type"] = strct(ty)
		return s, nil
	case expr.Const:
		ty, err := TypeToAST(v.Ty)
		if err != nil {
			return nil, err
		}
		s, err := structpb.NewStruct(map[string]any{"class": "Const", "name": v.Name})
		if err != nil {
			return nil, err
		}
		s.Fields["type"] = strct(ty)
		return s, nil
	case expr.Comb:
		fn, err := TermToAST(v.Fun)
		if err != nil {
			return nil, err
		}
		arg, err := TermToAST(v.Arg)
		if err != nil {
			return nil, err
		}
		s, err := structpb.NewStruct(map[string]any{"class": "Comb"})
		if err != nil {
			return nil, err
		}
		s.Fields["fun"] = strct(fn)
		s.Fields["arg"] = strct(arg)
		return s, nil
	case expr.Abs:
		ty, err := TypeToAST(v.VarTy)
		if err != nil {
			return nil, err
		}
		body, err := TermToAST(v.Body)
		if err != nil {
			return nil, err
		}
		s, err := structpb.NewStruct(map[string]any{"class": "Abs", "hint": v.Hint})
		if err != nil {
			return nil, err
		}
		s.Fields["varType"] = strct(ty)
		s.Fields["body"] = strct(body)
		return s, nil
	default:
		return nil, errs.NewSerializerError(fmt.Sprintf("unrecognized Term %T", t))
	}
}

// TermFromAST rebuilds a Term from its interchange record.
func TermFromAST(s *structpb.Struct) (expr.Term, error) {
	class := s.Fields["class"].GetStringValue()
	switch class {
	case "Var":
		ty, err := TypeFromAST(s.Fields["type"].GetStructValue())
		if err != nil {
			return nil, err
		}
		return expr.Var{Name: s.Fields["name"].GetStringValue(), Ty: ty}, nil
	case "BVar":
		ty, err := TypeFromAST(s.Fields["type"].GetStructValue())
		if err != nil {
			return nil, err
		}
		return expr.BVar{Index: int(s.Fields["index"].GetNumberValue()), Ty: ty}, nil
	case "Const":
		ty, err := TypeFromAST(s.Fields["type"].GetStructValue())
		if err != nil {
			return nil, err
		}
		return expr.Const{Name: s.Fields["name"].GetStringValue(), Ty: ty}, nil
	case "Comb":
		fn, err := TermFromAST(s.Fields["fun"].GetStructValue())
		if err != nil {
			return nil, err
		}
		arg, err := TermFromAST(s.Fields["arg"].GetStructValue())
		if err != nil {
			return nil, err
		}
		return expr.Comb{Fun: fn, Arg: arg}, nil
	case "Abs":
		ty, err := TypeFromAST(s.Fields["varType"].GetStructValue())
		if err != nil {
			return nil, err
		}
		body, err := TermFromAST(s.Fields["body"].GetStructValue())
		if err != nil {
			return nil, err
		}
		return expr.Abs{Hint: s.Fields["hint"].GetStringValue(), VarTy: ty, Body: body}, nil
	default:
		return nil, errs.NewSerializerError("unrecognized term class " + class)
	}
}
