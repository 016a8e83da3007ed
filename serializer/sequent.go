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
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/ulkb/ulkb/kernel"
)

// SequentToAST converts a Sequent's hypotheses and conclusion into their
// interchange record; the proof term, if any, is never serialized (spec
// §4.3 treats it as an internal certificate, not wire data).
func SequentToAST(s kernel.Sequent) (*structpb.Struct, error) {
	hyps := make([]*structpb.Value, 0, len(s.Hyps()))
	for _, h := range s.Hyps() {
		rec, err := TermToAST(h)
		if err != nil {
			return nil, err
		}
		hyps = append(hyps, strct(rec))
	}
	concl, err := TermToAST(s.Concl())
	if err != nil {
		return nil, err
	}
	out, err := structpb.NewStruct(map[string]any{"class": "Sequent"})
	if err != nil {
		return nil, err
	}
	out.Fields["hyps"] = structpb.NewListValue(&structpb.ListValue{Values: hyps})
	out.Fields["concl"] = strct(concl)
	return out, nil
}
