// Copyright 2025 LinLog Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package seq holds the vocabulary shared by the sequent systems: the
// focusing arrow and the derivation debug writer.
package seq

import (
	"fmt"
	"strings"

	"linlog.dev/go/ll"
)

// An Arrow is the mode of a focused sequent: Up for the negative phase,
// Down for the positive phase.
type Arrow interface {
	arrow()
	String() string
}

// Up is the negative phase. List is the pending output, an ordered sequence
// consumed left to right; it is the one context that is not a multiset.
type Up struct {
	List []ll.Formula
}

// Down is the positive phase, focused on exactly one formula.
type Down struct {
	F ll.Formula
}

func (Up) arrow()   {}
func (Down) arrow() {}

func (x Up) String() string {
	parts := make([]string, len(x.List))
	for i, f := range x.List {
		parts[i] = fmt.Sprint(f)
	}
	return "⇑ [" + strings.Join(parts, ", ") + "]"
}

func (x Down) String() string { return "⇓ " + fmt.Sprint(x.F) }
