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

package seq

import (
	"fmt"
	"io"
	"strings"
)

// A Node is a derivation node that can render itself for debugging. A
// universally quantified premise is an infinite family and is elided by the
// writer; Kids returns only the finite premises.
type Node interface {
	// Label is a one-line description: rule name, conclusion and indices.
	Label() string
	// Kids returns the finite sub-derivations.
	Kids() []Node
}

// Dump writes an indented tree rendering of the derivation to w. It is
// diagnostic output for golden tests; nothing parses it back.
func Dump(w io.Writer, n Node) {
	dump(w, n, 0)
}

func dump(w io.Writer, n Node, depth int) {
	fmt.Fprintf(w, "%s%s\n", strings.Repeat("  ", depth), n.Label())
	for _, p := range n.Kids() {
		dump(w, p, depth+1)
	}
}
