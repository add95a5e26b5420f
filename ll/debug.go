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

package ll

import (
	"fmt"
	"strings"
)

// Debug notation for formulas and terms. This is diagnostic output for
// tests and error messages, not a surface syntax: there is no parser for it.

func (t *Var) String() string { return t.Name }

func (t *Num) String() string { return t.X.String() }

func (t *Fun) String() string {
	if len(t.Args) == 0 {
		return t.Name
	}
	return t.Name + "(" + joinTerms(t.Args) + ")"
}

func (f *Atom) String() string {
	s := f.Name
	if len(f.Args) > 0 {
		s += "(" + joinTerms(f.Args) + ")"
	}
	if f.Sign {
		s += "⊥"
	}
	return s
}

func (f *One) String() string    { return "1" }
func (f *Bottom) String() string { return "⊥" }
func (f *Top) String() string    { return "⊤" }
func (f *Zero) String() string   { return "0" }

func (f *Tensor) String() string { return binop(f.X, "⊗", f.Y) }
func (f *Par) String() string    { return binop(f.X, "⅋", f.Y) }
func (f *Plus) String() string   { return binop(f.X, "⊕", f.Y) }
func (f *With) String() string   { return binop(f.X, "&", f.Y) }

func (f *Bang) String() string  { return "!" + atomic(f.X) }
func (f *Quest) String() string { return "?" + atomic(f.X) }

func (f *Exists) String() string { return "∃" + f.Var + "." + atomic(f.Body) }
func (f *Forall) String() string { return "∀" + f.Var + "." + atomic(f.Body) }

func binop(x Formula, op string, y Formula) string {
	return atomic(x) + " " + op + " " + atomic(y)
}

// atomic wraps composite formulas in parentheses so the debug form is
// unambiguous without precedence rules.
func atomic(f Formula) string {
	switch f.(type) {
	case *Tensor, *Par, *Plus, *With:
		return "(" + fmt.Sprint(f) + ")"
	}
	return fmt.Sprint(f)
}

func joinTerms(args []Term) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = fmt.Sprint(a)
	}
	return strings.Join(parts, ", ")
}
