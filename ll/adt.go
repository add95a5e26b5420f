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

// Package ll defines the formula syntax of classical first-order linear
// logic: atoms, the multiplicative, additive and exponential connectives,
// and the first-order quantifiers, together with the operations the sequent
// systems consume: duality, weight, polarity classification, substitution
// and a total canonical order.
//
// Formulas are immutable once constructed. All operations on them are pure.
package ll

// A Term is a first-order term of the quantification domain.
type Term interface {
	term()
}

// A Formula is a term of the linear logic syntax.
type Formula interface {
	formula()
	String() string
}

func (*Var) term() {}
func (*Fun) term() {}
func (*Num) term() {}

func (*Atom) formula()   {}
func (*One) formula()    {}
func (*Bottom) formula() {}
func (*Top) formula()    {}
func (*Zero) formula()   {}
func (*Tensor) formula() {}
func (*Par) formula()    {}
func (*Plus) formula()   {}
func (*With) formula()   {}
func (*Bang) formula()   {}
func (*Quest) formula()  {}
func (*Exists) formula() {}
func (*Forall) formula() {}
