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
	"github.com/cockroachdb/apd/v3"
)

// Terms

// A Var is a term variable, bound by Exists or Forall or free in a formula
// that is still open for substitution.
type Var struct {
	Name string
}

// A Fun is an uninterpreted function symbol applied to zero or more terms.
// Nullary functions double as individual constants.
type Fun struct {
	Name string
	Args []Term
}

// A Num is a numeric constant of the term domain.
type Num struct {
	X *apd.Decimal
}

// NewNum returns a Num for the given integer.
func NewNum(i int64) *Num {
	return &Num{X: apd.New(i, 0)}
}

// Formulas

// An Atom is a predicate applied to terms. Sign false is the atom itself
// (positive polarity); Sign true is its De Morgan dual (negative polarity).
// The predicate symbol carries no polarity of its own.
type Atom struct {
	Sign bool // true for the negated occurrence
	Name string
	Args []Term
}

// PosAtom returns the positive occurrence of the named predicate.
func PosAtom(name string, args ...Term) *Atom {
	return &Atom{Name: name, Args: args}
}

// NegAtom returns the negative occurrence of the named predicate.
func NegAtom(name string, args ...Term) *Atom {
	return &Atom{Sign: true, Name: name, Args: args}
}

// One is the multiplicative unit 1.
type One struct{}

// Bottom is the multiplicative unit ⊥, the dual of One.
type Bottom struct{}

// Top is the additive unit ⊤. Any sequent with a pending ⊤ is derivable.
type Top struct{}

// Zero is the additive unit 0, the dual of Top. There is no rule for it.
type Zero struct{}

// A Tensor is the multiplicative conjunction X ⊗ Y.
type Tensor struct {
	X, Y Formula
}

// A Par is the multiplicative disjunction X ⅋ Y.
type Par struct {
	X, Y Formula
}

// A Plus is the additive disjunction X ⊕ Y.
type Plus struct {
	X, Y Formula
}

// A With is the additive conjunction X & Y.
type With struct {
	X, Y Formula
}

// A Bang is the exponential !X, admitting contraction and weakening.
type Bang struct {
	X Formula
}

// A Quest is the exponential ?X, the dual of Bang.
type Quest struct {
	X Formula
}

// An Exists is the existential quantifier ∃v.Body. The binder is syntactic
// so that formula equality remains decidable; instantiation goes through
// Subst.
type Exists struct {
	Var  string
	Body Formula
}

// A Forall is the universal quantifier ∀v.Body.
type Forall struct {
	Var  string
	Body Formula
}
