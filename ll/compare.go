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
	"cmp"
	"strings"
)

// Compare imposes a total canonical order on formulas: first by connective,
// then structurally. The order has no logical meaning; it exists so multiset
// contexts can keep a canonical form, making multiset equality a plain
// comparison.
func Compare(x, y Formula) int {
	if c := cmp.Compare(ord(x), ord(y)); c != 0 {
		return c
	}
	switch a := x.(type) {
	case *Atom:
		b := y.(*Atom)
		if a.Sign != b.Sign {
			if b.Sign {
				return -1
			}
			return 1
		}
		if c := strings.Compare(a.Name, b.Name); c != 0 {
			return c
		}
		return compareTerms(a.Args, b.Args)
	case *One, *Bottom, *Top, *Zero:
		return 0
	case *Tensor:
		b := y.(*Tensor)
		return compare2(a.X, a.Y, b.X, b.Y)
	case *Par:
		b := y.(*Par)
		return compare2(a.X, a.Y, b.X, b.Y)
	case *Plus:
		b := y.(*Plus)
		return compare2(a.X, a.Y, b.X, b.Y)
	case *With:
		b := y.(*With)
		return compare2(a.X, a.Y, b.X, b.Y)
	case *Bang:
		return Compare(a.X, y.(*Bang).X)
	case *Quest:
		return Compare(a.X, y.(*Quest).X)
	case *Exists:
		b := y.(*Exists)
		if c := strings.Compare(a.Var, b.Var); c != 0 {
			return c
		}
		return Compare(a.Body, b.Body)
	case *Forall:
		b := y.(*Forall)
		if c := strings.Compare(a.Var, b.Var); c != 0 {
			return c
		}
		return Compare(a.Body, b.Body)
	}
	panic("ll: unknown formula")
}

// Equal reports structural equality of formulas. Numeric term constants
// compare by value, so 1.0 and 1 denote the same constant.
func Equal(x, y Formula) bool { return Compare(x, y) == 0 }

// CompareTerm imposes a total canonical order on terms.
func CompareTerm(x, y Term) int {
	if c := cmp.Compare(termOrd(x), termOrd(y)); c != 0 {
		return c
	}
	switch a := x.(type) {
	case *Var:
		return strings.Compare(a.Name, y.(*Var).Name)
	case *Num:
		return a.X.Cmp(y.(*Num).X)
	case *Fun:
		b := y.(*Fun)
		if c := strings.Compare(a.Name, b.Name); c != 0 {
			return c
		}
		return compareTerms(a.Args, b.Args)
	}
	panic("ll: unknown term")
}

// EqualTerm reports structural equality of terms.
func EqualTerm(x, y Term) bool { return CompareTerm(x, y) == 0 }

func compare2(x1, y1, x2, y2 Formula) int {
	if c := Compare(x1, x2); c != 0 {
		return c
	}
	return Compare(y1, y2)
}

func compareTerms(a, b []Term) int {
	if c := cmp.Compare(len(a), len(b)); c != 0 {
		return c
	}
	for i := range a {
		if c := CompareTerm(a[i], b[i]); c != 0 {
			return c
		}
	}
	return 0
}

func ord(f Formula) int {
	switch f.(type) {
	case *Atom:
		return 0
	case *One:
		return 1
	case *Bottom:
		return 2
	case *Top:
		return 3
	case *Zero:
		return 4
	case *Tensor:
		return 5
	case *Par:
		return 6
	case *Plus:
		return 7
	case *With:
		return 8
	case *Bang:
		return 9
	case *Quest:
		return 10
	case *Exists:
		return 11
	case *Forall:
		return 12
	}
	panic("ll: unknown formula")
}

func termOrd(t Term) int {
	switch t.(type) {
	case *Var:
		return 0
	case *Num:
		return 1
	case *Fun:
		return 2
	}
	panic("ll: unknown term")
}
