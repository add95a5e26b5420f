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

// Package mset implements multisets of formulas.
//
// A multiset is kept in canonical form, sorted under ll.Compare with
// multiplicities preserved. Two multisets built from permutations of the
// same formulas are therefore identical values, which is what lets the
// sequent systems state their rules against concrete contexts while meaning
// them up to exchange.
//
// MSet values are immutable; every operation returns a new multiset.
package mset

import (
	"fmt"
	"sort"
	"strings"

	"linlog.dev/go/ll"
)

// An MSet is a multiset of formulas in canonical order.
type MSet struct {
	es []ll.Formula // sorted ascending under ll.Compare
}

// Of returns the multiset holding the given formulas.
func Of(fs ...ll.Formula) MSet {
	es := make([]ll.Formula, len(fs))
	copy(es, fs)
	sort.SliceStable(es, func(i, j int) bool {
		return ll.Compare(es[i], es[j]) < 0
	})
	return MSet{es: es}
}

// Len returns the number of elements, counting multiplicity.
func (m MSet) Len() int { return len(m.es) }

// IsEmpty reports whether m has no elements.
func (m MSet) IsEmpty() bool { return len(m.es) == 0 }

// Elems returns the elements in canonical order. The slice is a copy.
func (m MSet) Elems() []ll.Formula {
	out := make([]ll.Formula, len(m.es))
	copy(out, m.es)
	return out
}

// Add returns m with one more occurrence of f.
func (m MSet) Add(f ll.Formula) MSet {
	i := sort.Search(len(m.es), func(i int) bool {
		return ll.Compare(m.es[i], f) >= 0
	})
	es := make([]ll.Formula, 0, len(m.es)+1)
	es = append(es, m.es[:i]...)
	es = append(es, f)
	es = append(es, m.es[i:]...)
	return MSet{es: es}
}

// Concat returns the multiset union of m and n, adding multiplicities.
func (m MSet) Concat(n MSet) MSet {
	es := make([]ll.Formula, 0, len(m.es)+len(n.es))
	i, j := 0, 0
	for i < len(m.es) && j < len(n.es) {
		if ll.Compare(m.es[i], n.es[j]) <= 0 {
			es = append(es, m.es[i])
			i++
		} else {
			es = append(es, n.es[j])
			j++
		}
	}
	es = append(es, m.es[i:]...)
	es = append(es, n.es[j:]...)
	return MSet{es: es}
}

// RemoveOne returns m with one occurrence of f removed. The second result
// is false, and the first is m unchanged, when f does not occur.
func (m MSet) RemoveOne(f ll.Formula) (MSet, bool) {
	i := sort.Search(len(m.es), func(i int) bool {
		return ll.Compare(m.es[i], f) >= 0
	})
	if i == len(m.es) || ll.Compare(m.es[i], f) != 0 {
		return m, false
	}
	es := make([]ll.Formula, 0, len(m.es)-1)
	es = append(es, m.es[:i]...)
	es = append(es, m.es[i+1:]...)
	return MSet{es: es}, true
}

// Contains reports whether f occurs in m at least once.
func (m MSet) Contains(f ll.Formula) bool {
	i := sort.Search(len(m.es), func(i int) bool {
		return ll.Compare(m.es[i], f) >= 0
	})
	return i < len(m.es) && ll.Compare(m.es[i], f) == 0
}

// Eq reports multiset equality: the same formulas with the same
// multiplicities, irrespective of the order either multiset was built in.
func Eq(a, b MSet) bool {
	if len(a.es) != len(b.es) {
		return false
	}
	for i := range a.es {
		if ll.Compare(a.es[i], b.es[i]) != 0 {
			return false
		}
	}
	return true
}

// A Split is one way of partitioning a multiset in two.
type Split struct {
	Left, Right MSet
}

// Splits returns every two-way partition of m, 2^Len in total. It is meant
// for proof search over the tensor rule; contexts there are small.
func (m MSet) Splits() []Split {
	n := len(m.es)
	out := make([]Split, 0, 1<<n)
	for bits := 0; bits < 1<<n; bits++ {
		var l, r []ll.Formula
		for i, f := range m.es {
			if bits&(1<<i) != 0 {
				l = append(l, f)
			} else {
				r = append(r, f)
			}
		}
		out = append(out, Split{Left: MSet{es: l}, Right: MSet{es: r}})
	}
	return out
}

func (m MSet) String() string {
	parts := make([]string, len(m.es))
	for i, f := range m.es {
		parts[i] = fmt.Sprint(f)
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
