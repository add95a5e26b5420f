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

package triadic

import (
	"errors"
	"fmt"

	"linlog.dev/go/ll"
	"linlog.dev/go/ll/mset"
	"linlog.dev/go/seq"
)

// ErrNotDerivable is returned by Search when no derivation was found. It is
// a normal negative result, not a fault.
var ErrNotDerivable = errors.New("triadic: no derivation found")

// Options bounds a search. Quantifier rules range over Universe, so the
// result is only meaningful for formulas whose witnesses live there; Depth
// bounds the derivation height that will be explored.
type Options struct {
	Depth    int
	Universe []ll.Term
}

// Search decides ⊢ B ; L ; X within the bounds of o, in the plain system.
// It exploits the focusing discipline: the negative phase is deterministic,
// and choice points only arise at Dec selection, tensor splitting, additive
// branches and quantifier witnesses. Failure to find a derivation within
// the bounds reports ErrNotDerivable; an in-bounds success is a real
// derivation, so the procedure is sound and, for Top-free sequents over a
// finite universe, complete up to the depth bound.
func Search(b, l mset.MSet, x seq.Arrow, o Options) (*Derivation, error) {
	if d := search(b, l, x, o.Depth, o.Universe); d != nil {
		return d, nil
	}
	return nil, ErrNotDerivable
}

func search(b, l mset.MSet, x seq.Arrow, depth int, uni []ll.Term) *Derivation {
	if depth <= 0 {
		return nil
	}
	switch x := x.(type) {
	case seq.Up:
		if len(x.List) == 0 {
			return searchDec(b, l, depth, uni)
		}
		return searchUp(b, l, x.List, depth, uni)
	case seq.Down:
		return searchDown(b, l, x.F, depth, uni)
	}
	return nil
}

// searchUp runs the deterministic negative phase on the pending output.
func searchUp(b, l mset.MSet, list []ll.Formula, depth int, uni []ll.Term) *Derivation {
	head, tail := list[0], list[1:]
	switch f := head.(type) {
	case *ll.Top:
		return Plain.Top(b, l, tail)
	case *ll.Bottom:
		p := search(b, l, seq.Up{List: tail}, depth-1, uni)
		return apply1(p, Plain.Bottom)
	case *ll.Par:
		p := search(b, l, seq.Up{List: cons2(f.X, f.Y, tail)}, depth-1, uni)
		return apply1(p, Plain.Par)
	case *ll.With:
		p1 := search(b, l, seq.Up{List: cons(f.X, tail)}, depth-1, uni)
		if p1 == nil {
			return nil
		}
		p2 := search(b, l, seq.Up{List: cons(f.Y, tail)}, depth-1, uni)
		if p2 == nil {
			return nil
		}
		d, err := Plain.With(p1, p2)
		if err != nil {
			return nil
		}
		return d
	case *ll.Quest:
		p := search(b.Add(f.X), l, seq.Up{List: tail}, depth-1, uni)
		if p == nil {
			return nil
		}
		d, err := Plain.Quest(p, f.X)
		if err != nil {
			return nil
		}
		return d
	case *ll.Forall:
		return searchForall(b, l, f, tail, depth, uni)
	default:
		// Atoms and synchronous formulas are stored for a later Dec.
		p := search(b, l.Add(head), seq.Up{List: tail}, depth-1, uni)
		if p == nil {
			return nil
		}
		d, err := Plain.Store(p, head)
		if err != nil {
			return nil
		}
		return d
	}
}

// searchForall proves every instance over the finite universe and packages
// them as the premise family. Terms outside the universe are outside the
// procedure's remit and make the family report an error.
func searchForall(b, l mset.MSet, q *ll.Forall, tail []ll.Formula, depth int, uni []ll.Term) *Derivation {
	insts := make([]*Derivation, len(uni))
	for i, t := range uni {
		p := search(b, l, seq.Up{List: cons(ll.Instantiate(q, t), tail)}, depth-1, uni)
		if p == nil {
			return nil
		}
		insts[i] = p
	}
	fam := func(t ll.Term) (*Derivation, error) {
		for i, u := range uni {
			if ll.EqualTerm(u, t) {
				return insts[i], nil
			}
		}
		return nil, fmt.Errorf("triadic: search: term %v outside universe", t)
	}
	d, err := Plain.Forall(b, l, tail, q, fam, 0)
	if err != nil {
		return nil
	}
	return d
}

// searchDec tries every focusing decision once the output is exhausted.
func searchDec(b, l mset.MSet, depth int, uni []ll.Term) *Derivation {
	tried := []ll.Formula{}
	for _, f := range l.Elems() {
		if ll.IsPositiveAtom(f) || containsEq(tried, f) {
			continue
		}
		tried = append(tried, f)
		rest, _ := l.RemoveOne(f)
		if p := search(b, rest, seq.Down{F: f}, depth-1, uni); p != nil {
			if d, err := Plain.Dec1(p); err == nil {
				return d
			}
		}
	}
	tried = tried[:0]
	for _, f := range b.Elems() {
		if ll.IsPositiveAtom(f) || containsEq(tried, f) {
			continue
		}
		tried = append(tried, f)
		if p := search(b, l, seq.Down{F: f}, depth-1, uni); p != nil {
			if d, err := Plain.Dec2(p); err == nil {
				return d
			}
		}
	}
	return nil
}

// searchDown runs the positive phase under focus on f.
func searchDown(b, l mset.MSet, f ll.Formula, depth int, uni []ll.Term) *Derivation {
	switch x := f.(type) {
	case *ll.Atom:
		if ll.IsNegativeAtom(x) {
			if mset.Eq(l, mset.Of(ll.Dual(x))) {
				if d, err := Plain.Init1(b, x); err == nil {
					return d
				}
			}
			if l.IsEmpty() && b.Contains(ll.Dual(x)) {
				if d, err := Plain.Init2(b, x); err == nil {
					return d
				}
			}
		}
	case *ll.One:
		if l.IsEmpty() {
			return Plain.One(b)
		}
		return nil
	case *ll.Tensor:
		for _, sp := range l.Splits() {
			p1 := search(b, sp.Left, seq.Down{F: x.X}, depth-1, uni)
			if p1 == nil {
				continue
			}
			p2 := search(b, sp.Right, seq.Down{F: x.Y}, depth-1, uni)
			if p2 == nil {
				continue
			}
			if d, err := Plain.Tensor(p1, p2); err == nil {
				return d
			}
		}
		return nil
	case *ll.Plus:
		if p := search(b, l, seq.Down{F: x.X}, depth-1, uni); p != nil {
			if d, err := Plain.Plus1(p, x.Y); err == nil {
				return d
			}
		}
		if p := search(b, l, seq.Down{F: x.Y}, depth-1, uni); p != nil {
			if d, err := Plain.Plus2(p, x.X); err == nil {
				return d
			}
		}
		return nil
	case *ll.Bang:
		if !l.IsEmpty() {
			return nil
		}
		p := search(b, l, seq.Up{List: []ll.Formula{x.X}}, depth-1, uni)
		if p == nil {
			return nil
		}
		if d, err := Plain.Bang(p); err == nil {
			return d
		}
		return nil
	case *ll.Exists:
		for _, t := range uni {
			p := search(b, l, seq.Down{F: ll.Instantiate(x, t)}, depth-1, uni)
			if p == nil {
				continue
			}
			if d, err := Plain.Exists(p, x, t); err == nil {
				return d
			}
		}
		return nil
	case *ll.Zero:
		// No rule proves a focused 0.
		return nil
	}
	// Non-synchronous focus may release back to the negative phase.
	if ll.Releasable(f) {
		p := search(b, l, seq.Up{List: []ll.Formula{f}}, depth-1, uni)
		if p == nil {
			return nil
		}
		if d, err := Plain.Release(p); err == nil {
			return d
		}
	}
	return nil
}

func apply1(p *Derivation, rule func(*Derivation) (*Derivation, error)) *Derivation {
	if p == nil {
		return nil
	}
	d, err := rule(p)
	if err != nil {
		return nil
	}
	return d
}

func cons(f ll.Formula, tail []ll.Formula) []ll.Formula {
	return append([]ll.Formula{f}, tail...)
}

func cons2(f, g ll.Formula, tail []ll.Formula) []ll.Formula {
	return append([]ll.Formula{f, g}, tail...)
}

func containsEq(fs []ll.Formula, f ll.Formula) bool {
	for _, g := range fs {
		if ll.Equal(g, f) {
			return true
		}
	}
	return false
}
