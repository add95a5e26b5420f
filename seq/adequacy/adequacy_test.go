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

package adequacy

import (
	"strings"
	"testing"

	"github.com/go-quicktest/qt"

	"linlog.dev/go/ll"
	"linlog.dev/go/ll/mset"
	"linlog.dev/go/seq"
	"linlog.dev/go/seq/dyadic"
	"linlog.dev/go/seq/triadic"
)

func dumpOf(n seq.Node) string {
	var buf strings.Builder
	seq.Dump(&buf, n)
	return buf.String()
}

var universe = FiniteUniverse{ll.NewNum(1), ll.NewNum(2)}

func TestFiniteUniverseBound(t *testing.T) {
	got, err := universe.Bound(func(u ll.Term) (int, error) {
		if ll.EqualTerm(u, ll.NewNum(1)) {
			return 3, nil
		}
		return 7, nil
	})
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(got, 7))

	_, err = FiniteUniverse{}.Bound(func(ll.Term) (int, error) { return 0, nil })
	qt.Assert(t, qt.ErrorMatches(err, ".*empty term universe.*"))
}

func TestTriadicHeightRoundTrip(t *testing.T) {
	d1, err := triadic.Plain.Init1(mset.Of(), ll.NegAtom("a"))
	qt.Assert(t, qt.IsNil(err))
	d2, err := triadic.Plain.Init1(mset.Of(), ll.NegAtom("b"))
	qt.Assert(t, qt.IsNil(err))
	plain, err := triadic.Plain.Tensor(d1, d2)
	qt.Assert(t, qt.IsNil(err))

	indexed, err := IndexTriadic(plain, universe)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(indexed.System(), triadic.Indexed))
	h, ok := indexed.Height()
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(h, 1))

	back, err := EraseTriadic(indexed)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(back.System(), triadic.Plain))
	qt.Assert(t, qt.Equals(dumpOf(back), dumpOf(plain)))

	// Direction mismatches are rejected.
	_, err = IndexTriadic(indexed, universe)
	qt.Assert(t, qt.IsNotNil(err))
	_, err = EraseTriadic(plain)
	qt.Assert(t, qt.IsNotNil(err))
	_, err = IndexTriadic(plain, nil)
	qt.Assert(t, qt.IsNotNil(err))
}

func TestTriadicForallRoundTrip(t *testing.T) {
	x := &ll.Var{Name: "x"}
	q := &ll.Forall{Var: "x", Body: &ll.Par{X: ll.PosAtom("p", x), Y: ll.NegAtom("p", x)}}
	d, err := triadic.Search(mset.Of(), mset.Of(), seq.Up{List: []ll.Formula{q}},
		triadic.Options{Depth: 12, Universe: []ll.Term(universe)})
	qt.Assert(t, qt.IsNil(err))

	indexed, err := IndexTriadic(d, universe)
	qt.Assert(t, qt.IsNil(err))
	h, ok := indexed.Height()
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.IsTrue(h >= 1))

	// The declared uniform bound covers every member of the family.
	for _, u := range universe {
		p, err := indexed.Instantiate(u)
		qt.Assert(t, qt.IsNil(err))
		ph, _ := p.Height()
		qt.Assert(t, qt.IsTrue(ph <= h-1))
	}

	back, err := EraseTriadic(indexed)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(back.System(), triadic.Plain))
	p, err := back.Instantiate(ll.NewNum(2))
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.IsNotNil(p))
}

func TestDyadicHeightRoundTrip(t *testing.T) {
	a := ll.PosAtom("a")
	plain, err := dyadic.Plain.Bottom(dyadic.Plain.Init(mset.Of(), a))
	qt.Assert(t, qt.IsNil(err))

	indexed, err := IndexDyadic(plain, universe)
	qt.Assert(t, qt.IsNil(err))
	h, ok := indexed.Height()
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(h, 1))

	back, err := EraseDyadic(indexed)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(back.System(), dyadic.Plain))
	qt.Assert(t, qt.Equals(dumpOf(back), dumpOf(plain)))
}

func TestDyadicForallRoundTrip(t *testing.T) {
	x := &ll.Var{Name: "x"}
	q := &ll.Forall{Var: "x", Body: &ll.Par{X: ll.PosAtom("p", x), Y: ll.NegAtom("p", x)}}
	fam := func(u ll.Term) (*dyadic.Derivation, error) {
		return dyadic.Plain.Par(dyadic.Plain.Init(mset.Of(), ll.PosAtom("p", u)),
			ll.PosAtom("p", u), ll.NegAtom("p", u))
	}
	plain, err := dyadic.Plain.Forall(mset.Of(), mset.Of(), q, fam, 0, 0)
	qt.Assert(t, qt.IsNil(err))

	indexed, err := IndexDyadic(plain, universe)
	qt.Assert(t, qt.IsNil(err))
	h, ok := indexed.Height()
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(h, 2)) // 1 + the family bound of 1

	p, err := indexed.Instantiate(ll.NewNum(1))
	qt.Assert(t, qt.IsNil(err))
	ph, _ := p.Height()
	qt.Assert(t, qt.Equals(ph, 1))

	back, err := EraseDyadic(indexed)
	qt.Assert(t, qt.IsNil(err))
	_, err = back.Instantiate(ll.NewNum(2))
	qt.Assert(t, qt.IsNil(err))
}

// twoCutsSample builds a derivation using both cut forms of the two-cut
// system: a tensor joining a plain cut on an atom with a closed cut on 1.
func twoCutsSample(t *testing.T) *dyadic.Derivation {
	t.Helper()
	s := dyadic.TwoCuts
	a := ll.PosAtom("a")

	cut, err := s.Cut(s.Init(mset.Of(), a), s.Init(mset.Of(), a), a)
	qt.Assert(t, qt.IsNil(err))

	bang, err := s.Bang(s.One(mset.Of()), &ll.One{})
	qt.Assert(t, qt.IsNil(err))
	ccut, err := s.ClosedCut(bang, s.One(mset.Of(&ll.Bottom{})), &ll.One{})
	qt.Assert(t, qt.IsNil(err))

	root, err := s.Tensor(cut, ccut, a, &ll.One{})
	qt.Assert(t, qt.IsNil(err))
	return root
}

func TestCostRoundTrip(t *testing.T) {
	root := twoCutsSample(t)
	h0, _ := root.Height()

	costed, err := CostIndex(root, universe)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(costed.System(), dyadic.Costed))

	c, ok := costed.Cuts()
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(c, 2))
	h, _ := costed.Height()
	qt.Assert(t, qt.Equals(h, h0))

	// Both cuts became general cuts carrying their measures.
	gcut := costed.Premises()[0]
	qt.Assert(t, qt.Equals(gcut.Rule(), dyadic.GeneralCutRule))
	qt.Assert(t, qt.IsFalse(gcut.ClosedForm()))
	w, sh, ok := gcut.CutMeasure()
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(w, 1)) // weight(a)
	qt.Assert(t, qt.Equals(sh, 0))

	gccut := costed.Premises()[1]
	qt.Assert(t, qt.Equals(gccut.Rule(), dyadic.GeneralCutRule))
	qt.Assert(t, qt.IsTrue(gccut.ClosedForm()))
	w, sh, ok = gccut.CutMeasure()
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(w, 2)) // weight(!1) > weight(1)
	qt.Assert(t, qt.Equals(sh, 1))
	ch, _ := gccut.Height()
	qt.Assert(t, qt.Equals(ch, 2)) // 1+max(1,0), never the sub-height sum

	// Erasing the cost maps each general cut back to its two-cut form.
	back, err := CostErase(costed)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(back.System(), dyadic.TwoCuts))
	qt.Assert(t, qt.Equals(back.Premises()[0].Rule(), dyadic.CutRule))
	qt.Assert(t, qt.Equals(back.Premises()[1].Rule(), dyadic.ClosedCutRule))
	qt.Assert(t, qt.Equals(dumpOf(back), dumpOf(root)))

	_, ok = back.Cuts()
	qt.Assert(t, qt.IsFalse(ok))

	// Direction mismatches are rejected.
	_, err = CostIndex(costed, universe)
	qt.Assert(t, qt.IsNotNil(err))
	_, err = CostErase(root)
	qt.Assert(t, qt.IsNotNil(err))
}
