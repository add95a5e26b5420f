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

package dyadic

import (
	"testing"

	"github.com/go-quicktest/qt"

	"linlog.dev/go/internal/lltest"
	"linlog.dev/go/ll"
	"linlog.dev/go/ll/mset"
)

func height(t *testing.T, d *Derivation) int {
	t.Helper()
	h, ok := d.Height()
	qt.Assert(t, qt.IsTrue(ok))
	return h
}

func TestAxioms(t *testing.T) {
	a := ll.PosAtom("a")
	b := mset.Of(ll.PosAtom("c"))

	d := Indexed.Init(b, a)
	qt.Assert(t, qt.Equals(d.Rule(), InitRule))
	qt.Assert(t, qt.IsTrue(mset.Eq(d.Linear(), mset.Of(a, ll.NegAtom("a")))))
	qt.Assert(t, qt.Equals(height(t, d), 0))

	qt.Assert(t, qt.Equals(height(t, Indexed.One(b)), 0))

	// Top absorbs an arbitrary residue, including junk such as 0.
	junk := mset.Of(&ll.Zero{}, ll.PosAtom("x"), &ll.Bang{X: &ll.Zero{}})
	top := Indexed.Top(b, junk)
	qt.Assert(t, qt.Equals(height(t, top), 0))
	qt.Assert(t, qt.IsTrue(mset.Eq(top.Linear(), junk.Add(&ll.Top{}))))

	// Heights are not reported in the plain system.
	_, ok := Plain.One(b).Height()
	qt.Assert(t, qt.IsFalse(ok))
}

func TestHeightMonotonicity(t *testing.T) {
	a := ll.PosAtom("a")
	b := ll.PosAtom("b")

	d1 := Indexed.Init(mset.Of(), a) // height 0
	bot, err := Indexed.Bottom(d1)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(height(t, bot), 1))

	par, err := Indexed.Par(d1, a, ll.NegAtom("a"))
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(height(t, par), 1))

	// Two-premise rules take 1+max of the premise heights.
	d2 := Indexed.Init(mset.Of(), b)
	bot2, err := Indexed.Bottom(d2) // height 1
	qt.Assert(t, qt.IsNil(err))
	tens, err := Indexed.Tensor(d1, bot2, a, b)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(height(t, tens), 2))
	qt.Assert(t, qt.IsTrue(mset.Eq(tens.Linear(),
		mset.Of(&ll.Tensor{X: a, Y: b}, ll.NegAtom("a"), ll.NegAtom("b"), &ll.Bottom{}))))
}

func TestPlusWith(t *testing.T) {
	a := ll.PosAtom("a")
	d := Indexed.Init(mset.Of(), a)

	p1, err := Indexed.Plus1(d, a, &ll.Zero{})
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.IsTrue(mset.Eq(p1.Linear(), mset.Of(&ll.Plus{X: a, Y: &ll.Zero{}}, ll.NegAtom("a")))))

	_, err = Indexed.Plus2(d, &ll.Zero{}, &ll.Quest{X: a}) // ?a not in the context
	qt.Assert(t, qt.IsNotNil(err))

	w, err := Indexed.With(d, d, a, a)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.IsTrue(mset.Eq(w.Linear(), mset.Of(&ll.With{X: a, Y: a}, ll.NegAtom("a")))))

	// With demands equal residual contexts.
	db := Indexed.Init(mset.Of(), ll.PosAtom("b"))
	_, err = Indexed.With(d, db, a, ll.PosAtom("b"))
	qt.Assert(t, qt.IsNotNil(err))
}

func TestBangQuestCopy(t *testing.T) {
	a := ll.PosAtom("a")

	// Promotion needs a singleton linear context.
	one := Indexed.One(mset.Of())
	bang, err := Indexed.Bang(one, &ll.One{})
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.IsTrue(mset.Eq(bang.Linear(), mset.Of(&ll.Bang{X: &ll.One{}}))))
	_, err = Indexed.Bang(Indexed.Init(mset.Of(), a), a)
	qt.Assert(t, qt.IsNotNil(err))

	// Copy keeps the classical context persistent; Quest moves the formula
	// back out of it.
	bc := mset.Of(a)
	cp, err := Indexed.Copy(Indexed.Init(bc, a), a)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.IsTrue(mset.Eq(cp.Classical(), bc)))
	qt.Assert(t, qt.IsTrue(mset.Eq(cp.Linear(), mset.Of(ll.NegAtom("a")))))

	qu, err := Indexed.Quest(cp, a)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.IsTrue(mset.Eq(qu.Classical(), mset.Of())))
	qt.Assert(t, qt.IsTrue(mset.Eq(qu.Linear(), mset.Of(&ll.Quest{X: a}, ll.NegAtom("a")))))
	qt.Assert(t, qt.Equals(height(t, qu), 2))
}

// TestCutHeight checks the height arithmetic of the cut: the conclusion is
// at 1+max(n,m), not 1+n+m.
func TestCutHeight(t *testing.T) {
	a := ll.PosAtom("a")

	pad := func(d *Derivation, n int) *Derivation {
		for i := 0; i < n; i++ {
			var err error
			d, err = WithCut.Bottom(d)
			qt.Assert(t, qt.IsNil(err))
		}
		return d
	}

	d1 := pad(WithCut.Init(mset.Of(), a), 2) // ⊢ {} ; {⊥, ⊥, a, a⊥} at height 2
	d2 := pad(WithCut.Init(mset.Of(), a), 2)

	cut, err := WithCut.Cut(d1, d2, a)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(cut.Rule(), CutRule))
	qt.Assert(t, qt.Equals(height(t, cut), 3)) // 1+max(2,2), never 1+2+2
	qt.Assert(t, qt.IsTrue(mset.Eq(cut.Linear(),
		mset.Of(&ll.Bottom{}, &ll.Bottom{}, &ll.Bottom{}, &ll.Bottom{}, ll.NegAtom("a"), a))))

	// The cut formula must occur in the first premise and its dual in the
	// second.
	_, err = WithCut.Cut(d1, d2, ll.PosAtom("missing"))
	qt.Assert(t, qt.IsNotNil(err))

	// Plain and Indexed admit no cut at all.
	_, err = Indexed.Cut(Indexed.Init(mset.Of(), a), Indexed.Init(mset.Of(), a), a)
	qt.Assert(t, qt.IsNotNil(err))
}

func TestClosedCut(t *testing.T) {
	// ⊢ {} ; {!1} cut against ⊢ {⊥} ; {1} yields ⊢ {} ; {1}.
	d1, err := TwoCuts.Bang(TwoCuts.One(mset.Of()), &ll.One{})
	qt.Assert(t, qt.IsNil(err))
	d2 := TwoCuts.One(mset.Of(&ll.Bottom{}))

	cut, err := TwoCuts.ClosedCut(d1, d2, &ll.One{})
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(cut.Rule(), ClosedCutRule))
	qt.Assert(t, qt.IsTrue(mset.Eq(cut.Classical(), mset.Of())))
	qt.Assert(t, qt.IsTrue(mset.Eq(cut.Linear(), mset.Of(&ll.One{}))))
	qt.Assert(t, qt.Equals(height(t, cut), 2))

	// The single-cut system rejects the closed form.
	_, err = WithCut.ClosedCut(d1, d2, &ll.One{})
	qt.Assert(t, qt.IsNotNil(err))
}

func TestGeneralCutMeasure(t *testing.T) {
	a := ll.PosAtom("a")

	d1 := Costed.Init(mset.Of(), a)
	d2, err := Costed.Bottom(Costed.Init(mset.Of(), a)) // height 1
	qt.Assert(t, qt.IsNil(err))

	cut, err := Costed.GeneralCut(d1, d2, a)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(cut.Rule(), GeneralCutRule))
	qt.Assert(t, qt.IsFalse(cut.ClosedForm()))
	qt.Assert(t, qt.Equals(height(t, cut), 2)) // 1+max(0,1)

	w, sh, ok := cut.CutMeasure()
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(w, ll.Weight(a)))
	qt.Assert(t, qt.Equals(sh, 1)) // 0+1, the sub-height sum

	c, ok := cut.Cuts()
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(c, 1))

	// Stacking a second cut on top counts both.
	d3 := Costed.Init(mset.Of(), a)
	cut2, err := Costed.GeneralCut(d3, cut, a)
	qt.Assert(t, qt.IsNil(err))
	c, _ = cut2.Cuts()
	qt.Assert(t, qt.Equals(c, 2))

	// Non-cut rules report no measure.
	_, _, ok = d1.CutMeasure()
	qt.Assert(t, qt.IsFalse(ok))
}

func TestGeneralCutClosedMeasure(t *testing.T) {
	one := &ll.One{}
	d1, err := Costed.Bang(Costed.One(mset.Of()), one)
	qt.Assert(t, qt.IsNil(err))
	d2 := Costed.One(mset.Of(&ll.Bottom{}))

	cut, err := Costed.GeneralCutClosed(d1, d2, one)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.IsTrue(cut.ClosedForm()))

	w, sh, ok := cut.CutMeasure()
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(w, ll.Weight(&ll.Bang{X: one}))) // weight(!F) > weight(F)
	qt.Assert(t, qt.IsTrue(w > ll.Weight(one)))
	qt.Assert(t, qt.Equals(sh, 1))
	qt.Assert(t, qt.Equals(height(t, cut), 2)) // 1+max, not the sub-height
}

func TestForallInstantiate(t *testing.T) {
	x := &ll.Var{Name: "x"}
	q := &ll.Forall{Var: "x", Body: &ll.Par{X: ll.PosAtom("p", x), Y: ll.NegAtom("p", x)}}
	fam := func(u ll.Term) (*Derivation, error) {
		return Indexed.Par(Indexed.Init(mset.Of(), ll.PosAtom("p", u)), ll.PosAtom("p", u), ll.NegAtom("p", u))
	}

	d, err := Indexed.Forall(mset.Of(), mset.Of(), q, fam, 1, 0)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(height(t, d), 2))
	qt.Assert(t, qt.IsTrue(mset.Eq(d.Linear(), mset.Of(q))))

	p, err := d.Instantiate(ll.NewNum(5))
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(height(t, p), 1))

	// A declared bound below the family's actual height is an invalid
	// declaration, caught at instantiation.
	low, err := Indexed.Forall(mset.Of(), mset.Of(), q, fam, 0, 0)
	qt.Assert(t, qt.IsNil(err))
	_, err = low.Instantiate(ll.NewNum(5))
	qt.Assert(t, qt.ErrorMatches(err, ".*exceeds the uniform bound.*"))
}

func TestExists(t *testing.T) {
	x := &ll.Var{Name: "x"}
	q := &ll.Exists{Var: "x", Body: &ll.Par{X: ll.PosAtom("p", x), Y: ll.NegAtom("p", x)}}
	five := ll.NewNum(5)
	prem, err := Indexed.Par(Indexed.Init(mset.Of(), ll.PosAtom("p", five)), ll.PosAtom("p", five), ll.NegAtom("p", five))
	qt.Assert(t, qt.IsNil(err))

	d, err := Indexed.Exists(prem, q, five)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.IsTrue(mset.Eq(d.Linear(), mset.Of(q))))
	wit, ok := d.Witness()
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.IsTrue(ll.EqualTerm(wit, five)))

	_, err = Indexed.Exists(prem, q, ll.NewNum(6))
	qt.Assert(t, qt.IsNotNil(err))
}

func TestCongruence(t *testing.T) {
	a := ll.PosAtom("a")
	bctx := []ll.Formula{ll.PosAtom("c"), &ll.Quest{X: a}, ll.PosAtom("c")}
	d := Indexed.Init(mset.Of(bctx...), a)
	lctx := d.Linear().Elems()

	for seed := int64(0); seed < 8; seed++ {
		e, err := Exchange(d,
			mset.Of(lltest.Shuffle(seed, bctx)...),
			mset.Of(lltest.Shuffle(seed+100, lctx)...))
		qt.Assert(t, qt.IsNil(err))
		qt.Assert(t, qt.Equals(height(t, e), height(t, d)))
	}

	_, err := Exchange(d, mset.Of(), d.Linear())
	qt.Assert(t, qt.IsNotNil(err))
	_, err = Exchange(d, d.Classical(), mset.Of(a))
	qt.Assert(t, qt.IsNotNil(err))
}
