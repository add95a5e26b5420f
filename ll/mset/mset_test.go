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

package mset

import (
	"testing"

	"github.com/go-quicktest/qt"

	"linlog.dev/go/internal/lltest"
	"linlog.dev/go/ll"
)

func TestOfPermutation(t *testing.T) {
	fs := []ll.Formula{
		ll.PosAtom("a"),
		ll.NegAtom("a"),
		ll.PosAtom("a"), // duplicate on purpose
		&ll.Bottom{},
		&ll.Tensor{X: ll.PosAtom("a"), Y: ll.PosAtom("b")},
	}
	m := Of(fs...)
	for seed := int64(0); seed < 8; seed++ {
		n := Of(lltest.Shuffle(seed, fs)...)
		qt.Assert(t, qt.IsTrue(Eq(m, n)), qt.Commentf("seed %d", seed))
		qt.Assert(t, qt.Equals(n.String(), m.String()))
	}
}

func TestAddRemove(t *testing.T) {
	a := ll.PosAtom("a")
	b := ll.PosAtom("b")
	m := Of(a, b, a)
	qt.Assert(t, qt.Equals(m.Len(), 3))
	qt.Assert(t, qt.IsTrue(m.Contains(a)))

	n, ok := m.RemoveOne(a)
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(n.Len(), 2))
	qt.Assert(t, qt.IsTrue(n.Contains(a))) // one occurrence left

	n, ok = n.RemoveOne(a)
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.IsFalse(n.Contains(a)))

	_, ok = n.RemoveOne(a)
	qt.Assert(t, qt.IsFalse(ok))

	// The original is untouched.
	qt.Assert(t, qt.Equals(m.Len(), 3))

	qt.Assert(t, qt.IsTrue(Eq(n.Add(a).Add(a), m)))
}

func TestConcat(t *testing.T) {
	a := ll.PosAtom("a")
	b := ll.PosAtom("b")
	c := ll.NegAtom("c")
	got := Of(b, a).Concat(Of(c, a))
	qt.Assert(t, qt.IsTrue(Eq(got, Of(a, a, b, c))))
	qt.Assert(t, qt.IsTrue(Eq(Of().Concat(Of()), Of())))
}

func TestEqMultiplicity(t *testing.T) {
	a := ll.PosAtom("a")
	qt.Assert(t, qt.IsFalse(Eq(Of(a), Of(a, a))))
	qt.Assert(t, qt.IsFalse(Eq(Of(a), Of())))
	qt.Assert(t, qt.IsTrue(Eq(Of(), Of())))
}

func TestSplits(t *testing.T) {
	a := ll.PosAtom("a")
	b := ll.PosAtom("b")
	m := Of(a, b)
	splits := m.Splits()
	qt.Assert(t, qt.Equals(len(splits), 4))
	for _, sp := range splits {
		qt.Assert(t, qt.IsTrue(Eq(sp.Left.Concat(sp.Right), m)))
	}
	// Both singleton splits occur.
	var seen int
	for _, sp := range splits {
		if Eq(sp.Left, Of(a)) && Eq(sp.Right, Of(b)) {
			seen++
		}
		if Eq(sp.Left, Of(b)) && Eq(sp.Right, Of(a)) {
			seen++
		}
	}
	qt.Assert(t, qt.Equals(seen, 2))
}

func TestString(t *testing.T) {
	qt.Assert(t, qt.Equals(Of().String(), "{}"))
	qt.Assert(t, qt.Equals(Of(ll.NegAtom("a"), ll.PosAtom("a")).String(), "{a, a⊥}"))
}
