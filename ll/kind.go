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

// A Class is the focusing classification of a formula. Every formula has
// exactly one class: atoms are classified by their sign, connectives by
// whether the focused phase must decompose them eagerly (asynchronous) or
// only under explicit selection (synchronous).
type Class uint8

const (
	// PosAtomClass is a positive atom occurrence.
	PosAtomClass Class = iota

	// NegAtomClass is a negative atom occurrence.
	NegAtomClass

	// SyncClass covers 1, 0, ⊗, ⊕, ! and ∃: decomposed only in the
	// positive phase, under focus.
	SyncClass

	// AsyncClass covers ⊥, ⊤, ⅋, &, ? and ∀: decomposed eagerly in the
	// negative phase.
	AsyncClass
)

func (c Class) String() string {
	switch c {
	case PosAtomClass:
		return "atom+"
	case NegAtomClass:
		return "atom-"
	case SyncClass:
		return "sync"
	case AsyncClass:
		return "async"
	}
	return "bad(Class)"
}

// ClassOf returns the classification of f.
func ClassOf(f Formula) Class {
	switch x := f.(type) {
	case *Atom:
		if x.Sign {
			return NegAtomClass
		}
		return PosAtomClass
	case *One, *Zero, *Tensor, *Plus, *Bang, *Exists:
		return SyncClass
	default:
		return AsyncClass
	}
}

// IsPositiveAtom reports whether f is a positive atom occurrence.
func IsPositiveAtom(f Formula) bool { return ClassOf(f) == PosAtomClass }

// IsNegativeAtom reports whether f is a negative atom occurrence.
func IsNegativeAtom(f Formula) bool { return ClassOf(f) == NegAtomClass }

// IsSynchronous reports whether f is a synchronous connective, one that the
// focused system decomposes only under focus. Atoms are not synchronous.
func IsSynchronous(f Formula) bool { return ClassOf(f) == SyncClass }

// IsAsynchronous reports whether f is an asynchronous connective, one that
// the negative phase decomposes eagerly. Atoms are not asynchronous.
func IsAsynchronous(f Formula) bool { return ClassOf(f) == AsyncClass }

// Releasable reports whether a focused occurrence of f may revert to the
// negative phase: everything but synchronous connectives releases.
func Releasable(f Formula) bool { return !IsSynchronous(f) }
