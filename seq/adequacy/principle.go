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

// Package adequacy relates the members of the sequent-system families:
// index introduction and erasure between the plain systems and their
// height-indexed twins, and the conversions between the two-cut system and
// the fully cut-and-cost-indexed one. These are the bridges a
// cut-elimination argument crosses: the induction runs on the cost-indexed
// relation and its result is carried back to the cut-free system here.
package adequacy

import (
	"fmt"

	"linlog.dev/go/ll"
)

// A UniformBound turns the pointwise indices of a universally quantified
// premise family into one bound covering every member.
//
// This is the one non-constructive element of the index-introduction
// direction: a height per witness term does not by itself yield a single
// height for all witnesses when the term domain is infinite. The original
// development assumes the principle outright rather than proving it, and
// so does this package: implementations assert it, they do not derive it.
// The assumption is sound only when substitution is height-preserving
// uniformly across terms; validate that against the concrete term domain
// before supplying an implementation.
type UniformBound interface {
	// Bound returns an upper bound on at(t) over every term t of the
	// domain, where at reports the index of the family member at t.
	Bound(at func(ll.Term) (int, error)) (int, error)
}

// A FiniteUniverse is the decidable instance of UniformBound for a finite,
// enumerated term domain: the bound is the maximum over the universe.
type FiniteUniverse []ll.Term

// Bound implements UniformBound by enumeration.
func (u FiniteUniverse) Bound(at func(ll.Term) (int, error)) (int, error) {
	if len(u) == 0 {
		return 0, fmt.Errorf("adequacy: empty term universe")
	}
	bound := 0
	for _, t := range u {
		n, err := at(t)
		if err != nil {
			return 0, err
		}
		if n > bound {
			bound = n
		}
	}
	return bound, nil
}
