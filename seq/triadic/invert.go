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
	"fmt"

	"linlog.dev/go/ll"
	"linlog.dev/go/ll/mset"
	"linlog.dev/go/seq"
)

// Derived lemmas. The negative phase is deterministic: the head of the
// pending output fixes the final rule, so each asynchronous connective has
// an inversion recovering the premise of any derivation it concludes.

// Axiom derives ⊢ B ; {A, A⊥} ; ⇑[] for any atom A: the initial-sequent
// shortcut, focusing on the negative occurrence and closing with init1.
func (s System) Axiom(b mset.MSet, a ll.Formula) (*Derivation, error) {
	neg := a
	if !ll.IsNegativeAtom(neg) {
		neg = ll.Dual(a)
	}
	if !ll.IsNegativeAtom(neg) {
		return nil, fmt.Errorf("triadic: axiom: %v is not an atom", a)
	}
	d, err := s.Init1(b, neg)
	if err != nil {
		return nil, err
	}
	return s.Dec1(d)
}

// InvertBottom recovers ⊢ B ; L ; ⇑M from a derivation of ⊢ B ; L ; ⇑⊥::M.
func InvertBottom(d *Derivation) (*Derivation, error) {
	return invert1(d, BottomRule, "bot")
}

// InvertPar recovers ⊢ B ; L ; ⇑F::G::M from a derivation of
// ⊢ B ; L ; ⇑(F⅋G)::M.
func InvertPar(d *Derivation) (*Derivation, error) {
	return invert1(d, ParRule, "par")
}

// InvertWith recovers the two premises ⊢ B ; L ; ⇑F::M and ⊢ B ; L ; ⇑G::M
// from a derivation of ⊢ B ; L ; ⇑(F&G)::M.
func InvertWith(d *Derivation) (*Derivation, *Derivation, error) {
	if d.rule != WithRule {
		return nil, nil, fmt.Errorf("triadic: invert with: final rule is %v", d.rule)
	}
	return d.prem[0], d.prem[1], nil
}

// InvertQuest recovers ⊢ B,F ; L ; ⇑M from a derivation of
// ⊢ B ; L ; ⇑?F::M.
func InvertQuest(d *Derivation) (*Derivation, error) {
	return invert1(d, QuestRule, "quest")
}

// InvertStore recovers ⊢ B ; L,F ; ⇑M from a derivation of
// ⊢ B ; L ; ⇑F::M whose head was stored rather than decomposed.
func InvertStore(d *Derivation) (*Derivation, error) {
	return invert1(d, StoreRule, "store")
}

// InvertDec recovers the focused premise ⊢ B ; L′ ; ⇓F from a derivation
// of ⊢ B ; L ; ⇑[], together with the selected formula.
func InvertDec(d *Derivation) (*Derivation, ll.Formula, error) {
	if d.rule != Dec1Rule && d.rule != Dec2Rule {
		return nil, nil, fmt.Errorf("triadic: invert dec: final rule is %v", d.rule)
	}
	p := d.prem[0]
	return p, p.x.(seq.Down).F, nil
}

func invert1(d *Derivation, want Rule, name string) (*Derivation, error) {
	if d.rule != want {
		return nil, fmt.Errorf("triadic: invert %s: final rule is %v", name, d.rule)
	}
	return d.prem[0], nil
}
