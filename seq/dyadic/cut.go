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
	"fmt"

	"linlog.dev/go/ll"
	"linlog.dev/go/ll/mset"
)

// Cut derives ⊢ B ; M,N from ⊢ B ; F,M and ⊢ B ; F⊥,N, at height
// 1+max(n,m). It requires a cut-carrying system.
func (s System) Cut(d1, d2 *Derivation, f ll.Formula) (*Derivation, error) {
	if s.CutMode != CutSingle && s.CutMode != CutDouble {
		return nil, fmt.Errorf("dyadic: cut: not admitted in system %+v", s)
	}
	if err := s.cutPremises(d1, d2, "cut"); err != nil {
		return nil, err
	}
	m, err := removeAll(d1.l, "dyadic: cut", f)
	if err != nil {
		return nil, err
	}
	n, err := removeAll(d2.l, "dyadic: cut", ll.Dual(f))
	if err != nil {
		return nil, err
	}
	if !mset.Eq(d1.b, d2.b) {
		return nil, fmt.Errorf("dyadic: cut: premises disagree on classical context")
	}
	out := s.two(CutRule, d1, d2, d1.b, m.Concat(n))
	out.prin = f
	return out, nil
}

// ClosedCut derives ⊢ B ; M,N from ⊢ B ; !F,M and ⊢ B,F⊥ ; N: a cut
// against a formula promoted into persistent storage. The dual joins the
// classical context of the second premise only; the conclusion keeps the
// original B. It requires the two-cut system.
func (s System) ClosedCut(d1, d2 *Derivation, f ll.Formula) (*Derivation, error) {
	if s.CutMode != CutDouble {
		return nil, fmt.Errorf("dyadic: ccut: not admitted in system %+v", s)
	}
	if err := s.cutPremises(d1, d2, "ccut"); err != nil {
		return nil, err
	}
	m, err := removeAll(d1.l, "dyadic: ccut", &ll.Bang{X: f})
	if err != nil {
		return nil, err
	}
	b2, ok := d2.b.RemoveOne(ll.Dual(f))
	if !ok {
		return nil, fmt.Errorf("dyadic: ccut: %v not in classical context of second premise", ll.Dual(f))
	}
	if !mset.Eq(b2, d1.b) {
		return nil, fmt.Errorf("dyadic: ccut: classical contexts %v and %v+{%v} differ", d1.b, b2, ll.Dual(f))
	}
	out := s.two(ClosedCutRule, d1, d2, d1.b, m.Concat(d2.l))
	out.prin = f
	return out, nil
}

// GeneralCut derives ⊢ B ; M,N from ⊢ B ; F,M and ⊢ B ; F⊥,N in the
// cost-indexed system. The node carries the cut measure: weight(F) and the
// sum of the premise heights, the lexicographic pair a cut-elimination
// induction recurses on. The conclusion height is 1+max(n,m), never the
// sub-height sum, and the cut count is one more than the premises' total.
func (s System) GeneralCut(d1, d2 *Derivation, f ll.Formula) (*Derivation, error) {
	if s.CutMode != CutCost {
		return nil, fmt.Errorf("dyadic: gcut: not admitted in system %+v", s)
	}
	if err := s.cutPremises(d1, d2, "gcut"); err != nil {
		return nil, err
	}
	m, err := removeAll(d1.l, "dyadic: gcut", f)
	if err != nil {
		return nil, err
	}
	n, err := removeAll(d2.l, "dyadic: gcut", ll.Dual(f))
	if err != nil {
		return nil, err
	}
	if !mset.Eq(d1.b, d2.b) {
		return nil, fmt.Errorf("dyadic: gcut: premises disagree on classical context")
	}
	out := s.two(GeneralCutRule, d1, d2, d1.b, m.Concat(n))
	out.prin = f
	out.c++
	out.w = ll.Weight(f)
	out.sh = d1.h + d2.h
	return out, nil
}

// GeneralCutClosed is the closed form of the general cut: from ⊢ B ; !F,M
// and ⊢ B,F⊥ ; N it derives ⊢ B ; M,N. It carries the premise sub-height
// sum and weight(!F), which exceeds weight(F) strictly.
func (s System) GeneralCutClosed(d1, d2 *Derivation, f ll.Formula) (*Derivation, error) {
	if s.CutMode != CutCost {
		return nil, fmt.Errorf("dyadic: gcut!: not admitted in system %+v", s)
	}
	if err := s.cutPremises(d1, d2, "gcut!"); err != nil {
		return nil, err
	}
	bang := &ll.Bang{X: f}
	m, err := removeAll(d1.l, "dyadic: gcut!", bang)
	if err != nil {
		return nil, err
	}
	b2, ok := d2.b.RemoveOne(ll.Dual(f))
	if !ok {
		return nil, fmt.Errorf("dyadic: gcut!: %v not in classical context of second premise", ll.Dual(f))
	}
	if !mset.Eq(b2, d1.b) {
		return nil, fmt.Errorf("dyadic: gcut!: classical contexts %v and %v+{%v} differ", d1.b, b2, ll.Dual(f))
	}
	out := &Derivation{
		sys:    s,
		rule:   GeneralCutRule,
		b:      d1.b,
		l:      m.Concat(d2.l),
		prem:   []*Derivation{d1, d2},
		prin:   f,
		closed: true,
		h:      1 + max(d1.h, d2.h),
		c:      d1.c + d2.c + 1,
		w:      ll.Weight(bang),
		sh:     d1.h + d2.h,
	}
	return out, nil
}

// cutPremises checks system membership and, because every cut-carrying
// system is height-indexed, rejects a System that is not.
func (s System) cutPremises(d1, d2 *Derivation, rule string) error {
	if !s.Heights {
		return fmt.Errorf("dyadic: %s: cut-carrying systems are height-indexed", rule)
	}
	if err := s.premise(d1, rule); err != nil {
		return err
	}
	return s.premise(d2, rule)
}
