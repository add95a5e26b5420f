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

// Package unfocused implements the unfocused two-context sequent system
// ⊢ B ; L, with a persistent classical context B and a linear context L.
//
// Unlike the dyadic and triadic systems, L here is an ordered list and the
// rules pattern-match on its head; reordering is an explicit Exchange rule
// with a multiset-equality side condition. This is the textbook presentation
// the other systems refine.
//
// Derivations are immutable trees built through the rule constructors, which
// check every side condition and return an error for an illegal application.
// A sequent with no derivation is simply not derivable; that is not an error
// condition of this package.
package unfocused

import (
	"fmt"

	"linlog.dev/go/ll"
	"linlog.dev/go/ll/mset"
	"linlog.dev/go/seq"
)

// A Rule identifies the final inference of a derivation.
type Rule uint8

const (
	InitRule Rule = iota
	OneRule
	BottomRule
	TopRule
	TensorRule
	ParRule
	Plus1Rule
	Plus2Rule
	WithRule
	BangRule
	QuestRule
	CopyRule
	ExistsRule
	ForallRule
	ExchangeRule
)

var ruleNames = [...]string{
	InitRule:     "init",
	OneRule:      "one",
	BottomRule:   "bot",
	TopRule:      "top",
	TensorRule:   "tensor",
	ParRule:      "par",
	Plus1Rule:    "plus1",
	Plus2Rule:    "plus2",
	WithRule:     "with",
	BangRule:     "bang",
	QuestRule:    "quest",
	CopyRule:     "copy",
	ExistsRule:   "ex",
	ForallRule:   "fx",
	ExchangeRule: "exchange",
}

func (r Rule) String() string {
	if int(r) < len(ruleNames) {
		return ruleNames[r]
	}
	return fmt.Sprintf("bad(%d)", r)
}

// A Family is the premise of the universal rule: one sub-derivation per
// term of the quantification domain. Totality over the domain is the
// caller's obligation; the constructor cannot enumerate it.
type Family func(ll.Term) (*Derivation, error)

// A Derivation is an immutable proof tree concluding ⊢ B ; L.
type Derivation struct {
	rule Rule
	b    mset.MSet
	l    []ll.Formula
	prem []*Derivation
	fam  Family
	q    *ll.Forall // principal formula of ForallRule
}

// Rule returns the final rule of d.
func (d *Derivation) Rule() Rule { return d.rule }

// Classical returns the classical context of the conclusion.
func (d *Derivation) Classical() mset.MSet { return d.b }

// Linear returns the linear context of the conclusion. The slice is a copy.
func (d *Derivation) Linear() []ll.Formula {
	out := make([]ll.Formula, len(d.l))
	copy(out, d.l)
	return out
}

// Premises returns the finite premises of the final rule.
func (d *Derivation) Premises() []*Derivation { return d.prem }

// Instantiate returns the premise of a ForallRule derivation at witness t,
// validating its shape against the conclusion.
func (d *Derivation) Instantiate(t ll.Term) (*Derivation, error) {
	if d.rule != ForallRule {
		return nil, fmt.Errorf("unfocused: instantiate: final rule is %v, not fx", d.rule)
	}
	p, err := d.fam(t)
	if err != nil {
		return nil, err
	}
	want := append([]ll.Formula{ll.Instantiate(d.q, t)}, d.l[1:]...)
	if !mset.Eq(p.b, d.b) || !sameList(p.l, want) {
		return nil, fmt.Errorf("unfocused: instantiate: family premise at %v has the wrong conclusion", t)
	}
	return p, nil
}

// Init derives ⊢ B ; [A, A⊥] for any atom A.
func Init(b mset.MSet, a *ll.Atom) *Derivation {
	return &Derivation{rule: InitRule, b: b, l: []ll.Formula{a, ll.Dual(a)}}
}

// One derives ⊢ B ; [1].
func One(b mset.MSet) *Derivation {
	return &Derivation{rule: OneRule, b: b, l: []ll.Formula{&ll.One{}}}
}

// Top derives ⊢ B ; ⊤::rest for any rest, with no premise.
func Top(b mset.MSet, rest []ll.Formula) *Derivation {
	l := append([]ll.Formula{&ll.Top{}}, rest...)
	return &Derivation{rule: TopRule, b: b, l: l}
}

// Bottom derives ⊢ B ; ⊥::L from ⊢ B ; L.
func Bottom(d *Derivation) *Derivation {
	l := append([]ll.Formula{&ll.Bottom{}}, d.l...)
	return &Derivation{rule: BottomRule, b: d.b, l: l, prem: []*Derivation{d}}
}

// Par derives ⊢ B ; (F⅋G)::M from ⊢ B ; F::G::M.
func Par(d *Derivation) (*Derivation, error) {
	if len(d.l) < 2 {
		return nil, fmt.Errorf("unfocused: par: premise context %v too short", d.l)
	}
	f, g := d.l[0], d.l[1]
	l := append([]ll.Formula{&ll.Par{X: f, Y: g}}, d.l[2:]...)
	return &Derivation{rule: ParRule, b: d.b, l: l, prem: []*Derivation{d}}, nil
}

// Tensor derives ⊢ B ; (F⊗G)::M++N from ⊢ B ; F::M and ⊢ B ; G::N.
func Tensor(d1, d2 *Derivation) (*Derivation, error) {
	if len(d1.l) == 0 || len(d2.l) == 0 {
		return nil, fmt.Errorf("unfocused: tensor: empty premise context")
	}
	if !mset.Eq(d1.b, d2.b) {
		return nil, fmt.Errorf("unfocused: tensor: premises disagree on classical context")
	}
	f, g := d1.l[0], d2.l[0]
	l := []ll.Formula{&ll.Tensor{X: f, Y: g}}
	l = append(l, d1.l[1:]...)
	l = append(l, d2.l[1:]...)
	return &Derivation{rule: TensorRule, b: d1.b, l: l, prem: []*Derivation{d1, d2}}, nil
}

// Plus1 derives ⊢ B ; (F⊕G)::M from ⊢ B ; F::M.
func Plus1(d *Derivation, g ll.Formula) (*Derivation, error) {
	if len(d.l) == 0 {
		return nil, fmt.Errorf("unfocused: plus1: empty premise context")
	}
	l := append([]ll.Formula{&ll.Plus{X: d.l[0], Y: g}}, d.l[1:]...)
	return &Derivation{rule: Plus1Rule, b: d.b, l: l, prem: []*Derivation{d}}, nil
}

// Plus2 derives ⊢ B ; (F⊕G)::M from ⊢ B ; G::M.
func Plus2(d *Derivation, f ll.Formula) (*Derivation, error) {
	if len(d.l) == 0 {
		return nil, fmt.Errorf("unfocused: plus2: empty premise context")
	}
	l := append([]ll.Formula{&ll.Plus{X: f, Y: d.l[0]}}, d.l[1:]...)
	return &Derivation{rule: Plus2Rule, b: d.b, l: l, prem: []*Derivation{d}}, nil
}

// With derives ⊢ B ; (F&G)::M from ⊢ B ; F::M and ⊢ B ; G::M. The premise
// tails must agree as lists; use Exchange to align them first.
func With(d1, d2 *Derivation) (*Derivation, error) {
	if len(d1.l) == 0 || len(d2.l) == 0 {
		return nil, fmt.Errorf("unfocused: with: empty premise context")
	}
	if !mset.Eq(d1.b, d2.b) {
		return nil, fmt.Errorf("unfocused: with: premises disagree on classical context")
	}
	if !sameList(d1.l[1:], d2.l[1:]) {
		return nil, fmt.Errorf("unfocused: with: premise tails differ")
	}
	l := append([]ll.Formula{&ll.With{X: d1.l[0], Y: d2.l[0]}}, d1.l[1:]...)
	return &Derivation{rule: WithRule, b: d1.b, l: l, prem: []*Derivation{d1, d2}}, nil
}

// Bang derives ⊢ B ; [!F] from ⊢ B ; [F]. The premise may use nothing
// linear beyond F itself.
func Bang(d *Derivation) (*Derivation, error) {
	if len(d.l) != 1 {
		return nil, fmt.Errorf("unfocused: bang: linear context %v not a singleton", d.l)
	}
	l := []ll.Formula{&ll.Bang{X: d.l[0]}}
	return &Derivation{rule: BangRule, b: d.b, l: l, prem: []*Derivation{d}}, nil
}

// Quest derives ⊢ B ; ?F::L from ⊢ B,F ; L, moving F out of the classical
// context of the premise.
func Quest(d *Derivation, f ll.Formula) (*Derivation, error) {
	b, ok := d.b.RemoveOne(f)
	if !ok {
		return nil, fmt.Errorf("unfocused: quest: %v not in classical context", f)
	}
	l := append([]ll.Formula{&ll.Quest{X: f}}, d.l...)
	return &Derivation{rule: QuestRule, b: b, l: l, prem: []*Derivation{d}}, nil
}

// Copy derives ⊢ B ; L from ⊢ B ; F::L when F is an element of B. The
// classical context is persistent, so F is not removed from it.
func Copy(d *Derivation) (*Derivation, error) {
	if len(d.l) == 0 {
		return nil, fmt.Errorf("unfocused: copy: empty premise context")
	}
	f := d.l[0]
	if !d.b.Contains(f) {
		return nil, fmt.Errorf("unfocused: copy: %v not in classical context", f)
	}
	return &Derivation{rule: CopyRule, b: d.b, l: d.l[1:], prem: []*Derivation{d}}, nil
}

// Exists derives ⊢ B ; (∃v.F)::M from ⊢ B ; F[t/v]::M for the witness t.
func Exists(d *Derivation, q *ll.Exists, t ll.Term) (*Derivation, error) {
	if len(d.l) == 0 || !ll.Equal(d.l[0], ll.Instantiate(q, t)) {
		return nil, fmt.Errorf("unfocused: ex: premise head is not %v instantiated at %v", q, t)
	}
	l := append([]ll.Formula{ll.Formula(q)}, d.l[1:]...)
	return &Derivation{rule: ExistsRule, b: d.b, l: l, prem: []*Derivation{d}}, nil
}

// Forall derives ⊢ B ; (∀v.F)::rest from the premise family giving
// ⊢ B ; F[t/v]::rest for every term t. The family's totality and shape are
// the caller's obligation; Instantiate validates individual members.
func Forall(b mset.MSet, rest []ll.Formula, q *ll.Forall, fam Family) *Derivation {
	l := append([]ll.Formula{ll.Formula(q)}, rest...)
	return &Derivation{rule: ForallRule, b: b, l: l, fam: fam, q: q}
}

// Exchange derives ⊢ B ; L' from ⊢ B ; L when L' is a permutation of L.
// This is the only rule that reorders the linear context.
func Exchange(d *Derivation, l []ll.Formula) (*Derivation, error) {
	if !mset.Eq(mset.Of(l...), mset.Of(d.l...)) {
		return nil, fmt.Errorf("unfocused: exchange: %v is not a permutation of %v", l, d.l)
	}
	out := make([]ll.Formula, len(l))
	copy(out, l)
	return &Derivation{rule: ExchangeRule, b: d.b, l: out, prem: []*Derivation{d}}, nil
}

// ExchangeClassical derives ⊢ B' ; L from ⊢ B ; L when B' is multiset-equal
// to B. With the canonical multiset representation this is the identity on
// the contexts; it exists so the congruence property is part of the API.
func ExchangeClassical(d *Derivation, b mset.MSet) (*Derivation, error) {
	if !mset.Eq(b, d.b) {
		return nil, fmt.Errorf("unfocused: exchange: classical contexts %v and %v differ", b, d.b)
	}
	return d, nil
}

func sameList(a, b []ll.Formula) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !ll.Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

// Label implements seq.Node.
func (d *Derivation) Label() string {
	return fmt.Sprintf("%v ⊢ %v ; %v", d.rule, d.b, formulaList(d.l))
}

// Kids implements seq.Node for the debug writer; the universal premise
// family is elided.
func (d *Derivation) Kids() []seq.Node {
	out := make([]seq.Node, len(d.prem))
	for i, p := range d.prem {
		out[i] = p
	}
	return out
}

func formulaList(l []ll.Formula) string {
	s := "["
	for i, f := range l {
		if i > 0 {
			s += ", "
		}
		s += fmt.Sprint(f)
	}
	return s + "]"
}
