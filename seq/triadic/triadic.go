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

// Package triadic implements the focused three-zone sequent system
// ⊢ B ; L ; X for classical linear logic and its height-indexed twin.
//
// A sequent has a persistent classical context B, a linear multiset context
// L, and an arrow X giving the phase: seq.Up carries the ordered pending
// output consumed left to right by the negative phase, seq.Down carries the
// single formula under focus in the positive phase. Asynchronous formulas
// at the head of an Up list must be decomposed eagerly; synchronous ones
// are stored and later selected by a Dec rule, which is the whole focusing
// discipline.
//
// Derivations are immutable trees built through the rule constructors,
// which check every side condition, including the polarity preconditions
// that reject illegal applications such as focusing on a positive atom,
// and return an error otherwise. A sequent with no
// derivation is simply not derivable; that is a normal negative outcome,
// not an error of this package.
package triadic

import (
	"fmt"

	"linlog.dev/go/ll"
	"linlog.dev/go/ll/mset"
	"linlog.dev/go/seq"
)

// A System selects a member of the triadic family: the plain system or its
// height-indexed twin.
type System struct {
	Heights bool
}

var (
	// Plain is the unindexed focused system.
	Plain = System{}

	// Indexed is its height-indexed twin.
	Indexed = System{Heights: true}
)

// A Rule identifies the final inference of a derivation.
type Rule uint8

const (
	Init1Rule Rule = iota
	Init2Rule
	OneRule
	TensorRule
	Plus1Rule
	Plus2Rule
	BangRule
	ReleaseRule
	TopRule
	BottomRule
	ParRule
	WithRule
	QuestRule
	StoreRule
	Dec1Rule
	Dec2Rule
	ExistsRule
	ForallRule
)

var ruleNames = [...]string{
	Init1Rule:   "init1",
	Init2Rule:   "init2",
	OneRule:     "one",
	TensorRule:  "tensor",
	Plus1Rule:   "plus1",
	Plus2Rule:   "plus2",
	BangRule:    "bang",
	ReleaseRule: "rel",
	TopRule:     "top",
	BottomRule:  "bot",
	ParRule:     "par",
	WithRule:    "with",
	QuestRule:   "quest",
	StoreRule:   "store",
	Dec1Rule:    "dec1",
	Dec2Rule:    "dec2",
	ExistsRule:  "ex",
	ForallRule:  "fx",
}

func (r Rule) String() string {
	if int(r) < len(ruleNames) {
		return ruleNames[r]
	}
	return fmt.Sprintf("bad(%d)", r)
}

// A Family is the premise of the universal rule: one sub-derivation per
// term of the quantification domain.
type Family func(ll.Term) (*Derivation, error)

// A Derivation is an immutable proof tree concluding ⊢ B ; L ; X.
type Derivation struct {
	sys  System
	rule Rule
	b, l mset.MSet
	x    seq.Arrow
	prem []*Derivation
	fam  Family
	q    *ll.Forall   // principal formula of ForallRule
	rest []ll.Formula // pending output behind the quantifier, ForallRule
	wit  ll.Term      // existential witness; ExistsRule only
	h    int          // meaningful when sys.Heights
}

// System returns the system d was built in.
func (d *Derivation) System() System { return d.sys }

// Rule returns the final rule of d.
func (d *Derivation) Rule() Rule { return d.rule }

// Classical returns the classical context of the conclusion.
func (d *Derivation) Classical() mset.MSet { return d.b }

// Linear returns the linear context of the conclusion.
func (d *Derivation) Linear() mset.MSet { return d.l }

// Arrow returns the arrow of the conclusion.
func (d *Derivation) Arrow() seq.Arrow { return d.x }

// Premises returns the finite premises of the final rule.
func (d *Derivation) Premises() []*Derivation { return d.prem }

// Height returns the derivation height. It reports false in the unindexed
// system.
func (d *Derivation) Height() (int, bool) { return d.h, d.sys.Heights }

// Witness returns the existential witness of an ExistsRule node.
func (d *Derivation) Witness() (ll.Term, bool) { return d.wit, d.rule == ExistsRule }

// Instantiate returns the premise of a ForallRule derivation at witness t,
// validating its shape against the conclusion.
func (d *Derivation) Instantiate(t ll.Term) (*Derivation, error) {
	if d.rule != ForallRule {
		return nil, fmt.Errorf("triadic: instantiate: final rule is %v, not fx", d.rule)
	}
	p, err := d.fam(t)
	if err != nil {
		return nil, err
	}
	want := append([]ll.Formula{ll.Instantiate(d.q, t)}, d.rest...)
	if p.sys != d.sys || !mset.Eq(p.b, d.b) || !mset.Eq(p.l, d.l) || !upEquals(p.x, want) {
		return nil, fmt.Errorf("triadic: instantiate: family premise at %v has the wrong conclusion", t)
	}
	if d.sys.Heights && p.h > d.h-1 {
		return nil, fmt.Errorf("triadic: instantiate: family height %d exceeds the uniform bound %d", p.h, d.h-1)
	}
	return p, nil
}

// Positive phase

// Init1 derives ⊢ B ; {A⊥} ; ⇓A for a negative atom A: the identity axiom
// closing against the linear context.
func (s System) Init1(b mset.MSet, a ll.Formula) (*Derivation, error) {
	if !ll.IsNegativeAtom(a) {
		return nil, fmt.Errorf("triadic: init1: %v is not a negative atom", a)
	}
	return &Derivation{sys: s, rule: Init1Rule, b: b, l: mset.Of(ll.Dual(a)), x: seq.Down{F: a}}, nil
}

// Init2 derives ⊢ B ; {} ; ⇓A for a negative atom A whose dual is an
// element of B: the identity axiom closing against the persistent context.
// This rule is why contraction and weakening on B need no rules of their
// own.
func (s System) Init2(b mset.MSet, a ll.Formula) (*Derivation, error) {
	if !ll.IsNegativeAtom(a) {
		return nil, fmt.Errorf("triadic: init2: %v is not a negative atom", a)
	}
	if !b.Contains(ll.Dual(a)) {
		return nil, fmt.Errorf("triadic: init2: %v not in classical context %v", ll.Dual(a), b)
	}
	return &Derivation{sys: s, rule: Init2Rule, b: b, l: mset.Of(), x: seq.Down{F: a}}, nil
}

// One derives ⊢ B ; {} ; ⇓1.
func (s System) One(b mset.MSet) *Derivation {
	return &Derivation{sys: s, rule: OneRule, b: b, l: mset.Of(), x: seq.Down{F: &ll.One{}}}
}

// Tensor derives ⊢ B ; M,N ; ⇓F⊗G from ⊢ B ; N ; ⇓F and ⊢ B ; M ; ⇓G.
// Any multiset partition of the combined context is a valid split.
func (s System) Tensor(d1, d2 *Derivation) (*Derivation, error) {
	if err := s.premises(d1, d2, "tensor"); err != nil {
		return nil, err
	}
	f, err := focusOf(d1, "tensor")
	if err != nil {
		return nil, err
	}
	g, err := focusOf(d2, "tensor")
	if err != nil {
		return nil, err
	}
	out := s.two(TensorRule, d1, d2, d1.b, d1.l.Concat(d2.l))
	out.x = seq.Down{F: &ll.Tensor{X: f, Y: g}}
	return out, nil
}

// Plus1 derives ⊢ B ; L ; ⇓F⊕G from ⊢ B ; L ; ⇓F.
func (s System) Plus1(d *Derivation, g ll.Formula) (*Derivation, error) {
	if err := s.premise(d, "plus1"); err != nil {
		return nil, err
	}
	f, err := focusOf(d, "plus1")
	if err != nil {
		return nil, err
	}
	out := s.one1(Plus1Rule, d, d.b, d.l)
	out.x = seq.Down{F: &ll.Plus{X: f, Y: g}}
	return out, nil
}

// Plus2 derives ⊢ B ; L ; ⇓F⊕G from ⊢ B ; L ; ⇓G.
func (s System) Plus2(d *Derivation, f ll.Formula) (*Derivation, error) {
	if err := s.premise(d, "plus2"); err != nil {
		return nil, err
	}
	g, err := focusOf(d, "plus2")
	if err != nil {
		return nil, err
	}
	out := s.one1(Plus2Rule, d, d.b, d.l)
	out.x = seq.Down{F: &ll.Plus{X: f, Y: g}}
	return out, nil
}

// Bang derives ⊢ B ; {} ; ⇓!F from ⊢ B ; {} ; ⇑[F]. The exponential may
// use nothing linear; only the persistent context survives promotion.
func (s System) Bang(d *Derivation) (*Derivation, error) {
	if err := s.premise(d, "bang"); err != nil {
		return nil, err
	}
	list, ok := upList(d.x)
	if !ok || len(list) != 1 {
		return nil, fmt.Errorf("triadic: bang: premise arrow %v is not ⇑ of a single formula", d.x)
	}
	if !d.l.IsEmpty() {
		return nil, fmt.Errorf("triadic: bang: linear context %v not empty", d.l)
	}
	out := s.one1(BangRule, d, d.b, d.l)
	out.x = seq.Down{F: &ll.Bang{X: list[0]}}
	return out, nil
}

// Release derives ⊢ B ; L ; ⇓F from ⊢ B ; L ; ⇑[F] when F is not
// synchronous: focus is only mandatory for synchronous connectives.
func (s System) Release(d *Derivation) (*Derivation, error) {
	if err := s.premise(d, "rel"); err != nil {
		return nil, err
	}
	list, ok := upList(d.x)
	if !ok || len(list) != 1 {
		return nil, fmt.Errorf("triadic: rel: premise arrow %v is not ⇑ of a single formula", d.x)
	}
	f := list[0]
	if !ll.Releasable(f) {
		return nil, fmt.Errorf("triadic: rel: %v is synchronous and may not release", f)
	}
	out := s.one1(ReleaseRule, d, d.b, d.l)
	out.x = seq.Down{F: f}
	return out, nil
}

// Negative phase

// Top derives ⊢ B ; L ; ⇑⊤::rest for any L and rest, with no premise.
func (s System) Top(b, l mset.MSet, rest []ll.Formula) *Derivation {
	list := append([]ll.Formula{&ll.Top{}}, rest...)
	return &Derivation{sys: s, rule: TopRule, b: b, l: l, x: seq.Up{List: list}}
}

// Bottom derives ⊢ B ; L ; ⇑⊥::M from ⊢ B ; L ; ⇑M.
func (s System) Bottom(d *Derivation) (*Derivation, error) {
	if err := s.premise(d, "bot"); err != nil {
		return nil, err
	}
	list, ok := upList(d.x)
	if !ok {
		return nil, fmt.Errorf("triadic: bot: premise arrow %v is not ⇑", d.x)
	}
	out := s.one1(BottomRule, d, d.b, d.l)
	out.x = seq.Up{List: append([]ll.Formula{&ll.Bottom{}}, list...)}
	return out, nil
}

// Par derives ⊢ B ; L ; ⇑(F⅋G)::M from ⊢ B ; L ; ⇑F::G::M.
func (s System) Par(d *Derivation) (*Derivation, error) {
	if err := s.premise(d, "par"); err != nil {
		return nil, err
	}
	list, ok := upList(d.x)
	if !ok || len(list) < 2 {
		return nil, fmt.Errorf("triadic: par: premise arrow %v lacks two pending formulas", d.x)
	}
	par := &ll.Par{X: list[0], Y: list[1]}
	out := s.one1(ParRule, d, d.b, d.l)
	out.x = seq.Up{List: append([]ll.Formula{ll.Formula(par)}, list[2:]...)}
	return out, nil
}

// With derives ⊢ B ; L ; ⇑(F&G)::M from ⊢ B ; L ; ⇑F::M and
// ⊢ B ; L ; ⇑G::M, duplicating the pending tail into both branches.
func (s System) With(d1, d2 *Derivation) (*Derivation, error) {
	if err := s.premises(d1, d2, "with"); err != nil {
		return nil, err
	}
	if !mset.Eq(d1.l, d2.l) {
		return nil, fmt.Errorf("triadic: with: premises disagree on linear context")
	}
	l1, ok1 := upList(d1.x)
	l2, ok2 := upList(d2.x)
	if !ok1 || !ok2 || len(l1) == 0 || len(l2) == 0 {
		return nil, fmt.Errorf("triadic: with: premise arrows %v, %v are not ⇑ with a head", d1.x, d2.x)
	}
	if !sameList(l1[1:], l2[1:]) {
		return nil, fmt.Errorf("triadic: with: pending tails differ")
	}
	w := &ll.With{X: l1[0], Y: l2[0]}
	out := s.two(WithRule, d1, d2, d1.b, d1.l)
	out.x = seq.Up{List: append([]ll.Formula{ll.Formula(w)}, l1[1:]...)}
	return out, nil
}

// Quest derives ⊢ B ; L ; ⇑?F::M from ⊢ B,F ; L ; ⇑M, moving F into
// persistent storage.
func (s System) Quest(d *Derivation, f ll.Formula) (*Derivation, error) {
	if err := s.premise(d, "quest"); err != nil {
		return nil, err
	}
	list, ok := upList(d.x)
	if !ok {
		return nil, fmt.Errorf("triadic: quest: premise arrow %v is not ⇑", d.x)
	}
	b, ok := d.b.RemoveOne(f)
	if !ok {
		return nil, fmt.Errorf("triadic: quest: %v not in classical context %v", f, d.b)
	}
	out := s.one1(QuestRule, d, b, d.l)
	out.x = seq.Up{List: append([]ll.Formula{ll.Formula(&ll.Quest{X: f})}, list...)}
	return out, nil
}

// Store derives ⊢ B ; L ; ⇑F::M from ⊢ B ; L,F ; ⇑M when F is not
// asynchronous: atoms and synchronous formulas leave the pending output and
// accumulate in the linear context to await a later Dec step.
func (s System) Store(d *Derivation, f ll.Formula) (*Derivation, error) {
	if err := s.premise(d, "store"); err != nil {
		return nil, err
	}
	if ll.IsAsynchronous(f) {
		return nil, fmt.Errorf("triadic: store: %v is asynchronous and must be decomposed", f)
	}
	list, ok := upList(d.x)
	if !ok {
		return nil, fmt.Errorf("triadic: store: premise arrow %v is not ⇑", d.x)
	}
	l, ok := d.l.RemoveOne(f)
	if !ok {
		return nil, fmt.Errorf("triadic: store: %v not in linear context %v", f, d.l)
	}
	out := s.one1(StoreRule, d, d.b, l)
	out.x = seq.Up{List: append([]ll.Formula{f}, list...)}
	return out, nil
}

// Dec1 derives ⊢ B ; L,F ; ⇑[] from ⊢ B ; L ; ⇓F: with the pending output
// exhausted, select F from the linear context and focus on it. Positive
// atoms may not be selected.
func (s System) Dec1(d *Derivation) (*Derivation, error) {
	if err := s.premise(d, "dec1"); err != nil {
		return nil, err
	}
	f, err := focusOf(d, "dec1")
	if err != nil {
		return nil, err
	}
	if ll.IsPositiveAtom(f) {
		return nil, fmt.Errorf("triadic: dec1: may not focus on positive atom %v", f)
	}
	out := s.one1(Dec1Rule, d, d.b, d.l.Add(f))
	out.x = seq.Up{}
	return out, nil
}

// Dec2 derives ⊢ B ; L ; ⇑[] from ⊢ B ; L ; ⇓F when F is an element of B:
// focus on a persistent formula, which stays in B. Positive atoms may not
// be selected.
func (s System) Dec2(d *Derivation) (*Derivation, error) {
	if err := s.premise(d, "dec2"); err != nil {
		return nil, err
	}
	f, err := focusOf(d, "dec2")
	if err != nil {
		return nil, err
	}
	if ll.IsPositiveAtom(f) {
		return nil, fmt.Errorf("triadic: dec2: may not focus on positive atom %v", f)
	}
	if !d.b.Contains(f) {
		return nil, fmt.Errorf("triadic: dec2: %v not in classical context %v", f, d.b)
	}
	out := s.one1(Dec2Rule, d, d.b, d.l)
	out.x = seq.Up{}
	return out, nil
}

// Quantifiers

// Exists derives ⊢ B ; L ; ⇓∃v.F from ⊢ B ; L ; ⇓F[t/v] for one witness t.
func (s System) Exists(d *Derivation, q *ll.Exists, t ll.Term) (*Derivation, error) {
	if err := s.premise(d, "ex"); err != nil {
		return nil, err
	}
	f, err := focusOf(d, "ex")
	if err != nil {
		return nil, err
	}
	if !ll.Equal(f, ll.Instantiate(q, t)) {
		return nil, fmt.Errorf("triadic: ex: focus %v is not %v instantiated at %v", f, q, t)
	}
	out := s.one1(ExistsRule, d, d.b, d.l)
	out.x = seq.Down{F: q}
	out.wit = t
	return out, nil
}

// Forall derives ⊢ B ; L ; ⇑(∀v.F)::rest from the premise family giving
// ⊢ B ; L ; ⇑F[t/v]::rest for every term t. This is the one rule whose
// premise is an infinite conjunction over the term domain rather than a
// finite tree.
//
// No constructor can traverse the family, so in the height-indexed system
// the caller declares the uniform height bound h covering every member;
// justifying that uniformity is the caller's obligation (see the
// uniform-bound principle in seq/adequacy). Instantiate validates any
// individual member against the declaration. h is ignored by the plain
// system.
func (s System) Forall(b, l mset.MSet, rest []ll.Formula, q *ll.Forall, fam Family, h int) (*Derivation, error) {
	if fam == nil {
		return nil, fmt.Errorf("triadic: fx: nil premise family")
	}
	if h < 0 {
		return nil, fmt.Errorf("triadic: fx: negative height")
	}
	restCopy := make([]ll.Formula, len(rest))
	copy(restCopy, rest)
	d := &Derivation{
		sys:  s,
		rule: ForallRule,
		b:    b,
		l:    l,
		x:    seq.Up{List: append([]ll.Formula{ll.Formula(q)}, restCopy...)},
		fam:  fam,
		q:    q,
		rest: restCopy,
	}
	if s.Heights {
		d.h = 1 + h
	}
	return d, nil
}

// Helpers

func (s System) premise(d *Derivation, rule string) error {
	if d.sys != s {
		return fmt.Errorf("triadic: %s: premise from system %+v, want %+v", rule, d.sys, s)
	}
	return nil
}

func (s System) premises(d1, d2 *Derivation, rule string) error {
	if err := s.premise(d1, rule); err != nil {
		return err
	}
	if err := s.premise(d2, rule); err != nil {
		return err
	}
	if !mset.Eq(d1.b, d2.b) {
		return fmt.Errorf("triadic: %s: premises disagree on classical context", rule)
	}
	return nil
}

func (s System) one1(r Rule, d *Derivation, b, l mset.MSet) *Derivation {
	out := &Derivation{sys: s, rule: r, b: b, l: l, prem: []*Derivation{d}}
	if s.Heights {
		out.h = 1 + d.h
	}
	return out
}

func (s System) two(r Rule, d1, d2 *Derivation, b, l mset.MSet) *Derivation {
	out := &Derivation{sys: s, rule: r, b: b, l: l, prem: []*Derivation{d1, d2}}
	if s.Heights {
		out.h = 1 + max(d1.h, d2.h)
	}
	return out
}

func focusOf(d *Derivation, rule string) (ll.Formula, error) {
	if x, ok := d.x.(seq.Down); ok {
		return x.F, nil
	}
	return nil, fmt.Errorf("triadic: %s: premise arrow %v is not ⇓", rule, d.x)
}

func upList(x seq.Arrow) ([]ll.Formula, bool) {
	u, ok := x.(seq.Up)
	return u.List, ok
}

func upEquals(x seq.Arrow, want []ll.Formula) bool {
	list, ok := upList(x)
	return ok && sameList(list, want)
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
	s := fmt.Sprintf("%v ⊢ %v ; %v ; %v", d.rule, d.b, d.l, d.x)
	if d.sys.Heights {
		s += fmt.Sprintf(" @%d", d.h)
	}
	return s
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
