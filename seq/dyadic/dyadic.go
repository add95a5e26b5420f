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

// Package dyadic implements the dyadic sequent systems ⊢ B ; M for
// classical linear logic: a persistent classical context B and a linear
// multiset context M, with no focusing phases.
//
// The whole family shares one rule engine. A System value selects the
// capabilities of a variant: whether derivations carry a height index, and
// which cut rules, if any, are admitted. The variants of interest are the
// exported preset Systems; they are the cut-free system, its height-indexed
// twin, the single-cut and two-cut systems, and the fully cut-and-cost
// indexed system whose merged general-cut rule carries the (weight,
// sub-height) measure that a cut-elimination induction recurses on.
//
// Rules are stated on canonical multisets, so a side condition like
// "M = F::M′" means multiset membership, never list position. Derivations
// are immutable; constructors check every side condition and return an
// error for an illegal application. Underivability is not an error of this
// package: it is the absence of any constructor sequence.
package dyadic

import (
	"fmt"

	"linlog.dev/go/ll"
	"linlog.dev/go/ll/mset"
	"linlog.dev/go/seq"
)

// A CutMode selects which cut rules a system admits.
type CutMode uint8

const (
	// CutNone admits no cut rule.
	CutNone CutMode = iota

	// CutSingle admits the single-formula cut.
	CutSingle

	// CutDouble admits the single-formula cut and the closed cut against
	// the classical context.
	CutDouble

	// CutCost merges both cuts into the general-cut rule carrying a
	// (weight, sub-height) measure, and counts cuts on every derivation.
	CutCost
)

// A System fixes the capabilities of one member of the dyadic family.
// Cut-carrying systems are height-indexed; their constructors reject a
// System that says otherwise.
type System struct {
	Heights bool
	CutMode CutMode
}

// The members of the dyadic family.
var (
	// Plain is the cut-free, unindexed dyadic system.
	Plain = System{}

	// Indexed is the height-indexed twin of Plain.
	Indexed = System{Heights: true}

	// WithCut adds the single-formula cut rule to Indexed.
	WithCut = System{Heights: true, CutMode: CutSingle}

	// TwoCuts additionally admits the closed cut over the classical
	// context.
	TwoCuts = System{Heights: true, CutMode: CutDouble}

	// Costed is the fully cut-and-cost-indexed system with the merged
	// general-cut rule.
	Costed = System{Heights: true, CutMode: CutCost}
)

// A Rule identifies the final inference of a derivation.
type Rule uint8

const (
	InitRule Rule = iota
	OneRule
	TopRule
	BottomRule
	ParRule
	TensorRule
	Plus1Rule
	Plus2Rule
	WithRule
	BangRule
	QuestRule
	CopyRule
	ExistsRule
	ForallRule
	CutRule
	ClosedCutRule
	GeneralCutRule
)

var ruleNames = [...]string{
	InitRule:       "init",
	OneRule:        "one",
	TopRule:        "top",
	BottomRule:     "bot",
	ParRule:        "par",
	TensorRule:     "tensor",
	Plus1Rule:      "plus1",
	Plus2Rule:      "plus2",
	WithRule:       "with",
	BangRule:       "bang",
	QuestRule:      "quest",
	CopyRule:       "copy",
	ExistsRule:     "ex",
	ForallRule:     "fx",
	CutRule:        "cut",
	ClosedCutRule:  "ccut",
	GeneralCutRule: "gcut",
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

// A Derivation is an immutable proof tree concluding ⊢ B ; M in its system.
type Derivation struct {
	sys  System
	rule Rule
	b, l mset.MSet
	prem []*Derivation
	fam  Family
	q    *ll.Forall // principal formula of ForallRule

	prin   ll.Formula // principal formula of the final rule
	wit    ll.Term    // existential witness; ExistsRule only
	closed bool       // closed form of the general cut

	h  int // height; meaningful when sys.Heights
	c  int // cut count; meaningful when sys.CutMode == CutCost
	w  int // cut formula weight; GeneralCutRule only
	sh int // premise sub-height; GeneralCutRule only
}

// System returns the system d was built in.
func (d *Derivation) System() System { return d.sys }

// Rule returns the final rule of d.
func (d *Derivation) Rule() Rule { return d.rule }

// Classical returns the classical context of the conclusion.
func (d *Derivation) Classical() mset.MSet { return d.b }

// Linear returns the linear context of the conclusion.
func (d *Derivation) Linear() mset.MSet { return d.l }

// Premises returns the finite premises of the final rule. The universal
// rule's premise family is reached through Instantiate instead.
func (d *Derivation) Premises() []*Derivation { return d.prem }

// Height returns the derivation height. It reports false in a system
// without height indices.
func (d *Derivation) Height() (int, bool) { return d.h, d.sys.Heights }

// Cuts returns the number of cut applications. It reports false outside the
// cost-indexed system.
func (d *Derivation) Cuts() (int, bool) { return d.c, d.sys.CutMode == CutCost }

// CutMeasure returns the (weight, sub-height) pair of a general-cut node.
func (d *Derivation) CutMeasure() (w, sh int, ok bool) {
	return d.w, d.sh, d.rule == GeneralCutRule
}

// Principal returns the principal formula of the final rule: the formula
// introduced, copied or cut by it.
func (d *Derivation) Principal() ll.Formula { return d.prin }

// Witness returns the existential witness of an ExistsRule node.
func (d *Derivation) Witness() (ll.Term, bool) { return d.wit, d.rule == ExistsRule }

// ClosedForm reports whether a general-cut node is the closed form, the
// one cutting against the classical context.
func (d *Derivation) ClosedForm() bool { return d.closed }

// Instantiate returns the premise of a ForallRule derivation at witness t,
// validating its shape against the conclusion.
func (d *Derivation) Instantiate(t ll.Term) (*Derivation, error) {
	if d.rule != ForallRule {
		return nil, fmt.Errorf("dyadic: instantiate: final rule is %v, not fx", d.rule)
	}
	p, err := d.fam(t)
	if err != nil {
		return nil, err
	}
	rest, _ := d.l.RemoveOne(d.q)
	want := rest.Add(ll.Instantiate(d.q, t))
	if p.sys != d.sys || !mset.Eq(p.b, d.b) || !mset.Eq(p.l, want) {
		return nil, fmt.Errorf("dyadic: instantiate: family premise at %v has the wrong conclusion", t)
	}
	if d.sys.Heights && p.h > d.h-1 {
		return nil, fmt.Errorf("dyadic: instantiate: family height %d exceeds the uniform bound %d", p.h, d.h-1)
	}
	if d.sys.CutMode == CutCost && p.c > d.c {
		return nil, fmt.Errorf("dyadic: instantiate: family cut count %d exceeds the declared %d", p.c, d.c)
	}
	return p, nil
}

// Init derives ⊢ B ; {A, A⊥} for any atom A, at height 0.
func (s System) Init(b mset.MSet, a *ll.Atom) *Derivation {
	return &Derivation{sys: s, rule: InitRule, b: b, l: mset.Of(a, ll.Dual(a)), prin: a}
}

// One derives ⊢ B ; {1} at height 0.
func (s System) One(b mset.MSet) *Derivation {
	one := &ll.One{}
	return &Derivation{sys: s, rule: OneRule, b: b, l: mset.Of(one), prin: one}
}

// Top derives ⊢ B ; ⊤,M for any M, with no premise, at height 0.
func (s System) Top(b, m mset.MSet) *Derivation {
	top := &ll.Top{}
	return &Derivation{sys: s, rule: TopRule, b: b, l: m.Add(top), prin: top}
}

// Bottom derives ⊢ B ; ⊥,M from ⊢ B ; M.
func (s System) Bottom(d *Derivation) (*Derivation, error) {
	if err := s.premise(d, "bot"); err != nil {
		return nil, err
	}
	bot := &ll.Bottom{}
	out := s.one1(BottomRule, d, d.b, d.l.Add(bot))
	out.prin = bot
	return out, nil
}

// Par derives ⊢ B ; F⅋G,M from ⊢ B ; F,G,M.
func (s System) Par(d *Derivation, f, g ll.Formula) (*Derivation, error) {
	if err := s.premise(d, "par"); err != nil {
		return nil, err
	}
	m, err := removeAll(d.l, "dyadic: par", f, g)
	if err != nil {
		return nil, err
	}
	par := &ll.Par{X: f, Y: g}
	out := s.one1(ParRule, d, d.b, m.Add(par))
	out.prin = par
	return out, nil
}

// Tensor derives ⊢ B ; F⊗G,M,N from ⊢ B ; F,M and ⊢ B ; G,N.
func (s System) Tensor(d1, d2 *Derivation, f, g ll.Formula) (*Derivation, error) {
	if err := s.premises(d1, d2, "tensor"); err != nil {
		return nil, err
	}
	m, err := removeAll(d1.l, "dyadic: tensor", f)
	if err != nil {
		return nil, err
	}
	n, err := removeAll(d2.l, "dyadic: tensor", g)
	if err != nil {
		return nil, err
	}
	tens := &ll.Tensor{X: f, Y: g}
	out := s.two(TensorRule, d1, d2, d1.b, m.Concat(n).Add(tens))
	out.prin = tens
	return out, nil
}

// Plus1 derives ⊢ B ; F⊕G,M from ⊢ B ; F,M.
func (s System) Plus1(d *Derivation, f, g ll.Formula) (*Derivation, error) {
	if err := s.premise(d, "plus1"); err != nil {
		return nil, err
	}
	m, err := removeAll(d.l, "dyadic: plus1", f)
	if err != nil {
		return nil, err
	}
	plus := &ll.Plus{X: f, Y: g}
	out := s.one1(Plus1Rule, d, d.b, m.Add(plus))
	out.prin = plus
	return out, nil
}

// Plus2 derives ⊢ B ; F⊕G,M from ⊢ B ; G,M.
func (s System) Plus2(d *Derivation, f, g ll.Formula) (*Derivation, error) {
	if err := s.premise(d, "plus2"); err != nil {
		return nil, err
	}
	m, err := removeAll(d.l, "dyadic: plus2", g)
	if err != nil {
		return nil, err
	}
	plus := &ll.Plus{X: f, Y: g}
	out := s.one1(Plus2Rule, d, d.b, m.Add(plus))
	out.prin = plus
	return out, nil
}

// With derives ⊢ B ; F&G,M from ⊢ B ; F,M and ⊢ B ; G,M.
func (s System) With(d1, d2 *Derivation, f, g ll.Formula) (*Derivation, error) {
	if err := s.premises(d1, d2, "with"); err != nil {
		return nil, err
	}
	m, err := removeAll(d1.l, "dyadic: with", f)
	if err != nil {
		return nil, err
	}
	n, err := removeAll(d2.l, "dyadic: with", g)
	if err != nil {
		return nil, err
	}
	if !mset.Eq(m, n) {
		return nil, fmt.Errorf("dyadic: with: premise contexts %v and %v differ", m, n)
	}
	with := &ll.With{X: f, Y: g}
	out := s.two(WithRule, d1, d2, d1.b, m.Add(with))
	out.prin = with
	return out, nil
}

// Bang derives ⊢ B ; {!F} from ⊢ B ; {F}. The linear context must be empty
// apart from F itself.
func (s System) Bang(d *Derivation, f ll.Formula) (*Derivation, error) {
	if err := s.premise(d, "bang"); err != nil {
		return nil, err
	}
	if !mset.Eq(d.l, mset.Of(f)) {
		return nil, fmt.Errorf("dyadic: bang: linear context %v not the singleton {%v}", d.l, f)
	}
	bang := &ll.Bang{X: f}
	out := s.one1(BangRule, d, d.b, mset.Of(bang))
	out.prin = bang
	return out, nil
}

// Quest derives ⊢ B ; ?F,M from ⊢ B,F ; M, moving F out of the classical
// context of the premise.
func (s System) Quest(d *Derivation, f ll.Formula) (*Derivation, error) {
	if err := s.premise(d, "quest"); err != nil {
		return nil, err
	}
	b, ok := d.b.RemoveOne(f)
	if !ok {
		return nil, fmt.Errorf("dyadic: quest: %v not in classical context %v", f, d.b)
	}
	quest := &ll.Quest{X: f}
	out := s.one1(QuestRule, d, b, d.l.Add(quest))
	out.prin = quest
	return out, nil
}

// Copy derives ⊢ B ; M from ⊢ B ; F,M when F is an element of B. The
// classical context is persistent; F stays in it.
func (s System) Copy(d *Derivation, f ll.Formula) (*Derivation, error) {
	if err := s.premise(d, "copy"); err != nil {
		return nil, err
	}
	if !d.b.Contains(f) {
		return nil, fmt.Errorf("dyadic: copy: %v not in classical context %v", f, d.b)
	}
	m, err := removeAll(d.l, "dyadic: copy", f)
	if err != nil {
		return nil, err
	}
	out := s.one1(CopyRule, d, d.b, m)
	out.prin = f
	return out, nil
}

// Exists derives ⊢ B ; ∃v.F,M from ⊢ B ; F[t/v],M for the witness t.
func (s System) Exists(d *Derivation, q *ll.Exists, t ll.Term) (*Derivation, error) {
	if err := s.premise(d, "ex"); err != nil {
		return nil, err
	}
	m, err := removeAll(d.l, "dyadic: ex", ll.Instantiate(q, t))
	if err != nil {
		return nil, err
	}
	out := s.one1(ExistsRule, d, d.b, m.Add(q))
	out.prin = q
	out.wit = t
	return out, nil
}

// Forall derives ⊢ B ; ∀v.F,M from the premise family giving
// ⊢ B ; F[t/v],M for every term t.
//
// The family is an infinite premise: no constructor can traverse it, so the
// caller declares the uniform height bound h and cut-count bound c covering
// every member. Totality and uniformity are the caller's obligation (see
// the uniform-bound principle in seq/adequacy); Instantiate validates any
// individual member against the declaration. The indices are ignored by
// systems that do not carry them.
func (s System) Forall(b, m mset.MSet, q *ll.Forall, fam Family, h, c int) (*Derivation, error) {
	if fam == nil {
		return nil, fmt.Errorf("dyadic: fx: nil premise family")
	}
	if h < 0 || c < 0 {
		return nil, fmt.Errorf("dyadic: fx: negative index")
	}
	d := &Derivation{sys: s, rule: ForallRule, b: b, l: m.Add(q), fam: fam, q: q, prin: q}
	if s.Heights {
		d.h = 1 + h
	}
	if s.CutMode == CutCost {
		d.c = c
	}
	return d, nil
}

// premise checks that d belongs to system s.
func (s System) premise(d *Derivation, rule string) error {
	if d.sys != s {
		return fmt.Errorf("dyadic: %s: premise from system %+v, want %+v", rule, d.sys, s)
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
		return fmt.Errorf("dyadic: %s: premises disagree on classical context", rule)
	}
	return nil
}

// one1 builds a one-premise node with height 1+n and inherited cut count.
func (s System) one1(r Rule, d *Derivation, b, l mset.MSet) *Derivation {
	out := &Derivation{sys: s, rule: r, b: b, l: l, prem: []*Derivation{d}}
	if s.Heights {
		out.h = 1 + d.h
	}
	if s.CutMode == CutCost {
		out.c = d.c
	}
	return out
}

// two builds a two-premise node with height 1+max(n,m) and summed cuts.
func (s System) two(r Rule, d1, d2 *Derivation, b, l mset.MSet) *Derivation {
	out := &Derivation{sys: s, rule: r, b: b, l: l, prem: []*Derivation{d1, d2}}
	if s.Heights {
		out.h = 1 + max(d1.h, d2.h)
	}
	if s.CutMode == CutCost {
		out.c = d1.c + d2.c
	}
	return out
}

func removeAll(m mset.MSet, rule string, fs ...ll.Formula) (mset.MSet, error) {
	for _, f := range fs {
		var ok bool
		m, ok = m.RemoveOne(f)
		if !ok {
			return m, fmt.Errorf("%s: %v not in linear context", rule, f)
		}
	}
	return m, nil
}

// Label implements seq.Node.
func (d *Derivation) Label() string {
	s := fmt.Sprintf("%v ⊢ %v ; %v", d.rule, d.b, d.l)
	if d.sys.Heights {
		s += fmt.Sprintf(" @%d", d.h)
	}
	if d.sys.CutMode == CutCost {
		s += fmt.Sprintf(" #%d", d.c)
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
