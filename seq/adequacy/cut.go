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
	"fmt"

	"linlog.dev/go/ll"
	"linlog.dev/go/seq/dyadic"
)

// Conversions within the dyadic family: height introduction and erasure,
// and the bridge between the two-cut system and the fully cut-and-cost
// indexed one. The cut cases carry the measure translation: a closed cut
// on F at heights (n, m) becomes a general cut of weight weight(!F) and
// sub-height n+m, concluding at height 1+max(n,m).

// IndexDyadic transports a derivation of the plain dyadic system into its
// height-indexed twin.
func IndexDyadic(d *dyadic.Derivation, p UniformBound) (*dyadic.Derivation, error) {
	if d.System() != dyadic.Plain {
		return nil, fmt.Errorf("adequacy: index: derivation is not in the plain dyadic system")
	}
	if p == nil {
		return nil, fmt.Errorf("adequacy: index: nil uniform-bound principle")
	}
	return convDyadic(d, dyadic.Indexed, p)
}

// EraseDyadic erases the height index of a derivation of the
// height-indexed dyadic system.
func EraseDyadic(d *dyadic.Derivation) (*dyadic.Derivation, error) {
	if d.System() != dyadic.Indexed {
		return nil, fmt.Errorf("adequacy: erase: derivation is not in the indexed dyadic system")
	}
	return convDyadic(d, dyadic.Plain, nil)
}

// CostIndex transports a derivation of the two-cut system into the fully
// cut-and-cost-indexed system, computing its cut count. The principle p
// supplies the uniform cut-count bound for universal premise families.
func CostIndex(d *dyadic.Derivation, p UniformBound) (*dyadic.Derivation, error) {
	if d.System() != dyadic.TwoCuts {
		return nil, fmt.Errorf("adequacy: cost: derivation is not in the two-cut system")
	}
	if p == nil {
		return nil, fmt.Errorf("adequacy: cost: nil uniform-bound principle")
	}
	return convDyadic(d, dyadic.Costed, p)
}

// CostErase forgets the cut count, transporting a derivation of the
// cost-indexed system back into the two-cut system. General cuts map back
// to the cut rule matching their form; heights are unchanged.
func CostErase(d *dyadic.Derivation) (*dyadic.Derivation, error) {
	if d.System() != dyadic.Costed {
		return nil, fmt.Errorf("adequacy: cost erase: derivation is not in the cost-indexed system")
	}
	return convDyadic(d, dyadic.TwoCuts, nil)
}

func convDyadic(d *dyadic.Derivation, s dyadic.System, p UniformBound) (*dyadic.Derivation, error) {
	var p1, p2 *dyadic.Derivation
	var err error
	if prem := d.Premises(); len(prem) > 0 {
		if p1, err = convDyadic(prem[0], s, p); err != nil {
			return nil, err
		}
		if len(prem) > 1 {
			if p2, err = convDyadic(prem[1], s, p); err != nil {
				return nil, err
			}
		}
	}

	switch d.Rule() {
	case dyadic.InitRule:
		return s.Init(d.Classical(), d.Principal().(*ll.Atom)), nil
	case dyadic.OneRule:
		return s.One(d.Classical()), nil
	case dyadic.TopRule:
		m, _ := d.Linear().RemoveOne(d.Principal())
		return s.Top(d.Classical(), m), nil
	case dyadic.BottomRule:
		return s.Bottom(p1)
	case dyadic.ParRule:
		pr := d.Principal().(*ll.Par)
		return s.Par(p1, pr.X, pr.Y)
	case dyadic.TensorRule:
		pr := d.Principal().(*ll.Tensor)
		return s.Tensor(p1, p2, pr.X, pr.Y)
	case dyadic.Plus1Rule:
		pr := d.Principal().(*ll.Plus)
		return s.Plus1(p1, pr.X, pr.Y)
	case dyadic.Plus2Rule:
		pr := d.Principal().(*ll.Plus)
		return s.Plus2(p1, pr.X, pr.Y)
	case dyadic.WithRule:
		pr := d.Principal().(*ll.With)
		return s.With(p1, p2, pr.X, pr.Y)
	case dyadic.BangRule:
		return s.Bang(p1, d.Principal().(*ll.Bang).X)
	case dyadic.QuestRule:
		return s.Quest(p1, d.Principal().(*ll.Quest).X)
	case dyadic.CopyRule:
		return s.Copy(p1, d.Principal())
	case dyadic.ExistsRule:
		t, _ := d.Witness()
		return s.Exists(p1, d.Principal().(*ll.Exists), t)
	case dyadic.ForallRule:
		return convDyadicForall(d, s, p)
	case dyadic.CutRule:
		if s.CutMode == dyadic.CutCost {
			return s.GeneralCut(p1, p2, d.Principal())
		}
		return s.Cut(p1, p2, d.Principal())
	case dyadic.ClosedCutRule:
		if s.CutMode == dyadic.CutCost {
			return s.GeneralCutClosed(p1, p2, d.Principal())
		}
		return s.ClosedCut(p1, p2, d.Principal())
	case dyadic.GeneralCutRule:
		if d.ClosedForm() {
			if s.CutMode == dyadic.CutCost {
				return s.GeneralCutClosed(p1, p2, d.Principal())
			}
			return s.ClosedCut(p1, p2, d.Principal())
		}
		if s.CutMode == dyadic.CutCost {
			return s.GeneralCut(p1, p2, d.Principal())
		}
		return s.Cut(p1, p2, d.Principal())
	}
	return nil, fmt.Errorf("adequacy: unknown dyadic rule %v", d.Rule())
}

func convDyadicForall(d *dyadic.Derivation, s dyadic.System, p UniformBound) (*dyadic.Derivation, error) {
	q := d.Principal().(*ll.Forall)
	m, _ := d.Linear().RemoveOne(q)
	fam := func(t ll.Term) (*dyadic.Derivation, error) {
		pd, err := d.Instantiate(t)
		if err != nil {
			return nil, err
		}
		return convDyadic(pd, s, p)
	}
	h := 0
	if s.Heights {
		if src, ok := d.Height(); ok {
			h = src - 1
		} else {
			var err error
			h, err = p.Bound(func(t ll.Term) (int, error) {
				id, err := fam(t)
				if err != nil {
					return 0, err
				}
				n, _ := id.Height()
				return n, nil
			})
			if err != nil {
				return nil, err
			}
		}
	}
	c := 0
	if s.CutMode == dyadic.CutCost {
		var err error
		c, err = p.Bound(func(t ll.Term) (int, error) {
			id, err := fam(t)
			if err != nil {
				return 0, err
			}
			n, _ := id.Cuts()
			return n, nil
		})
		if err != nil {
			return nil, err
		}
	}
	return s.Forall(d.Classical(), m, q, fam, h, c)
}
