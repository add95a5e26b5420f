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
	"linlog.dev/go/seq"
	"linlog.dev/go/seq/triadic"
)

// Index introduction and erasure for the focused system. Erasure is plain
// induction; introduction threads the UniformBound principle through every
// universal node, which is the only place the missing height witness is
// not computable.

// IndexTriadic transports a derivation of the plain focused system into
// its height-indexed twin.
func IndexTriadic(d *triadic.Derivation, p UniformBound) (*triadic.Derivation, error) {
	if d.System() != triadic.Plain {
		return nil, fmt.Errorf("adequacy: index: derivation is not in the plain triadic system")
	}
	if p == nil {
		return nil, fmt.Errorf("adequacy: index: nil uniform-bound principle")
	}
	return convTriadic(d, triadic.Indexed, p)
}

// EraseTriadic erases the height index, transporting a derivation of the
// height-indexed focused system into the plain one.
func EraseTriadic(d *triadic.Derivation) (*triadic.Derivation, error) {
	if d.System() != triadic.Indexed {
		return nil, fmt.Errorf("adequacy: erase: derivation is not in the indexed triadic system")
	}
	return convTriadic(d, triadic.Plain, nil)
}

func convTriadic(d *triadic.Derivation, s triadic.System, p UniformBound) (*triadic.Derivation, error) {
	conv1 := func() (*triadic.Derivation, error) {
		return convTriadic(d.Premises()[0], s, p)
	}
	switch d.Rule() {
	case triadic.Init1Rule:
		return s.Init1(d.Classical(), downFocus(d))
	case triadic.Init2Rule:
		return s.Init2(d.Classical(), downFocus(d))
	case triadic.OneRule:
		return s.One(d.Classical()), nil
	case triadic.TopRule:
		return s.Top(d.Classical(), d.Linear(), upPending(d)[1:]), nil
	case triadic.TensorRule, triadic.WithRule:
		p1, err := convTriadic(d.Premises()[0], s, p)
		if err != nil {
			return nil, err
		}
		p2, err := convTriadic(d.Premises()[1], s, p)
		if err != nil {
			return nil, err
		}
		if d.Rule() == triadic.TensorRule {
			return s.Tensor(p1, p2)
		}
		return s.With(p1, p2)
	case triadic.Plus1Rule:
		p1, err := conv1()
		if err != nil {
			return nil, err
		}
		return s.Plus1(p1, downFocus(d).(*ll.Plus).Y)
	case triadic.Plus2Rule:
		p1, err := conv1()
		if err != nil {
			return nil, err
		}
		return s.Plus2(p1, downFocus(d).(*ll.Plus).X)
	case triadic.BangRule:
		p1, err := conv1()
		if err != nil {
			return nil, err
		}
		return s.Bang(p1)
	case triadic.ReleaseRule:
		p1, err := conv1()
		if err != nil {
			return nil, err
		}
		return s.Release(p1)
	case triadic.BottomRule:
		p1, err := conv1()
		if err != nil {
			return nil, err
		}
		return s.Bottom(p1)
	case triadic.ParRule:
		p1, err := conv1()
		if err != nil {
			return nil, err
		}
		return s.Par(p1)
	case triadic.QuestRule:
		p1, err := conv1()
		if err != nil {
			return nil, err
		}
		return s.Quest(p1, upPending(d)[0].(*ll.Quest).X)
	case triadic.StoreRule:
		p1, err := conv1()
		if err != nil {
			return nil, err
		}
		return s.Store(p1, upPending(d)[0])
	case triadic.Dec1Rule:
		p1, err := conv1()
		if err != nil {
			return nil, err
		}
		return s.Dec1(p1)
	case triadic.Dec2Rule:
		p1, err := conv1()
		if err != nil {
			return nil, err
		}
		return s.Dec2(p1)
	case triadic.ExistsRule:
		p1, err := conv1()
		if err != nil {
			return nil, err
		}
		t, _ := d.Witness()
		return s.Exists(p1, downFocus(d).(*ll.Exists), t)
	case triadic.ForallRule:
		list := upPending(d)
		q := list[0].(*ll.Forall)
		fam := func(t ll.Term) (*triadic.Derivation, error) {
			pd, err := d.Instantiate(t)
			if err != nil {
				return nil, err
			}
			return convTriadic(pd, s, p)
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
		return s.Forall(d.Classical(), d.Linear(), list[1:], q, fam, h)
	}
	return nil, fmt.Errorf("adequacy: unknown triadic rule %v", d.Rule())
}

func downFocus(d *triadic.Derivation) ll.Formula {
	return d.Arrow().(seq.Down).F
}

func upPending(d *triadic.Derivation) []ll.Formula {
	return d.Arrow().(seq.Up).List
}
