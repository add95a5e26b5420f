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

	"linlog.dev/go/ll/mset"
)

// Exchange transports d to the multiset-equal contexts b and l, with
// height and cut count unchanged.
//
// Contexts are kept in canonical form, so two multiset-equal contexts are
// the same value and the transported derivation is d itself; the function
// exists so the congruence property of every system in the family is an
// explicit, checkable part of the API rather than a representation
// accident callers must reason about.
func Exchange(d *Derivation, b, l mset.MSet) (*Derivation, error) {
	if !mset.Eq(b, d.b) {
		return nil, fmt.Errorf("dyadic: exchange: classical context %v not multiset-equal to %v", b, d.b)
	}
	if !mset.Eq(l, d.l) {
		return nil, fmt.Errorf("dyadic: exchange: linear context %v not multiset-equal to %v", l, d.l)
	}
	return d, nil
}
