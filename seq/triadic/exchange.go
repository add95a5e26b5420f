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

	"linlog.dev/go/ll/mset"
)

// Exchange transports d to the multiset-equal contexts b and l, height
// unchanged. The pending output of an Up arrow is genuinely ordered and is
// deliberately not subject to exchange.
//
// Contexts are kept in canonical form, so multiset-equal contexts are the
// same value and the transported derivation is d itself; the function makes
// the congruence property an explicit part of the API.
func Exchange(d *Derivation, b, l mset.MSet) (*Derivation, error) {
	if !mset.Eq(b, d.b) {
		return nil, fmt.Errorf("triadic: exchange: classical context %v not multiset-equal to %v", b, d.b)
	}
	if !mset.Eq(l, d.l) {
		return nil, fmt.Errorf("triadic: exchange: linear context %v not multiset-equal to %v", l, d.l)
	}
	return d, nil
}
