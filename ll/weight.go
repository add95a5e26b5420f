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

package ll

// Weight returns the structural complexity of f, the primary induction
// measure of cut elimination. Atoms and units weigh 1; every connective adds
// 1 to the weight of its immediate subformulas. In particular
// Weight(!F) = Weight(F)+1 > Weight(F).
//
// Weight is invariant under duality and, because substitution only touches
// terms, under first-order substitution.
func Weight(f Formula) int {
	switch x := f.(type) {
	case *Atom, *One, *Bottom, *Top, *Zero:
		return 1
	case *Tensor:
		return 1 + Weight(x.X) + Weight(x.Y)
	case *Par:
		return 1 + Weight(x.X) + Weight(x.Y)
	case *Plus:
		return 1 + Weight(x.X) + Weight(x.Y)
	case *With:
		return 1 + Weight(x.X) + Weight(x.Y)
	case *Bang:
		return 1 + Weight(x.X)
	case *Quest:
		return 1 + Weight(x.X)
	case *Exists:
		return 1 + Weight(x.Body)
	case *Forall:
		return 1 + Weight(x.Body)
	}
	panic("ll: unknown formula")
}
