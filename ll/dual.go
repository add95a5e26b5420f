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

// Dual returns the De Morgan dual of f. It is an involution:
// Dual(Dual(f)) is structurally equal to f.
func Dual(f Formula) Formula {
	switch x := f.(type) {
	case *Atom:
		return &Atom{Sign: !x.Sign, Name: x.Name, Args: x.Args}
	case *One:
		return &Bottom{}
	case *Bottom:
		return &One{}
	case *Top:
		return &Zero{}
	case *Zero:
		return &Top{}
	case *Tensor:
		return &Par{X: Dual(x.X), Y: Dual(x.Y)}
	case *Par:
		return &Tensor{X: Dual(x.X), Y: Dual(x.Y)}
	case *Plus:
		return &With{X: Dual(x.X), Y: Dual(x.Y)}
	case *With:
		return &Plus{X: Dual(x.X), Y: Dual(x.Y)}
	case *Bang:
		return &Quest{X: Dual(x.X)}
	case *Quest:
		return &Bang{X: Dual(x.X)}
	case *Exists:
		return &Forall{Var: x.Var, Body: Dual(x.Body)}
	case *Forall:
		return &Exists{Var: x.Var, Body: Dual(x.Body)}
	}
	panic("ll: unknown formula")
}
