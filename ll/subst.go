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

// Subst returns f with every free occurrence of the variable v replaced by
// the term t. An inner binder for v shadows the substitution. Subst commutes
// with Dual: Subst(Dual(f), v, t) equals Dual(Subst(f, v, t)).
func Subst(f Formula, v string, t Term) Formula {
	switch x := f.(type) {
	case *Atom:
		return &Atom{Sign: x.Sign, Name: x.Name, Args: substTerms(x.Args, v, t)}
	case *One, *Bottom, *Top, *Zero:
		return f
	case *Tensor:
		return &Tensor{X: Subst(x.X, v, t), Y: Subst(x.Y, v, t)}
	case *Par:
		return &Par{X: Subst(x.X, v, t), Y: Subst(x.Y, v, t)}
	case *Plus:
		return &Plus{X: Subst(x.X, v, t), Y: Subst(x.Y, v, t)}
	case *With:
		return &With{X: Subst(x.X, v, t), Y: Subst(x.Y, v, t)}
	case *Bang:
		return &Bang{X: Subst(x.X, v, t)}
	case *Quest:
		return &Quest{X: Subst(x.X, v, t)}
	case *Exists:
		if x.Var == v {
			return x
		}
		return &Exists{Var: x.Var, Body: Subst(x.Body, v, t)}
	case *Forall:
		if x.Var == v {
			return x
		}
		return &Forall{Var: x.Var, Body: Subst(x.Body, v, t)}
	}
	panic("ll: unknown formula")
}

// Instantiate opens a quantifier body with the witness t. The formula must
// be an Exists or a Forall.
func Instantiate(f Formula, t Term) Formula {
	switch x := f.(type) {
	case *Exists:
		return Subst(x.Body, x.Var, t)
	case *Forall:
		return Subst(x.Body, x.Var, t)
	}
	panic("ll: Instantiate of non-quantifier")
}

// SubstTerm returns u with every occurrence of the variable v replaced by t.
func SubstTerm(u Term, v string, t Term) Term {
	switch x := u.(type) {
	case *Var:
		if x.Name == v {
			return t
		}
		return x
	case *Fun:
		return &Fun{Name: x.Name, Args: substTerms(x.Args, v, t)}
	case *Num:
		return x
	}
	panic("ll: unknown term")
}

func substTerms(args []Term, v string, t Term) []Term {
	if len(args) == 0 {
		return args
	}
	out := make([]Term, len(args))
	for i, a := range args {
		out[i] = SubstTerm(a, v, t)
	}
	return out
}
