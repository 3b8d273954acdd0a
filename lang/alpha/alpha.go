// Copyright 2017 The Wuffs Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package alpha decides alpha-equivalence between two expressions, each of
// which may be in any mix of the three binding representations (fully
// named, fully nameless, or mixed).
//
// The two trees are walked in lockstep; at every node pair, the decision
// dispatches on the cross product of the two variant tags. Binders push a
// matching entry onto each side's referencing environment (a name for a
// named binder, an anonymous shift for a nameless one) and pop it on the
// way back out, so that two bound variables are judged equivalent by
// comparing the de Bruijn distance to their binder, never by comparing
// names; only free named variables are compared by name.
package alpha

import (
	"github.com/google/lambdacalc/lang/arena"
	"github.com/google/lambdacalc/lang/renv"
	"github.com/google/lambdacalc/lang/strs"
)

// Side bundles one expression with the arena and live environment it is
// resolved against.
type Side struct {
	Env   *renv.Env
	Arena *arena.Arena
	Expr  arena.ID
}

// Equivalent decides whether a and b denote alpha-equivalent expressions.
// It runs in O(size of the smaller tree).
func Equivalent(a, b Side) bool {
	ka, kb := a.Arena.Kind(a.Expr), b.Arena.Kind(b.Expr)

	switch ka {
	case arena.KNamedVariable:
		switch kb {
		case arena.KNamedVariable:
			return sameVariable(a.Env, a.Arena.VariableName(a.Expr), b.Env, b.Arena.VariableName(b.Expr))
		case arena.KNamelessVariable:
			return namedMatchesNameless(a.Env, a.Arena.VariableName(a.Expr), b.Arena.Index(b.Expr))
		}
		return false

	case arena.KNamelessVariable:
		switch kb {
		case arena.KNamedVariable:
			return namedMatchesNameless(b.Env, b.Arena.VariableName(b.Expr), a.Arena.Index(a.Expr))
		case arena.KNamelessVariable:
			return a.Arena.Index(a.Expr) == b.Arena.Index(b.Expr)
		}
		return false

	case arena.KAbstraction, arena.KNamelessAbstraction:
		if kb != arena.KAbstraction && kb != arena.KNamelessAbstraction {
			return false
		}
		return equivalentBinders(a, b)

	case arena.KApplication:
		if kb != arena.KApplication {
			return false
		}
		aArgs, bArgs := a.Arena.Args(a.Expr), b.Arena.Args(b.Expr)
		if len(aArgs) != len(bArgs) {
			return false
		}
		if !Equivalent(Side{a.Env, a.Arena, a.Arena.Func(a.Expr)}, Side{b.Env, b.Arena, b.Arena.Func(b.Expr)}) {
			return false
		}
		for i := range aArgs {
			if !Equivalent(Side{a.Env, a.Arena, aArgs[i]}, Side{b.Env, b.Arena, bArgs[i]}) {
				return false
			}
		}
		return true
	}
	return false
}

// sameVariable decides two named-variable occurrences: equal if both are
// bound and resolve to the same de Bruijn index, or if both are free and
// their identifiers agree. A free name on one side can never equal a bound
// name on the other: that would collapse capture-sensitive distinctions
// a real substitution would respect.
func sameVariable(envA *renv.Env, nameA strs.ID, envB *renv.Env, nameB strs.ID) bool {
	ia, boundA := envA.LookupIndex(nameA)
	ib, boundB := envB.LookupIndex(nameB)
	if boundA != boundB {
		return false
	}
	if boundA {
		return ia == ib
	}
	return nameA == nameB
}

// namedMatchesNameless decides a named-variable occurrence against a
// nameless one: they agree iff the named side is bound and its index
// matches. A nameless variable whose index exceeds the current depth is
// free, but it carries no name, so it never matches a free named variable.
func namedMatchesNameless(namedEnv *renv.Env, name strs.ID, index uint32) bool {
	i, bound := namedEnv.LookupIndex(name)
	return bound && i == index
}

// equivalentBinders handles all four combinations of named/nameless
// abstraction. It pushes the right kind of binding on each side (a name for
// an Abstraction, an anonymous shift for a NamelessAbstraction or an
// Abstraction hole), recurses on the bodies, and undoes the push in reverse
// order before returning.
func equivalentBinders(a, b Side) bool {
	nameA := bindSide(a)
	nameB := bindSide(b)
	defer unbindSide(b, nameB)
	defer unbindSide(a, nameA)

	return Equivalent(
		Side{a.Env, a.Arena, a.Arena.Body(a.Expr)},
		Side{b.Env, b.Arena, b.Arena.Body(b.Expr)},
	)
}

// bindSide pushes the binder's slot onto its side's environment and returns
// the name that was bound, or strs.Invalid if it shifted anonymously.
func bindSide(s Side) strs.ID {
	if s.Arena.Kind(s.Expr) == arena.KAbstraction && s.Arena.HasParam(s.Expr) {
		name := s.Arena.VariableName(s.Expr)
		s.Env.Bind(name)
		return name
	}
	s.Env.Shift()
	return strs.Invalid
}

func unbindSide(s Side, name strs.ID) {
	if name != strs.Invalid {
		s.Env.Unbind(name)
		return
	}
	s.Env.Unshift()
}
