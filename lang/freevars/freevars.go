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

// Package freevars computes the free-variable set of an expression relative
// to an ambient referencing environment, in any mix of the three binding
// representations.
package freevars

import (
	"github.com/google/lambdacalc/lang/arena"
	"github.com/google/lambdacalc/lang/renv"
	"github.com/google/lambdacalc/lang/strs"
)

// Of returns the set of identifiers that occur free in e, relative to env.
// A NamelessVariable whose index exceeds env's current depth is free
// relative to env, but since it carries no name it contributes nothing to
// the result; only NamedVariable occurrences can name a free variable.
func Of(env *renv.Env, a *arena.Arena, e arena.ID) map[strs.ID]bool {
	out := map[strs.ID]bool{}
	walk(env, a, e, out)
	return out
}

func walk(env *renv.Env, a *arena.Arena, e arena.ID, out map[strs.ID]bool) {
	switch a.Kind(e) {
	case arena.KNamedVariable:
		name := a.VariableName(e)
		if _, bound := env.Lookup(name); !bound {
			out[name] = true
		}

	case arena.KNamelessVariable:
		// Carries no name; cannot contribute a free identifier.

	case arena.KAbstraction:
		if a.HasParam(e) {
			name := a.VariableName(e)
			env.Bind(name)
			walk(env, a, a.Body(e), out)
			env.Unbind(name)
			return
		}
		env.Shift()
		walk(env, a, a.Body(e), out)
		env.Unshift()

	case arena.KNamelessAbstraction:
		env.Shift()
		walk(env, a, a.Body(e), out)
		env.Unshift()

	case arena.KApplication:
		walk(env, a, a.Func(e), out)
		for _, arg := range a.Args(e) {
			walk(env, a, arg, out)
		}

	default:
		panic("freevars: unreachable expression kind")
	}
}
