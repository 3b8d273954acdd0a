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

// Package nameless rewrites bound variables to de Bruijn indices while
// preserving the names of free variables: the "locally nameless"
// representation used as an intermediate form by tests that round-trip
// through it and back via the naming engine (see package naming).
package nameless

import (
	"github.com/google/lambdacalc/lang/arena"
	"github.com/google/lambdacalc/lang/renv"
)

// Convert walks the source expression e, rooted in src, with env tracking
// what is currently in scope, and writes an equivalent locally-nameless
// expression into dst. Named variables that resolve to a binder in scope
// become NamelessVariables; free names are copied unchanged. Every
// Abstraction becomes a NamelessAbstraction around its (recursively
// converted) body; NamelessAbstraction and NamelessVariable nodes already in
// e are copied over with their indices untouched.
func Convert(env *renv.Env, src *arena.Arena, e arena.ID, dst *arena.Arena) arena.ID {
	switch src.Kind(e) {
	case arena.KNamedVariable:
		name := src.VariableName(e)
		if index, ok := env.LookupIndex(name); ok {
			return dst.NamelessVariable(index)
		}
		return dst.NamedVariable(name)

	case arena.KNamelessVariable:
		return dst.NamelessVariable(src.Index(e))

	case arena.KAbstraction:
		if src.HasParam(e) {
			name := src.VariableName(e)
			env.Bind(name)
			body := Convert(env, src, src.Body(e), dst)
			env.Unbind(name)
			return dst.NamelessAbstraction(body)
		}
		env.Shift()
		body := Convert(env, src, src.Body(e), dst)
		env.Unshift()
		return dst.NamelessAbstraction(body)

	case arena.KNamelessAbstraction:
		env.Shift()
		body := Convert(env, src, src.Body(e), dst)
		env.Unshift()
		return dst.NamelessAbstraction(body)

	case arena.KApplication:
		fn := Convert(env, src, src.Func(e), dst)
		args := src.Args(e)
		converted := make([]arena.ID, len(args))
		for i, arg := range args {
			converted[i] = Convert(env, src, arg, dst)
		}
		return dst.Application(fn, converted)
	}
	panic("nameless: unreachable expression kind")
}
