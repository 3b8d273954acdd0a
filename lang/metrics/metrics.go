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

// Package metrics computes simple structural folds over an expression: its
// node count (Size) and its maximum binder nesting depth (Height);
// application nodes add to Size but not to Height. Both are pure functions of the arena; neither touches a
// referencing environment or an interner.
package metrics

import "github.com/google/lambdacalc/lang/arena"

// Size returns the total node count of e: 1 for every variable, 1 for every
// abstraction plus its body's size, and 1 for an application plus the sizes
// of its function and every argument.
func Size(a *arena.Arena, e arena.ID) int {
	switch a.Kind(e) {
	case arena.KNamedVariable, arena.KNamelessVariable:
		return 1

	case arena.KAbstraction, arena.KNamelessAbstraction:
		return 1 + Size(a, a.Body(e))

	case arena.KApplication:
		n := 1 + Size(a, a.Func(e))
		for _, arg := range a.Args(e) {
			n += Size(a, arg)
		}
		return n

	default:
		panic("metrics: unreachable expression kind")
	}
}

// Height returns the maximum binder nesting depth of e: 0 for a
// variable, 1 plus its body's height for an abstraction, and for an
// application the maximum height among its function and its arguments (the
// application node itself does not add to height).
func Height(a *arena.Arena, e arena.ID) int {
	switch a.Kind(e) {
	case arena.KNamedVariable, arena.KNamelessVariable:
		return 0

	case arena.KAbstraction, arena.KNamelessAbstraction:
		return 1 + Height(a, a.Body(e))

	case arena.KApplication:
		h := Height(a, a.Func(e))
		for _, arg := range a.Args(e) {
			if ah := Height(a, arg); ah > h {
				h = ah
			}
		}
		return h

	default:
		panic("metrics: unreachable expression kind")
	}
}
