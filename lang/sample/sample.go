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

// Package sample generates random, well-formed mixed expressions for fuzz
// testing the naming engine and its neighbors. It is a testing aid: its
// distribution is an experimental knob, not a correctness property, and
// nothing downstream may depend on the shape it produces.
package sample

import (
	"fmt"
	"math/rand"

	"github.com/google/lambdacalc/lang/arena"
	"github.com/google/lambdacalc/lang/strs"
)

// Weights is the probability ladder used at every node: the relative weight
// of producing a variable, an abstraction, or an application. Only variable
// production is available once MaxDepth is reached.
type Weights struct {
	Variable    float64
	Abstraction float64
	Application float64
}

// DefaultWeights favors termination: applications are sampled least often,
// so trees stay shallow enough that MaxDepth is rarely the limiting factor.
func DefaultWeights() Weights {
	return Weights{Variable: 0.45, Abstraction: 0.35, Application: 0.20}
}

// Sampler draws expressions from a fixed seed, so a fuzz run is
// reproducible: the same seed and parameters always produce the same
// sequence of expressions.
type Sampler struct {
	rng     *rand.Rand
	weights Weights

	// MaxDepth bounds the nesting depth of the sampled expression.
	MaxDepth int
	// MaxArgs bounds the number of arguments in a sampled application.
	MaxArgs int
	// FreeNamePool is drawn from when a variable is free; must be non-empty.
	FreeNamePool []string
}

// New builds a Sampler seeded deterministically from seed.
func New(seed int64, maxDepth int, weights Weights) *Sampler {
	return &Sampler{
		rng:          rand.New(rand.NewSource(seed)),
		weights:      weights,
		MaxDepth:     maxDepth,
		MaxArgs:      3,
		FreeNamePool: []string{"a", "b", "c", "d", "e"},
	}
}

// scopeEntry is one binder currently in scope: either a name (for a named
// Abstraction parameter) or strs.Invalid (for a hole or a NamelessAbstraction,
// both of which still occupy a de Bruijn slot).
type scopeEntry = strs.ID

// Expression draws one expression into a, interning any names it needs via
// intern.
func (s *Sampler) Expression(a *arena.Arena, intern *strs.Interner) arena.ID {
	return s.expr(a, intern, nil, 0)
}

func (s *Sampler) expr(a *arena.Arena, intern *strs.Interner, scope []scopeEntry, depth int) arena.ID {
	if depth >= s.MaxDepth {
		return s.variable(a, intern, scope)
	}

	switch s.choose() {
	case kindVariable:
		return s.variable(a, intern, scope)
	case kindAbstraction:
		return s.abstraction(a, intern, scope, depth)
	default:
		return s.application(a, intern, scope, depth)
	}
}

type kind int

const (
	kindVariable kind = iota
	kindAbstraction
	kindApplication
)

func (s *Sampler) choose() kind {
	total := s.weights.Variable + s.weights.Abstraction + s.weights.Application
	r := s.rng.Float64() * total
	if r < s.weights.Variable {
		return kindVariable
	}
	if r < s.weights.Variable+s.weights.Abstraction {
		return kindAbstraction
	}
	return kindApplication
}

// variable draws either a free name, a uniformly chosen bound name, or (when
// the scope is non-empty) a uniform de Bruijn index.
func (s *Sampler) variable(a *arena.Arena, intern *strs.Interner, scope []scopeEntry) arena.ID {
	if len(scope) == 0 {
		return a.NamedVariable(s.freeName(intern))
	}

	switch s.rng.Intn(3) {
	case 0:
		return a.NamedVariable(s.freeName(intern))
	case 1:
		// A uniformly chosen bound name: pick a slot, and if it is
		// anonymous, fall back to an index reference instead (a hole has
		// no name to refer to by).
		i := s.rng.Intn(len(scope))
		if name := scope[len(scope)-1-i]; name != strs.Invalid {
			return a.NamedVariable(name)
		}
		return a.NamelessVariable(uint32(i + 1))
	default:
		index := s.rng.Intn(len(scope)) + 1
		return a.NamelessVariable(uint32(index))
	}
}

func (s *Sampler) freeName(intern *strs.Interner) strs.ID {
	name := s.FreeNamePool[s.rng.Intn(len(s.FreeNamePool))]
	return intern.Intern(name)
}

// abstraction draws a parameter mode uniformly: a fresh source name, a hole,
// or an entirely nameless binder (NamelessAbstraction).
func (s *Sampler) abstraction(a *arena.Arena, intern *strs.Interner, scope []scopeEntry, depth int) arena.ID {
	switch s.rng.Intn(3) {
	case 0:
		name := intern.Intern(fmt.Sprintf("p%d", depth))
		body := s.expr(a, intern, append(scope, name), depth+1)
		return a.Abstraction(name, body)
	case 1:
		body := s.expr(a, intern, append(scope, strs.Invalid), depth+1)
		return a.Abstraction(strs.Invalid, body)
	default:
		body := s.expr(a, intern, append(scope, strs.Invalid), depth+1)
		return a.NamelessAbstraction(body)
	}
}

func (s *Sampler) application(a *arena.Arena, intern *strs.Interner, scope []scopeEntry, depth int) arena.ID {
	fn := s.expr(a, intern, scope, depth+1)
	n := 1 + s.rng.Intn(s.MaxArgs)
	args := make([]arena.ID, n)
	for i := range args {
		args[i] = s.expr(a, intern, scope, depth+1)
	}
	return a.Application(fn, args)
}
