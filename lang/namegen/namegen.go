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

// Package namegen produces the next admissible name for a binder the naming
// engine (package naming) must rename. A Generator enumerates candidates in
// a fixed, deterministic order and returns the first one an
// admissibility predicate accepts.
package namegen

import (
	"strconv"

	"github.com/google/lambdacalc/lang/strs"
)

// Generator produces fresh identifiers. Implementations are deterministic:
// the same sequence of Generate calls against the same Interner, with the
// same admissibility predicate each time, always yields the same names.
type Generator interface {
	// Generate interns and returns the first candidate, in this
	// Generator's enumeration order, for which admissible returns true.
	Generate(intern *strs.Interner, admissible func(candidate string) bool) strs.ID
}

// BaseCycle enumerates a fixed base list, then each base again with
// numeric suffixes 1, 2, 3, ...: with the default list ["x", "y", "z"] that
// is x, y, z, x1, y1, z1, x2, y2, z2, ...
type BaseCycle struct {
	Bases []string
}

// DefaultBaseCycle is the engine's default generator: x, y, z, x1, y1, z1, ...
func DefaultBaseCycle() *BaseCycle {
	return &BaseCycle{Bases: []string{"x", "y", "z"}}
}

func (g *BaseCycle) Generate(intern *strs.Interner, admissible func(string) bool) strs.ID {
	bases := g.Bases
	if len(bases) == 0 {
		bases = []string{"x"}
	}
	for _, b := range bases {
		if admissible(b) {
			return intern.Intern(b)
		}
	}
	for suffix := 1; ; suffix++ {
		s := strconv.Itoa(suffix)
		for _, b := range bases {
			candidate := b + s
			if admissible(candidate) {
				return intern.Intern(candidate)
			}
		}
	}
}

// SuffixOn enumerates a single base name with numeric suffixes: with Base
// "x" that is x, x1, x2, x3, ...
type SuffixOn struct {
	Base string
}

func (g *SuffixOn) Generate(intern *strs.Interner, admissible func(string) bool) strs.ID {
	base := g.Base
	if base == "" {
		base = "x"
	}
	if admissible(base) {
		return intern.Intern(base)
	}
	for suffix := 1; ; suffix++ {
		candidate := base + strconv.Itoa(suffix)
		if admissible(candidate) {
			return intern.Intern(candidate)
		}
	}
}
