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

// Package naming is the core of this module: a two-pass conversion of any
// mixture of named binders, anonymous binders, named bound variables, free
// variables and raw de Bruijn indices into a fully named, alpha-equivalent
// expression.
//
// A naive converter invents a fresh name at every binder and is trivially
// correct, but it renames every user-supplied parameter on the way and
// pollutes the namespace. This package instead runs two passes:
//
//   - Pass 1 (see pass1.go) walks the input once, allocating a binder
//     record per Abstraction/NamelessAbstraction and collecting, for each,
//     a hard restriction set (names the binder must not use, on pain of
//     capturing a free variable or shadowing a still-needed outer binding)
//     and a soft undesirable set (names the binder should avoid to prevent
//     needless renaming cascades).
//
//   - Pass 2 (see pass2.go) walks the input again, in the same structural
//     order, committing each binder's final name as soon as it is reached:
//     a supplied name is kept if it is not restricted, an anonymous binder
//     that is actually used in its body gets a fresh name, and an unused
//     anonymous binder stays a hole.
//
// Binder records are resolved outer-to-inner, and a binder's chosen name is
// visible to every constraint that references it from that point on; see
// the ordering discussion in pass2.go for why deferring resolution this way
// is sound.
package naming

import (
	"github.com/google/lambdacalc/lang/arena"
	"github.com/google/lambdacalc/lang/namegen"
	"github.com/google/lambdacalc/lang/strs"
)

// binder is one Abstraction or NamelessAbstraction's pass-1 record, filled
// in and then resolved by pass 2. Binders are indexed by the order in which
// pass 1 first encounters them; pass 2 re-walks the same tree in the same
// order, so index i always refers to the same source node in both passes.
type binder struct {
	sourceParam strs.ID // strs.Invalid if the binder had no supplied name

	restrictionLiterals map[strs.ID]bool
	restrictionRefs     map[int]bool // indices of other binders
	undesirableLiterals map[strs.ID]bool

	used bool

	resolved bool
	hole     bool
	name     strs.ID
}

func newBinder(sourceParam strs.ID) *binder {
	return &binder{sourceParam: sourceParam}
}

func (b *binder) restrict(name strs.ID) {
	if b.restrictionLiterals == nil {
		b.restrictionLiterals = map[strs.ID]bool{}
	}
	b.restrictionLiterals[name] = true
}

func (b *binder) restrictRef(i int) {
	if b.restrictionRefs == nil {
		b.restrictionRefs = map[int]bool{}
	}
	b.restrictionRefs[i] = true
}

func (b *binder) undesire(name strs.ID) {
	if name == strs.Invalid {
		return
	}
	if b.undesirableLiterals == nil {
		b.undesirableLiterals = map[strs.ID]bool{}
	}
	b.undesirableLiterals[name] = true
}

// Convert rewrites the expression rooted at e (read from src) into a fully
// named, alpha-equivalent expression written into dst, using generator to
// invent names where one is needed. It is deterministic: the same inputs
// always produce byte-identical output.
func Convert(intern *strs.Interner, src *arena.Arena, e arena.ID, dst *arena.Arena, generator namegen.Generator) arena.ID {
	binders := analyze(src, e)
	m := &materializer{
		intern:    intern,
		src:       src,
		dst:       dst,
		binders:   binders,
		generator: generator,
	}
	return m.convert(e)
}
