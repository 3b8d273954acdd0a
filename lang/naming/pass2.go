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

package naming

import (
	"github.com/google/lambdacalc/lang/arena"
	"github.com/google/lambdacalc/lang/namegen"
	"github.com/google/lambdacalc/lang/strs"
)

// materializer runs pass 2: a second depth-first walk of the same
// expression, in the same order pass 1 used, that commits each binder's
// final name the moment it is reached and rewrites every variable
// occurrence in terms of that name.
//
// next indexes into binders in allocation order; since both passes walk the
// tree with identical structure (Abstraction/NamelessAbstraction allocate
// then recurse, Application recurses Func then Args in order), next always
// names the same binder pass 1 recorded at that point in the traversal.
type materializer struct {
	intern *strs.Interner
	src    *arena.Arena
	dst    *arena.Arena

	binders []*binder
	next    int

	generator namegen.Generator

	binderStack []int
	ownerStack  map[strs.ID][]int
}

func (m *materializer) convert(e arena.ID) arena.ID {
	switch m.src.Kind(e) {
	case arena.KNamedVariable:
		return m.convertNamedVariable(m.src.VariableName(e))

	case arena.KNamelessVariable:
		return m.convertNamelessVariable(m.src.Index(e))

	case arena.KAbstraction:
		sourceParam := strs.Invalid
		if m.src.HasParam(e) {
			sourceParam = m.src.VariableName(e)
		}
		return m.convertBinder(sourceParam, m.src.Body(e))

	case arena.KNamelessAbstraction:
		return m.convertBinder(strs.Invalid, m.src.Body(e))

	case arena.KApplication:
		fn := m.convert(m.src.Func(e))
		args := m.src.Args(e)
		converted := make([]arena.ID, len(args))
		for i, arg := range args {
			converted[i] = m.convert(arg)
		}
		return m.dst.Application(fn, converted)
	}
	panic("naming: unreachable expression kind")
}

// convertBinder resolves the next binder record's final name (or hole),
// then recurses into its body with that binder pushed onto the live
// environment under its original source name (if any) so that nested named
// occurrences still resolve to it the way they did during pass 1.
func (m *materializer) convertBinder(sourceParam strs.ID, body arena.ID) arena.ID {
	idx := m.next
	m.next++
	b := m.binders[idx]

	m.resolve(idx)

	if m.ownerStack == nil {
		m.ownerStack = map[strs.ID][]int{}
	}
	m.binderStack = append(m.binderStack, idx)
	if sourceParam != strs.Invalid {
		m.ownerStack[sourceParam] = append(m.ownerStack[sourceParam], idx)
	}

	convertedBody := m.convert(body)

	m.binderStack = m.binderStack[:len(m.binderStack)-1]
	if sourceParam != strs.Invalid {
		stack := m.ownerStack[sourceParam]
		m.ownerStack[sourceParam] = stack[:len(stack)-1]
	}

	if b.hole {
		return m.dst.Abstraction(strs.Invalid, convertedBody)
	}
	return m.dst.Abstraction(b.name, convertedBody)
}

// resolve commits binders[idx]'s final name. A supplied name is kept
// whenever it is not (yet) restricted; this is what keeps the engine from
// renaming a parameter that did not need it. Otherwise a fresh name is
// requested from the generator, avoiding both the restriction set and the
// softer undesirable set. An anonymous binder that nothing in its body
// refers to is left a hole: it never needed a name in the first place.
func (m *materializer) resolve(idx int) {
	b := m.binders[idx]

	switch {
	case b.sourceParam != strs.Invalid:
		restrictions, undesirables := m.constraintSets(b)
		if !restrictions[b.sourceParam] {
			b.name = b.sourceParam
		} else {
			b.name = m.generate(restrictions, undesirables)
		}

	case b.used:
		restrictions, undesirables := m.constraintSets(b)
		b.name = m.generate(restrictions, undesirables)

	default:
		b.hole = true
	}
	b.resolved = true
}

// constraintSets evaluates a binder's restriction and undesirable sets at
// the moment it is resolved. A restriction-by-reference to a binder that is
// not yet resolved (necessarily one nested inside the current binder, since
// resolution proceeds outer to inner) contributes nothing: that inner
// binder will independently restrict itself against the current one when it
// is later resolved, which is what makes deferring the reference sound.
func (m *materializer) constraintSets(b *binder) (restrictions, undesirables map[strs.ID]bool) {
	restrictions = map[strs.ID]bool{}
	for name := range b.restrictionLiterals {
		restrictions[name] = true
	}
	for ref := range b.restrictionRefs {
		if other := m.binders[ref]; other.resolved && !other.hole {
			restrictions[other.name] = true
		}
	}
	undesirables = b.undesirableLiterals
	return restrictions, undesirables
}

func (m *materializer) generate(restrictions, undesirables map[strs.ID]bool) strs.ID {
	admissible := func(candidate string) bool {
		id, ok := m.intern.Lookup(candidate)
		if !ok {
			return true
		}
		return !restrictions[id] && !undesirables[id]
	}
	return m.generator.Generate(m.intern, admissible)
}

func (m *materializer) convertNamedVariable(name strs.ID) arena.ID {
	if owners, ok := m.ownerStack[name]; ok && len(owners) > 0 {
		owner := m.binders[owners[len(owners)-1]]
		return m.dst.NamedVariable(owner.name)
	}
	return m.dst.NamedVariable(name)
}

func (m *materializer) convertNamelessVariable(index uint32) arena.ID {
	ownerPos := len(m.binderStack) - int(index)
	owner := m.binders[m.binderStack[ownerPos]]
	return m.dst.NamedVariable(owner.name)
}
