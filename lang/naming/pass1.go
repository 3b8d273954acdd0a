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
	"fmt"

	"github.com/google/lambdacalc/lang/arena"
	"github.com/google/lambdacalc/lang/strs"
)

// analyzer runs pass 1: a single depth-first walk of the source expression
// that allocates one binder record per Abstraction/NamelessAbstraction node,
// in the order the walk first reaches them, and fills in each record's
// restriction and undesirable sets.
//
// binderStack holds the indices (into binders) of every binder currently
// open, outermost first. ownerStack maps a source parameter name to the
// stack of binder indices currently bound to that name, innermost last, so a
// named occurrence always resolves to the nearest enclosing binder that
// introduced it, exactly as shadowing requires.
type analyzer struct {
	src     *arena.Arena
	binders []*binder

	binderStack []int
	ownerStack  map[strs.ID][]int
}

// analyze is pass 1's entry point: it returns the binder records for every
// Abstraction/NamelessAbstraction in e, indexed by first-encounter order.
func analyze(src *arena.Arena, e arena.ID) []*binder {
	a := &analyzer{
		src:        src,
		ownerStack: map[strs.ID][]int{},
	}
	a.walk(e)
	return a.binders
}

func (a *analyzer) walk(e arena.ID) {
	switch a.src.Kind(e) {
	case arena.KNamedVariable:
		a.visitNamedVariable(a.src.VariableName(e))

	case arena.KNamelessVariable:
		a.visitNamelessVariable(a.src.Index(e))

	case arena.KAbstraction:
		name := strs.Invalid
		if a.src.HasParam(e) {
			name = a.src.VariableName(e)
		}
		a.pushBinder(name)
		a.walk(a.src.Body(e))
		a.popBinder(name)

	case arena.KNamelessAbstraction:
		a.pushBinder(strs.Invalid)
		a.walk(a.src.Body(e))
		a.popBinder(strs.Invalid)

	case arena.KApplication:
		a.walk(a.src.Func(e))
		for _, arg := range a.src.Args(e) {
			a.walk(arg)
		}

	default:
		panic("naming: unreachable expression kind")
	}
}

func (a *analyzer) pushBinder(sourceParam strs.ID) {
	idx := len(a.binders)
	a.binders = append(a.binders, newBinder(sourceParam))
	a.binderStack = append(a.binderStack, idx)
	if sourceParam != strs.Invalid {
		a.ownerStack[sourceParam] = append(a.ownerStack[sourceParam], idx)
	}
}

func (a *analyzer) popBinder(sourceParam strs.ID) {
	a.binderStack = a.binderStack[:len(a.binderStack)-1]
	if sourceParam != strs.Invalid {
		stack := a.ownerStack[sourceParam]
		a.ownerStack[sourceParam] = stack[:len(stack)-1]
	}
}

// visitNamedVariable handles a NamedVariable occurrence. A bound occurrence
// marks its owner used and restricts every binder opened after the owner
// (which shadow it within the owner's own scope) from reusing the owner's
// destination identifier; an intermediate binder that already carries a
// source parameter additionally makes that parameter undesirable on the
// owner, to discourage a renaming cascade. A free occurrence simply
// restricts every binder currently open: any of them could otherwise
// capture it.
func (a *analyzer) visitNamedVariable(name strs.ID) {
	owners := a.ownerStack[name]
	if len(owners) == 0 {
		for _, bi := range a.binderStack {
			a.binders[bi].restrict(name)
		}
		return
	}
	ownerIdx := owners[len(owners)-1]
	a.binders[ownerIdx].used = true

	pos := a.positionOf(ownerIdx)
	for i := len(a.binderStack) - 1; i > pos; i-- {
		bi := a.binderStack[i]
		a.binders[bi].restrictRef(ownerIdx)
		a.binders[ownerIdx].undesire(a.binders[bi].sourceParam)
	}
}

// visitNamelessVariable handles a NamelessVariable(index) occurrence. The
// owner is the binder index steps up the open-binder stack. Every binder
// strictly between the occurrence and the owner gets a restriction against
// the owner's destination identifier, and reciprocally the owner gets a
// restriction against each of those intermediate binders: the owner's final
// name may not collide with a name chosen for a binder that shadows it
// anywhere in its own scope, since a shadowing occurrence could otherwise no
// longer reach the owner once both are fully named.
func (a *analyzer) visitNamelessVariable(index uint32) {
	if index == 0 || int(index) > len(a.binderStack) {
		panic(fmt.Sprintf("naming: de Bruijn index %d has no enclosing binder", index))
	}
	ownerPos := len(a.binderStack) - int(index)
	ownerIdx := a.binderStack[ownerPos]
	a.binders[ownerIdx].used = true

	for i := len(a.binderStack) - 1; i > ownerPos; i-- {
		bi := a.binderStack[i]
		a.binders[bi].restrictRef(ownerIdx)
		a.binders[ownerIdx].restrictRef(bi)
		a.binders[ownerIdx].undesire(a.binders[bi].sourceParam)
	}
}

// positionOf returns the position of binder index target within the
// currently open binderStack.
func (a *analyzer) positionOf(target int) int {
	for i := len(a.binderStack) - 1; i >= 0; i-- {
		if a.binderStack[i] == target {
			return i
		}
	}
	panic("naming: owner is not on the open binder stack")
}
