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

// Package renv is the referencing environment: a scoped stack of
// name-to-depth bindings, extended and retracted LIFO as a traversal
// descends into and climbs out of binders.
//
// An Env answers two questions during a walk over a mixed expression: "at
// what depth was this name last bound?" and "what de Bruijn index does that
// depth correspond to, right now?". Anonymous binders advance the depth
// counter without adding to the name map, which is how a NamelessVariable
// can still be resolved relative to a frame that has only named bindings in
// scope above it.
package renv

import "github.com/google/lambdacalc/lang/strs"

// Frame is one scope in the chain. Frames are reference-counted by Go's
// garbage collector: two independent Envs may share a parent Frame, which is
// how alpha-equivalence pins two expressions against the same ambient
// environment without copying it.
type Frame struct {
	parent *Frame
	depth  uint32
}

// NewFrame returns a fresh, empty Frame rooted on parent (which may be nil).
func NewFrame(parent *Frame) *Frame {
	d := uint32(0)
	if parent != nil {
		d = parent.depth
	}
	return &Frame{parent: parent, depth: d}
}

// Env is a live, mutably extended referencing environment. The zero Env is
// usable and starts at depth 0 with no bindings.
type Env struct {
	root  *Frame
	depth uint32
	names map[strs.ID][]uint32
}

// New returns an Env starting from frame (nil for an empty ambient scope).
func New(frame *Frame) *Env {
	e := &Env{root: frame}
	if frame != nil {
		e.depth = frame.depth
	}
	return e
}

// Len returns the current total depth: the number of binders (named or
// anonymous) currently open.
func (e *Env) Len() uint32 { return e.depth }

// Bind pushes a new binding of name at the current depth and advances the
// depth counter. It must be paired with a later Unbind(name).
func (e *Env) Bind(name strs.ID) {
	e.depth++
	if e.names == nil {
		e.names = map[strs.ID][]uint32{}
	}
	e.names[name] = append(e.names[name], e.depth)
}

// BindOption binds name if it is not strs.Invalid, else behaves like Shift.
// It mirrors Abstraction's optional parameter.
func (e *Env) BindOption(name strs.ID) {
	if name == strs.Invalid {
		e.Shift()
		return
	}
	e.Bind(name)
}

// Shift advances the depth counter for an anonymous binder, without adding
// any name to the map. It must be paired with a later Unshift.
func (e *Env) Shift() {
	e.depth++
}

// Unbind retracts the most recent binding of name. It is a programmer error
// to call Unbind without a matching, still-open Bind; violating the LIFO
// discipline corrupts the environment (see SPEC_FULL.md §7, arena/ID misuse).
func (e *Env) Unbind(name strs.ID) {
	stack := e.names[name]
	if len(stack) == 0 {
		panic("renv: Unbind without a matching Bind")
	}
	e.names[name] = stack[:len(stack)-1]
	e.depth--
}

// UnbindOption is the inverse of BindOption.
func (e *Env) UnbindOption(name strs.ID) {
	if name == strs.Invalid {
		e.Unshift()
		return
	}
	e.Unbind(name)
}

// Unshift is the inverse of Shift.
func (e *Env) Unshift() {
	if e.depth == 0 {
		panic("renv: Unshift without a matching Shift")
	}
	e.depth--
}

// Lookup returns the depth at which name was most recently bound, and
// whether it is bound at all in this Env (bindings on the parent frame, if
// any, do not count: a Frame only fixes a starting depth for de Bruijn
// comparisons, it carries no names of its own).
func (e *Env) Lookup(name strs.ID) (depth uint32, ok bool) {
	stack := e.names[name]
	if len(stack) == 0 {
		return 0, false
	}
	return stack[len(stack)-1], true
}

// LookupIndex converts Lookup's depth into a de Bruijn index relative to the
// current depth: the most recently bound name always has index 1.
func (e *Env) LookupIndex(name strs.ID) (index uint32, ok bool) {
	depth, ok := e.Lookup(name)
	if !ok {
		return 0, false
	}
	return e.depth - depth + 1, true
}

// Domain returns the set of names currently bound (each name that has at
// least one open Bind).
func (e *Env) Domain() map[strs.ID]bool {
	out := map[strs.ID]bool{}
	for name, stack := range e.names {
		if len(stack) > 0 {
			out[name] = true
		}
	}
	return out
}
