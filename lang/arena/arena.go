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

// Package arena is a flat, append-only store of lambda-calculus expression
// nodes. Nodes reference their children by ID, not by pointer, so that an
// Arena can be copied, walked and garbage-collected as a single unit.
//
// An expression is one of five shapes: a named variable, a nameless (de
// Bruijn) variable, a named abstraction (whose parameter may be a hole), a
// purely structural nameless abstraction, or an application of a function to
// one or more arguments. See Kind.
package arena

import (
	"fmt"

	"github.com/google/lambdacalc/lang/strs"
)

// Kind says which of the five expression shapes a node is.
type Kind uint8

const (
	KInvalid Kind = iota
	KNamedVariable
	KNamelessVariable
	KAbstraction
	KNamelessAbstraction
	KApplication
)

func (k Kind) String() string {
	if int(k) < len(kindStrings) {
		return kindStrings[k]
	}
	return "KUnknown"
}

var kindStrings = [...]string{
	KInvalid:             "KInvalid",
	KNamedVariable:       "KNamedVariable",
	KNamelessVariable:    "KNamelessVariable",
	KAbstraction:         "KAbstraction",
	KNamelessAbstraction: "KNamelessAbstraction",
	KApplication:         "KApplication",
}

// ID is an opaque handle into an Arena. The zero ID never denotes a node;
// arenas hand out IDs starting at 1. An ID is valid only for the Arena that
// produced it (SPEC_FULL.md §3, invariant 2): indexing a foreign ID is a
// programmer error.
type ID uint32

// IsValid reports whether x was ever issued by an Arena (though not
// necessarily this one).
func (x ID) IsValid() bool { return x != 0 }

type node struct {
	kind Kind

	// name holds the NamedVariable's identifier, or the Abstraction's
	// source parameter (strs.Invalid for a hole / anonymous binder).
	name strs.ID

	// index holds the NamelessVariable's de Bruijn index. Indices are
	// 1-based; 0 is invalid (see DeBruijnIndex in the data model).
	index uint32

	// body holds the bound sub-expression of an Abstraction or a
	// NamelessAbstraction.
	body ID

	// fn and args hold an Application's function and its non-empty,
	// ordered argument list.
	fn   ID
	args []ID
}

// Arena is an append-only store of Expression nodes.
type Arena struct {
	nodes []node
}

// New returns an empty Arena.
func New() *Arena {
	// A nil nodes[0] sentinel keeps ID 0 permanently unused, so the zero
	// ID can serve as "no such expression" without ambiguity.
	return &Arena{nodes: make([]node, 1, 64)}
}

// Len returns the number of nodes allocated so far, the zero sentinel
// excluded.
func (a *Arena) Len() int { return len(a.nodes) - 1 }

func (a *Arena) push(n node) ID {
	a.nodes = append(a.nodes, n)
	return ID(len(a.nodes) - 1)
}

func (a *Arena) at(id ID) *node {
	if i := int(id); i > 0 && i < len(a.nodes) {
		return &a.nodes[i]
	}
	panic(fmt.Sprintf("arena: %d is not a valid ID for this Arena", id))
}

// NamedVariable allocates a variable occurrence referring to name.
func (a *Arena) NamedVariable(name strs.ID) ID {
	return a.push(node{kind: KNamedVariable, name: name})
}

// NamelessVariable allocates a de Bruijn variable occurrence. index must be
// at least 1; index 1 refers to the innermost enclosing binder.
func (a *Arena) NamelessVariable(index uint32) ID {
	if index == 0 {
		panic("arena: NamelessVariable index must be >= 1")
	}
	return a.push(node{kind: KNamelessVariable, index: index})
}

// Abstraction allocates a binder with an optional source parameter. Pass
// strs.Invalid for param to make a hole: the binder still introduces a
// slot its body may reach by de Bruijn index, but the slot carries no name.
func (a *Arena) Abstraction(param strs.ID, body ID) ID {
	return a.push(node{kind: KAbstraction, name: param, body: body})
}

// NamelessAbstraction allocates a purely structural binder.
func (a *Arena) NamelessAbstraction(body ID) ID {
	return a.push(node{kind: KNamelessAbstraction, body: body})
}

// Application allocates a function applied to one or more arguments. args is
// copied; it must be non-empty.
func (a *Arena) Application(fn ID, args []ID) ID {
	if len(args) == 0 {
		panic("arena: Application requires at least one argument")
	}
	cp := make([]ID, len(args))
	copy(cp, args)
	return a.push(node{kind: KApplication, fn: fn, args: cp})
}

// Kind returns id's shape.
func (a *Arena) Kind(id ID) Kind { return a.at(id).kind }

// VariableName returns the identifier of a NamedVariable, or the source
// parameter of an Abstraction (strs.Invalid if the Abstraction is a hole).
// It panics for any other Kind.
func (a *Arena) VariableName(id ID) strs.ID {
	n := a.at(id)
	switch n.kind {
	case KNamedVariable, KAbstraction:
		return n.name
	}
	panic(fmt.Sprintf("arena: VariableName called on %v", n.kind))
}

// HasParam reports whether an Abstraction carries a source parameter (as
// opposed to being a hole).
func (a *Arena) HasParam(id ID) bool {
	n := a.at(id)
	if n.kind != KAbstraction {
		panic(fmt.Sprintf("arena: HasParam called on %v", n.kind))
	}
	return n.name != strs.Invalid
}

// Index returns a NamelessVariable's de Bruijn index.
func (a *Arena) Index(id ID) uint32 {
	n := a.at(id)
	if n.kind != KNamelessVariable {
		panic(fmt.Sprintf("arena: Index called on %v", n.kind))
	}
	return n.index
}

// Body returns the bound sub-expression of an Abstraction or a
// NamelessAbstraction.
func (a *Arena) Body(id ID) ID {
	n := a.at(id)
	switch n.kind {
	case KAbstraction, KNamelessAbstraction:
		return n.body
	}
	panic(fmt.Sprintf("arena: Body called on %v", n.kind))
}

// Func returns an Application's function sub-expression.
func (a *Arena) Func(id ID) ID {
	n := a.at(id)
	if n.kind != KApplication {
		panic(fmt.Sprintf("arena: Func called on %v", n.kind))
	}
	return n.fn
}

// Args returns an Application's arguments. The returned slice must not be
// mutated by the caller.
func (a *Arena) Args(id ID) []ID {
	n := a.at(id)
	if n.kind != KApplication {
		panic(fmt.Sprintf("arena: Args called on %v", n.kind))
	}
	return n.args
}

// IsBinder reports whether id is an Abstraction or a NamelessAbstraction.
func (a *Arena) IsBinder(id ID) bool {
	switch a.Kind(id) {
	case KAbstraction, KNamelessAbstraction:
		return true
	}
	return false
}

// Children returns id's immediate sub-expressions, for generic traversals
// that do not need to distinguish shapes (e.g. free-variable collection
// helpers, size counting).
func (a *Arena) Children(id ID) []ID {
	n := a.at(id)
	switch n.kind {
	case KNamedVariable, KNamelessVariable:
		return nil
	case KAbstraction, KNamelessAbstraction:
		return []ID{n.body}
	case KApplication:
		out := make([]ID, 0, len(n.args)+1)
		out = append(out, n.fn)
		return append(out, n.args...)
	}
	return nil
}

// IsNamed reports whether the sub-expression rooted at id contains no
// NamelessVariable and no NamelessAbstraction.
func IsNamed(a *Arena, id ID) bool {
	switch a.Kind(id) {
	case KNamelessVariable, KNamelessAbstraction:
		return false
	case KNamedVariable:
		return true
	case KAbstraction:
		return IsNamed(a, a.Body(id))
	case KApplication:
		if !IsNamed(a, a.Func(id)) {
			return false
		}
		for _, arg := range a.Args(id) {
			if !IsNamed(a, arg) {
				return false
			}
		}
		return true
	}
	return true
}

// IsLocallyNameless reports whether the sub-expression rooted at id contains
// no Abstraction (every binder is a NamelessAbstraction; free variables may
// still be named).
func IsLocallyNameless(a *Arena, id ID) bool {
	switch a.Kind(id) {
	case KAbstraction:
		return false
	case KNamelessAbstraction:
		return IsLocallyNameless(a, a.Body(id))
	case KApplication:
		if !IsLocallyNameless(a, a.Func(id)) {
			return false
		}
		for _, arg := range a.Args(id) {
			if !IsLocallyNameless(a, arg) {
				return false
			}
		}
		return true
	}
	return true
}
