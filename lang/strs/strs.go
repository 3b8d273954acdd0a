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

// Package strs interns byte-string identifiers (lambda-calculus variable
// names) into a compact, comparable ID space.
//
// An Interner is the first thing a conversion allocates and the last thing
// it throws away: every other component (the arena, the referencing
// environment, the naming engine) is handed identifiers it never needs to
// compare by content, only by ID.
package strs

import "fmt"

// ID is an opaque handle into an Interner. Two IDs compare equal iff they
// were returned by the same Interner for byte-identical strings.
type ID uint32

// Invalid is the zero value of ID. No name ever interns to it.
const Invalid = ID(0)

// String satisfies fmt.Stringer for debugging; it does not resolve the name
// (that requires an Interner).
func (x ID) String() string {
	return fmt.Sprintf("strs.ID(%d)", uint32(x))
}

// Interner assigns stable, compact IDs to byte strings and resolves them
// back. It is not safe for concurrent use; each conversion owns one.
type Interner struct {
	byName map[string]ID
	byID   []string
}

// New returns an empty Interner.
func New() *Interner {
	return &Interner{byName: map[string]ID{}}
}

// Intern returns the ID for name, allocating a fresh one the first time name
// is seen. Intern is idempotent: interning the same bytes twice returns the
// same ID.
func (n *Interner) Intern(name string) ID {
	if id, ok := n.byName[name]; ok {
		return id
	}
	id := ID(len(n.byID) + 1)
	n.byName[name] = id
	n.byID = append(n.byID, name)
	return id
}

// Lookup returns the ID already assigned to name, if any.
func (n *Interner) Lookup(name string) (ID, bool) {
	id, ok := n.byName[name]
	return id, ok
}

// Text returns the byte string that id denotes. It panics if id was not
// issued by this Interner: that is a programmer error, not a recoverable
// condition (see SPEC_FULL.md §7, arena/ID misuse).
func (n *Interner) Text(id ID) string {
	i := int(id) - 1
	if i < 0 || i >= len(n.byID) {
		panic(fmt.Sprintf("strs: %v not issued by this Interner", id))
	}
	return n.byID[i]
}
