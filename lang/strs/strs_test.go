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

package strs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInternIsIdempotent(t *testing.T) {
	n := New()
	a := n.Intern("foo")
	b := n.Intern("foo")
	assert.Equal(t, a, b)
}

func TestInternDistinctStringsGetDistinctIDs(t *testing.T) {
	n := New()
	a := n.Intern("foo")
	b := n.Intern("bar")
	assert.NotEqual(t, a, b)
}

func TestLookupMissing(t *testing.T) {
	n := New()
	_, ok := n.Lookup("nope")
	assert.False(t, ok)
}

func TestTextRoundTrips(t *testing.T) {
	n := New()
	id := n.Intern("hello")
	assert.Equal(t, "hello", n.Text(id))
}

func TestTextPanicsOnForeignID(t *testing.T) {
	n := New()
	assert.Panics(t, func() { n.Text(ID(999)) })
}

func TestInvalidIsNeverIssued(t *testing.T) {
	n := New()
	id := n.Intern("x")
	assert.NotEqual(t, Invalid, id)
}
