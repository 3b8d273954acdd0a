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

package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/google/lambdacalc/lang/arena"
	"github.com/google/lambdacalc/lang/parse"
	"github.com/google/lambdacalc/lang/strs"
)

func mustParseMixed(t *testing.T, intern *strs.Interner, a *arena.Arena, src string) arena.ID {
	t.Helper()
	e, err := parse.ParseMixed(a, intern, []byte(src))
	require.NoError(t, err)
	return e
}

func TestSizeComputesExpressionSize(t *testing.T) {
	cases := []struct {
		src  string
		size int
	}{
		{"x", 1},
		{"λf. x", 2},
		{"λf. λx. f x", 5},
		{"λx. λy. λz. x z (y z)", 9},
	}
	for _, c := range cases {
		intern := strs.New()
		a := arena.New()
		e := mustParseMixed(t, intern, a, c.src)
		assert.Equal(t, c.size, Size(a, e), "size(%q)", c.src)
	}
}

func TestHeightComputesExpressionHeight(t *testing.T) {
	cases := []struct {
		src    string
		height int
	}{
		{"x", 0},
		{"λf. x", 1},
		{"λf. λx. f x", 2},
		{"λx. λy. λz. x z (y z)", 3},
		{"λ. x", 1},
		{"λ. λ. 2 1", 2},
		{"λ. λ. λ. 3 1 (2 1)", 3},
	}
	for _, c := range cases {
		intern := strs.New()
		a := arena.New()
		e := mustParseMixed(t, intern, a, c.src)
		assert.Equal(t, c.height, Height(a, e), "height(%q)", c.src)
	}
}
