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

package freevars

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/google/lambdacalc/lang/arena"
	"github.com/google/lambdacalc/lang/naming"
	"github.com/google/lambdacalc/lang/namegen"
	"github.com/google/lambdacalc/lang/nameless"
	"github.com/google/lambdacalc/lang/parse"
	"github.com/google/lambdacalc/lang/renv"
	"github.com/google/lambdacalc/lang/strs"
)

func TestOfFindsOnlyUnboundOccurrences(t *testing.T) {
	intern := strs.New()
	a := arena.New()
	e, err := parse.ParseNamed(a, intern, []byte("λx. x y"))
	require.NoError(t, err)

	fv := Of(renv.New(nil), a, e)
	assert.False(t, fv[intern.Intern("x")])
	assert.True(t, fv[intern.Intern("y")])
	assert.Len(t, fv, 1)
}

// P4: free_variables is preserved by both to_locally_nameless and
// convert_to_named.
func TestFreeVariablesPreservedAcrossConversions(t *testing.T) {
	intern := strs.New()
	src := arena.New()
	e, err := parse.ParseMixed(src, intern, []byte("λx. x y (λ. 1 z)"))
	require.NoError(t, err)

	want := Of(renv.New(nil), src, e)

	ln := arena.New()
	lnID := nameless.Convert(renv.New(nil), src, e, ln)
	assert.Equal(t, want, Of(renv.New(nil), ln, lnID))

	named := arena.New()
	namedID := naming.Convert(intern, src, e, named, namegen.DefaultBaseCycle())
	assert.Equal(t, want, Of(renv.New(nil), named, namedID))
}
