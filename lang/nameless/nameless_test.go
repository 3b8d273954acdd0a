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

package nameless

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/google/lambdacalc/lang/alpha"
	"github.com/google/lambdacalc/lang/arena"
	"github.com/google/lambdacalc/lang/naming"
	"github.com/google/lambdacalc/lang/namegen"
	"github.com/google/lambdacalc/lang/parse"
	"github.com/google/lambdacalc/lang/render"
	"github.com/google/lambdacalc/lang/renv"
	"github.com/google/lambdacalc/lang/strs"
)

func TestConvertRewritesBoundVariablesToIndices(t *testing.T) {
	intern := strs.New()
	src := arena.New()
	e, err := parse.ParseNamed(src, intern, []byte("λx. λy. x y"))
	require.NoError(t, err)

	dst := arena.New()
	out := Convert(renv.New(nil), src, e, dst)

	assert.True(t, arena.IsLocallyNameless(dst, out))
	assert.Equal(t, "λ_. λ_. 2 1", render.Pretty(dst, intern, out, 80))
}

func TestConvertPreservesFreeVariableNames(t *testing.T) {
	intern := strs.New()
	src := arena.New()
	e, err := parse.ParseNamed(src, intern, []byte("λx. x free"))
	require.NoError(t, err)

	dst := arena.New()
	out := Convert(renv.New(nil), src, e, dst)

	assert.Equal(t, "λ_. 1 free", render.Pretty(dst, intern, out, 80))
}

// P3: round-tripping through locally-nameless form and back through the
// naming engine yields an alpha-equivalent expression.
func TestLocallyNamelessRoundTripIsAlphaEquivalent(t *testing.T) {
	srcs := []string{
		"λx. λy. λz. x z (y z)",
		"λf. λx. f (f (f x))",
		"λx. x free",
	}
	intern := strs.New()
	for _, s := range srcs {
		src := arena.New()
		e, err := parse.ParseMixed(src, intern, []byte(s))
		require.NoError(t, err)

		ln := arena.New()
		lnID := Convert(renv.New(nil), src, e, ln)

		named := arena.New()
		namedID := naming.Convert(intern, ln, lnID, named, namegen.DefaultBaseCycle())

		assert.True(t, alpha.Equivalent(
			alpha.Side{Env: renv.New(nil), Arena: src, Expr: e},
			alpha.Side{Env: renv.New(nil), Arena: named, Expr: namedID},
		), "round trip broke alpha-equivalence for %q", s)
	}
}
