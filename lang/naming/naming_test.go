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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/google/lambdacalc/lang/alpha"
	"github.com/google/lambdacalc/lang/arena"
	"github.com/google/lambdacalc/lang/namegen"
	"github.com/google/lambdacalc/lang/parse"
	"github.com/google/lambdacalc/lang/render"
	"github.com/google/lambdacalc/lang/renv"
	"github.com/google/lambdacalc/lang/strs"
)

func convertSource(t *testing.T, intern *strs.Interner, src string) (*arena.Arena, arena.ID) {
	t.Helper()
	in := arena.New()
	e, err := parse.ParseMixed(in, intern, []byte(src))
	require.NoError(t, err)

	out := arena.New()
	named := Convert(intern, in, e, out, namegen.DefaultBaseCycle())
	return out, named
}

// The following cases are the literal worked examples: mixed input under the
// default x, y, z, x1, ... generator, printed wide enough that no soft line
// breaks occur.
func TestConvertWorkedExamples(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"λ. 1", "λx. x"},
		{"λ_. λ_. 1", "λ_. λx. x"},
		{"λ_. λ_. 2", "λx. λ_. x"},
		{"λ_. λ_. λ_. 3 2 1", "λx. λy. λz. x y z"},
		{"λx. λ. x 1", "λx. λy. x y"},
	}
	intern := strs.New()
	for _, c := range cases {
		out, named := convertSource(t, intern, c.in)
		got := render.Pretty(out, intern, named, 80)
		assert.Equal(t, c.want, got, "converting %q", c.in)
	}
}

// A supplied name survives printing and re-parsing even under heavy
// self-shadowing, and the outermost binder keeps its original name since
// nothing restricts it.
func TestConvertPreservesOutermostNameUnderShadowing(t *testing.T) {
	intern := strs.New()
	src := "λx. λx. 1 2 (λx. 1 2 3 (λx. 1 2 3 4 (λx. 1 2 3 4 5)))"
	in := arena.New()
	e, err := parse.ParseMixed(in, intern, []byte(src))
	require.NoError(t, err)

	out := arena.New()
	named := Convert(intern, in, e, out, namegen.DefaultBaseCycle())

	require.Equal(t, arena.KAbstraction, out.Kind(named))
	require.True(t, out.HasParam(named))
	assert.Equal(t, "x", intern.Text(out.VariableName(named)))

	printed := render.Pretty(out, intern, named, 80)
	reparsed := arena.New()
	reparsedID, err := parse.ParseMixed(reparsed, intern, []byte(printed))
	require.NoError(t, err)

	assert.True(t, alpha.Equivalent(
		alpha.Side{Env: renv.New(nil), Arena: out, Expr: named},
		alpha.Side{Env: renv.New(nil), Arena: reparsed, Expr: reparsedID},
	))
}

// P1: the converted output is alpha-equivalent to the mixed source it came
// from, for every worked example.
func TestConvertIsAlphaEquivalentToSource(t *testing.T) {
	srcs := []string{
		"λ. 1",
		"λ_. λ_. 1",
		"λ_. λ_. 2",
		"λ_. λ_. λ_. 3 2 1",
		"λx. λ. x 1",
		"λx. λy. λz. x z (y z)",
		"λf. λx. f (f (f x))",
	}
	intern := strs.New()
	for _, s := range srcs {
		in := arena.New()
		e, err := parse.ParseMixed(in, intern, []byte(s))
		require.NoError(t, err)

		out := arena.New()
		named := Convert(intern, in, e, out, namegen.DefaultBaseCycle())

		assert.True(t, alpha.Equivalent(
			alpha.Side{Env: renv.New(nil), Arena: in, Expr: e},
			alpha.Side{Env: renv.New(nil), Arena: out, Expr: named},
		), "source %q not alpha-equivalent to its conversion", s)
	}
}

// P2: converting an already fully named expression changes nothing, since
// there are no anonymous binders for the generator to touch.
func TestConvertIsIdempotentOnNamedInput(t *testing.T) {
	intern := strs.New()
	src := "λx. λy. λz. x z (y z)"

	in := arena.New()
	e, err := parse.ParseNamed(in, intern, []byte(src))
	require.NoError(t, err)

	out := arena.New()
	named := Convert(intern, in, e, out, namegen.DefaultBaseCycle())

	assert.Equal(t, render.Pretty(in, intern, e, 80), render.Pretty(out, intern, named, 80))
}

// P8: an anonymous binder that nothing in its body refers to stays a hole.
func TestUnusedAnonymousBinderStaysAnonymous(t *testing.T) {
	intern := strs.New()
	in := arena.New()
	e, err := parse.ParseMixed(in, intern, []byte("λ. λx. x"))
	require.NoError(t, err)

	out := arena.New()
	named := Convert(intern, in, e, out, namegen.DefaultBaseCycle())

	require.Equal(t, arena.KAbstraction, out.Kind(named))
	assert.False(t, out.HasParam(named))
}

// With the suffix-on-x generator, whose first candidate "x" is restricted for
// the inner binder (it would shadow the outer x used in its body), the
// generator moves on to the next candidate in its enumeration, "x1".
func TestGenerateSkipsRestrictedNames(t *testing.T) {
	intern := strs.New()
	in := arena.New()
	e, err := parse.ParseMixed(in, intern, []byte("λx. λ. x 1"))
	require.NoError(t, err)

	out := arena.New()
	named := Convert(intern, in, e, out, &namegen.SuffixOn{Base: "x"})

	require.Equal(t, arena.KAbstraction, out.Kind(named))
	inner := out.Body(named)
	require.Equal(t, arena.KAbstraction, out.Kind(inner))
	require.True(t, out.HasParam(inner))
	assert.Equal(t, "x1", intern.Text(out.VariableName(inner)))
}
