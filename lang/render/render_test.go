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

package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/google/lambdacalc/lang/arena"
	"github.com/google/lambdacalc/lang/parse"
	"github.com/google/lambdacalc/lang/strs"
)

func TestPrettyMatchesWorkedExamples(t *testing.T) {
	cases := []string{
		"λx. x",
		"λ_. λx. x",
		"λx. λy. λz. x y z",
		"λx. λy. x y",
		"x z (y z)",
	}
	intern := strs.New()
	for _, src := range cases {
		a := arena.New()
		e, err := parse.ParseMixed(a, intern, []byte(src))
		require.NoError(t, err)
		assert.Equal(t, src, Pretty(a, intern, e, 80))
	}
}

// P5: parse(pretty(e, width)) is structurally identical for every width >= 1.
func TestPrintParseRoundTripAtEveryWidth(t *testing.T) {
	intern := strs.New()
	a := arena.New()
	e, err := parse.ParseNamed(a, intern, []byte("λx. λy. λz. x z (y z)"))
	require.NoError(t, err)

	for width := 1; width <= 40; width++ {
		printed := Pretty(a, intern, e, width)

		reparsed := arena.New()
		reparsedID, err := parse.ParseNamed(reparsed, intern, []byte(printed))
		require.NoError(t, err, "width %d: %q", width, printed)

		assert.Equal(t, "λx. λy. λz. x z (y z)", Pretty(reparsed, intern, reparsedID, 80), "width %d", width)
	}
}

func TestPrettyParenthesizesApplicationArguments(t *testing.T) {
	intern := strs.New()
	a := arena.New()
	x, y, z := intern.Intern("x"), intern.Intern("y"), intern.Intern("z")
	inner := a.Application(a.NamedVariable(y), []arena.ID{a.NamedVariable(z)})
	app := a.Application(a.NamedVariable(x), []arena.ID{a.NamedVariable(z), inner})

	assert.Equal(t, "x z (y z)", Pretty(a, intern, app, 80))
}

func TestPrettyBreaksWideApplicationsAtNarrowWidth(t *testing.T) {
	intern := strs.New()
	a := arena.New()
	fn := a.NamedVariable(intern.Intern("aVeryLongFunctionName"))
	arg1 := a.NamedVariable(intern.Intern("firstArgument"))
	arg2 := a.NamedVariable(intern.Intern("secondArgument"))
	app := a.Application(fn, []arena.ID{arg1, arg2})

	narrow := Pretty(a, intern, app, 10)
	assert.Contains(t, narrow, "\n")

	wide := Pretty(a, intern, app, 200)
	assert.NotContains(t, wide, "\n")
}

func TestPrettyRendersAnonymousBinderAndDeBruijnIndex(t *testing.T) {
	intern := strs.New()
	a := arena.New()
	nabs := a.NamelessAbstraction(a.NamelessVariable(1))
	assert.Equal(t, "λ_. 1", Pretty(a, intern, nabs, 80))
}
