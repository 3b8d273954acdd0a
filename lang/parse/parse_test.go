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

package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/google/lambdacalc/lang/arena"
	"github.com/google/lambdacalc/lang/strs"
)

func TestParseNamedSimpleAbstraction(t *testing.T) {
	a := arena.New()
	intern := strs.New()
	e, err := ParseNamed(a, intern, []byte("λx. x"))
	require.NoError(t, err)

	require.Equal(t, arena.KAbstraction, a.Kind(e))
	assert.True(t, a.HasParam(e))
	assert.Equal(t, "x", intern.Text(a.VariableName(e)))

	body := a.Body(e)
	require.Equal(t, arena.KNamedVariable, a.Kind(body))
	assert.Equal(t, "x", intern.Text(a.VariableName(body)))
}

func TestParseNamedAcceptsBackslashForLambda(t *testing.T) {
	a := arena.New()
	intern := strs.New()
	e, err := ParseNamed(a, intern, []byte(`\x. x`))
	require.NoError(t, err)
	assert.Equal(t, arena.KAbstraction, a.Kind(e))
}

func TestParseNamedRejectsMixedConstructs(t *testing.T) {
	a := arena.New()
	intern := strs.New()

	_, err := ParseNamed(a, intern, []byte("λ. x"))
	assert.Error(t, err)

	_, err = ParseNamed(a, intern, []byte("1"))
	assert.Error(t, err)
}

func TestParseMixedAnonymousBinderAndDeBruijnIndex(t *testing.T) {
	a := arena.New()
	intern := strs.New()
	e, err := ParseMixed(a, intern, []byte("λ. 1"))
	require.NoError(t, err)

	require.Equal(t, arena.KNamelessAbstraction, a.Kind(e))
	assert.True(t, arena.IsLocallyNameless(a, e))

	body := a.Body(e)
	require.Equal(t, arena.KNamelessVariable, a.Kind(body))
	assert.Equal(t, uint32(1), a.Index(body))
}

func TestParseApplicationIsLeftAssociative(t *testing.T) {
	a := arena.New()
	intern := strs.New()
	e, err := ParseNamed(a, intern, []byte("x y z"))
	require.NoError(t, err)

	require.Equal(t, arena.KApplication, a.Kind(e))
	assert.Equal(t, 2, len(a.Args(e)))
}

func TestParseParenthesesGroup(t *testing.T) {
	a := arena.New()
	intern := strs.New()
	e, err := ParseNamed(a, intern, []byte("x (y z)"))
	require.NoError(t, err)

	require.Equal(t, arena.KApplication, a.Kind(e))
	args := a.Args(e)
	require.Len(t, args, 1)
	assert.Equal(t, arena.KApplication, a.Kind(args[0]))
}

func TestParseDeBruijnIndexZeroIsInvalid(t *testing.T) {
	a := arena.New()
	intern := strs.New()
	_, err := ParseMixed(a, intern, []byte("0"))
	require.Error(t, err)
	var perr *Error
	require.ErrorAs(t, err, &perr)
}

func TestParseReportsOffsetOnUnexpectedToken(t *testing.T) {
	a := arena.New()
	intern := strs.New()
	_, err := ParseNamed(a, intern, []byte("λx x"))
	require.Error(t, err)
	var perr *Error
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, 4, perr.Offset)
}

func TestParseRejectsEmptyInput(t *testing.T) {
	a := arena.New()
	intern := strs.New()
	_, err := ParseNamed(a, intern, []byte("  "))
	assert.Error(t, err)
}

func TestParseRejectsTrailingInput(t *testing.T) {
	a := arena.New()
	intern := strs.New()
	_, err := ParseNamed(a, intern, []byte("x )"))
	assert.Error(t, err)
}
