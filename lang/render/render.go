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

// Package render is a width-aware pretty printer for expressions. It is the
// inverse of package parse, modulo whitespace: Parse(Pretty(e, width))
// reproduces e for any width >= 1, except that a NamelessAbstraction prints
// as "λ_." and so reparses as an Abstraction hole (an alpha-equivalent,
// not structurally identical, result).
package render

import (
	"strconv"

	"github.com/google/lambdacalc/lang/arena"
	"github.com/google/lambdacalc/lang/strs"
)

// precedence levels, lowest first. Abstraction bodies extend as far right as
// possible, so an abstraction used as a function or an argument needs
// parentheses; applications parsed as a flat run of atoms mean any
// sub-application used as an atom needs them too.
const (
	precAbstraction = iota
	precApplication
	precAtom
)

// Pretty renders the expression rooted at id, breaking applications and
// abstraction bodies onto new lines only where they do not fit within
// width columns.
func Pretty(a *arena.Arena, intern *strs.Interner, id arena.ID, width int) string {
	return renderDoc(build(a, intern, id), width)
}

func build(a *arena.Arena, intern *strs.Interner, id arena.ID) *doc {
	d, _ := buildPrec(a, intern, id)
	return d
}

// buildPrec returns the node's doc along with its own precedence, so callers
// can decide whether to parenthesize it.
func buildPrec(a *arena.Arena, intern *strs.Interner, id arena.ID) (*doc, int) {
	switch a.Kind(id) {
	case arena.KNamedVariable:
		return text(intern.Text(a.VariableName(id))), precAtom

	case arena.KNamelessVariable:
		return text(strconv.FormatUint(uint64(a.Index(id)), 10)), precAtom

	case arena.KAbstraction:
		param := "_"
		if a.HasParam(id) {
			param = intern.Text(a.VariableName(id))
		}
		return binder(a, intern, param, a.Body(id)), precAbstraction

	case arena.KNamelessAbstraction:
		return binder(a, intern, "_", a.Body(id)), precAbstraction

	case arena.KApplication:
		parts := append([]arena.ID{a.Func(id)}, a.Args(id)...)
		docs := make([]*doc, 0, len(parts))
		for i, p := range parts {
			pd, pp := buildPrec(a, intern, p)
			if pp < precAtom {
				pd = concat(text("("), pd, text(")"))
			}
			if i > 0 {
				docs = append(docs, line())
			}
			docs = append(docs, pd)
		}
		return group(nest(2, concat(docs...))), precApplication
	}
	panic("render: unreachable expression kind")
}

func binder(a *arena.Arena, intern *strs.Interner, param string, body arena.ID) *doc {
	bodyDoc, bodyPrec := buildPrec(a, intern, body)
	if bodyPrec < precAbstraction {
		// unreachable today (nothing has lower precedence than an
		// abstraction), kept for symmetry with the application case.
		bodyDoc = concat(text("("), bodyDoc, text(")"))
	}
	return group(concat(
		text("λ"+param+"."),
		nest(2, concat(line(), bodyDoc)),
	))
}
