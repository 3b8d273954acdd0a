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

// Package parse parses the concrete lambda-calculus syntax into an
// expression arena.
//
//	E ::= λ (name|_) . E | A+
//	A ::= name | ( E )
//
// Mixed mode additionally accepts a bare "λ ." anonymous binder and
// unsigned decimal literals as de Bruijn variable references. The named
// mode rejects both, since a fully named expression cannot contain them.
//
// The parser is deliberately thin: it lowers tokens into arena nodes and
// gets out of the way. The interesting work happens downstream, in the
// naming engine.
package parse

import (
	"fmt"

	"github.com/google/lambdacalc/lang/arena"
	"github.com/google/lambdacalc/lang/strs"
)

// Error is a structured parse error: a byte offset into the input plus a
// human-readable description of what was expected.
type Error struct {
	Offset int
	Msg    string
}

func (e *Error) Error() string {
	return fmt.Sprintf("parse: %s (at byte offset %d)", e.Msg, e.Offset)
}

type parser struct {
	arena  *arena.Arena
	intern *strs.Interner
	toks   []tok
	mixed  bool
	srcLen int
}

// ParseNamed parses src under the named grammar: every binder carries a name
// or a hole, and there are no de Bruijn literals. Nodes are appended to a.
func ParseNamed(a *arena.Arena, intern *strs.Interner, src []byte) (arena.ID, error) {
	return parse(a, intern, src, false)
}

// ParseMixed parses src under the mixed grammar: binders may additionally be
// anonymous ("λ .") and atoms may be unsigned decimal de Bruijn indices.
func ParseMixed(a *arena.Arena, intern *strs.Interner, src []byte) (arena.ID, error) {
	return parse(a, intern, src, true)
}

func parse(a *arena.Arena, intern *strs.Interner, src []byte, mixed bool) (arena.ID, error) {
	toks, err := lex(src)
	if err != nil {
		return 0, err
	}
	p := &parser{arena: a, intern: intern, toks: toks, mixed: mixed, srcLen: len(src)}
	if len(p.toks) == 0 {
		return 0, &Error{Offset: 0, Msg: "empty input"}
	}
	e, err := p.expr()
	if err != nil {
		return 0, err
	}
	if len(p.toks) != 0 {
		return 0, &Error{Offset: p.toks[0].offset, Msg: fmt.Sprintf("unexpected trailing input near %q", p.toks[0].text)}
	}
	return e, nil
}

func (p *parser) peek() tok {
	if len(p.toks) == 0 {
		return tok{kind: tEOF}
	}
	return p.toks[0]
}

func (p *parser) advance() tok {
	t := p.toks[0]
	p.toks = p.toks[1:]
	return t
}

func (p *parser) expect(k tokKind, what string) (tok, error) {
	if p.peek().kind != k {
		return tok{}, p.unexpected(what)
	}
	return p.advance(), nil
}

func (p *parser) unexpected(what string) error {
	t := p.peek()
	if t.kind == tEOF {
		return &Error{Offset: p.srcLen, Msg: fmt.Sprintf("unexpected end of input, expected %s", what)}
	}
	return &Error{Offset: t.offset, Msg: fmt.Sprintf("unexpected %q, expected %s", t.text, what)}
}

// expr parses a full E production.
func (p *parser) expr() (arena.ID, error) {
	if p.peek().kind == tLambda {
		return p.abstraction()
	}
	return p.application()
}

func (p *parser) abstraction() (arena.ID, error) {
	p.advance() // tLambda

	switch p.peek().kind {
	case tUnderscore:
		p.advance()
		if _, err := p.expect(tDot, `"."`); err != nil {
			return 0, err
		}
		body, err := p.expr()
		if err != nil {
			return 0, err
		}
		return p.arena.Abstraction(strs.Invalid, body), nil

	case tIdent:
		name := p.advance().text
		if _, err := p.expect(tDot, `"."`); err != nil {
			return 0, err
		}
		body, err := p.expr()
		if err != nil {
			return 0, err
		}
		return p.arena.Abstraction(p.intern.Intern(name), body), nil

	case tDot:
		if !p.mixed {
			return 0, p.unexpected(`a variable name or "_"`)
		}
		p.advance()
		body, err := p.expr()
		if err != nil {
			return 0, err
		}
		return p.arena.NamelessAbstraction(body), nil
	}

	if p.mixed {
		return 0, p.unexpected(`a variable name, "_" or "."`)
	}
	return 0, p.unexpected(`a variable name or "_"`)
}

// application parses a left-associative run of one or more atoms.
func (p *parser) application() (arena.ID, error) {
	fn, err := p.atom()
	if err != nil {
		return 0, err
	}
	var args []arena.ID
	for p.startsAtom() {
		arg, err := p.atom()
		if err != nil {
			return 0, err
		}
		args = append(args, arg)
	}
	if len(args) == 0 {
		return fn, nil
	}
	return p.arena.Application(fn, args), nil
}

func (p *parser) startsAtom() bool {
	switch p.peek().kind {
	case tIdent, tLParen:
		return true
	case tInt:
		return p.mixed
	}
	return false
}

func (p *parser) atom() (arena.ID, error) {
	t := p.peek()
	switch t.kind {
	case tIdent:
		p.advance()
		return p.arena.NamedVariable(p.intern.Intern(t.text)), nil

	case tInt:
		if !p.mixed {
			return 0, p.unexpected(`a variable name or "("`)
		}
		p.advance()
		index, err := parseDeBruijnIndex(t.text)
		if err != nil {
			return 0, &Error{Offset: t.offset, Msg: err.Error()}
		}
		return p.arena.NamelessVariable(index), nil

	case tLParen:
		p.advance()
		e, err := p.expr()
		if err != nil {
			return 0, err
		}
		if _, err := p.expect(tRParen, `")"`); err != nil {
			return 0, err
		}
		return e, nil
	}
	if p.mixed {
		return 0, p.unexpected(`a variable name, a de Bruijn index or "("`)
	}
	return 0, p.unexpected(`a variable name or "("`)
}

func parseDeBruijnIndex(s string) (uint32, error) {
	var n uint64
	for _, c := range s {
		n = n*10 + uint64(c-'0')
		if n > 0xFFFFFFFF {
			return 0, fmt.Errorf("de Bruijn index %q overflows", s)
		}
	}
	if n == 0 {
		return 0, fmt.Errorf("de Bruijn index 0 is invalid; indices are 1-based")
	}
	return uint32(n), nil
}
