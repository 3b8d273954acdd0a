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

import "fmt"

type tokKind uint8

const (
	tEOF tokKind = iota
	tLambda
	tDot
	tLParen
	tRParen
	tUnderscore
	tIdent
	tInt
)

type tok struct {
	kind   tokKind
	text   string
	offset int
}

func alpha(c byte) bool {
	return ('A' <= c && c <= 'Z') || ('a' <= c && c <= 'z')
}

func alphaNumeric(c byte) bool {
	return alpha(c) || ('0' <= c && c <= '9')
}

func numeric(c byte) bool {
	return '0' <= c && c <= '9'
}

// lex tokenizes src. It recognizes ASCII '\' as well as the 'λ' rune as the
// abstraction marker, accepts a single trailing newline, and otherwise
// treats whitespace purely as a separator.
func lex(src []byte) ([]tok, error) {
	var toks []tok
	i := 0
	for i < len(src) {
		c := src[i]
		switch {
		case c == ' ' || c == '\t' || c == '\r':
			i++
		case c == '\n':
			// A single trailing newline is accepted; embedded ones are
			// just whitespace between tokens.
			i++
		case c == '\\':
			toks = append(toks, tok{tLambda, "\\", i})
			i++
		case c == 0xCE && i+1 < len(src) && src[i+1] == 0xBB:
			// UTF-8 encoding of 'λ' (U+03BB).
			toks = append(toks, tok{tLambda, "λ", i})
			i += 2
		case c == '.':
			toks = append(toks, tok{tDot, ".", i})
			i++
		case c == '(':
			toks = append(toks, tok{tLParen, "(", i})
			i++
		case c == ')':
			toks = append(toks, tok{tRParen, ")", i})
			i++
		case c == '_' && (i+1 >= len(src) || !alphaNumeric(src[i+1])):
			toks = append(toks, tok{tUnderscore, "_", i})
			i++
		case alpha(c):
			j := i + 1
			for j < len(src) && alphaNumeric(src[j]) {
				j++
			}
			toks = append(toks, tok{tIdent, string(src[i:j]), i})
			i = j
		case numeric(c):
			j := i + 1
			for j < len(src) && numeric(src[j]) {
				j++
			}
			toks = append(toks, tok{tInt, string(src[i:j]), i})
			i = j
		default:
			return nil, &Error{Offset: i, Msg: fmt.Sprintf("unexpected byte %q", c)}
		}
	}
	return toks, nil
}
