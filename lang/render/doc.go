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

import "strings"

// doc is a small Wadler-style pretty-printing algebra: text, concatenation,
// a soft line break, a nested indent, and a group that tries to flatten its
// contents onto one line before falling back to broken mode. There is no
// library in this module's dependency graph that already provides this, so
// it is hand-rolled here rather than imported (see DESIGN.md).
type doc struct {
	kind docKind
	text string
	n    int  // nest: indent increment. group: unused.
	a, b *doc // concat: a and b. nest, group: a only.
}

type docKind uint8

const (
	dText docKind = iota
	dConcat
	dLine
	dNest
	dGroup
)

func text(s string) *doc { return &doc{kind: dText, text: s} }

func concat(ds ...*doc) *doc {
	out := ds[0]
	for _, d := range ds[1:] {
		out = &doc{kind: dConcat, a: out, b: d}
	}
	return out
}

// line renders as a single space when its enclosing group fits on one line,
// or as a newline plus the current indent otherwise.
func line() *doc { return &doc{kind: dLine} }

func nest(n int, d *doc) *doc { return &doc{kind: dNest, n: n, a: d} }

func group(d *doc) *doc { return &doc{kind: dGroup, a: d} }

type mode uint8

const (
	modeFlat mode = iota
	modeBreak
)

type item struct {
	indent int
	mode   mode
	d      *doc
}

// renderDoc lays d out so that, wherever a group fits within width columns
// measured from the current position, it is printed flat; otherwise its
// line breaks render as actual newlines, each followed by indent spaces.
func renderDoc(d *doc, width int) string {
	var b strings.Builder
	col := 0
	work := []item{{0, modeBreak, d}}
	for len(work) > 0 {
		it := work[len(work)-1]
		work = work[:len(work)-1]

		switch it.d.kind {
		case dText:
			b.WriteString(it.d.text)
			col += len(it.d.text)

		case dConcat:
			work = append(work, item{it.indent, it.mode, it.d.b}, item{it.indent, it.mode, it.d.a})

		case dNest:
			work = append(work, item{it.indent + it.d.n, it.mode, it.d.a})

		case dLine:
			if it.mode == modeFlat {
				b.WriteString(" ")
				col++
			} else {
				b.WriteString("\n")
				b.WriteString(strings.Repeat(" ", it.indent))
				col = it.indent
			}

		case dGroup:
			if fits(width-col, it.indent, it.d.a) {
				work = append(work, item{it.indent, modeFlat, it.d.a})
			} else {
				work = append(work, item{it.indent, modeBreak, it.d.a})
			}
		}
	}
	return b.String()
}

// fits reports whether d, rendered flat from the given indent with the given
// remaining width, contains no line break before running out of columns.
// A group's own contents decide its own fits check; this module's grammar
// never nests deeply enough for that simplification to matter.
func fits(remaining int, indent int, d *doc) bool {
	if remaining < 0 {
		return false
	}
	work := []item{{indent, modeFlat, d}}
	for len(work) > 0 {
		it := work[len(work)-1]
		work = work[:len(work)-1]

		switch it.d.kind {
		case dText:
			remaining -= len(it.d.text)
			if remaining < 0 {
				return false
			}
		case dConcat:
			work = append(work, item{it.indent, it.mode, it.d.b}, item{it.indent, it.mode, it.d.a})
		case dNest:
			work = append(work, item{it.indent + it.d.n, it.mode, it.d.a})
		case dLine:
			if it.mode == modeFlat {
				remaining--
				if remaining < 0 {
					return false
				}
			} else {
				return true
			}
		case dGroup:
			work = append(work, item{it.indent, modeFlat, it.d.a})
		}
	}
	return true
}
