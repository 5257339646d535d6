// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package lexer

import (
	"strings"

	"github.com/mcy/ilex/dfa"
	"github.com/mcy/ilex/rule"
	"github.com/mcy/ilex/token"
)

// bracketMirror computes the exact literal text that must appear for
// openText (the bytes the dfa accepted as this bracket's opener) to be
// considered closed, per spec.md §4.E step 3.
func bracketMirror(b rule.Bracket, openText string) string {
	switch b.Shape {
	case rule.Paired:
		return b.Close

	case rule.RustLike:
		left, right := b.RustOpen.Left, b.RustOpen.Right
		inner := openText[len(left) : len(openText)-len(right)]
		count := 0
		if b.Repeating != "" {
			count = len(inner) / len(b.Repeating)
		}
		var sb strings.Builder
		sb.WriteString(b.RustClose.Left)
		for i := 0; i < count; i++ {
			sb.WriteString(b.Repeating)
		}
		sb.WriteString(b.RustClose.Right)
		return sb.String()

	case rule.CxxLike:
		left, right := b.CxxOpen.Left, b.CxxOpen.Right
		ident := openText[len(left) : len(openText)-len(right)]
		return b.CxxClose.Left + ident + b.CxxClose.Right

	default:
		return ""
	}
}

// emitBracket handles a Bracket candidate. When isClose is true, the dfa
// found text that looks like a closer for this bracket, but the driver's
// direct literal check against the top of the closer stack already failed
// to pop it (wrong bracket kind, or nothing open at all): that is an
// unopened closer.
func (l *lexer) emitBracket(start int, m dfa.Match, lexeme rule.Lexeme, b rule.Bracket, isClose bool) {
	text := l.file.Text()
	matched := text[start : start+m.Len]

	if isClose {
		end := start + m.Len + m.Extra
		id := l.push(token.UNEXPECTED, end)
		l.attachComments(id)
		l.report.Unopened(l.mintSpan(start, end))
		l.cursor = end
		return
	}

	if b.Shape == rule.CxxLike {
		left, right := b.CxxOpen.Left, b.CxxOpen.Right
		inner := cxxInnerRaw(matched, left, right)
		l.checkIdentBody(b.IdentRule, inner, l.mintSpan(start+len(left), start+len(matched)-len(right)))
	}

	end := start + m.Len
	mirror := bracketMirror(b, matched)
	id := l.push(lexeme, end)
	l.attachComments(id)
	l.stream.SetMeta(id, token.OffsetMeta{Cursor: -1, Meta: -1})
	l.closers = append(l.closers, closerFrame{lexeme: lexeme, text: mirror, openID: id})
	l.cursor = end
}
