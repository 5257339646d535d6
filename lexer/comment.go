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
	"unicode/utf8"

	"github.com/mcy/ilex/dfa"
	"github.com/mcy/ilex/rule"
)

// emitComment implements spec.md §4.E step 4: scanning past a comment's
// body to find its close, then buffering its span for attachment to
// whichever real token comes next, rather than pushing it as a host.
func (l *lexer) emitComment(start int, m dfa.Match, lexeme rule.Lexeme, c rule.Comment) {
	var end int
	switch c.Shape {
	case rule.Line:
		end = l.scanLineComment(start)
	case rule.Block:
		end = l.scanBlockComment(start, m, c)
	default:
		end = start + m.Len
	}

	id := l.push(lexeme, end)
	l.pendingComments = append(l.pendingComments, l.stream.Span(l.ctx, id))
	l.cursor = end
}

// scanLineComment scans from the comment's literal start to the next
// newline, exclusive, or to end of file.
func (l *lexer) scanLineComment(start int) int {
	text := l.file.Text()
	if nl := strings.IndexByte(text[start:], '\n'); nl >= 0 {
		return start + nl
	}
	return len(text)
}

// scanBlockComment scans from the comment's open bracket to its matching
// close, honoring nesting depth for Paired brackets when c.CanNest is set.
// Nesting for RustLike/CxxLike block comment brackets is not tracked: the
// first occurrence of the computed mirror closes the comment, since a
// repeating delimiter or identifier mirror has no natural notion of a
// "nested" variant to count.
func (l *lexer) scanBlockComment(start int, m dfa.Match, c rule.Comment) int {
	text := l.file.Text()
	openEnd := start + m.Len
	matched := text[start:openEnd]

	if c.BlockBracket.Shape == rule.CxxLike {
		left, right := c.BlockBracket.CxxOpen.Left, c.BlockBracket.CxxOpen.Right
		inner := cxxInnerRaw(matched, left, right)
		l.checkIdentBody(c.BlockBracket.IdentRule, inner,
			l.mintSpan(start+len(left), openEnd-len(right)))
	}

	mirror := bracketMirror(c.BlockBracket, matched)
	if mirror == "" {
		return openEnd
	}
	if mirror == "\n" {
		// Excluded from the comment's own span; the next loop iteration
		// consumes it as an ordinary line-end whitespace newline.
		if nl := strings.IndexByte(text[openEnd:], '\n'); nl >= 0 {
			return openEnd + nl
		}
		l.report.Unclosed(l.mintSpan(start, openEnd))
		return len(text)
	}

	canNest := c.CanNest && c.BlockBracket.Shape == rule.Paired
	opener := ""
	if canNest {
		opener = c.BlockBracket.Open
	}

	depth := 1
	pos := openEnd
	for pos < len(text) {
		if opener != "" && strings.HasPrefix(text[pos:], opener) {
			depth++
			pos += len(opener)
			continue
		}
		if strings.HasPrefix(text[pos:], mirror) {
			depth--
			pos += len(mirror)
			if depth == 0 {
				return pos
			}
			continue
		}
		_, size := utf8.DecodeRuneInString(text[pos:])
		if size == 0 {
			size = 1
		}
		pos += size
	}

	l.report.Unclosed(l.mintSpan(start, openEnd))
	return len(text)
}
