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
	"unicode"
	"unicode/utf8"

	"github.com/mcy/ilex/token"
)

// loop is the driver described in spec.md §4.D: skip whitespace, try to pop
// the top of the closer stack, otherwise run the finisher/emitter, and
// coalesce any byte that none of the above could make progress on into a
// single UNEXPECTED run.
func loop(l *lexer) {
	for l.cursor < l.file.Len() {
		start := l.cursor
		l.skipWhitespace()
		if l.cursor >= l.file.Len() {
			break
		}
		if l.tryPopCloser() {
			continue
		}
		l.emit()
		if l.cursor == start {
			l.consumeUnexpectedRune()
		}
	}
	l.finalize()
}

// skipWhitespace consumes a maximal run of Unicode whitespace at the
// cursor, pushing a WHITESPACE pseudo-token for it if it consumed anything.
// Consuming a "\n" clears an armed line-end latch.
func (l *lexer) skipWhitespace() {
	text := l.file.Text()
	start := l.cursor
	for l.cursor < len(text) {
		r, size := utf8.DecodeRuneInString(text[l.cursor:])
		if !unicode.In(r, unicode.Pattern_White_Space) {
			break
		}
		l.cursor += size
	}
	if l.cursor == start {
		return
	}
	if l.lineEndLatch != nil && strings.ContainsRune(text[start:l.cursor], '\n') {
		l.lineEndLatch = nil
	}
	l.push(token.WHITESPACE, l.cursor)
}

// tryPopCloser pops the top of the bracket closer stack if the text at the
// cursor literally matches its computed mirror text.
func (l *lexer) tryPopCloser() bool {
	if len(l.closers) == 0 {
		return false
	}
	top := l.closers[len(l.closers)-1]
	if top.text == "" || !strings.HasPrefix(l.rest(), top.text) {
		return false
	}
	end := l.cursor + len(top.text)
	id := l.push(top.lexeme, end)
	l.attachComments(id)
	l.linkCloser(top, id)
	l.closers = l.closers[:len(l.closers)-1]
	l.cursor = end
	return true
}

// consumeUnexpectedRune advances the cursor by exactly one code point,
// extending (or starting) the pending coalesced bad-byte run.
func (l *lexer) consumeUnexpectedRune() {
	text := l.file.Text()
	r, size := utf8.DecodeRuneInString(text[l.cursor:])
	if r == utf8.RuneError && size <= 1 {
		size = 1
	}
	if l.badLen == 0 {
		l.badStart = l.cursor
	}
	l.cursor += size
	l.badLen += size
}

// finalize flushes any pending bad-byte run and closes out every bracket
// still on the closer stack at end of file: each gets an Unclosed
// diagnostic and a synthetic, zero-length closer token so the stream still
// balances, per spec.md §7's recovery rule.
func (l *lexer) finalize() {
	for i := len(l.closers) - 1; i >= 0; i-- {
		c := l.closers[i]
		l.report.Unclosed(l.stream.Span(l.ctx, c.openID))
		id := l.push(c.lexeme, l.cursor)
		l.linkCloser(c, id)
	}
	l.closers = nil
	l.flushBad()
}
