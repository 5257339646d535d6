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
	"unicode"
	"unicode/utf8"

	"github.com/mcy/ilex/dfa"
	"github.com/mcy/ilex/rule"
	"github.com/mcy/ilex/span"
	"github.com/mcy/ilex/token"
)

// identBodyLen returns the length, in bytes, of the maximal identifier run
// at the start of text under idr's start/continue rules.
func identBodyLen(idr rule.Ident, text string) int {
	n := 0
	first := true
	for n < len(text) {
		r, size := utf8.DecodeRuneInString(text[n:])
		var valid bool
		if first {
			valid = idr.IsValidStart(r)
		} else {
			valid = idr.IsValidContinue(r)
		}
		if !valid {
			break
		}
		n += size
		first = false
	}
	return n
}

// identParts splits matched (the full dfa-accepted text, affixes included)
// into its declared prefix, its identifier body, and its declared suffix.
func identParts(idr rule.Ident, matched string) (prefix, body, suffix string) {
	prefix, _ = dfa.GreedyAffixMatch(matched, idr.Affixes.NormalizedPrefixes())
	rest := matched[len(prefix):]
	n := identBodyLen(idr, rest)
	return prefix, rest[:n], rest[n:]
}

func validateIdent(idr rule.Ident, matched string) bool {
	_, body, _ := identParts(idr, matched)
	return validateCxxIdent(idr, body)
}

// checkIdentBody reports the two diagnostics every identifier-shaped body
// (a plain Ident token, or the inner identifier of a CxxLike bracket,
// comment, or quoted string) is subject to.
func (l *lexer) checkIdentBody(idr rule.Ident, body string, at span.Span) {
	if utf8.RuneCountInString(body) < idr.MinLen {
		l.report.IdentTooSmall(at, idr.MinLen)
	}
	if idr.AsciiOnly {
		for _, r := range body {
			if r > unicode.MaxASCII {
				l.report.NonASCIIInIdent(at)
				break
			}
		}
	}
}

// emitIdent implements spec.md §4.E steps 2 and 7: affix stripping followed
// by PREFIX/IDENT/SUFFIX emission.
func (l *lexer) emitIdent(start int, m dfa.Match, lexeme rule.Lexeme, idr rule.Ident) {
	matched := l.file.Text()[start : start+m.Len]
	prefix, body, suffix := identParts(idr, matched)

	pos := start
	if prefix != "" {
		id := l.push(token.PREFIX, pos+len(prefix))
		l.attachComments(id)
	}
	pos += len(prefix)

	bodyStart, bodyEnd := pos, pos+len(body)
	id := l.push(lexeme, bodyEnd)
	l.attachComments(id)
	l.checkIdentBody(idr, body, l.mintSpan(bodyStart, bodyEnd))

	pos = bodyEnd
	if suffix != "" {
		sid := l.push(token.SUFFIX, pos+len(suffix))
		l.attachComments(sid)
	}

	l.cursor = start + m.Len
}
