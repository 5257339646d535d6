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

// emit runs one step of the finisher/emitter described in spec.md §4.E: it
// searches the dfa at the cursor, disambiguates among the candidates that
// tied for the longest match, dispatches to the rule-kind-specific
// finisher, and then runs the two checks every rule kind shares (overparse
// and the trailing-XID safety net).
func (l *lexer) emit() {
	text := l.rest()
	m, ok := l.dfa.Search(text)
	if !ok {
		return
	}
	start := l.cursor
	lexeme, isClose := l.pickCandidate(m, text)
	r := l.spec.Rule(lexeme)

	if l.lineEndLatch != nil {
		if _, isComment := r.(rule.Comment); !isComment {
			l.report.Expected(l.mintSpan(start, start+m.Len), "a newline")
			l.lineEndLatch = nil
		}
	}

	switch v := r.(type) {
	case rule.Keyword:
		l.emitKeyword(start, m, lexeme)
	case rule.LineEnd:
		l.emitLineEnd(start, m, lexeme, v)
	case rule.Bracket:
		l.emitBracket(start, m, lexeme, v, isClose)
	case rule.Ident:
		l.emitIdent(start, m, lexeme, v)
	case rule.Quoted:
		l.emitQuoted(start, m, lexeme, v)
	case rule.Number:
		l.emitNumber(start, m, lexeme, v)
	case rule.Comment:
		l.emitComment(start, m, lexeme, v)
	}

	l.diagnoseExtra(start, m)
	l.consumeTrailingXID()
}

// pickCandidate walks m.Candidates, already sorted by (Lexeme, IsClose),
// and returns the first one whose kind-specific validation passes. If none
// pass, it falls back to the first candidate and lets that rule's finisher
// report whatever is wrong, per spec.md §4.E step 1.
func (l *lexer) pickCandidate(m dfa.Match, text string) (rule.Lexeme, bool) {
	for _, c := range m.Candidates {
		if l.validateCandidate(c, m, text) {
			return c.Lexeme, c.IsClose
		}
	}
	c := m.Candidates[0]
	return c.Lexeme, c.IsClose
}

func (l *lexer) validateCandidate(c dfa.Candidate, m dfa.Match, text string) bool {
	matched := text[:m.Len]
	switch v := l.spec.Rule(c.Lexeme).(type) {
	case rule.Ident:
		return validateIdent(v, matched)
	case rule.Bracket:
		if v.Shape == rule.CxxLike {
			left, right := v.CxxOpen.Left, v.CxxOpen.Right
			if c.IsClose {
				left, right = v.CxxClose.Left, v.CxxClose.Right
			}
			return validateCxxIdent(v.IdentRule, cxxInnerRaw(matched, left, right))
		}
		return true
	case rule.Comment:
		if v.Shape == rule.Block && v.BlockBracket.Shape == rule.CxxLike {
			left, right := v.BlockBracket.CxxOpen.Left, v.BlockBracket.CxxOpen.Right
			return validateCxxIdent(v.BlockBracket.IdentRule, cxxInnerRaw(matched, left, right))
		}
		return true
	case rule.Quoted:
		if v.Bracket.Shape == rule.CxxLike {
			prefix, _ := dfa.GreedyAffixMatch(matched, v.Affixes.NormalizedPrefixes())
			body := matched[len(prefix):]
			left, right := v.Bracket.CxxOpen.Left, v.Bracket.CxxOpen.Right
			return validateCxxIdent(v.Bracket.IdentRule, cxxInnerRaw(body, left, right))
		}
		return true
	case rule.Number:
		return validateNumberSkeleton(v, matched)
	default:
		return true
	}
}

// diagnoseExtra reports the bytes a rival rule's matcher kept trying past
// the accepted length as extra characters, per spec.md testable property 6,
// unless the chosen rule's finisher already consumed (or partly consumed)
// that range itself.
func (l *lexer) diagnoseExtra(start int, m dfa.Match) {
	if m.Extra <= 0 {
		return
	}
	lo, hi := start+m.Len, start+m.Len+m.Extra
	if l.cursor >= hi {
		return
	}
	if l.cursor > lo {
		lo = l.cursor
	}
	l.report.ExtraChars(l.mintSpan(lo, hi))
}

// consumeTrailingXID implements spec.md §4.E step 9's safety net: a token
// boundary immediately followed by more identifier characters (e.g. an
// ASCII-only identifier stopping short of a non-ASCII XID_Continue rune)
// is almost always a mistake, so the run is consumed as a single UNEXPECTED
// token rather than silently glued onto whatever comes next.
func (l *lexer) consumeTrailingXID() {
	text := l.file.Text()
	if l.cursor == 0 || l.cursor >= len(text) {
		return
	}
	_, size := utf8.DecodeLastRuneInString(text[:l.cursor])
	lastKind, ok := l.file.IsXID(l.cursor - size)
	if !ok || lastKind == span.KindNo {
		return
	}
	isXIDKind := func(k span.Kind) bool { return k == span.KindStart || k == span.KindContinue }
	nextKind, ok := l.file.IsXID(l.cursor)
	if !ok || !isXIDKind(nextKind) {
		return
	}
	runStart := l.cursor
	for l.cursor < len(text) {
		k, ok := l.file.IsXID(l.cursor)
		if !ok || !isXIDKind(k) {
			break
		}
		_, sz := utf8.DecodeRuneInString(text[l.cursor:])
		l.cursor += sz
	}
	id := l.push(token.UNEXPECTED, l.cursor)
	l.attachComments(id)
	l.report.UnexpectedToken(l.mintSpan(runStart, l.cursor))
}

func (l *lexer) emitKeyword(start int, m dfa.Match, lexeme rule.Lexeme) {
	end := start + m.Len
	id := l.push(lexeme, end)
	l.attachComments(id)
	l.cursor = end
}

func (l *lexer) emitLineEnd(start int, m dfa.Match, lexeme rule.Lexeme, v rule.LineEnd) {
	end := start + m.Len
	id := l.push(lexeme, end)
	l.attachComments(id)
	l.cursor = end
	if v.Literal != "\n" {
		l.lineEndLatch = &lineEndLatch{span: l.stream.Span(l.ctx, id)}
	}
}

func cxxInnerRaw(text, left, right string) string {
	return text[len(left) : len(text)-len(right)]
}

func validateCxxIdent(idr rule.Ident, inner string) bool {
	if utf8.RuneCountInString(inner) < idr.MinLen {
		return false
	}
	if idr.AsciiOnly {
		for _, r := range inner {
			if r > unicode.MaxASCII {
				return false
			}
		}
	}
	return true
}
