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
	"github.com/mcy/ilex/token"
)

// emitQuoted implements spec.md §4.E step 6: scanning a quoted string's
// content into a QuotedMeta marks vector, honoring escapes declared on the
// rule and the bracket shape's own closing mirror.
func (l *lexer) emitQuoted(start int, m dfa.Match, lexeme rule.Lexeme, q rule.Quoted) {
	text := l.file.Text()
	matched := text[start : start+m.Len]
	prefix, _ := dfa.GreedyAffixMatch(matched, q.Affixes.NormalizedPrefixes())
	openDelim := matched[len(prefix):]
	openStart := start + len(prefix)
	openEnd := start + m.Len

	if q.Bracket.Shape == rule.CxxLike {
		left, right := q.Bracket.CxxOpen.Left, q.Bracket.CxxOpen.Right
		inner := cxxInnerRaw(openDelim, left, right)
		l.checkIdentBody(q.Bracket.IdentRule, inner,
			l.mintSpan(openStart+len(left), openStart+len(openDelim)-len(right)))
	}

	mirror := bracketMirror(q.Bracket, openDelim)

	pos := openEnd
	marks := []uint32{uint32(pos)}
	closeStart := -1

scan:
	for pos < len(text) {
		rest := text[pos:]

		if mirror != "" && strings.HasPrefix(rest, mirror) {
			closeStart = pos
			break scan
		}

		if key, esc := q.Escapes.Get(rest); key != "" {
			keyEnd := pos + len(key)
			switch esc.Shape {
			case rule.Invalid:
				l.report.InvalidEscape(l.mintSpan(pos, keyEnd))
				marks = append(marks, uint32(keyEnd), uint32(keyEnd), uint32(keyEnd), uint32(keyEnd))
				pos = keyEnd

			case rule.Basic:
				marks = append(marks, uint32(keyEnd), uint32(keyEnd), uint32(keyEnd), uint32(keyEnd))
				pos = keyEnd

			case rule.Fixed:
				argStart := keyEnd
				p := argStart
				consumed := 0
				for consumed < esc.CharCount && p < len(text) {
					if mirror != "" && strings.HasPrefix(text[p:], mirror) {
						break
					}
					_, size := utf8.DecodeRuneInString(text[p:])
					p += size
					consumed++
				}
				if consumed < esc.CharCount {
					l.report.InvalidEscape(l.mintSpan(pos, p))
				}
				marks = append(marks, uint32(keyEnd), uint32(argStart), uint32(p), uint32(p))
				pos = p

			case rule.Bracketed:
				if !strings.HasPrefix(text[keyEnd:], esc.Open) {
					l.report.InvalidEscape(l.mintSpan(pos, keyEnd))
					marks = append(marks, uint32(keyEnd), uint32(keyEnd), uint32(keyEnd), uint32(keyEnd))
					pos = keyEnd
					continue scan
				}
				argStart := keyEnd + len(esc.Open)
				idx := strings.Index(text[argStart:], esc.Close)
				var argEnd, whole int
				if idx < 0 {
					l.report.InvalidEscape(l.mintSpan(pos, len(text)))
					argEnd, whole = len(text), len(text)
				} else {
					argEnd = argStart + idx
					whole = argEnd + len(esc.Close)
				}
				marks = append(marks, uint32(keyEnd), uint32(argStart), uint32(argEnd), uint32(whole))
				pos = whole
			}
			continue scan
		}

		// A maximal literal chunk contributes exactly one mark, its end.
		for pos < len(text) {
			rest := text[pos:]
			if mirror != "" && strings.HasPrefix(rest, mirror) {
				break
			}
			if key, _ := q.Escapes.Get(rest); key != "" {
				break
			}
			_, size := utf8.DecodeRuneInString(rest)
			if size == 0 {
				size = 1
			}
			pos += size
		}
		marks = append(marks, uint32(pos))
	}

	if closeStart < 0 {
		l.report.Unclosed(l.mintSpan(start, openEnd))
		closeStart = len(text)
		marks = append(marks, uint32(closeStart))
		pos = closeStart
	} else {
		marks = append(marks, uint32(closeStart))
		pos = closeStart + len(mirror)
	}

	suffix, sufOk := dfa.GreedyAffixMatch(text[pos:], q.Affixes.NormalizedSuffixes())
	if !sufOk {
		l.report.Expected(l.mintSpan(pos, pos), "a suffix")
		suffix = ""
	}
	end := pos + len(suffix)

	id := l.push(lexeme, end)
	l.attachComments(id)
	l.stream.SetMeta(id, token.QuotedMeta{Marks: marks})
	l.cursor = end
}
