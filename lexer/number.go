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
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/mcy/ilex/dfa"
	"github.com/mcy/ilex/internal/xid"
	"github.com/mcy/ilex/rule"
	"github.com/mcy/ilex/token"
)

// matchSignAt returns the byte length of the longest sign literal in signs
// that is a prefix of text, mirroring dfa.matchSign.
func matchSignAt(signs []rule.Sign, text string) int {
	best := 0
	for _, s := range signs {
		if s.Text != "" && strings.HasPrefix(text, s.Text) && len(s.Text) > best {
			best = len(s.Text)
		}
	}
	return best
}

// decodeDigitAt decodes one code point from text and reports whether it is
// a valid digit in the given radix, mirroring dfa.decodeDigit.
func decodeDigitAt(text string, radix int) (size int, ok bool) {
	if text == "" {
		return 0, false
	}
	r, size := utf8.DecodeRuneInString(text)
	if _, ok := xid.Digit(r, byte(radix)); !ok {
		return 0, false
	}
	return size, true
}

// matchExponentPrefixAt tries every declared exponent's prefixes for the
// longest match at pos, then consumes that exponent's own sign, mirroring
// dfa.matchExponentPrefix but also reporting which exponent index matched.
func matchExponentPrefixAt(exps []rule.NumberExponent, text string, pos, limit int) (newPos, prefixEnd, which int, digits rule.DigitRule, ok bool) {
	rest := text[pos:limit]
	bestLen, bestIdx := -1, -1
	var bestDigits rule.DigitRule
	for i, exp := range exps {
		for _, p := range exp.Prefixes {
			if p == "" {
				continue
			}
			if strings.HasPrefix(rest, p) && len(p) > bestLen {
				bestLen, bestIdx = len(p), i
				bestDigits = exp.Digits
			}
		}
	}
	if bestLen < 0 {
		return pos, pos, -1, rule.DigitRule{}, false
	}
	prefixEnd = pos + bestLen
	newPos = prefixEnd + matchSignAt(bestDigits.Signs, text[prefixEnd:limit])
	return newPos, prefixEnd, bestIdx, bestDigits, true
}

// validateNumberSkeleton is the candidate-disambiguation check used by
// pickCandidate: a skeleton is plausible if its mantissa has at least one
// digit (after any prefix, sign and leading separators), or if the mantissa
// requires no digit blocks at all (MinChunks == 0).
func validateNumberSkeleton(n rule.Number, matched string) bool {
	prefix, _ := dfa.GreedyAffixMatch(matched, n.Affixes.NormalizedPrefixes())
	pos := len(prefix)
	pos += matchSignAt(n.Mantissa.Signs, matched[pos:])
	for pos < len(matched) {
		if size, ok := decodeDigitAt(matched[pos:], n.Mantissa.Radix); ok {
			_ = size
			return true
		}
		if n.Separator != "" && strings.HasPrefix(matched[pos:], n.Separator) {
			pos += len(n.Separator)
			continue
		}
		break
	}
	return n.Mantissa.MinChunks == 0
}

// sepContext describes what lies immediately to one side of a digit
// separator, for corner-case legality purposes.
type sepContext int

const (
	sepDigit sepContext = iota
	sepRunStart
	sepPoint
	sepExpPrefix
	sepEnd
)

// emitNumber implements spec.md §4.E step 5: walking a number's digit
// content block by block, checking separator placement and minimum chunk
// counts, and building the DigitalMeta describing the mantissa and each
// matched exponent.
func (l *lexer) emitNumber(start int, m dfa.Match, lexeme rule.Lexeme, n rule.Number) {
	text := l.file.Text()
	end := start + m.Len
	matched := text[start:end]

	prefix, _ := dfa.GreedyAffixMatch(matched, n.Affixes.NormalizedPrefixes())
	pos := start + len(prefix)

	mantissa := &token.DigitBlocks{WhichExp: -1, Prefix: l.mintSpan(start, start+len(prefix))}
	if sLen := matchSignAt(n.Mantissa.Signs, text[pos:end]); sLen > 0 {
		mantissa.Sign = l.mintSpan(pos, pos+sLen)
		mantissa.HasSign = true
		pos += sLen
	}

	cur := mantissa
	var exponents []token.DigitBlocks
	digits := n.Mantissa
	pointsUsed, expsUsed := 0, 0

	blockStart := -1
	digitsInBlock := 0
	runStart := pos

	closeBlock := func(at int) {
		if blockStart < 0 {
			return
		}
		sp := l.mintSpan(blockStart, at)
		cur.Blocks = append(cur.Blocks, sp)
		if digitsInBlock == 0 {
			l.report.Expected(sp, fmt.Sprintf("digits in base %d", digits.Radix))
		}
		blockStart, digitsInBlock = -1, 0
	}

	finishRun := func() {
		if len(cur.Blocks) < digits.MinChunks {
			l.report.Expected(l.mintSpan(runStart, pos), "more digits")
		}
	}

	contextAt := func() sepContext {
		switch {
		case digitsInBlock > 0:
			return sepDigit
		case blockStart < 0 && len(cur.Blocks) == 0:
			return sepRunStart
		default:
			return sepPoint
		}
	}

	forwardContext := func(after int) sepContext {
		p := after
		for p < end && n.Separator != "" && strings.HasPrefix(text[p:end], n.Separator) {
			p += len(n.Separator)
		}
		if p >= end {
			return sepEnd
		}
		if _, ok := decodeDigitAt(text[p:end], digits.Radix); ok {
			return sepDigit
		}
		if n.Point != "" && pointsUsed < n.MaxPoints && strings.HasPrefix(text[p:end], n.Point) {
			return sepPoint
		}
		if expsUsed < len(n.Exponents) {
			if _, _, _, _, ok := matchExponentPrefixAt(n.Exponents, text, p, end); ok {
				return sepExpPrefix
			}
		}
		return sepEnd
	}

	separatorLegal := func(before, after sepContext) bool {
		if before == sepDigit && after == sepDigit {
			return true
		}
		switch {
		case before == sepRunStart || after == sepRunStart:
			if cur == mantissa {
				return digits.CornerCases.Prefix
			}
			return digits.CornerCases.AroundExp
		case before == sepPoint || after == sepPoint:
			return digits.CornerCases.AroundPoint
		case before == sepExpPrefix || after == sepExpPrefix:
			return digits.CornerCases.AroundExp
		case after == sepEnd:
			return digits.CornerCases.Suffix
		default:
			return true
		}
	}

	for pos < end {
		rest := text[pos:end]

		if n.Separator != "" && strings.HasPrefix(rest, n.Separator) {
			sepEndPos := pos + len(n.Separator)
			if !separatorLegal(contextAt(), forwardContext(sepEndPos)) {
				l.report.Unexpected(l.mintSpan(pos, sepEndPos), "digit separator")
			}
			pos = sepEndPos
			continue
		}

		if n.Point != "" && pointsUsed < n.MaxPoints && strings.HasPrefix(rest, n.Point) {
			closeBlock(pos)
			pos += len(n.Point)
			pointsUsed++
			continue
		}

		if expsUsed < len(n.Exponents) {
			if newPos, prefixEnd, which, newDigits, ok := matchExponentPrefixAt(n.Exponents, text, pos, end); ok {
				closeBlock(pos)
				finishRun()
				exp := token.DigitBlocks{WhichExp: which, Prefix: l.mintSpan(pos, prefixEnd)}
				if newPos > prefixEnd {
					exp.Sign, exp.HasSign = l.mintSpan(prefixEnd, newPos), true
				}
				exponents = append(exponents, exp)
				cur = &exponents[len(exponents)-1]
				digits = newDigits
				pointsUsed = 0
				expsUsed++
				pos = newPos
				runStart = pos
				continue
			}
		}

		if size, ok := decodeDigitAt(rest, digits.Radix); ok {
			if blockStart < 0 {
				blockStart = pos
			}
			digitsInBlock++
			pos += size
			continue
		}

		break
	}
	closeBlock(pos)
	finishRun()

	suffix, ok := dfa.GreedyAffixMatch(text[pos:], n.Affixes.NormalizedSuffixes())
	if !ok {
		l.report.Expected(l.mintSpan(pos, pos), "a suffix")
		suffix = ""
	}
	finalEnd := pos + len(suffix)

	id := l.push(lexeme, finalEnd)
	l.attachComments(id)
	l.stream.SetMeta(id, token.DigitalMeta{Mantissa: *mantissa, Exponents: exponents})
	l.cursor = finalEnd
}
