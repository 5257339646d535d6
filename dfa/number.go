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

package dfa

import (
	"strings"
	"unicode/utf8"

	"github.com/mcy/ilex/internal/xid"
	"github.com/mcy/ilex/rule"
)

// matchNumber matches the affix-wrapped number skeleton: an optional sign,
// the declared prefix, radix digits, and any sequence of (separator | point
// | exponent-prefix) followed by more radix digits, up to the declared
// exponents. Per-block separator legality, minimum chunk counts, and exact
// radix validity are finisher concerns (spec.md §4.E.5); the DFA just needs
// the longest plausible run.
func matchNumber(n rule.Number, text string) []alt {
	prefix, ok := GreedyAffixMatch(text, n.Affixes.NormalizedPrefixes())
	if !ok {
		return []alt{{accept: -1, dead: 0}}
	}
	pos := len(prefix)
	pos += matchSign(n.Mantissa.Signs, text[pos:])

	digits := n.Mantissa
	pointsUsed := 0
	expsUsed := 0

	for pos < len(text) {
		rest := text[pos:]

		if n.Separator != "" && strings.HasPrefix(rest, n.Separator) {
			pos += len(n.Separator)
			continue
		}

		if n.Point != "" && pointsUsed < n.MaxPoints && strings.HasPrefix(rest, n.Point) {
			pos += len(n.Point)
			pointsUsed++
			continue
		}

		if expsUsed < len(n.Exponents) {
			if newPos, newDigits, ok := matchExponentPrefix(n.Exponents, text, pos); ok {
				pos = newPos
				digits = newDigits
				expsUsed++
				continue
			}
		}

		if _, size, ok := decodeDigit(rest, digits.Radix); ok {
			pos += size
			continue
		}

		break
	}

	suffix, _ := GreedyAffixMatch(text[pos:], n.Affixes.NormalizedSuffixes())
	total := pos + len(suffix)
	return []alt{{accept: total, dead: total}}
}

// matchExponentPrefix tries every declared exponent's prefixes for the
// longest match at pos, then consumes that exponent's own sign if present.
func matchExponentPrefix(exps []rule.NumberExponent, text string, pos int) (newPos int, digits rule.DigitRule, ok bool) {
	rest := text[pos:]
	bestLen := -1
	var bestDigits rule.DigitRule
	for _, exp := range exps {
		for _, p := range exp.Prefixes {
			if p == "" {
				continue
			}
			if strings.HasPrefix(rest, p) && len(p) > bestLen {
				bestLen = len(p)
				bestDigits = exp.Digits
			}
		}
	}
	if bestLen < 0 {
		return pos, rule.DigitRule{}, false
	}
	newPos = pos + bestLen
	newPos += matchSign(bestDigits.Signs, text[newPos:])
	return newPos, bestDigits, true
}

// matchSign returns the byte length of the longest declared sign literal
// that is a prefix of text, or 0 if none matches.
func matchSign(signs []rule.Sign, text string) int {
	best := 0
	for _, s := range signs {
		if s.Text != "" && strings.HasPrefix(text, s.Text) && len(s.Text) > best {
			best = len(s.Text)
		}
	}
	return best
}

// decodeDigit decodes one code point from text and reports whether it is a
// valid digit in the given radix.
func decodeDigit(text string, radix int) (value byte, size int, ok bool) {
	if text == "" {
		return 0, 0, false
	}
	r, size := utf8.DecodeRuneInString(text)
	v, ok := xid.Digit(r, byte(radix))
	if !ok {
		return 0, 0, false
	}
	return v, size, true
}
