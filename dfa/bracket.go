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

	"github.com/mcy/ilex/rule"
)

// matchIdentDelimPlain matches left · ident-run · right, where ident-run is
// a maximal run of characters valid under identRule. It backs CxxLike
// bracket halves.
func matchIdentDelimPlain(text, left string, identRule rule.Ident, right string) alt {
	if !strings.HasPrefix(text, left) {
		return alt{accept: -1, dead: CommonPrefixLen(text, left)}
	}
	rest := text[len(left):]

	n := 0
	first := true
	for n < len(rest) {
		r, size := utf8.DecodeRuneInString(rest[n:])
		var valid bool
		if first {
			valid = identRule.IsValidStart(r)
		} else {
			valid = identRule.IsValidContinue(r)
		}
		if !valid {
			break
		}
		n += size
		first = false
	}

	if strings.HasPrefix(rest[n:], right) {
		total := len(left) + n + len(right)
		return alt{accept: total, dead: total}
	}
	return alt{accept: -1, dead: len(left) + n}
}

// matchBracketHalf matches one side (open or close) of b's delimiter.
func matchBracketHalf(b rule.Bracket, text string, close bool) alt {
	switch b.Shape {
	case rule.Paired:
		lit := b.Open
		if close {
			lit = b.Close
		}
		return matchLiteralPlain(text, lit)
	case rule.RustLike:
		d := b.RustOpen
		if close {
			d = b.RustClose
		}
		return matchRepeatPlain(text, d.Left, b.Repeating, d.Right)
	case rule.CxxLike:
		d := b.CxxOpen
		if close {
			d = b.CxxClose
		}
		return matchIdentDelimPlain(text, d.Left, b.IdentRule, d.Right)
	default:
		return alt{accept: -1}
	}
}

// matchBracket matches both halves of a Bracket rule, tagging each with the
// side it came from so the emitter can tell opens from closes.
func matchBracket(b rule.Bracket, text string) []alt {
	open := matchBracketHalf(b, text, false)
	open.isClose = false
	closer := matchBracketHalf(b, text, true)
	closer.isClose = true
	return []alt{open, closer}
}
