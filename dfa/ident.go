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
	"unicode/utf8"

	"github.com/mcy/ilex/rule"
)

// matchIdent matches an affix-wrapped maximal identifier run. Trailing-XID
// rejection, minimum length, and ASCII-only restrictions are left to the
// finisher, matching spec.md §4.C: the DFA only needs to find the longest
// surface run, not validate it.
func matchIdent(id rule.Ident, text string) []alt {
	prefix, ok := GreedyAffixMatch(text, id.Affixes.NormalizedPrefixes())
	if !ok {
		return []alt{{accept: -1, dead: 0}}
	}
	rest := text[len(prefix):]

	n := 0
	first := true
	for n < len(rest) {
		r, size := utf8.DecodeRuneInString(rest[n:])
		var valid bool
		if first {
			valid = id.IsValidStart(r)
		} else {
			valid = id.IsValidContinue(r)
		}
		if !valid {
			break
		}
		n += size
		first = false
	}

	if n == 0 {
		// No identifier character at all: this rule cannot accept here,
		// regardless of any declared affix.
		return []alt{{accept: -1, dead: len(prefix)}}
	}

	suffix, ok := GreedyAffixMatch(rest[n:], id.Affixes.NormalizedSuffixes())
	if !ok {
		return []alt{{accept: -1, dead: len(prefix) + n}}
	}
	total := len(prefix) + n + len(suffix)
	return []alt{{accept: total, dead: total}}
}
