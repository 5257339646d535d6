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

import "strings"

// matchLiteralPlain matches lit as an exact literal at the start of text,
// backing Keyword and LineEnd rules.
func matchLiteralPlain(text, lit string) alt {
	if lit == "" {
		return alt{accept: 0, dead: 0}
	}
	n := CommonPrefixLen(text, lit)
	if n == len(lit) {
		return alt{accept: n, dead: n}
	}
	return alt{accept: -1, dead: n}
}

// matchRepeatPlain matches left · repeating* · right greedily: the longest
// run of repeating between left and right, backtracking one repeat at a
// time if right does not immediately follow the maximal run. It backs
// RustLike bracket halves.
func matchRepeatPlain(text, left, repeating, right string) alt {
	if !strings.HasPrefix(text, left) {
		return alt{accept: -1, dead: CommonPrefixLen(text, left)}
	}
	rest := text[len(left):]

	n := 0
	if repeating != "" {
		for strings.HasPrefix(rest[n:], repeating) {
			n += len(repeating)
		}
	}
	maxN := n

	for {
		if strings.HasPrefix(rest[n:], right) {
			total := len(left) + n + len(right)
			return alt{accept: total, dead: total}
		}
		if n == 0 || repeating == "" {
			return alt{accept: -1, dead: len(left) + maxN}
		}
		n -= len(repeating)
	}
}
