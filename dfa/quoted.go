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

import "github.com/mcy/ilex/rule"

// matchQuoted matches only a Quoted rule's open bracket (plus any declared
// prefix); the body and closer are the finisher's job, per spec.md §4.C:
// "for quoted strings the open bracket only".
func matchQuoted(q rule.Quoted, text string) []alt {
	prefix, ok := GreedyAffixMatch(text, q.Affixes.NormalizedPrefixes())
	if !ok {
		return []alt{{accept: -1, dead: 0}}
	}
	rest := text[len(prefix):]

	open := matchBracketHalf(q.Bracket, rest, false)
	if open.accept < 0 {
		return []alt{{accept: -1, dead: len(prefix) + open.dead}}
	}
	return []alt{{accept: len(prefix) + open.accept, dead: len(prefix) + open.dead}}
}

// matchComment matches only a Comment rule's opening delimiter: the literal
// start for a Line comment, or the open bracket half for a Block comment.
// The scan to find the matching close is a finisher concern (nesting depth,
// the trailing-"\n" exclusion) and is not modeled here.
func matchComment(c rule.Comment, text string) []alt {
	switch c.Shape {
	case rule.Line:
		return []alt{matchLiteralPlain(text, c.LineStart)}
	case rule.Block:
		return []alt{matchBracketHalf(c.BlockBracket, text, false)}
	default:
		return nil
	}
}
