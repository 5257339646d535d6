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

package rule

// KindLineEnd identifies a LineEnd rule. It is declared separately from the
// other Kind constants, with a value outside their dense range; a LineEnd
// rule still occupies a Lexeme slot like any other rule, and the dfa and
// lexer packages dispatch on it alongside the other rule types.
const KindLineEnd Kind = 255

// LineEnd is a continuation marker, such as a trailing "\" at the end of a
// line in a shell-like language. Matching any literal other than "\n"
// itself arms a latch: everything up to and including the next actual
// "\n" must be whitespace or comments, or the finisher diagnoses the
// offending token.
type LineEnd struct {
	Literal string
}

// NewLineEnd returns a LineEnd rule matching literal.
func NewLineEnd(literal string) LineEnd {
	return LineEnd{Literal: literal}
}

// Kind implements Any.
func (LineEnd) Kind() Kind { return KindLineEnd }
