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

import "github.com/mcy/ilex/internal/trie"

// EscapeShape distinguishes the ways an escape sequence's argument is
// consumed.
type EscapeShape uint8

const (
	// Invalid marks an escape key that is always a diagnosed error, useful
	// for catching e.g. a lone "\" not followed by a valid escape.
	Invalid EscapeShape = iota
	// Basic is a literal substitution with no argument, such as "\n" -> '\n'.
	Basic
	// Fixed consumes exactly CharCount code points after the key, bounded by
	// an unmatched closer.
	Fixed
	// Bracketed consumes code points between Open and Close after the key.
	Bracketed
)

// Escape describes how to resolve one escape-sequence key inside a Quoted
// rule.
type Escape struct {
	Shape EscapeShape

	// Valid when Shape == Basic: the literal code point this escape stands
	// for.
	Literal rune

	// Valid when Shape == Fixed.
	CharCount int

	// Valid when Shape == Bracketed.
	Open, Close string

	// Parse converts the consumed argument text into a resolved code point.
	// It may be called speculatively and must not emit diagnostics itself.
	// May be nil for Invalid/Basic escapes.
	Parse func(arg string) (rune, bool)
}

// NewLiteralEscape returns a Basic escape standing for the literal rune r.
func NewLiteralEscape(r rune) Escape {
	return Escape{Shape: Basic, Literal: r}
}

// NewFixedEscape returns a Fixed escape consuming charCount code points and
// resolving them with parse.
func NewFixedEscape(charCount int, parse func(string) (rune, bool)) Escape {
	return Escape{Shape: Fixed, CharCount: charCount, Parse: parse}
}

// NewBracketedEscape returns a Bracketed escape consuming code points
// between open and close and resolving them with parse.
func NewBracketedEscape(open, close string, parse func(string) (rune, bool)) Escape {
	return Escape{Shape: Bracketed, Open: open, Close: close, Parse: parse}
}

// Quoted is a quoted-string rule: a Bracket delimiter pair capturing
// the Unicode scalars between them, with an escape-sequence grammar for
// content.
type Quoted struct {
	Bracket Bracket
	Escapes trie.Trie[Escape]
	Affixes Affixes
}

// NewQuoted returns a Quoted rule whose open and close are both quote,
// e.g. NewQuoted(`"`) for C-style strings.
func NewQuoted(quote string) Quoted {
	return NewQuotedBracket(NewPairedBracket(quote, quote))
}

// NewQuotedBracket returns a Quoted rule with an arbitrary bracket, such as
// a RustLike or CxxLike raw string.
func NewQuotedBracket(bracket Bracket) Quoted {
	return Quoted{Bracket: bracket}
}

// WithEscape adds a single escape rule keyed by key.
func (q Quoted) WithEscape(key string, e Escape) Quoted {
	q.Escapes.Insert(key, e)
	return q
}

// WithPrefix declares a required prefix; see Affixes.
func (q Quoted) WithPrefix(prefix string) Quoted { return q.WithPrefixes(prefix) }

// WithPrefixes declares required prefixes; see Affixes.
func (q Quoted) WithPrefixes(prefixes ...string) Quoted {
	q.Affixes.addPrefixes(prefixes...)
	return q
}

// WithSuffix declares a required suffix; see Affixes.
func (q Quoted) WithSuffix(suffix string) Quoted { return q.WithSuffixes(suffix) }

// WithSuffixes declares required suffixes; see Affixes.
func (q Quoted) WithSuffixes(suffixes ...string) Quoted {
	q.Affixes.addSuffixes(suffixes...)
	return q
}

// WithRustEscapes adds the canonical set of Rust-style escapes: the basic
// C escapes, \xNN (a byte below 0x80), and \u{NNNN} (a Unicode scalar).
func (q Quoted) WithRustEscapes() Quoted {
	q = q.WithEscape(`\`, Escape{Shape: Invalid})
	for key, r := range map[string]rune{
		`\0`:  0,
		`\n`:  '\n',
		`\r`:  '\r',
		`\t`:  '\t',
		`\\`:  '\\',
		`\"`:  '"',
		`\'`:  '\'',
	} {
		q = q.WithEscape(key, NewLiteralEscape(r))
	}
	q = q.WithEscape(`\x`, NewFixedEscape(2, parseHexByte))
	q = q.WithEscape(`\u`, NewBracketedEscape("{", "}", parseHexRune))
	return q
}

func parseHexByte(hex string) (rune, bool) {
	v, ok := parseHexUint(hex)
	if !ok || v >= 0x80 {
		return 0, false
	}
	return rune(v), true
}

func parseHexRune(hex string) (rune, bool) {
	v, ok := parseHexUint(hex)
	if !ok || v > 0x10FFFF {
		return 0, false
	}
	return rune(v), true
}

func parseHexUint(hex string) (uint32, bool) {
	if hex == "" {
		return 0, false
	}
	var v uint32
	for _, c := range hex {
		var d uint32
		switch {
		case c >= '0' && c <= '9':
			d = uint32(c - '0')
		case c >= 'a' && c <= 'f':
			d = uint32(c-'a') + 10
		case c >= 'A' && c <= 'F':
			d = uint32(c-'A') + 10
		default:
			return 0, false
		}
		v = v*16 + d
	}
	return v, true
}

// Kind implements Any.
func (Quoted) Kind() Kind { return KindQuoted }
