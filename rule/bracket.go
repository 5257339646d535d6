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

// BracketShape distinguishes the three ways a Bracket's open/close
// delimiters can be computed.
type BracketShape uint8

const (
	// Paired is two fixed literals, such as "(" and ")".
	Paired BracketShape = iota
	// RustLike is a Rust-style raw-string bracket: open = l · repeating^k · r,
	// and the matching close must repeat the same count k of repeating.
	RustLike
	// CxxLike is a C++-style raw-string bracket: open = l · ident · r, and
	// the matching close must carry the exact same identifier text.
	CxxLike
)

// Delim is a pair of literal strings framing a repeating or identifier
// piece, e.g. RustLike's open=("", "\"") or close=("\"", "").
type Delim struct {
	Left, Right string
}

// Bracket is a paired delimiter rule: an ordinary fixed pair, a Rust-style
// raw string bracket, or a C++-style raw string bracket.
type Bracket struct {
	Shape BracketShape

	// Valid when Shape == Paired.
	Open, Close string

	// Valid when Shape == RustLike.
	Repeating   string
	RustOpen    Delim
	RustClose   Delim

	// Valid when Shape == CxxLike.
	IdentRule  Ident
	CxxOpen    Delim
	CxxClose   Delim
}

// NewPairedBracket returns a Bracket with fixed open/close literals.
func NewPairedBracket(open, close string) Bracket {
	return Bracket{Shape: Paired, Open: open, Close: close}
}

// NewRustLikeBracket returns a Bracket matching Rust's raw-string syntax,
// e.g. NewRustLikeBracket("#", Delim{"", "\""}, Delim{"\"", ""}) for
// `##"foo"##`.
func NewRustLikeBracket(repeating string, open, close Delim) Bracket {
	return Bracket{Shape: RustLike, Repeating: repeating, RustOpen: open, RustClose: close}
}

// NewCxxLikeBracket returns a Bracket matching C++'s raw-string syntax,
// e.g. NewCxxLikeBracket(Ident{}, Delim{"R\"", "("}, Delim{")", "\""}) for
// `R"xyz(foo)xyz"`.
func NewCxxLikeBracket(identRule Ident, open, close Delim) Bracket {
	return Bracket{Shape: CxxLike, IdentRule: identRule, CxxOpen: open, CxxClose: close}
}

// Kind implements Any.
func (Bracket) Kind() Kind { return KindBracket }

// OpenSkeleton returns the open delimiter's fixed parts: the literal before
// and the literal after any repeating/ident body (right is "" for Paired).
func (b Bracket) OpenSkeleton() (left, right string) {
	switch b.Shape {
	case Paired:
		return b.Open, ""
	case RustLike:
		return b.RustOpen.Left, b.RustOpen.Right
	case CxxLike:
		return b.CxxOpen.Left, b.CxxOpen.Right
	default:
		return "", ""
	}
}

// CloseSkeleton returns the close delimiter's fixed parts, as OpenSkeleton
// does for the open delimiter.
func (b Bracket) CloseSkeleton() (left, right string) {
	switch b.Shape {
	case Paired:
		return b.Close, ""
	case RustLike:
		return b.RustClose.Left, b.RustClose.Right
	case CxxLike:
		return b.CxxClose.Left, b.CxxClose.Right
	default:
		return "", ""
	}
}
