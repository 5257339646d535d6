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

// Sign is a declared sign literal (such as "+" or "-") a digit rule may
// consume immediately before its first digit block.
type Sign struct {
	Text  string
	Value SignValue
}

// SignValue is the arithmetic meaning of a matched Sign.
type SignValue uint8

const (
	Positive SignValue = iota
	Negative
)

// CornerCases controls whether a digit separator is legal at various block
// boundaries, matching spec.md's rule.corner_cases.{prefix, around_point,
// around_exp, suffix}.
type CornerCases struct {
	// Prefix allows a separator immediately after the number's prefix, before
	// any digit of the first (mantissa) block.
	Prefix bool
	// AroundPoint allows a separator immediately before or after a decimal
	// point.
	AroundPoint bool
	// AroundExp allows a separator immediately before or after an exponent
	// prefix.
	AroundExp bool
	// Suffix allows a separator immediately before the number's suffix, i.e.
	// a trailing separator with no digit after it.
	Suffix bool
}

// DigitRule is the digit-matching behavior shared by a Number's mantissa
// and each of its declared exponents: a radix, a minimum block count, and
// optional sign literals.
type DigitRule struct {
	Radix       int
	MinChunks   int
	CornerCases CornerCases
	Signs       []Sign
}

// NumberExponent is one declared exponent part of a Number, such as the
// `e-10` in `1.5e-10`. Several prefixes may be declared for the same
// exponent digit rule (e.g. both "e" and "E").
type NumberExponent struct {
	Prefixes []string
	Digits   DigitRule
}

// NewNumberExponent returns an exponent accepting any of prefixes, with
// digits in the given radix.
func NewNumberExponent(radix int, prefixes ...string) NumberExponent {
	return NumberExponent{
		Prefixes: prefixes,
		Digits:   DigitRule{Radix: radix, MinChunks: 1},
	}
}

// WithSigns declares the sign literals this exponent may consume right
// after its prefix.
func (e NumberExponent) WithSigns(signs ...Sign) NumberExponent {
	e.Digits.Signs = append(e.Digits.Signs, signs...)
	return e
}

// WithCornerCases overrides the separator-placement policy for this
// exponent's digits.
func (e NumberExponent) WithCornerCases(cc CornerCases) NumberExponent {
	e.Digits.CornerCases = cc
	return e
}

// Number is a number-literal rule, such as 1, 0xdeadbeef, or 3.14.
type Number struct {
	Mantissa  DigitRule
	Separator string
	Point     string
	// MinPoints/MaxPoints bound how many decimal points are legal; 0..1
	// means an optional single point (an integer-or-float literal), 0..0
	// means integers only.
	MinPoints, MaxPoints int
	Exponents             []NumberExponent
	Affixes               Affixes
}

// NewNumber returns a Number rule with the given mantissa radix (2-16) and
// an optional single decimal point, no separator, and no exponent.
func NewNumber(radix int) Number {
	return Number{
		Mantissa:  DigitRule{Radix: radix, MinChunks: 1},
		Point:     ".",
		MaxPoints: 1,
	}
}

// WithSeparator declares a character sequence that may appear within a
// number, ignored for value purposes, such as "_" in Rust or "'" in C++.
func (n Number) WithSeparator(sep string) Number {
	n.Separator = sep
	return n
}

// WithPoint overrides the decimal point literal (default ".").
func (n Number) WithPoint(point string) Number {
	n.Point = point
	return n
}

// WithDecimalPoints sets the legal range [min, max] of decimal points.
func (n Number) WithDecimalPoints(minPoints, maxPoints int) Number {
	n.MinPoints, n.MaxPoints = minPoints, maxPoints
	n.Mantissa.MinChunks = minPoints + 1
	return n
}

// WithExponent adds a declared exponent part.
func (n Number) WithExponent(exp NumberExponent) Number {
	n.Exponents = append(n.Exponents, exp)
	return n
}

// WithCornerCases overrides the separator-placement policy for the
// mantissa's digits.
func (n Number) WithCornerCases(cc CornerCases) Number {
	n.Mantissa.CornerCases = cc
	return n
}

// WithSigns declares the sign literals the mantissa may consume at the very
// start of the number.
func (n Number) WithSigns(signs ...Sign) Number {
	n.Mantissa.Signs = append(n.Mantissa.Signs, signs...)
	return n
}

// WithPrefix declares a required prefix; see Affixes.
func (n Number) WithPrefix(prefix string) Number { return n.WithPrefixes(prefix) }

// WithPrefixes declares required prefixes; see Affixes.
func (n Number) WithPrefixes(prefixes ...string) Number {
	n.Affixes.addPrefixes(prefixes...)
	return n
}

// WithSuffix declares a required suffix; see Affixes.
func (n Number) WithSuffix(suffix string) Number { return n.WithSuffixes(suffix) }

// WithSuffixes declares required suffixes; see Affixes.
func (n Number) WithSuffixes(suffixes ...string) Number {
	n.Affixes.addSuffixes(suffixes...)
	return n
}

// Kind implements Any.
func (Number) Kind() Kind { return KindNumber }

// ExpPoint returns the point literal used within exponent digit blocks,
// which is the same as the mantissa's (exponent blocks can still be split
// by further decimal points, matching the reference emitter's behavior of
// checking the point literal unconditionally regardless of which digit
// rule is currently active).
func (n Number) ExpPoint() string { return n.Point }
