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

package token

import "github.com/mcy/ilex/span"

// QuotedMeta is the metadata attached to a Quoted rule's token.
//
// Marks[0] is the byte offset immediately past the open bracket. Thereafter
// marks come in groups: a literal chunk contributes one mark (its end); an
// escape contributes four marks (end of escape key, start of escape
// argument, end of escape argument, end of whole escape — collapsing to
// equal values for escapes with no argument). The final mark is the byte
// offset where the close bracket begins.
type QuotedMeta struct {
	Marks []uint32
}

// DigitBlocks is one run of digit blocks sharing a prefix and, optionally,
// a sign: the mantissa of a Digital token, or one of its exponents.
type DigitBlocks struct {
	Prefix span.Span

	Sign    span.Span
	HasSign bool

	// Blocks holds one span per digit block, split at decimal points.
	Blocks []span.Span

	// WhichExp indexes into the declaring Number's Exponents, and is only
	// meaningful when this DigitBlocks is an exponent rather than the
	// mantissa.
	WhichExp int
}

// DigitalMeta is the metadata attached to a Number rule's token.
type DigitalMeta struct {
	Mantissa  DigitBlocks
	Exponents []DigitBlocks
}

// OffsetMeta is the metadata attached to a Bracket rule's opening token: an
// indirection to the matching closer, filled in once the closer is
// observed. A bracket still open at end of file is linked to the
// zero-length closer token the lexer inserts there.
type OffsetMeta struct {
	// Cursor is the byte offset of the matching closer token, or -1 if
	// none has been observed yet.
	Cursor int32
	// Meta carries the ID of the closer token once known, as a raw int32
	// to avoid an import cycle with the ID type's own package (this is
	// that package, so it is just ID, but kept as int32 to mirror the
	// on-disk-shaped record the reference implementation uses).
	Meta int32
}

// GetMeta returns the metadata of type M attached to id, and whether it was
// present and of the right type.
func GetMeta[M any](s *Stream, id ID) (M, bool) {
	var zero M
	v, ok := s.meta[id]
	if !ok {
		return zero, false
	}
	m, ok := v.(M)
	return m, ok
}

// MutateMeta applies f to the metadata of type M attached to id (the zero
// value of M if none was attached yet), then stores the result back.
func MutateMeta[M any](s *Stream, id ID, f func(*M)) {
	m, _ := GetMeta[M](s, id)
	f(&m)
	s.SetMeta(id, m)
}

// ClearMeta removes whatever metadata is attached to id, if any.
func ClearMeta(s *Stream, id ID) {
	delete(s.meta, id)
}
