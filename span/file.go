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

// Package span implements the source context: files, spans, and the
// registry that owns them.
package span

import (
	"sync"
	"unicode/utf8"

	"github.com/mcy/ilex/internal/xid"
)

// Kind classifies a byte position in a file for XID (Unicode identifier)
// purposes. The zero value, KindNo, means "not an XID character".
type Kind uint8

const (
	// KindNo means the code point at this position is neither XID_Start
	// nor XID_Continue.
	KindNo Kind = iota
	// KindNotBoundary means this byte position is not the start of a code
	// point; XID queries here are unresolvable.
	KindNotBoundary
	// KindContinue means the code point at this position has XID_Continue.
	KindContinue
	// KindStart means the code point at this position has XID_Start.
	KindStart
)

// xidTable is a two-bit-per-byte classification table, packed four entries
// per byte, matching the data model's "precomputed two-bits-per-byte XID
// classification table".
type xidTable []byte

func newXIDTable(text string) xidTable {
	tbl := make(xidTable, (len(text)+3)/4)
	for i, r := range text {
		tbl.set(i, classify(r))
		_, size := utf8.DecodeRuneInString(text[i:])
		for j := i + 1; j < i+size; j++ {
			tbl.set(j, KindNotBoundary)
		}
	}
	return tbl
}

func classify(r rune) Kind {
	switch {
	case xid.IsXIDStart(r):
		return KindStart
	case xid.IsXIDContinue(r):
		return KindContinue
	default:
		return KindNo
	}
}

func (t xidTable) set(byteIdx int, k Kind) {
	if byteIdx < 0 || byteIdx/4 >= len(t) {
		return
	}
	shift := uint(byteIdx%4) * 2
	t[byteIdx/4] &^= 0b11 << shift
	t[byteIdx/4] |= byte(k) << shift
}

func (t xidTable) get(byteIdx int) (Kind, bool) {
	if byteIdx < 0 || byteIdx/4 >= len(t) {
		return 0, false
	}
	shift := uint(byteIdx%4) * 2
	k := Kind((t[byteIdx/4] >> shift) & 0b11)
	if k == KindNotBoundary {
		return 0, false
	}
	return k, true
}

// fileData is the heavyweight state for a loaded file; File itself is a
// lightweight handle into a Context, the same way Span is a handle rather
// than a fat value.
type fileData struct {
	path string
	// text carries one trailing sentinel byte past the logical end of the
	// file, so that a zero-length end-of-file span can always be formed.
	text string
	xid  xidTable

	lineOnce  sync.Once
	lineIndex []int
}

// File is a handle to a loaded source file owned by a Context.
//
// The zero File is not valid; obtain one from Context.NewFile.
type File struct {
	ctx *Context
	idx int
}

func (f File) data() *fileData {
	f.ctx.mu.RLock()
	defer f.ctx.mu.RUnlock()
	return f.ctx.files[f.idx]
}

// Path returns this file's path, as given to NewFile.
func (f File) Path() string {
	return f.data().path
}

// Len returns the length of the file in bytes, not counting the trailing
// sentinel byte.
func (f File) Len() int {
	return len(f.data().text) - 1
}

// Text returns the file's full text, not counting the trailing sentinel
// byte.
func (f File) Text() string {
	return f.data().text[:len(f.data().text)-1]
}

// Slice returns a substring of the file's text. Unlike plain slicing, lo and
// hi may both equal Len(), which addresses the single sentinel byte used to
// form zero-length end-of-file spans.
func (f File) Slice(lo, hi int) string {
	return f.data().text[lo:hi]
}

// Context returns the Context that owns this file.
func (f File) Context() *Context {
	return f.ctx
}

// IsXID returns the precomputed XID classification of the code point
// starting at byte offset idx. The second return is false when idx is not a
// UTF-8 code point boundary within the file.
func (f File) IsXID(idx int) (Kind, bool) {
	return f.data().xid.get(idx)
}

// lines lazily computes a table of byte offsets, one per line, of the start
// of each line in the file (line 0 starts at offset 0).
func (f File) lines() []int {
	d := f.data()
	d.lineOnce.Do(func() {
		text := f.Text()
		offsets := []int{0}
		for i := 0; i < len(text); i++ {
			if text[i] == '\n' {
				offsets = append(offsets, i+1)
			}
		}
		d.lineIndex = offsets
	})
	return d.lineIndex
}

// LineByOffset returns the zero-indexed line number containing byte offset
// and the byte offset of the start of that line.
func (f File) LineByOffset(offset int) (line, lineStart int) {
	offsets := f.lines()
	lo, hi := 0, len(offsets)
	for lo < hi {
		mid := (lo + hi) / 2
		if offsets[mid] <= offset {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	line = lo - 1
	return line, offsets[line]
}
