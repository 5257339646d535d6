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

package span

import (
	"fmt"
	"sync"

	"github.com/mcy/ilex/internal/arena"
)

// realRange is a real byte range owned by a Context, keyed by an atomic
// span ID.
type realRange struct {
	file       int
	start, end int
}

// Context is a process-local registry owning every file, span, synthetic
// string, and comment attachment minted against it.
//
// A Context may be shared across goroutines: every mutation and lookup
// acquires the same RWMutex, mutators taking the exclusive lock briefly and
// lookups taking the shared lock. Because every backing collection is
// append-only and span IDs are stable once minted, a Span remains valid and
// resolves to the same data for the lifetime of its Context.
//
// The zero Context is empty and ready to use.
type Context struct {
	mu sync.RWMutex

	files    []*fileData
	ranges   arena.Arena[realRange]
	synths   arena.Arena[string]
	comments map[Span][]Span
}

// NewFile loads text as a new file named path, returning a handle to it.
//
// text is copied into the context verbatim; a trailing sentinel byte is
// appended internally so that a zero-length end-of-file span can always be
// formed.
func (c *Context) NewFile(path, text string) File {
	c.mu.Lock()
	defer c.mu.Unlock()

	data := &fileData{
		path: path,
		text: text + "\x00",
		xid:  newXIDTable(text),
	}
	c.files = append(c.files, data)
	return File{ctx: c, idx: len(c.files) - 1}
}

func (c *Context) file(idx int) (File, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if idx < 0 || idx >= len(c.files) {
		return File{}, false
	}
	return File{ctx: c, idx: idx}, true
}

// NewSpan inserts a real range [lo, hi) in file and returns an atomic span
// ID for it.
func (c *Context) NewSpan(file File, lo, hi int) Span {
	if file.ctx != c {
		panic("span: file does not belong to this context")
	}

	c.mu.Lock()
	ptr := c.ranges.New(realRange{file: file.idx, start: lo, end: hi})
	c.mu.Unlock()

	return Span{start: int32(ptr), end: -1}
}

// Fuse produces a span covering both a and b. Both must be atomic real
// spans living in the same file; otherwise Fuse panics, matching the data
// model's invariant that fusion is closed under identical file membership.
func (c *Context) Fuse(a, b Span) Span {
	if a.IsSynthetic() || b.IsSynthetic() || a.end >= 0 || b.end >= 0 {
		panic("span: Fuse requires two atomic real spans")
	}
	if a.File(c).idx != b.File(c).idx {
		panic("span: cannot fuse spans from different files")
	}
	return Span{start: a.start, end: b.start}
}

// NewSynthetic interns text as owned, context-local text and returns a
// synthetic span for it.
func (c *Context) NewSynthetic(text string) Span {
	c.mu.Lock()
	ptr := c.synths.New(text)
	c.mu.Unlock()

	return Span{start: ^int32(ptr), end: -1}
}

// lookupRange resolves s to its underlying real range, returning ok=false
// if s is synthetic.
func (c *Context) lookupRange(s Span) (lo, hi, fileIdx int, ok bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if s.IsSynthetic() {
		return 0, 0, 0, false
	}

	first := c.ranges.At(arena.Untyped(s.start))
	lo, hi, fileIdx = first.start, first.end, first.file

	if end, fused := s.endSpan(); fused {
		other := c.ranges.At(arena.Untyped(end.start))
		if other.file != fileIdx {
			panic("span: fused span crosses file boundaries")
		}
		if other.start < lo {
			lo = other.start
		}
		if other.end > hi {
			hi = other.end
		}
	}

	return lo, hi, fileIdx, true
}

func (c *Context) lookupSynthetic(s Span) string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if !s.IsSynthetic() {
		panic(fmt.Sprintf("span: not a synthetic span: %v", s))
	}
	return *c.synths.At(arena.Untyped(^s.start))
}

// AddComment attaches comment to host, appending to any comments already
// attached. Attaching the same comment span twice yields two entries, in
// insertion order.
func (c *Context) AddComment(host, comment Span) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.comments == nil {
		c.comments = make(map[Span][]Span)
	}
	c.comments[host] = append(c.comments[host], comment)
}

func (c *Context) lookupComments(host Span) []Span {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]Span(nil), c.comments[host]...)
}

var debugMu sync.RWMutex
var debugCtx *Context

// SetDebugContext installs ctx as the process-wide context used to
// pretty-print spans via Span.String, for as long as a diagnostic frame
// needs it. It is read-mostly state, not safety-critical, and may be left
// unset (Span.String then renders "<elided>").
func SetDebugContext(ctx *Context) {
	debugMu.Lock()
	defer debugMu.Unlock()
	debugCtx = ctx
}

// ClearDebugContext uninstalls whatever context was set by SetDebugContext.
func ClearDebugContext() {
	SetDebugContext(nil)
}

func currentDebugContext() *Context {
	debugMu.RLock()
	defer debugMu.RUnlock()
	return debugCtx
}
