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
	"strings"
)

// Span is a compact numeric handle for a byte range in a Context, or for
// synthetic (programmatically generated) text owned by a Context.
//
// A Span is one of three shapes, distinguished by its two fields:
//
//   - Atomic real: start >= 0, end < 0. The single contiguous range stored
//     in the context under ID start.
//   - Fused: start >= 0, end >= 0. The union of the real spans at start and
//     at end; both must live in the same file.
//   - Synthetic: start < 0. The ID !start indexes a separately stored owned
//     string that is not physically present in any file.
//
// The zero Span is not a valid span (it decodes as a fused span of ID 0 with
// itself, and the registry never assigns ID 0, since arena IDs are 1-based).
type Span struct {
	start int32
	end   int32
}

// IsSynthetic reports whether this span's text is generated, not drawn from
// a file.
func (s Span) IsSynthetic() bool {
	return s.start < 0
}

// IsFused reports whether this span is the union of two atomic spans.
func (s Span) IsFused() bool {
	return !s.IsSynthetic() && s.end >= 0
}

// index returns the arena index backing this span: for a real span, its
// start field; for a synthetic span, the bitwise complement of start.
func (s Span) index() int32 {
	if !s.IsSynthetic() {
		return s.start
	}
	return ^s.start
}

// endSpan returns the atomic span for the end half of a fused span, or the
// zero value and false if s is not fused.
func (s Span) endSpan() (Span, bool) {
	if s.end < 0 {
		return Span{}, false
	}
	return Span{start: s.end, end: -1}, true
}

// File returns the file this span lies in.
//
// Panics if ctx did not mint this span, or if the span is synthetic.
func (s Span) File(ctx *Context) File {
	_, _, fileIdx, ok := ctx.lookupRange(s)
	if !ok {
		panic(fmt.Sprintf("span: synthetic span has no file: %v", s))
	}
	f, ok := ctx.file(fileIdx)
	if !ok {
		panic(fmt.Sprintf("span: not owned by this context: %v", s))
	}
	return f
}

// Range returns the byte range [lo, hi) this span covers, or false if the
// span is synthetic.
func (s Span) Range(ctx *Context) (lo, hi int, ok bool) {
	lo, hi, _, ok = ctx.lookupRange(s)
	return lo, hi, ok
}

// Text returns the text this span covers, whether real or synthetic.
func (s Span) Text(ctx *Context) string {
	if lo, hi, fileIdx, ok := ctx.lookupRange(s); ok {
		f, _ := ctx.file(fileIdx)
		return f.Slice(lo, hi)
	}
	return ctx.lookupSynthetic(s)
}

// Comments returns the comment spans attached to s, in insertion order.
func (s Span) Comments(ctx *Context) []Span {
	return ctx.lookupComments(s)
}

// AppendComment interns text as a synthetic span and attaches it as a
// comment of s.
func (s Span) AppendComment(ctx *Context, text string) {
	ctx.AddComment(s, ctx.NewSynthetic(text))
}

// AppendCommentSpan attaches an existing span as a comment of s.
func (s Span) AppendCommentSpan(ctx *Context, comment Span) {
	ctx.AddComment(s, comment)
}

// String renders the span using the process's debug context, if one has
// been installed with SetDebugContext; otherwise it renders as "<elided>".
// This mirrors the thread-local debug-context trick used for pretty
// printing spans without threading a Context through every Stringer.
func (s Span) String() string {
	ctx := currentDebugContext()
	if ctx == nil {
		return "<elided>"
	}

	var b strings.Builder
	b.WriteByte('`')
	for _, r := range s.Text(ctx) {
		if r >= 0x20 && r < 0x7e {
			b.WriteRune(r)
		} else {
			fmt.Fprintf(&b, "<U+%X>", r)
		}
	}
	b.WriteString("` @ ")

	if lo, hi, ok := s.Range(ctx); ok {
		fmt.Fprintf(&b, "%s[%d:%d]", s.File(ctx).Path(), lo, hi)
	} else {
		b.WriteString("n/a")
	}
	return b.String()
}

// Spanned is implemented by syntax elements that carry exactly one span
// covering their entire contents.
type Spanned interface {
	Span(ctx *Context) Span
}

// FileOf forwards to Span.File.
func FileOf(s Spanned, ctx *Context) File { return s.Span(ctx).File(ctx) }

// TextOf forwards to Span.Text.
func TextOf(s Spanned, ctx *Context) string { return s.Span(ctx).Text(ctx) }

// CommentsOf forwards to Span.Comments.
func CommentsOf(s Spanned, ctx *Context) []Span { return s.Span(ctx).Comments(ctx) }

// Span implements Spanned for Span itself: a span is spanned by itself.
func (s Span) Span(*Context) Span { return s }
