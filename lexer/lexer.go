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

// Package lexer implements the driver loop and finisher/emitter described
// in spec.md §4.D and §4.E: given a compiled rule.Spec and a span.File, it
// runs the dfa over the cursor, disambiguates candidates, runs the
// rule-specific finisher state machines, and builds a token.Stream.
package lexer

import (
	"math"
	"strings"

	"github.com/mcy/ilex/dfa"
	"github.com/mcy/ilex/report"
	"github.com/mcy/ilex/rule"
	"github.com/mcy/ilex/span"
	"github.com/mcy/ilex/token"
)

// MaxFileSize is the largest file this lexer will attempt to process.
const MaxFileSize = math.MaxInt32

// Lexer is a compiled rule.Spec ready to lex files against.
//
// The zero Lexer is not valid; construct one with New.
type Lexer struct {
	spec *rule.Spec
	dfa  *dfa.Dfa
}

// New returns a Lexer for spec. Compilation of the spec into a dfa.Dfa is
// deferred to the first call to Lex.
func New(spec *rule.Spec) *Lexer {
	return &Lexer{spec: spec}
}

func (lx *Lexer) compiled() *dfa.Dfa {
	if lx.dfa == nil {
		lx.dfa = dfa.Compile(lx.spec)
	}
	return lx.dfa
}

// Lex runs lexical analysis on file, appending every span it mints to ctx,
// and reporting diagnostics to rep. It returns the resulting token.Stream
// and true, or a possibly-empty Stream and false if a fatal precondition
// (spec.md §7's "Fatal") stopped lexing before it began.
func (lx *Lexer) Lex(ctx *span.Context, file span.File, rep report.Report) (*token.Stream, bool) {
	stream := token.NewStream(file)
	l := &lexer{
		ctx:    ctx,
		file:   file,
		spec:   lx.spec,
		dfa:    lx.compiled(),
		report: rep,
		stream: stream,
	}
	if !lexPrelude(l) {
		return stream, false
	}
	loop(l)
	return stream, true
}

// closerFrame is one entry of the bracket closer stack: the exact literal
// text that must appear next to close this bracket (the "mirror" computed
// at open time), and the token that opened it.
type closerFrame struct {
	lexeme  rule.Lexeme
	text    string
	openID  token.ID
}

// lineEndLatch records that a rule.LineEnd token has armed the "everything
// up to the next newline must be whitespace or comments" latch described
// in spec.md §4.E.8.
type lineEndLatch struct {
	span span.Span
}

// lexer is the mutable driver state for one call to Lexer.Lex, mirroring
// spec.md §4.D's Lexer State component.
type lexer struct {
	ctx    *span.Context
	file   span.File
	spec   *rule.Spec
	dfa    *dfa.Dfa
	report report.Report
	stream *token.Stream

	cursor  int
	closers []closerFrame

	pendingComments []span.Span
	lineEndLatch    *lineEndLatch

	// badStart/badLen coalesce a run of adjacent unrecognized bytes into a
	// single UNEXPECTED token and diagnostic, per spec.md §4.D step 4.
	badStart, badLen int
}

// rest returns the unlexed suffix of the file's text.
func (l *lexer) rest() string {
	return l.file.Text()[l.cursor:]
}

// mintSpan inserts a real span for the byte range [lo, hi) of l's file.
func (l *lexer) mintSpan(lo, hi int) span.Span {
	return l.ctx.NewSpan(l.file, lo, hi)
}

// push flushes any pending coalesced bad-byte run, then appends a new
// token to the stream.
func (l *lexer) push(lexeme rule.Lexeme, end int) token.ID {
	l.flushBad()
	return l.stream.Push(lexeme, end)
}

// flushBad emits the pending coalesced run of unrecognized bytes, if any,
// as a single UNEXPECTED token and diagnostic.
func (l *lexer) flushBad() {
	if l.badLen == 0 {
		return
	}
	end := l.badStart + l.badLen
	id := l.stream.Push(token.UNEXPECTED, end)
	l.attachComments(id)
	l.report.UnexpectedToken(l.stream.Span(l.ctx, id))
	l.badStart, l.badLen = 0, 0
}

// attachComments attaches every pending comment span (in insertion order)
// to the token at id, then clears the pending list.
func (l *lexer) attachComments(id token.ID) {
	if len(l.pendingComments) == 0 {
		return
	}
	host := l.stream.Span(l.ctx, id)
	for _, c := range l.pendingComments {
		l.ctx.AddComment(host, c)
	}
	l.pendingComments = l.pendingComments[:0]
}

// linkCloser fills in the OffsetMeta of the bracket opener c once its
// matching closer token closeID is known.
func (l *lexer) linkCloser(c closerFrame, closeID token.ID) {
	token.MutateMeta[token.OffsetMeta](l.stream, c.openID, func(m *token.OffsetMeta) {
		m.Cursor = int32(l.stream.Start(closeID))
		m.Meta = int32(closeID)
	})
}

// lexPrelude performs the file-prelude checks described in SPEC_FULL.md §4
// (ported from the teacher's lexPrelude): a size limit, and a heuristic for
// UTF-16-encoded or otherwise binary input, which the lexer declines to
// lex rather than silently misclassify as a wall of UNEXPECTED bytes.
func lexPrelude(l *lexer) bool {
	text := l.file.Text()
	if text == "" {
		return true
	}

	if len(text) > MaxFileSize {
		l.report.Expected(l.mintSpan(0, 0), "a file under 2GB")
		return false
	}

	bom16 := strings.HasPrefix(text, "\xfe\xff") || strings.HasPrefix(text, "\xff\xfe")
	ascii16 := len(text) >= 2 && (text[0] == 0 || text[1] == 0)
	if bom16 || ascii16 {
		hi := 2
		if len(text) < hi {
			hi = len(text)
		}
		l.report.Expected(l.mintSpan(0, hi), "UTF-8-encoded text, not UTF-16")
		return false
	}

	return true
}
