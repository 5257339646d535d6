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

// Package token implements the flat token stream the lexer writes into: a
// struct-of-arrays store of lexeme/end-offset pairs plus out-of-band
// metadata for the token kinds that need it (quoted strings, digitals,
// brackets).
package token

import (
	"github.com/mcy/ilex/rule"
	"github.com/mcy/ilex/span"
)

// Pseudo-lexeme IDs are fixed negative rule.Lexeme constants, reserved
// outside the dense nonnegative range a rule.Spec assigns to real rules.
const (
	WHITESPACE rule.Lexeme = -1
	UNEXPECTED rule.Lexeme = -2
	PREFIX     rule.Lexeme = -3
	SUFFIX     rule.Lexeme = -4
)

// ID is the index of a token record within a Stream.
type ID int32

// entry is one struct-of-arrays row. end is monotonically nondecreasing
// across a Stream; a token's start is the previous entry's end, or 0 for
// the first token.
type entry struct {
	lexeme rule.Lexeme
	end    int32
}

// Stream is the flat, indexed store of token records produced by lexing one
// file, plus whatever per-token metadata the rules that produced them
// needed to record (marks for quoted content, digit-block spans for
// numbers, the eventual closer offset for brackets).
//
// Pseudo-lexemes are retained in-stream alongside real tokens so that the
// sequence of token byte ranges always partitions the file contiguously.
type Stream struct {
	File    span.File
	entries []entry
	meta    map[ID]any
	spans   map[ID]span.Span
}

// NewStream returns an empty Stream over file.
func NewStream(file span.File) *Stream {
	return &Stream{File: file}
}

// Push appends a new token ending at byte offset end and returns its ID.
func (s *Stream) Push(lexeme rule.Lexeme, end int) ID {
	id := ID(len(s.entries))
	s.entries = append(s.entries, entry{lexeme: lexeme, end: int32(end)})
	return id
}

// Len returns the number of tokens in the stream, pseudo-lexemes included.
func (s *Stream) Len() int { return len(s.entries) }

// Lexeme returns the lexeme id of the token at id.
func (s *Stream) Lexeme(id ID) rule.Lexeme { return s.entries[id].lexeme }

// Start returns the byte offset at which the token at id begins: the
// previous token's end, or 0 for the first token in the stream.
func (s *Stream) Start(id ID) int {
	if id == 0 {
		return 0
	}
	return int(s.entries[id-1].end)
}

// End returns the byte offset immediately past the token at id.
func (s *Stream) End(id ID) int { return int(s.entries[id].end) }

// Last returns the ID of the most recently pushed token, and false if the
// stream is empty.
func (s *Stream) Last() (ID, bool) {
	if len(s.entries) == 0 {
		return 0, false
	}
	return ID(len(s.entries) - 1), true
}

// SetMeta attaches m as the metadata for the token at id, replacing any
// metadata already attached.
func (s *Stream) SetMeta(id ID, m any) {
	if s.meta == nil {
		s.meta = make(map[ID]any)
	}
	s.meta[id] = m
}

// Span returns a span covering the token at id in ctx, which must own
// s.File. The span is minted on the first call for id and the same span is
// returned on every later call, so comments attached to it can be read back.
func (s *Stream) Span(ctx *span.Context, id ID) span.Span {
	if sp, ok := s.spans[id]; ok {
		return sp
	}
	sp := ctx.NewSpan(s.File, s.Start(id), s.End(id))
	if s.spans == nil {
		s.spans = make(map[ID]span.Span)
	}
	s.spans[id] = sp
	return sp
}

// Token is a handle to one record in a Stream, bundling the stream it came
// from with the record's ID so callers can walk a result without threading
// the stream through separately.
type Token struct {
	Stream *Stream
	ID     ID
}

// Lexeme forwards to Stream.Lexeme.
func (t Token) Lexeme() rule.Lexeme { return t.Stream.Lexeme(t.ID) }

// Start forwards to Stream.Start.
func (t Token) Start() int { return t.Stream.Start(t.ID) }

// End forwards to Stream.End.
func (t Token) End() int { return t.Stream.End(t.ID) }

// Span forwards to Stream.Span.
func (t Token) Span(ctx *span.Context) span.Span { return t.Stream.Span(ctx, t.ID) }

// Text returns the literal source text the token at id covers.
func (t Token) Text() string { return t.Stream.File.Slice(t.Start(), t.End()) }
