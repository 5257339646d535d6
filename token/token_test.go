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

package token_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcy/ilex/rule"
	"github.com/mcy/ilex/span"
	"github.com/mcy/ilex/token"
)

func TestStreamCoverage(t *testing.T) {
	var ctx span.Context
	file := ctx.NewFile("a.proto", "foo bar")

	s := token.NewStream(file)
	id0 := s.Push(0, 3)                  // "foo"
	id1 := s.Push(token.WHITESPACE, 4)   // " "
	id2 := s.Push(0, 7)                  // "bar"

	assert.Equal(t, 0, s.Start(id0))
	assert.Equal(t, 3, s.End(id0))
	assert.Equal(t, 3, s.Start(id1))
	assert.Equal(t, 4, s.End(id1))
	assert.Equal(t, 4, s.Start(id2))
	assert.Equal(t, 7, s.End(id2))

	last, ok := s.Last()
	require.True(t, ok)
	assert.Equal(t, id2, last)

	tok := token.Token{Stream: s, ID: id2}
	assert.Equal(t, "bar", tok.Text())
	assert.Equal(t, rule.Lexeme(0), tok.Lexeme())
}

func TestMetaRoundTrip(t *testing.T) {
	var ctx span.Context
	file := ctx.NewFile("a.proto", `"hi"`)
	s := token.NewStream(file)
	id := s.Push(0, 4)

	_, ok := token.GetMeta[token.QuotedMeta](s, id)
	assert.False(t, ok)

	token.MutateMeta(s, id, func(m *token.QuotedMeta) {
		m.Marks = append(m.Marks, 1, 3)
	})

	m, ok := token.GetMeta[token.QuotedMeta](s, id)
	require.True(t, ok)
	assert.Equal(t, []uint32{1, 3}, m.Marks)

	token.ClearMeta(s, id)
	_, ok = token.GetMeta[token.QuotedMeta](s, id)
	assert.False(t, ok)
}
