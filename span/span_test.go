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

package span_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcy/ilex/span"
)

func TestAtomicSpan(t *testing.T) {
	var ctx span.Context
	f := ctx.NewFile("a.txt", "hello world")

	s := ctx.NewSpan(f, 0, 5)
	assert.False(t, s.IsSynthetic())
	assert.False(t, s.IsFused())
	assert.Equal(t, "hello", s.Text(&ctx))

	lo, hi, ok := s.Range(&ctx)
	require.True(t, ok)
	assert.Equal(t, 0, lo)
	assert.Equal(t, 5, hi)
}

func TestFusion(t *testing.T) {
	var ctx span.Context
	f := ctx.NewFile("a.txt", "hello world")

	a := ctx.NewSpan(f, 0, 5)
	b := ctx.NewSpan(f, 6, 11)
	fused := ctx.Fuse(a, b)

	assert.True(t, fused.IsFused())
	lo, hi, ok := fused.Range(&ctx)
	require.True(t, ok)
	assert.Equal(t, 0, lo)
	assert.Equal(t, 11, hi)
	assert.Equal(t, "hello world", fused.Text(&ctx))
}

func TestFusionDifferentFilesPanics(t *testing.T) {
	var ctx span.Context
	f1 := ctx.NewFile("a.txt", "hello")
	f2 := ctx.NewFile("b.txt", "world")

	a := ctx.NewSpan(f1, 0, 5)
	b := ctx.NewSpan(f2, 0, 5)

	assert.Panics(t, func() { ctx.Fuse(a, b) })
}

func TestSynthetic(t *testing.T) {
	var ctx span.Context
	s := ctx.NewSynthetic("generated")
	assert.True(t, s.IsSynthetic())

	_, _, ok := s.Range(&ctx)
	assert.False(t, ok)
	assert.Equal(t, "generated", s.Text(&ctx))
}

func TestSpanStability(t *testing.T) {
	var ctx span.Context
	f := ctx.NewFile("a.txt", "0123456789")

	first := ctx.NewSpan(f, 0, 1)
	// Mint a bunch more spans; first's range must not move.
	for i := 0; i < 100; i++ {
		ctx.NewSpan(f, i%9, i%9+1)
	}

	lo, hi, ok := first.Range(&ctx)
	require.True(t, ok)
	assert.Equal(t, 0, lo)
	assert.Equal(t, 1, hi)
}

func TestComments(t *testing.T) {
	var ctx span.Context
	f := ctx.NewFile("a.txt", "x")
	host := ctx.NewSpan(f, 0, 1)

	host.AppendComment(&ctx, "first")
	host.AppendComment(&ctx, "second")

	comments := host.Comments(&ctx)
	require.Len(t, comments, 2)
	assert.Equal(t, "first", comments[0].Text(&ctx))
	assert.Equal(t, "second", comments[1].Text(&ctx))
}

func TestCommentIdempotence(t *testing.T) {
	var ctx span.Context
	f := ctx.NewFile("a.txt", "x")
	host := ctx.NewSpan(f, 0, 1)
	comment := ctx.NewSynthetic("same")

	host.AppendCommentSpan(&ctx, comment)
	host.AppendCommentSpan(&ctx, comment)

	assert.Len(t, host.Comments(&ctx), 2)
}

func TestXIDTable(t *testing.T) {
	var ctx span.Context
	f := ctx.NewFile("a.txt", "aé1_")

	k, ok := f.IsXID(0)
	require.True(t, ok)
	assert.Equal(t, span.KindStart, k)

	// 'é' is a two-byte code point; the second byte is not a boundary.
	_, ok = f.IsXID(2)
	assert.False(t, ok)
}

func TestDebugContextElided(t *testing.T) {
	span.ClearDebugContext()
	var ctx span.Context
	f := ctx.NewFile("a.txt", "hi")
	s := ctx.NewSpan(f, 0, 2)
	assert.Equal(t, "<elided>", s.String())
}
