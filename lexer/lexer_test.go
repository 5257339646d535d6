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

package lexer_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcy/ilex/lexer"
	"github.com/mcy/ilex/report"
	"github.com/mcy/ilex/rule"
	"github.com/mcy/ilex/span"
	"github.com/mcy/ilex/token"
)

func lex(t *testing.T, spec *rule.Spec, text string) (*span.Context, *token.Stream, *report.Collecting) {
	t.Helper()
	ctx := &span.Context{}
	file := ctx.NewFile(t.Name(), text)
	rep := &report.Collecting{}
	stream, ok := lexer.New(spec).Lex(ctx, file, rep)
	require.True(t, ok)
	return ctx, stream, rep
}

// assertCoverage walks the resulting stream and checks that token end offsets
// form a contiguous, nondecreasing partition of [0, len(text)), per the
// Coverage and Monotonicity testable properties.
func assertCoverage(t *testing.T, stream *token.Stream, textLen int) {
	t.Helper()
	prevEnd := 0
	for i := 0; i < stream.Len(); i++ {
		id := token.ID(i)
		start := stream.Start(id)
		end := stream.End(id)
		assert.Equal(t, prevEnd, start, "token %d should start where the previous one ended", i)
		assert.LessOrEqual(t, start, end)
		prevEnd = end
	}
	assert.Equal(t, textLen, prevEnd)
}

func TestPairedPipesKeywordTieBreak(t *testing.T) {
	spec := rule.NewSpec()
	kw := spec.Add(rule.NewKeyword("||"))
	spec.Add(rule.NewPairedBracket("|", "|"))

	_, stream, rep := lex(t, spec, "||")
	assert.Empty(t, rep.Diagnostics)
	require.Equal(t, 1, stream.Len())
	assert.Equal(t, kw, stream.Lexeme(0))
	assertCoverage(t, stream, 2)
}

func TestRustRawStringUnclosed(t *testing.T) {
	spec := rule.NewSpec()
	spec.Add(rule.NewQuotedBracket(rule.NewRustLikeBracket("#",
		rule.Delim{Left: "", Right: "\""},
		rule.Delim{Left: "\"", Right: ""})))

	ctx, stream, rep := lex(t, spec, `##"abc`)
	require.Len(t, rep.Diagnostics, 1)
	assert.Equal(t, "unclosed", rep.Diagnostics[0].Tag)
	assertCoverage(t, stream, len(`##"abc`))
	_ = ctx
}

func TestRustRawStringBody(t *testing.T) {
	spec := rule.NewSpec()
	spec.Add(rule.NewQuotedBracket(rule.NewRustLikeBracket("#",
		rule.Delim{Left: "", Right: "\""},
		rule.Delim{Left: "\"", Right: ""})))

	ctx, stream, rep := lex(t, spec, `##"he"llo"##`)
	assert.Empty(t, rep.Diagnostics)
	require.Equal(t, 1, stream.Len())
	sp := stream.Span(ctx, 0)
	assert.Equal(t, `##"he"llo"##`, sp.Text(ctx))
}

func TestScientificNumberBlocks(t *testing.T) {
	spec := rule.NewSpec()
	n := rule.NewNumber(10).
		WithSeparator("_").
		WithDecimalPoints(0, 1).
		WithExponent(rule.NewNumberExponent(10, "e", "E").
			WithSigns(rule.Sign{Text: "+", Value: rule.Positive}, rule.Sign{Text: "-", Value: rule.Negative}))
	spec.Add(n)

	ctx, stream, rep := lex(t, spec, "1_000.5e-7")
	assert.Empty(t, rep.Diagnostics)
	require.Equal(t, 1, stream.Len())

	meta, ok := token.GetMeta[token.DigitalMeta](stream, 0)
	require.True(t, ok)
	require.Len(t, meta.Mantissa.Blocks, 2)
	assert.Equal(t, "1_000", meta.Mantissa.Blocks[0].Text(ctx))
	assert.Equal(t, "5", meta.Mantissa.Blocks[1].Text(ctx))

	require.Len(t, meta.Exponents, 1)
	require.True(t, meta.Exponents[0].HasSign)
	assert.Equal(t, "-", meta.Exponents[0].Sign.Text(ctx))
	require.Len(t, meta.Exponents[0].Blocks, 1)
	assert.Equal(t, "7", meta.Exponents[0].Blocks[0].Text(ctx))
}

// TestScientificNumberBlocksStructure re-derives the same DigitalMeta as
// TestScientificNumberBlocks but checks it with a single structural diff
// instead of field-by-field assertions, to catch any field this module adds
// to DigitBlocks later without the test needing to grow in lockstep.
func TestScientificNumberBlocksStructure(t *testing.T) {
	spec := rule.NewSpec()
	n := rule.NewNumber(10).
		WithSeparator("_").
		WithDecimalPoints(0, 1).
		WithExponent(rule.NewNumberExponent(10, "e", "E").
			WithSigns(rule.Sign{Text: "+", Value: rule.Positive}, rule.Sign{Text: "-", Value: rule.Negative}))
	spec.Add(n)

	ctx, stream, rep := lex(t, spec, "1_000.5e-7")
	require.Empty(t, rep.Diagnostics)
	require.Equal(t, 1, stream.Len())

	got, ok := token.GetMeta[token.DigitalMeta](stream, 0)
	require.True(t, ok)

	file := got.Mantissa.Blocks[0].File(ctx)
	sp := func(lo, hi int) span.Span { return ctx.NewSpan(file, lo, hi) }

	want := token.DigitalMeta{
		Mantissa: token.DigitBlocks{
			WhichExp: -1,
			Prefix:   sp(0, 0),
			Blocks:   []span.Span{sp(0, 5), sp(6, 7)},
		},
		Exponents: []token.DigitBlocks{{
			WhichExp: 0,
			Prefix:   sp(7, 8),
			Sign:     sp(8, 9),
			HasSign:  true,
			Blocks:   []span.Span{sp(9, 10)},
		}},
	}

	// Spans are IDs, and sp mints new ones, so compare them by byte range.
	sameRange := cmp.Comparer(func(a, b span.Span) bool {
		if a == b {
			return true
		}
		alo, ahi, aok := a.Range(ctx)
		blo, bhi, bok := b.Range(ctx)
		return aok && bok && alo == blo && ahi == bhi
	})
	if diff := cmp.Diff(want, got, sameRange); diff != "" {
		t.Errorf("DigitalMeta mismatch (-want +got):\n%s", diff)
	}
}

func TestSeparatorAtBlockStartDiagnoses(t *testing.T) {
	spec := rule.NewSpec()
	n := rule.NewNumber(10).
		WithSeparator("_").
		WithDecimalPoints(0, 1)
	spec.Add(n)

	_, stream, rep := lex(t, spec, "1._5")
	require.Len(t, rep.Diagnostics, 1)
	assert.Equal(t, "unexpected", rep.Diagnostics[0].Tag)
	assert.Equal(t, 1, stream.Len())
}

func TestEscapeFamilyMarks(t *testing.T) {
	spec := rule.NewSpec()
	q := rule.NewQuoted(`"`).
		WithEscape(`\n`, rule.NewLiteralEscape('\n')).
		WithEscape(`\x`, rule.NewFixedEscape(2, func(s string) (rune, bool) { return 0, true })).
		WithEscape(`\u`, rule.NewBracketedEscape("{", "}", func(s string) (rune, bool) { return 0, true }))
	spec.Add(q)

	ctx, stream, rep := lex(t, spec, `"a\n\x4F\u{1F600}b"`)
	assert.Empty(t, rep.Diagnostics)
	require.Equal(t, 1, stream.Len())

	meta, ok := token.GetMeta[token.QuotedMeta](stream, 0)
	require.True(t, ok)
	// mark 0: past the open quote. Then: "a" literal chunk, "\n" basic
	// escape (4 marks), "\x4F" fixed escape (4 marks), "\u{1F600}"
	// bracketed escape (4 marks), "b" literal chunk, close-quote mark.
	assert.Equal(t, 1+1+4+4+4+1+1, len(meta.Marks))
	_ = ctx
}

func TestUnopenedCloser(t *testing.T) {
	spec := rule.NewSpec()
	spec.Add(rule.NewPairedBracket("(", ")"))

	_, stream, rep := lex(t, spec, ")")
	require.Len(t, rep.Diagnostics, 1)
	assert.Equal(t, "unopened", rep.Diagnostics[0].Tag)
	assert.Equal(t, token.UNEXPECTED, stream.Lexeme(0))
}

func TestUnclosedBracketBalancesStream(t *testing.T) {
	spec := rule.NewSpec()
	open := spec.Add(rule.NewPairedBracket("(", ")"))

	_, stream, rep := lex(t, spec, "(")
	require.Len(t, rep.Diagnostics, 1)
	assert.Equal(t, "unclosed", rep.Diagnostics[0].Tag)
	require.Equal(t, 2, stream.Len())
	assert.Equal(t, open, stream.Lexeme(0))
	assert.Equal(t, open, stream.Lexeme(1))
	assertCoverage(t, stream, 1)
}

func TestCommentAttachesToNextToken(t *testing.T) {
	spec := rule.NewSpec()
	kw := spec.Add(rule.NewKeyword("x"))
	spec.Add(rule.NewLineComment("//"))

	ctx, stream, rep := lex(t, spec, "// hi\nx")
	assert.Empty(t, rep.Diagnostics)

	var hostID token.ID
	found := false
	for i := 0; i < stream.Len(); i++ {
		if stream.Lexeme(token.ID(i)) == kw {
			hostID, found = token.ID(i), true
		}
	}
	require.True(t, found)
	comments := stream.Span(ctx, hostID).Comments(ctx)
	require.Len(t, comments, 1)
	assert.Equal(t, "// hi", comments[0].Text(ctx))
}

func TestIdentPrefixSuffixSplit(t *testing.T) {
	spec := rule.NewSpec()
	// The suffix literal must fall outside the identifier's own valid
	// continuation characters, or maximal munch will absorb it into the
	// body and no separate SUFFIX token will ever be produced.
	id := spec.Add(rule.NewIdent().WithSuffix("'"))

	_, stream, rep := lex(t, spec, "foo'")
	assert.Empty(t, rep.Diagnostics)
	require.Equal(t, 2, stream.Len())
	assert.Equal(t, id, stream.Lexeme(0))
	assert.Equal(t, token.SUFFIX, stream.Lexeme(1))
}

func TestLineEndCancelLatch(t *testing.T) {
	spec := rule.NewSpec()
	spec.Add(rule.NewLineEnd(`\`))
	spec.Add(rule.NewKeyword("x"))

	_, _, rep := lex(t, spec, "\\x\n")
	require.Len(t, rep.Diagnostics, 1)
	assert.Equal(t, "expected", rep.Diagnostics[0].Tag)
}

func TestDFAOverparseReportsExtraChars(t *testing.T) {
	// The CxxLike bracket's open half probes well past "R" looking for a
	// "(" that never arrives, so its dead length outruns the keyword "R"
	// that actually wins the match: a textbook overparse.
	spec := rule.NewSpec()
	spec.Add(rule.NewKeyword("R"))
	spec.Add(rule.NewCxxLikeBracket(rule.NewIdent(),
		rule.Delim{Left: `R"`, Right: "("},
		rule.Delim{Left: ")", Right: `"`}))

	_, stream, rep := lex(t, spec, `R"foo`)
	var sawExtra bool
	for _, d := range rep.Diagnostics {
		if d.Tag == "extra-chars" {
			sawExtra = true
		}
	}
	assert.True(t, sawExtra, "expected an extra-chars diagnostic, got %+v", rep.Diagnostics)
	assertCoverage(t, stream, len(`R"foo`))
}
