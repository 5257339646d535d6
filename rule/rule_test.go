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

package rule_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcy/ilex/rule"
)

func TestAffixesDefaultToOptional(t *testing.T) {
	id := rule.NewIdent()
	assert.Equal(t, []string{""}, id.Affixes.NormalizedPrefixes())
	assert.Equal(t, []string{""}, id.Affixes.NormalizedSuffixes())
}

func TestAffixesLatch(t *testing.T) {
	id := rule.NewIdent().WithPrefix("r").WithPrefixes("u", "b")
	assert.Equal(t, []string{"r", "u", "b"}, id.Affixes.NormalizedPrefixes())
}

func TestSpecDeclarationOrder(t *testing.T) {
	spec := rule.NewSpec()
	pipeBracket := spec.Add(rule.NewPairedBracket("|", "|"))
	doublePipe := spec.Add(rule.NewKeyword("||"))

	assert.Equal(t, rule.Lexeme(0), pipeBracket)
	assert.Equal(t, rule.Lexeme(1), doublePipe)
	require.Equal(t, 2, spec.Len())
	assert.Equal(t, rule.KindBracket, spec.Rule(pipeBracket).Kind())
	assert.Equal(t, rule.KindKeyword, spec.Rule(doublePipe).Kind())
}

func TestIdentValidStart(t *testing.T) {
	id := rule.NewIdent().WithASCIIOnly()
	assert.True(t, id.IsValidStart('a'))
	assert.False(t, id.IsValidStart('é'))

	unicodeID := rule.NewIdent()
	assert.True(t, unicodeID.IsValidStart('é'))
}

func TestRustEscapes(t *testing.T) {
	q := rule.NewQuoted(`"`).WithRustEscapes()

	prefix, esc := q.Escapes.Get(`\n`)
	require.Equal(t, `\n`, prefix)
	assert.Equal(t, rule.Basic, esc.Shape)
	assert.Equal(t, rune('\n'), esc.Literal)

	prefix, esc = q.Escapes.Get(`\x41`)
	require.Equal(t, `\x`, prefix)
	assert.Equal(t, rule.Fixed, esc.Shape)
	assert.Equal(t, 2, esc.CharCount)

	prefix, esc = q.Escapes.Get(`\u{1F600}`)
	require.Equal(t, `\u`, prefix)
	assert.Equal(t, rule.Bracketed, esc.Shape)
	assert.Equal(t, "{", esc.Open)
	assert.Equal(t, "}", esc.Close)
}

func TestNumberDecimalPointsSetsMinChunks(t *testing.T) {
	n := rule.NewNumber(10).WithDecimalPoints(0, 1)
	assert.Equal(t, 1, n.Mantissa.MinChunks)

	n = rule.NewNumber(10).WithDecimalPoints(1, 1)
	assert.Equal(t, 2, n.Mantissa.MinChunks)
}
