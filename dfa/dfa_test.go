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

package dfa_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcy/ilex/dfa"
	"github.com/mcy/ilex/rule"
)

func TestKeywordTieBreak(t *testing.T) {
	spec := rule.NewSpec()
	kw := spec.Add(rule.NewKeyword("||"))
	open := spec.Add(rule.NewPairedBracket("|", "|"))
	_ = open

	d := dfa.Compile(spec)
	m, ok := d.Search("||x||")
	require.True(t, ok)
	assert.Equal(t, 2, m.Len)

	require.NotEmpty(t, m.Candidates)
	assert.Equal(t, kw, m.Candidates[0].Lexeme)
}

func TestRustLikeBracket(t *testing.T) {
	spec := rule.NewSpec()
	br := spec.Add(rule.NewRustLikeBracket("#",
		rule.Delim{Left: "", Right: "\""},
		rule.Delim{Left: "\"", Right: ""}))

	d := dfa.Compile(spec)
	m, ok := d.Search(`##"he"llo"##`)
	require.True(t, ok)
	assert.Equal(t, 3, m.Len) // "##\""
	require.Len(t, m.Candidates, 1)
	assert.Equal(t, br, m.Candidates[0].Lexeme)
	assert.False(t, m.Candidates[0].IsClose)
}

func TestIdentMaximalMunch(t *testing.T) {
	spec := rule.NewSpec()
	spec.Add(rule.NewIdent())

	d := dfa.Compile(spec)
	m, ok := d.Search("foo_bar123 + baz")
	require.True(t, ok)
	assert.Equal(t, len("foo_bar123"), m.Len)
}

func TestNumberWithSeparatorAndExponent(t *testing.T) {
	spec := rule.NewSpec()
	spec.Add(rule.NewNumber(10).
		WithSeparator("_").
		WithExponent(rule.NewNumberExponent(10, "e").WithSigns(
			rule.Sign{Text: "+", Value: rule.Positive},
			rule.Sign{Text: "-", Value: rule.Negative},
		)))

	d := dfa.Compile(spec)
	m, ok := d.Search("1_000.5e-7 ")
	require.True(t, ok)
	assert.Equal(t, len("1_000.5e-7"), m.Len)
}

func TestNoRuleAccepts(t *testing.T) {
	spec := rule.NewSpec()
	spec.Add(rule.NewKeyword("foo"))

	d := dfa.Compile(spec)
	_, ok := d.Search("bar")
	assert.False(t, ok)
}
