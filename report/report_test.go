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

package report_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcy/ilex/report"
	"github.com/mcy/ilex/span"
)

func TestCollecting(t *testing.T) {
	var ctx span.Context
	file := ctx.NewFile("a.proto", "hello")
	sp := ctx.NewSpan(file, 0, 5)

	var c report.Collecting
	c.UnexpectedToken(sp)
	c.IdentTooSmall(sp, 3)
	c.Bug(sp, "should never happen")

	require.Len(t, c.Diagnostics, 3)
	assert.Equal(t, report.Error, c.Diagnostics[0].Level)
	assert.Equal(t, "unexpected-token", c.Diagnostics[0].Tag)

	assert.Equal(t, "ident-too-small", c.Diagnostics[1].Tag)
	require.Len(t, c.Diagnostics[1].Notes, 1)
	assert.Contains(t, c.Diagnostics[1].Notes[0].Message, "3")

	assert.Equal(t, report.Bug, c.Diagnostics[2].Level)
}

func TestLocate(t *testing.T) {
	var ctx span.Context
	file := ctx.NewFile("a.proto", "ab\tcd\nef貓g")

	// Offset 6 is "e", the start of the second line.
	loc := report.Locate(file, 6)
	assert.Equal(t, 2, loc.Line)
	assert.Equal(t, 1, loc.Column)

	// Offset 0 is the very start of the file.
	loc = report.Locate(file, 0)
	assert.Equal(t, 1, loc.Line)
	assert.Equal(t, 1, loc.Column)

	// A tab expands to the next 4-column stop: "ab" is two columns, so the
	// tab brings us to column 5, and "cd" starts there.
	loc = report.Locate(file, 3)
	assert.Equal(t, 1, loc.Line)
	assert.Equal(t, 5, loc.Column)
}
