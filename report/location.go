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

package report

import (
	"strings"

	"github.com/rivo/uniseg"

	"github.com/mcy/ilex/span"
)

// TabstopWidth is the column width a literal tab renders as.
const TabstopWidth = 4

// Location is a user-displayable position within a source file: a
// 1-indexed line and column, plus the raw byte offset it was computed
// from. Column accounts for tabstops and Unicode display width, not just
// byte or rune count: 'A' is one column wide, '貓' is two.
type Location struct {
	Offset       int
	Line, Column int
}

// Locate computes the Location of offset within file.
func Locate(file span.File, offset int) Location {
	line, lineStart := file.LineByOffset(offset)
	return Location{
		Offset: offset,
		Line:   line + 1,
		Column: columnWidth(file.Slice(lineStart, offset)) + 1,
	}
}

// columnWidth computes the rendered width of text starting at column 0,
// expanding tabs to the next TabstopWidth boundary and using grapheme-aware
// display width for everything else.
func columnWidth(text string) int {
	var column int
	for text != "" {
		next := text
		var sawTab bool
		if i := strings.IndexByte(text, '\t'); i != -1 {
			next, text = text[:i], text[i+1:]
			sawTab = true
		} else {
			text = ""
		}

		column += uniseg.StringWidth(next)
		if sawTab {
			column += TabstopWidth - (column % TabstopWidth)
		}
	}
	return column
}
