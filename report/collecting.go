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
	"strconv"

	"github.com/mcy/ilex/span"
)

// Collecting is a Report that accumulates every Diagnostic it receives, in
// call order, without formatting or filtering anything. It is meant for
// tests and other callers that want to inspect exactly what the lexer
// reported.
type Collecting struct {
	Diagnostics []Diagnostic
}

var _ Report = (*Collecting)(nil)

func (c *Collecting) push(level Level, tag, message string, at span.Span, notes ...Annotation) {
	c.Diagnostics = append(c.Diagnostics, Diagnostic{
		Level:   level,
		Tag:     tag,
		Message: message,
		Primary: at,
		Notes:   notes,
	})
}

func (c *Collecting) UnexpectedToken(at span.Span) {
	c.push(Error, "unexpected-token", "unexpected token", at)
}

func (c *Collecting) ExtraChars(at span.Span) {
	c.push(Error, "extra-chars", "unexpected trailing characters", at)
}

func (c *Collecting) Unopened(at span.Span) {
	c.push(Error, "unopened", "unopened closing bracket", at)
}

func (c *Collecting) Unclosed(opener span.Span) {
	c.push(Error, "unclosed", "unclosed delimiter", opener)
}

func (c *Collecting) NonASCIIInIdent(at span.Span) {
	c.push(Error, "non-ascii-in-ident", "non-ASCII character in ASCII-only identifier", at)
}

func (c *Collecting) IdentTooSmall(at span.Span, minLen int) {
	c.push(Error, "ident-too-small", "identifier shorter than the minimum length", at,
		Annotation{at, "minimum length is " + strconv.Itoa(minLen)})
}

func (c *Collecting) InvalidEscape(at span.Span) {
	c.push(Error, "invalid-escape", "invalid escape sequence", at)
}

func (c *Collecting) Expected(at span.Span, want string) {
	c.push(Error, "expected", "expected "+want, at)
}

func (c *Collecting) Unexpected(at span.Span, got string) {
	c.push(Error, "unexpected", "unexpected "+got, at)
}

func (c *Collecting) Bug(at span.Span, message string) {
	c.push(Bug, "bug", message, at)
}
