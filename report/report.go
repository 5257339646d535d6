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

// Package report declares the narrow diagnostic interface the lexer emits
// to, plus a Collecting implementation suitable for tests. Rendering
// diagnostics for a human reader is an external collaborator's job, not
// this package's; see Location for the one piece of rendering support
// (line/column computation) every renderer needs.
package report

import "github.com/mcy/ilex/span"

// Level is the severity of a Diagnostic.
type Level int8

const (
	// Bug marks an internal invariant violation, not a user error.
	Bug Level = iota
	Error
	Warning
	Remark
)

// String implements fmt.Stringer.
func (l Level) String() string {
	switch l {
	case Bug:
		return "bug"
	case Error:
		return "error"
	case Warning:
		return "warning"
	case Remark:
		return "remark"
	default:
		return "unknown"
	}
}

// Annotation is a secondary span/message pair attached to a Diagnostic, such
// as the minimum-length note Collecting attaches to IdentTooSmall.
type Annotation struct {
	Span    span.Span
	Message string
}

// Diagnostic is one structured error, warning, or remark produced by the
// lexer. The core never formats user-facing text itself; Tag and Message
// are the structured payload a renderer turns into prose.
type Diagnostic struct {
	Level   Level
	Tag     string
	Message string
	Primary span.Span
	Notes   []Annotation
}

// Report is the diagnostic sink the emitter calls into. It is the only
// named report surface: the methods here are exactly the diagnostics
// spec.md's emitter drives off of. Each takes the offending span plus
// whatever structured argument a renderer would need; none of them return a
// value, since local diagnostics never abort lexing.
type Report interface {
	// UnexpectedToken reports a run of bytes that did not match any rule.
	UnexpectedToken(at span.Span)
	// ExtraChars reports trailing bytes a DFA match examined but could not
	// consume as part of the accepted candidate.
	ExtraChars(at span.Span)
	// Unopened reports a closing bracket with no matching opener on the
	// closer stack.
	Unopened(at span.Span)
	// Unclosed reports a bracket, comment, or quoted string left open at
	// end of file.
	Unclosed(opener span.Span)
	// NonASCIIInIdent reports a non-ASCII character inside an
	// ASCII-only-restricted identifier.
	NonASCIIInIdent(at span.Span)
	// IdentTooSmall reports an identifier shorter than its rule's MinLen.
	IdentTooSmall(at span.Span, minLen int)
	// InvalidEscape reports a malformed or Invalid-kind escape sequence.
	InvalidEscape(at span.Span)
	// Expected reports that want was expected at a position but not found.
	Expected(at span.Span, want string)
	// Unexpected reports that got was present but not legal at this
	// position, such as a misplaced digit separator.
	Unexpected(at span.Span, got string)
	// Bug reports an internal invariant violation.
	Bug(at span.Span, message string)
}
