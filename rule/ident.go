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

package rule

import (
	"strings"

	"github.com/mcy/ilex/internal/xid"
)

// Ident is an identifier rule: a self-delimiting "word" like foo or 黒猫.
//
// By default it accepts any Unicode XID (https://unicode.org/reports/tr31/).
type Ident struct {
	AsciiOnly      bool
	ExtraStarts    string
	ExtraContinues string
	MinLen         int
	Affixes        Affixes
}

// NewIdent returns an Ident rule accepting any Unicode XID identifier.
func NewIdent() Ident {
	return Ident{}
}

// WithASCIIOnly rejects any non-ASCII characters (outside [A-Za-z0-9_]).
func (i Ident) WithASCIIOnly() Ident {
	i.AsciiOnly = true
	return i
}

// WithStarts adds additional characters valid anywhere in the identifier,
// including the start.
func (i Ident) WithStarts(chars string) Ident {
	i.ExtraStarts += chars
	return i
}

// WithContinues adds additional characters valid anywhere in the
// identifier except the start.
func (i Ident) WithContinues(chars string) Ident {
	i.ExtraContinues += chars
	return i
}

// WithMinLen sets the minimum number of characters (not bytes) required.
func (i Ident) WithMinLen(n int) Ident {
	i.MinLen = n
	return i
}

// WithPrefix declares a required prefix; see Affixes.
func (i Ident) WithPrefix(prefix string) Ident { return i.WithPrefixes(prefix) }

// WithPrefixes declares required prefixes; see Affixes.
func (i Ident) WithPrefixes(prefixes ...string) Ident {
	i.Affixes.addPrefixes(prefixes...)
	return i
}

// WithSuffix declares a required suffix; see Affixes.
func (i Ident) WithSuffix(suffix string) Ident { return i.WithSuffixes(suffix) }

// WithSuffixes declares required suffixes; see Affixes.
func (i Ident) WithSuffixes(suffixes ...string) Ident {
	i.Affixes.addSuffixes(suffixes...)
	return i
}

// Kind implements Any.
func (Ident) Kind() Kind { return KindIdent }

// IsValidStart reports whether c may begin an identifier matched by i.
func (i Ident) IsValidStart(c rune) bool {
	if !i.AsciiOnly && xid.IsXIDStart(c) {
		return true
	}
	if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_' {
		return true
	}
	if strings.ContainsRune(i.ExtraStarts, c) {
		return true
	}
	return false
}

// IsValidContinue reports whether c may continue an identifier matched by i
// (anywhere except the start).
func (i Ident) IsValidContinue(c rune) bool {
	if !i.AsciiOnly && xid.IsXIDContinue(c) {
		return true
	}
	if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') || c == '_' {
		return true
	}
	if strings.ContainsRune(i.ExtraStarts, c) || strings.ContainsRune(i.ExtraContinues, c) {
		return true
	}
	return false
}
