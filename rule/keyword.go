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

// Keyword is a literal text rule, such as a reserved word or an operator.
// It compiles to a trivial bracket-less literal match.
type Keyword struct {
	Value string
}

// NewKeyword returns a Keyword rule matching value exactly.
func NewKeyword(value string) Keyword {
	return Keyword{Value: value}
}

// Kind implements Any.
func (Keyword) Kind() Kind { return KindKeyword }
