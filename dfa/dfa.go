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

// Package dfa compiles a rule.Spec into a longest-match search over the
// text at a cursor.
//
// Rather than building one minimized combined automaton, every declared
// rule contributes its own small matcher for the "surface tokens" it can
// produce (see rule-specific files in this package), and Search runs them
// all against the same cursor text. This mirrors how the reference
// implementation composes independent sub-matchers inline instead of
// constructing a single DFA table; it keeps each rule kind's matching
// logic local and easy to check against its declaration, at the cost of
// walking the text once per rule instead of once overall.
package dfa

import (
	"sort"

	"github.com/mcy/ilex/rule"
)

// Candidate is a rule lexeme (and, for Bracket-shaped rules, which side of
// the delimiter) that accepted at a Match's Len.
type Candidate struct {
	Lexeme  rule.Lexeme
	IsClose bool
}

// Match is the result of a successful Search: the longest accepted length,
// how many further bytes some rule kept trying before every rule's pattern
// died, and the set of rules that accepted at Len, sorted by
// (Lexeme, IsClose) as the emitter's tie-break requires.
type Match struct {
	Len        int
	Extra      int
	Candidates []Candidate
}

// Dfa is a compiled rule.Spec ready to Search against cursor text.
type Dfa struct {
	spec *rule.Spec
}

// Compile prepares spec for searching. Compilation here is cheap (it just
// retains the spec); the per-rule matchers run lazily inside Search, since
// there is no combined automaton to build up front.
func Compile(spec *rule.Spec) *Dfa {
	return &Dfa{spec: spec}
}

// alt is one candidate accept/death pair produced by a single rule's
// matcher. accept is -1 if the matcher never reached an accepting state;
// dead is always >= max(accept, 0) and records how far the matcher
// advanced, accepting or not, before it could no longer possibly match.
type alt struct {
	accept  int
	dead    int
	isClose bool
}

// Search finds the longest match starting at the beginning of text (the
// caller slices text to start at its current cursor). It reports ok=false
// if no declared rule accepts anything, including the empty string.
func (d *Dfa) Search(text string) (Match, bool) {
	best := -1
	deadMax := 0

	type hit struct {
		lexeme  rule.Lexeme
		isClose bool
	}
	var accepting []hit

	for i, r := range d.spec.Rules() {
		lexeme := rule.Lexeme(i)
		for _, a := range matchRule(r, text) {
			if a.dead > deadMax {
				deadMax = a.dead
			}
			if a.accept < 0 {
				continue
			}
			switch {
			case a.accept > best:
				best = a.accept
				accepting = accepting[:0]
				accepting = append(accepting, hit{lexeme, a.isClose})
			case a.accept == best:
				accepting = append(accepting, hit{lexeme, a.isClose})
			}
		}
	}

	if best < 0 {
		return Match{}, false
	}

	candidates := make([]Candidate, len(accepting))
	for i, h := range accepting {
		candidates[i] = Candidate{Lexeme: h.lexeme, IsClose: h.isClose}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].Lexeme != candidates[j].Lexeme {
			return candidates[i].Lexeme < candidates[j].Lexeme
		}
		return candidates[j].IsClose && !candidates[i].IsClose
	})

	extra := deadMax - best
	if extra < 0 {
		extra = 0
	}

	return Match{Len: best, Extra: extra, Candidates: candidates}, true
}

// matchRule dispatches to the rule-kind-specific matcher, each declared in
// its own file in this package (mirroring the rule package's per-kind
// layout).
func matchRule(r rule.Any, text string) []alt {
	switch v := r.(type) {
	case rule.Keyword:
		return []alt{matchLiteralPlain(text, v.Value)}
	case rule.LineEnd:
		return []alt{matchLiteralPlain(text, v.Literal)}
	case rule.Bracket:
		return matchBracket(v, text)
	case rule.Ident:
		return matchIdent(v, text)
	case rule.Quoted:
		return matchQuoted(v, text)
	case rule.Number:
		return matchNumber(v, text)
	case rule.Comment:
		return matchComment(v, text)
	default:
		return nil
	}
}

// CommonPrefixLen returns the number of leading bytes a and b have in
// common.
func CommonPrefixLen(a, b string) int {
	n := 0
	for n < len(a) && n < len(b) && a[n] == b[n] {
		n++
	}
	return n
}

// GreedyAffixMatch picks the longest option that is a prefix of text,
// matching the "greedily, by maximum length" rule affix stripping uses.
// It reports ok=false when no option matches. The default normalized list
// [""] always matches; a declared list holds only the declared affixes, so
// it can fail.
func GreedyAffixMatch(text string, options []string) (matched string, ok bool) {
	best := -1
	for _, o := range options {
		if len(o) > best && len(o) <= len(text) && text[:len(o)] == o {
			best = len(o)
			matched = o
		}
	}
	return matched, best >= 0
}
