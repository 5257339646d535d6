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

// Affixes is the set of declared prefixes and suffixes a rule may require.
//
// The zero Affixes means "no affix required" on either side (equivalent to
// a single empty-string entry). Calling addPrefixes/addSuffixes for the
// first time replaces that default and latches so that subsequent calls
// append instead of replacing: "if any prefixes are declared, one of them
// must match."
type Affixes struct {
	Prefixes    []string
	Suffixes    []string
	hasPrefixes bool
	hasSuffixes bool
}

// NormalizedPrefixes returns the effective prefix list: [""] if none were
// ever declared, otherwise exactly the declared set.
func (a *Affixes) NormalizedPrefixes() []string {
	if !a.hasPrefixes {
		return []string{""}
	}
	return a.Prefixes
}

// NormalizedSuffixes returns the effective suffix list: [""] if none were
// ever declared, otherwise exactly the declared set.
func (a *Affixes) NormalizedSuffixes() []string {
	if !a.hasSuffixes {
		return []string{""}
	}
	return a.Suffixes
}

func (a *Affixes) addPrefixes(prefixes ...string) {
	if !a.hasPrefixes {
		a.hasPrefixes = true
		a.Prefixes = nil
	}
	a.Prefixes = append(a.Prefixes, prefixes...)
}

func (a *Affixes) addSuffixes(suffixes ...string) {
	if !a.hasSuffixes {
		a.hasSuffixes = true
		a.Suffixes = nil
	}
	a.Suffixes = append(a.Suffixes, suffixes...)
}
