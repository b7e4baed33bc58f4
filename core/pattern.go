// Copyright 2025 CalmEddy
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package core

import "strings"

// BuildPosPattern builds the canonical POS pattern string used as the
// chunk storage key: tags joined by "-", with a morph feature encoded as
// "POS|morph" when present and not the MorphBase sentinel.
//
//	BuildPosPattern([NOUN, VERB], ["base", "past"]) == "NOUN-VERB|past"
//	BuildPosPattern([NOUN, VERB], nil)              == "NOUN-VERB"
//
// A morphs slice shorter than pos is truncated to the shorter length; no
// padding, no error.
func BuildPosPattern(pos []POS, morphs []string) string {
	parts := make([]string, len(pos))
	for i, p := range pos {
		if i < len(morphs) && morphs[i] != "" && morphs[i] != MorphBase {
			parts[i] = string(p) + "|" + morphs[i]
		} else {
			parts[i] = string(p)
		}
	}
	return strings.Join(parts, "-")
}

// BuildWordPattern builds a "POS:word" display string for debugging.
// It is never a storage or lookup key. A words slice shorter than pos is
// truncated to the shorter length.
func BuildWordPattern(pos []POS, words []string) string {
	n := len(pos)
	if len(words) < n {
		n = len(words)
	}
	parts := make([]string, n)
	for i := 0; i < n; i++ {
		parts[i] = string(pos[i]) + ":" + words[i]
	}
	return strings.Join(parts, "-")
}

// BuildLemmaPattern builds a "POS:lemma" display string for debugging.
// It is never a storage or lookup key. A lemmas slice shorter than pos
// is truncated to the shorter length.
func BuildLemmaPattern(pos []POS, lemmas []string) string {
	n := len(pos)
	if len(lemmas) < n {
		n = len(lemmas)
	}
	parts := make([]string, n)
	for i := 0; i < n; i++ {
		parts[i] = string(pos[i]) + ":" + lemmas[i]
	}
	return strings.Join(parts, "-")
}
