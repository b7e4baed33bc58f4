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

import (
	"fmt"
	"time"
)

// ValidateWordNode validates a WordNode according to domain rules.
//
// Validation rules:
//   - Text and Lemma must not be empty
//   - Every tag in POS and PosPotential must be in the fixed vocabulary
//   - PrimaryPOS must be in PosPotential once any observation exists
//
// NOT validated:
//   - ID (derived from the lemma, 0 never occurs in practice)
//   - Timestamps (populated by the graph store)
func ValidateWordNode(word *WordNode) error {
	if word == nil {
		return fmt.Errorf("%w: word is nil", ErrInvalidWordNode)
	}
	if word.Text == "" {
		return fmt.Errorf("%w: %w", ErrInvalidWordNode, ErrEmptyText)
	}
	if word.Lemma == "" {
		return fmt.Errorf("%w: %w", ErrInvalidWordNode, ErrEmptyLemma)
	}
	for _, tag := range word.POS {
		if !IsValidPOS(tag) {
			return fmt.Errorf("%w: %w: %q", ErrInvalidWordNode, ErrUnknownPOS, tag)
		}
	}
	for _, tag := range word.PosPotential {
		if !IsValidPOS(tag) {
			return fmt.Errorf("%w: %w: %q", ErrInvalidWordNode, ErrUnknownPOS, tag)
		}
	}
	if len(word.PosObserved) > 0 && !word.HasPotential(word.PrimaryPOS) {
		return fmt.Errorf("%w: primary tag %q not in potential set", ErrInvalidWordNode, word.PrimaryPOS)
	}
	return nil
}

// ValidatePhraseNode validates a PhraseNode according to domain rules.
//
// Validation rules:
//   - Text must not be empty
//   - The phrase must reference at least one word
func ValidatePhraseNode(phrase *PhraseNode) error {
	if phrase == nil {
		return fmt.Errorf("%w: phrase is nil", ErrInvalidPhraseNode)
	}
	if phrase.Text == "" {
		return fmt.Errorf("%w: %w", ErrInvalidPhraseNode, ErrEmptyText)
	}
	if len(phrase.WordIds) == 0 {
		return fmt.Errorf("%w: phrase references no words", ErrInvalidPhraseNode)
	}
	return nil
}

// ValidateChunk validates a PhraseChunk according to domain rules.
func ValidateChunk(chunk *PhraseChunk) error {
	if chunk == nil {
		return fmt.Errorf("%w: chunk is nil", ErrInvalidChunk)
	}
	if chunk.Text == "" {
		return fmt.Errorf("%w: %w", ErrInvalidChunk, ErrEmptyText)
	}
	if len(chunk.Lemmas) == 0 {
		return fmt.Errorf("%w: chunk has no lemmas", ErrInvalidChunk)
	}
	if chunk.PosPattern == "" {
		return fmt.Errorf("%w: chunk has no POS pattern", ErrInvalidChunk)
	}
	return nil
}

// IsValidTimestamp checks if a timestamp is valid (not in the future).
func IsValidTimestamp(ts time.Time) bool {
	return !ts.After(time.Now())
}
