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

import "errors"

// Domain validation errors
var (
	// ErrInvalidWordNode indicates a WordNode failed validation.
	ErrInvalidWordNode = errors.New("invalid word node")

	// ErrInvalidPhraseNode indicates a PhraseNode failed validation.
	ErrInvalidPhraseNode = errors.New("invalid phrase node")

	// ErrInvalidChunk indicates a PhraseChunk failed validation.
	ErrInvalidChunk = errors.New("invalid phrase chunk")

	// ErrEmptyText indicates a required text field is empty.
	ErrEmptyText = errors.New("text cannot be empty")

	// ErrEmptyLemma indicates the lemma field is empty.
	ErrEmptyLemma = errors.New("lemma cannot be empty")

	// ErrUnknownPOS indicates a tag outside the fixed vocabulary.
	ErrUnknownPOS = errors.New("unknown part-of-speech tag")

	// ErrInvalidTimestamp indicates a timestamp is in the future.
	ErrInvalidTimestamp = errors.New("timestamp cannot be in the future")

	// ErrSnapshotVersion indicates a snapshot with an unsupported schema version.
	ErrSnapshotVersion = errors.New("unsupported snapshot version")
)
