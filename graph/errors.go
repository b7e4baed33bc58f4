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


package graph

import "errors"

var (
	// ErrWordNotFound indicates a lookup for a word node that does not exist.
	ErrWordNotFound = errors.New("word not found")

	// ErrPhraseNotFound indicates a lookup for a phrase node that does not exist.
	ErrPhraseNotFound = errors.New("phrase not found")

	// ErrNilSnapshot indicates a restore was attempted with a nil snapshot.
	ErrNilSnapshot = errors.New("nil snapshot")
)
