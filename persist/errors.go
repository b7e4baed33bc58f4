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


package persist

import "errors"

var (
	// ErrKeyNotFound indicates a get for a key with no value.
	ErrKeyNotFound = errors.New("key not found")

	// ErrNoSnapshot indicates no snapshot exists in any store.
	ErrNoSnapshot = errors.New("no snapshot available")

	// ErrVerifyFailed indicates the staging read-back did not match the
	// written payload.
	ErrVerifyFailed = errors.New("staging verification failed")

	// ErrSaverClosed indicates a save after Close.
	ErrSaverClosed = errors.New("saver is closed")
)
