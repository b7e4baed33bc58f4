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

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
)

// DefaultDebounce is the window within which repeated Save calls
// coalesce into one physical commit.
const DefaultDebounce = 300 * time.Millisecond

// Saver persists snapshot payloads with debouncing and the staged
// commit protocol. Background commits run on a single-worker pool so
// two commits never interleave; SaveNow cancels any pending debounced
// write before committing, so the two paths never race on the same
// keys.
type Saver struct {
	primary  KVStore
	fallback KVStore
	debounce time.Duration
	pool     *ants.Pool
	logger   *slog.Logger

	mu      sync.Mutex
	timer   *time.Timer
	pending []byte
	closed  bool
}

// SaverOption configures a Saver.
type SaverOption func(*Saver) error

// WithDebounce overrides the debounce window.
func WithDebounce(d time.Duration) SaverOption {
	return func(s *Saver) error {
		if d <= 0 {
			return fmt.Errorf("debounce must be positive, got %v", d)
		}
		s.debounce = d
		return nil
	}
}

// WithSaverLogger sets the logger used by the saver.
func WithSaverLogger(logger *slog.Logger) SaverOption {
	return func(s *Saver) error {
		if logger == nil {
			return fmt.Errorf("nil logger")
		}
		s.logger = logger
		return nil
	}
}

// NewSaver creates a saver over the primary store and the legacy
// fallback store.
func NewSaver(primary, fallback KVStore, opts ...SaverOption) (*Saver, error) {
	if primary == nil {
		return nil, fmt.Errorf("nil primary store")
	}
	if fallback == nil {
		return nil, fmt.Errorf("nil fallback store")
	}

	pool, err := ants.NewPool(1)
	if err != nil {
		return nil, fmt.Errorf("creating commit pool: %w", err)
	}

	s := &Saver{
		primary:  primary,
		fallback: fallback,
		debounce: DefaultDebounce,
		pool:     pool,
		logger:   slog.Default().With("component", "saver"),
	}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			pool.Release()
			return nil, err
		}
	}
	return s, nil
}

// Save schedules the payload for a debounced commit. Calls within the
// window replace the pending payload; only the last one is written.
func (s *Saver) Save(payload []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrSaverClosed
	}

	s.pending = payload
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.debounce, s.flushPending)
	return nil
}

// flushPending moves the pending payload onto the commit pool.
func (s *Saver) flushPending() {
	s.mu.Lock()
	payload := s.pending
	s.pending = nil
	s.timer = nil
	closed := s.closed
	s.mu.Unlock()

	if payload == nil || closed {
		return
	}
	if err := s.pool.Submit(func() {
		if err := s.commit(payload); err != nil {
			s.logger.Error("background save failed in all stores", "err", err)
		}
	}); err != nil {
		s.logger.Error("submitting background save", "err", err)
	}
}

// SaveNow cancels any pending debounced write and commits the payload
// synchronously, waiting for any in-flight background commit first.
func (s *Saver) SaveNow(payload []byte) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrSaverClosed
	}
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.pending = nil
	s.mu.Unlock()

	done := make(chan error, 1)
	if err := s.pool.Submit(func() {
		done <- s.commit(payload)
	}); err != nil {
		// Pool unavailable; commit inline.
		return s.commit(payload)
	}
	return <-done
}

// commit runs the staged protocol: write staging, read it back to
// confirm durability, rotate current into backup (or seed backup with
// the new payload when current is empty so backup is never left
// empty), write current, drop staging. Any failure sends the whole
// payload to the fallback store's legacy key instead.
func (s *Saver) commit(payload []byte) error {
	if err := s.tryCommitPrimary(payload); err != nil {
		s.logger.Warn("staged commit failed, falling back to legacy store", "err", err)
		if fbErr := s.fallback.Put(LegacyKey, payload); fbErr != nil {
			return errors.Join(err, fmt.Errorf("legacy fallback: %w", fbErr))
		}
		return nil
	}
	return nil
}

func (s *Saver) tryCommitPrimary(payload []byte) error {
	if err := s.primary.Put(KeyStaging, payload); err != nil {
		return fmt.Errorf("writing staging: %w", err)
	}

	readBack, err := s.primary.Get(KeyStaging)
	if err != nil {
		return fmt.Errorf("reading staging back: %w", err)
	}
	if !bytes.Equal(readBack, payload) {
		return ErrVerifyFailed
	}

	current, err := s.primary.Get(KeyCurrent)
	switch {
	case err == nil:
		if err := s.primary.Put(KeyBackup, current); err != nil {
			return fmt.Errorf("rotating backup: %w", err)
		}
	case errors.Is(err, ErrKeyNotFound):
		if err := s.primary.Put(KeyBackup, payload); err != nil {
			return fmt.Errorf("seeding backup: %w", err)
		}
	default:
		return fmt.Errorf("reading current: %w", err)
	}

	if err := s.primary.Put(KeyCurrent, payload); err != nil {
		return fmt.Errorf("writing current: %w", err)
	}
	if err := s.primary.Delete(KeyStaging); err != nil {
		return fmt.Errorf("dropping staging: %w", err)
	}
	return nil
}

// Load returns the most recent committed payload, trying current, then
// backup, then the fallback store's legacy key.
func (s *Saver) Load() ([]byte, error) {
	if payload, err := s.primary.Get(KeyCurrent); err == nil {
		return payload, nil
	} else if !errors.Is(err, ErrKeyNotFound) {
		s.logger.Warn("reading current snapshot", "err", err)
	}

	if payload, err := s.primary.Get(KeyBackup); err == nil {
		s.logger.Warn("current snapshot missing, loaded backup")
		return payload, nil
	} else if !errors.Is(err, ErrKeyNotFound) {
		s.logger.Warn("reading backup snapshot", "err", err)
	}

	if payload, err := s.fallback.Get(LegacyKey); err == nil {
		s.logger.Warn("primary snapshots missing, loaded legacy fallback")
		return payload, nil
	} else if !errors.Is(err, ErrKeyNotFound) {
		s.logger.Warn("reading legacy snapshot", "err", err)
	}

	return nil, ErrNoSnapshot
}

// Close flushes any pending payload synchronously and releases the
// commit pool. The underlying stores are not closed; they belong to
// the caller.
func (s *Saver) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	payload := s.pending
	s.pending = nil
	s.mu.Unlock()

	var err error
	if payload != nil {
		// Run the final commit on the pool so it serializes behind any
		// in-flight background commit.
		done := make(chan error, 1)
		if submitErr := s.pool.Submit(func() {
			done <- s.commit(payload)
		}); submitErr != nil {
			err = s.commit(payload)
		} else {
			err = <-done
		}
	}
	s.pool.Release()
	return err
}
