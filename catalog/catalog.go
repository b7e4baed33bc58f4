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


package catalog

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/CalmEddy/SimpleThink-v3-sub002/core"
)

// recencyWindow is the span over which the recency bonus decays from 1
// to 0. Entries older than the window contribute no bonus.
const recencyWindow = 30 * 24 * time.Hour

// Catalog tracks chunk statistics keyed by the canonical chunk key.
// Iteration orders (TopKeys ties, ByPattern, ByLemmas ties) follow key
// insertion order, which keeps results stable across runs.
type Catalog struct {
	entries map[string]*entry
	order   []string

	clock  func() time.Time
	logger *slog.Logger
}

type entry struct {
	lemmas  []string
	pattern string
	stats   core.ChunkStats
}

// Option configures a Catalog.
type Option func(*Catalog) error

// WithClock overrides the time source. Intended for tests.
func WithClock(clock func() time.Time) Option {
	return func(c *Catalog) error {
		if clock == nil {
			return fmt.Errorf("nil clock")
		}
		c.clock = clock
		return nil
	}
}

// WithLogger sets the logger used by the catalog.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Catalog) error {
		if logger == nil {
			return fmt.Errorf("nil logger")
		}
		c.logger = logger
		return nil
	}
}

// New creates an empty catalog.
func New(opts ...Option) (*Catalog, error) {
	c := &Catalog{
		entries: make(map[string]*entry),
		clock:   time.Now,
		logger:  slog.Default().With("component", "catalog"),
	}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// RecordChunks registers one use of each chunk: the use count grows,
// the last-seen time refreshes, and the chunk's surface text joins the
// entry's examples. Returns the recorded keys in chunk order.
func (c *Catalog) RecordChunks(chunks []core.PhraseChunk) []string {
	keys := make([]string, 0, len(chunks))
	now := c.clock()
	for i := range chunks {
		chunk := &chunks[i]
		key := chunk.Key()
		e, ok := c.entries[key]
		if !ok {
			e = &entry{
				lemmas:  append([]string(nil), chunk.Lemmas...),
				pattern: chunk.PosPattern,
			}
			c.entries[key] = e
			c.order = append(c.order, key)
		}
		e.stats.Uses++
		e.stats.LastSeen = now
		e.stats.AddExample(chunk.Text)
		keys = append(keys, key)
	}
	return keys
}

// UpdateStats adjusts use and like counts for a key. Unknown keys are
// a no-op; the return value reports whether the key existed. Counts
// never go below zero.
func (c *Catalog) UpdateStats(key string, dUses, dLikes int) bool {
	e, ok := c.entries[key]
	if !ok {
		c.logger.Debug("stats update for unknown chunk", "key", key)
		return false
	}
	e.stats.Uses = max(0, e.stats.Uses+dUses)
	e.stats.Likes = max(0, e.stats.Likes+dLikes)
	e.stats.LastSeen = c.clock()
	return true
}

// Stats returns a copy of the stats for a key.
func (c *Catalog) Stats(key string) (core.ChunkStats, bool) {
	e, ok := c.entries[key]
	if !ok {
		return core.ChunkStats{}, false
	}
	stats := e.stats
	stats.Examples = append([]string(nil), e.stats.Examples...)
	return stats, true
}

// Score returns the ranking score for a key: uses + likes plus a
// recency bonus decaying linearly from 1 (just seen) to 0 (a full
// window old or older). Unknown keys score 0.
func (c *Catalog) Score(key string) float64 {
	e, ok := c.entries[key]
	if !ok {
		return 0
	}
	return c.score(e, c.clock())
}

func (c *Catalog) score(e *entry, now time.Time) float64 {
	bonus := 1 - now.Sub(e.stats.LastSeen).Seconds()/recencyWindow.Seconds()
	if bonus < 0 {
		bonus = 0
	}
	return float64(e.stats.Uses+e.stats.Likes) + bonus
}

// TopKeys returns up to limit keys ordered by descending score. Equal
// scores keep insertion order. A non-positive limit returns nil.
func (c *Catalog) TopKeys(limit int) []string {
	if limit <= 0 || len(c.order) == 0 {
		return nil
	}
	now := c.clock()
	keys := append([]string(nil), c.order...)
	sort.SliceStable(keys, func(i, j int) bool {
		return c.score(c.entries[keys[i]], now) > c.score(c.entries[keys[j]], now)
	})
	if len(keys) > limit {
		keys = keys[:limit]
	}
	return keys
}

// ByPattern returns keys whose POS pattern segment matches exactly, in
// insertion order.
func (c *Catalog) ByPattern(pattern string) []string {
	var keys []string
	for _, key := range c.order {
		if c.entries[key].pattern == pattern {
			keys = append(keys, key)
		}
	}
	return keys
}

// ByLemmas returns keys whose lemma sequence shares at least one lemma
// with the query, ordered by descending overlap count. Lemmas are
// compared case-insensitively.
func (c *Catalog) ByLemmas(lemmas []string) []string {
	query := make(map[string]bool, len(lemmas))
	for _, l := range lemmas {
		query[strings.ToLower(l)] = true
	}

	type match struct {
		key     string
		overlap int
	}
	var matches []match
	for _, key := range c.order {
		e := c.entries[key]
		overlap := 0
		for _, l := range e.lemmas {
			if query[strings.ToLower(l)] {
				overlap++
			}
		}
		if overlap > 0 {
			matches = append(matches, match{key: key, overlap: overlap})
		}
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].overlap > matches[j].overlap
	})

	keys := make([]string, 0, len(matches))
	for _, m := range matches {
		keys = append(keys, m.key)
	}
	return keys
}

// Len returns the number of catalog entries.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Clear drops all entries.
func (c *Catalog) Clear() {
	c.entries = make(map[string]*entry)
	c.order = nil
}

// Entries exports all entries in insertion order for snapshotting.
func (c *Catalog) Entries() []core.ChunkEntry {
	out := make([]core.ChunkEntry, 0, len(c.order))
	for _, key := range c.order {
		e := c.entries[key]
		stats := e.stats
		stats.Examples = append([]string(nil), e.stats.Examples...)
		out = append(out, core.ChunkEntry{
			Key:     key,
			Lemmas:  append([]string(nil), e.lemmas...),
			Pattern: e.pattern,
			Stats:   stats,
		})
	}
	return out
}

// RestoreEntries replaces the catalog contents with snapshot entries.
func (c *Catalog) RestoreEntries(entries []core.ChunkEntry) {
	c.Clear()
	for i := range entries {
		in := &entries[i]
		stats := in.Stats
		stats.Examples = append([]string(nil), in.Stats.Examples...)
		c.entries[in.Key] = &entry{
			lemmas:  append([]string(nil), in.Lemmas...),
			pattern: in.Pattern,
			stats:   stats,
		}
		c.order = append(c.order, in.Key)
	}
	c.logger.Info("restored catalog", "entries", len(entries))
}
