package catalog

import (
	"testing"
	"time"

	"github.com/CalmEddy/SimpleThink-v3-sub002/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock is a settable time source.
type fakeClock struct {
	now time.Time
}

func (f *fakeClock) Now() time.Time { return f.now }

func (f *fakeClock) Advance(d time.Duration) { f.now = f.now.Add(d) }

func newTestCatalog(t *testing.T) (*Catalog, *fakeClock) {
	t.Helper()
	clock := &fakeClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	c, err := New(WithClock(clock.Now))
	require.NoError(t, err)
	return c, clock
}

func chunk(text string, lemmas []string, pattern string) core.PhraseChunk {
	return core.PhraseChunk{Text: text, Lemmas: lemmas, PosPattern: pattern}
}

func TestRecordChunks(t *testing.T) {
	t.Run("creates entries and counts uses", func(t *testing.T) {
		c, _ := newTestCatalog(t)

		keys := c.RecordChunks([]core.PhraseChunk{
			chunk("quick fox", []string{"quick", "fox"}, "ADJ-NOUN"),
		})
		require.Equal(t, []string{"quick fox|ADJ-NOUN"}, keys)
		require.Equal(t, 1, c.Len())

		stats, ok := c.Stats("quick fox|ADJ-NOUN")
		require.True(t, ok)
		assert.Equal(t, 1, stats.Uses)
		assert.Equal(t, []string{"quick fox"}, stats.Examples)
	})

	t.Run("same key aggregates across phrases", func(t *testing.T) {
		c, _ := newTestCatalog(t)

		c.RecordChunks([]core.PhraseChunk{chunk("quick fox", []string{"quick", "fox"}, "ADJ-NOUN")})
		c.RecordChunks([]core.PhraseChunk{chunk("Quick Fox", []string{"Quick", "Fox"}, "ADJ-NOUN")})

		require.Equal(t, 1, c.Len())
		stats, ok := c.Stats("quick fox|ADJ-NOUN")
		require.True(t, ok)
		assert.Equal(t, 2, stats.Uses)
		// Distinct surface texts both survive as examples.
		assert.Equal(t, []string{"quick fox", "Quick Fox"}, stats.Examples)
	})

	t.Run("examples cap with FIFO eviction", func(t *testing.T) {
		c, _ := newTestCatalog(t)

		for _, text := range []string{"a fox", "b fox", "c fox", "d fox"} {
			c.RecordChunks([]core.PhraseChunk{chunk(text, []string{"fox"}, "NOUN")})
		}
		stats, ok := c.Stats("fox|NOUN")
		require.True(t, ok)
		assert.Equal(t, []string{"b fox", "c fox", "d fox"}, stats.Examples)
	})
}

func TestUpdateStats(t *testing.T) {
	c, _ := newTestCatalog(t)
	c.RecordChunks([]core.PhraseChunk{chunk("quick fox", []string{"quick", "fox"}, "ADJ-NOUN")})

	t.Run("adjusts likes and uses", func(t *testing.T) {
		ok := c.UpdateStats("quick fox|ADJ-NOUN", 1, 2)
		require.True(t, ok)
		stats, _ := c.Stats("quick fox|ADJ-NOUN")
		assert.Equal(t, 2, stats.Uses)
		assert.Equal(t, 2, stats.Likes)
	})

	t.Run("never drops counts below zero", func(t *testing.T) {
		ok := c.UpdateStats("quick fox|ADJ-NOUN", -10, -10)
		require.True(t, ok)
		stats, _ := c.Stats("quick fox|ADJ-NOUN")
		assert.Equal(t, 0, stats.Uses)
		assert.Equal(t, 0, stats.Likes)
	})

	t.Run("unknown key is a no-op", func(t *testing.T) {
		assert.False(t, c.UpdateStats("missing|NOUN", 1, 1))
		assert.Equal(t, 1, c.Len())
	})
}

func TestScore(t *testing.T) {
	c, clock := newTestCatalog(t)
	c.RecordChunks([]core.PhraseChunk{chunk("quick fox", []string{"quick", "fox"}, "ADJ-NOUN")})
	key := "quick fox|ADJ-NOUN"

	t.Run("fresh entry gets the full recency bonus", func(t *testing.T) {
		assert.InDelta(t, 2.0, c.Score(key), 1e-9) // 1 use + bonus 1
	})

	t.Run("bonus decays linearly", func(t *testing.T) {
		clock.Advance(15 * 24 * time.Hour)
		assert.InDelta(t, 1.5, c.Score(key), 1e-9)
	})

	t.Run("bonus floors at zero past the window", func(t *testing.T) {
		clock.Advance(45 * 24 * time.Hour)
		assert.InDelta(t, 1.0, c.Score(key), 1e-9)
	})

	t.Run("unknown key scores zero", func(t *testing.T) {
		assert.Zero(t, c.Score("missing|NOUN"))
	})
}

func TestTopKeys(t *testing.T) {
	c, clock := newTestCatalog(t)

	c.RecordChunks([]core.PhraseChunk{chunk("old chunk", []string{"old"}, "ADJ")})
	clock.Advance(40 * 24 * time.Hour)
	c.RecordChunks([]core.PhraseChunk{chunk("new chunk", []string{"new"}, "ADJ")})
	c.UpdateStats("old chunk|ADJ", 0, 3)

	t.Run("orders by score descending", func(t *testing.T) {
		// old: 1 use + 3 likes + bonus 1 (refreshed by the update) = 5
		// new: 1 use + bonus 1 = 2
		assert.Equal(t, []string{"old chunk|ADJ", "new chunk|ADJ"}, c.TopKeys(10))
	})

	t.Run("truncates to the limit", func(t *testing.T) {
		assert.Equal(t, []string{"old chunk|ADJ"}, c.TopKeys(1))
	})

	t.Run("equal scores keep insertion order", func(t *testing.T) {
		c, _ := newTestCatalog(t)
		c.RecordChunks([]core.PhraseChunk{
			chunk("first", []string{"first"}, "ADJ"),
			chunk("second", []string{"second"}, "ADJ"),
		})
		assert.Equal(t, []string{"first|ADJ", "second|ADJ"}, c.TopKeys(10))
	})

	t.Run("non-positive limit returns nothing", func(t *testing.T) {
		assert.Nil(t, c.TopKeys(0))
	})
}

func TestByPattern(t *testing.T) {
	c, _ := newTestCatalog(t)
	c.RecordChunks([]core.PhraseChunk{
		chunk("quick fox", []string{"quick", "fox"}, "ADJ-NOUN"),
		chunk("dog run", []string{"dog", "run"}, "NOUN-VERB|past"),
		chunk("red car", []string{"red", "car"}, "ADJ-NOUN"),
	})

	assert.Equal(t, []string{"quick fox|ADJ-NOUN", "red car|ADJ-NOUN"}, c.ByPattern("ADJ-NOUN"))
	assert.Equal(t, []string{"dog run|NOUN-VERB|past"}, c.ByPattern("NOUN-VERB|past"))
	assert.Empty(t, c.ByPattern("VERB"))
}

func TestByLemmas(t *testing.T) {
	c, _ := newTestCatalog(t)
	c.RecordChunks([]core.PhraseChunk{
		chunk("quick fox", []string{"quick", "fox"}, "ADJ-NOUN"),
		chunk("quick brown fox", []string{"quick", "brown", "fox"}, "ADJ-ADJ-NOUN"),
		chunk("red car", []string{"red", "car"}, "ADJ-NOUN"),
	})

	t.Run("orders by overlap count", func(t *testing.T) {
		keys := c.ByLemmas([]string{"Quick", "FOX"})
		assert.Equal(t, []string{"quick fox|ADJ-NOUN", "quick brown fox|ADJ-ADJ-NOUN"}, keys)
	})

	t.Run("no overlap yields nothing", func(t *testing.T) {
		assert.Empty(t, c.ByLemmas([]string{"zebra"}))
	})
}

func TestEntriesRoundTrip(t *testing.T) {
	c, clock := newTestCatalog(t)
	c.RecordChunks([]core.PhraseChunk{
		chunk("quick fox", []string{"quick", "fox"}, "ADJ-NOUN"),
		chunk("dog run", []string{"dog", "run"}, "NOUN-VERB"),
	})
	c.UpdateStats("dog run|NOUN-VERB", 0, 2)

	entries := c.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "quick fox|ADJ-NOUN", entries[0].Key)
	assert.Equal(t, 2, entries[1].Stats.Likes)

	restored, err := New(WithClock(clock.Now))
	require.NoError(t, err)
	restored.RestoreEntries(entries)

	assert.Equal(t, 2, restored.Len())
	stats, ok := restored.Stats("dog run|NOUN-VERB")
	require.True(t, ok)
	assert.Equal(t, 2, stats.Likes)
	assert.Equal(t, c.TopKeys(10), restored.TopKeys(10))
}

func TestClear(t *testing.T) {
	c, _ := newTestCatalog(t)
	c.RecordChunks([]core.PhraseChunk{chunk("quick fox", []string{"quick", "fox"}, "ADJ-NOUN")})
	c.Clear()
	assert.Zero(t, c.Len())
	assert.Empty(t, c.TopKeys(10))
}
