package graph

import (
	"testing"
	"time"

	"github.com/CalmEddy/SimpleThink-v3-sub002/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGraph(t *testing.T) *Graph {
	t.Helper()
	g, err := New()
	require.NoError(t, err)
	return g
}

func TestUpsertWord(t *testing.T) {
	t.Run("creates a word on first sight", func(t *testing.T) {
		g := newTestGraph(t)

		word, err := g.UpsertWord("Fox", "fox", nil, core.POSNoun)
		require.NoError(t, err)
		assert.Equal(t, "fox", word.Lemma)
		assert.Equal(t, "Fox", word.Text)
		assert.Equal(t, []core.POS{core.POSNoun}, word.PosPotential)
		assert.Equal(t, 1, word.PosObserved[core.POSNoun])
		assert.Equal(t, core.POSNoun, word.PrimaryPOS)
		assert.False(t, word.IsPolysemousPOS())
	})

	t.Run("same lemma resolves to the same node", func(t *testing.T) {
		g := newTestGraph(t)

		first, err := g.UpsertWord("fox", "fox", nil, core.POSNoun)
		require.NoError(t, err)
		second, err := g.UpsertWord("Fox", "FOX", nil, core.POSNoun)
		require.NoError(t, err)

		assert.Equal(t, first.Id, second.Id)
		assert.Equal(t, 1, g.Len(core.NodeKindWord))
		assert.Equal(t, 2, second.PosObserved[core.POSNoun])
	})

	t.Run("potential grows monotonically in first-seen order", func(t *testing.T) {
		g := newTestGraph(t)

		word, err := g.UpsertWord("run", "run", []core.POS{core.POSVerb, core.POSNoun}, core.POSVerb)
		require.NoError(t, err)
		assert.Equal(t, []core.POS{core.POSVerb, core.POSNoun}, word.PosPotential)

		// A later observation without candidates must not shrink the set.
		word, err = g.UpsertWord("run", "run", nil, core.POSNoun)
		require.NoError(t, err)
		assert.Equal(t, []core.POS{core.POSVerb, core.POSNoun}, word.PosPotential)
		assert.True(t, word.IsPolysemousPOS())

		// New tags append after the existing ones.
		word, err = g.UpsertWord("run", "run", []core.POS{core.POSAdj}, core.POSVerb)
		require.NoError(t, err)
		assert.Equal(t, []core.POS{core.POSVerb, core.POSNoun, core.POSAdj}, word.PosPotential)
	})

	t.Run("primary follows observation counts with first-seen tie-break", func(t *testing.T) {
		g := newTestGraph(t)

		word, err := g.UpsertWord("run", "run", []core.POS{core.POSVerb, core.POSNoun}, core.POSVerb)
		require.NoError(t, err)
		assert.Equal(t, core.POSVerb, word.PrimaryPOS)

		// One observation each: the first-seen tag keeps primary.
		word, err = g.UpsertWord("run", "run", nil, core.POSNoun)
		require.NoError(t, err)
		assert.Equal(t, core.POSVerb, word.PrimaryPOS)

		// Noun pulls ahead.
		word, err = g.UpsertWord("run", "run", nil, core.POSNoun)
		require.NoError(t, err)
		assert.Equal(t, core.POSNoun, word.PrimaryPOS)
	})

	t.Run("rejects empty lemma and unknown tags", func(t *testing.T) {
		g := newTestGraph(t)

		_, err := g.UpsertWord("fox", "  ", nil, core.POSNoun)
		assert.ErrorIs(t, err, core.ErrEmptyLemma)

		_, err = g.UpsertWord("fox", "fox", nil, core.POS("BOGUS"))
		assert.ErrorIs(t, err, core.ErrUnknownPOS)

		_, err = g.UpsertWord("fox", "fox", []core.POS{core.POS("BOGUS")}, core.POSNoun)
		assert.ErrorIs(t, err, core.ErrUnknownPOS)
	})
}

func TestAddPhrase(t *testing.T) {
	t.Run("idempotent on normalized text", func(t *testing.T) {
		g := newTestGraph(t)

		w, err := g.UpsertWord("fox", "fox", nil, core.POSNoun)
		require.NoError(t, err)

		first, err := g.AddPhrase("the  quick fox", []core.ID{w.Id}, []string{"quick fox|ADJ-NOUN"})
		require.NoError(t, err)
		assert.Equal(t, "the quick fox", first.Text)

		second, err := g.AddPhrase("The quick fox", []core.ID{w.Id}, []string{"quick fox|ADJ-NOUN", "the quick|DET-ADJ"})
		require.NoError(t, err)

		assert.Equal(t, first.Id, second.Id)
		assert.Equal(t, 1, g.Len(core.NodeKindPhrase))
		assert.Equal(t, []string{"quick fox|ADJ-NOUN", "the quick|DET-ADJ"}, second.ChunkKeys)
	})

	t.Run("rejects empty text", func(t *testing.T) {
		g := newTestGraph(t)
		_, err := g.AddPhrase("   ", nil, nil)
		assert.ErrorIs(t, err, core.ErrEmptyText)
	})
}

func TestAddTopic(t *testing.T) {
	g := newTestGraph(t)

	topic, err := g.AddTopic("city life", "session-1", []string{"city", "life"})
	require.NoError(t, err)
	assert.Equal(t, "session-1", topic.SessionRef)

	// Same text in another session is a distinct topic.
	other, err := g.AddTopic("city life", "session-2", []string{"city", "life"})
	require.NoError(t, err)
	assert.NotEqual(t, topic.Id, other.Id)
	assert.Equal(t, 2, g.Len(core.NodeKindTopic))
}

func TestLookups(t *testing.T) {
	g := newTestGraph(t)

	w, err := g.UpsertWord("Fox", "fox", nil, core.POSNoun)
	require.NoError(t, err)
	p, err := g.AddPhrase("quick fox", []core.ID{w.Id}, nil)
	require.NoError(t, err)

	t.Run("word by lemma is case-insensitive", func(t *testing.T) {
		found, ok := g.WordByLemma("FOX")
		require.True(t, ok)
		assert.Equal(t, w.Id, found.Id)

		_, ok = g.WordByLemma("wolf")
		assert.False(t, ok)
	})

	t.Run("phrase by id", func(t *testing.T) {
		found, ok := g.PhraseByID(p.Id)
		require.True(t, ok)
		assert.Equal(t, "quick fox", found.Text)

		_, ok = g.PhraseByID(core.ID(42))
		assert.False(t, ok)
	})
}

func TestInsertionOrder(t *testing.T) {
	g := newTestGraph(t)

	for _, lemma := range []string{"zebra", "apple", "mango"} {
		_, err := g.UpsertWord(lemma, lemma, nil, core.POSNoun)
		require.NoError(t, err)
	}

	words := g.Words()
	require.Len(t, words, 3)
	assert.Equal(t, "zebra", words[0].Lemma)
	assert.Equal(t, "apple", words[1].Lemma)
	assert.Equal(t, "mango", words[2].Lemma)

	ids := g.NodesByType(core.NodeKindWord)
	require.Len(t, ids, 3)
	assert.Equal(t, words[0].Id, ids[0])
}

func TestSnapshotRoundTrip(t *testing.T) {
	fixed := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	g, err := New(WithClock(func() time.Time { return fixed }))
	require.NoError(t, err)

	w, err := g.UpsertWord("run", "run", []core.POS{core.POSVerb, core.POSNoun}, core.POSVerb)
	require.NoError(t, err)
	_, err = g.AddPhrase("dogs run fast", []core.ID{w.Id}, []string{"dog run|NOUN-VERB"})
	require.NoError(t, err)
	_, err = g.AddTopic("exercise", "s1", []string{"exercise"})
	require.NoError(t, err)

	snap := g.Snapshot()
	assert.Equal(t, core.SnapshotVersion, snap.Version)
	assert.Equal(t, fixed, snap.SavedAt)
	require.Len(t, snap.Words, 1)
	require.Len(t, snap.Phrases, 1)
	require.Len(t, snap.Topics, 1)

	// Snapshot copies are detached from later mutations.
	_, err = g.UpsertWord("run", "run", nil, core.POSNoun)
	require.NoError(t, err)
	assert.Equal(t, 1, snap.Words[0].PosObserved[core.POSVerb])
	assert.NotContains(t, snap.Words[0].PosObserved, core.POSNoun)

	restored := newTestGraph(t)
	require.NoError(t, restored.RestoreSnapshot(snap))

	word, ok := restored.WordByLemma("run")
	require.True(t, ok)
	assert.Equal(t, []core.POS{core.POSVerb, core.POSNoun}, word.PosPotential)
	assert.Equal(t, core.POSVerb, word.PrimaryPOS)
	assert.Equal(t, 1, restored.Len(core.NodeKindPhrase))
	assert.Equal(t, 1, restored.Len(core.NodeKindTopic))

	// Upserting into the restored graph continues the merge.
	word, err = restored.UpsertWord("run", "run", nil, core.POSNoun)
	require.NoError(t, err)
	assert.Equal(t, 2, word.PosObserved[core.POSVerb]+word.PosObserved[core.POSNoun])
}

func TestRestoreSnapshotNil(t *testing.T) {
	g := newTestGraph(t)
	assert.ErrorIs(t, g.RestoreSnapshot(nil), ErrNilSnapshot)
}

func TestReset(t *testing.T) {
	g := newTestGraph(t)
	_, err := g.UpsertWord("fox", "fox", nil, core.POSNoun)
	require.NoError(t, err)

	g.Reset()
	assert.Equal(t, 0, g.Len(core.NodeKindWord))
	_, ok := g.WordByLemma("fox")
	assert.False(t, ok)
}
