package retrieval

import (
	"context"
	"fmt"
	"testing"

	"github.com/CalmEddy/SimpleThink-v3-sub002/catalog"
	"github.com/CalmEddy/SimpleThink-v3-sub002/core"
	"github.com/CalmEddy/SimpleThink-v3-sub002/graph"
	"github.com/CalmEddy/SimpleThink-v3-sub002/ingestion"
	"github.com/CalmEddy/SimpleThink-v3-sub002/nlp/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixture ingests phrases through the real pipeline with the mock
// provider and returns the phrase ids keyed by input text.
func fixture(t *testing.T, texts ...string) (*Engine, *catalog.Catalog, map[string]core.ID) {
	t.Helper()

	g, err := graph.New()
	require.NoError(t, err)
	c, err := catalog.New()
	require.NoError(t, err)
	p, err := ingestion.NewPipeline(g, c, mock.NewProvider())
	require.NoError(t, err)

	ids := make(map[string]core.ID, len(texts))
	for _, text := range texts {
		result, err := p.IngestPhraseText(context.Background(), text)
		require.NoError(t, err)
		ids[text] = result.Phrase.Id
	}

	engine, err := NewEngine(g, c)
	require.NoError(t, err)
	return engine, c, ids
}

func TestSurfaceRelated(t *testing.T) {
	t.Run("ranks by lemma overlap plus pattern boost", func(t *testing.T) {
		engine, _, ids := fixture(t,
			"quick brown fox",
			"quick red fox",
			"big blue car",
		)

		result, err := engine.SurfaceRelated(ids["quick brown fox"], Options{})
		require.NoError(t, err)
		require.Len(t, result.RelatedPhrases, 2)

		// Two shared lemmas out of four: 0.5, plus the shared
		// ADJ-ADJ-NOUN pattern.
		first := result.RelatedPhrases[0]
		assert.Equal(t, ids["quick red fox"], first.Phrase.Id)
		assert.InDelta(t, 0.5, first.Overlap, 1e-9)
		assert.InDelta(t, 0.25, first.PatternBoost, 1e-9)
		assert.InDelta(t, 0.75, first.Score, 1e-9)

		// No shared lemmas, but the adjective-noun patterns match.
		second := result.RelatedPhrases[1]
		assert.Equal(t, ids["big blue car"], second.Phrase.Id)
		assert.Zero(t, second.Overlap)
		assert.InDelta(t, 0.25, second.Score, 1e-9)
	})

	t.Run("likes on shared chunk keys boost the score", func(t *testing.T) {
		engine, c, ids := fixture(t,
			"the quick fox",
			"a quick fox",
		)

		// Both phrases carry the "quick fox" bigram.
		ok := c.UpdateStats("quick fox|ADJ-NOUN", 0, 3)
		require.True(t, ok)

		result, err := engine.SurfaceRelated(ids["the quick fox"], Options{})
		require.NoError(t, err)
		require.Len(t, result.RelatedPhrases, 1)

		first := result.RelatedPhrases[0]
		assert.Equal(t, ids["a quick fox"], first.Phrase.Id)
		assert.InDelta(t, 0.5, first.Overlap, 1e-9)
		assert.InDelta(t, 0.3, first.LikeBoost, 1e-9)
		assert.InDelta(t, 1.05, first.Score, 1e-9)
	})

	t.Run("min overlap filters candidates", func(t *testing.T) {
		engine, _, ids := fixture(t,
			"quick brown fox",
			"quick red fox",
		)

		result, err := engine.SurfaceRelated(ids["quick brown fox"], Options{MinOverlap: 0.6})
		require.NoError(t, err)
		assert.Empty(t, result.RelatedPhrases)
	})

	t.Run("max results truncates after sorting", func(t *testing.T) {
		engine, _, ids := fixture(t,
			"quick brown fox",
			"quick red fox",
			"lazy brown fox",
			"old brown fox",
		)

		result, err := engine.SurfaceRelated(ids["quick brown fox"], Options{MaxResults: 2})
		require.NoError(t, err)
		require.Len(t, result.RelatedPhrases, 2)
		for _, r := range result.RelatedPhrases {
			assert.NotEqual(t, ids["quick brown fox"], r.Phrase.Id)
		}
	})

	t.Run("seed sharing nothing returns empty results", func(t *testing.T) {
		engine, _, ids := fixture(t,
			"zebra wolf",
			"quick brown fox",
		)

		result, err := engine.SurfaceRelated(ids["zebra wolf"], Options{})
		require.NoError(t, err)
		assert.Empty(t, result.RelatedPhrases)
		assert.Empty(t, result.TopChunks)
	})

	t.Run("unknown seed fails naming the id", func(t *testing.T) {
		engine, _, _ := fixture(t, "quick brown fox")

		missing := core.ID(12345)
		_, err := engine.SurfaceRelated(missing, Options{})
		require.ErrorIs(t, err, ErrPhraseNotFound)
		assert.Contains(t, err.Error(), fmt.Sprintf("%d", missing))
	})
}

func TestTopChunks(t *testing.T) {
	engine, c, ids := fixture(t,
		"quick brown fox",
		"quick red fox",
		"lazy brown fox",
	)

	// Make one chunk from a related phrase clearly the best.
	require.True(t, c.UpdateStats("red fox|ADJ-NOUN", 0, 5))

	result, err := engine.SurfaceRelated(ids["quick brown fox"], Options{})
	require.NoError(t, err)
	require.NotEmpty(t, result.RelatedPhrases)
	require.NotEmpty(t, result.TopChunks)

	assert.LessOrEqual(t, len(result.TopChunks), 5)
	assert.Equal(t, "red fox|ADJ-NOUN", result.TopChunks[0].Key)
	assert.Equal(t, 5, result.TopChunks[0].Stats.Likes)

	// Scores are non-increasing and keys unique.
	seen := map[string]bool{}
	for i, chunk := range result.TopChunks {
		assert.False(t, seen[chunk.Key])
		seen[chunk.Key] = true
		if i > 0 {
			assert.GreaterOrEqual(t, result.TopChunks[i-1].Score, chunk.Score)
		}
	}
}
