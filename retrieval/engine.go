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


package retrieval

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/CalmEddy/SimpleThink-v3-sub002/catalog"
	"github.com/CalmEddy/SimpleThink-v3-sub002/core"
	"github.com/CalmEddy/SimpleThink-v3-sub002/graph"
)

const (
	// DefaultMaxResults caps returned related phrases.
	DefaultMaxResults = 10

	// patternBoost is added once when the candidate shares any chunk
	// POS pattern with the seed.
	patternBoost = 0.25

	// likeBoostPerLike scales catalog likes on shared chunk keys.
	likeBoostPerLike = 0.1

	// topChunkLimit caps the chunks reported alongside related phrases.
	topChunkLimit = 5
)

// Options tune a retrieval call. The zero value means defaults.
type Options struct {
	// MaxResults caps related phrases; <= 0 means DefaultMaxResults.
	MaxResults int
	// MinOverlap is the inclusive lower bound on the lemma overlap
	// score, in [0,1].
	MinOverlap float64
}

// RelatedPhrase is one ranked result with its score breakdown.
type RelatedPhrase struct {
	Phrase       *core.PhraseNode
	Score        float64
	Overlap      float64
	PatternBoost float64
	LikeBoost    float64
}

// RankedChunk is a catalog-scored chunk shared among related phrases.
type RankedChunk struct {
	Key   string
	Score float64
	Stats core.ChunkStats
}

// Related is the result of a retrieval call. Both slices may be empty;
// a seed that shares nothing with the rest of the graph is not an
// error.
type Related struct {
	RelatedPhrases []RelatedPhrase
	TopChunks      []RankedChunk
}

// Engine ranks phrases against a seed phrase.
type Engine struct {
	graph   *graph.Graph
	catalog *catalog.Catalog
	logger  *slog.Logger
}

// NewEngine creates a retrieval engine over the graph and catalog.
func NewEngine(g *graph.Graph, c *catalog.Catalog) (*Engine, error) {
	if g == nil {
		return nil, fmt.Errorf("nil graph")
	}
	if c == nil {
		return nil, fmt.Errorf("nil catalog")
	}
	return &Engine{
		graph:   g,
		catalog: c,
		logger:  slog.Default().With("component", "retrieval"),
	}, nil
}

// SurfaceRelated ranks all other phrases against the seed. The score
// is the plain sum of lemma overlap, pattern boost and like boost; it
// is deliberately not renormalized. Candidates below MinOverlap, and
// candidates whose total score is zero, are dropped.
func (e *Engine) SurfaceRelated(seedID core.ID, opts Options) (*Related, error) {
	seed, ok := e.graph.PhraseByID(seedID)
	if !ok {
		return nil, fmt.Errorf("%w: id %d", ErrPhraseNotFound, seedID)
	}

	maxResults := opts.MaxResults
	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}

	seedLemmas := e.lemmaSet(seed)
	seedPatterns := patternSet(seed.ChunkKeys)
	seedKeys := keySet(seed.ChunkKeys)

	var related []RelatedPhrase
	for _, candidate := range e.graph.Phrases() {
		if candidate.Id == seedID {
			continue
		}

		overlap := jaccard(seedLemmas, e.lemmaSet(candidate))
		if overlap < opts.MinOverlap {
			continue
		}

		var pBoost float64
		for pattern := range patternSet(candidate.ChunkKeys) {
			if seedPatterns[pattern] {
				pBoost = patternBoost
				break
			}
		}

		var lBoost float64
		for _, key := range candidate.ChunkKeys {
			if !seedKeys[key] {
				continue
			}
			if stats, ok := e.catalog.Stats(key); ok {
				lBoost += likeBoostPerLike * float64(stats.Likes)
			}
		}

		score := overlap + pBoost + lBoost
		if score == 0 {
			continue
		}
		related = append(related, RelatedPhrase{
			Phrase:       candidate,
			Score:        score,
			Overlap:      overlap,
			PatternBoost: pBoost,
			LikeBoost:    lBoost,
		})
	}

	sort.SliceStable(related, func(i, j int) bool {
		return related[i].Score > related[j].Score
	})
	if len(related) > maxResults {
		related = related[:maxResults]
	}

	result := &Related{
		RelatedPhrases: related,
		TopChunks:      e.topChunks(related),
	}
	e.logger.Debug("surfaced related phrases",
		"seed", seedID,
		"related", len(result.RelatedPhrases),
		"chunks", len(result.TopChunks))
	return result, nil
}

// topChunks gathers chunk keys from the related phrases, deduplicates
// and ranks them with the catalog scoring formula.
func (e *Engine) topChunks(related []RelatedPhrase) []RankedChunk {
	seen := make(map[string]bool)
	var chunks []RankedChunk
	for _, r := range related {
		for _, key := range r.Phrase.ChunkKeys {
			if seen[key] {
				continue
			}
			seen[key] = true
			stats, ok := e.catalog.Stats(key)
			if !ok {
				continue
			}
			chunks = append(chunks, RankedChunk{
				Key:   key,
				Score: e.catalog.Score(key),
				Stats: stats,
			})
		}
	}
	sort.SliceStable(chunks, func(i, j int) bool {
		return chunks[i].Score > chunks[j].Score
	})
	if len(chunks) > topChunkLimit {
		chunks = chunks[:topChunkLimit]
	}
	return chunks
}

// lemmaSet resolves the phrase's word references to their lemmas.
// Dangling references are skipped.
func (e *Engine) lemmaSet(phrase *core.PhraseNode) map[string]bool {
	set := make(map[string]bool, len(phrase.WordIds))
	for _, id := range phrase.WordIds {
		if word, ok := e.graph.WordByID(id); ok {
			set[word.Lemma] = true
		}
	}
	return set
}

// jaccard is intersection over union, 0 when either set is empty.
func jaccard(a, b map[string]bool) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	intersection := 0
	for lemma := range a {
		if b[lemma] {
			intersection++
		}
	}
	union := len(a) + len(b) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}

// patternSet extracts the POS-pattern segment from each chunk key.
func patternSet(keys []string) map[string]bool {
	set := make(map[string]bool, len(keys))
	for _, key := range keys {
		if _, pattern, ok := strings.Cut(key, "|"); ok {
			set[pattern] = true
		}
	}
	return set
}

func keySet(keys []string) map[string]bool {
	set := make(map[string]bool, len(keys))
	for _, key := range keys {
		set[key] = true
	}
	return set
}
