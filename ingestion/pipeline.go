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


package ingestion

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/CalmEddy/SimpleThink-v3-sub002/catalog"
	"github.com/CalmEddy/SimpleThink-v3-sub002/core"
	"github.com/CalmEddy/SimpleThink-v3-sub002/graph"
	"github.com/CalmEddy/SimpleThink-v3-sub002/nlp"
)

const (
	// DefaultMinWindow and DefaultMaxWindow bound extracted chunk sizes.
	DefaultMinWindow = 2
	DefaultMaxWindow = 4
)

// Pipeline ingests phrase text into a graph and a chunk catalog using
// an external tagging/analysis provider.
type Pipeline struct {
	graph    *graph.Graph
	catalog  *catalog.Catalog
	provider nlp.Provider

	minWindow int
	maxWindow int

	logger *slog.Logger
}

// Result is the outcome of a single phrase ingestion.
type Result struct {
	Phrase *core.PhraseNode
	Words  []*core.WordNode
	Chunks []core.PhraseChunk
}

// Option configures a Pipeline.
type Option func(*Pipeline) error

// WithChunkWindow sets the inclusive bounds on extracted chunk sizes.
func WithChunkWindow(min, max int) Option {
	return func(p *Pipeline) error {
		if min < 2 || max < min {
			return fmt.Errorf("%w: min=%d max=%d", ErrInvalidWindow, min, max)
		}
		p.minWindow = min
		p.maxWindow = max
		return nil
	}
}

// WithLogger sets the logger used by the pipeline.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) error {
		if logger == nil {
			return fmt.Errorf("nil logger")
		}
		p.logger = logger
		return nil
	}
}

// NewPipeline creates an ingestion pipeline over the given graph,
// catalog and capability provider.
func NewPipeline(g *graph.Graph, c *catalog.Catalog, provider nlp.Provider, opts ...Option) (*Pipeline, error) {
	if g == nil {
		return nil, fmt.Errorf("nil graph")
	}
	if c == nil {
		return nil, fmt.Errorf("nil catalog")
	}
	if provider == nil {
		return nil, fmt.Errorf("nil provider")
	}

	p := &Pipeline{
		graph:     g,
		catalog:   c,
		provider:  provider,
		minWindow: DefaultMinWindow,
		maxWindow: DefaultMaxWindow,
		logger:    slog.Default().With("component", "ingestion"),
	}
	for _, opt := range opts {
		if err := opt(p); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// unit is a (possibly merged) token the phrase links and chunks are
// extracted from.
type unit struct {
	text   string
	lemma  string
	pos    core.POS
	morph  string
	wordID core.ID
}

// IngestPhraseText runs the full pipeline for one phrase. Analysis
// failures for individual lemmas are non-fatal: the word falls back to
// its single observed tag and ingestion proceeds. There is no rollback;
// words upserted before a later failure remain in the graph.
func (p *Pipeline) IngestPhraseText(ctx context.Context, text string) (*Result, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyPhrase
	}

	tokens, err := p.provider.Tagger().TagText(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("tagging phrase: %w", err)
	}
	if len(tokens) == 0 {
		return nil, ErrNoTokens
	}

	result := &Result{}
	tester := p.provider.ContextTester()

	// Per-token upserts come first so every observed surface word exists
	// in the graph even when a later step fails.
	for _, tok := range tokens {
		analysis := nlp.AnalyzeWordPOS(ctx, tester, tok.Lemma, tok.POS)
		word, err := p.graph.UpsertWord(tok.Text, tok.Lemma, analysis.Tags, tok.POS)
		if err != nil {
			return nil, fmt.Errorf("upserting word %q: %w", tok.Lemma, err)
		}
		result.Words = append(result.Words, word)
	}

	units, err := p.mergeProperNouns(tokens)
	if err != nil {
		return nil, err
	}
	for i := range units {
		if units[i].wordID != 0 {
			continue
		}
		// A merged name run gets its own word node so the phrase can
		// link the run as one unit.
		word, err := p.graph.UpsertWord(units[i].text, units[i].lemma, nil, core.POSPropn)
		if err != nil {
			return nil, fmt.Errorf("upserting merged name %q: %w", units[i].lemma, err)
		}
		units[i].wordID = word.Id
		result.Words = append(result.Words, word)
	}

	chunks := p.extractChunks(units)
	keys := make([]string, 0, len(chunks))
	for i := range chunks {
		keys = append(keys, chunks[i].Key())
	}

	wordIds := make([]core.ID, 0, len(units))
	for _, u := range units {
		wordIds = append(wordIds, u.wordID)
	}
	phrase, err := p.graph.AddPhrase(text, wordIds, keys)
	if err != nil {
		return nil, fmt.Errorf("adding phrase: %w", err)
	}
	result.Phrase = phrase

	for i := range chunks {
		chunks[i].PhraseId = phrase.Id
	}
	p.catalog.RecordChunks(chunks)
	result.Chunks = chunks

	p.logger.Debug("ingested phrase",
		"phrase", phrase.Id,
		"units", len(units),
		"chunks", len(chunks))
	return result, nil
}

// mergeProperNouns collapses adjacent proper-noun tokens into single
// units whose surface text and lemma are space-joined. Runs before
// chunk extraction so a name like "New York Times" is one candidate
// unit, not three.
func (p *Pipeline) mergeProperNouns(tokens []nlp.TaggedToken) ([]unit, error) {
	units := make([]unit, 0, len(tokens))
	for i := 0; i < len(tokens); {
		tok := tokens[i]
		if tok.POS != core.POSPropn {
			word, ok := p.graph.WordByLemma(tok.Lemma)
			if !ok {
				return nil, fmt.Errorf("%w: %q", graph.ErrWordNotFound, tok.Lemma)
			}
			units = append(units, unit{
				text:   tok.Text,
				lemma:  word.Lemma,
				pos:    tok.POS,
				morph:  tok.Morph,
				wordID: word.Id,
			})
			i++
			continue
		}

		j := i
		for j < len(tokens) && tokens[j].POS == core.POSPropn {
			j++
		}
		if j-i == 1 {
			word, ok := p.graph.WordByLemma(tok.Lemma)
			if !ok {
				return nil, fmt.Errorf("%w: %q", graph.ErrWordNotFound, tok.Lemma)
			}
			units = append(units, unit{
				text:   tok.Text,
				lemma:  word.Lemma,
				pos:    tok.POS,
				morph:  tok.Morph,
				wordID: word.Id,
			})
		} else {
			texts := make([]string, 0, j-i)
			lemmas := make([]string, 0, j-i)
			for _, run := range tokens[i:j] {
				texts = append(texts, run.Text)
				lemmas = append(lemmas, run.Lemma)
			}
			units = append(units, unit{
				text:  strings.Join(texts, " "),
				lemma: strings.Join(lemmas, " "),
				pos:   core.POSPropn,
				morph: core.MorphBase,
			})
		}
		i = j
	}
	return units, nil
}

// extractChunks emits every contiguous window of units within the
// configured size bounds.
func (p *Pipeline) extractChunks(units []unit) []core.PhraseChunk {
	var chunks []core.PhraseChunk
	for size := p.minWindow; size <= p.maxWindow; size++ {
		if size > len(units) {
			break
		}
		for start := 0; start+size <= len(units); start++ {
			window := units[start : start+size]
			texts := make([]string, 0, size)
			lemmas := make([]string, 0, size)
			tags := make([]core.POS, 0, size)
			morphs := make([]string, 0, size)
			for _, u := range window {
				texts = append(texts, u.text)
				lemmas = append(lemmas, u.lemma)
				tags = append(tags, u.pos)
				morphs = append(morphs, u.morph)
			}
			chunks = append(chunks, core.PhraseChunk{
				Text:       strings.Join(texts, " "),
				Lemmas:     lemmas,
				PosPattern: core.BuildPosPattern(tags, morphs),
			})
		}
	}
	return chunks
}
