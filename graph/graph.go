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

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/CalmEddy/SimpleThink-v3-sub002/core"
)

// Graph holds all nodes in memory. Word nodes are keyed by their
// case-normalized lemma; phrase and topic identities derive from their
// normalized text, so re-adding the same content is idempotent.
type Graph struct {
	words   map[core.ID]*core.WordNode
	phrases map[core.ID]*core.PhraseNode
	topics  map[core.ID]*core.TopicNode

	lemmaIndex map[string]core.ID

	// order keeps per-kind insertion order so listing does not require
	// a full scan plus sort.
	order map[core.NodeKind][]core.ID

	logger *slog.Logger
	clock  func() time.Time
}

// Option configures a Graph.
type Option func(*Graph) error

// WithLogger sets the logger used by the graph.
func WithLogger(logger *slog.Logger) Option {
	return func(g *Graph) error {
		if logger == nil {
			return fmt.Errorf("nil logger")
		}
		g.logger = logger
		return nil
	}
}

// WithClock overrides the time source. Intended for tests.
func WithClock(clock func() time.Time) Option {
	return func(g *Graph) error {
		if clock == nil {
			return fmt.Errorf("nil clock")
		}
		g.clock = clock
		return nil
	}
}

// New creates an empty graph.
func New(opts ...Option) (*Graph, error) {
	g := &Graph{
		logger: slog.Default().With("component", "graph"),
		clock:  time.Now,
	}
	g.init()

	for _, opt := range opts {
		if err := opt(g); err != nil {
			return nil, err
		}
	}
	return g, nil
}

func (g *Graph) init() {
	g.words = make(map[core.ID]*core.WordNode)
	g.phrases = make(map[core.ID]*core.PhraseNode)
	g.topics = make(map[core.ID]*core.TopicNode)
	g.lemmaIndex = make(map[string]core.ID)
	g.order = map[core.NodeKind][]core.ID{
		core.NodeKindWord:   nil,
		core.NodeKindPhrase: nil,
		core.NodeKindTopic:  nil,
	}
}

// normalizeLemma produces the index key for a lemma.
func normalizeLemma(lemma string) string {
	return strings.ToLower(strings.TrimSpace(lemma))
}

// normalizePhraseText collapses internal whitespace and trims the text.
func normalizePhraseText(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// UpsertWord records an observation of a word. On first sight the node
// is created; afterwards the observation is merged in:
//
//   - Text and POS reflect the most recent observation.
//   - PosPotential grows by the union of candidates and the observed
//     tag, preserving first-seen order. Tags are never removed.
//   - PosObserved counts the observed tag.
//   - PrimaryPOS is the most-observed tag; ties resolve to the tag
//     seen first.
func (g *Graph) UpsertWord(text, lemma string, candidates []core.POS, observed core.POS) (*core.WordNode, error) {
	key := normalizeLemma(lemma)
	if key == "" {
		return nil, core.ErrEmptyLemma
	}
	if !core.IsValidPOS(observed) {
		return nil, fmt.Errorf("%w: %q", core.ErrUnknownPOS, observed)
	}
	for _, tag := range candidates {
		if !core.IsValidPOS(tag) {
			return nil, fmt.Errorf("%w: %q", core.ErrUnknownPOS, tag)
		}
	}

	now := g.clock()
	id, ok := g.lemmaIndex[key]
	if !ok {
		word := &core.WordNode{
			Id:          core.IDFromContent("word|" + key),
			Text:        text,
			Lemma:       key,
			POS:         []core.POS{observed},
			PosObserved: map[core.POS]int{observed: 1},
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		word.PosPotential = mergePotential(nil, candidates, observed)
		word.PrimaryPOS = primaryPOS(word)

		g.words[word.Id] = word
		g.lemmaIndex[key] = word.Id
		g.order[core.NodeKindWord] = append(g.order[core.NodeKindWord], word.Id)
		g.logger.Debug("created word", "lemma", key, "id", word.Id)
		return word, nil
	}

	word := g.words[id]
	word.Text = text
	word.POS = []core.POS{observed}
	word.PosPotential = mergePotential(word.PosPotential, candidates, observed)
	if word.PosObserved == nil {
		word.PosObserved = make(map[core.POS]int)
	}
	word.PosObserved[observed]++
	word.PrimaryPOS = primaryPOS(word)
	word.UpdatedAt = now
	return word, nil
}

// mergePotential unions new tags into the potential set, keeping
// first-seen order. The observed tag joins the set last so explicit
// candidate ordering wins on a fresh node.
func mergePotential(existing, candidates []core.POS, observed core.POS) []core.POS {
	merged := existing
	seen := make(map[core.POS]bool, len(existing)+len(candidates)+1)
	for _, tag := range existing {
		seen[tag] = true
	}
	for _, tag := range candidates {
		if !seen[tag] {
			seen[tag] = true
			merged = append(merged, tag)
		}
	}
	if !seen[observed] {
		merged = append(merged, observed)
	}
	return merged
}

// primaryPOS picks the most-observed tag, breaking ties by first-seen
// order in the potential list.
func primaryPOS(word *core.WordNode) core.POS {
	best := word.PrimaryPOS
	bestCount := -1
	for _, tag := range word.PosPotential {
		if count := word.PosObserved[tag]; count > bestCount {
			best = tag
			bestCount = count
		}
	}
	return best
}

// AddPhrase registers a phrase node. Identity derives from the
// whitespace-normalized, lowercased text, so adding the same phrase
// twice yields the same node; chunk keys from later calls are merged
// into the existing node.
func (g *Graph) AddPhrase(text string, wordIds []core.ID, chunkKeys []string) (*core.PhraseNode, error) {
	normalized := normalizePhraseText(text)
	if normalized == "" {
		return nil, core.ErrEmptyText
	}

	id := core.IDFromContent("phrase|" + strings.ToLower(normalized))
	if existing, ok := g.phrases[id]; ok {
		existing.ChunkKeys = mergeKeys(existing.ChunkKeys, chunkKeys)
		return existing, nil
	}

	phrase := &core.PhraseNode{
		Id:        id,
		Text:      normalized,
		WordIds:   append([]core.ID(nil), wordIds...),
		ChunkKeys: append([]string(nil), chunkKeys...),
		CreatedAt: g.clock(),
	}
	g.phrases[id] = phrase
	g.order[core.NodeKindPhrase] = append(g.order[core.NodeKindPhrase], id)
	g.logger.Debug("created phrase", "text", normalized, "id", id, "words", len(wordIds))
	return phrase, nil
}

func mergeKeys(existing, incoming []string) []string {
	seen := make(map[string]bool, len(existing))
	for _, k := range existing {
		seen[k] = true
	}
	for _, k := range incoming {
		if !seen[k] {
			seen[k] = true
			existing = append(existing, k)
		}
	}
	return existing
}

// AddTopic registers a topic node. The session reference is opaque to
// the graph.
func (g *Graph) AddTopic(text, sessionRef string, lemmas []string) (*core.TopicNode, error) {
	normalized := normalizePhraseText(text)
	if normalized == "" {
		return nil, core.ErrEmptyText
	}

	id := core.IDFromContent("topic|" + strings.ToLower(normalized) + "|" + sessionRef)
	if existing, ok := g.topics[id]; ok {
		return existing, nil
	}

	topic := &core.TopicNode{
		Id:         id,
		Text:       normalized,
		Lemmas:     append([]string(nil), lemmas...),
		SessionRef: sessionRef,
		CreatedAt:  g.clock(),
	}
	g.topics[id] = topic
	g.order[core.NodeKindTopic] = append(g.order[core.NodeKindTopic], id)
	return topic, nil
}

// WordByLemma looks up a word node by its case-normalized lemma.
func (g *Graph) WordByLemma(lemma string) (*core.WordNode, bool) {
	id, ok := g.lemmaIndex[normalizeLemma(lemma)]
	if !ok {
		return nil, false
	}
	return g.words[id], true
}

// WordByID looks up a word node by id.
func (g *Graph) WordByID(id core.ID) (*core.WordNode, bool) {
	word, ok := g.words[id]
	return word, ok
}

// PhraseByID looks up a phrase node by id.
func (g *Graph) PhraseByID(id core.ID) (*core.PhraseNode, bool) {
	phrase, ok := g.phrases[id]
	return phrase, ok
}

// Words returns all word nodes in insertion order.
func (g *Graph) Words() []*core.WordNode {
	out := make([]*core.WordNode, 0, len(g.words))
	for _, id := range g.order[core.NodeKindWord] {
		out = append(out, g.words[id])
	}
	return out
}

// Phrases returns all phrase nodes in insertion order.
func (g *Graph) Phrases() []*core.PhraseNode {
	out := make([]*core.PhraseNode, 0, len(g.phrases))
	for _, id := range g.order[core.NodeKindPhrase] {
		out = append(out, g.phrases[id])
	}
	return out
}

// Topics returns all topic nodes in insertion order.
func (g *Graph) Topics() []*core.TopicNode {
	out := make([]*core.TopicNode, 0, len(g.topics))
	for _, id := range g.order[core.NodeKindTopic] {
		out = append(out, g.topics[id])
	}
	return out
}

// NodesByType returns the ids of all nodes of the given kind in
// insertion order.
func (g *Graph) NodesByType(kind core.NodeKind) []core.ID {
	return append([]core.ID(nil), g.order[kind]...)
}

// Len returns the number of nodes of the given kind.
func (g *Graph) Len(kind core.NodeKind) int {
	return len(g.order[kind])
}

// Snapshot exports the graph as value copies in insertion order. The
// caller owns the result; later graph mutations do not affect it.
func (g *Graph) Snapshot() *core.Snapshot {
	snap := &core.Snapshot{
		Version: core.SnapshotVersion,
		SavedAt: g.clock(),
		Words:   make([]core.WordNode, 0, len(g.words)),
		Phrases: make([]core.PhraseNode, 0, len(g.phrases)),
		Topics:  make([]core.TopicNode, 0, len(g.topics)),
	}
	for _, id := range g.order[core.NodeKindWord] {
		snap.Words = append(snap.Words, copyWord(g.words[id]))
	}
	for _, id := range g.order[core.NodeKindPhrase] {
		p := g.phrases[id]
		snap.Phrases = append(snap.Phrases, core.PhraseNode{
			Id:        p.Id,
			Text:      p.Text,
			WordIds:   append([]core.ID(nil), p.WordIds...),
			ChunkKeys: append([]string(nil), p.ChunkKeys...),
			CreatedAt: p.CreatedAt,
		})
	}
	for _, id := range g.order[core.NodeKindTopic] {
		t := g.topics[id]
		snap.Topics = append(snap.Topics, core.TopicNode{
			Id:         t.Id,
			Text:       t.Text,
			Lemmas:     append([]string(nil), t.Lemmas...),
			SessionRef: t.SessionRef,
			CreatedAt:  t.CreatedAt,
		})
	}
	return snap
}

func copyWord(w *core.WordNode) core.WordNode {
	observed := make(map[core.POS]int, len(w.PosObserved))
	for tag, count := range w.PosObserved {
		observed[tag] = count
	}
	return core.WordNode{
		Id:           w.Id,
		Text:         w.Text,
		Lemma:        w.Lemma,
		POS:          append([]core.POS(nil), w.POS...),
		PosPotential: append([]core.POS(nil), w.PosPotential...),
		PosObserved:  observed,
		PrimaryPOS:   w.PrimaryPOS,
		CreatedAt:    w.CreatedAt,
		UpdatedAt:    w.UpdatedAt,
	}
}

// RestoreSnapshot replaces the graph contents with the snapshot's
// nodes and rebuilds all indexes. Chunk entries in the snapshot are
// the catalog's concern and are ignored here.
func (g *Graph) RestoreSnapshot(snap *core.Snapshot) error {
	if snap == nil {
		return ErrNilSnapshot
	}
	g.init()

	for i := range snap.Words {
		word := copyWord(&snap.Words[i])
		if err := core.ValidateWordNode(&word); err != nil {
			return fmt.Errorf("restore word %q: %w", word.Lemma, err)
		}
		g.words[word.Id] = &word
		g.lemmaIndex[normalizeLemma(word.Lemma)] = word.Id
		g.order[core.NodeKindWord] = append(g.order[core.NodeKindWord], word.Id)
	}
	for i := range snap.Phrases {
		p := snap.Phrases[i]
		phrase := &core.PhraseNode{
			Id:        p.Id,
			Text:      p.Text,
			WordIds:   append([]core.ID(nil), p.WordIds...),
			ChunkKeys: append([]string(nil), p.ChunkKeys...),
			CreatedAt: p.CreatedAt,
		}
		g.phrases[phrase.Id] = phrase
		g.order[core.NodeKindPhrase] = append(g.order[core.NodeKindPhrase], phrase.Id)
	}
	for i := range snap.Topics {
		t := snap.Topics[i]
		topic := &core.TopicNode{
			Id:         t.Id,
			Text:       t.Text,
			Lemmas:     append([]string(nil), t.Lemmas...),
			SessionRef: t.SessionRef,
			CreatedAt:  t.CreatedAt,
		}
		g.topics[topic.Id] = topic
		g.order[core.NodeKindTopic] = append(g.order[core.NodeKindTopic], topic.Id)
	}

	g.logger.Info("restored graph",
		"words", len(g.words),
		"phrases", len(g.phrases),
		"topics", len(g.topics))
	return nil
}

// Reset drops all nodes and indexes.
func (g *Graph) Reset() {
	g.init()
}
