package core

//go:generate go run ../cmd/musgen

import (
	"encoding/binary"
	"strings"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for graph entities.
// It is derived from entity content so that re-ingesting the same
// lemma or phrase text resolves to the same node.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// Identical content always produces the same ID.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// NodeKind identifies the type of a graph node.
type NodeKind int

const (
	// NodeKindWord is a single word (or merged proper-noun run).
	NodeKindWord NodeKind = iota + 1
	// NodeKindPhrase is an ingested phrase referencing word nodes.
	NodeKindPhrase
	// NodeKindTopic is a topic label with derived lemmas.
	NodeKindTopic
)

// MorphBase is the sentinel morph feature for an uninflected form.
// It is suppressed when building canonical POS patterns.
const MorphBase = "base"

// WordNode is a word in the graph, keyed by its case-normalized lemma.
// PosPotential grows monotonically: a tag observed or inferred once is
// never removed.
type WordNode struct {
	Id    ID
	Text  string // surface form from the most recent observation
	Lemma string
	POS   []POS // tag sequence from the most recent observation
	// PosPotential holds every tag ever observed or inferred for this
	// lemma, in first-seen order.
	PosPotential []POS
	// PosObserved counts how many times each tag was directly observed.
	PosObserved map[POS]int
	PrimaryPOS  POS
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsPolysemousPOS reports whether more than one tag has been attested
// for this lemma.
func (w *WordNode) IsPolysemousPOS() bool {
	return len(w.PosPotential) > 1
}

// HasPotential reports whether the tag is in the word's potential set.
func (w *WordNode) HasPotential(tag POS) bool {
	for _, p := range w.PosPotential {
		if p == tag {
			return true
		}
	}
	return false
}

// PhraseNode is an ingested phrase. The word sequence is immutable once
// created; only the chunk linkage may grow as chunks are derived.
type PhraseNode struct {
	Id        ID
	Text      string
	WordIds   []ID
	ChunkKeys []string
	CreatedAt time.Time
}

// TopicNode is a topic label. The session it belongs to is owned by the
// embedding application; the graph keeps only an opaque reference.
type TopicNode struct {
	Id         ID
	Text       string
	Lemmas     []string
	SessionRef string
	CreatedAt  time.Time
}

// PhraseChunk is a contiguous multi-token span extracted from a phrase.
// Chunks are value-like: two chunks with the same lemma sequence and POS
// pattern are the same catalog entry regardless of origin phrase.
type PhraseChunk struct {
	Text       string
	Lemmas     []string
	PosPattern string
	PhraseId   ID
}

// Key returns the catalog key for the chunk: lowercase lemmas joined by
// spaces, then "|", then the canonical POS pattern. This exact format is
// the storage key and must remain stable across runs.
func (c *PhraseChunk) Key() string {
	return ChunkKey(c.Lemmas, c.PosPattern)
}

// ChunkKey builds a catalog key from a lemma sequence and a canonical
// POS pattern.
func ChunkKey(lemmas []string, pattern string) string {
	lowered := make([]string, len(lemmas))
	for i, l := range lemmas {
		lowered[i] = strings.ToLower(l)
	}
	return strings.Join(lowered, " ") + "|" + pattern
}

// MaxChunkExamples bounds the example texts kept per catalog entry.
const MaxChunkExamples = 3

// ChunkStats tracks usage of a catalog entry. Examples are capped at
// MaxChunkExamples with FIFO eviction, deduplicated by text.
type ChunkStats struct {
	Uses     int
	Likes    int
	LastSeen time.Time
	Examples []string
}

// AddExample appends an example text, evicting the oldest when full.
// Texts already present are skipped.
func (s *ChunkStats) AddExample(text string) {
	for _, e := range s.Examples {
		if e == text {
			return
		}
	}
	s.Examples = append(s.Examples, text)
	if len(s.Examples) > MaxChunkExamples {
		s.Examples = s.Examples[len(s.Examples)-MaxChunkExamples:]
	}
}

// SnapshotVersion is the current schema version of persisted snapshots.
const SnapshotVersion uint32 = 1

// ChunkEntry is a catalog entry as persisted in a snapshot.
type ChunkEntry struct {
	Key     string
	Lemmas  []string
	Pattern string
	Stats   ChunkStats
}

// Snapshot is the whole graph plus catalog state, serialized and
// restored as one unit. There is no partial load.
type Snapshot struct {
	Version uint32
	SavedAt time.Time
	Words   []WordNode
	Phrases []PhraseNode
	Topics  []TopicNode
	Chunks  []ChunkEntry
}
