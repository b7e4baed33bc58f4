package nlp

import (
	"context"

	"github.com/CalmEddy/SimpleThink-v3-sub002/core"
)

// TaggedToken is a single token of tagged text.
type TaggedToken struct {
	// Text is the surface form as it appeared in the input.
	Text string

	// Lemma is the dictionary form, used as the word merge key.
	Lemma string

	// POS is the observed tag for this occurrence.
	POS core.POS

	// Morph is the morphological feature of the surface form
	// ("past", "plural", ...). core.MorphBase for uninflected forms.
	Morph string
}

// Tagger turns raw text into token/lemma/POS triples.
// Implementations must be deterministic for identical input within a run
// and safe for concurrent use.
type Tagger interface {
	// TagText tokenizes text and assigns a lemma and a single observed
	// POS tag per token. Returns an error if tagging fails as a whole;
	// there is no per-token failure mode.
	TagText(ctx context.Context, text string) ([]TaggedToken, error)
}

// WordReport is the outcome of probing a lemma in sample contexts.
type WordReport struct {
	// IsPolysemous is true when more than one distinct tag was attested.
	IsPolysemous bool

	// UniquePOS lists the distinct tags attested for the lemma.
	UniquePOS []core.POS
}

// ContextTester probes a single lemma for part-of-speech polysemy by
// testing it in a number of sample sentence contexts.
// Implementations must be thread-safe for concurrent use.
type ContextTester interface {
	// TestWord reports the POS tags attested for the lemma.
	TestWord(ctx context.Context, lemma string) (*WordReport, error)
}

// Provider aggregates the language capabilities for convenient
// initialization and lifecycle management.
type Provider interface {
	// Tagger returns the text tagging service.
	Tagger() Tagger

	// ContextTester returns the lemma probing service.
	ContextTester() ContextTester

	// Close releases resources held by the provider and its services.
	Close() error
}
