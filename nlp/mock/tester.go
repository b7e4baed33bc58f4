package mock

import (
	"context"
	"strings"

	"github.com/CalmEddy/SimpleThink-v3-sub002/core"
	"github.com/CalmEddy/SimpleThink-v3-sub002/nlp"
)

// polysemyLexicon lists lemmas the default tester reports as attested
// with more than one tag.
var polysemyLexicon = map[string][]core.POS{
	"run":   {core.POSVerb, core.POSNoun},
	"walk":  {core.POSVerb, core.POSNoun},
	"play":  {core.POSVerb, core.POSNoun},
	"light": {core.POSNoun, core.POSAdj, core.POSVerb},
	"fast":  {core.POSAdj, core.POSAdv},
	"watch": {core.POSVerb, core.POSNoun},
	"paint": {core.POSVerb, core.POSNoun},
}

// ContextTester is a test double for nlp.ContextTester backed by a fixed
// polysemy lexicon.
type ContextTester struct {
	// TestWordFunc is called by TestWord if set.
	// If nil, uses the lexicon lookup.
	TestWordFunc func(ctx context.Context, lemma string) (*nlp.WordReport, error)

	callCount int
}

var _ nlp.ContextTester = (*ContextTester)(nil)

// NewContextTester creates a mock context tester with default behavior.
// Returns the concrete type so tests can set TestWordFunc.
func NewContextTester() *ContextTester {
	return &ContextTester{}
}

// TestWord reports polysemy from the lexicon. Lemmas not in the lexicon
// come back monosemous with an empty tag set; callers keep the tag they
// observed.
func (m *ContextTester) TestWord(ctx context.Context, lemma string) (*nlp.WordReport, error) {
	m.callCount++

	if m.TestWordFunc != nil {
		return m.TestWordFunc(ctx, lemma)
	}

	if tags, ok := polysemyLexicon[strings.ToLower(lemma)]; ok {
		return &nlp.WordReport{
			IsPolysemous: len(tags) > 1,
			UniquePOS:    append([]core.POS(nil), tags...),
		}, nil
	}
	return &nlp.WordReport{}, nil
}

// CallCount returns the number of times TestWord was called.
func (m *ContextTester) CallCount() int {
	return m.callCount
}
