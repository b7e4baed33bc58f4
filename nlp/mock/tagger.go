package mock

import (
	"context"
	"strings"
	"unicode"

	"github.com/CalmEddy/SimpleThink-v3-sub002/core"
	"github.com/CalmEddy/SimpleThink-v3-sub002/nlp"
)

// closedClass maps function words to their tags. Checked before any
// other rule so sentence-initial capitalization doesn't turn "The" into
// a proper noun.
var closedClass = map[string]core.POS{
	"the": core.POSDet, "a": core.POSDet, "an": core.POSDet,
	"this": core.POSDet, "that": core.POSDet, "these": core.POSDet,
	"i": core.POSPron, "you": core.POSPron, "he": core.POSPron,
	"she": core.POSPron, "it": core.POSPron, "we": core.POSPron,
	"they": core.POSPron, "them": core.POSPron, "her": core.POSPron,
	"in": core.POSAdp, "on": core.POSAdp, "at": core.POSAdp,
	"over": core.POSAdp, "under": core.POSAdp, "of": core.POSAdp,
	"to": core.POSAdp, "with": core.POSAdp, "from": core.POSAdp,
	"and": core.POSCconj, "or": core.POSCconj, "but": core.POSCconj,
	"because": core.POSSconj, "when": core.POSSconj, "while": core.POSSconj,
	"not": core.POSPart, "n't": core.POSPart,
	"be": core.POSAux, "is": core.POSAux, "are": core.POSAux,
	"was": core.POSAux, "were": core.POSAux, "been": core.POSAux,
	"would": core.POSAux, "could": core.POSAux, "can": core.POSAux,
}

// adjectives and verbs are small open-class lexicons; anything unmatched
// falls through to the suffix rules and finally to NOUN.
var adjectives = map[string]bool{
	"quick": true, "brown": true, "red": true, "blue": true, "big": true,
	"small": true, "lazy": true, "old": true, "good": true, "bright": true,
	"gentle": true, "hidden": true, "ancient": true, "public": true,
}

var verbs = map[string]bool{
	"jump": true, "run": true, "see": true, "believe": true, "go": true,
	"make": true, "find": true, "take": true, "carry": true, "build": true,
	"paint": true, "watch": true, "whisper": true, "taste": true,
}

// irregularPast maps irregular past forms to their lemma.
var irregularPast = map[string]string{
	"saw": "see", "went": "go", "made": "make", "found": "find",
	"took": "take", "built": "build", "ran": "run",
}

// Tagger is a deterministic rule-based test double for nlp.Tagger.
type Tagger struct {
	// TagTextFunc is called by TagText if set.
	// If nil, uses the default heuristic tagging.
	TagTextFunc func(ctx context.Context, text string) ([]nlp.TaggedToken, error)

	callCount int
}

var _ nlp.Tagger = (*Tagger)(nil)

// NewTagger creates a mock tagger with default heuristic behavior.
// Returns the concrete type so tests can set TagTextFunc.
func NewTagger() *Tagger {
	return &Tagger{}
}

// TagText tags text with the heuristic rules. Tokens reduced to pure
// punctuation are dropped.
func (m *Tagger) TagText(ctx context.Context, text string) ([]nlp.TaggedToken, error) {
	m.callCount++

	if m.TagTextFunc != nil {
		return m.TagTextFunc(ctx, text)
	}

	fields := strings.Fields(text)
	tokens := make([]nlp.TaggedToken, 0, len(fields))
	for _, field := range fields {
		surface := strings.Trim(field, ".,!?;:'\"()[]{}")
		if surface == "" {
			continue
		}
		tokens = append(tokens, tagToken(surface))
	}
	return tokens, nil
}

// CallCount returns the number of times TagText was called.
func (m *Tagger) CallCount() int {
	return m.callCount
}

func tagToken(surface string) nlp.TaggedToken {
	lower := strings.ToLower(surface)

	if tag, ok := closedClass[lower]; ok {
		return nlp.TaggedToken{Text: surface, Lemma: lower, POS: tag, Morph: core.MorphBase}
	}
	if lemma, ok := irregularPast[lower]; ok {
		return nlp.TaggedToken{Text: surface, Lemma: lemma, POS: core.POSVerb, Morph: "past"}
	}
	if isNumeric(surface) {
		return nlp.TaggedToken{Text: surface, Lemma: lower, POS: core.POSNum, Morph: core.MorphBase}
	}
	if unicode.IsUpper([]rune(surface)[0]) {
		// Proper noun: keep the surface casing in the lemma so merged
		// name runs read naturally.
		return nlp.TaggedToken{Text: surface, Lemma: surface, POS: core.POSPropn, Morph: core.MorphBase}
	}
	if adjectives[lower] {
		return nlp.TaggedToken{Text: surface, Lemma: lower, POS: core.POSAdj, Morph: core.MorphBase}
	}
	if verbs[lower] {
		return nlp.TaggedToken{Text: surface, Lemma: lower, POS: core.POSVerb, Morph: core.MorphBase}
	}
	if strings.HasSuffix(lower, "ly") {
		return nlp.TaggedToken{Text: surface, Lemma: lower, POS: core.POSAdv, Morph: core.MorphBase}
	}
	if strings.HasSuffix(lower, "ing") && len(lower) > 4 {
		return nlp.TaggedToken{Text: surface, Lemma: strings.TrimSuffix(lower, "ing"), POS: core.POSVerb, Morph: "ger"}
	}
	if strings.HasSuffix(lower, "ed") && len(lower) > 3 {
		return nlp.TaggedToken{Text: surface, Lemma: strings.TrimSuffix(lower, "ed"), POS: core.POSVerb, Morph: "past"}
	}
	if base, ok := verbThirdPerson(lower); ok {
		return nlp.TaggedToken{Text: surface, Lemma: base, POS: core.POSVerb, Morph: "3sg"}
	}
	if strings.HasSuffix(lower, "s") && !strings.HasSuffix(lower, "ss") && len(lower) > 2 {
		return nlp.TaggedToken{Text: surface, Lemma: strings.TrimSuffix(lower, "s"), POS: core.POSNoun, Morph: "plural"}
	}
	return nlp.TaggedToken{Text: surface, Lemma: lower, POS: core.POSNoun, Morph: core.MorphBase}
}

// verbThirdPerson recognizes -s forms of lexicon verbs ("jumps").
func verbThirdPerson(lower string) (string, bool) {
	if !strings.HasSuffix(lower, "s") {
		return "", false
	}
	base := strings.TrimSuffix(lower, "s")
	if verbs[base] {
		return base, true
	}
	return "", false
}

func isNumeric(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return len(s) > 0
}
