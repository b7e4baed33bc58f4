package randomize

import (
	"math/rand"
	"testing"

	"github.com/CalmEddy/SimpleThink-v3-sub002/core"
	"github.com/CalmEddy/SimpleThink-v3-sub002/template"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTokens(t *testing.T) []template.Token {
	t.Helper()
	tokens, err := template.ParseTemplateText("hello [NOUN] [VERB:past] world")
	require.NoError(t, err)
	require.Len(t, tokens, 4)
	return tokens
}

func marked(tokens []template.Token) []int {
	var out []int
	for i, tok := range tokens {
		if tok.Marked {
			out = append(out, i)
		}
	}
	return out
}

func TestJitter(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	t.Run("probability one marks every eligible token", func(t *testing.T) {
		j := &Jitter{Prob: 1}
		out, err := j.Apply(testTokens(t), rng)
		require.NoError(t, err)
		assert.Equal(t, []int{0, 1, 2, 3}, marked(out))
	})

	t.Run("probability zero marks nothing", func(t *testing.T) {
		j := &Jitter{Prob: 0}
		out, err := j.Apply(testTokens(t), rng)
		require.NoError(t, err)
		assert.Empty(t, marked(out))
	})

	t.Run("max marks caps a pass", func(t *testing.T) {
		j := &Jitter{Prob: 1, MaxMarks: 2}
		out, err := j.Apply(testTokens(t), rng)
		require.NoError(t, err)
		assert.Len(t, marked(out), 2)
	})

	t.Run("existing marks survive and do not count against the cap", func(t *testing.T) {
		tokens := testTokens(t)
		tokens[3].Marked = true
		j := &Jitter{Prob: 0}
		out, err := j.Apply(tokens, rng)
		require.NoError(t, err)
		assert.Equal(t, []int{3}, marked(out))
	})

	t.Run("input slice is not mutated", func(t *testing.T) {
		tokens := testTokens(t)
		j := &Jitter{Prob: 1}
		_, err := j.Apply(tokens, rng)
		require.NoError(t, err)
		assert.Empty(t, marked(tokens))
	})
}

func TestPositional(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	t.Run("marks the target index", func(t *testing.T) {
		out, err := (&Positional{Index: 1}).Apply(testTokens(t), rng)
		require.NoError(t, err)
		assert.Equal(t, []int{1}, marked(out))
	})

	t.Run("out of range is a no-op", func(t *testing.T) {
		out, err := (&Positional{Index: 99}).Apply(testTokens(t), rng)
		require.NoError(t, err)
		assert.Empty(t, marked(out))
	})

	t.Run("non-alphabetic token is ineligible", func(t *testing.T) {
		tokens, err := template.ParseTemplateText("[LIT:123] [NOUN]")
		require.NoError(t, err)
		out, err := (&Positional{Index: 0}).Apply(tokens, rng)
		require.NoError(t, err)
		assert.Empty(t, marked(out))
	})
}

func TestClickable(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	out, err := (&Clickable{Indices: []int{0, 2, 50, -1}}).Apply(testTokens(t), rng)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2}, marked(out))
}

func TestPOSTable(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	t.Run("marks only slots with a listed POS", func(t *testing.T) {
		p := &POSTable{Probs: map[core.POS]float64{core.POSNoun: 1}}
		out, err := p.Apply(testTokens(t), rng)
		require.NoError(t, err)
		// Index 1 is the NOUN slot; the literals and the VERB slot stay.
		assert.Equal(t, []int{1}, marked(out))
	})

	t.Run("unlisted POS is untouched", func(t *testing.T) {
		p := &POSTable{Probs: map[core.POS]float64{core.POSAdj: 1}}
		out, err := p.Apply(testTokens(t), rng)
		require.NoError(t, err)
		assert.Empty(t, marked(out))
	})
}

func TestRegexGate(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	t.Run("marks surface matches", func(t *testing.T) {
		r := &RegexGate{Pattern: "^h", Prob: 1}
		out, err := r.Apply(testTokens(t), rng)
		require.NoError(t, err)
		assert.Equal(t, []int{0}, marked(out)) // "hello"
	})

	t.Run("invalid pattern degrades to a no-op", func(t *testing.T) {
		tokens := testTokens(t)
		r := &RegexGate{Pattern: "[unclosed", Prob: 1}
		out, err := r.Apply(tokens, rng)
		require.NoError(t, err)
		assert.Equal(t, tokens, out)
	})
}

// panicStrategy is a failing pass for pipeline isolation tests.
type panicStrategy struct{}

func (panicStrategy) Name() string { return "panic" }

func (panicStrategy) Apply([]template.Token, *rand.Rand) ([]template.Token, error) {
	panic("boom")
}

func TestPipeline(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	t.Run("passes accumulate marks", func(t *testing.T) {
		p := NewPipeline(&Positional{Index: 0}, &Positional{Index: 2})
		out := p.Apply(testTokens(t), rng)
		assert.Equal(t, []int{0, 2}, marked(out))
	})

	t.Run("a panicking pass is skipped, later passes still run", func(t *testing.T) {
		p := NewPipeline(&Positional{Index: 0}, panicStrategy{}, &Positional{Index: 1})
		out := p.Apply(testTokens(t), rng)
		assert.Equal(t, []int{0, 1}, marked(out))
	})
}

func TestMergeMarks(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	base := testTokens(t)

	a, err := (&Positional{Index: 0}).Apply(base, rng)
	require.NoError(t, err)
	b, err := (&Positional{Index: 3}).Apply(base, rng)
	require.NoError(t, err)

	merged := MergeMarks(a, b)
	assert.Equal(t, []int{0, 3}, marked(merged))

	assert.Nil(t, MergeMarks())
}
