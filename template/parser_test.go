package template

import (
	"testing"

	"github.com/CalmEddy/SimpleThink-v3-sub002/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTemplateText(t *testing.T) {
	t.Run("plain slot sequence", func(t *testing.T) {
		tokens, err := ParseTemplateText("[NOUN] [VERB] [NOUN]")
		require.NoError(t, err)
		require.Len(t, tokens, 3)

		wantPOS := []core.POS{core.POSNoun, core.POSVerb, core.POSNoun}
		wantRaw := []string{"[NOUN]", "[VERB]", "[NOUN]"}
		for i, tok := range tokens {
			assert.Equal(t, TokenSlot, tok.Kind)
			assert.Equal(t, wantPOS[i], tok.POS)
			assert.Equal(t, wantRaw[i], tok.Raw)
			assert.Empty(t, tok.Morph)
			assert.Empty(t, tok.BindID)
		}
	})

	t.Run("free text around a slot", func(t *testing.T) {
		tokens, err := ParseTemplateText("When would [NOUN] be good?")
		require.NoError(t, err)
		require.Len(t, tokens, 3)

		assert.Equal(t, TokenLiteral, tokens[0].Kind)
		assert.Equal(t, "When would", tokens[0].Text)
		assert.Equal(t, TokenSlot, tokens[1].Kind)
		assert.Equal(t, core.POSNoun, tokens[1].POS)
		assert.Equal(t, TokenLiteral, tokens[2].Kind)
		assert.Equal(t, "be good?", tokens[2].Text)
	})

	t.Run("morph and binding forms", func(t *testing.T) {
		tokens, err := ParseTemplateText("[VERB:past] [VERB<2>] [NOUN:plural<1>]")
		require.NoError(t, err)
		require.Len(t, tokens, 3)

		assert.Equal(t, core.POSVerb, tokens[0].POS)
		assert.Equal(t, "past", tokens[0].Morph)
		assert.Empty(t, tokens[0].BindID)

		assert.Equal(t, "V2", tokens[1].BindID)
		assert.Empty(t, tokens[1].Morph)

		assert.Equal(t, "N1", tokens[2].BindID)
		assert.Equal(t, "plural", tokens[2].Morph)
	})

	t.Run("literal directive keeps inner text exactly", func(t *testing.T) {
		tokens, err := ParseTemplateText("[LIT:  spaced text ]")
		require.NoError(t, err)
		require.Len(t, tokens, 1)
		assert.Equal(t, TokenLiteral, tokens[0].Kind)
		assert.Equal(t, "  spaced text ", tokens[0].Text)
		assert.Equal(t, "[LIT:  spaced text ]", tokens[0].Raw)
	})

	t.Run("chunk subtemplate expands recursively", func(t *testing.T) {
		tokens, err := ParseTemplateText("Can you believe we saw [CHUNK:[NOUN-NOUN]] in public?")
		require.NoError(t, err)
		require.Len(t, tokens, 3)

		assert.Equal(t, "Can you believe we saw", tokens[0].Text)

		sub := tokens[1]
		assert.Equal(t, TokenSubtemplate, sub.Kind)
		assert.Equal(t, "[CHUNK:[NOUN-NOUN]]", sub.Raw)
		require.Len(t, sub.Sub, 2)
		for _, inner := range sub.Sub {
			assert.Equal(t, TokenSlot, inner.Kind)
			assert.Equal(t, core.POSNoun, inner.POS)
		}

		assert.Equal(t, "in public?", tokens[2].Text)
	})

	t.Run("chunk pattern carries morphs through", func(t *testing.T) {
		tokens, err := ParseTemplateText("[CHUNK:[NOUN-VERB|past]]")
		require.NoError(t, err)
		require.Len(t, tokens, 1)
		sub := tokens[0].Sub
		require.Len(t, sub, 2)
		assert.Equal(t, core.POSVerb, sub[1].POS)
		assert.Equal(t, "past", sub[1].Morph)
	})

	t.Run("empty and whitespace-only input", func(t *testing.T) {
		tokens, err := ParseTemplateText("")
		require.NoError(t, err)
		assert.Empty(t, tokens)

		tokens, err = ParseTemplateText("   ")
		require.NoError(t, err)
		assert.Empty(t, tokens)
	})

	t.Run("malformed templates abort without partial tokens", func(t *testing.T) {
		cases := []string{
			"[NOUN",
			"NOUN]",
			"[CHUNK:[NOUN-NOUN]",
			"a ] b",
			"[BOGUS]",
			"[NOUN<x>]",
			"[CHUNK:NOUN-NOUN]",
			"[CHUNK:[]]",
		}
		for _, input := range cases {
			tokens, err := ParseTemplateText(input)
			assert.ErrorIs(t, err, ErrMalformedTemplate, input)
			assert.Nil(t, tokens, input)
		}
	})
}

func TestBuildBindings(t *testing.T) {
	t.Run("collects bindings with first occurrence winning", func(t *testing.T) {
		tokens, err := ParseTemplateText("[VERB:past<2>] [NOUN<1>] [VERB:ger<2>]")
		require.NoError(t, err)

		bindings := BuildBindings(tokens)
		require.Len(t, bindings, 2)
		assert.Equal(t, Binding{ID: "V2", POS: core.POSVerb, Morph: "past"}, bindings["V2"])
		assert.Equal(t, Binding{ID: "N1", POS: core.POSNoun, Morph: ""}, bindings["N1"])
	})

	t.Run("recurses into subtemplates", func(t *testing.T) {
		tokens := []Token{
			{Kind: TokenSubtemplate, Sub: []Token{
				{Kind: TokenSlot, POS: core.POSNoun, BindID: "N3"},
			}},
		}
		bindings := BuildBindings(tokens)
		require.Len(t, bindings, 1)
		assert.Equal(t, core.POSNoun, bindings["N3"].POS)
	})

	t.Run("no declared bindings yields nil", func(t *testing.T) {
		tokens, err := ParseTemplateText("[NOUN] [VERB] plain text")
		require.NoError(t, err)
		assert.Nil(t, BuildBindings(tokens))
	})
}
