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


package openai

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/CalmEddy/SimpleThink-v3-sub002/core"
	"github.com/CalmEddy/SimpleThink-v3-sub002/nlp"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// Tagger implements nlp.Tagger using OpenAI-compatible chat APIs.
type Tagger struct {
	client llms.Model
	logger *slog.Logger
}

// taggedToken is an internal type used for JSON unmarshaling.
// It matches the structure expected from the LLM.
type taggedToken struct {
	Token string `json:"token"`
	Lemma string `json:"lemma"`
	Pos   string `json:"pos"`
	Morph string `json:"morph"`
}

// tagging is the wrapper structure for the LLM's JSON response.
type tagging struct {
	Tokens []taggedToken `json:"tokens"`
}

// newTagger is an internal constructor that returns the concrete type.
// Used by Provider to manage the instance.
func newTagger(config *nlp.Config) (*Tagger, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	// Use "none" as token for local OpenAI-compatible services that don't require authentication
	client, err := openai.New(
		openai.WithBaseURL(config.TaggerHost),
		openai.WithToken("none"),
		openai.WithModel(config.TaggerModel),
	)
	if err != nil {
		return nil, err
	}

	return &Tagger{
		client: client,
		logger: slog.Default().With("component", "openai-tagger"),
	}, nil
}

// NewTagger creates a new tagger using the provided configuration.
//
// Returns nlp.Tagger interface to enforce abstraction.
func NewTagger(config *nlp.Config) (nlp.Tagger, error) {
	return newTagger(config)
}

// TagText tokenizes text and assigns a lemma and observed POS per token
// using an LLM. Tokens that come back with a tag outside the fixed
// vocabulary are coerced to X rather than dropped.
func (t *Tagger) TagText(ctx context.Context, text string) ([]nlp.TaggedToken, error) {
	systemPrompt := buildTaggingPrompt()
	content := []llms.MessageContent{
		{
			Role: llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{
				llms.TextPart(systemPrompt),
			},
		},
		{
			Role: llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.TextPart(text),
			},
		},
	}

	// Try up to 3 times in case of malformed JSON
	var result tagging
	var lastErr error
	for attempt := 0; attempt < 3; attempt++ {
		response, err := t.client.GenerateContent(ctx, content, llms.WithTemperature(0.0), llms.WithJSONMode())
		if err != nil {
			t.logger.Error("failed to generate content", "attempt", attempt+1, "err", err)
			return nil, err
		}

		if len(response.Choices) < 1 {
			t.logger.Debug("no choices returned from model")
			return []nlp.TaggedToken{}, nil
		}

		responseText := cleanResponse(response.Choices[0].Content)
		responseText = repairJSON(responseText)

		if err := json.Unmarshal([]byte(responseText), &result); err != nil {
			lastErr = err
			t.logger.Warn("error parsing tagger response",
				"attempt", attempt+1,
				"response", responseText,
				"err", err)
			continue
		}

		// Success
		lastErr = nil
		break
	}

	if lastErr != nil {
		t.logger.Error("failed to parse tagger response after retries", "err", lastErr)
		return nil, lastErr
	}

	tokens := make([]nlp.TaggedToken, 0, len(result.Tokens))
	for _, tok := range result.Tokens {
		if tok.Token == "" {
			continue
		}
		tag := core.POS(tok.Pos)
		if !core.IsValidPOS(tag) {
			t.logger.Debug("coercing unknown tag", "token", tok.Token, "pos", tok.Pos)
			tag = core.POSX
		}
		morph := tok.Morph
		if morph == "" {
			morph = core.MorphBase
		}
		lemma := tok.Lemma
		if lemma == "" {
			lemma = tok.Token
		}
		tokens = append(tokens, nlp.TaggedToken{
			Text:  tok.Token,
			Lemma: lemma,
			POS:   tag,
			Morph: morph,
		})
	}

	t.logger.Debug("tagged text", "tokens", len(tokens))
	return tokens, nil
}
