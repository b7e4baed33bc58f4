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

// ContextTester implements nlp.ContextTester using OpenAI-compatible
// chat APIs. The model composes sample sentences for the lemma and
// reports the distinct parts of speech it took.
type ContextTester struct {
	client  llms.Model
	samples int
	logger  *slog.Logger
}

// wordReport is an internal type used for JSON unmarshaling.
type wordReport struct {
	IsPolysemous bool     `json:"is_polysemous"`
	UniquePos    []string `json:"unique_pos"`
}

// newContextTester is an internal constructor that returns the concrete type.
// Used by Provider to manage the instance.
func newContextTester(config *nlp.Config) (*ContextTester, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	// Use "none" as token for local OpenAI-compatible services that don't require authentication
	client, err := openai.New(
		openai.WithBaseURL(config.TesterHost),
		openai.WithToken("none"),
		openai.WithModel(config.TesterModel),
	)
	if err != nil {
		return nil, err
	}

	return &ContextTester{
		client:  client,
		samples: config.ContextSamples,
		logger:  slog.Default().With("component", "openai-tester"),
	}, nil
}

// NewContextTester creates a new context tester using the provided
// configuration.
//
// Returns nlp.ContextTester interface to enforce abstraction.
func NewContextTester(config *nlp.Config) (nlp.ContextTester, error) {
	return newContextTester(config)
}

// TestWord probes the lemma in sample contexts and reports the distinct
// tags it took. Tags outside the fixed vocabulary are discarded from the
// report.
func (t *ContextTester) TestWord(ctx context.Context, lemma string) (*nlp.WordReport, error) {
	systemPrompt := buildTestingPrompt(t.samples)
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
				llms.TextPart(lemma),
			},
		},
	}

	// Try up to 3 times in case of malformed JSON
	var result wordReport
	var lastErr error
	for attempt := 0; attempt < 3; attempt++ {
		response, err := t.client.GenerateContent(ctx, content, llms.WithTemperature(0.0), llms.WithJSONMode())
		if err != nil {
			t.logger.Error("failed to generate content", "lemma", lemma, "attempt", attempt+1, "err", err)
			return nil, err
		}

		if len(response.Choices) < 1 {
			t.logger.Debug("no choices returned from model", "lemma", lemma)
			return &nlp.WordReport{}, nil
		}

		responseText := cleanResponse(response.Choices[0].Content)
		responseText = repairJSON(responseText)

		if err := json.Unmarshal([]byte(responseText), &result); err != nil {
			lastErr = err
			t.logger.Warn("error parsing tester response",
				"lemma", lemma,
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
		t.logger.Error("failed to parse tester response after retries", "lemma", lemma, "err", lastErr)
		return nil, lastErr
	}

	unique := make([]core.POS, 0, len(result.UniquePos))
	for _, raw := range result.UniquePos {
		tag := core.POS(raw)
		if !core.IsValidPOS(tag) {
			t.logger.Debug("discarding unknown tag from report", "lemma", lemma, "pos", raw)
			continue
		}
		unique = append(unique, tag)
	}

	return &nlp.WordReport{
		IsPolysemous: result.IsPolysemous && len(unique) > 1,
		UniquePOS:    unique,
	}, nil
}
