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
	"log/slog"

	"github.com/CalmEddy/SimpleThink-v3-sub002/nlp"
)

// Provider implements nlp.Provider using OpenAI-compatible services.
// It manages tagger and context tester instances.
type Provider struct {
	config *nlp.Config
	tagger *Tagger
	tester *ContextTester
	logger *slog.Logger
}

// NewProvider creates a new language capability provider backed by
// OpenAI-compatible services. The config is validated and normalized
// before use.
//
// Returns the nlp.Provider interface (not *Provider) to enforce
// abstraction and prevent coupling to implementation details.
func NewProvider(config *nlp.Config) (nlp.Provider, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	tagger, err := newTagger(config)
	if err != nil {
		return nil, err
	}

	tester, err := newContextTester(config)
	if err != nil {
		return nil, err
	}

	return &Provider{
		config: config,
		tagger: tagger,
		tester: tester,
		logger: slog.Default().With("component", "openai-provider"),
	}, nil
}

// Tagger returns the text tagging service.
func (p *Provider) Tagger() nlp.Tagger {
	return p.tagger
}

// ContextTester returns the lemma probing service.
func (p *Provider) ContextTester() nlp.ContextTester {
	return p.tester
}

// Close releases resources held by the provider.
// Currently a no-op as the underlying clients don't require explicit cleanup.
func (p *Provider) Close() error {
	p.logger.Debug("closing OpenAI provider")
	return nil
}
