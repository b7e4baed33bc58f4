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


package mock

import "github.com/CalmEddy/SimpleThink-v3-sub002/nlp"

// Provider is a test double for nlp.Provider.
// It aggregates mock tagger and context tester instances.
type Provider struct {
	tagger *Tagger
	tester *ContextTester
}

// NewProvider creates a new mock provider with default mock services.
//
// Returns the nlp.Provider interface for consistency with production
// constructors. Use NewProviderWithServices to keep handles on the
// concrete doubles for test assertions.
func NewProvider() nlp.Provider {
	return &Provider{
		tagger: NewTagger(),
		tester: NewContextTester(),
	}
}

// NewProviderWithServices creates a mock provider with custom mock
// services, allowing full control over the behavior of each.
func NewProviderWithServices(tagger *Tagger, tester *ContextTester) nlp.Provider {
	return &Provider{
		tagger: tagger,
		tester: tester,
	}
}

// Tagger returns the mock tagger.
func (p *Provider) Tagger() nlp.Tagger {
	return p.tagger
}

// ContextTester returns the mock context tester.
func (p *Provider) ContextTester() nlp.ContextTester {
	return p.tester
}

// Close is a no-op for mock provider.
func (p *Provider) Close() error {
	return nil
}
