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


package nlp

import (
	"errors"
	"strings"
)

// Config holds configuration for the language capability providers.
type Config struct {
	// TaggerHost is the base URL for the tagging service API.
	// Example: "http://localhost:11434/v1" for a local OpenAI-compatible server
	TaggerHost string

	// TesterHost is the base URL for the context-testing service API.
	TesterHost string

	// TaggerModel is the model identifier used for tagging.
	// Example: "qwen2.5:3b", "gpt-4o-mini"
	TaggerModel string

	// TesterModel is the model identifier used for context testing.
	TesterModel string

	// ContextSamples is the number of test sentences the context tester
	// asks for when probing a lemma. Default: 4
	ContextSamples int
}

// ConfigOption is a functional option for configuring a Config.
type ConfigOption func(*Config)

// WithTaggerHost sets the tagging service host URL.
func WithTaggerHost(host string) ConfigOption {
	return func(c *Config) {
		c.TaggerHost = host
	}
}

// WithTesterHost sets the context-testing service host URL.
func WithTesterHost(host string) ConfigOption {
	return func(c *Config) {
		c.TesterHost = host
	}
}

// WithHost sets both hosts to the same URL.
func WithHost(host string) ConfigOption {
	return func(c *Config) {
		c.TaggerHost = host
		c.TesterHost = host
	}
}

// WithTaggerModel sets the tagging model identifier.
func WithTaggerModel(model string) ConfigOption {
	return func(c *Config) {
		c.TaggerModel = model
	}
}

// WithTesterModel sets the context-testing model identifier.
func WithTesterModel(model string) ConfigOption {
	return func(c *Config) {
		c.TesterModel = model
	}
}

// WithContextSamples sets the number of test sentences used when probing
// a lemma for polysemy.
func WithContextSamples(n int) ConfigOption {
	return func(c *Config) {
		c.ContextSamples = n
	}
}

// DefaultConfig returns a Config with sensible defaults for local
// OpenAI-compatible services. Both capabilities share one host by default.
func DefaultConfig() *Config {
	defaultHost := "http://localhost:11434/v1"
	return &Config{
		TaggerHost:     defaultHost,
		TesterHost:     defaultHost,
		TaggerModel:    "qwen2.5:3b",
		TesterModel:    "qwen2.5:3b",
		ContextSamples: 4,
	}
}

// NewConfig creates a Config with the default values and applies the
// provided options. This is the recommended way to create a Config.
//
// Example:
//
//	cfg := NewConfig(
//	    WithHost("http://localhost:11434/v1"),
//	    WithTaggerModel("gpt-4o-mini"),
//	)
func NewConfig(opts ...ConfigOption) *Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Normalize ensures the configuration is in a canonical form.
// It automatically adds the /v1 suffix to hosts if missing, which is
// required by most OpenAI-compatible APIs (Ollama, LocalAI, vLLM, etc).
func (c *Config) Normalize() {
	if c.TaggerHost != "" && !strings.HasSuffix(c.TaggerHost, "/v1") {
		c.TaggerHost = strings.TrimSuffix(c.TaggerHost, "/")
		c.TaggerHost = c.TaggerHost + "/v1"
	}
	if c.TesterHost != "" && !strings.HasSuffix(c.TesterHost, "/v1") {
		c.TesterHost = strings.TrimSuffix(c.TesterHost, "/")
		c.TesterHost = c.TesterHost + "/v1"
	}
}

// Validate checks that the configuration is valid and complete.
// It automatically normalizes the configuration before validation.
func (c *Config) Validate() error {
	c.Normalize()

	if c.TaggerHost == "" {
		return errors.New("nlp config: TaggerHost is required")
	}
	if c.TesterHost == "" {
		return errors.New("nlp config: TesterHost is required")
	}
	if c.TaggerModel == "" {
		return errors.New("nlp config: TaggerModel is required")
	}
	if c.TesterModel == "" {
		return errors.New("nlp config: TesterModel is required")
	}
	if c.ContextSamples < 1 || c.ContextSamples > 20 {
		return errors.New("nlp config: ContextSamples must be between 1 and 20")
	}
	return nil
}
