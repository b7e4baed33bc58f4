package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.NotNil(t, cfg)
	assert.Equal(t, "http://localhost:11434/v1", cfg.TaggerHost)
	assert.Equal(t, "http://localhost:11434/v1", cfg.TesterHost)
	assert.Equal(t, "qwen2.5:3b", cfg.TaggerModel)
	assert.Equal(t, "qwen2.5:3b", cfg.TesterModel)
	assert.Equal(t, 4, cfg.ContextSamples)
}

func TestNewConfig(t *testing.T) {
	t.Run("with no options", func(t *testing.T) {
		cfg := NewConfig()

		assert.NotNil(t, cfg)
		// Should have default values
		assert.Equal(t, "http://localhost:11434/v1", cfg.TaggerHost)
		assert.Equal(t, "http://localhost:11434/v1", cfg.TesterHost)
		assert.Equal(t, 4, cfg.ContextSamples)
	})

	t.Run("with custom host", func(t *testing.T) {
		cfg := NewConfig(WithHost("http://custom:8080/v1"))

		assert.Equal(t, "http://custom:8080/v1", cfg.TaggerHost)
		assert.Equal(t, "http://custom:8080/v1", cfg.TesterHost)
	})

	t.Run("with separate hosts", func(t *testing.T) {
		cfg := NewConfig(
			WithTaggerHost("http://tag:8080/v1"),
			WithTesterHost("http://test:9090/v1"),
		)

		assert.Equal(t, "http://tag:8080/v1", cfg.TaggerHost)
		assert.Equal(t, "http://test:9090/v1", cfg.TesterHost)
	})

	t.Run("with custom models", func(t *testing.T) {
		cfg := NewConfig(
			WithTaggerModel("gpt-4o-mini"),
			WithTesterModel("qwen2.5:7b"),
		)

		assert.Equal(t, "gpt-4o-mini", cfg.TaggerModel)
		assert.Equal(t, "qwen2.5:7b", cfg.TesterModel)
	})

	t.Run("with custom context samples", func(t *testing.T) {
		cfg := NewConfig(WithContextSamples(8))

		assert.Equal(t, 8, cfg.ContextSamples)
	})

	t.Run("with multiple options", func(t *testing.T) {
		cfg := NewConfig(
			WithHost("http://custom:8080/v1"),
			WithTaggerModel("custom-tagger"),
			WithTesterModel("custom-tester"),
			WithContextSamples(6),
		)

		assert.Equal(t, "http://custom:8080/v1", cfg.TaggerHost)
		assert.Equal(t, "http://custom:8080/v1", cfg.TesterHost)
		assert.Equal(t, "custom-tagger", cfg.TaggerModel)
		assert.Equal(t, "custom-tester", cfg.TesterModel)
		assert.Equal(t, 6, cfg.ContextSamples)
	})
}

func TestConfigNormalize(t *testing.T) {
	tests := []struct {
		name           string
		taggerHost     string
		testerHost     string
		expectedTagger string
		expectedTester string
	}{
		{
			name:           "already has /v1",
			taggerHost:     "http://localhost:11434/v1",
			testerHost:     "http://localhost:11434/v1",
			expectedTagger: "http://localhost:11434/v1",
			expectedTester: "http://localhost:11434/v1",
		},
		{
			name:           "missing /v1",
			taggerHost:     "http://localhost:11434",
			testerHost:     "http://localhost:11434",
			expectedTagger: "http://localhost:11434/v1",
			expectedTester: "http://localhost:11434/v1",
		},
		{
			name:           "has trailing slash",
			taggerHost:     "http://localhost:11434/",
			testerHost:     "http://localhost:11434/",
			expectedTagger: "http://localhost:11434/v1",
			expectedTester: "http://localhost:11434/v1",
		},
		{
			name:           "empty hosts",
			taggerHost:     "",
			testerHost:     "",
			expectedTagger: "",
			expectedTester: "",
		},
		{
			name:           "different formats",
			taggerHost:     "http://tag:8080",
			testerHost:     "http://test:9090/v1",
			expectedTagger: "http://tag:8080/v1",
			expectedTester: "http://test:9090/v1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{
				TaggerHost: tt.taggerHost,
				TesterHost: tt.testerHost,
			}

			cfg.Normalize()

			assert.Equal(t, tt.expectedTagger, cfg.TaggerHost)
			assert.Equal(t, tt.expectedTester, cfg.TesterHost)
		})
	}
}

func TestConfigValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			TaggerHost:     "http://localhost:11434",
			TesterHost:     "http://localhost:11434",
			TaggerModel:    "qwen2.5:3b",
			TesterModel:    "qwen2.5:3b",
			ContextSamples: 4,
		}
	}

	t.Run("valid config", func(t *testing.T) {
		cfg := valid()
		err := cfg.Validate()
		assert.NoError(t, err)

		// Should also normalize
		assert.Equal(t, "http://localhost:11434/v1", cfg.TaggerHost)
		assert.Equal(t, "http://localhost:11434/v1", cfg.TesterHost)
	})

	t.Run("missing tagger host", func(t *testing.T) {
		cfg := valid()
		cfg.TaggerHost = ""

		err := cfg.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "TaggerHost")
	})

	t.Run("missing tester host", func(t *testing.T) {
		cfg := valid()
		cfg.TesterHost = ""

		err := cfg.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "TesterHost")
	})

	t.Run("missing tagger model", func(t *testing.T) {
		cfg := valid()
		cfg.TaggerModel = ""

		err := cfg.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "TaggerModel")
	})

	t.Run("missing tester model", func(t *testing.T) {
		cfg := valid()
		cfg.TesterModel = ""

		err := cfg.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "TesterModel")
	})

	t.Run("context samples too low", func(t *testing.T) {
		cfg := valid()
		cfg.ContextSamples = 0

		err := cfg.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "ContextSamples")
	})

	t.Run("context samples too high", func(t *testing.T) {
		cfg := valid()
		cfg.ContextSamples = 21

		err := cfg.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "ContextSamples")
	})

	t.Run("context samples at boundaries", func(t *testing.T) {
		cfg := valid()
		cfg.ContextSamples = 1
		assert.NoError(t, cfg.Validate())

		cfg.ContextSamples = 20
		assert.NoError(t, cfg.Validate())
	})
}

func TestConfigValidate_Integration(t *testing.T) {
	// Test that NewConfig produces a valid configuration
	cfg := NewConfig()
	err := cfg.Validate()
	require.NoError(t, err)

	// Test that DefaultConfig produces a valid configuration
	cfg = DefaultConfig()
	err = cfg.Validate()
	require.NoError(t, err)
}
