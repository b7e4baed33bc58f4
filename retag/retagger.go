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


package retag

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/CalmEddy/SimpleThink-v3-sub002/core"
	"github.com/CalmEddy/SimpleThink-v3-sub002/graph"
	"github.com/CalmEddy/SimpleThink-v3-sub002/nlp"
)

// Config tunes a retagging run.
type Config struct {
	// BatchSize is the number of words per batch.
	BatchSize int
	// ReportInterval is how often progress is printed, in words.
	ReportInterval int
	// MaxRetries bounds attempts per word against the capability.
	MaxRetries int
	// RetryDelay is the base delay for exponential backoff.
	RetryDelay time.Duration
}

// DefaultConfig returns the standard retagging configuration.
func DefaultConfig() Config {
	return Config{
		BatchSize:      50,
		ReportInterval: 25,
		MaxRetries:     3,
		RetryDelay:     time.Second,
	}
}

func (c Config) validate() error {
	if c.BatchSize <= 0 {
		return fmt.Errorf("%w: batch size %d", ErrInvalidConfig, c.BatchSize)
	}
	if c.ReportInterval <= 0 {
		return fmt.Errorf("%w: report interval %d", ErrInvalidConfig, c.ReportInterval)
	}
	if c.MaxRetries <= 0 {
		return fmt.Errorf("%w: max retries %d", ErrInvalidConfig, c.MaxRetries)
	}
	return nil
}

// Summary reports the outcome of a retagging run.
type Summary struct {
	Total   int
	Widened int
	Failed  int
}

// Retagger drives a batch re-analysis of every word in a graph.
type Retagger struct {
	tester   nlp.ContextTester
	config   Config
	progress io.Writer
	logger   *slog.Logger
}

// NewRetagger creates a retagger using the given context-testing
// capability. Progress lines go to progress; pass io.Discard to
// silence them.
func NewRetagger(tester nlp.ContextTester, config Config, progress io.Writer) (*Retagger, error) {
	if tester == nil {
		return nil, fmt.Errorf("nil tester")
	}
	if progress == nil {
		return nil, fmt.Errorf("nil progress writer")
	}
	if err := config.validate(); err != nil {
		return nil, err
	}
	return &Retagger{
		tester:   tester,
		config:   config,
		progress: progress,
		logger:   slog.Default().With("component", "retag"),
	}, nil
}

// Run re-tests every word in the graph. Results merge through the
// graph's upsert so potential sets only ever widen. Per-word failures
// are collected and aggregated in the returned error; the run itself
// continues. Cancellation stops the run between words.
func (r *Retagger) Run(ctx context.Context, g *graph.Graph) (*Summary, error) {
	words := g.Words()
	summary := &Summary{Total: len(words)}

	tracker := NewProgressTracker(r.progress, len(words), r.config.ReportInterval)
	tracker.Start()
	defer tracker.Finish()

	var failures []error
	for start := 0; start < len(words); start += r.config.BatchSize {
		end := min(start+r.config.BatchSize, len(words))
		for _, word := range words[start:end] {
			if err := ctx.Err(); err != nil {
				return summary, errors.Join(append(failures, err)...)
			}

			merged, err := r.retagWord(ctx, g, word)
			if err != nil {
				summary.Failed++
				failures = append(failures, fmt.Errorf("word %q: %w", word.Lemma, err))
			} else if merged {
				summary.Widened++
			}
			tracker.Increment(1)
		}
		r.logger.Debug("batch complete", "through", end, "total", len(words))
	}

	r.logger.Info("retagging finished",
		"total", summary.Total,
		"widened", summary.Widened,
		"failed", summary.Failed,
		"elapsed", tracker.Elapsed())
	return summary, errors.Join(failures...)
}

// retagWord probes one lemma and merges any newly attested tags.
// Reports whether the word's potential set actually grew.
func (r *Retagger) retagWord(ctx context.Context, g *graph.Graph, word *core.WordNode) (bool, error) {
	var report *nlp.WordReport
	err := RetryWithBackoff(ctx, func() error {
		var err error
		report, err = r.tester.TestWord(ctx, word.Lemma)
		return err
	}, r.config.MaxRetries, r.config.RetryDelay)
	if err != nil {
		return false, err
	}

	var fresh []core.POS
	for _, tag := range report.UniquePOS {
		if !word.HasPotential(tag) {
			fresh = append(fresh, tag)
		}
	}
	if len(fresh) == 0 {
		return false, nil
	}

	// Merge through the graph so the monotone-potential invariant and
	// primary recomputation stay in one place.
	_, err = g.UpsertWord(word.Text, word.Lemma, fresh, word.PrimaryPOS)
	if err != nil {
		return false, err
	}
	return true, nil
}
