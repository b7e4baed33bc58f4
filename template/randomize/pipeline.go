package randomize

import (
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/CalmEddy/SimpleThink-v3-sub002/template"
)

// Pipeline runs strategies in order. Each pass may only add marks; a
// failing pass (error or panic) is skipped and the pipeline continues
// with the tokens from the previous pass.
type Pipeline struct {
	strategies []Strategy
	logger     *slog.Logger
}

// NewPipeline creates a pipeline over the given strategies.
func NewPipeline(strategies ...Strategy) *Pipeline {
	return &Pipeline{
		strategies: strategies,
		logger:     slog.Default().With("component", "randomize"),
	}
}

// Apply runs all passes over the token sequence.
func (p *Pipeline) Apply(tokens []template.Token, rng *rand.Rand) []template.Token {
	current := tokens
	for _, strategy := range p.strategies {
		next, err := applyOne(strategy, current, rng)
		if err != nil {
			p.logger.Warn("randomization pass failed", "strategy", strategy.Name(), "err", err)
			continue
		}
		current = next
	}
	return current
}

// applyOne isolates a single pass, converting panics into errors.
func applyOne(strategy Strategy, tokens []template.Token, rng *rand.Rand) (out []template.Token, err error) {
	defer func() {
		if r := recover(); r != nil {
			out = nil
			err = fmt.Errorf("strategy panic: %v", r)
		}
	}()
	return strategy.Apply(tokens, rng)
}

// MergeMarks unions the marked status across independently computed
// outcomes of the same token sequence. A token is marked in the result
// if any outcome marked it; marks are never intersected away.
func MergeMarks(outcomes ...[]template.Token) []template.Token {
	if len(outcomes) == 0 {
		return nil
	}
	merged := append([]template.Token(nil), outcomes[0]...)
	for _, outcome := range outcomes[1:] {
		for i := range merged {
			if i < len(outcome) && outcome[i].Marked {
				merged[i].Marked = true
			}
		}
	}
	return merged
}
