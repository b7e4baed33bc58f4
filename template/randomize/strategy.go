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


package randomize

import (
	"log/slog"
	"math/rand"
	"regexp"
	"unicode"

	"github.com/CalmEddy/SimpleThink-v3-sub002/core"
	"github.com/CalmEddy/SimpleThink-v3-sub002/template"
)

// Strategy decides which tokens to mark for substitution. Apply
// returns a new token slice; marks may only be added, never removed.
type Strategy interface {
	Name() string
	Apply(tokens []template.Token, rng *rand.Rand) ([]template.Token, error)
}

// surfaceOf is the text a token contributes to eligibility checks: the
// literal surface for literals, the POS name for uninstantiated slots.
func surfaceOf(tok *template.Token) string {
	if tok.Text != "" {
		return tok.Text
	}
	return string(tok.POS)
}

// randomizable reports whether the token may be marked: its surface
// must contain at least one alphabetic character.
func randomizable(tok *template.Token) bool {
	for _, r := range surfaceOf(tok) {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}

func cloneTokens(tokens []template.Token) []template.Token {
	return append([]template.Token(nil), tokens...)
}

// Jitter marks each eligible token with probability Prob, up to
// MaxMarks new marks per pass (0 means unlimited).
type Jitter struct {
	Prob     float64
	MaxMarks int
}

func (j *Jitter) Name() string { return "jitter" }

func (j *Jitter) Apply(tokens []template.Token, rng *rand.Rand) ([]template.Token, error) {
	out := cloneTokens(tokens)
	marked := 0
	for i := range out {
		if j.MaxMarks > 0 && marked >= j.MaxMarks {
			break
		}
		if out[i].Marked || !randomizable(&out[i]) {
			continue
		}
		if rng.Float64() < j.Prob {
			out[i].Marked = true
			marked++
		}
	}
	return out, nil
}

// Positional marks the single token at Index. An out-of-range index or
// an ineligible token is a no-op.
type Positional struct {
	Index int
}

func (p *Positional) Name() string { return "positional" }

func (p *Positional) Apply(tokens []template.Token, rng *rand.Rand) ([]template.Token, error) {
	out := cloneTokens(tokens)
	if p.Index >= 0 && p.Index < len(out) && randomizable(&out[p.Index]) {
		out[p.Index].Marked = true
	}
	return out, nil
}

// Clickable marks an explicit selection of token indices, as produced
// by a user clicking slots in a rendered template.
type Clickable struct {
	Indices []int
}

func (c *Clickable) Name() string { return "clickable" }

func (c *Clickable) Apply(tokens []template.Token, rng *rand.Rand) ([]template.Token, error) {
	out := cloneTokens(tokens)
	for _, idx := range c.Indices {
		if idx >= 0 && idx < len(out) && randomizable(&out[idx]) {
			out[idx].Marked = true
		}
	}
	return out, nil
}

// POSTable marks slot tokens with a per-POS probability. Tokens whose
// POS is absent from the table are left alone.
type POSTable struct {
	Probs map[core.POS]float64
}

func (p *POSTable) Name() string { return "pos-table" }

func (p *POSTable) Apply(tokens []template.Token, rng *rand.Rand) ([]template.Token, error) {
	out := cloneTokens(tokens)
	for i := range out {
		if out[i].Kind != template.TokenSlot || out[i].Marked || !randomizable(&out[i]) {
			continue
		}
		prob, ok := p.Probs[out[i].POS]
		if !ok {
			continue
		}
		if rng.Float64() < prob {
			out[i].Marked = true
		}
	}
	return out, nil
}

// RegexGate marks tokens whose surface matches Pattern, with
// probability Prob. An invalid pattern degrades to a no-op: the pass
// logs a warning and returns the input unchanged.
type RegexGate struct {
	Pattern string
	Prob    float64
}

func (r *RegexGate) Name() string { return "regex" }

func (r *RegexGate) Apply(tokens []template.Token, rng *rand.Rand) ([]template.Token, error) {
	re, err := regexp.Compile(r.Pattern)
	if err != nil {
		slog.Warn("skipping regex randomization pass", "pattern", r.Pattern, "err", err)
		return tokens, nil
	}
	out := cloneTokens(tokens)
	for i := range out {
		if out[i].Marked || !randomizable(&out[i]) {
			continue
		}
		if re.MatchString(surfaceOf(&out[i])) && rng.Float64() < r.Prob {
			out[i].Marked = true
		}
	}
	return out, nil
}
