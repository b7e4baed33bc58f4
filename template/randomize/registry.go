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
	"fmt"

	"github.com/CalmEddy/SimpleThink-v3-sub002/core"
	"gopkg.in/yaml.v3"
)

// strategySpec is one named strategy in a YAML configuration. Fields
// irrelevant to the named strategy are ignored.
type strategySpec struct {
	Name     string             `yaml:"name"`
	Prob     float64            `yaml:"prob"`
	MaxMarks int                `yaml:"max_marks"`
	Index    int                `yaml:"index"`
	Indices  []int              `yaml:"indices"`
	Pattern  string             `yaml:"pattern"`
	Probs    map[string]float64 `yaml:"probs"`
}

type strategyConfig struct {
	Strategies []strategySpec `yaml:"strategies"`
}

// LoadStrategies parses a YAML strategy configuration into a resolved
// pipeline. Names are resolved here, at configuration time; an unknown
// name or an invalid POS in a probability table fails the whole load.
func LoadStrategies(data []byte) (*Pipeline, error) {
	var cfg strategyConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing strategy config: %w", err)
	}

	strategies := make([]Strategy, 0, len(cfg.Strategies))
	for _, spec := range cfg.Strategies {
		strategy, err := resolve(spec)
		if err != nil {
			return nil, err
		}
		strategies = append(strategies, strategy)
	}
	return NewPipeline(strategies...), nil
}

func resolve(spec strategySpec) (Strategy, error) {
	switch spec.Name {
	case "jitter":
		return &Jitter{Prob: spec.Prob, MaxMarks: spec.MaxMarks}, nil
	case "positional":
		return &Positional{Index: spec.Index}, nil
	case "clickable":
		return &Clickable{Indices: spec.Indices}, nil
	case "pos-table":
		probs := make(map[core.POS]float64, len(spec.Probs))
		for raw, prob := range spec.Probs {
			tag := core.POS(raw)
			if !core.IsValidPOS(tag) {
				return nil, fmt.Errorf("%w: %q in pos-table", core.ErrUnknownPOS, raw)
			}
			probs[tag] = prob
		}
		return &POSTable{Probs: probs}, nil
	case "regex":
		return &RegexGate{Pattern: spec.Pattern, Prob: spec.Prob}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, spec.Name)
	}
}
