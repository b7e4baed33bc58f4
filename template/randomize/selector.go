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
	"math/rand"
)

// Selector chooses one of n candidate templates. Weights are optional;
// policies that ignore them accept nil.
type Selector interface {
	Next(n int, weights []float64, rng *rand.Rand) (int, error)
}

// Uniform picks a candidate uniformly at random.
type Uniform struct{}

func (Uniform) Next(n int, _ []float64, rng *rand.Rand) (int, error) {
	if n <= 0 {
		return 0, ErrNoCandidates
	}
	return rng.Intn(n), nil
}

// Weighted picks proportionally to the given weights. Missing or
// non-positive total weight degrades to uniform.
type Weighted struct{}

func (Weighted) Next(n int, weights []float64, rng *rand.Rand) (int, error) {
	if n <= 0 {
		return 0, ErrNoCandidates
	}
	total := 0.0
	for i := 0; i < n && i < len(weights); i++ {
		if weights[i] > 0 {
			total += weights[i]
		}
	}
	if total <= 0 {
		return rng.Intn(n), nil
	}
	target := rng.Float64() * total
	for i := 0; i < n && i < len(weights); i++ {
		if weights[i] <= 0 {
			continue
		}
		target -= weights[i]
		if target < 0 {
			return i, nil
		}
	}
	return n - 1, nil
}

// Shuffle walks a random permutation of the candidates, reshuffling
// once every candidate has been returned. Stateful across calls.
type Shuffle struct {
	order []int
	pos   int
}

func (s *Shuffle) Next(n int, _ []float64, rng *rand.Rand) (int, error) {
	if n <= 0 {
		return 0, ErrNoCandidates
	}
	if len(s.order) != n || s.pos >= len(s.order) {
		s.order = rng.Perm(n)
		s.pos = 0
	}
	idx := s.order[s.pos]
	s.pos++
	return idx, nil
}

// RoundRobin cycles through candidates in order. Stateful across calls.
type RoundRobin struct {
	next int
}

func (r *RoundRobin) Next(n int, _ []float64, _ *rand.Rand) (int, error) {
	if n <= 0 {
		return 0, ErrNoCandidates
	}
	idx := r.next % n
	r.next = (idx + 1) % n
	return idx, nil
}
