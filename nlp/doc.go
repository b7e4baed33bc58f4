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


// Package nlp provides abstractions for the external language capabilities
// consumed by SimpleThink.
//
// This package defines interfaces for the two operations the core depends
// on: tagging raw text into token/lemma/POS triples, and probing a single
// lemma for part-of-speech polysemy by testing it in sample contexts. It
// follows the dependency inversion principle, allowing the graph and
// ingestion logic to depend on abstractions rather than concrete
// implementations.
//
// # Design Principles
//
// The package is designed around three key interfaces:
//
//   - Tagger: turns text into tagged tokens
//   - ContextTester: reports the POS tags attested for a lemma
//   - Provider: aggregates both for convenient initialization
//
// # Implementation Packages
//
// The nlp package includes two implementation sub-packages:
//
//   - nlp/openai: production implementation against OpenAI-compatible APIs
//   - nlp/mock: deterministic heuristic doubles for testing without
//     external dependencies
//
// Public constructors in the implementation packages return the interface
// types to enforce abstraction; mock constructors return concrete types so
// tests can reach their function-field overrides.
//
// Tag values are drawn from the fixed vocabulary in core.POSTags. Tags are
// heuristic or sampled observations, not ground-truth parses.
package nlp
