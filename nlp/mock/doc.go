// Package mock provides deterministic test doubles for the nlp
// capability interfaces.
//
// The defaults are small rule-based heuristics: a closed-class lexicon
// plus suffix rules for the tagger, and a fixed polysemy lexicon for the
// context tester. Both doubles expose function fields to override
// behavior per test.
package mock
