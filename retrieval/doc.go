// Package retrieval surfaces phrases related to a seed phrase by
// lemma overlap, shared chunk patterns and catalog likes, plus the
// top-scoring chunks among the related set.
package retrieval
