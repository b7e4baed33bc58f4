// Package graph implements the in-memory knowledge graph: word, phrase
// and topic nodes with content-derived identities, a lemma index, and
// snapshot export/restore. The graph assumes a single logical writer;
// it performs no internal locking.
package graph
