// Package retag re-runs the context-testing capability over the words
// of a loaded graph in batches, widening POS potential sets that were
// ingested while the capability was degraded or unavailable.
package retag
