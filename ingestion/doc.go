// Package ingestion turns raw phrase text into graph nodes and catalog
// entries: tokenize and tag via the external capability, upsert words,
// merge proper-noun runs, build the phrase node, and extract chunks.
package ingestion
