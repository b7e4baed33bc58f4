// Package persist is the durability boundary for the graph: versioned
// snapshot encoding, a badger-backed key-value store with a plain-file
// fallback, and a debounced saver implementing the staged-commit
// protocol with backup rotation.
package persist
