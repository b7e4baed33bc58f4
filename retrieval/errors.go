package retrieval

import "errors"

// ErrPhraseNotFound indicates the seed phrase id does not resolve to a
// phrase node in the graph.
var ErrPhraseNotFound = errors.New("seed phrase not found")
