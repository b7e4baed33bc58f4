package randomize

import "errors"

var (
	// ErrUnknownStrategy indicates a strategy name with no registered
	// implementation. Raised at configuration load, not at apply time.
	ErrUnknownStrategy = errors.New("unknown strategy")

	// ErrNoCandidates indicates a selection over an empty candidate set.
	ErrNoCandidates = errors.New("no candidates")
)
