package ingestion

import "errors"

var (
	// ErrEmptyPhrase indicates the input text was empty or whitespace.
	ErrEmptyPhrase = errors.New("empty phrase text")

	// ErrNoTokens indicates the tagger produced no tokens for the text.
	ErrNoTokens = errors.New("no tokens produced")

	// ErrInvalidWindow indicates a bad chunk window configuration.
	ErrInvalidWindow = errors.New("invalid chunk window")
)
