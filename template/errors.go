package template

import "errors"

// ErrMalformedTemplate indicates unbalanced brackets or an unparseable
// directive. The whole parse aborts; no partial token list is returned.
var ErrMalformedTemplate = errors.New("malformed template")
