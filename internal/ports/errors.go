package ports

import "errors"

// ErrNotFound is the explicit "no result" variant for lookups where an empty
// answer is a recognized outcome rather than a provider failure.
var ErrNotFound = errors.New("not found")
