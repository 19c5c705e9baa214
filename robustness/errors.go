package robustness

import "errors"

// ErrUnresolvedBound indicates a symbolic interval endpoint with no entry
// in the binding passed to Lower.
var ErrUnresolvedBound = errors.New("robustness: symbolic bound has no binding")
