package synth

import "errors"

// ErrNoParamBounds indicates a symbolic bound name with no entry in the
// Bounds map passed to Solve.
var ErrNoParamBounds = errors.New("synth: symbolic bound has no registered numeric range")
