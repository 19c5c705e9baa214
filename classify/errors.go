package classify

import "errors"

// ErrUnknownStrategy indicates a Strategy value none of the five
// registered classifiers recognize.
var ErrUnknownStrategy = errors.New("classify: unknown strategy name")
