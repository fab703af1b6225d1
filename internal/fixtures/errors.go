package fixtures

import "errors"

// ErrTooFewActivities indicates a fixture's size parameter (chain length,
// fan-out width, ...) is smaller than that fixture's minimum.
var ErrTooFewActivities = errors.New("fixtures: parameter too small")
