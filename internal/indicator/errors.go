package indicator

import "errors"

// Failure categories. Callers match with errors.Is; every error returned by
// this package wraps exactly one of them.
var (
	// ErrInvalidParameter marks a non-positive window or period argument.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrInsufficientData marks a series too short for the requested
	// summary to exist at all. Warm-up gaps inside a derived series are
	// normal undefined points, not errors.
	ErrInsufficientData = errors.New("insufficient data")

	// ErrDegenerateInput marks a zero mean, zero minimum or other zero
	// denominator that would otherwise surface as infinity.
	ErrDegenerateInput = errors.New("degenerate input")

	// ErrMissingField marks a request for a price column the series does
	// not carry.
	ErrMissingField = errors.New("missing field")
)
