package wave

import "errors"

var (
	// ErrInvalidParameter reports a malformed or out-of-range scalar input.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrPreconditionViolated reports a query against state that was never built.
	ErrPreconditionViolated = errors.New("precondition violated")
)
