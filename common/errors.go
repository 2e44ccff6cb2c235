package common

import "errors"

var (
	// ErrorInvalidInput reports malformed or out-of-domain input, e.g. empty
	// residual sequences, non-positive decay rates or invalid lag counts.
	ErrorInvalidInput = errors.New("invalid input")

	// ErrorShapeMismatch reports inputs that disagree on dimensionality,
	// e.g. models with different numbers of event types or ragged tensors.
	ErrorShapeMismatch = errors.New("shape mismatch")
)
