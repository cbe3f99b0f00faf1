package adams

import "errors"

// Domain errors for problem construction and stepping.
var (
	// ErrInvalidRange indicates x_final does not exceed the last initial x.
	ErrInvalidRange = errors.New("adams: final x must exceed last initial x")

	// ErrInvalidStepSize indicates a zero or negative step size.
	ErrInvalidStepSize = errors.New("adams: step size must be positive")

	// ErrNonUniformSpacing indicates consecutive initial x-values are not
	// separated by the step size.
	ErrNonUniformSpacing = errors.New("adams: x-values must be equally spaced by step size")

	// ErrInsufficientPoints indicates the starting samples do not match the
	// order requested by the chosen entry point.
	ErrInsufficientPoints = errors.New("adams: insufficient initial points")
)
