package modwt

import "errors"

// Errors returned by the transform.
var (
	ErrEmptySignal          = errors.New("modwt: empty signal")
	ErrNonFiniteSample      = errors.New("modwt: non-finite sample")
	ErrInvalidLevel         = errors.New("modwt: level must be >= 1")
	ErrLevelOutOfRange      = errors.New("modwt: level out of range")
	ErrInvalidConfiguration = errors.New("modwt: invalid configuration")
	ErrInvalidCoefficients  = errors.New("modwt: invalid coefficients")
)
