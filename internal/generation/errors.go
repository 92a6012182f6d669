package generation

import "errors"

var (
	// ErrInsufficientContent means the source text is too short to ground a
	// quiz. Fatal for the session.
	ErrInsufficientContent = errors.New("source text does not contain enough text to generate a meaningful quiz")

	// ErrBackendUnavailable means the generation backend could not be
	// reached. Fatal for the session.
	ErrBackendUnavailable = errors.New("generation backend unreachable")

	// ErrParse means the backend returned output that is not JSON even
	// after best-effort extraction. Retried within the attempt budget.
	ErrParse = errors.New("generation backend returned malformed output")

	// ErrValidation means a candidate question failed validation. Retried
	// within the attempt budget.
	ErrValidation = errors.New("candidate question failed validation")
)
