package services

import "errors"

// Error kinds surfaced by the services. Handlers pick status codes and
// wire shapes with errors.Is; messages travel wrapped around these.
var (
	// ErrValidation covers missing or malformed required input: absent
	// dialect parameter, out-of-range rating, unknown parent id,
	// unknown export kind.
	ErrValidation = errors.New("validation error")
	// ErrInsufficientData means a dialect has fewer stored pairs than a
	// sample requires.
	ErrInsufficientData = errors.New("insufficient data")
	// ErrNoData means the plausibility table is empty.
	ErrNoData = errors.New("no data")
	// ErrDuplicateSubmission means the evaluator email was already used.
	ErrDuplicateSubmission = errors.New("duplicate submission")
	// ErrUnauthorized covers failed staff logins and bad tokens.
	ErrUnauthorized = errors.New("unauthorized")
)
