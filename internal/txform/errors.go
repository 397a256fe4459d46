package txform

import "errors"

// Validation failures are user-correctable and never issue a network call.
var (
	ErrInvalidAmount         = errors.New("amount must be a positive number")
	ErrMissingDescription    = errors.New("a description is required")
	ErrMissingAccount        = errors.New("select the account(s) for this operation")
	ErrMissingServiceDetails = errors.New("service name and supply code are required")

	ErrSubmissionInFlight = errors.New("a submission is already in progress")
)
