package models

import "errors"

// Model validation and operation errors
var (
	// Authorization errors (403)
	ErrNonceMissing = errors.New("nonce is missing")
	ErrNonceInvalid = errors.New("nonce is invalid")
	ErrNonceExpired = errors.New("nonce has expired")

	// Throttling errors (429)
	ErrRateLimitExceeded = errors.New("rate limit exceeded")

	// Malformed request errors (400)
	ErrNoData         = errors.New("no data received")
	ErrInvalidJSON    = errors.New("invalid JSON")
	ErrMissingAnswers = errors.New("missing answers")

	// Catalog errors
	ErrQuestionNotFound = errors.New("question not found")
)

// IsAuthorizationError returns true if the error is an anti-forgery token failure
func IsAuthorizationError(err error) bool {
	return errors.Is(err, ErrNonceMissing) ||
		errors.Is(err, ErrNonceInvalid) ||
		errors.Is(err, ErrNonceExpired)
}

// IsThrottlingError returns true if the error is a rate limit failure
func IsThrottlingError(err error) bool {
	return errors.Is(err, ErrRateLimitExceeded)
}

// IsMalformedRequestError returns true if the error is a client input failure
func IsMalformedRequestError(err error) bool {
	return errors.Is(err, ErrNoData) ||
		errors.Is(err, ErrInvalidJSON) ||
		errors.Is(err, ErrMissingAnswers)
}
