package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrServiceUnavailable  = errors.New("service unavailable")
	ErrUnexpectedStatus    = errors.New("unexpected status")

	// ErrInvalidURL is returned by the constructor for a malformed endpoint.
	ErrInvalidURL = errors.New("invalid token url")
	// ErrDecodeToken is returned when the body is not the expected JSON.
	ErrDecodeToken = errors.New("error decoding token response")
	// ErrEmptyToken is returned when the body decodes but carries no token.
	ErrEmptyToken = errors.New("token response has empty token")
)
