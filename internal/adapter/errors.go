package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("completion api unauthorized")
	ErrPaymentRequired     = errors.New("completion api credits exhausted")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrTooManyRequests     = errors.New("completion api rate limit exceeded")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrUnavailable         = errors.New("completion api unavailable")

	ErrRequestFailed     = errors.New("completion request failed")
	ErrMalformedResponse = errors.New("malformed completion response")
)
