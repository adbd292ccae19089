package domain

import "errors"

var (
	// ErrInternalServerError will throw if any the Internal Server Error happen
	ErrInternalServerError = errors.New("Internal Server Error")
	// ErrNotFound will throw if the requested player does not exist upstream
	ErrNotFound = errors.New("Player not found")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput = errors.New("Given Param is not valid")
	// ErrUpstreamError will throw if an external service fails, times out or
	// returns a malformed payload
	ErrUpstreamError = errors.New("Upstream service error")
)
