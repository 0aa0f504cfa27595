package service

import "errors"

var (
	ErrEmptyBody       = errors.New("empty request body")
	ErrMalformedJSON   = errors.New("invalid JSON")
	ErrMissingEmployee = errors.New("employee is required")
)
