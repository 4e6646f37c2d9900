package client

import "errors"

var (
	ErrUnavailable     = errors.New("server unavailable")
	ErrUnauthorized    = errors.New("unauthorized")
	ErrConflict        = errors.New("already registered")
	ErrNotEligible     = errors.New("insufficient points")
	ErrNotFound        = errors.New("not found")
	ErrTooManyRequests = errors.New("too many requests, try again later")
)
