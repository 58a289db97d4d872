package logger

import "errors"

var (
	// ErrUnknownLevel is returned by ParseLevel for unrecognized level names.
	ErrUnknownLevel = errors.New("logger: unknown level")
	ErrSentryInit   = errors.New("logger: failed to initialize sentry")
)
