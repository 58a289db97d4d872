package cli

import "errors"

var (
	ErrInvalidConfig    = errors.New("cli: invalid configuration")
	ErrUnknownFormat    = errors.New("cli: unknown output format")
	ErrUnknownPrecision = errors.New("cli: unknown precision")
	ErrTemplateRequired = errors.New("cli: template format requires --template")
	ErrInvalidTemplate  = errors.New("cli: failed to parse template")
	ErrInvalidID        = errors.New("cli: invalid ksuid argument")
	ErrWriteOutput      = errors.New("cli: failed to write output")
)
