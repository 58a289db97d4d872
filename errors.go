package ksuid

import "errors"

// Sentinel errors returned by construction and parsing.
var (
	// ErrInvalidByteLength is returned when raw or decoded bytes are not exactly Size bytes long.
	ErrInvalidByteLength = errors.New("ksuid: invalid byte length")

	// ErrInvalidPayloadLength is returned when a caller-supplied payload has the wrong size for the variant.
	ErrInvalidPayloadLength = errors.New("ksuid: invalid payload length")

	// ErrInvalidEncoding is returned for empty text or text with characters outside the base62 alphabet.
	ErrInvalidEncoding = errors.New("ksuid: invalid base62 encoding")

	// ErrTimestampOutOfRange is returned when a time predates Epoch or overflows the timestamp field.
	ErrTimestampOutOfRange = errors.New("ksuid: timestamp out of range")

	// ErrRandomSource is returned when the random reader fails to supply a payload.
	ErrRandomSource = errors.New("ksuid: failed to read random payload")

	// ErrUnsupportedScanType is returned by Scan for database values that are neither text nor bytes.
	ErrUnsupportedScanType = errors.New("ksuid: unsupported scan type")
)
