package base62

import "errors"

var (
	// ErrEmpty is returned when decoding an empty string.
	ErrEmpty = errors.New("base62: empty input")

	// ErrInvalidCharacter is returned when the input contains a byte outside the alphabet.
	ErrInvalidCharacter = errors.New("base62: invalid character")

	// ErrOverflow is returned when the decoded value does not fit the requested size.
	ErrOverflow = errors.New("base62: value overflows output size")
)
