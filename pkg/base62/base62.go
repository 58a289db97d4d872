package base62

import (
	"bytes"
	"errors"
	"fmt"
	"slices"
)

// Alphabet lists the digits in ascending value order.
const Alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

const (
	base    = 62
	invalid = 0xFF
)

var decodeMap = func() [256]byte {
	var m [256]byte
	for i := range m {
		m[i] = invalid
	}
	for i := range len(Alphabet) {
		m[Alphabet[i]] = byte(i)
	}
	return m
}()

// EncodeToString returns the base62 form of src, read as a big-endian
// unsigned integer, left-padded with '0' to at least width characters.
// Values that need more than width digits are never truncated.
func EncodeToString(src []byte, width int) string {
	// Long division by 62 over a scratch copy; each pass yields the least
	// significant remaining digit.
	num := bytes.TrimLeft(src, "\x00")
	num = bytes.Clone(num)

	digits := make([]byte, 0, max(width, len(src)*4/3+1))
	for len(num) > 0 {
		var rem uint
		for i, b := range num {
			acc := rem<<8 | uint(b)
			num[i] = byte(acc / base)
			rem = acc % base
		}
		digits = append(digits, Alphabet[rem])

		for len(num) > 0 && num[0] == 0 {
			num = num[1:]
		}
	}

	if len(digits) == 0 && width == 0 {
		return "0"
	}
	for len(digits) < width {
		digits = append(digits, Alphabet[0])
	}

	slices.Reverse(digits)
	return string(digits)
}

// DecodeString parses s into exactly size big-endian bytes.
func DecodeString(s string, size int) ([]byte, error) {
	if s == "" {
		return nil, ErrEmpty
	}

	for i := range len(s) {
		if decodeMap[s[i]] == invalid {
			return nil, errors.Join(ErrInvalidCharacter, fmt.Errorf("byte %#02x at offset %d", s[i], i))
		}
	}

	out := make([]byte, size)
	for i := range len(s) {
		carry := uint(decodeMap[s[i]])
		for j := size - 1; j >= 0; j-- {
			acc := uint(out[j])*base + carry
			out[j] = byte(acc)
			carry = acc >> 8
		}
		if carry != 0 {
			return nil, errors.Join(ErrOverflow, fmt.Errorf("%d characters do not fit in %d bytes", len(s), size))
		}
	}

	return out, nil
}

// Valid reports whether s is non-empty and uses only alphabet characters.
func Valid(s string) bool {
	if s == "" {
		return false
	}
	for i := range len(s) {
		if decodeMap[s[i]] == invalid {
			return false
		}
	}
	return true
}
