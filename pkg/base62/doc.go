// Package base62 converts between big-endian unsigned integers of arbitrary
// width and their base62 text form.
//
// The alphabet is ordered 0-9, A-Z, a-z, so digits compare in the same order
// as their values. When every encoded value is padded to the same width,
// comparing two strings byte by byte gives the same result as comparing the
// underlying integers. That property is what keeps KSUID strings sortable.
//
// # Encoding
//
// EncodeToString takes the raw bytes of the integer and a minimum width:
//
//	s := base62.EncodeToString([]byte{0x01, 0x00}, 0)  // "48"
//	s = base62.EncodeToString([]byte{0x01, 0x00}, 6)   // "000048"
//
// A zero value with width 0 encodes as "0", so unpadded output is never empty.
//
// # Decoding
//
// DecodeString parses text into a fixed number of bytes, left-padded with
// zeros:
//
//	b, err := base62.DecodeString("000048", 2) // []byte{0x01, 0x00}
//
// It returns ErrEmpty for empty input, ErrInvalidCharacter when a byte is
// outside the alphabet, and ErrOverflow when the value needs more bytes than
// requested. Every character is validated before any arithmetic, so a string
// that is both too large and malformed reports ErrInvalidCharacter.
package base62
