package ksuid

import (
	"bytes"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrymomot/ksuid/pkg/base62"
)

const (
	// Epoch is the Unix time, in seconds, that timestamp fields count from.
	Epoch = 1_400_000_000

	// Size is the length of every id in bytes, for both variants.
	Size = 20

	// StringLen is the length of the base62 text form.
	StringLen = 27
)

// ID is a K-sortable identifier with the timestamp layout chosen by P.
// The zero value is the nil id: the Epoch instant with an all-zero payload.
//
// IDs are values. Two ids are equal when their bytes are equal, so they can
// be compared with == and used as map keys.
type ID[P Precision] [Size]byte

type (
	// KSUID is the standard variant with second resolution.
	KSUID = ID[Seconds]

	// KSUIDMs is the millisecond variant with 1/256 second resolution.
	KSUIDMs = ID[Millis]
)

var (
	// Nil is the smallest KSUID.
	Nil KSUID
	// Max is the largest KSUID.
	Max = maxID[Seconds]()

	// NilMs is the smallest KSUIDMs.
	NilMs KSUIDMs
	// MaxMs is the largest KSUIDMs.
	MaxMs = maxID[Millis]()
)

func maxID[P Precision]() ID[P] {
	var id ID[P]
	for i := range id {
		id[i] = 0xFF
	}
	return id
}

// FromParts builds a KSUID from t, truncated to whole seconds, and a
// 16-byte payload.
func FromParts(t time.Time, payload []byte) (KSUID, error) {
	return fromParts[Seconds](t, payload)
}

// FromPartsMs builds a KSUIDMs from t, rounded to 1/256 second, and a
// 15-byte payload.
func FromPartsMs(t time.Time, payload []byte) (KSUIDMs, error) {
	return fromParts[Millis](t, payload)
}

func fromParts[P Precision](t time.Time, payload []byte) (ID[P], error) {
	var p P
	tsLen := p.timestampLen()

	if want := Size - tsLen; len(payload) != want {
		return ID[P]{}, errors.Join(ErrInvalidPayloadLength, fmt.Errorf("got %d bytes, want %d", len(payload), want))
	}

	t = t.UTC()
	n := p.ticks(t)
	if n < 0 || uint64(n) > maxTimestamp(tsLen) {
		return ID[P]{}, errors.Join(ErrTimestampOutOfRange, fmt.Errorf("time %s", t.Format(time.RFC3339Nano)))
	}

	var id ID[P]
	putUint(id[:tsLen], uint64(n))
	copy(id[tsLen:], payload)
	return id, nil
}

// FromBytes returns the KSUID held in b, which must be exactly Size bytes.
func FromBytes(b []byte) (KSUID, error) {
	return fromBytes[Seconds](b)
}

// FromBytesMs returns the KSUIDMs held in b, which must be exactly Size bytes.
func FromBytesMs(b []byte) (KSUIDMs, error) {
	return fromBytes[Millis](b)
}

func fromBytes[P Precision](b []byte) (ID[P], error) {
	var id ID[P]
	if len(b) != Size {
		return id, errors.Join(ErrInvalidByteLength, fmt.Errorf("got %d bytes, want %d", len(b), Size))
	}
	copy(id[:], b)
	return id, nil
}

// Parse decodes the 27-character base62 form of a KSUID.
func Parse(s string) (KSUID, error) {
	return parse[Seconds](s)
}

// ParseMs decodes the 27-character base62 form of a KSUIDMs.
func ParseMs(s string) (KSUIDMs, error) {
	return parse[Millis](s)
}

// MustParse is like Parse but panics on error.
// Intended for constants and tests.
func MustParse(s string) KSUID {
	id, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return id
}

// MustParseMs is like ParseMs but panics on error.
func MustParseMs(s string) KSUIDMs {
	id, err := ParseMs(s)
	if err != nil {
		panic(err)
	}
	return id
}

func parse[P Precision](s string) (ID[P], error) {
	b, err := base62.DecodeString(s, Size)
	switch {
	case errors.Is(err, base62.ErrOverflow):
		return ID[P]{}, errors.Join(ErrInvalidByteLength, err)
	case err != nil:
		return ID[P]{}, errors.Join(ErrInvalidEncoding, err)
	}

	// Shorter or longer strings may still decode to a value that fits, but
	// only the fixed width keeps string order equal to byte order.
	if len(s) != StringLen {
		return ID[P]{}, errors.Join(ErrInvalidByteLength, fmt.Errorf("got %d characters, want %d", len(s), StringLen))
	}

	return fromBytes[P](b)
}

// String returns the 27-character base62 form.
func (id ID[P]) String() string {
	return base62.EncodeToString(id[:], StringLen)
}

// Bytes returns a copy of the raw 20 bytes.
func (id ID[P]) Bytes() []byte {
	return bytes.Clone(id[:])
}

// Payload returns a copy of the bytes after the timestamp.
func (id ID[P]) Payload() []byte {
	var p P
	return bytes.Clone(id[p.timestampLen():])
}

// Timestamp returns the raw timestamp field: seconds since Epoch for KSUID,
// 1/256 second ticks since Epoch for KSUIDMs.
func (id ID[P]) Timestamp() uint64 {
	var p P
	return readUint(id[:p.timestampLen()])
}

// Time returns the instant encoded in the timestamp field, in UTC.
func (id ID[P]) Time() time.Time {
	var p P
	return p.time(id.Timestamp())
}

// IsNil reports whether every byte is zero.
func (id ID[P]) IsNil() bool {
	return id == ID[P]{}
}

// Compare returns -1, 0 or +1 comparing the raw bytes of id and other.
func (id ID[P]) Compare(other ID[P]) int {
	return bytes.Compare(id[:], other[:])
}

// Next returns id plus one, read as a 160-bit unsigned integer.
// Max wraps around to Nil.
func (id ID[P]) Next() ID[P] {
	for i := Size - 1; i >= 0; i-- {
		id[i]++
		if id[i] != 0 {
			break
		}
	}
	return id
}

// Prev returns id minus one, read as a 160-bit unsigned integer.
// Nil wraps around to Max.
func (id ID[P]) Prev() ID[P] {
	for i := Size - 1; i >= 0; i-- {
		id[i]--
		if id[i] != 0xFF {
			break
		}
	}
	return id
}

func putUint(b []byte, v uint64) {
	for i := len(b) - 1; i >= 0; i-- {
		b[i] = byte(v)
		v >>= 8
	}
}

func readUint(b []byte) uint64 {
	var v uint64
	for _, c := range b {
		v = v<<8 | uint64(c)
	}
	return v
}
