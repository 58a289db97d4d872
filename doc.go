// Package ksuid generates and parses K-Sortable Unique Identifiers.
//
// A KSUID is a 20-byte value: a big-endian timestamp followed by a random
// payload. Because the timestamp occupies the most significant bytes, ids
// sort by creation time, and ids created in the same tick are ordered by
// their payload. The text form is always 27 base62 characters, so sorting
// strings gives the same order as sorting the raw bytes.
//
// # Variants
//
// Two layouts share the same 20 bytes:
//
//	KSUID    4-byte timestamp in seconds        + 16-byte payload
//	KSUIDMs  5-byte timestamp in 1/256 seconds  + 15-byte payload
//
// Both count from Epoch (Unix 1400000000). KSUID truncates the time to whole
// seconds; KSUIDMs rounds it to the nearest 1/256 second (about 3.9ms).
// Both are instances of the generic ID type, so they are different Go types
// and cannot be compared with each other by accident.
//
// # Quick Start
//
//	id := ksuid.New()
//	fmt.Println(id)          // 2JhXHQD2E52hpofiJN0EoD8pG88
//	fmt.Println(id.Time())   // 2023-01-01 00:00:00 +0000 UTC
//
//	parsed, err := ksuid.Parse("0ujtsYcgvSTl8PAuAdqWYSMnLOv")
//	if err != nil {
//	    return err
//	}
//
//	ms := ksuid.NewMs()      // millisecond variant
//
// # Deterministic Construction
//
// FromParts builds an id from a time and an explicit payload. Generator
// accepts an injected clock and random source:
//
//	gen := ksuid.NewGenerator[ksuid.Seconds](
//	    ksuid.WithClock(func() time.Time { return fixed }),
//	    ksuid.WithRandom(reader),
//	)
//	id, err := gen.New()
//
// # Errors
//
// All failures are reported with sentinel errors that can be matched with
// errors.Is: ErrInvalidByteLength, ErrInvalidPayloadLength,
// ErrInvalidEncoding, ErrTimestampOutOfRange, ErrRandomSource and
// ErrUnsupportedScanType.
//
// # Storage
//
// ID implements encoding.TextMarshaler, encoding.BinaryMarshaler,
// sql.Scanner and driver.Valuer. Database values use the 27-character
// string; Scan also accepts the raw 20 bytes.
package ksuid
