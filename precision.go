package ksuid

import "time"

const (
	nanosPerSecond = int64(time.Second)

	// ticksPerSecond is the Millis timestamp resolution.
	ticksPerSecond = 256
	nanosPerTick   = nanosPerSecond / ticksPerSecond
)

// Precision selects the timestamp layout of an ID.
// It is implemented only by Seconds and Millis.
type Precision interface {
	// timestampLen is the number of leading bytes holding the timestamp.
	timestampLen() int

	// ticks converts t to a timestamp field value. Results outside the
	// field's range are returned as is and rejected by the caller.
	ticks(t time.Time) int64

	// time converts a timestamp field value back to a UTC time.
	time(v uint64) time.Time
}

// Seconds is the standard layout: 4-byte timestamp in whole seconds since
// Epoch followed by a 16-byte payload.
type Seconds struct{}

func (Seconds) timestampLen() int { return 4 }

func (Seconds) ticks(t time.Time) int64 {
	sec := t.Unix()
	if sec < Epoch {
		return -1
	}
	return sec - Epoch
}

func (Seconds) time(v uint64) time.Time {
	return time.Unix(Epoch+int64(v), 0).UTC()
}

// Millis is the millisecond layout: 5-byte timestamp in 1/256 second ticks
// since Epoch followed by a 15-byte payload.
type Millis struct{}

func (Millis) timestampLen() int { return 5 }

func (m Millis) ticks(t time.Time) int64 {
	sec := t.Unix()
	// One second before Epoch may still round up to tick zero.
	if sec < Epoch-1 {
		return -1
	}
	sec -= Epoch
	if limit := int64(maxTimestamp(m.timestampLen()) / ticksPerSecond); sec > limit {
		return limit*ticksPerSecond + ticksPerSecond
	}

	// Half a tick rounds away from zero.
	frac := (int64(t.Nanosecond())*ticksPerSecond + nanosPerSecond/2) / nanosPerSecond
	return sec*ticksPerSecond + frac
}

func (Millis) time(v uint64) time.Time {
	sec := Epoch + int64(v/ticksPerSecond)
	nsec := int64(v%ticksPerSecond) * nanosPerTick
	return time.Unix(sec, nsec).UTC()
}

// maxTimestamp is the largest value an n-byte timestamp field can hold.
func maxTimestamp(n int) uint64 {
	return 1<<(8*uint(n)) - 1
}
