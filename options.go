package ksuid

import (
	"crypto/rand"
	"io"
	"time"
)

// Option configures a Generator.
type Option func(*options)

type options struct {
	now  func() time.Time
	rand io.Reader
}

func defaultOptions() *options {
	return &options{
		now:  time.Now,
		rand: rand.Reader,
	}
}

// WithClock sets the function used to read the current time.
// Defaults to time.Now. A nil function is ignored.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

// WithRandom sets the payload source. It must be safe for concurrent use if
// the generator is shared between goroutines.
// Defaults to crypto/rand.Reader. A nil reader is ignored.
func WithRandom(r io.Reader) Option {
	return func(o *options) {
		if r != nil {
			o.rand = r
		}
	}
}
