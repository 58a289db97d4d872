package ksuid

import (
	"errors"
	"io"
	"time"
)

// Generator creates ids with a random payload.
// It keeps no state between calls, so it is safe for concurrent use whenever
// its random source is.
type Generator[P Precision] struct {
	now  func() time.Time
	rand io.Reader
}

// NewGenerator returns a generator for the layout P.
func NewGenerator[P Precision](opts ...Option) *Generator[P] {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return &Generator[P]{now: o.now, rand: o.rand}
}

// New returns an id for the current time.
func (g *Generator[P]) New() (ID[P], error) {
	return g.NewWithTime(g.now())
}

// NewWithTime returns an id for t with a fresh random payload.
func (g *Generator[P]) NewWithTime(t time.Time) (ID[P], error) {
	var p P
	var buf [Size]byte
	payload := buf[:Size-p.timestampLen()]

	if _, err := io.ReadFull(g.rand, payload); err != nil {
		return ID[P]{}, errors.Join(ErrRandomSource, err)
	}
	return fromParts[P](t, payload)
}

var (
	defaultGenerator   = NewGenerator[Seconds]()
	defaultGeneratorMs = NewGenerator[Millis]()
)

// New returns a KSUID for the current time.
// It panics only if the system random source fails.
func New() KSUID {
	return must(defaultGenerator.New())
}

// NewRandom returns a KSUID for the current time.
func NewRandom() (KSUID, error) {
	return defaultGenerator.New()
}

// NewRandomWithTime returns a KSUID for t with a random payload.
func NewRandomWithTime(t time.Time) (KSUID, error) {
	return defaultGenerator.NewWithTime(t)
}

// NewMs returns a KSUIDMs for the current time.
// It panics only if the system random source fails.
func NewMs() KSUIDMs {
	return must(defaultGeneratorMs.New())
}

// NewRandomMs returns a KSUIDMs for the current time.
func NewRandomMs() (KSUIDMs, error) {
	return defaultGeneratorMs.New()
}

// NewRandomWithTimeMs returns a KSUIDMs for t with a random payload.
func NewRandomWithTimeMs(t time.Time) (KSUIDMs, error) {
	return defaultGeneratorMs.NewWithTime(t)
}

func must[P Precision](id ID[P], err error) ID[P] {
	if err != nil {
		panic(err)
	}
	return id
}
