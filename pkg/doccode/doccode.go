// Package doccode produces the short human-readable reference numbers that
// pre-populate document-creation forms.
//
// A code is MMDD followed by a zero-padded random number in [0000, 9999]. It
// is a uniqueness hint only: two calls on the same day may return the same
// code, and the backend is free to validate or replace it.
package doccode

import (
	"fmt"
	"math/rand/v2"
	"time"
)

// Length is the number of characters in every generated code.
const Length = 8

const suffixRange = 10000

// Clock supplies the current local time.
type Clock interface {
	Now() time.Time
}

// Source draws a uniformly distributed integer in [0, n).
type Source interface {
	IntN(n int) int
}

// ClockFunc adapts a function to a Clock.
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time { return f() }

// SourceFunc adapts a function to a Source.
type SourceFunc func(n int) int

func (f SourceFunc) IntN(n int) int { return f(n) }

type globalSource struct{}

// math/rand/v2 top-level functions are safe for concurrent use.
func (globalSource) IntN(n int) int { return rand.IntN(n) }

// Generator builds dated codes from an injected clock and random source.
// The zero value is not usable; call New.
type Generator struct {
	clock  Clock
	source Source
}

// Option configures a Generator.
type Option func(*Generator)

// WithClock replaces the wall clock. A nil clock keeps the default.
func WithClock(c Clock) Option {
	return func(g *Generator) {
		if c != nil {
			g.clock = c
		}
	}
}

// WithSource replaces the random source. A nil source keeps the default.
func WithSource(s Source) Option {
	return func(g *Generator) {
		if s != nil {
			g.source = s
		}
	}
}

// New returns a Generator reading the local wall clock and the process-wide
// random source unless overridden.
func New(opts ...Option) *Generator {
	g := &Generator{
		clock:  ClockFunc(time.Now),
		source: globalSource{},
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate returns month, day and a four-digit random suffix, in that order.
func (g *Generator) Generate() string {
	now := g.clock.Now()
	return fmt.Sprintf("%02d%02d%04d", int(now.Month()), now.Day(), g.source.IntN(suffixRange))
}

// Number returns the dated code prefixed with the marker for kind.
func (g *Generator) Number(kind Kind) string {
	return kind.Prefix() + g.Generate()
}
