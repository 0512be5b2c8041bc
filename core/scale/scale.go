// Package scale maps data values onto screen ranges: time, linear and square-root scales.
package scale

import (
	"math"
	"time"
)

// Linear maps a continuous domain onto a continuous range.
type Linear struct {
	D0, D1 float64 // Domain
	R0, R1 float64 // Range
}

// NewLinear returns a linear scale from [d0, d1] onto [r0, r1].
func NewLinear(d0, d1, r0, r1 float64) Linear {
	return Linear{D0: d0, D1: d1, R0: r0, R1: r1}
}

// Map projects v into the range. A degenerate domain maps to the middle of the range.
func (s Linear) Map(v float64) float64 {
	return interpolate(s.R0, s.R1, normalize(s.D0, s.D1, v))
}

// Invert projects a range value back into the domain.
func (s Linear) Invert(r float64) float64 {
	return interpolate(s.D0, s.D1, normalize(s.R0, s.R1, r))
}

// Sqrt is a power scale with exponent 0.5, used for mark radii so area tracks the value.
type Sqrt struct {
	D0, D1 float64
	R0, R1 float64
}

// NewSqrt returns a square-root scale from [d0, d1] onto [r0, r1].
func NewSqrt(d0, d1, r0, r1 float64) Sqrt {
	return Sqrt{D0: d0, D1: d1, R0: r0, R1: r1}
}

// Map projects v into the range.
func (s Sqrt) Map(v float64) float64 {
	return interpolate(s.R0, s.R1, normalize(signedSqrt(s.D0), signedSqrt(s.D1), signedSqrt(v)))
}

// Time maps an instant onto a continuous range.
type Time struct {
	D0, D1 time.Time
	R0, R1 float64
}

// NewTime returns a time scale from [d0, d1] onto [r0, r1].
func NewTime(d0, d1 time.Time, r0, r1 float64) Time {
	return Time{D0: d0, D1: d1, R0: r0, R1: r1}
}

// Map projects t into the range.
func (s Time) Map(t time.Time) float64 {
	return interpolate(s.R0, s.R1, normalize(unixMillis(s.D0), unixMillis(s.D1), unixMillis(t)))
}

// Invert projects a range value back onto an instant, in the zone of the domain start.
func (s Time) Invert(r float64) time.Time {
	n := normalize(s.R0, s.R1, r)
	switch {
	case n == 0 || s.D0.Equal(s.D1):
		return s.D0
	case n == 1:
		return s.D1
	}
	ms := interpolate(unixMillis(s.D0), unixMillis(s.D1), n)
	return time.UnixMilli(int64(math.Round(ms))).In(s.D0.Location())
}

// Nice extends the domain to round boundaries of a tick interval sized for
// about ten ticks, so axis ends land on readable values.
func (s Time) Nice() Time {
	if !s.D1.After(s.D0) {
		return s
	}
	interval := tickInterval(s.D0, s.D1, 10)
	s.D0 = interval.floor(s.D0)
	if c := interval.floor(s.D1); c.Before(s.D1) {
		s.D1 = interval.offset(c)
	}
	return s
}

func normalize(a, b, v float64) float64 {
	if b == a {
		return 0.5
	}
	return (v - a) / (b - a)
}

func interpolate(a, b, t float64) float64 {
	return a*(1-t) + b*t
}

func signedSqrt(v float64) float64 {
	if v < 0 {
		return -math.Sqrt(-v)
	}
	return math.Sqrt(v)
}

func unixMillis(t time.Time) float64 {
	return float64(t.UnixMilli())
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
