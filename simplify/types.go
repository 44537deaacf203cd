// Package simplify defines options and sentinel errors for polyline
// simplification.
package simplify

import (
	"errors"
	"math"
)

// ErrInvalidTolerance is returned when a tolerance is negative or NaN.
var ErrInvalidTolerance = errors.New("simplify: tolerance must be a non-negative number")

// DefaultTolerance is the default linear distance, √5 cell units. Points
// farther than this from the chord of their range are kept.
var DefaultTolerance = math.Sqrt(5)

// Mode selects the Douglas–Peucker driver. Both keep the same vertices.
type Mode int

const (
	// Recursive splits ranges by recursion, as in the textbook algorithm.
	Recursive Mode = iota
	// Iterative splits ranges from an explicit stack; it never grows the
	// goroutine stack and suits very long contours.
	Iterative
)

// Options configures Simplify.
//
// Fields:
//   - Tolerance: linear distance; a point whose distance to the chord of its
//     range exceeds Tolerance is kept. 0 keeps every point off the chord.
//   - Mode: Recursive or Iterative.
type Options struct {
	Tolerance float64
	Mode      Mode
}

// DefaultOptions returns Options{Tolerance: DefaultTolerance, Mode: Recursive}.
func DefaultOptions() Options {
	return Options{Tolerance: DefaultTolerance, Mode: Recursive}
}
