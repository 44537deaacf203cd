// SPDX-License-Identifier: MIT
// Package: polygonize
//
// options.go: functional options for FromGrid and FromRegions.
//
// Contract:
//   • Options are functional (type Option func(*Options)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     The pipeline itself never panics; it returns errors.
//   • Options apply left to right; later options win.

package polygonize

import (
	"math"

	"go.uber.org/zap"

	"github.com/katalvlaran/polygonize/simplify"
)

// Options holds the resolved pipeline configuration.
//
// Fields:
//   - Tolerance: linear Douglas–Peucker tolerance in cell units.
//   - Simplify: when false, traced contours are returned as is.
//   - Mode: simplify.Recursive or simplify.Iterative driver.
//   - Workers: number of goroutines tracing regions; 1 runs inline.
//   - Scale: integer factor applied to every output coordinate.
//   - MinArea: regions with fewer cells are skipped.
//   - Logger: receives Debug/Warn events; never nil after resolution.
type Options struct {
	Tolerance float64
	Simplify  bool
	Mode      simplify.Mode
	Workers   int
	Scale     int
	MinArea   int
	Logger    *zap.Logger
}

// Option customizes Options before the pipeline runs.
// Complexity: applying N options costs O(N).
type Option func(*Options)

// DefaultOptions returns the configuration used when no Option is given:
// Tolerance=simplify.DefaultTolerance, Simplify=true, Mode=Recursive,
// Workers=1, Scale=1, MinArea=0, Logger=zap.NewNop().
func DefaultOptions() Options {
	return Options{
		Tolerance: simplify.DefaultTolerance,
		Simplify:  true,
		Mode:      simplify.Recursive,
		Workers:   1,
		Scale:     1,
		Logger:    zap.NewNop(),
	}
}

// resolve applies opts over DefaultOptions.
func resolve(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithTolerance sets the simplification tolerance. Panics if tol is negative or NaN.
func WithTolerance(tol float64) Option {
	if tol < 0 || math.IsNaN(tol) {
		panic("polygonize: WithTolerance(tol<0 or NaN)")
	}
	return func(o *Options) {
		o.Tolerance = tol
		o.Simplify = true
	}
}

// WithoutSimplification returns traced contours without Douglas–Peucker.
func WithoutSimplification() Option {
	return func(o *Options) { o.Simplify = false }
}

// WithIterativeSimplification switches to the explicit-stack driver, which
// keeps the same vertices as the recursive one.
func WithIterativeSimplification() Option {
	return func(o *Options) { o.Mode = simplify.Iterative }
}

// WithWorkers traces and simplifies regions on n goroutines. Output order
// does not depend on n. Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("polygonize: WithWorkers(n<1)")
	}
	return func(o *Options) { o.Workers = n }
}

// WithScale multiplies every output coordinate by k, e.g. to give an
// integer clipper sub-cell precision. Panics if k < 1.
func WithScale(k int) Option {
	if k < 1 {
		panic("polygonize: WithScale(k<1)")
	}
	return func(o *Options) { o.Scale = k }
}

// WithMinArea skips regions with fewer than n cells. Panics if n < 0.
func WithMinArea(n int) Option {
	if n < 0 {
		panic("polygonize: WithMinArea(n<0)")
	}
	return func(o *Options) { o.MinArea = n }
}

// WithLogger routes pipeline events to l. Panics if l is nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("polygonize: WithLogger(nil)")
	}
	return func(o *Options) { o.Logger = l }
}
