package simplify

import (
	"fmt"
	"image"
	"math"
)

// Simplify reduces pts with the Douglas–Peucker algorithm using opts.
// Returns ErrInvalidTolerance if opts.Tolerance is negative or NaN.
// The input slice is never modified.
func Simplify(pts []image.Point, opts Options) ([]image.Point, error) {
	if math.IsNaN(opts.Tolerance) || opts.Tolerance < 0 {
		return nil, fmt.Errorf("simplify: tolerance %v: %w", opts.Tolerance, ErrInvalidTolerance)
	}
	if opts.Mode == Iterative {
		return DouglasPeuckerIterative(pts, opts.Tolerance), nil
	}
	return DouglasPeucker(pts, opts.Tolerance), nil
}

// DouglasPeucker returns the points of pts that survive recursive
// farthest-point simplification.
//
// Within a range of at least three points, the interior point farthest from
// the segment joining the range's endpoints is kept if its distance exceeds
// tolerance, and both halves are simplified in turn; otherwise every interior
// point of the range is dropped. The first and last points are always kept.
// A negative tolerance behaves like 0.
//
// Time:   O(n log n) typical, O(n²) worst case.
// Memory: O(n) plus recursion depth.
func DouglasPeucker(pts []image.Point, tolerance float64) []image.Point {
	if len(pts) <= 2 {
		return append([]image.Point(nil), pts...)
	}
	keep := newKeep(len(pts))
	splitRecursive(pts, keep, 0, len(pts)-1, squared(tolerance))
	return compact(pts, keep)
}

// DouglasPeuckerIterative is DouglasPeucker driven by an explicit stack of
// ranges. The kept points depend only on where ranges split, so both drivers
// return identical results.
//
// Time:   O(n log n) typical, O(n²) worst case.
// Memory: O(n).
func DouglasPeuckerIterative(pts []image.Point, tolerance float64) []image.Point {
	if len(pts) <= 2 {
		return append([]image.Point(nil), pts...)
	}
	keep := newKeep(len(pts))
	tol2 := squared(tolerance)

	stack := [][2]int{{0, len(pts) - 1}}
	for len(stack) > 0 {
		r := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		first, last := r[0], r[1]
		if last-first < 2 {
			continue
		}
		idx, dmax := farthest(pts, first, last)
		if dmax > tol2 {
			keep[idx] = true
			stack = append(stack, [2]int{idx, last}, [2]int{first, idx})
		}
	}
	return compact(pts, keep)
}

// splitRecursive simplifies the inclusive range [first, last].
func splitRecursive(pts []image.Point, keep []bool, first, last int, tol2 float64) {
	if last-first < 2 {
		return
	}
	idx, dmax := farthest(pts, first, last)
	if dmax <= tol2 {
		return
	}
	keep[idx] = true
	splitRecursive(pts, keep, idx, last, tol2)
	splitRecursive(pts, keep, first, idx, tol2)
}

// farthest returns the first interior index of [first, last] with the
// largest squared distance to the chord, and that distance.
func farthest(pts []image.Point, first, last int) (int, float64) {
	idx, dmax := first, 0.0
	for i := first + 1; i < last; i++ {
		if d := SegmentDistanceSq(pts[i], pts[first], pts[last]); d > dmax {
			idx, dmax = i, d
		}
	}
	return idx, dmax
}

// SegmentDistanceSq returns the squared distance from p to segment ab. The
// projection of p is clamped to the segment, and a degenerate segment
// (a == b) measures the distance to a.
func SegmentDistanceSq(p, a, b image.Point) float64 {
	ab, ap := b.Sub(a), p.Sub(a)
	l2 := ab.X*ab.X + ab.Y*ab.Y
	if l2 == 0 {
		return distSq(p, a)
	}
	dot := ap.X*ab.X + ap.Y*ab.Y
	switch {
	case dot <= 0:
		return distSq(p, a)
	case dot >= l2:
		return distSq(p, b)
	}
	// Inside the segment: |ab × ap|² / |ab|², exact zero for collinear points.
	cross := float64(ab.X*ap.Y - ab.Y*ap.X)
	return cross * cross / float64(l2)
}

func distSq(a, b image.Point) float64 {
	dx, dy := float64(a.X-b.X), float64(a.Y-b.Y)
	return dx*dx + dy*dy
}

func squared(tolerance float64) float64 {
	if tolerance <= 0 || math.IsNaN(tolerance) {
		return 0
	}
	return tolerance * tolerance
}

func newKeep(n int) []bool {
	keep := make([]bool, n)
	keep[0], keep[n-1] = true, true
	return keep
}

func compact(pts []image.Point, keep []bool) []image.Point {
	out := make([]image.Point, 0, len(pts))
	for i, k := range keep {
		if k {
			out = append(out, pts[i])
		}
	}
	return out
}
