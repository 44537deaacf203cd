// Package simplify reduces polylines with the Douglas–Peucker (Ramer–
// Douglas–Peucker) algorithm.
//
// ⚙️ Usage:
//
//	out, err := simplify.Simplify(contour, simplify.DefaultOptions())
//
// or, when the tolerance is already known to be valid:
//
//	out := simplify.DouglasPeucker(contour, 1.5)
//
// Tolerance is a linear distance in cell units. Distances are compared
// squared, against Tolerance², so no square root is taken per point. The
// default, √5, keeps every point more than about 2.24 cells off its chord.
//
// The first and last points are always kept, so a closed contour keeps its
// starting corner. Simplifying an already simplified polyline with the same
// tolerance returns it unchanged.
//
// Performance:
//
//   - Time:   O(n log n) typical, O(n²) worst case.
//   - Memory: O(n).
package simplify
