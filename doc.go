// Package polygonize turns a binary raster into closed polygons, one per
// 4-connected region of active cells.
//
// 🚀 Pipeline
//
//	raster.Grid ──Components──▶ []raster.Region ──contour.Trace──▶ contour.Contour
//	            ──simplify.DouglasPeucker──▶ Polygons
//
//   - raster/: boolean grid, compass directions, border-aware
//     Moore-neighbour search, single-pass component labelling.
//   - contour/: clockwise boundary walk keeping only turning cells.
//   - simplify/: Douglas–Peucker with a linear tolerance.
//
// The output feeds polygon clipping, triangulation or collider code, which
// live outside this module. Holes inside regions are not reported.
//
// ⚙️ Usage:
//
//	g, _ := raster.FromBits(w, h, mask)
//	polys, err := polygonize.FromGrid(g,
//		polygonize.WithTolerance(1.5),
//		polygonize.WithScale(10),
//		polygonize.WithLogger(logger),
//	)
//
// Options:
//
//   - WithTolerance / WithoutSimplification / WithIterativeSimplification
//   - WithWorkers: trace regions concurrently; output order is unchanged.
//   - WithScale: integer coordinate scaling for downstream integer clippers.
//   - WithMinArea: drop specks smaller than n cells.
//   - WithLogger: zap logger for Debug/Warn events (no-op by default).
//
// Errors:
//
//   - ErrNilGrid: nil input.
//   - contour.ErrBrokenContour, contour.ErrEmptyRegion: wrapped per region.
//   - simplify.ErrInvalidTolerance: wrapped per region.
package polygonize
