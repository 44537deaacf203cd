// Package raster provides the boolean lattice the polygonizer works on:
// a fixed-size grid of active/inactive cells, compass directions, a
// border-aware Moore-neighbour search, and connected-component labelling.
//
// What:
//
//   - Grid wraps a flat row-major []bool with Get/Set/At/SetAt accessors.
//   - Direction enumerates the Moore neighbourhood clockwise: N, NE, … NW.
//   - Step and DirectionBetween convert between neighbours and directions.
//   - NextNeighbor scans clockwise for the next neighbour holding a value,
//     re-routing around the grid border instead of probing outside it.
//   - Components splits active cells into maximal 4-connected regions.
//
// Why:
//
//   - Contour tracing needs a circular scan order that stays consistent at the
//     border; Remap keeps it by jumping over the directions that leave the
//     grid (see the table in neighbor.go).
//   - Labelling runs in one pass with a union-find, so regions that meet late
//     in the scan (U shapes, rings) are still reported exactly once.
//
// Complexity:
//
//   - Get, Set, Step, DirectionBetween, NextNeighbor: O(1).
//   - Components: O(W×H×α), Memory: O(W + active cells).
//
// Errors:
//
//   - ErrInvalidInput: bit slice length mismatch, negative size, degenerate
//     grid in NextNeighbor, non-neighbour pair, unknown Direction.
//   - ErrEmptyGrid: From2D input has no rows or no columns.
//   - ErrNonRectangular: From2D rows have differing lengths.
//
// Coordinates are image.Point values with y growing downward, so a clockwise
// turn goes N → E → S → W as seen on screen.
package raster
