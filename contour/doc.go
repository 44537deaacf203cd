// Package contour traces the outer boundary of a labelled raster region.
//
// Trace draws a region into a grid the size of its bounding box, starts at
// its topmost-leftmost cell and walks the boundary clockwise with a
// Moore-neighbour search (raster.Grid.NextNeighbor). Only the cells where the
// walk turns are kept, so a straight run of any length costs two vertices.
//
// Coordinates are cell centres: a filled 4×3 block at the origin traces to
//
//	(0,0) (3,0) (3,2) (0,2)
//
// Holes inside a region are ignored. A single cell traces to a one-point
// contour, and a one-cell-wide strip to its two ends.
package contour
