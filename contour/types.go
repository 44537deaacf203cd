// Package contour defines the traced contour type and sentinel errors for the
// contour subpackage of github.com/katalvlaran/polygonize.
package contour

import (
	"errors"
	"image"
)

// Sentinel errors for contour tracing.
var (
	// ErrEmptyRegion indicates Trace was given a region without cells.
	ErrEmptyRegion = errors.New("contour: region has no cells")
	// ErrBrokenContour indicates the boundary walk lost the region: a cell had no
	// active neighbour after the first step, or the walk never closed. Regions
	// produced by raster.Grid.Components never trigger it.
	ErrBrokenContour = errors.New("contour: boundary walk did not close")
)

// Contour is a closed boundary walk in clockwise order (y axis down). The
// last point connects back to the first; the closing point is not repeated.
// Only the cells where the walk changes heading are kept.
type Contour []image.Point
