// Package raster defines core types and sentinel errors for the raster
// subpackage of github.com/katalvlaran/polygonize.
package raster

import (
	"errors"
	"image"
)

// Sentinel errors for raster operations.
var (
	// ErrInvalidInput indicates a violated precondition: a bit slice whose length
	// does not match Width×Height, a degenerate grid passed to NextNeighbor,
	// a pair of points that are not Moore neighbours, or an unknown Direction.
	ErrInvalidInput = errors.New("raster: invalid input")
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("raster: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("raster: all rows must have the same length")
)

// Direction is one of the eight compass directions of the Moore neighbourhood.
// Values are ordered clockwise starting at N, so Rotate(1) is always the next
// direction clockwise. The y axis grows downward: N is (0,-1).
type Direction int

const (
	N Direction = iota
	NE
	E
	SE
	S
	SW
	W
	NW
)

// numDirections is the size of the Moore neighbourhood.
const numDirections = 8

// Edge is a bit set of grid borders touched by a cell.
type Edge uint8

const (
	// EdgeTop marks a cell in row 0.
	EdgeTop Edge = 1 << iota
	// EdgeRight marks a cell in column Width-1.
	EdgeRight
	// EdgeBottom marks a cell in row Height-1.
	EdgeBottom
	// EdgeLeft marks a cell in column 0.
	EdgeLeft
)

// Grid is a fixed-size boolean raster. Cell (x,y) lives at bits[y*Width+x].
// The shape never changes after construction; cell values may be written.
// A Grid is not safe for concurrent mutation.
type Grid struct {
	Width, Height int
	bits          []bool
}

// Region is an ordered collection of lattice coordinates of active cells that
// are mutually 4-connected. Regions returned by Grid.Components are pairwise
// disjoint and together cover every active cell of the grid.
type Region []image.Point
