package raster

import (
	"fmt"
	"image"
)

// New returns an all-inactive grid of the given size.
// Returns ErrInvalidInput if either dimension is negative.
// Complexity: O(W×H) time and memory.
func New(width, height int) (*Grid, error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("raster: size %d×%d: %w", width, height, ErrInvalidInput)
	}
	return &Grid{Width: width, Height: height, bits: make([]bool, width*height)}, nil
}

// FromBits builds a grid from a row-major bit slice. The slice is copied.
// Returns ErrInvalidInput if len(bits) != width*height.
// Complexity: O(W×H).
func FromBits(width, height int, bits []bool) (*Grid, error) {
	g, err := New(width, height)
	if err != nil {
		return nil, err
	}
	if len(bits) != width*height {
		return nil, fmt.Errorf("raster: %d bits for a %d×%d grid: %w", len(bits), width, height, ErrInvalidInput)
	}
	copy(g.bits, bits)

	return g, nil
}

// From2D builds a grid from a non-empty, rectangular [y][x] slice.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(W×H).
func From2D(values [][]bool) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	g := &Grid{Width: w, Height: h, bits: make([]bool, w*h)}
	for y := 0; y < h; y++ {
		copy(g.bits[y*w:(y+1)*w], values[y])
	}

	return g, nil
}

// Get reports whether cell (x,y) is active. (x,y) must be in bounds.
func (g *Grid) Get(x, y int) bool {
	return g.bits[g.index(x, y)]
}

// Set writes cell (x,y). (x,y) must be in bounds.
func (g *Grid) Set(x, y int, v bool) {
	g.bits[g.index(x, y)] = v
}

// At is Get for an image.Point.
func (g *Grid) At(p image.Point) bool {
	return g.bits[g.index(p.X, p.Y)]
}

// SetAt is Set for an image.Point.
func (g *Grid) SetAt(p image.Point, v bool) {
	g.bits[g.index(p.X, p.Y)] = v
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// Dims returns Width and Height.
func (g *Grid) Dims() (width, height int) {
	return g.Width, g.Height
}

// Len returns the number of cells, Width×Height.
func (g *Grid) Len() int {
	return len(g.bits)
}

// Count returns the number of active cells.
// Complexity: O(W×H).
func (g *Grid) Count() int {
	n := 0
	for _, b := range g.bits {
		if b {
			n++
		}
	}
	return n
}

// Equal reports whether both grids have the same shape and the same cells.
func (g *Grid) Equal(o *Grid) bool {
	if g.Width != o.Width || g.Height != o.Height {
		return false
	}
	for i, b := range g.bits {
		if o.bits[i] != b {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	c := &Grid{Width: g.Width, Height: g.Height, bits: make([]bool, len(g.bits))}
	copy(c.bits, g.bits)
	return c
}

// Edges returns the grid borders touched by p.
func (g *Grid) Edges(p image.Point) Edge {
	var e Edge
	if p.Y == 0 {
		e |= EdgeTop
	}
	if p.X == g.Width-1 {
		e |= EdgeRight
	}
	if p.Y == g.Height-1 {
		e |= EdgeBottom
	}
	if p.X == 0 {
		e |= EdgeLeft
	}
	return e
}

// index maps (x,y) to a row‑major index: y*Width + x.
// Complexity: O(1).
func (g *Grid) index(x, y int) int {
	return y*g.Width + x
}

// Coordinate converts a row‑major index back to (x,y).
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) (x, y int) {
	return idx % g.Width, idx / g.Width
}
