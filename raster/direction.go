package raster

import (
	"fmt"
	"image"
)

// offsets holds the unit step of every Direction, clockwise from N.
var offsets = [numDirections]image.Point{
	{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1},
}

var directionNames = [numDirections]string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}

// Valid reports whether d is one of the eight compass directions.
func (d Direction) Valid() bool {
	return d >= N && d <= NW
}

func (d Direction) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Direction(%d)", int(d))
	}
	return directionNames[d]
}

// Rotate turns d clockwise by k eighth-turns; negative k turns counter-clockwise.
func (d Direction) Rotate(k int) Direction {
	return Direction(((int(d)+k)%numDirections + numDirections) % numDirections)
}

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	return d.Rotate(numDirections / 2)
}

// Diagonal reports whether d is one of NE, SE, SW, NW.
func (d Direction) Diagonal() bool {
	return d%2 == 1
}

// Offset returns the unit step (dx,dy) of d. d must be valid.
func (d Direction) Offset() image.Point {
	return offsets[d]
}

// Step returns the cell one step from p in direction d.
// Returns ErrInvalidInput for an unknown direction.
// Complexity: O(1).
func Step(p image.Point, d Direction) (image.Point, error) {
	if !d.Valid() {
		return image.Point{}, fmt.Errorf("raster: step %v: %w", d, ErrInvalidInput)
	}
	return p.Add(offsets[d]), nil
}

// byOffsetKey maps dy*3+dx+4 to the direction of that offset; the centre
// slot (key 4) is unused.
var byOffsetKey = [9]Direction{NW, N, NE, W, -1, E, SW, S, SE}

// DirectionBetween returns the direction from p to its Moore neighbour q.
// Returns ErrInvalidInput if q is not a Moore neighbour of p.
// Complexity: O(1).
func DirectionBetween(p, q image.Point) (Direction, error) {
	dx, dy := q.X-p.X, q.Y-p.Y
	if dx < -1 || dx > 1 || dy < -1 || dy > 1 || (dx == 0 && dy == 0) {
		return 0, fmt.Errorf("raster: %v is not a Moore neighbour of %v: %w", q, p, ErrInvalidInput)
	}
	return byOffsetKey[dy*3+dx+4], nil
}
