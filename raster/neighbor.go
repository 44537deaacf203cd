package raster

import (
	"fmt"
	"image"
)

// maxProbes bounds the clockwise scan: all eight directions plus one more so
// the scan ends on the same parity as it started.
const maxProbes = 9

// route describes how one direction behaves at the grid border.
//
// When the cell touches the hard border, the direction and every direction up
// to jump fall outside the grid, so the scan re-routes to jump and the rule of
// jump applies in turn. When only the soft border is touched, the diagonal
// itself is outside the grid but its clockwise cardinal neighbour sub is not.
type route struct {
	hard Edge
	jump Direction
	soft Edge
	sub  Direction
}

var routes = [numDirections]route{
	N:  {hard: EdgeTop, jump: E},
	NE: {hard: EdgeRight, jump: S, soft: EdgeTop, sub: E},
	E:  {hard: EdgeRight, jump: S},
	SE: {hard: EdgeBottom, jump: W, soft: EdgeRight, sub: S},
	S:  {hard: EdgeBottom, jump: W},
	SW: {hard: EdgeLeft, jump: N, soft: EdgeBottom, sub: W},
	W:  {hard: EdgeLeft, jump: N},
	NW: {hard: EdgeTop, jump: E, soft: EdgeLeft, sub: N},
}

// Remap returns the first direction at or clockwise after d whose neighbour
// lies inside the grid, for a cell touching the given borders. It reports
// false when every direction is blocked, which only happens on a 1×1 grid.
// d must be valid.
// Complexity: O(1), at most four table lookups.
func Remap(d Direction, edges Edge) (Direction, bool) {
	for hop := 0; hop < 4; hop++ {
		r := routes[d]
		if edges&r.hard != 0 {
			d = r.jump
			continue
		}
		if edges&r.soft != 0 {
			return r.sub, true
		}
		return d, true
	}
	return d, false
}

// NextNeighbor scans the Moore neighbourhood of center clockwise, starting at
// the direction of from, and returns the first neighbour whose value equals
// want. Directions that leave the grid are skipped through Remap rather than
// probed, so the result always lies inside the grid.
//
// ok is false when no neighbour matches. Returns ErrInvalidInput if the grid
// has Width+Height < 2, if center is outside the grid, or if from is not a
// Moore neighbour of center.
//
// Complexity: O(1), at most nine probes.
func (g *Grid) NextNeighbor(center, from image.Point, want bool) (p image.Point, ok bool, err error) {
	if g.Width+g.Height < 2 {
		return image.Point{}, false, fmt.Errorf("raster: grid %d×%d too small: %w", g.Width, g.Height, ErrInvalidInput)
	}
	if !g.InBounds(center.X, center.Y) {
		return image.Point{}, false, fmt.Errorf("raster: centre %v outside grid: %w", center, ErrInvalidInput)
	}
	d, err := DirectionBetween(center, from)
	if err != nil {
		return image.Point{}, false, err
	}

	edges := g.Edges(center)
	for probe := 0; probe < maxProbes; probe++ {
		rd, inside := Remap(d, edges)
		if !inside {
			break
		}
		p = center.Add(offsets[rd])
		if g.At(p) == want {
			return p, true, nil
		}
		d = rd.Rotate(1)
	}

	return image.Point{}, false, nil
}
