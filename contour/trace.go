package contour

import (
	"fmt"
	"image"

	"github.com/katalvlaran/polygonize/raster"
)

// Trace walks the outer boundary of region clockwise and returns its corners
// in the region's global coordinates.
//
// Behavior:
//  1. Draw the region into a local grid sized to its bounding box.
//  2. Start at the topmost, then leftmost, cell. Nothing lies to its N, NW
//     or W, so the walk pretends to have entered it from the west.
//  3. Moore-neighbour walk: from the current cell and its heading (the
//     direction back to the previous cell), probe first the heading's diagonal
//     turned a quarter clockwise (N/NE→SE, E/SE→SW, S/SW→NW, W/NW→NE), then
//     continue clockwise with raster.Grid.NextNeighbor. A change of heading
//     makes the current cell a corner.
//  4. Stop when the walk is back at the start and about to take its first
//     step again, so regions whose start cell joins two lobes are walked fully.
//
// A single cell yields a one-point contour; a one-cell-wide strip yields its
// two end cells. Holes are not traced.
//
// Returns ErrEmptyRegion for an empty region and ErrBrokenContour if the walk
// cannot continue or does not close.
//
// Time:   O(B + P), B = bounding-box area, P = perimeter in cells.
// Memory: O(B).
func Trace(region raster.Region) (Contour, error) {
	if len(region) == 0 {
		return nil, ErrEmptyRegion
	}
	box := region.Bounds()
	local, err := raster.New(box.Dx(), box.Dy())
	if err != nil {
		return nil, err
	}
	for _, p := range region {
		local.SetAt(p.Sub(box.Min), true)
	}

	start := firstActive(local)
	out := Contour{start.Add(box.Min)}

	first, ok, err := nextBoundary(local, start, raster.W)
	if err != nil {
		return nil, err
	}
	if !ok {
		return out, nil
	}

	heading, _ := raster.DirectionBetween(first, start)
	cur := first
	// Each cell is entered at most once from each of its eight neighbours.
	for steps := 8*len(region) + 8; steps > 0; steps-- {
		next, ok, err := nextBoundary(local, cur, heading)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, fmt.Errorf("contour: no neighbour at %v: %w", cur.Add(box.Min), ErrBrokenContour)
		}
		if cur == start && next == first {
			return out, nil
		}
		back, _ := raster.DirectionBetween(next, cur)
		if back != heading {
			out = append(out, cur.Add(box.Min))
			heading = back
		}
		cur = next
	}

	return nil, fmt.Errorf("contour: walk from %v exceeded its step budget: %w", start.Add(box.Min), ErrBrokenContour)
}

// nextBoundary finds the boundary cell following cur given its heading.
func nextBoundary(g *raster.Grid, cur image.Point, heading raster.Direction) (image.Point, bool, error) {
	guess, err := raster.Step(cur, probeDirection(heading))
	if err != nil {
		return image.Point{}, false, err
	}
	return g.NextNeighbor(cur, guess, true)
}

// probeDirection is the heading's diagonal family (N/NE→NE, E/SE→SE,
// S/SW→SW, W/NW→NW) turned a quarter clockwise.
func probeDirection(heading raster.Direction) raster.Direction {
	return (heading | 1).Rotate(2)
}

// firstActive returns the first active cell in row-major order.
func firstActive(g *raster.Grid) image.Point {
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if g.Get(x, y) {
				return image.Pt(x, y)
			}
		}
	}
	return image.Point{}
}
