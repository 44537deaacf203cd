package raster

import "image"

// Components partitions the active cells into maximal 4-connected regions
// with one forward row-major scan.
//
// A single reference row keeps, for each column, the region of the nearest
// processed cell in that column: columns left of x already hold the current
// row, columns from x on still hold the previous row. For an active cell:
//
//  1. If the cell above belongs to region R, the cell joins R, and a region
//     found directly to the left is merged into R.
//  2. Otherwise, if the cell to the left belongs to a region, the cell joins it.
//  3. Otherwise the cell starts a new region.
//
// Regions are records in an arena merged through a path-compressed union-find,
// so references left behind by a merge still resolve to the surviving region.
// The result is ordered by each region's topmost, then leftmost, cell.
// Coordinates inside a region are in no particular order.
//
// Time:   O(W·H·α(W·H)).
// Memory: O(W + number of active cells).
func (g *Grid) Components() []Region {
	var set regionSet
	ref := make([]int, g.Width)
	for i := range ref {
		ref[i] = -1
	}

	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if !g.Get(x, y) {
				ref[x] = -1
				continue
			}
			p := image.Pt(x, y)
			left := -1
			if x > 0 {
				left = ref[x-1]
			}

			switch {
			case ref[x] >= 0:
				r := set.find(ref[x])
				set.cells[r] = append(set.cells[r], p)
				if left >= 0 {
					r = set.union(r, set.find(left))
				}
				ref[x] = r
			case left >= 0:
				r := set.find(left)
				set.cells[r] = append(set.cells[r], p)
				ref[x] = r
			default:
				ref[x] = set.add(p)
			}
		}
	}

	regions := make([]Region, 0, len(set.parent))
	for id, cells := range set.cells {
		if set.parent[id] == id {
			regions = append(regions, cells)
		}
	}
	return regions
}

// regionSet is an arena of regions addressed by id. The root of every set is
// its smallest id, which is also the id created for its first scanned cell.
type regionSet struct {
	parent []int
	cells  []Region
}

func (s *regionSet) add(p image.Point) int {
	id := len(s.parent)
	s.parent = append(s.parent, id)
	s.cells = append(s.cells, Region{p})
	return id
}

func (s *regionSet) find(id int) int {
	root := id
	for s.parent[root] != root {
		root = s.parent[root]
	}
	for s.parent[id] != root {
		next := s.parent[id]
		s.parent[id] = root
		id = next
	}
	return root
}

// union merges two roots and returns the surviving root.
func (s *regionSet) union(a, b int) int {
	if a == b {
		return a
	}
	if b < a {
		a, b = b, a
	}
	// Append the shorter list onto the longer one.
	if len(s.cells[a]) < len(s.cells[b]) {
		s.cells[a], s.cells[b] = s.cells[b], s.cells[a]
	}
	s.cells[a] = append(s.cells[a], s.cells[b]...)
	s.cells[b] = nil
	s.parent[b] = a
	return a
}

// Bounds returns the smallest rectangle containing every cell of r, as a
// half-open image.Rectangle. An empty region has empty bounds.
// Complexity: O(len(r)).
func (r Region) Bounds() image.Rectangle {
	if len(r) == 0 {
		return image.Rectangle{}
	}
	b := image.Rectangle{Min: r[0], Max: r[0].Add(image.Pt(1, 1))}
	for _, p := range r[1:] {
		if p.X < b.Min.X {
			b.Min.X = p.X
		}
		if p.Y < b.Min.Y {
			b.Min.Y = p.Y
		}
		if p.X >= b.Max.X {
			b.Max.X = p.X + 1
		}
		if p.Y >= b.Max.Y {
			b.Max.Y = p.Y + 1
		}
	}
	return b
}
