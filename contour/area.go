package contour

import "image"

// SignedArea2 returns twice the signed shoelace area of c. With the y axis
// pointing down, a clockwise contour has a positive area.
// Complexity: O(len(c)).
func (c Contour) SignedArea2() int {
	area := 0
	for i, j := 0, len(c)-1; i < len(c); j, i = i, i+1 {
		area += c[j].X*c[i].Y - c[i].X*c[j].Y
	}
	return area
}

// IsClockwise reports whether c winds clockwise on screen. Degenerate
// contours (fewer than three corners, or zero area) are not clockwise.
func (c Contour) IsClockwise() bool {
	return c.SignedArea2() > 0
}

// Points returns a copy of the contour's vertices.
func (c Contour) Points() []image.Point {
	return append([]image.Point(nil), c...)
}

// Translate returns c moved by d.
func (c Contour) Translate(d image.Point) Contour {
	out := make(Contour, len(c))
	for i, p := range c {
		out[i] = p.Add(d)
	}
	return out
}

// Scale returns c with every coordinate multiplied by k.
func (c Contour) Scale(k int) Contour {
	out := make(Contour, len(c))
	for i, p := range c {
		out[i] = p.Mul(k)
	}
	return out
}
