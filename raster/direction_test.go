package raster_test

import (
	"errors"
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/polygonize/raster"
)

var allDirections = []raster.Direction{raster.N, raster.NE, raster.E, raster.SE, raster.S, raster.SW, raster.W, raster.NW}

// TestStep_RoundTrip verifies step(p, directionBetween(p,q)) == q for every
// Moore pair around a few centres, including negative coordinates.
func TestStep_RoundTrip(t *testing.T) {
	for _, p := range []image.Point{{0, 0}, {5, 7}, {-3, 2}} {
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				q := p.Add(image.Pt(dx, dy))
				d, err := raster.DirectionBetween(p, q)
				require.NoError(t, err)
				got, err := raster.Step(p, d)
				require.NoError(t, err)
				assert.Equal(t, q, got, "Step(%v, %v)", p, d)
			}
		}
	}
}

// TestDirectionBetween_Table pins the dy*3+dx mapping.
func TestDirectionBetween_Table(t *testing.T) {
	origin := image.Pt(1, 1)
	want := map[image.Point]raster.Direction{
		{1, 0}: raster.N, {2, 0}: raster.NE, {2, 1}: raster.E, {2, 2}: raster.SE,
		{1, 2}: raster.S, {0, 2}: raster.SW, {0, 1}: raster.W, {0, 0}: raster.NW,
	}
	for q, d := range want {
		got, err := raster.DirectionBetween(origin, q)
		require.NoError(t, err)
		assert.Equal(t, d, got, "DirectionBetween(%v, %v)", origin, q)
	}
}

// TestDirectionBetween_NotNeighbour rejects identical and distant points.
func TestDirectionBetween_NotNeighbour(t *testing.T) {
	p := image.Pt(4, 4)
	for _, q := range []image.Point{{4, 4}, {6, 4}, {4, 2}, {2, 6}, {5, 6}} {
		_, err := raster.DirectionBetween(p, q)
		if !errors.Is(err, raster.ErrInvalidInput) {
			t.Errorf("DirectionBetween(%v, %v) error = %v; want ErrInvalidInput", p, q, err)
		}
	}
}

// TestStep_UnknownDirection rejects values outside N..NW.
func TestStep_UnknownDirection(t *testing.T) {
	for _, d := range []raster.Direction{-1, 8, 42} {
		_, err := raster.Step(image.Pt(0, 0), d)
		assert.ErrorIs(t, err, raster.ErrInvalidInput, "Step(%v)", d)
		assert.False(t, d.Valid())
	}
}

// TestDirection_Rotation covers Rotate, Opposite, Diagonal and String.
func TestDirection_Rotation(t *testing.T) {
	for i, d := range allDirections {
		assert.Equal(t, allDirections[(i+1)%8], d.Rotate(1))
		assert.Equal(t, allDirections[(i+7)%8], d.Rotate(-1))
		assert.Equal(t, d, d.Rotate(16))
		assert.Equal(t, d, d.Opposite().Opposite())
		assert.Equal(t, i%2 == 1, d.Diagonal())

		off := d.Offset()
		opp := d.Opposite().Offset()
		assert.Equal(t, image.Point{}, off.Add(opp), "%v and its opposite must cancel", d)
	}
	assert.Equal(t, raster.S, raster.N.Opposite())
	assert.Equal(t, "SW", raster.SW.String())
	assert.Equal(t, "Direction(9)", raster.Direction(9).String())
}
