package simplify_test

import (
	"image"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/polygonize/simplify"
)

func pts(xy ...int) []image.Point {
	out := make([]image.Point, 0, len(xy)/2)
	for i := 0; i+1 < len(xy); i += 2 {
		out = append(out, image.Pt(xy[i], xy[i+1]))
	}
	return out
}

// randomWalk returns n points of a lattice walk with 8-direction steps of
// random length, similar in shape to a traced contour.
func randomWalk(rng *rand.Rand, n int) []image.Point {
	out := make([]image.Point, n)
	p := image.Pt(0, 0)
	for i := range out {
		out[i] = p
		p = p.Add(image.Pt((rng.Intn(3)-1)*(1+rng.Intn(4)), (rng.Intn(3)-1)*(1+rng.Intn(4))))
	}
	return out
}

// DouglasPeuckerSuite exercises both drivers of the simplifier.
type DouglasPeuckerSuite struct {
	suite.Suite
	rng *rand.Rand
}

func (s *DouglasPeuckerSuite) SetupTest() {
	s.rng = rand.New(rand.NewSource(42))
}

// TestShortInputsUntouched verifies that ranges of at most two points are kept.
func (s *DouglasPeuckerSuite) TestShortInputsUntouched() {
	for _, in := range [][]image.Point{nil, pts(1, 1), pts(0, 0, 9, 9)} {
		s.Require().Equal(len(in), len(simplify.DouglasPeucker(in, 100)))
		s.Require().Equal(len(in), len(simplify.DouglasPeuckerIterative(in, 100)))
	}
}

// TestDropsCollinear removes points on the chord even at tolerance 0.
func (s *DouglasPeuckerSuite) TestDropsCollinear() {
	in := pts(0, 0, 1, 0, 2, 0, 5, 0)
	s.Require().Equal(pts(0, 0, 5, 0), simplify.DouglasPeucker(in, 0))
	s.Require().Equal(pts(0, 0, 5, 0), simplify.DouglasPeuckerIterative(in, 0))
}

// TestToleranceIsLinear checks the boundary of the linear tolerance: a point
// 2 cells off the chord survives tolerance 1.99 and is dropped at 2.
func (s *DouglasPeuckerSuite) TestToleranceIsLinear() {
	in := pts(0, 0, 5, 2, 10, 0)
	s.Require().Equal(in, simplify.DouglasPeucker(in, 1.99))
	s.Require().Equal(pts(0, 0, 10, 0), simplify.DouglasPeucker(in, 2))
}

// TestDefaultToleranceMatchesFiveSquared pins the default: offsets of 2 cells
// (4 squared) are dropped, offsets of 3 cells (9 squared) are kept.
func (s *DouglasPeuckerSuite) TestDefaultToleranceMatchesFiveSquared() {
	s.InDelta(5.0, simplify.DefaultTolerance*simplify.DefaultTolerance, 1e-12)
	s.Equal(pts(0, 0, 20, 0), simplify.DouglasPeucker(pts(0, 0, 10, 2, 20, 0), simplify.DefaultTolerance))
	s.Equal(pts(0, 0, 10, 3, 20, 0), simplify.DouglasPeucker(pts(0, 0, 10, 3, 20, 0), simplify.DefaultTolerance))
}

// TestKnownPolyline checks a hand-computed simplification.
func (s *DouglasPeuckerSuite) TestKnownPolyline() {
	in := pts(0, 0, 1, 1, 2, 0, 3, 5, 4, 6, 5, 5, 6, 0, 7, 1, 8, 0)
	want := pts(0, 0, 2, 0, 4, 6, 6, 0, 8, 0)
	s.Equal(want, simplify.DouglasPeucker(in, 1.5))
	s.Equal(want, simplify.DouglasPeuckerIterative(in, 1.5))
}

// TestDriversAgree compares the recursive and iterative drivers on random walks.
func (s *DouglasPeuckerSuite) TestDriversAgree() {
	for trial := 0; trial < 200; trial++ {
		in := randomWalk(s.rng, 3+s.rng.Intn(120))
		tol := []float64{0, 0.5, 1, simplify.DefaultTolerance, 4}[trial%5]
		rec := simplify.DouglasPeucker(in, tol)
		it := simplify.DouglasPeuckerIterative(in, tol)
		s.Require().Equal(rec, it, "trial %d tol %v", trial, tol)
	}
}

// TestIdempotentAndEndpoints re-simplifies random walks and checks that
// nothing changes, that endpoints survive, and that the output is an
// order-preserving subsequence of the input.
func (s *DouglasPeuckerSuite) TestIdempotentAndEndpoints() {
	for trial := 0; trial < 200; trial++ {
		in := randomWalk(s.rng, 3+s.rng.Intn(120))
		tol := float64(trial%4) * 0.9
		once := simplify.DouglasPeucker(in, tol)
		twice := simplify.DouglasPeucker(once, tol)
		s.Require().Equal(once, twice, "trial %d", trial)
		s.Require().LessOrEqual(len(once), len(in))
		s.Require().Equal(in[0], once[0])
		s.Require().Equal(in[len(in)-1], once[len(once)-1])

		j := 0
		for _, p := range once {
			for j < len(in) && in[j] != p {
				j++
			}
			s.Require().Less(j, len(in), "%v is not in the input order", p)
			j++
		}
	}
}

// TestInputNotModified guards against in-place compaction.
func (s *DouglasPeuckerSuite) TestInputNotModified() {
	in := pts(0, 0, 1, 0, 2, 0, 3, 0)
	snapshot := append([]image.Point(nil), in...)
	_ = simplify.DouglasPeucker(in, 10)
	_ = simplify.DouglasPeuckerIterative(in, 10)
	s.Equal(snapshot, in)
}

func TestDouglasPeuckerSuite(t *testing.T) {
	suite.Run(t, new(DouglasPeuckerSuite))
}

// TestSimplify_Options covers validation and mode dispatch.
func TestSimplify_Options(t *testing.T) {
	in := pts(0, 0, 5, 1, 10, 0)

	for _, tol := range []float64{-1, math.NaN()} {
		_, err := simplify.Simplify(in, simplify.Options{Tolerance: tol})
		assert.ErrorIs(t, err, simplify.ErrInvalidTolerance, "tolerance %v", tol)
	}

	opts := simplify.DefaultOptions()
	assert.Equal(t, simplify.Recursive, opts.Mode)
	out, err := simplify.Simplify(in, opts)
	require.NoError(t, err)
	assert.Equal(t, pts(0, 0, 10, 0), out)

	opts.Mode = simplify.Iterative
	opts.Tolerance = 0.5
	out, err = simplify.Simplify(in, opts)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

// TestSegmentDistanceSq covers projection inside, before and after the
// segment and the degenerate segment.
func TestSegmentDistanceSq(t *testing.T) {
	a, b := image.Pt(0, 0), image.Pt(10, 0)
	cases := []struct {
		name string
		p    image.Point
		a, b image.Point
		want float64
	}{
		{"Perpendicular", image.Pt(4, 3), a, b, 9},
		{"OnSegment", image.Pt(7, 0), a, b, 0},
		{"BeforeStart", image.Pt(-3, 4), a, b, 25},
		{"AfterEnd", image.Pt(13, 4), a, b, 25},
		{"Degenerate", image.Pt(3, 4), a, a, 25},
		{"Diagonal", image.Pt(0, 2), image.Pt(0, 0), image.Pt(2, 2), 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, simplify.SegmentDistanceSq(tc.p, tc.a, tc.b), 1e-9)
		})
	}
}
