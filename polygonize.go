package polygonize

import (
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/katalvlaran/polygonize/contour"
	"github.com/katalvlaran/polygonize/raster"
	"github.com/katalvlaran/polygonize/simplify"
)

// ErrNilGrid is returned when FromGrid or FromMask receives a nil input.
var ErrNilGrid = errors.New("polygonize: nil grid")

// Mask is any boolean raster the pipeline can read. *raster.Grid implements it.
type Mask interface {
	Dims() (width, height int)
	Get(x, y int) bool
}

// Polygons is the pipeline output: one closed, clockwise contour per region,
// ordered by each region's topmost-leftmost cell.
type Polygons []contour.Contour

// Vertices returns the total number of vertices over all polygons.
func (ps Polygons) Vertices() int {
	n := 0
	for _, p := range ps {
		n += len(p)
	}
	return n
}

// FromMask copies m into a raster.Grid and runs FromGrid on it.
// Returns ErrNilGrid if m is nil.
// Complexity: O(W×H) for the copy plus FromGrid.
func FromMask(m Mask, opts ...Option) (Polygons, error) {
	if m == nil {
		return nil, ErrNilGrid
	}
	if g, ok := m.(*raster.Grid); ok {
		return FromGrid(g, opts...)
	}
	w, h := m.Dims()
	g, err := raster.New(w, h)
	if err != nil {
		return nil, fmt.Errorf("polygonize: mask: %w", err)
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if m.Get(x, y) {
				g.Set(x, y, true)
			}
		}
	}
	return FromGrid(g, opts...)
}

// FromGrid converts every 4-connected region of active cells in g into a
// closed polygon.
//
// Behavior:
//  1. Label regions with g.Components.
//  2. Skip regions smaller than Options.MinArea.
//  3. Trace each region (contour.Trace), simplify it unless disabled, and
//     scale it by Options.Scale.
//
// Regions are independent after labelling; with WithWorkers(n>1) they are
// traced concurrently, and the result keeps region order either way. The
// grid is only read.
//
// Returns ErrNilGrid for a nil grid; tracing failures are wrapped with the
// region index and keep their contour sentinel for errors.Is.
//
// Time:   O(W×H×α + Σ(B_i + P_i log P_i)) over regions i.
// Memory: O(W + active cells + max B_i).
func FromGrid(g *raster.Grid, opts ...Option) (Polygons, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	o := resolve(opts)

	regions := g.Components()
	o.Logger.Debug("labelled grid",
		zap.Int("width", g.Width),
		zap.Int("height", g.Height),
		zap.Int("regions", len(regions)),
	)
	return fromRegions(regions, o)
}

// FromRegions runs trace, simplify and scale over a partition the caller
// already has. Regions keep their order in the result.
func FromRegions(regions []raster.Region, opts ...Option) (Polygons, error) {
	return fromRegions(regions, resolve(opts))
}

func fromRegions(regions []raster.Region, o Options) (Polygons, error) {
	kept := make([]raster.Region, 0, len(regions))
	for i, r := range regions {
		if len(r) < o.MinArea {
			o.Logger.Warn("region below minimum area skipped",
				zap.Int("region", i),
				zap.Int("cells", len(r)),
				zap.Int("min_area", o.MinArea),
			)
			continue
		}
		kept = append(kept, r)
	}

	out := make(Polygons, len(kept))
	workers := min(o.Workers, len(kept))
	if workers <= 1 {
		for i, r := range kept {
			c, err := polygon(r, i, o)
			if err != nil {
				return nil, err
			}
			out[i] = c
		}
		return out, nil
	}

	errs := make([]error, len(kept))
	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				out[i], errs[i] = polygon(kept[i], i, o)
			}
		}()
	}
	for i := range kept {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	// Report the first failure in region order, not in completion order.
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

// polygon traces, simplifies and scales one region.
func polygon(r raster.Region, i int, o Options) (contour.Contour, error) {
	c, err := contour.Trace(r)
	if err != nil {
		return nil, fmt.Errorf("polygonize: region %d: %w", i, err)
	}
	traced := len(c)

	if o.Simplify {
		pts, err := simplify.Simplify(c, simplify.Options{Tolerance: o.Tolerance, Mode: o.Mode})
		if err != nil {
			return nil, fmt.Errorf("polygonize: region %d: %w", i, err)
		}
		c = pts
	}
	if o.Scale != 1 {
		c = c.Scale(o.Scale)
	}

	o.Logger.Debug("polygonized region",
		zap.Int("region", i),
		zap.Int("cells", len(r)),
		zap.Int("traced", traced),
		zap.Int("vertices", len(c)),
	)
	return c, nil
}
