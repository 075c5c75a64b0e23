package cell

import (
	"fmt"
	"math"

	"github.com/golang/geo/r2"
	"github.com/golang/geo/s2"

	"github.com/arloliu/pentagrid/coord"
	"github.com/arloliu/pentagrid/errs"
	"github.com/arloliu/pentagrid/internal/options"
	"github.com/arloliu/pentagrid/projection"
	"github.com/arloliu/pentagrid/tiling"
)

// MaxSegments is the largest per-edge subdivision WithSegments accepts.
const MaxSegments = 1024

// autoSegmentsBase is the resolution at which automatic subdivision reaches
// one segment per edge.
const autoSegmentsBase = 6

type boundaryConfig struct {
	closed   bool
	segments int
	auto     bool
}

// BoundaryOption configures CellToBoundary.
type BoundaryOption = options.Option[*boundaryConfig]

// WithClosedRing controls whether the first vertex is repeated at the end of
// the ring. Rings are closed by default.
func WithClosedRing(closed bool) BoundaryOption {
	return options.NoError(func(c *boundaryConfig) {
		c.closed = closed
	})
}

// WithSegments splits every edge into n segments. n must be in
// [1, MaxSegments].
func WithSegments(n int) BoundaryOption {
	return options.New(func(c *boundaryConfig) error {
		if n < 1 || n > MaxSegments {
			return fmt.Errorf("%w: segments %d not in [1, %d]", errs.ErrInvalidOption, n, MaxSegments)
		}
		c.segments = n
		c.auto = false

		return nil
	})
}

// WithAutoSegments picks the subdivision from the resolution, so coarse cells
// get smooth outlines and fine cells plain corners: max(1, 2^(6-resolution)).
func WithAutoSegments() BoundaryOption {
	return options.NoError(func(c *boundaryConfig) {
		c.auto = true
	})
}

// AutoSegments returns the per-edge subdivision WithAutoSegments uses.
func AutoSegments(resolution int) int {
	if resolution >= autoSegmentsBase {
		return 1
	}

	return 1 << (autoSegmentsBase - resolution)
}

// CellToBoundary returns the outline of a cell as longitude/latitude vertices,
// counter-clockwise seen from outside the sphere.
//
// The ring has 5 corners at resolution 0 and 4 otherwise, each edge split into
// the configured number of segments. Every edge is a geodesic, so the
// intermediate points lie exactly on it. Longitudes are unwrapped: consecutive
// vertices never differ by more than 180°, and a vertex on a pole takes the
// longitude of its predecessor. The closing vertex of a closed ring is an exact
// copy of the first, so around a pole it sits a full turn from its neighbour.
func CellToBoundary(id uint64, opts ...BoundaryOption) ([]coord.LonLat, error) {
	cfg := &boundaryConfig{closed: true, segments: 1}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	c, err := tiling.Deserialize(id)
	if err != nil {
		return nil, err
	}

	segments := cfg.segments
	if cfg.auto {
		segments = AutoSegments(c.Resolution)
	}

	points := boundaryPoints(c, segments)
	ring := unwrap(points)
	if cfg.closed {
		ring = append(ring, ring[0])
	}

	return ring, nil
}

// corners returns the cell's corners on the sphere, counter-clockwise.
func corners(c tiling.Cell) []s2.Point {
	return boundaryPoints(c, 1)
}

// boundaryPoints returns the corners of c with segments-1 interpolated points
// after each one. Interpolation is linear in the gnomonic plane, where edges
// are straight.
func boundaryPoints(c tiling.Cell, segments int) []s2.Point {
	var planar []r2.Point
	if c.Resolution == 0 {
		pentagon := projection.Pentagon(c.Face)
		planar = subdivide(pentagon[:], segments)
	} else {
		u0, v0, u1, v1 := uvBounds(c)
		quad := projection.QuintantQuad(c.Face, c.Quintant)
		uv := []r2.Point{
			{X: u0, Y: v0},
			{X: u1, Y: v0},
			{X: u1, Y: v1},
			{X: u0, Y: v1},
		}
		planar = make([]r2.Point, 0, len(uv)*segments)
		for _, p := range subdivide(uv, segments) {
			planar = append(planar, quad.At(p.X, p.Y))
		}
	}

	out := make([]s2.Point, len(planar))
	for i, p := range planar {
		out[i] = projection.FromPlane(c.Face, p)
	}

	return out
}

// subdivide walks the closed polygon pts and inserts segments-1 evenly spaced
// points along every edge.
func subdivide(pts []r2.Point, segments int) []r2.Point {
	out := make([]r2.Point, 0, len(pts)*segments)
	for k, a := range pts {
		b := pts[(k+1)%len(pts)]
		out = append(out, a)
		for s := 1; s < segments; s++ {
			t := float64(s) / float64(segments)
			out = append(out, a.Add(b.Sub(a).Mul(t)))
		}
	}

	return out
}

// uvBounds returns the (u, v) rectangle of a cell at resolution 1 or finer.
func uvBounds(c tiling.Cell) (u0, v0, u1, v1 float64) {
	i, j := c.IJ()
	n := float64(uint64(1) << uint(c.Depth()))

	return float64(i) / n, float64(j) / n, float64(i+1) / n, float64(j+1) / n
}

// poleEpsilon is the distance from the axis below which a vertex counts as
// lying on a pole.
const poleEpsilon = 1e-15

// unwrap converts points to degrees so that longitude changes by at most 180°
// between neighbours. Pole vertices inherit the previous longitude; a leading
// pole vertex takes the first non-pole longitude.
func unwrap(points []s2.Point) []coord.LonLat {
	out := make([]coord.LonLat, len(points))
	onPole := make([]bool, len(points))
	for i, p := range points {
		out[i] = coord.FromPoint(p)
		onPole[i] = math.Abs(p.X) < poleEpsilon && math.Abs(p.Y) < poleEpsilon
		if onPole[i] {
			out[i].Lat = math.Copysign(90, p.Z)
		}
	}

	prev := math.NaN()
	for i := range out {
		if !onPole[i] {
			prev = out[i].Lon
			break
		}
	}
	if math.IsNaN(prev) {
		prev = 0
	}

	for i := range out {
		if onPole[i] {
			out[i].Lon = prev
			continue
		}
		lon := out[i].Lon
		for lon-prev > 180 {
			lon -= 360
		}
		for lon-prev < -180 {
			lon += 360
		}
		out[i].Lon = lon
		prev = lon
	}

	return out
}
