package cell

import (
	"fmt"
	"math"

	"github.com/arloliu/pentagrid/coord"
	"github.com/arloliu/pentagrid/errs"
	"github.com/arloliu/pentagrid/projection"
	"github.com/arloliu/pentagrid/tiling"
)

// LonLatToCell returns the identifier of the cell at resolution containing p.
//
// Longitudes outside (-180, 180] are wrapped and longitude is ignored at the
// poles. Points on a shared edge or corner resolve to exactly one cell: the
// lowest-numbered face, the quintant whose sector starts at the point, and
// the quad whose half-open [lo, hi) interval holds it. Rounding in the
// projection is absorbed first: points within projection.RayTolerance of a
// sector ray or GridTolerance of a quad edge count as lying on it.
func LonLatToCell(p coord.LonLat, resolution int) (uint64, error) {
	if resolution < 0 || resolution > tiling.MaxResolution {
		return 0, fmt.Errorf("%w: %d not in [0, %d]", errs.ErrInvalidResolution, resolution, tiling.MaxResolution)
	}

	loc, err := projection.Inverse(p)
	if err != nil {
		return 0, err
	}

	if resolution == 0 {
		return tiling.Serialize(tiling.Cell{Face: loc.Face})
	}

	n := uint64(1) << uint(resolution-1)
	i := quantize(loc.U, n)
	j := quantize(loc.V, n)

	return tiling.Serialize(tiling.FromIJ(loc.Face, loc.Quintant, i, j, resolution))
}

// GridTolerance is the (u, v) distance within which a coordinate is taken to
// lie on a cell edge. It does not depend on the resolution, so a point on an
// edge shared by a coarser cell is snapped at both resolutions alike.
const GridTolerance = 1e-12

// quantize maps t in [0, 1] to a cell index in [0, n) with half-open
// [lo, hi) intervals, folding t == 1 into the last cell. Values within
// GridTolerance of an edge are moved onto it first.
func quantize(t float64, n uint64) uint64 {
	scaled := t * float64(n)
	idx := math.Floor(scaled)
	if edge := math.Round(scaled); math.Abs(scaled-edge) <= GridTolerance*float64(n) {
		idx = edge
	}
	if idx >= float64(n) {
		return n - 1
	}

	return uint64(idx)
}

// CellToLonLat returns the centre of a cell: the face centre at resolution 0,
// otherwise the image of the middle of the cell's (u, v) rectangle.
func CellToLonLat(id uint64) (coord.LonLat, error) {
	c, err := tiling.Deserialize(id)
	if err != nil {
		return coord.LonLat{}, err
	}

	if c.Resolution == 0 {
		return coord.FromPoint(projection.FaceCenter(c.Face)).Normalize(), nil
	}

	u0, v0, u1, v1 := uvBounds(c)
	center := projection.ForwardLonLat(c.Face, c.Quintant, (u0+u1)/2, (v0+v1)/2)

	return center.Normalize(), nil
}
