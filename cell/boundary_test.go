package cell

import (
	"math"
	"testing"

	"github.com/golang/geo/s2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/pentagrid/coord"
	"github.com/arloliu/pentagrid/errs"
	"github.com/arloliu/pentagrid/tiling"
)

func toPoints(ring []coord.LonLat) []s2.Point {
	out := make([]s2.Point, len(ring))
	for i, ll := range ring {
		out[i] = ll.ToPoint()
	}

	return out
}

func TestCellToBoundary_VertexCounts(t *testing.T) {
	quad := uint64(0x23c0000000000000)
	face := uint64(0x1800000000000000)

	tests := []struct {
		name string
		id   uint64
		opts []BoundaryOption
		want int
	}{
		{"pentagon closed", face, nil, 6},
		{"pentagon open", face, []BoundaryOption{WithClosedRing(false)}, 5},
		{"quad closed", quad, nil, 5},
		{"quad open", quad, []BoundaryOption{WithClosedRing(false)}, 4},
		{"quad segments", quad, []BoundaryOption{WithSegments(8)}, 4*8 + 1},
		{"pentagon segments open", face, []BoundaryOption{WithSegments(3), WithClosedRing(false)}, 15},
		{"pentagon auto", face, []BoundaryOption{WithAutoSegments()}, 5*64 + 1},
		{"quad auto", quad, []BoundaryOption{WithAutoSegments()}, 4*16 + 1},
		{"segments override auto", quad, []BoundaryOption{WithAutoSegments(), WithSegments(2)}, 4*2 + 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ring, err := CellToBoundary(tt.id, tt.opts...)
			require.NoError(t, err)
			require.Len(t, ring, tt.want)
		})
	}
}

func TestCellToBoundary_ClosedRingRepeatsFirst(t *testing.T) {
	ids, err := tiling.Children(tiling.WorldCell, 2)
	require.NoError(t, err)

	for _, id := range ids {
		ring, err := CellToBoundary(id)
		require.NoError(t, err)
		require.Equal(t, ring[0], ring[len(ring)-1])
	}
}

func TestCellToBoundary_Unwrapped(t *testing.T) {
	for resolution := 0; resolution <= 3; resolution++ {
		ids, err := tiling.Children(tiling.WorldCell, resolution)
		require.NoError(t, err)

		for _, id := range ids {
			// The closing vertex of a ring around a pole is a full turn away
			// from its predecessor, so check the open ring.
			ring, err := CellToBoundary(id, WithSegments(4), WithClosedRing(false))
			require.NoError(t, err)
			for i := 1; i < len(ring); i++ {
				require.LessOrEqual(t, math.Abs(ring[i].Lon-ring[i-1].Lon), 180.0, "cell %016x vertex %d", id, i)
			}
		}
	}
}

func TestCellToBoundary_PoleVertex(t *testing.T) {
	for _, face := range []int{0, 11} {
		for quintant := range tiling.QuintantCount {
			id, err := tiling.Serialize(tiling.Cell{Face: face, Quintant: quintant, Resolution: 1})
			require.NoError(t, err)

			ring, err := CellToBoundary(id, WithClosedRing(false))
			require.NoError(t, err)
			require.Len(t, ring, 4)

			// The quintant's first corner is the face centre.
			assert.InDelta(t, 90, math.Abs(ring[0].Lat), 0)
			assert.Equal(t, ring[1].Lon, ring[0].Lon)
		}
	}
}

func TestCellToBoundary_CounterClockwise(t *testing.T) {
	for resolution := 0; resolution <= 2; resolution++ {
		ids, err := tiling.Children(tiling.WorldCell, resolution)
		require.NoError(t, err)

		for _, id := range ids {
			ring, err := CellToBoundary(id, WithClosedRing(false))
			require.NoError(t, err)

			// A clockwise ring would enclose the rest of the sphere.
			area := s2.LoopFromPoints(toPoints(ring)).Area()
			require.Less(t, area, 2*math.Pi, "cell %016x", id)
		}
	}
}

func TestCellToBoundary_SegmentsOnGeodesic(t *testing.T) {
	const segments = 6
	for _, id := range []uint64{0x1800000000000000, 0x23c0000000000000, 0x0100000000000000} {
		ring, err := CellToBoundary(id, WithSegments(segments), WithClosedRing(false))
		require.NoError(t, err)

		pts := toPoints(ring)
		n := len(pts) / segments
		for k := range n {
			a := pts[k*segments]
			b := pts[((k+1)*segments)%len(pts)]
			normal := a.PointCross(b).Normalize()
			for s := 1; s < segments; s++ {
				p := pts[k*segments+s]
				assert.InDelta(t, 0, p.Dot(normal), 1e-12, "cell %016x edge %d", id, k)
			}
		}
	}
}

func TestCellToBoundary_CornersMatchCentre(t *testing.T) {
	id := uint64(0x23c0000000000000)
	ring, err := CellToBoundary(id, WithClosedRing(false))
	require.NoError(t, err)

	center, err := CellToLonLat(id)
	require.NoError(t, err)

	loop := s2.LoopFromPoints(toPoints(ring))
	assert.True(t, loop.ContainsPoint(center.ToPoint()))
}

func TestCellToBoundary_Errors(t *testing.T) {
	_, err := CellToBoundary(tiling.WorldCell)
	require.ErrorIs(t, err, errs.ErrInvalidCellID)

	_, err = CellToBoundary(0x1080000000000000)
	require.ErrorIs(t, err, errs.ErrInvalidCellID)

	_, err = CellToBoundary(0x1800000000000000, WithSegments(0))
	require.ErrorIs(t, err, errs.ErrInvalidOption)

	_, err = CellToBoundary(0x1800000000000000, WithSegments(MaxSegments+1))
	require.ErrorIs(t, err, errs.ErrInvalidOption)
}

func TestAutoSegments(t *testing.T) {
	assert.Equal(t, 64, AutoSegments(0))
	assert.Equal(t, 32, AutoSegments(1))
	assert.Equal(t, 2, AutoSegments(5))
	assert.Equal(t, 1, AutoSegments(6))
	assert.Equal(t, 1, AutoSegments(tiling.MaxResolution))
}

func BenchmarkCellToBoundary(b *testing.B) {
	id := uint64(0x23c0000000000000)
	for b.Loop() {
		_, _ = CellToBoundary(id)
	}
}
