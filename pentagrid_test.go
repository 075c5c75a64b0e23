package pentagrid

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/pentagrid/cellset"
	"github.com/arloliu/pentagrid/errs"
	"github.com/arloliu/pentagrid/format"
)

func TestLonLatToCell_Origin(t *testing.T) {
	id, err := LonLatToCell(LonLat{Lon: 0, Lat: 0}, 0)
	require.NoError(t, err)
	assert.Equal(t, "1800000000000000", U64ToHex(id))
}

func TestHexToU64_Invalid(t *testing.T) {
	_, err := HexToU64("zz")
	require.ErrorIs(t, err, errs.ErrInvalidHex)
}

func TestCellToBoundary_InvalidCell(t *testing.T) {
	id, err := HexToU64("1200000000000000")
	require.NoError(t, err)

	_, err = CellToBoundary(id)
	require.ErrorIs(t, err, errs.ErrInvalidCellID)

	_, err = CellToBoundary(WorldCell)
	require.ErrorIs(t, err, errs.ErrInvalidCellID)
}

func TestWorldEnumeration(t *testing.T) {
	tests := []struct {
		resolution int
		count      int
	}{
		{0, 12},
		{1, 60},
		{2, 240},
	}
	for _, tt := range tests {
		ids, err := CellToChildren(WorldCell, tt.resolution)
		require.NoError(t, err)
		require.Len(t, ids, tt.count)

		seen := make(map[uint64]struct{}, len(ids))
		for i, id := range ids {
			require.True(t, IsValidCell(id))
			r, err := GetResolution(id)
			require.NoError(t, err)
			require.Equal(t, tt.resolution, r)
			if i > 0 {
				require.Less(t, ids[i-1], id)
				require.Less(t, U64ToHex(ids[i-1]), U64ToHex(id))
			}
			seen[id] = struct{}{}
		}
		require.Len(t, seen, tt.count)
	}
}

func TestBoundary_ClosedAndOpenCounts(t *testing.T) {
	for _, id := range GetRes0Cells() {
		ring, err := CellToBoundary(id)
		require.NoError(t, err)
		require.Len(t, ring, 6)
		require.Equal(t, ring[0], ring[5])

		open, err := CellToBoundary(id, WithClosedRing(false), WithSegments(5))
		require.NoError(t, err)
		require.Len(t, open, 25)
	}
}

func TestPipeline_LocateCompactEncode(t *testing.T) {
	parent, err := LonLatToCell(LonLat{Lon: -73.9857, Lat: 40.7484}, 6)
	require.NoError(t, err)

	kids, err := CellToChildren(parent, 8)
	require.NoError(t, err)
	require.Len(t, kids, 16)

	for _, kid := range kids {
		up, err := CellToParent(kid, 6)
		require.NoError(t, err)
		require.Equal(t, parent, up)
	}

	compacted, err := CompactCells(kids)
	require.NoError(t, err)
	require.Equal(t, []uint64{parent}, compacted)

	data, err := EncodeCells(kids, cellset.WithCompression(format.CompressionS2))
	require.NoError(t, err)
	decoded, err := DecodeCells(data)
	require.NoError(t, err)
	require.Equal(t, kids, decoded)

	expanded, err := UncompactCells(compacted, 8)
	require.NoError(t, err)
	require.Equal(t, kids, expanded)
}

func TestCellArea_Positive(t *testing.T) {
	id, err := LonLatToCell(LonLat{Lon: 2.3522, Lat: 48.8566}, 10)
	require.NoError(t, err)

	area, err := CellArea(id)
	require.NoError(t, err)
	assert.Positive(t, area)
}

func ExampleLonLatToCell() {
	id, err := LonLatToCell(LonLat{Lon: 0, Lat: 0}, 0)
	if err != nil {
		panic(err)
	}
	fmt.Println(U64ToHex(id))
	// Output: 1800000000000000
}

func ExampleCellToChildren() {
	ids, err := CellToChildren(WorldCell, 1)
	if err != nil {
		panic(err)
	}
	fmt.Println(len(ids), U64ToHex(ids[0]), U64ToHex(ids[len(ids)-1]))
	// Output: 60 0100000000000000 b900000000000000
}

func ExampleCellToBoundary() {
	id, _ := HexToU64("0800000000000000")
	ring, err := CellToBoundary(id, WithClosedRing(false))
	if err != nil {
		panic(err)
	}
	fmt.Println(len(ring))
	// Output: 5
}
