package tiling

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/pentagrid/errs"
)

func TestChildren_WorldAtResolution0(t *testing.T) {
	ids, err := Children(WorldCell, 0)
	require.NoError(t, err)
	assert.Equal(t, Res0Cells(), ids)
}

func TestChildren_WorldCounts(t *testing.T) {
	for resolution := 0; resolution <= 5; resolution++ {
		ids, err := Children(WorldCell, resolution)
		require.NoError(t, err)

		want, err := CellCount(resolution)
		require.NoError(t, err)
		require.Len(t, ids, int(want))

		require.True(t, slices.IsSorted(ids), "resolution %d not sorted", resolution)
		for i := 1; i < len(ids); i++ {
			require.NotEqual(t, ids[i-1], ids[i])
		}
		for _, id := range ids {
			r, err := Resolution(id)
			require.NoError(t, err)
			require.Equal(t, resolution, r)
		}
	}
}

func TestCellCount(t *testing.T) {
	tests := []struct {
		resolution int
		want       uint64
	}{
		{0, 12},
		{1, 60},
		{2, 240},
		{3, 960},
		{MaxResolution, 60 << 56},
	}
	for _, tt := range tests {
		got, err := CellCount(tt.resolution)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

func TestChildren_Partition(t *testing.T) {
	face := Res0Cells()[3]
	quintants, err := Children(face, 1)
	require.NoError(t, err)
	require.Len(t, quintants, QuintantCount)

	for _, q := range quintants {
		kids, err := Children(q, 2)
		require.NoError(t, err)
		require.Len(t, kids, BranchingFactor)
		for _, kid := range kids {
			parent, err := Parent(kid, 1)
			require.NoError(t, err)
			assert.Equal(t, q, parent)
		}

		grandKids, err := Children(q, 4)
		require.NoError(t, err)
		require.Len(t, grandKids, BranchingFactor*BranchingFactor*BranchingFactor)
	}
}

func TestChildren_SameResolutionReturnsSelf(t *testing.T) {
	id := uint64(0x23c0000000000000)
	ids, err := Children(id, 2)
	require.NoError(t, err)
	assert.Equal(t, []uint64{id}, ids)
}

func TestChildren_ContiguousRange(t *testing.T) {
	id := uint64(0x23c0000000000000)
	ids, err := Children(id, 5)
	require.NoError(t, err)
	require.Len(t, ids, 64)

	// Descendants occupy a contiguous block of the identifier space between
	// the first and last child.
	step := ids[1] - ids[0]
	for i := 1; i < len(ids); i++ {
		assert.Equal(t, step, ids[i]-ids[i-1])
	}
}

func TestChildren_Errors(t *testing.T) {
	id := uint64(0x23c0000000000000)

	_, err := Children(id, 1)
	require.ErrorIs(t, err, errs.ErrInvalidResolution)

	_, err = Children(id, MaxResolution+1)
	require.ErrorIs(t, err, errs.ErrInvalidResolution)

	_, err = Children(WorldCell, -1)
	require.ErrorIs(t, err, errs.ErrInvalidResolution)

	_, err = Children(0x1200000000000000, 3)
	require.ErrorIs(t, err, errs.ErrInvalidCellID)

	_, err = Children(WorldCell, 20)
	require.ErrorIs(t, err, errs.ErrTooManyCells)

	_, err = Children(WorldCell, 3, WithLimit(100))
	require.ErrorIs(t, err, errs.ErrTooManyCells)

	_, err = Children(WorldCell, 1, WithLimit(0))
	require.ErrorIs(t, err, errs.ErrInvalidOption)
}

func TestChildrenSeq_MatchesChildren(t *testing.T) {
	want, err := Children(WorldCell, 3)
	require.NoError(t, err)

	seq, err := ChildrenSeq(WorldCell, 3)
	require.NoError(t, err)
	assert.Equal(t, want, slices.Collect(seq))
}

func TestChildrenSeq_StopsEarly(t *testing.T) {
	seq, err := ChildrenSeq(WorldCell, MaxResolution)
	require.NoError(t, err)

	var got []uint64
	for id := range seq {
		got = append(got, id)
		if len(got) == 3 {
			break
		}
	}
	require.Len(t, got, 3)
	assert.True(t, IsValid(got[2]))
}

func TestChildCount(t *testing.T) {
	n, err := ChildCount(Res0Cells()[0], 3)
	require.NoError(t, err)
	assert.Equal(t, uint64(5*16), n)

	n, err = ChildCount(0x23c0000000000000, 2)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), n)
}

func BenchmarkChildren(b *testing.B) {
	for b.Loop() {
		_, _ = Children(WorldCell, 6)
	}
}
