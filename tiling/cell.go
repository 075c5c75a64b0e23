package tiling

import (
	"fmt"
	"math/bits"

	"github.com/arloliu/pentagrid/errs"
	"github.com/arloliu/pentagrid/internal/hilbert"
)

const (
	// MaxResolution is the finest resolution the 64-bit layout can address.
	MaxResolution = 29

	// WorldCell is the enumeration root covering the whole sphere.
	WorldCell uint64 = 0

	// FaceCount is the number of resolution-0 cells.
	FaceCount = 12

	// QuintantCount is the number of children of a resolution-0 cell.
	QuintantCount = 5

	// BranchingFactor is the number of children of a cell at resolution 1 or finer.
	BranchingFactor = 4
)

const (
	faceShift     = 60
	quintantShift = 57
	res0Marker    = 59
	quintantMask  = 0x7
)

// Cell is the decoded form of an identifier: a face, the quintant within it
// and the Hilbert path of quad digits below the quintant.
//
// Path holds Depth() 2-bit digits, most significant first. At resolution 0
// Quintant and Path are zero; at resolution 1 Path is zero.
type Cell struct {
	Face       int
	Quintant   int
	Path       uint64
	Resolution int
}

// Depth returns the number of quad digits in the path.
func (c Cell) Depth() int {
	if c.Resolution <= 1 {
		return 0
	}

	return c.Resolution - 1
}

// IJ returns the quad indices of the cell inside its quintant, each in
// [0, 2^Depth()).
func (c Cell) IJ() (i, j uint64) {
	return hilbert.PathToIJ(c.Path, c.Depth())
}

// Shape returns the outline shape of the cell.
func (c Cell) Shape() Shape {
	return ShapeAt(c.Resolution)
}

// FromIJ builds the cell at the given resolution from quad indices inside a
// quintant. i and j are taken modulo 2^(resolution-1).
func FromIJ(face, quintant int, i, j uint64, resolution int) Cell {
	if resolution == 0 {
		return Cell{Face: face}
	}
	depth := resolution - 1

	return Cell{
		Face:       face,
		Quintant:   quintant,
		Path:       hilbert.IJToPath(i, j, depth),
		Resolution: resolution,
	}
}

// markerBit returns the position of the resolution marker.
func markerBit(resolution int) uint {
	if resolution == 0 {
		return res0Marker
	}

	return uint(58 - 2*resolution)
}

// Serialize encodes c as a 64-bit identifier.
func Serialize(c Cell) (uint64, error) {
	if c.Resolution < 0 || c.Resolution > MaxResolution {
		return 0, fmt.Errorf("%w: %d not in [0, %d]", errs.ErrInvalidResolution, c.Resolution, MaxResolution)
	}
	if c.Face < 0 || c.Face >= FaceCount {
		return 0, fmt.Errorf("%w: face %d", errs.ErrInvalidCellID, c.Face)
	}

	id := uint64(c.Face) << faceShift
	if c.Resolution == 0 {
		if c.Quintant != 0 || c.Path != 0 {
			return 0, fmt.Errorf("%w: resolution 0 cell with quintant %d path %d", errs.ErrInvalidCellID, c.Quintant, c.Path)
		}

		return id | 1<<res0Marker, nil
	}

	if c.Quintant < 0 || c.Quintant >= QuintantCount {
		return 0, fmt.Errorf("%w: quintant %d", errs.ErrInvalidCellID, c.Quintant)
	}
	depth := c.Depth()
	if c.Path>>(2*uint(depth)) != 0 {
		return 0, fmt.Errorf("%w: path %#x longer than %d digits", errs.ErrInvalidCellID, c.Path, depth)
	}

	marker := markerBit(c.Resolution)
	id |= uint64(c.Quintant) << quintantShift
	id |= c.Path << (marker + 1)
	id |= 1 << marker

	return id, nil
}

// Deserialize decodes and validates an identifier. WorldCell and any value
// whose marker, face or quintant is out of range fail with
// errs.ErrInvalidCellID.
func Deserialize(id uint64) (Cell, error) {
	if id == WorldCell {
		return Cell{}, fmt.Errorf("%w: world cell has no geometry", errs.ErrInvalidCellID)
	}

	face := int(id >> faceShift)
	if face >= FaceCount {
		return Cell{}, fmt.Errorf("%w: %016x has face %d", errs.ErrInvalidCellID, id, face)
	}

	marker := bits.TrailingZeros64(id)
	if marker == res0Marker {
		return Cell{Face: face}, nil
	}
	if marker > int(markerBit(1)) || (int(markerBit(1))-marker)%2 != 0 {
		return Cell{}, fmt.Errorf("%w: %016x has no valid resolution marker", errs.ErrInvalidCellID, id)
	}

	resolution := 1 + (int(markerBit(1))-marker)/2
	quintant := int(id>>quintantShift) & quintantMask
	if quintant >= QuintantCount {
		return Cell{}, fmt.Errorf("%w: %016x has quintant %d", errs.ErrInvalidCellID, id, quintant)
	}

	depth := resolution - 1
	path := (id >> uint(marker+1)) & (1<<(2*uint(depth)) - 1)

	return Cell{Face: face, Quintant: quintant, Path: path, Resolution: resolution}, nil
}

// IsValid reports whether id names a real cell. WorldCell is not a cell.
func IsValid(id uint64) bool {
	_, err := Deserialize(id)
	return err == nil
}

// Resolution returns the resolution of id, or -1 for WorldCell.
func Resolution(id uint64) (int, error) {
	if id == WorldCell {
		return -1, nil
	}
	c, err := Deserialize(id)
	if err != nil {
		return 0, err
	}

	return c.Resolution, nil
}

// resolutionOf reads the resolution of an already validated identifier.
func resolutionOf(id uint64) int {
	if id == WorldCell {
		return -1
	}
	marker := bits.TrailingZeros64(id)
	if marker == res0Marker {
		return 0
	}

	return 1 + (int(markerBit(1))-marker)/2
}

// Res0Cells returns the 12 face cells in face order.
func Res0Cells() []uint64 {
	out := make([]uint64, FaceCount)
	for f := range FaceCount {
		out[f] = uint64(f)<<faceShift | 1<<res0Marker
	}

	return out
}

// Parent returns the ancestor of id at a coarser (or equal) resolution.
func Parent(id uint64, resolution int) (uint64, error) {
	c, err := Deserialize(id)
	if err != nil {
		return 0, err
	}
	if resolution < 0 || resolution > c.Resolution {
		return 0, fmt.Errorf("%w: parent resolution %d for cell at resolution %d", errs.ErrInvalidResolution, resolution, c.Resolution)
	}

	return parentOf(id, c.Resolution, resolution), nil
}

// parentOf truncates a validated identifier from resolution r to resolution to.
func parentOf(id uint64, r, to int) uint64 {
	if to == r {
		return id
	}
	if to == 0 {
		return id&(0xf<<faceShift) | 1<<res0Marker
	}
	marker := markerBit(to)
	// Keep everything above the new marker, then set it.
	return id&^(1<<(marker+1)-1) | 1<<marker
}
