// Package pentagrid is a discrete global grid: a hierarchical, equal-topology
// tiling of the sphere addressed by 64-bit cell identifiers.
//
// The sphere is first split into the 12 pentagonal faces of a dodecahedron
// (resolution 0). Each face splits into 5 quadrilateral quintants
// (resolution 1), and from then on every quad splits into 4 children, down
// to MaxResolution. Children tile their parent exactly, cell edges are
// geodesics, and cells are numbered along a Hilbert curve so that nearby
// identifiers are nearby on the ground.
//
// # Core Features
//
//   - Point location: LonLatToCell
//   - Cell outlines with optional edge subdivision: CellToBoundary
//   - Enumeration of a cell's descendants or the whole sphere: CellToChildren
//   - Canonical hexadecimal identifiers: U64ToHex and HexToU64
//   - Compaction of cell lists and a compressed binary container for them
//
// # Basic Usage
//
//	id, err := pentagrid.LonLatToCell(pentagrid.LonLat{Lon: 13.405, Lat: 52.52}, 12)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(pentagrid.U64ToHex(id))
//
//	ring, err := pentagrid.CellToBoundary(id, pentagrid.WithSegments(4))
//
//	children, err := pentagrid.CellToChildren(id, 14)
//
// # Package Structure
//
// This package wraps the tiling, cell, hexid and cellset packages for the
// common cases. Use those packages directly for options and lower-level
// access such as decoded cell coordinates.
package pentagrid

import (
	"github.com/arloliu/pentagrid/cell"
	"github.com/arloliu/pentagrid/cellset"
	"github.com/arloliu/pentagrid/coord"
	"github.com/arloliu/pentagrid/hexid"
	"github.com/arloliu/pentagrid/tiling"
)

const (
	// MaxResolution is the finest supported resolution.
	MaxResolution = tiling.MaxResolution

	// WorldCell is the enumeration root covering the whole sphere. It is not a
	// cell: it has no boundary and no location.
	WorldCell = tiling.WorldCell
)

// LonLat is a geographic point in degrees, longitude first.
type LonLat = coord.LonLat

// BoundaryOption configures CellToBoundary.
type BoundaryOption = cell.BoundaryOption

// WithClosedRing controls whether the boundary repeats its first vertex.
func WithClosedRing(closed bool) BoundaryOption {
	return cell.WithClosedRing(closed)
}

// WithSegments splits every boundary edge into n segments.
func WithSegments(n int) BoundaryOption {
	return cell.WithSegments(n)
}

// WithAutoSegments subdivides coarse cells more than fine ones.
func WithAutoSegments() BoundaryOption {
	return cell.WithAutoSegments()
}

// U64ToHex formats an identifier as 16 lowercase hexadecimal digits.
func U64ToHex(id uint64) string {
	return hexid.U64ToHex(id)
}

// HexToU64 parses a hexadecimal identifier. It does not check that the value
// is a valid cell.
func HexToU64(text string) (uint64, error) {
	return hexid.HexToU64(text)
}

// LonLatToCell returns the cell at resolution containing p.
func LonLatToCell(p LonLat, resolution int) (uint64, error) {
	return cell.LonLatToCell(p, resolution)
}

// CellToLonLat returns the centre of a cell.
func CellToLonLat(id uint64) (LonLat, error) {
	return cell.CellToLonLat(id)
}

// CellToBoundary returns the outline of a cell, counter-clockwise.
func CellToBoundary(id uint64, opts ...BoundaryOption) ([]LonLat, error) {
	return cell.CellToBoundary(id, opts...)
}

// CellToChildren returns the descendants of id at resolution in ascending
// order. With WorldCell it returns every cell at that resolution.
func CellToChildren(id uint64, resolution int) ([]uint64, error) {
	return tiling.Children(id, resolution)
}

// CellToParent returns the ancestor of id at a coarser resolution.
func CellToParent(id uint64, resolution int) (uint64, error) {
	return tiling.Parent(id, resolution)
}

// GetResolution returns the resolution of id, or -1 for WorldCell.
func GetResolution(id uint64) (int, error) {
	return tiling.Resolution(id)
}

// IsValidCell reports whether id names a cell.
func IsValidCell(id uint64) bool {
	return tiling.IsValid(id)
}

// GetRes0Cells returns the 12 resolution-0 cells.
func GetRes0Cells() []uint64 {
	return tiling.Res0Cells()
}

// CompactCells merges complete sibling sets into their parents.
func CompactCells(ids []uint64) ([]uint64, error) {
	return tiling.Compact(ids)
}

// UncompactCells expands ids to a uniform resolution.
func UncompactCells(ids []uint64, resolution int) ([]uint64, error) {
	return tiling.Uncompact(ids, resolution)
}

// CellArea returns the area of a cell in square metres.
func CellArea(id uint64) (float64, error) {
	return cell.CellArea(id)
}

// EncodeCells serializes ids into the cellset binary container.
func EncodeCells(ids []uint64, opts ...cellset.EncoderOption) ([]byte, error) {
	return cellset.Encode(ids, opts...)
}

// DecodeCells reads identifiers back from EncodeCells output.
func DecodeCells(data []byte) ([]uint64, error) {
	return cellset.Decode(data)
}
