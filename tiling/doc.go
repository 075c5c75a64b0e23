// Package tiling defines the hierarchical subdivision of the sphere and the
// 64-bit identifier layout of its cells.
//
// Resolution 0 has 12 pentagonal cells, the faces of a dodecahedron. At
// resolution 1 every face splits into 5 quadrilateral quintants that meet at
// the face centre, and from then on every quad splits into 4 children. There
// are 12 cells at resolution 0 and 60·4^(r-1) at resolution r ≥ 1, up to
// MaxResolution.
//
// # Identifier layout
//
//	bits 63..60  face (0..11)
//	bit  59      resolution-0 marker; bits 58..0 are zero at resolution 0
//	bits 59..57  quintant (0..4), resolution >= 1
//	bits 56..    one 2-bit Hilbert digit per resolution above 1
//	             followed by a single marker bit, lower bits zero
//
// The lowest set bit therefore encodes the resolution, and the identifiers of
// all descendants of a cell share its prefix. Numeric order of identifiers is
// enumeration order: face, then quintant, then Hilbert path.
//
// The value 0 is WorldCell, the root of enumeration. It has no geometry.
//
// Everything in this package is pure path manipulation; geometry lives in the
// projection and cell packages.
package tiling
