// Package cell turns tiling identifiers into geography and back.
//
// LonLatToCell locates the cell containing a point, CellToBoundary renders a
// cell outline as a longitude/latitude ring, and CellToLonLat and CellArea
// report a cell's centre and spherical area.
//
// All functions are pure and safe for concurrent use.
package cell
