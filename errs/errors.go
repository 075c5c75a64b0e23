// Package errs defines the sentinel errors returned by pentagrid packages.
//
// Errors are always wrapped with context about the offending value, so callers
// should compare with errors.Is rather than equality:
//
//	id, err := hexid.HexToU64(text)
//	if errors.Is(err, errs.ErrInvalidHex) {
//	    // report the malformed input
//	}
package errs

import "errors"

var (
	// ErrInvalidHex is returned when a textual cell identifier is empty, contains
	// non-hexadecimal characters or overflows 64 bits.
	ErrInvalidHex = errors.New("invalid hex cell identifier")

	// ErrInvalidResolution is returned when a resolution is negative, exceeds the
	// maximum supported resolution or is coarser than the ancestor it refines.
	ErrInvalidResolution = errors.New("invalid resolution")

	// ErrInvalidCellID is returned when a 64-bit identifier fails structural
	// validation (bad marker position, face or quintant out of range).
	ErrInvalidCellID = errors.New("invalid cell id")

	// ErrInvalidPoint is returned for NaN or infinite coordinates and latitudes
	// outside [-90, 90].
	ErrInvalidPoint = errors.New("invalid point")

	// ErrProjectionDomain is returned when the inverse projection cannot place a
	// point on any face. It is unreachable for valid points and indicates a bug.
	ErrProjectionDomain = errors.New("projection domain error")

	// ErrTooManyCells is returned when an enumeration would exceed the configured
	// allocation limit.
	ErrTooManyCells = errors.New("too many cells")

	// ErrInvalidOption is returned for rejected configuration values.
	ErrInvalidOption = errors.New("invalid option")

	// ErrInvalidCellSet is returned when encoded cell-set bytes are truncated or
	// carry an unknown header.
	ErrInvalidCellSet = errors.New("invalid cell set")

	// ErrChecksumMismatch is returned when a cell-set payload does not match its
	// stored checksum.
	ErrChecksumMismatch = errors.New("cell set checksum mismatch")
)
