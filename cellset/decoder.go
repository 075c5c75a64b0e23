package cellset

import (
	"fmt"
	"iter"

	"github.com/arloliu/pentagrid/compress"
	"github.com/arloliu/pentagrid/errs"
	"github.com/arloliu/pentagrid/internal/hash"
	"github.com/arloliu/pentagrid/tiling"
)

// Decoder holds a fully validated cell set. It is read-only and safe for
// concurrent use.
type Decoder struct {
	header Header
	ids    []uint64
}

// NewDecoder parses and validates data. Structural problems fail with
// errs.ErrInvalidCellSet, a payload that does not match its checksum with
// errs.ErrChecksumMismatch and identifiers that are not cells with
// errs.ErrInvalidCellID.
func NewDecoder(data []byte) (*Decoder, error) {
	h, err := ParseHeader(data)
	if err != nil {
		return nil, err
	}

	codec, err := compress.GetCodec(h.Compression)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrInvalidCellSet, err)
	}

	raw, err := codec.Decompress(data[HeaderSize:], int(h.RawLength))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrInvalidCellSet, err)
	}

	if sum := hash.Checksum(raw); sum != h.Checksum {
		return nil, fmt.Errorf("%w: got %016x, header says %016x", errs.ErrChecksumMismatch, sum, h.Checksum)
	}

	ids, err := readDeltas(make([]uint64, 0, h.Count), raw, int(h.Count))
	if err != nil {
		return nil, err
	}
	for i, id := range ids {
		if id != tiling.WorldCell && !tiling.IsValid(id) {
			return nil, fmt.Errorf("%w: identifier %d is %016x", errs.ErrInvalidCellID, i, id)
		}
	}

	return &Decoder{header: h, ids: ids}, nil
}

// Header returns the parsed container header.
func (d *Decoder) Header() Header {
	return d.header
}

// Len returns the number of identifiers.
func (d *Decoder) Len() int {
	return len(d.ids)
}

// All yields the identifiers in stored order.
func (d *Decoder) All() iter.Seq[uint64] {
	return func(yield func(uint64) bool) {
		for _, id := range d.ids {
			if !yield(id) {
				return
			}
		}
	}
}

// Decode returns the identifiers stored in data.
func Decode(data []byte) ([]uint64, error) {
	d, err := NewDecoder(data)
	if err != nil {
		return nil, err
	}

	return d.ids, nil
}
