package cellset

import (
	"encoding/binary"
	"fmt"

	"github.com/arloliu/pentagrid/errs"
	"github.com/arloliu/pentagrid/internal/pool"
)

// deltaWriter appends identifiers to buf as zigzag varint differences from
// the previous identifier. The first identifier is a difference from zero.
type deltaWriter struct {
	prev uint64
	buf  *pool.ByteBuffer
}

func (w *deltaWriter) write(id uint64) {
	// Differences wrap modulo 2^64; read as signed they are small for both
	// ascending and descending neighbours.
	delta := int64(id - w.prev) //nolint:gosec
	w.prev = id

	zigzag := uint64((delta << 1) ^ (delta >> 63)) //nolint:gosec
	w.appendUnsigned(zigzag)
}

func (w *deltaWriter) appendUnsigned(value uint64) {
	if value <= 0x7F {
		idx := w.buf.Len()
		w.buf.ExtendOrGrow(1)
		w.buf.B[idx] = byte(value)

		return
	}

	w.buf.Grow(binary.MaxVarintLen64)
	w.buf.B = binary.AppendUvarint(w.buf.B, value)
}

// readDeltas decodes exactly count identifiers from payload into dst.
func readDeltas(dst []uint64, payload []byte, count int) ([]uint64, error) {
	var prev uint64
	offset := 0
	for i := range count {
		zigzag, n := binary.Uvarint(payload[offset:])
		if n <= 0 {
			return nil, fmt.Errorf("%w: malformed varint for identifier %d at offset %d", errs.ErrInvalidCellSet, i, offset)
		}
		offset += n

		delta := int64(zigzag>>1) ^ -int64(zigzag&1) //nolint:gosec
		prev += uint64(delta)                        //nolint:gosec
		dst = append(dst, prev)
	}
	if offset != len(payload) {
		return nil, fmt.Errorf("%w: %d trailing payload bytes", errs.ErrInvalidCellSet, len(payload)-offset)
	}

	return dst, nil
}
