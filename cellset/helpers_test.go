package cellset

import (
	"slices"
	"testing"

	"github.com/arloliu/pentagrid/format"
	"github.com/arloliu/pentagrid/internal/hash"
	"github.com/arloliu/pentagrid/internal/pool"
)

func newTestBuffer() *pool.ByteBuffer {
	return pool.NewByteBuffer(64)
}

// craft wraps a raw payload in an uncompressed container with a correct
// checksum.
func craft(t *testing.T, raw []byte, count uint32) []byte {
	t.Helper()
	h := Header{
		Compression: format.CompressionNone,
		Count:       count,
		RawLength:   uint32(len(raw)),
		Checksum:    hash.Checksum(raw),
	}

	return append(h.Bytes(), raw...)
}

func reversed(ids []uint64) []uint64 {
	out := slices.Clone(ids)
	slices.Reverse(out)

	return out
}
