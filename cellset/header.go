package cellset

import (
	"fmt"

	"github.com/arloliu/pentagrid/compress"
	"github.com/arloliu/pentagrid/endian"
	"github.com/arloliu/pentagrid/errs"
	"github.com/arloliu/pentagrid/format"
)

const (
	// HeaderSize is the fixed size of the container header in bytes.
	HeaderSize = 24
	// Magic opens every encoded cell set.
	Magic = "PGCS"
	// Version is the only container version this package reads and writes.
	Version = 1
)

// Header is the fixed-size prefix of an encoded cell set.
type Header struct {
	Compression format.CompressionType // byte offset 5
	Count       uint32                 // byte offset 8-11
	RawLength   uint32                 // byte offset 12-15
	Checksum    uint64                 // byte offset 16-23
}

// Bytes serializes the header.
func (h Header) Bytes() []byte {
	return h.appendTo(make([]byte, 0, HeaderSize))
}

func (h Header) appendTo(dst []byte) []byte {
	engine := endian.GetLittleEndianEngine()

	dst = append(dst, Magic...)
	dst = append(dst, Version, byte(h.Compression), 0, 0)
	dst = engine.AppendUint32(dst, h.Count)
	dst = engine.AppendUint32(dst, h.RawLength)
	dst = engine.AppendUint64(dst, h.Checksum)

	return dst
}

// ParseHeader reads and validates the header at the start of data.
func ParseHeader(data []byte) (Header, error) {
	if len(data) < HeaderSize {
		return Header{}, fmt.Errorf("%w: %d bytes, header needs %d", errs.ErrInvalidCellSet, len(data), HeaderSize)
	}
	if string(data[0:4]) != Magic {
		return Header{}, fmt.Errorf("%w: bad magic %q", errs.ErrInvalidCellSet, data[0:4])
	}
	if data[4] != Version {
		return Header{}, fmt.Errorf("%w: unsupported version %d", errs.ErrInvalidCellSet, data[4])
	}
	if data[6] != 0 || data[7] != 0 {
		return Header{}, fmt.Errorf("%w: reserved bytes are not zero", errs.ErrInvalidCellSet)
	}

	engine := endian.GetLittleEndianEngine()
	h := Header{
		Compression: format.CompressionType(data[5]),
		Count:       engine.Uint32(data[8:12]),
		RawLength:   engine.Uint32(data[12:16]),
		Checksum:    engine.Uint64(data[16:24]),
	}

	if !h.Compression.Valid() {
		return Header{}, fmt.Errorf("%w: unknown compression %#x", errs.ErrInvalidCellSet, data[5])
	}
	if h.RawLength > compress.MaxDecompressedSize {
		return Header{}, fmt.Errorf("%w: payload length %d too large", errs.ErrInvalidCellSet, h.RawLength)
	}
	// Every identifier takes at least one payload byte.
	if h.Count > h.RawLength {
		return Header{}, fmt.Errorf("%w: %d identifiers cannot fit in %d bytes", errs.ErrInvalidCellSet, h.Count, h.RawLength)
	}

	return h, nil
}
