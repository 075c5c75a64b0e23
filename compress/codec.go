package compress

import (
	"fmt"

	"github.com/arloliu/pentagrid/format"
)

// MaxDecompressedSize bounds the decompressed length any codec accepts.
const MaxDecompressedSize = 1 << 30

// Compressor compresses a complete cell-set payload.
//
// The returned slice is owned by the caller; the input is not modified.
// Implementations may return the input slice itself when they do not
// transform it.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor reverses a Compressor.
//
// size is the exact decompressed length recorded alongside the compressed
// bytes. Decompress fails if the data is corrupt, if it expands to any other
// length, or if size exceeds MaxDecompressedSize.
type Decompressor interface {
	Decompress(data []byte, size int) ([]byte, error)
}

// Codec combines both compression and decompression capabilities.
type Codec interface {
	Compressor
	Decompressor
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec retrieves a built-in Codec for the specified compression type.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("unsupported compression type: %s (%#x)", compressionType, uint8(compressionType))
}

// checkSize validates the announced decompressed size.
func checkSize(size int) error {
	if size < 0 || size > MaxDecompressedSize {
		return fmt.Errorf("decompressed size %d out of range [0, %d]", size, MaxDecompressedSize)
	}

	return nil
}

// checkLength reports a codec that produced a different length than announced.
func checkLength(name string, got, want int) error {
	if got != want {
		return fmt.Errorf("%s: decompressed %d bytes, want %d", name, got, want)
	}

	return nil
}
