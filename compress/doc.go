// Package compress provides the block codecs applied to cell-set payloads.
//
// A cell-set payload is a run of zigzag varint deltas between sorted or
// nearly sorted identifiers. The deltas are small and repetitive, so a
// general-purpose codec typically shrinks them further:
//   - None: payload stored as-is
//   - Zstd: best ratio, pure-Go github.com/klauspost/compress/zstd
//   - S2: fast Snappy-compatible codec from github.com/klauspost/compress/s2
//   - LZ4: fastest decompression, github.com/pierrec/lz4/v4 block format
//
// The decompressed length is always known from the cell-set header, so
// Decompress takes it as an argument. Every codec refuses to produce more or
// fewer bytes than announced, which bounds memory for hostile input.
//
// Codecs are stateless values and safe for concurrent use; the Zstd and LZ4
// codecs keep their heavy encoder state in sync.Pools.
//
//	codec, err := compress.GetCodec(format.CompressionZstd)
//	if err != nil {
//	    return err
//	}
//	packed, err := codec.Compress(payload)
//	...
//	payload, err = codec.Decompress(packed, rawLength)
package compress
