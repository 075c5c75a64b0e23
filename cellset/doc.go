// Package cellset encodes lists of cell identifiers into a compact binary
// container and decodes them back.
//
// Cell lists produced by enumeration or compaction are sorted, so the
// difference between neighbouring identifiers is small and regular. The
// container stores those differences as zigzag varints, optionally passes the
// result through one of the codecs in package compress, and guards it with an
// xxHash64 checksum.
//
// # Layout
//
// All integers are little endian.
//
//	offset  size  field
//	0       4     magic "PGCS"
//	4       1     version (1)
//	5       1     compression type (format.CompressionType)
//	6       2     reserved, zero
//	8       4     identifier count
//	12      4     uncompressed payload length
//	16      8     xxHash64 of the uncompressed payload
//	24      ...   payload
//
// # Usage
//
//	enc, err := cellset.NewEncoder(cellset.WithCompression(format.CompressionZstd))
//	if err != nil {
//	    return err
//	}
//	if err := enc.AddAll(ids); err != nil {
//	    return err
//	}
//	data, err := enc.Finish()
//
//	ids, err = cellset.Decode(data)
//
// The package only produces and consumes bytes; where they are stored is up
// to the caller.
package cellset
