// Package endian provides the byte order used by binary cell-set headers.
//
// EndianEngine combines encoding/binary's ByteOrder and AppendByteOrder so a
// header can be both written in place and appended:
//
//	engine := endian.GetLittleEndianEngine()
//	buf = engine.AppendUint32(buf, count)
//	count = engine.Uint32(buf[8:12])
//
// All functions are safe for concurrent use; the engines are stateless.
package endian

import "encoding/binary"

// EndianEngine combines ByteOrder and AppendByteOrder from encoding/binary.
//
// It is satisfied by binary.LittleEndian.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine, the byte order of
// every encoded cell set.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}
