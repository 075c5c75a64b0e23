// Package hexid converts 64-bit cell identifiers to and from their textual form.
//
// The textual form is lowercase hexadecimal, zero padded to 16 characters, so
// the lexical order of the strings matches the numeric order of the
// identifiers (and therefore the enumeration order of cells):
//
//	hexid.U64ToHex(0x1800000000000000) // "1800000000000000"
//	hexid.HexToU64("1800000000000000") // 0x1800000000000000, nil
//
// Parsing is structural only: HexToU64 accepts any 64-bit value. Use
// tiling.IsValid to check that the value names a real cell.
package hexid

import (
	"fmt"

	"github.com/arloliu/pentagrid/errs"
)

// Width is the number of characters produced by U64ToHex.
const Width = 16

const digits = "0123456789abcdef"

// U64ToHex renders id as 16 lowercase hexadecimal characters.
func U64ToHex(id uint64) string {
	var buf [Width]byte
	for i := Width - 1; i >= 0; i-- {
		buf[i] = digits[id&0xf]
		id >>= 4
	}

	return string(buf[:])
}

// AppendHex appends the 16-character form of id to dst.
func AppendHex(dst []byte, id uint64) []byte {
	for shift := 60; shift >= 0; shift -= 4 {
		dst = append(dst, digits[(id>>uint(shift))&0xf])
	}

	return dst
}

// HexToU64 parses a hexadecimal cell identifier.
//
// Upper and lower case digits are accepted, as are leading zeros beyond the
// 16 character width. Empty input, any non-hex character (including a "0x"
// prefix or a sign) and values that do not fit in 64 bits fail with
// errs.ErrInvalidHex.
func HexToU64(text string) (uint64, error) {
	if len(text) == 0 {
		return 0, fmt.Errorf("%w: empty string", errs.ErrInvalidHex)
	}

	var id uint64
	significant := 0
	for i := 0; i < len(text); i++ {
		nibble, ok := fromHexChar(text[i])
		if !ok {
			return 0, fmt.Errorf("%w: %q has non-hex character %q at offset %d", errs.ErrInvalidHex, text, text[i], i)
		}

		if significant == 0 && nibble == 0 {
			continue
		}

		significant++
		if significant > Width {
			return 0, fmt.Errorf("%w: %q overflows 64 bits", errs.ErrInvalidHex, text)
		}
		id = id<<4 | uint64(nibble)
	}

	return id, nil
}

func fromHexChar(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}

	return 0, false
}
