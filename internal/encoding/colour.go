package encoding

import (
	"encoding/binary"
)

// Colours are packed into a uint32 with the low byte first
//
//	bits  0-7  -> R
//	bits  8-15 -> G
//	bits 16-23 -> B
//	bits 24-31 -> unused by the fill, markers set it to 0xFF
//
// which is exactly little endian byte order.

// ToBytes32 turns a uint32 into []byte len 4, low byte first.
func ToBytes32(in uint32) []byte {
	buf := make([]byte, 4)
	binary.LittleEndian.PutUint32(buf, in)
	return buf
}

// Split32 uint32 into R, G, B and the top byte
func Split32(in uint32) (uint8, uint8, uint8, uint8) {
	b := ToBytes32(in)
	return b[0], b[1], b[2], b[3]
}
