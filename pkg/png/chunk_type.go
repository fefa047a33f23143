// SPDX-FileCopyrightText: 2025, 2026 The stegpng authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package png

import "fmt"

// ChunkType is the four byte type code of a Chunk. Each byte must be ASCII
// alphabetic; bit 5 of each byte, which is the case bit of ASCII letters,
// carries one property flag as defined in section 3.3 of the PNG
// specification.
//
// ChunkType is a comparable value type. Equality and ordering follow the
// raw bytes.
type ChunkType [4]byte

// ParseChunkType creates a ChunkType from its four raw bytes and fails with
// ErrInvalidChunkType if any byte is not an ASCII letter. A ChunkType with
// its reserved bit set parses fine; IsValid reports such types afterwards.
func ParseChunkType(b [4]byte) (ChunkType, error) {
	for _, c := range b {
		if !isAsciiAlpha(c) {
			return ChunkType{}, fmt.Errorf(
				"%w: byte %#02x is not ASCII alphabetic", ErrInvalidChunkType, c)
		}
	}

	return ChunkType(b), nil
}

// ParseChunkTypeString creates a ChunkType from a string of exactly four
// ASCII letters, e.g., "tEXt".
func ParseChunkTypeString(s string) (ChunkType, error) {
	if len(s) != 4 {
		return ChunkType{}, fmt.Errorf(
			"%w: expected 4 bytes, got %d", ErrInvalidChunkType, len(s))
	}

	var b [4]byte
	copy(b[:], s)

	return ParseChunkType(b)
}

// isAsciiAlpha checks for 'A'-'Z' or 'a'-'z'.
func isAsciiAlpha(c byte) bool {
	return ('A' <= c && c <= 'Z') || ('a' <= c && c <= 'z')
}

// Bytes returns the four raw bytes.
func (ct ChunkType) Bytes() [4]byte {
	return [4]byte(ct)
}

func (ct ChunkType) String() string {
	return string(ct[:])
}

// IsCritical reports if this chunk is necessary for a meaningful display of
// the stream, indicated by an upper case first byte.
func (ct ChunkType) IsCritical() bool {
	return ct[0]&0x20 == 0
}

// IsPublic reports if this chunk type is publicly registered, indicated by
// an upper case second byte.
func (ct ChunkType) IsPublic() bool {
	return ct[1]&0x20 == 0
}

// IsReservedBitValid reports if the reserved third byte is upper case, as
// the current PNG specification requires.
func (ct ChunkType) IsReservedBitValid() bool {
	return ct[2]&0x20 == 0
}

// IsSafeToCopy reports if editors unaware of this chunk type may copy the
// chunk along, indicated by a lower case fourth byte.
func (ct ChunkType) IsSafeToCopy() bool {
	return ct[3]&0x20 != 0
}

// IsValid reports if all four bytes are ASCII alphabetic and the reserved
// bit is valid. A ChunkType created through one of the Parse functions is
// always alphabetic, so for those only the reserved bit can fail.
func (ct ChunkType) IsValid() bool {
	for _, c := range ct {
		if !isAsciiAlpha(c) {
			return false
		}
	}

	return ct.IsReservedBitValid()
}

// CheckValid returns an error for a ChunkType the current PNG specification
// rejects.
func (ct ChunkType) CheckValid() error {
	if !ct.IsValid() {
		return fmt.Errorf("chunk type %s: reserved bit is set", ct)
	}

	return nil
}
