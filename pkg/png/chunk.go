// SPDX-FileCopyrightText: 2025, 2026 The stegpng authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package png

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"hash/crc32"
	"strings"
)

// chunkOverhead is the serialized size of the length, type and CRC fields.
const chunkOverhead = 12

// Chunk is one record of a PNG stream: a four byte big endian payload
// length, a ChunkType, the payload itself and a CRC-32 checksum over the
// type bytes and the payload.
//
// Length and checksum are derived from the other fields and cannot be set
// independently. A Chunk returned by NewChunk or ParseChunk always carries
// a checksum matching its content.
type Chunk struct {
	chunkType ChunkType
	data      []byte
	crc       uint32
}

// checksum calculates the CRC-32/ISO-HDLC value over the chunk type's bytes
// followed by the payload. This is the variant zlib and gzip use; Go's IEEE
// table implements the same polynomial.
func checksum(chunkType ChunkType, data []byte) uint32 {
	crc := crc32.Update(0, crc32.IEEETable, chunkType[:])
	return crc32.Update(crc, crc32.IEEETable, data)
}

// NewChunk creates a Chunk from a ChunkType and a payload. The checksum is
// calculated; this cannot fail. The payload must be shorter than 2^32
// bytes, which holds for any buffer that fits a real PNG stream.
func NewChunk(chunkType ChunkType, data []byte) Chunk {
	return Chunk{
		chunkType: chunkType,
		data:      data,
		crc:       checksum(chunkType, data),
	}
}

// ParseChunk reads one Chunk from the beginning of b and returns it
// together with the amount of consumed bytes. Each field read is bounds
// checked first; a buffer ending before the announced payload length
// results in an ErrTruncatedInput instead of an out of range access. A
// stored checksum differing from the recomputed one results in an
// ErrInvalidCrc.
func ParseChunk(b []byte) (c Chunk, n int, err error) {
	if len(b) < 8 {
		err = fmt.Errorf("%w: chunk header needs 8 bytes, %d available",
			ErrTruncatedInput, len(b))
		return
	}

	length := binary.BigEndian.Uint32(b[0:4])
	if need := uint64(length) + chunkOverhead; uint64(len(b)) < need {
		err = fmt.Errorf("%w: chunk announces %d bytes, %d available",
			ErrTruncatedInput, need, len(b))
		return
	}

	var typeBytes [4]byte
	copy(typeBytes[:], b[4:8])
	chunkType, typeErr := ParseChunkType(typeBytes)
	if typeErr != nil {
		err = typeErr
		return
	}

	payloadEnd := 8 + int(length)
	data := make([]byte, length)
	copy(data, b[8:payloadEnd])

	storedCrc := binary.BigEndian.Uint32(b[payloadEnd : payloadEnd+4])
	if calcCrc := checksum(chunkType, data); calcCrc != storedCrc {
		err = fmt.Errorf("%w: stored %#08x, calculated %#08x",
			ErrInvalidCrc, storedCrc, calcCrc)
		return
	}

	c = Chunk{chunkType: chunkType, data: data, crc: storedCrc}
	n = payloadEnd + 4
	return
}

// Length returns the payload's size in bytes.
func (c Chunk) Length() uint32 {
	return uint32(len(c.data))
}

// Type returns this Chunk's ChunkType.
func (c Chunk) Type() ChunkType {
	return c.chunkType
}

// Data returns the payload. The returned slice is the Chunk's backing
// buffer and must not be modified.
func (c Chunk) Data() []byte {
	return c.data
}

// CRC returns the checksum over the type bytes and the payload.
func (c Chunk) CRC() uint32 {
	return c.crc
}

// DataAsString maps each payload byte to the character with the same code
// point. This is not a UTF-8 decode: it never fails, byte 0xA9 becomes
// U+00A9 and so on, so arbitrary binary payloads survive the text form.
// Existing encoded messages rely on exactly this mapping.
func (c Chunk) DataAsString() (string, error) {
	var bldr strings.Builder
	for _, b := range c.data {
		bldr.WriteRune(rune(b))
	}

	return bldr.String(), nil
}

// Bytes returns this Chunk's serialized form: big endian length, type
// bytes, payload, big endian CRC. ParseChunk inverts Bytes.
func (c Chunk) Bytes() []byte {
	buf := make([]byte, chunkOverhead+len(c.data))

	binary.BigEndian.PutUint32(buf[0:4], c.Length())
	copy(buf[4:8], c.chunkType[:])
	copy(buf[8:], c.data)
	binary.BigEndian.PutUint32(buf[8+len(c.data):], c.crc)

	return buf
}

func (c Chunk) String() string {
	return fmt.Sprintf("chunk(%s, length=%d, crc=%#08x)",
		c.chunkType, c.Length(), c.crc)
}

// CheckValid returns an error for a Chunk whose type the current PNG
// specification rejects.
func (c Chunk) CheckValid() error {
	return c.chunkType.CheckValid()
}

// MarshalJSON writes a JSON object with the type, its flags, the length,
// the base64 encoded payload and the checksum.
func (c Chunk) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type       string `json:"type"`
		Critical   bool   `json:"critical"`
		Public     bool   `json:"public"`
		SafeToCopy bool   `json:"safe_to_copy"`
		Length     uint32 `json:"length"`
		Data       []byte `json:"data"`
		CRC        uint32 `json:"crc"`
	}{
		Type:       c.chunkType.String(),
		Critical:   c.chunkType.IsCritical(),
		Public:     c.chunkType.IsPublic(),
		SafeToCopy: c.chunkType.IsSafeToCopy(),
		Length:     c.Length(),
		Data:       c.data,
		CRC:        c.crc,
	})
}
