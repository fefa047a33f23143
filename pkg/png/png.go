// SPDX-FileCopyrightText: 2025, 2026 The stegpng authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package png

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"
)

// Signature is the fixed eight byte sequence starting every PNG stream.
var Signature = [8]byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}

// Png is an ordered list of Chunks behind the file signature. The order is
// meaningful and preserved; Png itself does not enforce any positional
// convention, e.g., an IEND chunk staying last. Callers mutating the list
// are responsible for the placement of their chunks.
type Png struct {
	chunks []Chunk
}

// NewPng creates a Png holding the given Chunks in order.
func NewPng(chunks ...Chunk) *Png {
	return &Png{chunks: chunks}
}

// ParsePng parses a complete byte buffer: the signature first, then Chunks
// back to back until the buffer is exhausted. There is no chunk count
// field; the buffer's end is the list's end. The first chunk error aborts
// the whole parse.
func ParsePng(b []byte) (*Png, error) {
	if len(b) < len(Signature) || !bytes.Equal(b[:len(Signature)], Signature[:]) {
		return nil, fmt.Errorf("%w: missing %x prefix", ErrInvalidSignature, Signature)
	}

	p := &Png{}
	for rest := b[len(Signature):]; len(rest) > 0; {
		c, n, err := ParseChunk(rest)
		if err != nil {
			return nil, fmt.Errorf("chunk %d: %w", len(p.chunks), err)
		}

		p.chunks = append(p.chunks, c)
		rest = rest[n:]
	}

	return p, nil
}

// AppendChunk adds a Chunk to the end of the list, after every chunk
// already present.
func (p *Png) AppendChunk(c Chunk) {
	p.chunks = append(p.chunks, c)
}

// RemoveChunk removes and returns the first Chunk whose type's string form
// equals chunkType. Later chunks of the same type stay untouched. Fails
// with ErrChunkNotFound if no chunk matches.
func (p *Png) RemoveChunk(chunkType string) (Chunk, error) {
	for i, c := range p.chunks {
		if c.Type().String() == chunkType {
			p.chunks = append(p.chunks[:i], p.chunks[i+1:]...)
			return c, nil
		}
	}

	return Chunk{}, fmt.Errorf("%w: no %q chunk", ErrChunkNotFound, chunkType)
}

// ChunkByType returns the first Chunk whose type's string form equals
// chunkType, or nil if no chunk matches.
func (p *Png) ChunkByType(chunkType string) *Chunk {
	for i := range p.chunks {
		if p.chunks[i].Type().String() == chunkType {
			return &p.chunks[i]
		}
	}

	return nil
}

// Chunks returns the chunk list in order. The returned slice is backed by
// the Png and must not be modified.
func (p *Png) Chunks() []Chunk {
	return p.chunks
}

// Bytes returns the serialized stream: the signature followed by each
// Chunk's Bytes in list order. For an unmodified parsed Png this
// reproduces the parsed buffer byte for byte.
func (p *Png) Bytes() []byte {
	buf := make([]byte, 0, len(Signature))
	buf = append(buf, Signature[:]...)
	for _, c := range p.chunks {
		buf = append(buf, c.Bytes()...)
	}

	return buf
}

func (p *Png) String() string {
	var bldr strings.Builder

	_, _ = fmt.Fprintf(&bldr, "PNG, %d chunks\n", len(p.chunks))
	for _, c := range p.chunks {
		_, _ = fmt.Fprintf(&bldr, "  %v\n", c)
	}

	return bldr.String()
}

// CheckValid aggregates the CheckValid errors of all chunks.
func (p *Png) CheckValid() (errs error) {
	for _, c := range p.chunks {
		if err := c.CheckValid(); err != nil {
			errs = multierror.Append(errs, err)
		}
	}

	return
}

// MarshalJSON writes the chunk list as a JSON array.
func (p *Png) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Chunks []Chunk `json:"chunks"`
	}{
		Chunks: p.chunks,
	})
}
