// SPDX-FileCopyrightText: 2025, 2026 The stegpng authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package png

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

// testPng builds a Png of three secret message chunks.
func testPng(t *testing.T) *Png {
	t.Helper()

	return NewPng(
		NewChunk(mustChunkType(t, "FrSt"), []byte("I am the first chunk")),
		NewChunk(mustChunkType(t, "miDl"), []byte("I am another chunk")),
		NewChunk(mustChunkType(t, "LASt"), []byte("I am the last chunk")),
	)
}

func TestParsePngRoundTrip(t *testing.T) {
	raw := testPng(t).Bytes()

	p, err := ParsePng(raw)
	if err != nil {
		t.Fatalf("ParsePng errored: %v", err)
	}

	if len(p.Chunks()) != 3 {
		t.Fatalf("expected 3 chunks, got %d", len(p.Chunks()))
	}
	if !bytes.Equal(p.Bytes(), raw) {
		t.Fatal("serialization differs from the parsed buffer")
	}
}

func TestParsePngEmptyChunkList(t *testing.T) {
	p, err := ParsePng(Signature[:])
	if err != nil {
		t.Fatalf("ParsePng errored: %v", err)
	}

	if len(p.Chunks()) != 0 {
		t.Fatalf("expected no chunks, got %d", len(p.Chunks()))
	}
	if !bytes.Equal(p.Bytes(), Signature[:]) {
		t.Fatal("serialization differs from the bare signature")
	}
}

func TestParsePngInvalidSignature(t *testing.T) {
	tests := [][]byte{
		{},
		{0x89, 0x50},
		{0x13, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A},
		{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0B},
	}

	for _, test := range tests {
		if _, err := ParsePng(test); !errors.Is(err, ErrInvalidSignature) {
			t.Errorf("ParsePng(%x): expected ErrInvalidSignature, got %v", test, err)
		}
	}
}

func TestParsePngPropagatesChunkErrors(t *testing.T) {
	good := NewChunk(mustChunkType(t, "FrSt"), []byte("fine"))
	badCrc := good.Bytes()
	badCrc[len(badCrc)-1] ^= 0xFF

	truncated := good.Bytes()
	truncated = truncated[:len(truncated)-2]

	tests := []struct {
		name string
		tail []byte
		kind error
	}{
		{"bad crc", badCrc, ErrInvalidCrc},
		{"truncated chunk", truncated, ErrTruncatedInput},
		{"bad type", chunkBytes(2, "F0St", []byte("ab"), 0), ErrInvalidChunkType},
	}

	for _, test := range tests {
		raw := append(append([]byte{}, Signature[:]...), test.tail...)
		if _, err := ParsePng(raw); !errors.Is(err, test.kind) {
			t.Errorf("%s: expected %v, got %v", test.name, test.kind, err)
		}
	}
}

func TestPngAppendChunk(t *testing.T) {
	p := testPng(t)
	p.AppendChunk(NewChunk(mustChunkType(t, "TeSt"), []byte("Message")))

	chunks := p.Chunks()
	if len(chunks) != 4 {
		t.Fatalf("expected 4 chunks, got %d", len(chunks))
	}
	if chunks[3].Type().String() != "TeSt" {
		t.Fatalf("appended chunk is not last: %v", chunks[3])
	}
}

func TestPngChunkByType(t *testing.T) {
	p := testPng(t)

	if c := p.ChunkByType("FrSt"); c == nil || c.Type().String() != "FrSt" {
		t.Fatalf("expected the FrSt chunk, got %v", c)
	}
	if c := p.ChunkByType("NoPe"); c != nil {
		t.Fatalf("expected nil for an absent type, got %v", c)
	}

	// With duplicates, the first one in list order wins.
	p.AppendChunk(NewChunk(mustChunkType(t, "FrSt"), []byte("a later sibling")))
	c := p.ChunkByType("FrSt")
	if c == nil || !bytes.Equal(c.Data(), []byte("I am the first chunk")) {
		t.Fatalf("expected the first FrSt chunk, got %v", c)
	}
}

func TestPngRemoveChunk(t *testing.T) {
	p := testPng(t)

	if _, err := p.RemoveChunk("NoPe"); !errors.Is(err, ErrChunkNotFound) {
		t.Fatalf("expected ErrChunkNotFound, got %v", err)
	}

	c, err := p.RemoveChunk("miDl")
	if err != nil {
		t.Fatalf("RemoveChunk errored: %v", err)
	}
	if c.Type().String() != "miDl" {
		t.Fatalf("removed the wrong chunk: %v", c)
	}
	if p.ChunkByType("miDl") != nil {
		t.Fatal("miDl chunk still present after removal")
	}
	if len(p.Chunks()) != 2 {
		t.Fatalf("expected 2 chunks, got %d", len(p.Chunks()))
	}
}

func TestPngRemoveChunkDuplicates(t *testing.T) {
	p := NewPng(
		NewChunk(mustChunkType(t, "DuPe"), []byte("first")),
		NewChunk(mustChunkType(t, "oThr"), []byte("between")),
		NewChunk(mustChunkType(t, "DuPe"), []byte("second")),
	)

	c, err := p.RemoveChunk("DuPe")
	if err != nil {
		t.Fatalf("RemoveChunk errored: %v", err)
	}
	if !bytes.Equal(c.Data(), []byte("first")) {
		t.Fatalf("expected the first duplicate, got %q", c.Data())
	}

	rest := p.Chunks()
	if len(rest) != 2 || !bytes.Equal(rest[1].Data(), []byte("second")) {
		t.Fatalf("second duplicate was touched: %v", rest)
	}
}

func TestPngCheckValid(t *testing.T) {
	p := testPng(t)
	if err := p.CheckValid(); err != nil {
		t.Fatalf("valid Png reported %v", err)
	}

	// "Rust" carries a lower case reserved byte.
	p.AppendChunk(NewChunk(mustChunkType(t, "Rust"), nil))
	p.AppendChunk(NewChunk(mustChunkType(t, "Crab"), nil))
	if err := p.CheckValid(); err == nil {
		t.Fatal("Png with reserved bit violations passed CheckValid")
	}
}

func TestPngString(t *testing.T) {
	str := testPng(t).String()

	lines := strings.Split(strings.TrimRight(str, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected a header and 3 chunk lines, got %d: %q", len(lines), str)
	}
	for _, chunkType := range []string{"FrSt", "miDl", "LASt"} {
		if !strings.Contains(str, chunkType) {
			t.Errorf("display form misses the %s chunk: %q", chunkType, str)
		}
	}
}
