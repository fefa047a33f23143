// SPDX-FileCopyrightText: 2025, 2026 The stegpng authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package steg

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stegpng/stegpng/pkg/png"
)

// testImg serializes a minimal PNG stream with a single chunk.
func testImg(t *testing.T) []byte {
	t.Helper()

	ct, err := png.ParseChunkTypeString("oRig")
	if err != nil {
		t.Fatal(err)
	}

	return png.NewPng(png.NewChunk(ct, []byte("some image data"))).Bytes()
}

func TestEncodeDecode(t *testing.T) {
	img, err := Encode(testImg(t), "RuSt", "This is a secret message!")
	if err != nil {
		t.Fatalf("Encode errored: %v", err)
	}

	msg, err := Decode(img, "RuSt")
	if err != nil {
		t.Fatalf("Decode errored: %v", err)
	}
	if msg != "This is a secret message!" {
		t.Fatalf("expected the secret message, got %q", msg)
	}

	// The original chunk survived and the new one sits at the end.
	p, err := png.ParsePng(img)
	if err != nil {
		t.Fatalf("ParsePng errored: %v", err)
	}
	chunks := p.Chunks()
	if len(chunks) != 2 || chunks[1].Type().String() != "RuSt" {
		t.Fatalf("unexpected chunk list: %v", chunks)
	}
}

func TestEncodeInvalidInput(t *testing.T) {
	if _, err := Encode(testImg(t), "Ru1t", "msg"); !errors.Is(err, png.ErrInvalidChunkType) {
		t.Errorf("expected ErrInvalidChunkType, got %v", err)
	}

	if _, err := Encode([]byte("no png at all"), "RuSt", "msg"); !errors.Is(err, png.ErrInvalidSignature) {
		t.Errorf("expected ErrInvalidSignature, got %v", err)
	}
}

func TestDecodeMissingChunk(t *testing.T) {
	if _, err := Decode(testImg(t), "RuSt"); !errors.Is(err, png.ErrChunkNotFound) {
		t.Fatalf("expected ErrChunkNotFound, got %v", err)
	}
}

func TestRemove(t *testing.T) {
	orig := testImg(t)

	img, err := Encode(orig, "RuSt", "to be removed")
	if err != nil {
		t.Fatalf("Encode errored: %v", err)
	}

	stripped, c, err := Remove(img, "RuSt")
	if err != nil {
		t.Fatalf("Remove errored: %v", err)
	}
	if !bytes.Equal(c.Data(), []byte("to be removed")) {
		t.Fatalf("removed the wrong chunk: %v", c)
	}
	if !bytes.Equal(stripped, orig) {
		t.Fatal("removal did not restore the original stream")
	}

	if _, _, err := Remove(orig, "RuSt"); !errors.Is(err, png.ErrChunkNotFound) {
		t.Fatalf("expected ErrChunkNotFound, got %v", err)
	}
}

func TestInspect(t *testing.T) {
	p, err := Inspect(testImg(t))
	if err != nil {
		t.Fatalf("Inspect errored: %v", err)
	}
	if len(p.Chunks()) != 1 {
		t.Fatalf("expected 1 chunk, got %d", len(p.Chunks()))
	}
}
