// SPDX-FileCopyrightText: 2025, 2026 The stegpng authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package steg implements the message hiding operations on top of the png
// package: encoding a message into a chunk, decoding it back, removing it
// and inspecting a stream. All operations work on complete byte buffers;
// reading and writing files is up to the caller.
package steg

import (
	"github.com/stegpng/stegpng/pkg/png"
)

// Encode hides message in img under the given chunk type and returns the
// new serialized stream. The chunk is appended after all existing chunks.
func Encode(img []byte, chunkType, message string) ([]byte, error) {
	ct, err := png.ParseChunkTypeString(chunkType)
	if err != nil {
		return nil, err
	}

	p, err := png.ParsePng(img)
	if err != nil {
		return nil, err
	}

	p.AppendChunk(png.NewChunk(ct, []byte(message)))

	return p.Bytes(), nil
}

// Decode extracts the message hidden in img's first chunk of the given
// type. Fails with png.ErrChunkNotFound if no such chunk exists.
func Decode(img []byte, chunkType string) (string, error) {
	p, err := png.ParsePng(img)
	if err != nil {
		return "", err
	}

	c := p.ChunkByType(chunkType)
	if c == nil {
		return "", png.ErrChunkNotFound
	}

	return c.DataAsString()
}

// Remove strips img's first chunk of the given type and returns the new
// serialized stream together with the removed chunk.
func Remove(img []byte, chunkType string) ([]byte, png.Chunk, error) {
	p, err := png.ParsePng(img)
	if err != nil {
		return nil, png.Chunk{}, err
	}

	c, err := p.RemoveChunk(chunkType)
	if err != nil {
		return nil, png.Chunk{}, err
	}

	return p.Bytes(), c, nil
}

// Inspect parses img for display purposes.
func Inspect(img []byte) (*png.Png, error) {
	return png.ParsePng(img)
}
