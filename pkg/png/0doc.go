// SPDX-FileCopyrightText: 2025, 2026 The stegpng authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package png provides a codec for the PNG container format on the chunk
// level: the eight byte file signature followed by a sequence of length
// prefixed, CRC-32 checksummed chunks. It deals with chunks as opaque
// records and does not decode image data.
//
// A Png is created either programmatically or by parsing a complete byte
// buffer.
//
//	p, err := png.ParsePng(raw)
//	if err != nil {
//	  // raw is no well-formed PNG stream
//	}
//
//	p.AppendChunk(png.NewChunk(chunkType, payload))
//	out := p.Bytes()
//
// Serializing a parsed Png reproduces the input byte for byte, as long as
// the chunk list was not modified in between.
package png
