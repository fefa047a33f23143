// SPDX-FileCopyrightText: 2025, 2026 The stegpng authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package png

import "errors"

// The closed set of error kinds this package returns. Every failing
// operation wraps one of these sentinels, so callers can dispatch on the
// kind with errors.Is instead of inspecting messages.
var (
	// ErrInvalidChunkType marks a chunk type whose bytes are not ASCII
	// alphabetic or whose string form is not exactly four bytes long.
	ErrInvalidChunkType = errors.New("invalid chunk type")

	// ErrInvalidCrc marks a parsed chunk whose stored checksum does not
	// equal the one recomputed over its type and payload.
	ErrInvalidCrc = errors.New("invalid chunk CRC")

	// ErrTruncatedInput marks a buffer that ends before the announced
	// field or payload length.
	ErrTruncatedInput = errors.New("truncated input")

	// ErrInvalidSignature marks a buffer that does not start with the
	// PNG file signature.
	ErrInvalidSignature = errors.New("invalid PNG signature")

	// ErrChunkNotFound marks a lookup or removal by chunk type without
	// any matching chunk.
	ErrChunkNotFound = errors.New("chunk not found")
)
