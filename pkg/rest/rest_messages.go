// SPDX-FileCopyrightText: 2025, 2026 The stegpng authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package rest

import "github.com/stegpng/stegpng/pkg/png"

// EncodeRequest describes a JSON to be POSTed to /encode. The Image field
// is base64 encoded, as encoding/json does for byte slices.
type EncodeRequest struct {
	Image     []byte `json:"image"`
	ChunkType string `json:"chunk_type"`
	Message   string `json:"message"`
}

// EncodeResponse describes a JSON response for /encode.
type EncodeResponse struct {
	Error string `json:"error"`
	Image []byte `json:"image"`
}

// DecodeRequest describes a JSON to be POSTed to /decode.
type DecodeRequest struct {
	Image     []byte `json:"image"`
	ChunkType string `json:"chunk_type"`
}

// DecodeResponse describes a JSON response for /decode.
type DecodeResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// RemoveRequest describes a JSON to be POSTed to /remove.
type RemoveRequest struct {
	Image     []byte `json:"image"`
	ChunkType string `json:"chunk_type"`
}

// RemoveResponse describes a JSON response for /remove.
type RemoveResponse struct {
	Error       string `json:"error"`
	Image       []byte `json:"image"`
	RemovedType string `json:"removed_type"`
}

// InspectRequest describes a JSON to be POSTed to /inspect.
type InspectRequest struct {
	Image []byte `json:"image"`
}

// InspectResponse describes a JSON response for /inspect.
type InspectResponse struct {
	Error string   `json:"error"`
	Png   *png.Png `json:"png"`
}
