// SPDX-FileCopyrightText: 2025, 2026 The stegpng authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package rest exposes the steg operations over HTTP. Images travel base64
// encoded inside JSON bodies; every response carries an error field which
// is empty on success.
package rest

import (
	"encoding/json"
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/gorilla/mux"

	"github.com/stegpng/stegpng/pkg/steg"
)

// Handler answers the steg HTTP endpoints: /encode, /decode, /remove and
// /inspect, each accepting a POST with a JSON body.
type Handler struct {
	router *mux.Router
}

// NewHandler creates a Handler with its routes bound to the given router.
func NewHandler(router *mux.Router) (h *Handler) {
	h = &Handler{
		router: router,
	}

	h.router.HandleFunc("/encode", h.handleEncode).Methods(http.MethodPost)
	h.router.HandleFunc("/decode", h.handleDecode).Methods(http.MethodPost)
	h.router.HandleFunc("/remove", h.handleRemove).Methods(http.MethodPost)
	h.router.HandleFunc("/inspect", h.handleInspect).Methods(http.MethodPost)

	return h
}

// ServeHTTP is a http.Handler to be bound to a HTTP endpoint.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

// writeResponse sends resp JSON encoded, logging the processed endpoint.
func (h *Handler) writeResponse(w http.ResponseWriter, endpoint string, resp interface{}) {
	log.WithField("endpoint", endpoint).Info("Processed steg request")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.WithError(err).WithField("endpoint", endpoint).Warn(
			"Failed to write response")
	}
}

// handleEncode processes /encode POST requests.
func (h *Handler) handleEncode(w http.ResponseWriter, r *http.Request) {
	var (
		encodeRequest  EncodeRequest
		encodeResponse EncodeResponse
	)

	if jsonErr := json.NewDecoder(r.Body).Decode(&encodeRequest); jsonErr != nil {
		encodeResponse.Error = jsonErr.Error()
	} else if img, err := steg.Encode(
		encodeRequest.Image, encodeRequest.ChunkType, encodeRequest.Message); err != nil {
		encodeResponse.Error = err.Error()
	} else {
		encodeResponse.Image = img
	}

	h.writeResponse(w, "/encode", encodeResponse)
}

// handleDecode processes /decode POST requests.
func (h *Handler) handleDecode(w http.ResponseWriter, r *http.Request) {
	var (
		decodeRequest  DecodeRequest
		decodeResponse DecodeResponse
	)

	if jsonErr := json.NewDecoder(r.Body).Decode(&decodeRequest); jsonErr != nil {
		decodeResponse.Error = jsonErr.Error()
	} else if msg, err := steg.Decode(decodeRequest.Image, decodeRequest.ChunkType); err != nil {
		decodeResponse.Error = err.Error()
	} else {
		decodeResponse.Message = msg
	}

	h.writeResponse(w, "/decode", decodeResponse)
}

// handleRemove processes /remove POST requests.
func (h *Handler) handleRemove(w http.ResponseWriter, r *http.Request) {
	var (
		removeRequest  RemoveRequest
		removeResponse RemoveResponse
	)

	if jsonErr := json.NewDecoder(r.Body).Decode(&removeRequest); jsonErr != nil {
		removeResponse.Error = jsonErr.Error()
	} else if img, c, err := steg.Remove(removeRequest.Image, removeRequest.ChunkType); err != nil {
		removeResponse.Error = err.Error()
	} else {
		removeResponse.Image = img
		removeResponse.RemovedType = c.Type().String()
	}

	h.writeResponse(w, "/remove", removeResponse)
}

// handleInspect processes /inspect POST requests.
func (h *Handler) handleInspect(w http.ResponseWriter, r *http.Request) {
	var (
		inspectRequest  InspectRequest
		inspectResponse InspectResponse
	)

	if jsonErr := json.NewDecoder(r.Body).Decode(&inspectRequest); jsonErr != nil {
		inspectResponse.Error = jsonErr.Error()
	} else if p, err := steg.Inspect(inspectRequest.Image); err != nil {
		inspectResponse.Error = err.Error()
	} else {
		inspectResponse.Png = p
	}

	h.writeResponse(w, "/inspect", inspectResponse)
}
