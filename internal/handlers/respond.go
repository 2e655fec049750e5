// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers implements the portal's JSON API endpoints.
package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// envelope is the standard response shape: {success, message?, data?}.
type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// engagementResponse is the shape of like/unlike responses. Likes is a
// pointer so a zero count still serializes.
type engagementResponse struct {
	Message string `json:"message"`
	Likes   *int   `json:"likes,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("write response", "error", err)
	}
}

// respondData writes a success envelope wrapping data.
func respondData(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, envelope{Success: true, Data: data})
}

// respondMessage writes a success envelope with just a message.
func respondMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, envelope{Success: true, Message: message})
}

// respondError writes a failure envelope.
func respondError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, envelope{Success: false, Message: message})
}

// respondEngagement writes a like/unlike result with the current count.
func respondEngagement(w http.ResponseWriter, status int, message string, likes int) {
	writeJSON(w, status, engagementResponse{Message: message, Likes: &likes})
}
