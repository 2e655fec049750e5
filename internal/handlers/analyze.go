// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"unicode/utf8"

	"healthportal/internal/ai"
	"healthportal/internal/metrics"
)

// Health serves the symptom triage endpoint.
type Health struct {
	provider  ai.Provider // nil when no generation backend is configured
	collector *metrics.Collector
}

// NewHealth creates the health handler group.
func NewHealth(provider ai.Provider, collector *metrics.Collector) *Health {
	return &Health{provider: provider, collector: collector}
}

type analyzeRequest struct {
	Symptoms string `json:"symptoms"`
}

// Analyze handles POST /health/analyze: free-text symptoms in, a
// structured non-diagnostic triage summary out.
func (h *Health) Analyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	symptoms := strings.TrimSpace(req.Symptoms)
	if symptoms == "" {
		respondError(w, http.StatusBadRequest, "Symptoms are required")
		return
	}
	if utf8.RuneCountInString(symptoms) > maxSymptomsLen {
		respondError(w, http.StatusBadRequest, "Symptoms description is too long (max 2,000 characters).")
		return
	}

	if h.provider == nil {
		respondError(w, http.StatusServiceUnavailable, "Symptom analysis is not available")
		return
	}

	text, err := h.provider.Generate(r.Context(), ai.BuildAnalysisPrompt(symptoms), ai.AnalysisTemperature)
	if err != nil {
		slog.Error("symptom analysis failed", "error", err)
		h.collector.RecordGeneration(false)
		respondError(w, http.StatusBadGateway, "Symptom analysis failed")
		return
	}
	h.collector.RecordGeneration(true)

	analysis, err := ai.ParseAnalysis(text)
	if err != nil {
		slog.Error("symptom analysis returned invalid JSON", "error", err)
		respondError(w, http.StatusBadGateway, "Invalid JSON returned by AI")
		return
	}

	respondData(w, http.StatusOK, analysis)
}
