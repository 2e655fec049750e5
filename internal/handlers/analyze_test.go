// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"healthportal/internal/ai"
	"healthportal/internal/metrics"
)

func TestAnalyze(t *testing.T) {
	provider := &mockAIProvider{response: `{
		"health_state": "mild illness likely",
		"diseases": [{"name": "Common cold", "probability": "70%", "reason": "classic presentation"}],
		"remedies": ["rest"],
		"otc": ["paracetamol"],
		"urgent": "none",
		"lifestyle": ["hydrate"],
		"disclaimer": "This is not medical advice."
	}`}
	h := NewHealth(provider, metrics.NewCollector())

	var resp struct {
		Success bool        `json:"success"`
		Data    ai.Analysis `json:"data"`
	}
	rec := doRequest(t, h.Analyze,
		jsonRequest(http.MethodPost, "/health/analyze", `{"symptoms": "fever and cough"}`),
		"", nil, &resp)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: %d, body %s", rec.Code, rec.Body.String())
	}
	if resp.Data.HealthState != "mild illness likely" {
		t.Errorf("healthState: got %q", resp.Data.HealthState)
	}
	if len(resp.Data.PossibleDiseases) != 1 || resp.Data.PossibleDiseases[0].Confidence != "70%" {
		t.Errorf("diseases: got %+v", resp.Data.PossibleDiseases)
	}
}

func TestAnalyzeMissingSymptoms(t *testing.T) {
	h := NewHealth(&mockAIProvider{}, metrics.NewCollector())

	var resp envelope
	rec := doRequest(t, h.Analyze,
		jsonRequest(http.MethodPost, "/health/analyze", `{"symptoms": "   "}`),
		"", nil, &resp)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status: %d, want 400", rec.Code)
	}
	if resp.Message != "Symptoms are required" {
		t.Errorf("message: got %q", resp.Message)
	}
}

func TestAnalyzeProviderDown(t *testing.T) {
	h := NewHealth(&mockAIProvider{err: errors.New("timeout")}, metrics.NewCollector())

	rec := doRequest(t, h.Analyze,
		jsonRequest(http.MethodPost, "/health/analyze", `{"symptoms": "headache"}`),
		"", nil, nil)
	if rec.Code != http.StatusBadGateway {
		t.Errorf("status: %d, want 502", rec.Code)
	}
}

func TestAnalyzeBadModelOutput(t *testing.T) {
	h := NewHealth(&mockAIProvider{response: "Sure! Here is my analysis..."}, metrics.NewCollector())

	var resp envelope
	rec := doRequest(t, h.Analyze,
		jsonRequest(http.MethodPost, "/health/analyze", `{"symptoms": "headache"}`),
		"", nil, &resp)
	if rec.Code != http.StatusBadGateway {
		t.Errorf("status: %d, want 502", rec.Code)
	}
	if resp.Message != "Invalid JSON returned by AI" {
		t.Errorf("message: got %q", resp.Message)
	}
}

func TestAnalyzeNoProvider(t *testing.T) {
	h := NewHealth(nil, metrics.NewCollector())

	rec := httptest.NewRecorder()
	h.Analyze(rec, jsonRequest(http.MethodPost, "/health/analyze", `{"symptoms": "headache"}`))
	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("status: %d, want 503", rec.Code)
	}
}
