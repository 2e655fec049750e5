// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package router

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"healthportal/internal/auth"
	"healthportal/internal/handlers"
	"healthportal/internal/metrics"
)

// testRouter wires the router with empty handler groups. Routes that
// reach a store are not exercised here; these tests cover the middleware
// chain and the unauthenticated surface.
func testRouter() http.Handler {
	collector := metrics.NewCollector()
	return New(
		auth.NewVerifier("test-secret"),
		collector,
		handlers.NewArticles(nil, nil, nil, nil, collector),
		handlers.NewHealth(nil, collector),
		handlers.NewDoctors(nil),
		handlers.NewMedia(nil, nil),
	)
}

func TestHealthEndpoint(t *testing.T) {
	rec := httptest.NewRecorder()
	testRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status: %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"status":"ok"`) {
		t.Errorf("body: %s", rec.Body.String())
	}
}

func TestMetricsEndpoint(t *testing.T) {
	rec := httptest.NewRecorder()
	testRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status: %d", rec.Code)
	}
}

func TestEngagementRequiresAuth(t *testing.T) {
	r := testRouter()
	id := "5f1c1ad1-93a1-4a9c-9a94-0f1f3a1a2b3c"

	for _, req := range []*http.Request{
		httptest.NewRequest(http.MethodPost, "/articles/"+id+"/like", nil),
		httptest.NewRequest(http.MethodDelete, "/articles/"+id+"/like", nil),
		httptest.NewRequest(http.MethodPost, "/media", nil),
	} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("%s %s: status %d, want 401", req.Method, req.URL.Path, rec.Code)
		}
		if !strings.Contains(rec.Body.String(), "Authentication required") {
			t.Errorf("%s %s: body %s", req.Method, req.URL.Path, rec.Body.String())
		}
	}
}

func TestAnalyzeRouted(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/health/analyze", strings.NewReader(`{"symptoms":"cough"}`))
	req.Header.Set("Content-Type", "application/json")
	testRouter().ServeHTTP(rec, req)

	// No provider wired in this test router.
	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("status: %d, want 503", rec.Code)
	}
}
