// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// handler_test.go provides shared test infrastructure for handler
// integration tests. Tests are skipped when PostgreSQL is unavailable.
package handlers

import (
	"context"
	"database/sql"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"healthportal/internal/database"
	"healthportal/internal/metrics"
	"healthportal/internal/middleware"
	"healthportal/internal/store"
)

// mockAIProvider implements ai.Provider for handler tests.
type mockAIProvider struct {
	response string
	err      error
}

func (m *mockAIProvider) Name() string { return "mock" }
func (m *mockAIProvider) Generate(_ context.Context, _ string, _ float64) (string, error) {
	return m.response, m.err
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// testDB opens a connection to the test PostgreSQL and runs migrations.
func testDB(t *testing.T) *sql.DB {
	t.Helper()

	host := envOr("POSTGRES_HOST", "localhost")
	port := envOr("POSTGRES_PORT", "5432")
	user := envOr("POSTGRES_USER", "healthportal")
	pass := envOr("POSTGRES_PASSWORD", "changeme")
	name := envOr("POSTGRES_DB", "healthportal")
	dsn := "postgres://" + user + ":" + pass + "@" + host + ":" + port + "/" + name + "?sslmode=disable"

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		t.Skipf("skipping: cannot open DB: %v", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		t.Skipf("skipping: DB not reachable: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		db.Close()
		t.Fatalf("migrate: %v", err)
	}
	goose.SetBaseFS(nil)

	t.Cleanup(func() { db.Close() })
	return db
}

// testEnv bundles the handlers and stores over a shared test database.
type testEnv struct {
	db       *sql.DB
	articles *Articles
	provider *mockAIProvider
	doctorID uuid.UUID
	clerkID  string
}

// newTestEnv builds an Articles handler over the test database with a
// mock AI provider and one seeded doctor.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db := testDB(t)

	clerkID := "user_test_" + uuid.NewString()[:8]
	var doctorID uuid.UUID
	err := db.QueryRow(`
		INSERT INTO doctors (clerk_user_id, full_name, qualification, specialty)
		VALUES ($1, 'Dr. Handler Test', 'MD', 'General Medicine')
		RETURNING id`, clerkID).Scan(&doctorID)
	if err != nil {
		t.Fatalf("seed doctor: %v", err)
	}
	t.Cleanup(func() {
		db.Exec("DELETE FROM content WHERE author_id = $1", doctorID)
		db.Exec("DELETE FROM doctors WHERE id = $1", doctorID)
	})

	provider := &mockAIProvider{response: "## Generated\n\nDraft body."}
	articles := NewArticles(
		store.NewContentStore(db),
		store.NewEngagementStore(db),
		store.NewDoctorStore(db),
		provider,
		metrics.NewCollector(),
	)
	return &testEnv{db: db, articles: articles, provider: provider, doctorID: doctorID, clerkID: clerkID}
}

// doRequest routes req through handler with an optional chi URL param and
// viewer identity, and decodes the JSON response into out (if non-nil).
func doRequest(t *testing.T, handler http.HandlerFunc, req *http.Request, viewerID string, params map[string]string, out any) *httptest.ResponseRecorder {
	t.Helper()

	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	ctx := context.WithValue(req.Context(), chi.RouteCtxKey, rctx)
	if viewerID != "" {
		ctx = context.WithValue(ctx, middleware.ViewerKey, viewerID)
	}
	req = req.WithContext(ctx)

	rec := httptest.NewRecorder()
	handler(rec, req)

	if out != nil {
		body, _ := io.ReadAll(rec.Body)
		if err := json.Unmarshal(body, out); err != nil {
			t.Fatalf("decode response %q: %v", body, err)
		}
	}
	return rec
}
