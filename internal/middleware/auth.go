// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import (
	"context"
	"net/http"
	"strings"

	"healthportal/internal/auth"
)

// contextKey is an unexported type for context keys to prevent collisions.
type contextKey string

const (
	// ViewerKey is the context key for the authenticated viewer id.
	ViewerKey contextKey = "viewer"
)

// LoadViewer verifies a Bearer token if one is present and stores the
// viewer id in the request context. Downstream handlers can access it
// via ViewerFromCtx(). This middleware does NOT enforce authentication —
// requests without a valid token continue as anonymous.
func LoadViewer(verifier *auth.Verifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if len(header) > 7 && strings.EqualFold(header[:7], "bearer ") {
				viewerID, err := verifier.VerifyToken(strings.TrimSpace(header[7:]))
				if err == nil {
					ctx := context.WithValue(r.Context(), ViewerKey, viewerID)
					r = r.WithContext(ctx)
				}
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireViewer returns 401 for requests without an authenticated viewer.
// Must be applied after LoadViewer in the middleware chain.
func RequireViewer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ViewerFromCtx(r.Context()) == "" {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"success":false,"message":"Authentication required"}`))
			return
		}

		next.ServeHTTP(w, r)
	})
}

// ViewerFromCtx extracts the viewer id from the request context.
// Returns "" if the request is anonymous.
func ViewerFromCtx(ctx context.Context) string {
	viewerID, _ := ctx.Value(ViewerKey).(string)
	return viewerID
}
