// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package auth verifies viewer identity tokens. The portal does not manage
// accounts itself; the identity provider issues HS256-signed JWTs whose
// subject is the stable viewer id.
package auth

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned for tokens that fail signature or claim
// validation, or that carry no subject.
var ErrInvalidToken = errors.New("auth: invalid token")

// Verifier validates viewer tokens against a shared HMAC secret.
type Verifier struct {
	secret []byte
}

// NewVerifier creates a Verifier for the given shared secret.
func NewVerifier(secret string) *Verifier {
	return &Verifier{secret: []byte(secret)}
}

// viewerClaims accepts the subject, plus a uid claim some issuers set
// instead of sub.
type viewerClaims struct {
	UID string `json:"uid,omitempty"`
	jwt.RegisteredClaims
}

// VerifyToken validates the token string and returns the viewer id.
// Only HS256 is accepted.
func (v *Verifier) VerifyToken(tokenStr string) (string, error) {
	var claims viewerClaims
	token, err := jwt.ParseWithClaims(
		tokenStr,
		&claims,
		func(t *jwt.Token) (any, error) {
			if t.Method != jwt.SigningMethodHS256 {
				return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
			}
			return v.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		return "", ErrInvalidToken
	}
	if !token.Valid {
		return "", ErrInvalidToken
	}

	viewerID := claims.UID
	if viewerID == "" {
		viewerID = claims.Subject
	}
	if viewerID == "" {
		return "", ErrInvalidToken
	}
	return viewerID, nil
}
