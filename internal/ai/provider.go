// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package ai drafts article text and answers symptom triage requests
// through an OpenAI-compatible chat completions API (Groq).
package ai

import "context"

// Provider is the text generation backend. Implementations handle their
// own HTTP communication and response parsing.
type Provider interface {
	// Generate sends a single user prompt to the LLM and returns the
	// generated text. Temperature controls sampling randomness.
	Generate(ctx context.Context, prompt string, temperature float64) (string, error)

	// Name returns the provider identifier (e.g., "groq").
	Name() string
}

// ProviderConfig holds the credentials and settings for a provider.
type ProviderConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}
