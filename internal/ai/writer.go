// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package ai

import "strings"

// Sampling temperatures tuned per task: article drafting benefits from
// some variety, triage answers need to stay close to the instructions.
const (
	ArticleTemperature  = 0.5
	AnalysisTemperature = 0.4
)

// maxKeyPoints caps the bullet list fed into the drafting prompt.
const maxKeyPoints = 12

// NormalizeKeyPoints cleans caller-supplied key points for prompting:
// entries are split on newlines and commas, trimmed, de-duplicated
// (case-insensitive), and capped at maxKeyPoints.
func NormalizeKeyPoints(points []string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, raw := range points {
		for _, part := range strings.FieldsFunc(raw, func(r rune) bool {
			return r == '\n' || r == ','
		}) {
			p := strings.TrimSpace(part)
			if p == "" {
				continue
			}
			key := strings.ToLower(p)
			if seen[key] {
				continue
			}
			seen[key] = true
			out = append(out, p)
			if len(out) == maxKeyPoints {
				return out
			}
		}
	}
	return out
}

// BuildArticlePrompt assembles the drafting prompt for an article with the
// given title, key points, and optional free-form guidance.
func BuildArticlePrompt(title string, keyPoints []string, guidance string) string {
	var points strings.Builder
	for _, p := range NormalizeKeyPoints(keyPoints) {
		points.WriteString("- ")
		points.WriteString(p)
		points.WriteString("\n")
	}

	extra := ""
	if g := strings.TrimSpace(guidance); g != "" {
		extra = "\nAdditional guidance:\n" + g
	}

	return "You are a medical writer. Write a well-structured blog post for a community health portal.\n" +
		"Title: " + title + "\n" +
		"Key points (bulleted):\n" + points.String() + extra + "\n\n" +
		"Requirements:\n" +
		"- Clear introduction, informative body with subheadings, and a concise conclusion.\n" +
		"- Tone: helpful, accessible, evidence-informed.\n" +
		"- Add practical tips and, where useful, short bullet lists.\n" +
		"- Do not fabricate statistics; avoid definitive medical claims without context.\n" +
		"- Keep formatting as plain text with line breaks and markdown-style headings (##, ###)."
}

// BuildAnalysisPrompt assembles the symptom triage prompt. The model is
// instructed to answer with bare JSON only; ParseAnalysis handles the rest.
func BuildAnalysisPrompt(symptoms string) string {
	return `You are a medical assistant AI. Analyze the symptoms: "` + symptoms + `"

Respond with ONLY JSON in the exact format:

{
  "health_state": "",
  "diseases": [
    { "name": "", "probability": "", "reason": "" }
  ],
  "remedies": [],
  "otc": [],
  "urgent": "",
  "lifestyle": [],
  "disclaimer": "This is not medical advice."
}

Rules:
- Give real probabilities (10%` + "–" + `95%).
- Use strong medical reasoning.
- Identify red flags.
- Fill every field.
- No markdown, no explanation, ONLY JSON.`
}
