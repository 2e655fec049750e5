// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package slug derives URL-safe identifiers from content titles. A slug is
// assigned once, at first persistence, and never regenerated afterwards.
package slug

import (
	"regexp"
	"strings"
)

var (
	// disallowed matches anything outside lowercase letters, digits,
	// whitespace, and hyphens.
	disallowed = regexp.MustCompile(`[^a-z0-9\s-]`)
	// whitespaceRun matches one or more whitespace characters.
	whitespaceRun = regexp.MustCompile(`\s+`)
	// hyphenRun collapses consecutive hyphens into one.
	hyphenRun = regexp.MustCompile(`-{2,}`)
)

// Generate creates a URL-safe slug from a title.
// Example: "Flu Outbreak: What To Know (2026)" → "flu-outbreak-what-to-know-2026"
func Generate(title string) string {
	s := strings.ToLower(strings.TrimSpace(title))
	s = disallowed.ReplaceAllString(s, "")
	s = whitespaceRun.ReplaceAllString(s, "-")
	s = hyphenRun.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
