// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package markdown

import (
	"strings"
	"testing"
)

func TestToHTMLHeadings(t *testing.T) {
	html, err := ToHTML("## Prevention\n\nWash your hands.")
	if err != nil {
		t.Fatalf("ToHTML: %v", err)
	}
	if !strings.Contains(html, "<h2") || !strings.Contains(html, "Prevention") {
		t.Errorf("missing heading: %q", html)
	}
	if !strings.Contains(html, "<p>Wash your hands.</p>") {
		t.Errorf("missing paragraph: %q", html)
	}
}

func TestToHTMLGFMTable(t *testing.T) {
	html, err := ToHTML("| Symptom | Action |\n| --- | --- |\n| Fever | Rest |")
	if err != nil {
		t.Fatalf("ToHTML: %v", err)
	}
	if !strings.Contains(html, "<table>") {
		t.Errorf("GFM table not rendered: %q", html)
	}
}

func TestToHTMLStripsScripts(t *testing.T) {
	html, err := ToHTML("Hello <script>alert('x')</script> world")
	if err != nil {
		t.Fatalf("ToHTML: %v", err)
	}
	if strings.Contains(html, "<script") {
		t.Errorf("script survived sanitization: %q", html)
	}
}

func TestToHTMLStripsEventHandlers(t *testing.T) {
	html, err := ToHTML(`<a href="https://example.com" onclick="steal()">link</a>`)
	if err != nil {
		t.Fatalf("ToHTML: %v", err)
	}
	if strings.Contains(html, "onclick") {
		t.Errorf("event handler survived sanitization: %q", html)
	}
}
