// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package markdown converts article body text into sanitized HTML.
// Bodies come from doctors or from the drafting model, so raw HTML is
// never passed through: goldmark escapes it and bluemonday strips
// anything dangerous from the rendered output.
package markdown

import (
	"bytes"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
)

// md is the configured goldmark instance, reused across calls.
var md = goldmark.New(
	goldmark.WithExtensions(
		extension.GFM, // tables, strikethrough, autolinks, task lists
	),
	goldmark.WithParserOptions(
		parser.WithAutoHeadingID(), // heading anchors for in-page navigation
	),
)

// policy allows the usual user-generated-content elements and nothing else.
var policy = bluemonday.UGCPolicy()

// ToHTML converts Markdown source into sanitized HTML.
func ToHTML(source string) (string, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(source), &buf); err != nil {
		return "", err
	}
	return policy.Sanitize(buf.String()), nil
}
