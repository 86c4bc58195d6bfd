package docs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMarkdownTitle(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"atx", "# Hello World\n\nbody\n", "Hello World"},
		{"inline markup", "## Using `oxide` *today*\n", "Using oxide today"},
		{"setext", "Overview\n========\n", "Overview"},
		{"front matter", "---\ntitle: ignored\n---\n# Real Title\n", "Real Title"},
		{"front matter title fallback", "---\ntitle: From Front Matter\n---\nno heading\n", "From Front Matter"},
		{"crlf front matter", "---\r\nweight: 2\r\n---\r\n# Windows\r\n", "Windows"},
		{"unterminated front matter", "---\nkey: v\n\n# Heading\n", "Heading"},
		{"no heading", "just text\n", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MarkdownTitle([]byte(tt.in)))
		})
	}
}

func TestRSTTitle(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"underline", "Sitemap\n=======\n", "Sitemap"},
		{"overline", "#######\nOverview\n########\n", "Overview"},
		{"skips directives", ".. _label:\n\nAPI\n---\n", "API"},
		{"short underline", "Longer Title\n===\n", ""},
		{"crlf", "Title\r\n=====\r\n", "Title"},
		{"none", "plain text\n", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RSTTitle([]byte(tt.in)))
		})
	}
}
