package service

import (
	"strings"

	"github.com/yuin/goldmark"
)

// RenderMarkdown converts a bot message to HTML. Bot replies are
// authored as Markdown; rendering failures fall back to the raw text
// so the chat never loses a message.
func RenderMarkdown(text string) string {
	var buf strings.Builder
	if err := goldmark.Convert([]byte(text), &buf); err != nil {
		return text
	}
	return buf.String()
}
