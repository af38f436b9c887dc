package ui

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

// markdownWrap is the word-wrap width for rendered markdown.
const markdownWrap = 80

// RenderMarkdown renders md for terminal display. When styled is false, or
// the renderer fails, md is returned unchanged.
func RenderMarkdown(md string, styled bool) string {
	if !styled {
		return md
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(markdownWrap),
	)
	if err != nil {
		return md
	}

	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimRight(out, "\n") + "\n"
}
