// Package preview renders the opening of generated study text as HTML so a
// client can show it next to the download.
package preview

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// DefaultLimit is the number of characters shown in a preview.
const DefaultLimit = 1500

// Renderer converts generated text to an HTML fragment. Raw HTML in the
// input is never passed through.
type Renderer struct {
	md    goldmark.Markdown
	limit int
}

// NewRenderer creates a Renderer that previews at most limit characters.
// A non-positive limit falls back to DefaultLimit.
func NewRenderer(limit int) *Renderer {
	if limit <= 0 {
		limit = DefaultLimit
	}
	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithRendererOptions(html.WithHardWraps()),
	)
	return &Renderer{md: md, limit: limit}
}

// Render converts the first characters of text to HTML.
func (r *Renderer) Render(text string) (string, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(Truncate(text, r.limit)), &buf); err != nil {
		return "", fmt.Errorf("failed to render preview: %w", err)
	}
	return buf.String(), nil
}

// Truncate cuts s to at most limit characters without splitting a rune.
func Truncate(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	var b strings.Builder
	n := 0
	for _, r := range s {
		if n == limit {
			break
		}
		b.WriteRune(r)
		n++
	}
	return b.String()
}
