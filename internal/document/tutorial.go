package document

import (
	"fmt"
	"strings"
)

const metadataDateLayout = "January 02, 2006"

// AssembleTutorial renders a long-form tutorial: chapter banners for headers,
// shaded code blocks for fenced regions and callouts for tips. A fence left
// open at the end of the text drops its buffered lines.
func AssembleTutorial(text, topic string, opts Options) (*Document, error) {
	now := opts.now()
	author := opts.author()
	upper := strings.ToUpper(topic)

	r := NewRenderer(RendererOptions{
		Title:         upper,
		Author:        author,
		Created:       now,
		RunningHeader: upper,
		PageNumbers:   true,
	})
	r.Title(upper+" - COMPREHENSIVE TUTORIAL", TextStyle{Family: "Helvetica", Style: "B", Size: 16, LineHeight: 10, Color: colorBlack, After: 8})
	r.Metadata(fmt.Sprintf("Author: %s | Date: %s", author, now.Format(metadataDateLayout)))

	var (
		inFence bool
		code    []string
	)
	for _, line := range splitLines(text) {
		c := Classify(line, inFence)
		switch c.Role {
		case RoleFenceToggle:
			inFence = !inFence
			if !inFence && len(code) > 0 {
				r.CodeBlock(trimBlankEdges(code))
				code = nil
			}
		case RoleCodeLine:
			code = append(code, c.Text)
		case RoleTip:
			r.TipCallout(c.Text)
		case RoleHeader:
			r.ChapterTitle(c.Text)
		case RoleParagraph:
			r.Paragraph(stripBold(c.Text))
		}
	}

	return r.Finish()
}

// trimBlankEdges drops leading and trailing empty lines, keeping one row for
// a block that is entirely blank.
func trimBlankEdges(lines []string) []string {
	start, end := 0, len(lines)
	for start < end && lines[start] == "" {
		start++
	}
	for end > start && lines[end-1] == "" {
		end--
	}
	if start == end {
		return []string{""}
	}
	return lines[start:end]
}
