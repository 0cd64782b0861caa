package document

import (
	"strings"
)

var summaryBodyStyle = TextStyle{
	Family:     "Helvetica",
	Size:       11,
	LineHeight: 7,
	Color:      colorBlack,
	Prefix:     " ",
	After:      1,
}

// AssembleSummary renders short notes as header-boxed sections. Text without
// any colon is treated as a single SUMMARY section.
func AssembleSummary(text, topic string, opts Options) (*Document, error) {
	title := strings.ToUpper(topic) + " - SHORT NOTES"
	r := NewRenderer(RendererOptions{Title: title, Author: opts.Author, Body: summaryBodyStyle})
	r.Title(title, TextStyle{Family: "Helvetica", Style: "B", Size: 15, LineHeight: 10, Color: colorBlack, After: 8})

	lines := splitLines(strings.TrimSpace(text))

	if !strings.Contains(text, ":") {
		r.HeaderBox(DefaultSectionTitle)
		for _, line := range lines {
			if clean := CleanLine(line); clean != "" {
				r.Paragraph(clean)
			}
		}
		return r.Finish()
	}

	if len(lines) > 0 && isSummaryPreamble(lines[0]) {
		lines = lines[1:]
	}

	acc := NewSectionAccumulator(DefaultSectionTitle, func(title string, content []string) {
		if len(content) == 0 {
			return
		}
		r.HeaderBox(title)
		for _, line := range content {
			if clean := CleanLine(line); clean != "" {
				r.Paragraph(clean)
			}
		}
	})

	for _, line := range lines {
		line = strings.TrimSpace(line)
		switch {
		case line == "":
		case IsSummaryHeader(line):
			acc.Header(strings.TrimSuffix(line, ":"))
		default:
			acc.Add(line)
		}
	}
	acc.Close()

	return r.Finish()
}

// isSummaryPreamble matches an opening line such as "Here is a clean summary".
func isSummaryPreamble(line string) bool {
	lower := strings.ToLower(line)
	return strings.Contains(lower, "clean") && strings.Contains(lower, "summary")
}
