package document

import (
	"strings"
	"time"
)

// DefaultAuthor is printed on tutorials when no author is configured.
const DefaultAuthor = "ExamPrep Dost"

// Options carries per-call settings into an assembler.
type Options struct {
	Author string
	// Now supplies the generation date. Defaults to time.Now.
	Now func() time.Time
}

func (o Options) now() time.Time {
	if o.Now == nil {
		return time.Now()
	}
	return o.Now()
}

func (o Options) author() string {
	if strings.TrimSpace(o.Author) == "" {
		return DefaultAuthor
	}
	return o.Author
}

func splitLines(text string) []string {
	return strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
}
