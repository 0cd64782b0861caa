package domain

import (
	"context"
	"fmt"
	"strings"
	"unicode"
)

// DocumentKind identifies which study aid a document is.
type DocumentKind string

const (
	KindMCQs     DocumentKind = "mcqs"
	KindSummary  DocumentKind = "summary"
	KindTutorial DocumentKind = "tutorial_cleaned"
)

// Question count bounds for MCQ generation.
const (
	MinQuestions     = 1
	MaxQuestions     = 50
	DefaultQuestions = 10
)

// PDFContentType is the media type of every artifact.
const PDFContentType = "application/pdf"

// CommonTopics is the list of suggested topics offered to users.
var CommonTopics = []string{
	"Linear Regression", "Decision Trees", "Neural Networks",
	"Operating Systems", "Database Management", "Computer Networks",
	"Software Engineering", "OOPs in Java", "Cloud Computing",
}

// ParseDocumentKind accepts the kind names used on the command line.
func ParseDocumentKind(s string) (DocumentKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "mcq", "mcqs":
		return KindMCQs, nil
	case "summary":
		return KindSummary, nil
	case "tutorial", "tutorial_cleaned":
		return KindTutorial, nil
	default:
		return "", NewInvalidInputError(fmt.Sprintf("unknown document kind: %q", s))
	}
}

// FileName returns "{topic}_{kind}.pdf". Path separators and control
// characters in the topic are replaced so the name is safe to write.
func FileName(topic string, kind DocumentKind) string {
	safe := strings.Map(func(r rune) rune {
		if r == '/' || r == '\\' || unicode.IsControl(r) {
			return '_'
		}
		return r
	}, strings.TrimSpace(topic))
	return fmt.Sprintf("%s_%s.pdf", safe, kind)
}

// Artifact is a finished study aid ready for download.
type Artifact struct {
	Kind        DocumentKind
	Topic       string
	FileName    string
	ContentType string
	// Text is the raw generated text the document was rendered from.
	Text  string
	Data  []byte
	Pages int
}

// StudyContentGenerator produces raw study text for a topic using a
// language model.
type StudyContentGenerator interface {
	GenerateMCQs(ctx context.Context, topic string, numQuestions int) (string, error)
	GenerateSummary(ctx context.Context, topic string) (string, error)
	GenerateTutorial(ctx context.Context, topic string) (string, error)
}
