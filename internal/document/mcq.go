package document

import (
	"fmt"
	"strings"
)

const answerPrefix = "answer:"

// QuestionBlock is one multiple-choice question with its options and the
// answer letter found in the same paragraph, if any.
type QuestionBlock struct {
	Lines  []string
	Answer string
}

// ParseMCQ splits generated MCQ text into question blocks and the answer key.
// answers holds every non-empty answer in encounter order; a block without
// an answer line contributes nothing to it, so later answer indexes shift.
func ParseMCQ(text string) (blocks []QuestionBlock, answers []string) {
	for _, paragraph := range paragraphs(text) {
		if isMCQPreamble(paragraph) {
			continue
		}

		var block QuestionBlock
		for _, line := range paragraph {
			if strings.HasPrefix(strings.ToLower(line), answerPrefix) {
				block.Answer = answerValue(line)
				continue
			}
			block.Lines = append(block.Lines, line)
		}

		if len(block.Lines) > 0 {
			blocks = append(blocks, block)
		}
		if block.Answer != "" {
			answers = append(answers, block.Answer)
		}
	}
	return blocks, answers
}

// AssembleMCQ renders the questions followed by an answer key page.
func AssembleMCQ(text, topic string, opts Options) (*Document, error) {
	title := fmt.Sprintf("%s - MCQs", topic)
	r := NewRenderer(RendererOptions{Title: title, Author: opts.Author})
	r.Title(title, TextStyle{Family: "Helvetica", Size: 12, LineHeight: 10, Color: colorBlack, After: 10})

	blocks, answers := ParseMCQ(text)
	for _, block := range blocks {
		r.Question(block.Lines)
	}

	r.NewPage()
	r.Heading("Answer Key")
	for i, answer := range answers {
		r.ListItem(fmt.Sprintf("Q%d: %s", i+1, answer))
	}

	return r.Finish()
}

// paragraphs groups trimmed lines into blank-line-delimited runs.
func paragraphs(text string) [][]string {
	var (
		out     [][]string
		current []string
	)
	for _, line := range splitLines(strings.TrimSpace(text)) {
		line = strings.TrimSpace(line)
		if line == "" {
			if len(current) > 0 {
				out = append(out, current)
				current = nil
			}
			continue
		}
		current = append(current, line)
	}
	if len(current) > 0 {
		out = append(out, current)
	}
	return out
}

// isMCQPreamble matches the "Here are N multiple-choice questions ..." line
// models like to open with.
func isMCQPreamble(paragraph []string) bool {
	first := strings.ToLower(paragraph[0])
	if !strings.HasPrefix(first, "here are") && !strings.HasPrefix(first, "here is") {
		return false
	}
	return strings.Contains(first, "multiple-choice question") || strings.Contains(first, "multiple choice question")
}

// answerValue returns the text between the first and second colon.
func answerValue(line string) string {
	rest := line[len(answerPrefix):]
	if i := strings.Index(rest, ":"); i >= 0 {
		rest = rest[:i]
	}
	return strings.TrimSpace(rest)
}
