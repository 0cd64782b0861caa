package validation

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"exam-prep/internal/domain"
)

// MaxTopicLength bounds the topic a user may submit, in characters.
const MaxTopicLength = 200

// Validator provides request validation functionality
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateTopic validates a study topic
func (v *Validator) ValidateTopic(topic string) domain.ValidationErrors {
	var errors domain.ValidationErrors

	trimmed := strings.TrimSpace(topic)
	if trimmed == "" {
		errors = append(errors, domain.NewMissingFieldError("topic"))
		return errors
	}

	if n := utf8.RuneCountInString(trimmed); n > MaxTopicLength {
		errors = append(errors, domain.NewOutOfRangeError("topic", n, 1, MaxTopicLength))
	} else if !isValidTopic(trimmed) {
		errors = append(errors, domain.NewInvalidFormatError("topic", topic))
	}

	return errors
}

// ValidateQuestionCount validates the number of MCQs requested
func (v *Validator) ValidateQuestionCount(count int) domain.ValidationErrors {
	var errors domain.ValidationErrors
	if count < domain.MinQuestions || count > domain.MaxQuestions {
		errors = append(errors, domain.NewOutOfRangeError("count", count, domain.MinQuestions, domain.MaxQuestions))
	}
	return errors
}

// ValidateMCQRequest validates the MCQ generation request
func (v *Validator) ValidateMCQRequest(topic string, count int) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if topicErrors := v.ValidateTopic(topic); len(topicErrors) > 0 {
		errors = append(errors, topicErrors...)
	}
	if countErrors := v.ValidateQuestionCount(count); len(countErrors) > 0 {
		errors = append(errors, countErrors...)
	}

	return errors
}

// isValidTopic rejects control characters; topics end up in file names and
// prompts.
func isValidTopic(s string) bool {
	for _, r := range s {
		if unicode.IsControl(r) {
			return false
		}
	}
	return true
}
