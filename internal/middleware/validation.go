package middleware

import (
	"strings"

	"exam-prep/internal/domain"
	"exam-prep/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// Locals keys set by the validation middleware.
const (
	LocalTopic = "validated_topic"
	LocalCount = "validated_count"
)

// ValidationMiddleware provides request validation middleware
type ValidationMiddleware struct {
	validator *validation.Validator
}

// NewValidationMiddleware creates a new validation middleware instance
func NewValidationMiddleware() *ValidationMiddleware {
	return &ValidationMiddleware{
		validator: validation.NewValidator(),
	}
}

// topicBody is the parsed request body. Count is a pointer so an absent
// count can fall back to the default while an explicit 0 is rejected.
type topicBody struct {
	Topic string `json:"topic" form:"topic"`
	Count *int   `json:"count" form:"count"`
}

// ValidateTopicRequest validates the topic of a summary or tutorial request
func (vm *ValidationMiddleware) ValidateTopicRequest() fiber.Handler {
	return func(c *fiber.Ctx) error {
		body, err := parseTopicBody(c)
		if err != nil {
			return err
		}

		if errors := vm.validator.ValidateTopic(body.Topic); len(errors) > 0 {
			return errors // This will be handled by ErrorHandler middleware
		}

		// Store validated value in context for handlers to use
		c.Locals(LocalTopic, strings.TrimSpace(body.Topic))
		return c.Next()
	}
}

// ValidateMCQRequest validates the topic and question count of an MCQ request
func (vm *ValidationMiddleware) ValidateMCQRequest() fiber.Handler {
	return func(c *fiber.Ctx) error {
		body, err := parseTopicBody(c)
		if err != nil {
			return err
		}

		count := domain.DefaultQuestions
		if body.Count != nil {
			count = *body.Count
		}

		if errors := vm.validator.ValidateMCQRequest(body.Topic, count); len(errors) > 0 {
			return errors
		}

		c.Locals(LocalTopic, strings.TrimSpace(body.Topic))
		c.Locals(LocalCount, count)
		return c.Next()
	}
}

// parseTopicBody reads a JSON or form-encoded body. An empty body parses to
// the zero value so the field checks report what is missing.
func parseTopicBody(c *fiber.Ctx) (*topicBody, error) {
	var body topicBody
	if len(c.Body()) == 0 {
		return &body, nil
	}
	if err := c.BodyParser(&body); err != nil {
		return nil, domain.ValidationErrors{
			domain.NewInvalidFormatError("body", c.Get(fiber.HeaderContentType)),
		}
	}
	return &body, nil
}
