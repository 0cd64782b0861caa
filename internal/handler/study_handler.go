package handler

import (
	"mime"

	"exam-prep/internal/domain"
	"exam-prep/internal/dto"
	"exam-prep/internal/logger"
	"exam-prep/internal/middleware"
	"exam-prep/internal/preview"
	"exam-prep/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// formatJSON selects the JSON envelope instead of the raw PDF download.
const formatJSON = "json"

// StudyHandler handles study-aid HTTP requests
type StudyHandler struct {
	service service.StudyService
	preview *preview.Renderer
}

// NewStudyHandler creates a new StudyHandler instance
func NewStudyHandler(service service.StudyService, preview *preview.Renderer) *StudyHandler {
	return &StudyHandler{
		service: service,
		preview: preview,
	}
}

// GetTopics godoc
// @Summary List suggested topics
// @Description Returns the suggested study topics
// @Tags topics
// @Produce json
// @Success 200 {object} dto.TopicsResponse
// @Router /topics [get]
func (h *StudyHandler) GetTopics(c *fiber.Ctx) error {
	return c.JSON(dto.TopicsResponse{Topics: h.service.GetTopics()})
}

// GenerateMCQs godoc
// @Summary Generate multiple-choice questions
// @Description Generates MCQs with an answer key on a separate page
// @Tags documents
// @Accept json,x-www-form-urlencoded
// @Produce application/pdf,json
// @Param request body dto.MCQRequest true "Topic and question count (1-50, default 10)"
// @Param format query string false "Set to json for a JSON envelope"
// @Success 200 {object} dto.DocumentResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Failure 503 {object} middleware.ErrorResponse
// @Router /mcqs [post]
func (h *StudyHandler) GenerateMCQs(c *fiber.Ctx) error {
	topic, _ := c.Locals(middleware.LocalTopic).(string)
	count, ok := c.Locals(middleware.LocalCount).(int)
	if !ok {
		count = domain.DefaultQuestions
	}

	artifact, err := h.service.GenerateMCQs(c.UserContext(), topic, count)
	if err != nil {
		return err // Handled by ErrorHandler
	}
	return h.respond(c, artifact)
}

// GenerateSummary godoc
// @Summary Generate short revision notes
// @Description Generates sectioned short notes for a topic
// @Tags documents
// @Accept json,x-www-form-urlencoded
// @Produce application/pdf,json
// @Param request body dto.TopicRequest true "Topic"
// @Param format query string false "Set to json for a JSON envelope"
// @Success 200 {object} dto.DocumentResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Failure 503 {object} middleware.ErrorResponse
// @Router /summary [post]
func (h *StudyHandler) GenerateSummary(c *fiber.Ctx) error {
	topic, _ := c.Locals(middleware.LocalTopic).(string)

	artifact, err := h.service.GenerateSummary(c.UserContext(), topic)
	if err != nil {
		return err
	}
	return h.respond(c, artifact)
}

// GenerateTutorial godoc
// @Summary Generate a long-form tutorial
// @Description Generates a tutorial with chapter banners, code blocks and tips
// @Tags documents
// @Accept json,x-www-form-urlencoded
// @Produce application/pdf,json
// @Param request body dto.TopicRequest true "Topic"
// @Param format query string false "Set to json for a JSON envelope"
// @Success 200 {object} dto.DocumentResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Failure 503 {object} middleware.ErrorResponse
// @Router /tutorial [post]
func (h *StudyHandler) GenerateTutorial(c *fiber.Ctx) error {
	topic, _ := c.Locals(middleware.LocalTopic).(string)

	artifact, err := h.service.GenerateTutorial(c.UserContext(), topic)
	if err != nil {
		return err
	}
	return h.respond(c, artifact)
}

// Health answers the liveness probe
func (h *StudyHandler) Health(c *fiber.Ctx) error {
	return c.JSON(dto.HealthResponse{Status: "ok"})
}

// contentDisposition quotes the file name as is. Names outside ASCII are
// sent in the RFC 2231 extended form.
func contentDisposition(fileName string) string {
	return mime.FormatMediaType("attachment", map[string]string{"filename": fileName})
}

// respond sends the artifact as a PDF download, or as a JSON envelope with
// an HTML preview when format=json.
func (h *StudyHandler) respond(c *fiber.Ctx, artifact *domain.Artifact) error {
	if c.Query("format") != formatJSON {
		c.Set(fiber.HeaderContentDisposition, contentDisposition(artifact.FileName))
		c.Set(fiber.HeaderContentType, artifact.ContentType)
		return c.Send(artifact.Data)
	}

	var previewHTML string
	if h.preview != nil {
		html, err := h.preview.Render(artifact.Text)
		if err != nil {
			// The PDF is still good; only the preview is dropped.
			logger.Get().Warn("Failed to render preview",
				zap.String("file_name", artifact.FileName),
				zap.Error(err))
		} else {
			previewHTML = html
		}
	}

	return c.JSON(dto.DocumentResponse{
		RequestID:   middleware.RequestIDFromContext(c),
		Kind:        string(artifact.Kind),
		Topic:       artifact.Topic,
		FileName:    artifact.FileName,
		Pages:       artifact.Pages,
		Text:        artifact.Text,
		PreviewHTML: previewHTML,
		PDF:         artifact.Data,
	})
}

// RegisterRoutes mounts the study routes on the given router.
func (h *StudyHandler) RegisterRoutes(router fiber.Router, vm *middleware.ValidationMiddleware) {
	router.Get("/topics", h.GetTopics)
	router.Post("/mcqs", vm.ValidateMCQRequest(), h.GenerateMCQs)
	router.Post("/summary", vm.ValidateTopicRequest(), h.GenerateSummary)
	router.Post("/tutorial", vm.ValidateTopicRequest(), h.GenerateTutorial)
}
