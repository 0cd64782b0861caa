package studygen

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"exam-prep/internal/domain"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/prompts"
	"go.uber.org/zap"
)

// LLMStudyGenerator implements the domain.StudyContentGenerator interface on
// top of a langchaingo model.
type LLMStudyGenerator struct {
	model       llms.Model
	temperature float64
	logger      *zap.Logger
}

// NewLLMStudyGenerator creates a new instance of LLMStudyGenerator.
func NewLLMStudyGenerator(model llms.Model, temperature float64, logger *zap.Logger) (*LLMStudyGenerator, error) {
	if model == nil {
		return nil, errors.New("LLM model cannot be nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LLMStudyGenerator{
		model:       model,
		temperature: temperature,
		logger:      logger,
	}, nil
}

// GenerateMCQs asks for numQuestions questions in the numbered A-D format
// with an "Answer:" line after each.
func (g *LLMStudyGenerator) GenerateMCQs(ctx context.Context, topic string, numQuestions int) (string, error) {
	return g.generate(ctx, "mcq", mcqPrompt, map[string]any{
		varTopic:        topic,
		varNumQuestions: numQuestions,
	})
}

// GenerateSummary chains two prompts: a full explanation of the topic, then
// short revision notes written from that explanation.
func (g *LLMStudyGenerator) GenerateSummary(ctx context.Context, topic string) (string, error) {
	explanation, err := g.generate(ctx, "explanation", explanationPrompt, map[string]any{varTopic: topic})
	if err != nil {
		return "", err
	}
	return g.generate(ctx, "short_notes", shortNotesPrompt, map[string]any{varContent: explanation})
}

// GenerateTutorial asks for a long-form tutorial with fenced code and tips.
func (g *LLMStudyGenerator) GenerateTutorial(ctx context.Context, topic string) (string, error) {
	return g.generate(ctx, "tutorial", tutorialPrompt, map[string]any{varTopic: topic})
}

func (g *LLMStudyGenerator) generate(ctx context.Context, name string, tmpl prompts.PromptTemplate, values map[string]any) (string, error) {
	prompt, err := tmpl.Format(values)
	if err != nil {
		return "", domain.NewInternalError(fmt.Sprintf("Failed to format %s prompt", name), err)
	}

	g.logger.Debug("Calling LLM", zap.String("prompt", name), zap.Int("prompt_length", len(prompt)))

	response, err := llms.GenerateFromSinglePrompt(ctx, g.model, prompt, llms.WithTemperature(g.temperature))
	if err != nil {
		g.logger.Error("LLM call failed", zap.String("prompt", name), zap.Error(err))
		return "", domain.NewLLMServiceError(err)
	}

	cleaned := stripThinkBlock(response)
	if cleaned == "" {
		g.logger.Warn("LLM returned an empty response", zap.String("prompt", name))
	}
	g.logger.Info("LLM response received", zap.String("prompt", name), zap.Int("response_length", len(cleaned)))
	return cleaned, nil
}

// stripThinkBlock removes a leading <think>...</think> section emitted by
// reasoning models and trims the rest.
func stripThinkBlock(s string) string {
	cleaned := strings.TrimSpace(s)
	start := strings.Index(cleaned, "<think>")
	if start == -1 {
		return cleaned
	}
	end := strings.Index(cleaned, "</think>")
	if end == -1 || end < start {
		return cleaned
	}
	return strings.TrimSpace(cleaned[:start] + cleaned[end+len("</think>"):])
}

// Static assertion to ensure LLMStudyGenerator implements StudyContentGenerator
var _ domain.StudyContentGenerator = (*LLMStudyGenerator)(nil)
