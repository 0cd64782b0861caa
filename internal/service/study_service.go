package service

import (
	"context"

	"exam-prep/internal/document"
	"exam-prep/internal/domain"
	"exam-prep/internal/validation"

	"go.uber.org/zap"
)

// StudyService defines the operations behind every study-aid download.
type StudyService interface {
	GenerateMCQs(ctx context.Context, topic string, count int) (*domain.Artifact, error)
	GenerateSummary(ctx context.Context, topic string) (*domain.Artifact, error)
	GenerateTutorial(ctx context.Context, topic string) (*domain.Artifact, error)
	GetTopics() []string
}

// assembleFunc lays out generated text as a document.
type assembleFunc func(text, topic string, opts document.Options) (*document.Document, error)

var assemblers = map[domain.DocumentKind]assembleFunc{
	domain.KindMCQs:     document.AssembleMCQ,
	domain.KindSummary:  document.AssembleSummary,
	domain.KindTutorial: document.AssembleTutorial,
}

// studyService implements StudyService
type studyService struct {
	generator  domain.StudyContentGenerator
	validator  *validation.Validator
	assemblers map[domain.DocumentKind]assembleFunc
	opts       document.Options
	logger     *zap.Logger
}

// NewStudyService creates a new instance of studyService. opts is handed to
// every document assembler.
func NewStudyService(generator domain.StudyContentGenerator, opts document.Options, logger *zap.Logger) StudyService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &studyService{
		generator:  generator,
		validator:  validation.NewValidator(),
		assemblers: assemblers,
		opts:       opts,
		logger:     logger,
	}
}

// GenerateMCQs implements StudyService
func (s *studyService) GenerateMCQs(ctx context.Context, topic string, count int) (*domain.Artifact, error) {
	if errs := s.validator.ValidateMCQRequest(topic, count); len(errs) > 0 {
		return nil, errs
	}
	text, err := s.generator.GenerateMCQs(ctx, topic, count)
	if err != nil {
		return nil, err
	}
	return s.render(domain.KindMCQs, topic, text)
}

// GenerateSummary implements StudyService
func (s *studyService) GenerateSummary(ctx context.Context, topic string) (*domain.Artifact, error) {
	if errs := s.validator.ValidateTopic(topic); len(errs) > 0 {
		return nil, errs
	}
	text, err := s.generator.GenerateSummary(ctx, topic)
	if err != nil {
		return nil, err
	}
	return s.render(domain.KindSummary, topic, text)
}

// GenerateTutorial implements StudyService
func (s *studyService) GenerateTutorial(ctx context.Context, topic string) (*domain.Artifact, error) {
	if errs := s.validator.ValidateTopic(topic); len(errs) > 0 {
		return nil, errs
	}
	text, err := s.generator.GenerateTutorial(ctx, topic)
	if err != nil {
		return nil, err
	}
	return s.render(domain.KindTutorial, topic, text)
}

// GetTopics implements StudyService
func (s *studyService) GetTopics() []string {
	topics := make([]string, len(domain.CommonTopics))
	copy(topics, domain.CommonTopics)
	return topics
}

func (s *studyService) render(kind domain.DocumentKind, topic, text string) (*domain.Artifact, error) {
	doc, err := s.assemblers[kind](text, topic, s.opts)
	if err != nil {
		s.logger.Error("Failed to render document",
			zap.String("kind", string(kind)),
			zap.String("topic", topic),
			zap.Error(err))
		return nil, domain.NewRenderFailureError(kind, err)
	}

	s.logger.Info("Document rendered",
		zap.String("kind", string(kind)),
		zap.String("topic", topic),
		zap.Int("pages", len(doc.Pages)),
		zap.Int("bytes", len(doc.Data)))

	return &domain.Artifact{
		Kind:        kind,
		Topic:       topic,
		FileName:    domain.FileName(topic, kind),
		ContentType: domain.PDFContentType,
		Text:        text,
		Data:        doc.Data,
		Pages:       len(doc.Pages),
	}, nil
}
