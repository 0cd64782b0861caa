package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"exam-prep/internal/domain"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// DefaultBatchConcurrency is used when a batch request does not set one.
const DefaultBatchConcurrency = 3

// BatchRequest describes one batch run: the same kind of document for
// several topics.
type BatchRequest struct {
	Kind        domain.DocumentKind
	Topics      []string
	Count       int
	Concurrency int
}

// BatchResult reports which topics were generated and which failed.
type BatchResult struct {
	Succeeded []string
	Failed    map[string]error
}

// ArtifactSink receives every finished artifact. It may be called from
// several goroutines at once.
type ArtifactSink func(ctx context.Context, artifact *domain.Artifact) error

// BatchService generates documents for many topics at once.
type BatchService interface {
	GenerateBatch(ctx context.Context, req BatchRequest, sink ArtifactSink) (*BatchResult, error)
}

// batchService implements BatchService on top of a StudyService.
type batchService struct {
	studySvc StudyService
	logger   *zap.Logger
}

// NewBatchService creates a new instance of batchService.
func NewBatchService(studySvc StudyService, logger *zap.Logger) BatchService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &batchService{
		studySvc: studySvc,
		logger:   logger,
	}
}

// GenerateBatch runs one generation per topic with bounded concurrency. A
// topic that fails to generate is recorded and the rest carry on; a sink
// error aborts the whole batch.
func (s *batchService) GenerateBatch(ctx context.Context, req BatchRequest, sink ArtifactSink) (*BatchResult, error) {
	if sink == nil {
		return nil, domain.NewInvalidInputError("batch sink cannot be nil")
	}
	if len(req.Topics) == 0 {
		s.logger.Info("No topics given. Batch process finishing early.")
		return &BatchResult{Failed: map[string]error{}}, nil
	}

	concurrency := req.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultBatchConcurrency
	}

	start := time.Now()
	s.logger.Info("Starting batch generation",
		zap.String("kind", string(req.Kind)),
		zap.Int("topics", len(req.Topics)),
		zap.Int("concurrency", concurrency))

	result := &BatchResult{Failed: map[string]error{}}
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for _, topic := range req.Topics {
		topic := topic // per-iteration copy; module targets go1.21 loop semantics
		g.Go(func() error {
			artifact, err := s.generate(gctx, req, topic)
			if err != nil {
				s.logger.Error("Failed to generate document",
					zap.String("kind", string(req.Kind)),
					zap.String("topic", topic),
					zap.Error(err))
				mu.Lock()
				result.Failed[topic] = err
				mu.Unlock()
				return nil
			}

			if err := sink(gctx, artifact); err != nil {
				return fmt.Errorf("failed to store %s: %w", artifact.FileName, err)
			}

			mu.Lock()
			result.Succeeded = append(result.Succeeded, topic)
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return result, err
	}

	s.logger.Info("Batch generation finished",
		zap.Int("succeeded", len(result.Succeeded)),
		zap.Int("failed", len(result.Failed)),
		zap.Duration("elapsed", time.Since(start)))
	return result, nil
}

func (s *batchService) generate(ctx context.Context, req BatchRequest, topic string) (*domain.Artifact, error) {
	switch req.Kind {
	case domain.KindMCQs:
		count := req.Count
		if count == 0 {
			count = domain.DefaultQuestions
		}
		return s.studySvc.GenerateMCQs(ctx, topic, count)
	case domain.KindSummary:
		return s.studySvc.GenerateSummary(ctx, topic)
	case domain.KindTutorial:
		return s.studySvc.GenerateTutorial(ctx, topic)
	default:
		return nil, domain.NewInvalidInputError(fmt.Sprintf("unknown document kind: %q", req.Kind))
	}
}
