package service

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"exam-prep/internal/document"
	"exam-prep/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const linearRegressionMCQs = `Here are 2 multiple-choice questions on Linear Regression:

1. What does linear regression predict?
A. Categories
B. Continuous values
C. Clusters
D. Rules
Answer: B

2. Which loss is most common?
A. Hinge
B. Log loss
C. Mean squared error
D. Cross entropy
Answer: C`

func fixedOptions() document.Options {
	return document.Options{
		Author: "Test Author",
		Now:    func() time.Time { return time.Date(2024, time.March, 5, 10, 0, 0, 0, time.UTC) },
	}
}

func TestStudyService_GenerateMCQs(t *testing.T) {
	ctx := context.Background()
	gen := new(MockStudyContentGenerator)
	gen.On("GenerateMCQs", ctx, "Linear Regression", 2).Return(linearRegressionMCQs, nil).Once()

	svc := NewStudyService(gen, fixedOptions(), zap.NewNop())
	artifact, err := svc.GenerateMCQs(ctx, "Linear Regression", 2)

	require.NoError(t, err)
	assert.Equal(t, domain.KindMCQs, artifact.Kind)
	assert.Equal(t, "Linear Regression_mcqs.pdf", artifact.FileName)
	assert.Equal(t, domain.PDFContentType, artifact.ContentType)
	assert.Equal(t, linearRegressionMCQs, artifact.Text)
	assert.Equal(t, 2, artifact.Pages, "questions then the answer key")
	assert.True(t, bytes.HasPrefix(artifact.Data, []byte("%PDF-")))
	gen.AssertExpectations(t)
}

func TestStudyService_GenerateMCQsRejectsInvalidInput(t *testing.T) {
	gen := new(MockStudyContentGenerator)
	svc := NewStudyService(gen, fixedOptions(), zap.NewNop())

	_, err := svc.GenerateMCQs(context.Background(), "Go", 51)

	var validationErrs domain.ValidationErrors
	require.True(t, errors.As(err, &validationErrs))
	assert.Equal(t, domain.CodeOutOfRange, validationErrs[0].Code)
	gen.AssertNotCalled(t, "GenerateMCQs", mock.Anything, mock.Anything, mock.Anything)
}

func TestStudyService_GenerateSummary(t *testing.T) {
	ctx := context.Background()
	gen := new(MockStudyContentGenerator)
	gen.On("GenerateSummary", ctx, "Operating Systems").
		Return("DEFINITIONS:\n- Process: a running program\n\nKEY CONCEPTS:\n- Scheduling", nil).Once()

	svc := NewStudyService(gen, fixedOptions(), zap.NewNop())
	artifact, err := svc.GenerateSummary(ctx, "Operating Systems")

	require.NoError(t, err)
	assert.Equal(t, domain.KindSummary, artifact.Kind)
	assert.Equal(t, "Operating Systems_summary.pdf", artifact.FileName)
	assert.Equal(t, 1, artifact.Pages)
	assert.NotEmpty(t, artifact.Data)
}

func TestStudyService_GenerateTutorial(t *testing.T) {
	ctx := context.Background()
	gen := new(MockStudyContentGenerator)
	gen.On("GenerateTutorial", ctx, "Go").
		Return("Introduction:\nGo is simple.\n```go\nfmt.Println(1)\n```\nTip: run gofmt", nil).Once()

	svc := NewStudyService(gen, fixedOptions(), zap.NewNop())
	artifact, err := svc.GenerateTutorial(ctx, "Go")

	require.NoError(t, err)
	assert.Equal(t, domain.KindTutorial, artifact.Kind)
	assert.Equal(t, "Go_tutorial_cleaned.pdf", artifact.FileName)
	assert.NotEmpty(t, artifact.Data)
}

func TestStudyService_IdenticalInputRendersIdenticalBytes(t *testing.T) {
	ctx := context.Background()
	gen := new(MockStudyContentGenerator)
	gen.On("GenerateTutorial", ctx, "Go").Return("Intro:\nbody", nil).Twice()

	svc := NewStudyService(gen, fixedOptions(), zap.NewNop())
	first, err := svc.GenerateTutorial(ctx, "Go")
	require.NoError(t, err)
	second, err := svc.GenerateTutorial(ctx, "Go")
	require.NoError(t, err)

	assert.Equal(t, first.Data, second.Data)
}

func TestStudyService_UpstreamErrorPassesThrough(t *testing.T) {
	ctx := context.Background()
	cause := errors.New("connection refused")
	upstream := domain.NewLLMServiceError(cause)

	gen := new(MockStudyContentGenerator)
	gen.On("GenerateSummary", ctx, "Go").Return("", upstream).Once()

	svc := NewStudyService(gen, fixedOptions(), zap.NewNop())
	artifact, err := svc.GenerateSummary(ctx, "Go")

	assert.Nil(t, artifact)
	var domainErr *domain.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, domain.CodeLLMServiceError, domainErr.Code)
	assert.ErrorIs(t, err, cause)
}

func TestStudyService_RenderFailure(t *testing.T) {
	ctx := context.Background()
	gen := new(MockStudyContentGenerator)
	gen.On("GenerateTutorial", ctx, "Go").Return("Intro:\nbody", nil).Once()

	svc := NewStudyService(gen, fixedOptions(), zap.NewNop()).(*studyService)
	diskFull := errors.New("no space left on device")
	svc.assemblers = map[domain.DocumentKind]assembleFunc{
		domain.KindTutorial: func(string, string, document.Options) (*document.Document, error) {
			return nil, diskFull
		},
	}

	artifact, err := svc.GenerateTutorial(ctx, "Go")

	assert.Nil(t, artifact, "no partial artifact")
	var domainErr *domain.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, domain.CodeRenderFailure, domainErr.Code)
	assert.Equal(t, "tutorial_cleaned", domainErr.Context["kind"])
	assert.ErrorIs(t, err, diskFull)
}

func TestStudyService_GetTopics(t *testing.T) {
	svc := NewStudyService(new(MockStudyContentGenerator), fixedOptions(), zap.NewNop())

	topics := svc.GetTopics()
	assert.Len(t, topics, 9)
	assert.Equal(t, "Linear Regression", topics[0])
	assert.Equal(t, "Cloud Computing", topics[8])

	topics[0] = "mutated"
	assert.Equal(t, "Linear Regression", svc.GetTopics()[0], "callers get a copy")
}
