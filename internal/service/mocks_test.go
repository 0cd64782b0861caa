package service

import (
	"context"

	"exam-prep/internal/domain"

	"github.com/stretchr/testify/mock"
)

// --- MockStudyContentGenerator ---
type MockStudyContentGenerator struct {
	mock.Mock
}

func (m *MockStudyContentGenerator) GenerateMCQs(ctx context.Context, topic string, numQuestions int) (string, error) {
	args := m.Called(ctx, topic, numQuestions)
	return args.String(0), args.Error(1)
}

func (m *MockStudyContentGenerator) GenerateSummary(ctx context.Context, topic string) (string, error) {
	args := m.Called(ctx, topic)
	return args.String(0), args.Error(1)
}

func (m *MockStudyContentGenerator) GenerateTutorial(ctx context.Context, topic string) (string, error) {
	args := m.Called(ctx, topic)
	return args.String(0), args.Error(1)
}

// --- MockStudyService ---
type MockStudyService struct {
	mock.Mock
}

func (m *MockStudyService) GenerateMCQs(ctx context.Context, topic string, count int) (*domain.Artifact, error) {
	args := m.Called(ctx, topic, count)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Artifact), args.Error(1)
}

func (m *MockStudyService) GenerateSummary(ctx context.Context, topic string) (*domain.Artifact, error) {
	args := m.Called(ctx, topic)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Artifact), args.Error(1)
}

func (m *MockStudyService) GenerateTutorial(ctx context.Context, topic string) (*domain.Artifact, error) {
	args := m.Called(ctx, topic)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Artifact), args.Error(1)
}

func (m *MockStudyService) GetTopics() []string {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]string)
}
