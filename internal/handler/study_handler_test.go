package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"exam-prep/internal/domain"
	"exam-prep/internal/dto"
	"exam-prep/internal/handler"
	"exam-prep/internal/middleware"
	"exam-prep/internal/preview"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Manual Mocks ---

// MockStudyService
type MockStudyService struct {
	GenerateMCQsFunc     func(ctx context.Context, topic string, count int) (*domain.Artifact, error)
	GenerateSummaryFunc  func(ctx context.Context, topic string) (*domain.Artifact, error)
	GenerateTutorialFunc func(ctx context.Context, topic string) (*domain.Artifact, error)
	GetTopicsFunc        func() []string
}

func (m *MockStudyService) GenerateMCQs(ctx context.Context, topic string, count int) (*domain.Artifact, error) {
	if m.GenerateMCQsFunc != nil {
		return m.GenerateMCQsFunc(ctx, topic, count)
	}
	panic("MockStudyService.GenerateMCQsFunc not implemented")
}
func (m *MockStudyService) GenerateSummary(ctx context.Context, topic string) (*domain.Artifact, error) {
	if m.GenerateSummaryFunc != nil {
		return m.GenerateSummaryFunc(ctx, topic)
	}
	panic("MockStudyService.GenerateSummaryFunc not implemented")
}
func (m *MockStudyService) GenerateTutorial(ctx context.Context, topic string) (*domain.Artifact, error) {
	if m.GenerateTutorialFunc != nil {
		return m.GenerateTutorialFunc(ctx, topic)
	}
	panic("MockStudyService.GenerateTutorialFunc not implemented")
}
func (m *MockStudyService) GetTopics() []string {
	if m.GetTopicsFunc != nil {
		return m.GetTopicsFunc()
	}
	panic("MockStudyService.GetTopicsFunc not implemented")
}

var fakePDF = []byte("%PDF-1.3 fake")

func fakeArtifact(kind domain.DocumentKind, topic string) *domain.Artifact {
	return &domain.Artifact{
		Kind:        kind,
		Topic:       topic,
		FileName:    domain.FileName(topic, kind),
		ContentType: domain.PDFContentType,
		Text:        "DEFINITIONS:\n- **Stack**: LIFO",
		Data:        fakePDF,
		Pages:       1,
	}
}

func setupApp(svc *MockStudyService) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler()})
	app.Use(middleware.RequestID())
	h := handler.NewStudyHandler(svc, preview.NewRenderer(preview.DefaultLimit))
	h.RegisterRoutes(app.Group("/api"), middleware.NewValidationMiddleware())
	app.Get("/healthz", h.Health)
	return app
}

func postJSON(t *testing.T, app *fiber.App, target, body string) (int, http.Header, []byte) {
	t.Helper()
	req := httptest.NewRequest("POST", target, strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, resp.Header, data
}

func TestStudyHandler_GetTopics(t *testing.T) {
	app := setupApp(&MockStudyService{
		GetTopicsFunc: func() []string { return domain.CommonTopics },
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/api/topics", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body dto.TopicsResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, domain.CommonTopics, body.Topics)
}

func TestStudyHandler_GenerateMCQsReturnsPDF(t *testing.T) {
	var gotTopic string
	var gotCount int
	app := setupApp(&MockStudyService{
		GenerateMCQsFunc: func(ctx context.Context, topic string, count int) (*domain.Artifact, error) {
			gotTopic, gotCount = topic, count
			return fakeArtifact(domain.KindMCQs, topic), nil
		},
	})

	status, header, body := postJSON(t, app, "/api/mcqs", `{"topic":"Linear Regression","count":2}`)

	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "Linear Regression", gotTopic)
	assert.Equal(t, 2, gotCount)
	assert.Equal(t, domain.PDFContentType, header.Get(fiber.HeaderContentType))
	assert.Contains(t, header.Get(fiber.HeaderContentDisposition), `filename="Linear Regression_mcqs.pdf"`)
	assert.NotEmpty(t, header.Get(middleware.RequestIDHeader))
	assert.Equal(t, fakePDF, body)
}

func TestStudyHandler_GenerateSummaryJSON(t *testing.T) {
	app := setupApp(&MockStudyService{
		GenerateSummaryFunc: func(ctx context.Context, topic string) (*domain.Artifact, error) {
			return fakeArtifact(domain.KindSummary, topic), nil
		},
	})

	status, header, data := postJSON(t, app, "/api/summary?format=json", `{"topic":"Operating Systems"}`)
	require.Equal(t, fiber.StatusOK, status)

	var body dto.DocumentResponse
	require.NoError(t, json.Unmarshal(data, &body))
	assert.Equal(t, header.Get(middleware.RequestIDHeader), body.RequestID)
	assert.Equal(t, "summary", body.Kind)
	assert.Equal(t, "Operating Systems_summary.pdf", body.FileName)
	assert.Equal(t, fakePDF, body.PDF, "pdf bytes round-trip through base64")
	assert.Contains(t, body.PreviewHTML, "<strong>Stack</strong>")
}

func TestStudyHandler_GenerateTutorial(t *testing.T) {
	app := setupApp(&MockStudyService{
		GenerateTutorialFunc: func(ctx context.Context, topic string) (*domain.Artifact, error) {
			return fakeArtifact(domain.KindTutorial, topic), nil
		},
	})

	status, header, _ := postJSON(t, app, "/api/tutorial", `{"topic":"Go"}`)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, header.Get(fiber.HeaderContentDisposition), "Go_tutorial_cleaned.pdf")
}

func TestStudyHandler_DownloadFileName(t *testing.T) {
	app := setupApp(&MockStudyService{
		GenerateTutorialFunc: func(ctx context.Context, topic string) (*domain.Artifact, error) {
			return fakeArtifact(domain.KindTutorial, topic), nil
		},
	})

	tests := []struct {
		name     string
		topic    string
		expected string
	}{
		{name: "spaces kept", topic: "OOPs in Java", expected: "OOPs in Java_tutorial_cleaned.pdf"},
		{name: "plus sign kept", topic: "C++ Basics", expected: "C++ Basics_tutorial_cleaned.pdf"},
		{name: "non-ascii topic", topic: "Théorie des Graphes", expected: "Théorie des Graphes_tutorial_cleaned.pdf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, err := json.Marshal(map[string]string{"topic": tt.topic})
			require.NoError(t, err)

			status, header, _ := postJSON(t, app, "/api/tutorial", string(body))
			require.Equal(t, fiber.StatusOK, status)

			disposition, params, err := mime.ParseMediaType(header.Get(fiber.HeaderContentDisposition))
			require.NoError(t, err)
			assert.Equal(t, "attachment", disposition)
			assert.Equal(t, tt.expected, params["filename"])
		})
	}
}

func TestStudyHandler_Errors(t *testing.T) {
	tests := []struct {
		name           string
		target         string
		body           string
		svc            *MockStudyService
		expectedStatus int
		expectedCode   string
	}{
		{
			name:           "upstream failure",
			target:         "/api/summary",
			body:           `{"topic":"Go"}`,
			svc:            &MockStudyService{GenerateSummaryFunc: func(context.Context, string) (*domain.Artifact, error) { return nil, domain.NewLLMServiceError(errors.New("timeout")) }},
			expectedStatus: fiber.StatusServiceUnavailable,
			expectedCode:   "LLM_SERVICE_ERROR",
		},
		{
			name:           "render failure",
			target:         "/api/tutorial",
			body:           `{"topic":"Go"}`,
			svc:            &MockStudyService{GenerateTutorialFunc: func(context.Context, string) (*domain.Artifact, error) { return nil, domain.NewRenderFailureError(domain.KindTutorial, errors.New("disk")) }},
			expectedStatus: fiber.StatusInternalServerError,
			expectedCode:   "RENDER_FAILURE",
		},
		{
			name:           "count out of range never reaches the service",
			target:         "/api/mcqs",
			body:           `{"topic":"Go","count":99}`,
			svc:            &MockStudyService{},
			expectedStatus: fiber.StatusBadRequest,
			expectedCode:   "VALIDATION_ERROR",
		},
		{
			name:           "missing topic",
			target:         "/api/tutorial",
			body:           `{}`,
			svc:            &MockStudyService{},
			expectedStatus: fiber.StatusBadRequest,
			expectedCode:   "VALIDATION_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, _, data := postJSON(t, setupApp(tt.svc), tt.target, tt.body)
			assert.Equal(t, tt.expectedStatus, status)

			var body map[string]interface{}
			require.NoError(t, json.Unmarshal(data, &body))
			assert.Equal(t, tt.expectedCode, body["code"])
		})
	}
}

func TestStudyHandler_Health(t *testing.T) {
	resp, err := setupApp(&MockStudyService{}).Test(httptest.NewRequest("GET", "/healthz", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
