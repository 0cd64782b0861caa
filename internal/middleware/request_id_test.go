package middleware_test

import (
	"errors"
	"net/http/httptest"
	"testing"

	"exam-prep/internal/logger"
	"exam-prep/internal/middleware"
	"exam-prep/internal/util"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestRequestID(t *testing.T) {
	var seen string
	app := fiber.New()
	app.Use(middleware.RequestID())
	app.Get("/", func(c *fiber.Ctx) error {
		seen = middleware.RequestIDFromContext(c)
		return c.SendString("ok")
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)

	id := resp.Header.Get(middleware.RequestIDHeader)
	assert.True(t, util.IsULID(id))
	assert.Equal(t, id, seen)
}

func TestRequestID_KeepsValidClientID(t *testing.T) {
	app := fiber.New()
	app.Use(middleware.RequestID())
	app.Get("/", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusNoContent) })

	clientID := util.NewULID()
	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set(middleware.RequestIDHeader, clientID)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, clientID, resp.Header.Get(middleware.RequestIDHeader))

	req = httptest.NewRequest("GET", "/", nil)
	req.Header.Set(middleware.RequestIDHeader, "<script>")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.NotEqual(t, "<script>", resp.Header.Get(middleware.RequestIDHeader))
}

func TestRequestLogger_AppliesErrorHandler(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler()})
	app.Use(middleware.RequestID())
	app.Use(middleware.RequestLogger())
	app.Get("/", func(c *fiber.Ctx) error { return errors.New("boom") })

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get(middleware.RequestIDHeader))
}

func TestRequestLogger_ErrorHandlerFailure(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	t.Cleanup(logger.Replace(zap.New(core)))

	app := fiber.New(fiber.Config{ErrorHandler: func(c *fiber.Ctx, err error) error {
		return errors.New("encoder broke")
	}})
	app.Use(middleware.RequestLogger())
	app.Get("/", func(c *fiber.Ctx) error { return errors.New("boom") })

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

	failures := logs.FilterMessage("Error handler failed").All()
	require.Len(t, failures, 1)
	assert.Equal(t, zapcore.ErrorLevel, failures[0].Level)
	assert.Equal(t, "encoder broke", failures[0].ContextMap()["error"])
	assert.Equal(t, 1, logs.FilterMessage("HTTP Request").Len())
}
