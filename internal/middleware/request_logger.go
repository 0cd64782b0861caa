package middleware

import (
	"time"

	"exam-prep/internal/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// RequestLogger is a middleware that logs HTTP requests. Errors from the
// chain are handed to the app's error handler first so the logged status is
// the one the client receives.
func RequestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		path := c.Path()
		method := c.Method()

		// Process request
		if err := c.Next(); err != nil {
			if handlerErr := c.App().Config().ErrorHandler(c, err); handlerErr != nil {
				logger.Get().Error("Error handler failed",
					zap.String("request_id", RequestIDFromContext(c)),
					zap.NamedError("cause", err),
					zap.Error(handlerErr))
				if sendErr := c.SendStatus(fiber.StatusInternalServerError); sendErr != nil {
					logger.Get().Error("Failed to send fallback status",
						zap.String("request_id", RequestIDFromContext(c)),
						zap.Error(sendErr))
				}
			}
		}

		logger.Get().Info("HTTP Request",
			zap.String("request_id", RequestIDFromContext(c)),
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", c.Response().StatusCode()),
			zap.Duration("duration", time.Since(start)),
			zap.String("ip", c.IP()),
			zap.String("user_agent", c.Get(fiber.HeaderUserAgent)),
		)

		return nil
	}
}
