package middleware

import (
	"errors"
	"net/http"

	"exam-prep/internal/domain"
	"exam-prep/internal/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ErrorResponse represents the standard error response structure
type ErrorResponse struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Status  int                    `json:"status"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// ValidationErrorResponse represents validation error response
type ValidationErrorResponse struct {
	Code    string                   `json:"code"`
	Message string                   `json:"message"`
	Status  int                      `json:"status"`
	Errors  []domain.ValidationError `json:"errors"`
}

// ErrorHandler turns errors returned by handlers into JSON error bodies.
// Validation lists keep their per-field entries; everything else is reduced
// to an ErrorResponse.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		log := logger.Get().With(
			zap.String("request_id", RequestIDFromContext(c)),
			zap.String("path", c.Path()),
		)

		var validationErrs domain.ValidationErrors
		if errors.As(err, &validationErrs) {
			log.Warn("Request rejected", zap.Int("error_count", len(validationErrs)))
			return c.Status(http.StatusBadRequest).JSON(ValidationErrorResponse{
				Code:    string(domain.CodeValidation),
				Message: "Request validation failed",
				Status:  http.StatusBadRequest,
				Errors:  validationErrs,
			})
		}

		resp := errorResponse(err)
		logAtStatus(log, resp, err)
		return c.Status(resp.Status).JSON(resp)
	}
}

// errorResponse classifies err. Unknown errors never leak their message.
func errorResponse(err error) ErrorResponse {
	var domainErr *domain.DomainError
	if errors.As(err, &domainErr) {
		resp := ErrorResponse{
			Code:    string(domainErr.Code),
			Message: domainErr.Message,
			Status:  mapDomainErrorToHTTPStatus(domainErr),
		}
		if len(domainErr.Context) > 0 {
			resp.Details = domainErr.Context
		}
		return resp
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return ErrorResponse{Code: "HTTP_ERROR", Message: fiberErr.Message, Status: fiberErr.Code}
	}

	return ErrorResponse{
		Code:    string(domain.CodeInternal),
		Message: "Internal server error",
		Status:  http.StatusInternalServerError,
	}
}

// logAtStatus logs server-side failures as errors and client mistakes as
// warnings.
func logAtStatus(log *zap.Logger, resp ErrorResponse, err error) {
	fields := []zap.Field{
		zap.String("code", resp.Code),
		zap.Int("status", resp.Status),
		zap.Error(err),
	}
	if resp.Status >= http.StatusInternalServerError {
		log.Error("Request failed", fields...)
		return
	}
	log.Warn("Request failed", fields...)
}

// mapDomainErrorToHTTPStatus maps domain errors to HTTP status codes
func mapDomainErrorToHTTPStatus(err *domain.DomainError) int {
	switch err.Code {
	case domain.CodeInvalidInput, domain.CodeValidation, domain.CodeMissingField,
		domain.CodeInvalidFormat, domain.CodeOutOfRange:
		return http.StatusBadRequest
	case domain.CodeLLMServiceError:
		return http.StatusServiceUnavailable
	case domain.CodeRenderFailure, domain.CodeInternal:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
