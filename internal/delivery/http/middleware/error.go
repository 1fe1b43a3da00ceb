package middleware

import (
	"errors"
	"log"

	"clmi/internal/marketdata"
	"clmi/internal/pkg/response"
	"clmi/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type AppError struct {
	StatusCode int
	Message    string
	Cause      error
}

func (e *AppError) Error() string {
	if e == nil {
		return ""
	}
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

func NewAppError(statusCode int, message string, cause error) *AppError {
	return &AppError{StatusCode: statusCode, Message: message, Cause: cause}
}

type ErrorMiddleware struct {
	logger *log.Logger
}

func NewErrorMiddleware(logger *log.Logger) *ErrorMiddleware {
	if logger == nil {
		logger = log.Default()
	}
	return &ErrorMiddleware{logger: logger}
}

func (m *ErrorMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				m.logger.Printf("HTTP panic recovered | path=%s panic=%v", c.Path(), r)
				err = response.Fail(c, fiber.StatusInternalServerError, "")
			}
		}()

		err = c.Next()
		if err == nil {
			return nil
		}

		status, msg := normalizeError(err)
		if status >= 500 {
			m.logger.Printf("HTTP error | path=%s status=%d error=%v", c.Path(), status, err)
		}
		return response.Fail(c, status, msg)
	}
}

// normalizeError maps domain sentinels and explicit AppErrors onto status
// codes. Upstream availability problems surface as 503 with the same
// message the dashboard shows users; malformed upstream payloads as 502.
func normalizeError(err error) (int, string) {
	if err == nil {
		return fiber.StatusInternalServerError, ""
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		status := appErr.StatusCode
		if status <= 0 || status >= 500 {
			return fiber.StatusInternalServerError, ""
		}
		return status, appErr.Message
	}

	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return fiber.StatusBadRequest, err.Error()
	case errors.Is(err, marketdata.ErrNotFound):
		return fiber.StatusNotFound, ""
	case errors.Is(err, marketdata.ErrUnreachable):
		return fiber.StatusServiceUnavailable, response.MessageServiceUnavailable
	case errors.Is(err, marketdata.ErrServer), errors.Is(err, marketdata.ErrMalformed):
		return fiber.StatusBadGateway, response.MessageBadGateway
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		status := fiberErr.Code
		if status <= 0 || status >= 500 {
			return fiber.StatusInternalServerError, ""
		}
		return status, fiberErr.Message
	}

	return fiber.StatusInternalServerError, ""
}
