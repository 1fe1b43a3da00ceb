package middleware

import (
	"fmt"
	"testing"

	"clmi/internal/marketdata"
	"clmi/internal/pkg/response"
	"clmi/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

func TestNormalizeErrorMapsDomainSentinels(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"invalid input", fmt.Errorf("per_page: %w", usecase.ErrInvalidInput), fiber.StatusBadRequest},
		{"upstream unreachable", fmt.Errorf("fetch jobs: %w", marketdata.ErrUnreachable), fiber.StatusServiceUnavailable},
		{"upstream 5xx", fmt.Errorf("fetch jobs: %w", marketdata.ErrServer), fiber.StatusBadGateway},
		{"malformed payload", fmt.Errorf("decode: %w", marketdata.ErrMalformed), fiber.StatusBadGateway},
		{"not found", fmt.Errorf("job: %w", marketdata.ErrNotFound), fiber.StatusNotFound},
		{"unknown", fmt.Errorf("boom"), fiber.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, _ := normalizeError(tc.err)
			if status != tc.wantStatus {
				t.Errorf("status = %d, want %d", status, tc.wantStatus)
			}
		})
	}
}

func TestNormalizeErrorUnreachableCarriesUserMessage(t *testing.T) {
	_, msg := normalizeError(marketdata.ErrUnreachable)
	if msg != response.MessageServiceUnavailable {
		t.Errorf("message = %q", msg)
	}
}

func TestNormalizeErrorNeverLeaksInternalAppErrors(t *testing.T) {
	status, msg := normalizeError(NewAppError(fiber.StatusInternalServerError, "db exploded", nil))
	if status != fiber.StatusInternalServerError {
		t.Errorf("status = %d", status)
	}
	if msg != "" {
		t.Errorf("5xx AppError should fall back to the generic message, got %q", msg)
	}
}

func TestNormalizeErrorKeepsClientAppErrors(t *testing.T) {
	status, msg := normalizeError(NewAppError(fiber.StatusUnauthorized, "Token expired", nil))
	if status != fiber.StatusUnauthorized || msg != "Token expired" {
		t.Errorf("got %d %q", status, msg)
	}
}
