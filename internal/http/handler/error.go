package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"biztime/internal/http/middleware"
)

// errorPayload defines the standardized error response body.
type errorPayload struct {
	RequestID string        `json:"request_id"`
	Error     errorEnvelope `json:"error"`
}

type errorEnvelope struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
}

// requestIDFromCtx extracts request_id previously stored by middleware.RequestID.
func requestIDFromCtx(c *fiber.Ctx) string {
	if v := c.Locals(middleware.RequestIDLocalKey); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// writeError writes the standardized JSON error response. The status code is
// echoed inside the body so clients get it without inspecting headers.
func writeError(c *fiber.Ctx, status int, message string) error {
	res := errorPayload{
		RequestID: requestIDFromCtx(c),
		Error: errorEnvelope{
			Message: message,
			Status:  status,
		},
	}
	return c.Status(status).JSON(res)
}

// ErrorHandler returns the Fiber global error handler. It is the single
// boundary translator: handlers raise *fiber.Error for expected conditions
// (not found, invalid input, conflict) with their intended status; any other
// error surfaces as a 500 carrying the underlying message.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		var e *fiber.Error
		if errors.As(err, &e) {
			status = e.Code
		}
		return writeError(c, status, err.Error())
	}
}
