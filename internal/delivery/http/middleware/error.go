package middleware

import (
	"errors"
	"log"

	"skill-track/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

// AppError carries an HTTP status alongside the cause so a handler can bail
// with a typed error and let the middleware shape the response.
type AppError struct {
	StatusCode int
	Message    string
	Data       any
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

func NewAppError(statusCode int, message string, data any, cause error) *AppError {
	return &AppError{StatusCode: statusCode, Message: message, Data: data, Cause: cause}
}

type ErrorMiddleware struct{}

func NewErrorMiddleware() *ErrorMiddleware {
	return &ErrorMiddleware{}
}

// Middleware recovers panics and converts any error escaping a handler into
// the response envelope. Server-side detail never reaches the client: every
// 5xx collapses to a generic internal error body.
func (m *ErrorMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("panic recovered: %v", r)
				err = internalError(c)
			}
		}()

		err = c.Next()
		if err == nil {
			return nil
		}

		var appErr *AppError
		if errors.As(err, &appErr) {
			return renderAppError(c, appErr)
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return renderFiberError(c, fiberErr)
		}

		return internalError(c)
	}
}

func renderAppError(c fiber.Ctx, e *AppError) error {
	if e.StatusCode <= 0 || e.StatusCode >= 500 {
		return internalError(c)
	}
	return response.Error(c, e.StatusCode, e.Message, e.Data)
}

func renderFiberError(c fiber.Ctx, e *fiber.Error) error {
	if e.Code <= 0 || e.Code >= 500 {
		return internalError(c)
	}
	return response.Error(c, e.Code, e.Message, nil)
}

func internalError(c fiber.Ctx) error {
	return response.Error(c, fiber.StatusInternalServerError, response.MessageInternalServerError, nil)
}
