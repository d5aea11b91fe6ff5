// Package response holds the JSON shapes the HTTP layer writes.
//
// Success bodies are the bare DTOs the public contract promises; only error
// bodies use an envelope, so clients can branch on error.code.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ErrorInfo contains detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`              // Business error code, e.g., "POST_NOT_FOUND"
	Message string `json:"message"`           // User-friendly error message
	Details string `json:"details,omitempty"` // Detailed error information (optional)
}

// ErrorResponse defines the structure for error responses
type ErrorResponse struct {
	Error *ErrorInfo `json:"error"`
}

// Message is the body for operations that confirm an action without data.
type Message struct {
	Message string `json:"message"`
}

// Success writes the payload as-is with the given status code.
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, data)
}

// Error writes an error envelope.
func Error(c echo.Context, statusCode int, errorCode, message, details string) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}

	return c.JSON(statusCode, ErrorResponse{
		Error: &ErrorInfo{
			Code:    errorCode,
			Message: message,
			Details: details,
		},
	})
}

// BindingError reports a malformed request body.
func BindingError(c echo.Context, errorCode, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, "")
}

// ValidationError reports a request that bound but failed validation.
func ValidationError(c echo.Context, details string) error {
	return Error(c, http.StatusBadRequest, "VALIDATION_FAILED", "Request validation failed", details)
}
