package errors

import "fmt"

// AppError is the error shape shared by the HTTP layer and the use cases.
type AppError struct {
	Code       string         `json:"code"`
	Message    string         `json:"message"`
	Details    map[string]any `json:"details,omitempty"`
	StatusCode int            `json:"-"`
}

func (e *AppError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// New creates an AppError.
func New(code, message string, statusCode int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
		Details:    make(map[string]any),
	}
}

// WithDetails attaches structured details and returns the error.
func (e *AppError) WithDetails(details map[string]any) *AppError {
	e.Details = details
	return e
}
