package dto

import "net/http"

// Response is the envelope every endpoint answers with.
// Code and Errors are only set on failure.
type Response struct {
	Success    bool               `json:"success"`
	Data       any                `json:"data,omitempty"`
	Message    string             `json:"message"`
	StatusCode int                `json:"statusCode"`
	Code       string             `json:"code,omitempty"`
	RequestID  string             `json:"requestId,omitempty"`
	Errors     []ValidationDetail `json:"errors,omitempty"`
}

// ValidationDetail describes one invalid request field
type ValidationDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// NewSuccessResponse creates a 200 success response
func NewSuccessResponse(data any, message string) Response {
	if message == "" {
		message = "OK"
	}
	return Response{
		Success:    true,
		Data:       data,
		Message:    message,
		StatusCode: http.StatusOK,
	}
}

// NewErrorResponse creates an error response, deriving the status from code
func NewErrorResponse(code, message, requestID string) Response {
	return Response{
		Success:    false,
		Message:    message,
		StatusCode: GetHTTPStatus(code),
		Code:       code,
		RequestID:  requestID,
	}
}

// NewValidationErrorResponse creates a 400 response listing invalid fields
func NewValidationErrorResponse(message, requestID string, details []ValidationDetail) Response {
	resp := NewErrorResponse(ErrCodeValidation, message, requestID)
	resp.Errors = details
	return resp
}
