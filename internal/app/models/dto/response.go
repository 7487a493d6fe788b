package dto

import "time"

// APIResponse provides the base structured API response envelope.
type APIResponse struct {
	Success   bool         `json:"success" example:"true"`
	Message   string       `json:"message,omitempty" example:"Operation completed successfully"`
	Data      interface{}  `json:"data,omitempty"`
	Error     *ErrorDetail `json:"error,omitempty"`
	Timestamp time.Time    `json:"timestamp" example:"2026-03-14T12:01:05.123Z"`
}

// NewSuccessResponse creates a standard success envelope around data
func NewSuccessResponse(data interface{}, message string) APIResponse {
	return APIResponse{
		Success:   true,
		Message:   message,
		Data:      data,
		Timestamp: time.Now(),
	}
}

// NewCachedResponse wraps data served from the query cache. When the most
// recent refresh failed the stale payload is still returned, and the error
// detail tells the client the data may be out of date and a retry is
// worthwhile.
func NewCachedResponse(data interface{}, refreshErr error) APIResponse {
	resp := APIResponse{
		Success:   true,
		Data:      data,
		Timestamp: time.Now(),
	}
	if refreshErr != nil {
		resp.Error = NewErrorDetail(ErrorCodeStaleData, "Serving cached data; the last refresh failed").
			WithSeverity(ErrorSeverityWarning).
			WithDetails(refreshErr.Error())
	}
	return resp
}

// SuccessResponse represents a bare success acknowledgement
type SuccessResponse struct {
	Message string `json:"message"`
}
