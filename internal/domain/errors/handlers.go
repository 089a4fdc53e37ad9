package errors

// ErrorInfo contains detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`              // Business error code, e.g., "USER_ALREADY_EXISTS"
	Details any    `json:"details,omitempty"` // Rule violations or other details (optional)
}

// Response is the envelope every error is rendered with.
type Response struct {
	Success bool       `json:"success"`
	Code    int        `json:"code"`
	Message string     `json:"message"`
	Error   *ErrorInfo `json:"error,omitempty"`
}
