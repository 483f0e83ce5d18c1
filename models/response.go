package models

// ErrorResponse is the error envelope for every non-2xx reply. RetryAfter
// is set only on 503 store-unavailable responses so clients can tell a
// connectivity failure apart from a 404.
type ErrorResponse struct {
	Message    string       `json:"message"`
	Details    []FieldError `json:"details,omitempty"`
	RetryAfter int          `json:"retry_after,omitempty"`
}

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}
