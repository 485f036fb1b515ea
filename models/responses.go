package models

// ErrorResponse is the structured error body returned by the gateway for
// every rejected request.
type ErrorResponse struct {
	// Error is a human-readable description of what went wrong.
	Error string `json:"error"`

	// Code mirrors the HTTP status code of the response so clients logging
	// bodies alone can still classify failures.
	Code int `json:"code"`
}
