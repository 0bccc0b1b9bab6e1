package respond

import (
	"encoding/json"
	"net/http"
)

// Envelope is the standard API response wrapper used across handlers.
type Envelope struct {
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

// ErrorBody is written for every failed request.
type ErrorBody struct {
	Error string `json:"error"`
}

// Pagination describes the window a list response covers.
type Pagination struct {
	Total   int  `json:"total"`
	Limit   int  `json:"limit"`
	Offset  int  `json:"offset"`
	HasMore bool `json:"hasMore"`
}

// NewPagination computes HasMore from the window and the total row count.
func NewPagination(total, limit, offset int) Pagination {
	return Pagination{Total: total, Limit: limit, Offset: offset, HasMore: offset+limit < total}
}

// JSON writes a success or informational response using the common envelope.
func JSON(w http.ResponseWriter, status int, message string, data any) {
	Raw(w, status, Envelope{Data: data, Message: message})
}

// List writes {"data": {"<key>": items, "pagination": {...}}}.
func List(w http.ResponseWriter, key string, items any, page Pagination) {
	JSON(w, http.StatusOK, "", map[string]any{key: items, "pagination": page})
}

// Error writes an error response.
func Error(w http.ResponseWriter, status int, message string) {
	Raw(w, status, ErrorBody{Error: message})
}

// Raw writes payload as JSON without the envelope. The status line is already
// sent when encoding runs, so an encode failure only shows up as a short body.
func Raw(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
