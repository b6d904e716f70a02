package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	app_errors "github.com/anurag-deore/ai-monitoring-analytics/internal/errors"
	"github.com/anurag-deore/ai-monitoring-analytics/internal/workspace"
)

// This file contains shared DTOs (Data Transfer Objects) for API requests and
// responses, and the helpers that write them.

// ErrorResponse defines the standard JSON structure for error messages.
type ErrorResponse struct {
	Error string `json:"error"`
}

// StatusResponse is returned by operations that have nothing else to report.
type StatusResponse struct {
	Status string `json:"status"`
}

// SubmitQueryRequest is the body of POST /queries.
type SubmitQueryRequest struct {
	Query string `json:"query" validate:"required,max=4000" example:"How many payments failed today?"`
}

// SubmitQueryResponse identifies the message pair created for a query. The bot
// message is pending until the answer arrives on the events feed.
type SubmitQueryResponse struct {
	UserMessageID string `json:"user_message_id"`
	BotMessageID  string `json:"bot_message_id"`
	SessionID     string `json:"session_id,omitempty"`
}

// UpdateTitleRequest is the body of PUT /chats/{chatID}/title.
type UpdateTitleRequest struct {
	Title string `json:"title" validate:"required,max=200" example:"Failed payments"`
}

// ModalSubmitResponse reports the outcome of a modal submit.
type ModalSubmitResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// respondWithError maps business-layer errors onto HTTP status codes and writes
// a standard JSON error response.
func respondWithError(w http.ResponseWriter, err error) {
	var statusCode int
	var message string

	switch {
	case errors.Is(err, app_errors.ErrNotFound):
		statusCode = http.StatusNotFound
		message = "The requested resource was not found."
	case errors.Is(err, app_errors.ErrValidation):
		statusCode = http.StatusBadRequest
		message = err.Error()
	case errors.Is(err, app_errors.ErrConflict):
		statusCode = http.StatusConflict
		message = err.Error()
	case errors.Is(err, app_errors.ErrTransport):
		statusCode = http.StatusBadGateway
		message = "The analytics backend could not be reached."
	case errors.Is(err, app_errors.ErrRejected):
		statusCode = http.StatusBadGateway
		message = app_errors.RejectionMessage(err)
		if message == "" {
			message = "The analytics backend rejected the request."
		}
	case errors.Is(err, workspace.ErrClosed):
		statusCode = http.StatusServiceUnavailable
		message = "The server is shutting down."
	default:
		statusCode = http.StatusInternalServerError
		message = "An unexpected internal server error occurred."
	}

	slog.Warn("Responding with error", "status_code", statusCode, "client_message", message, "internal_error", err)

	respondWithJSON(w, statusCode, ErrorResponse{Error: message})
}

// respondWithJSON marshals payload and writes it with the given status code.
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		slog.Error("Failed to marshal JSON response", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if _, err := w.Write(response); err != nil {
		slog.Error("Failed to write JSON response", "error", err)
	}
}
