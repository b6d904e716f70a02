package api

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	app_errors "github.com/anurag-deore/ai-monitoring-analytics/internal/errors"
	"github.com/anurag-deore/ai-monitoring-analytics/internal/interfaces"
	"github.com/anurag-deore/ai-monitoring-analytics/internal/workspace"
)

// SessionHandler serves the conversation, the chat directory and the events feed.
type SessionHandler struct {
	ws interfaces.Workspace
}

func NewSessionHandler(ws interfaces.Workspace) *SessionHandler {
	return &SessionHandler{ws: ws}
}

// GetSession godoc
// @Summary      Get the current session
// @Description  Returns the session id, the conversation with table views, the chat directory and the modal state.
// @Tags         Session
// @Produce      json
// @Success      200  {object}  workspace.Snapshot
// @Router       /v1/session [get]
func (h *SessionHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, h.ws.Snapshot())
}

// SubmitQuery godoc
// @Summary      Ask a question
// @Description  Appends the question and a pending answer to the conversation and sends it to the analytics backend. The answer arrives on the events feed.
// @Tags         Session
// @Accept       json
// @Produce      json
// @Param        query  body      SubmitQueryRequest  true  "Question"
// @Success      202    {object}  SubmitQueryResponse
// @Success      204    "Blank question, nothing submitted"
// @Failure      400    {object}  ErrorResponse
// @Router       /v1/queries [post]
func (h *SessionHandler) SubmitQuery(w http.ResponseWriter, r *http.Request) {
	var req SubmitQueryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, fmt.Errorf("%w: invalid request payload", app_errors.ErrValidation))
		return
	}
	// A blank question is ignored, not rejected.
	if blank(req.Query) {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	if err := validateRequest(req); err != nil {
		respondWithError(w, err)
		return
	}

	sub := h.ws.Ask(r.Context(), req.Query)
	if sub == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	respondWithJSON(w, http.StatusAccepted, SubmitQueryResponse{
		UserMessageID: sub.UserID,
		BotMessageID:  sub.BotID,
		SessionID:     h.ws.SessionID(),
	})
}

// OpenSession godoc
// @Summary      Navigate to a session
// @Description  Makes the given chat the current session and loads its transcript.
// @Tags         Session
// @Produce      json
// @Param        chatID  path      string  true  "Chat ID"
// @Success      200     {object}  workspace.Snapshot
// @Failure      502     {object}  ErrorResponse
// @Router       /v1/session/{chatID} [put]
func (h *SessionHandler) OpenSession(w http.ResponseWriter, r *http.Request) {
	chatID := chi.URLParam(r, "chatID")
	if blank(chatID) {
		respondWithError(w, fmt.Errorf("%w: chat id is required", app_errors.ErrValidation))
		return
	}
	if err := h.ws.Open(r.Context(), chatID); err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, h.ws.Snapshot())
}

// NewSession godoc
// @Summary      Start a new chat
// @Tags         Session
// @Produce      json
// @Success      200  {object}  workspace.Snapshot
// @Router       /v1/session [delete]
func (h *SessionHandler) NewSession(w http.ResponseWriter, r *http.Request) {
	h.ws.NewChat()
	respondWithJSON(w, http.StatusOK, h.ws.Snapshot())
}

// ListChats godoc
// @Summary      List chats
// @Description  Refreshes the chat directory from the analytics backend, newest first.
// @Tags         Chats
// @Produce      json
// @Success      200  {array}   model.ChatEntry
// @Failure      502  {object}  ErrorResponse
// @Router       /v1/chats [get]
func (h *SessionHandler) ListChats(w http.ResponseWriter, r *http.Request) {
	if err := h.ws.RefreshChats(r.Context()); err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, h.ws.Chats())
}

// DeleteChat godoc
// @Summary      Delete a chat
// @Description  Deletes the chat on the analytics backend and removes it from the directory once acknowledged.
// @Tags         Chats
// @Produce      json
// @Param        chatID  path      string  true  "Chat ID"
// @Success      200     {object}  StatusResponse
// @Failure      502     {object}  ErrorResponse
// @Router       /v1/chats/{chatID} [delete]
func (h *SessionHandler) DeleteChat(w http.ResponseWriter, r *http.Request) {
	chatID := chi.URLParam(r, "chatID")
	if blank(chatID) {
		respondWithError(w, fmt.Errorf("%w: chat id is required", app_errors.ErrValidation))
		return
	}
	if err := h.ws.DeleteChat(r.Context(), chatID); err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, StatusResponse{Status: "ok"})
}

// RenameChat godoc
// @Summary      Rename a chat
// @Description  Retitles the chat on the analytics backend; the directory shows the new title once acknowledged.
// @Tags         Chats
// @Accept       json
// @Produce      json
// @Param        chatID  path      string              true  "Chat ID"
// @Param        title   body      UpdateTitleRequest  true  "New title"
// @Success      200     {object}  StatusResponse
// @Failure      400     {object}  ErrorResponse
// @Failure      502     {object}  ErrorResponse
// @Router       /v1/chats/{chatID}/title [put]
func (h *SessionHandler) RenameChat(w http.ResponseWriter, r *http.Request) {
	chatID := chi.URLParam(r, "chatID")
	if blank(chatID) {
		respondWithError(w, fmt.Errorf("%w: chat id is required", app_errors.ErrValidation))
		return
	}
	var req UpdateTitleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, fmt.Errorf("%w: invalid request payload", app_errors.ErrValidation))
		return
	}
	if err := validateRequest(req); err != nil {
		respondWithError(w, err)
		return
	}
	if blank(req.Title) {
		respondWithError(w, fmt.Errorf("%w: title must not be blank", app_errors.ErrValidation))
		return
	}
	if err := h.ws.RenameChat(r.Context(), chatID, req.Title); err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, StatusResponse{Status: "ok"})
}

const snapshotWriteTimeout = 10 * time.Second

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 64 * 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// HandleEvents godoc
// @Summary      Workspace events
// @Description  WebSocket feed. Sends the full workspace snapshot on connect and after every change.
// @Tags         Session
// @Success      101  {object}  workspace.Snapshot
// @Router       /v1/events [get]
func (h *SessionHandler) HandleEvents(w http.ResponseWriter, r *http.Request) {
	changes, unsubscribe, err := h.ws.Subscribe()
	if err != nil {
		respondWithError(w, err)
		return
	}
	defer unsubscribe()

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Error("Failed to upgrade events connection", "error", err)
		return
	}
	defer conn.Close()
	slog.Info("Events client connected", "remote", r.RemoteAddr)

	// The client never sends anything; reading only detects the close.
	gone := make(chan struct{})
	go func() {
		defer close(gone)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	if err := writeSnapshot(conn, h.ws.Snapshot()); err != nil {
		return
	}
	for {
		select {
		case <-gone:
			slog.Info("Events client disconnected", "remote", r.RemoteAddr)
			return
		case _, ok := <-changes:
			if !ok {
				_ = conn.WriteControl(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseGoingAway, "workspace closed"),
					time.Now().Add(time.Second))
				return
			}
			if err := writeSnapshot(conn, h.ws.Snapshot()); err != nil {
				return
			}
		}
	}
}

func writeSnapshot(conn *websocket.Conn, snap workspace.Snapshot) error {
	if err := conn.SetWriteDeadline(time.Now().Add(snapshotWriteTimeout)); err != nil {
		return err
	}
	if err := conn.WriteJSON(snap); err != nil {
		slog.Warn("Failed to write snapshot to events client", "error", err)
		return err
	}
	return nil
}
