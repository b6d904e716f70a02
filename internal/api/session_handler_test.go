// Black-box tests: only the exported surface of package api is used.
package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/anurag-deore/ai-monitoring-analytics/internal/api"
	app_errors "github.com/anurag-deore/ai-monitoring-analytics/internal/errors"
	"github.com/anurag-deore/ai-monitoring-analytics/internal/interfaces/mocks"
	"github.com/anurag-deore/ai-monitoring-analytics/internal/model"
	"github.com/anurag-deore/ai-monitoring-analytics/internal/service"
	"github.com/anurag-deore/ai-monitoring-analytics/internal/workspace"
)

func setupSessionHandler(t *testing.T) (*api.SessionHandler, *mocks.MockWorkspace) {
	ws := mocks.NewMockWorkspace(t)
	return api.NewSessionHandler(ws), ws
}

// addChiURLParams injects URL parameters the way the chi router does, so
// chi.URLParam works when handlers are called directly.
func addChiURLParams(req *http.Request, params map[string]string) *http.Request {
	chiCtx := chi.NewRouteContext()
	for key, value := range params {
		chiCtx.URLParams.Add(key, value)
	}
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, chiCtx))
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	var body api.ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	return body.Error
}

func TestSessionHandler_SubmitQuery(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		// ARRANGE
		handler, ws := setupSessionHandler(t)
		ws.On("Ask", mock.Anything, "failed payments today").
			Return(&service.Submission{UserID: "u1", BotID: "b1"}).Once()
		ws.On("SessionID").Return("").Once()

		// ACT
		req := httptest.NewRequest(http.MethodPost, "/v1/queries", strings.NewReader(`{"query":"failed payments today"}`))
		rr := httptest.NewRecorder()
		handler.SubmitQuery(rr, req)

		// ASSERT
		assert.Equal(t, http.StatusAccepted, rr.Code)
		var resp api.SubmitQueryResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "u1", resp.UserMessageID)
		assert.Equal(t, "b1", resp.BotMessageID)
	})

	t.Run("Success - blank query is a no-op", func(t *testing.T) {
		for _, body := range []string{`{"query":""}`, `{"query":"   "}`, `{}`} {
			// ARRANGE
			handler, ws := setupSessionHandler(t)

			// ACT
			req := httptest.NewRequest(http.MethodPost, "/v1/queries", strings.NewReader(body))
			rr := httptest.NewRecorder()
			handler.SubmitQuery(rr, req)

			// ASSERT
			assert.Equal(t, http.StatusNoContent, rr.Code, body)
			assert.Empty(t, rr.Body.Bytes(), body)
			ws.AssertNotCalled(t, "Ask", mock.Anything, mock.Anything)
		}
	})

	t.Run("Failure - malformed JSON", func(t *testing.T) {
		handler, _ := setupSessionHandler(t)

		req := httptest.NewRequest(http.MethodPost, "/v1/queries", strings.NewReader(`{"query":`))
		rr := httptest.NewRecorder()
		handler.SubmitQuery(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestSessionHandler_OpenSession(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		// ARRANGE
		handler, ws := setupSessionHandler(t)
		snap := workspace.Snapshot{SessionID: "xyz"}
		ws.On("Open", mock.Anything, "xyz").Return(nil).Once()
		ws.On("Snapshot").Return(snap).Once()

		// ACT
		req := httptest.NewRequest(http.MethodPut, "/v1/session/xyz", nil)
		req = addChiURLParams(req, map[string]string{"chatID": "xyz"})
		rr := httptest.NewRecorder()
		handler.OpenSession(rr, req)

		// ASSERT
		assert.Equal(t, http.StatusOK, rr.Code)
		var got workspace.Snapshot
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
		assert.Equal(t, "xyz", got.SessionID)
	})

	t.Run("Failure - backend unreachable", func(t *testing.T) {
		handler, ws := setupSessionHandler(t)
		ws.On("Open", mock.Anything, "xyz").Return(app_errors.ErrTransport).Once()

		req := addChiURLParams(httptest.NewRequest(http.MethodPut, "/v1/session/xyz", nil), map[string]string{"chatID": "xyz"})
		rr := httptest.NewRecorder()
		handler.OpenSession(rr, req)

		assert.Equal(t, http.StatusBadGateway, rr.Code)
		assert.Equal(t, "The analytics backend could not be reached.", decodeError(t, rr))
	})

	t.Run("Failure - rejected with a message", func(t *testing.T) {
		handler, ws := setupSessionHandler(t)
		ws.On("Open", mock.Anything, "xyz").
			Return(&app_errors.RejectedError{Status: 404, Message: "Chat not found"}).Once()

		req := addChiURLParams(httptest.NewRequest(http.MethodPut, "/v1/session/xyz", nil), map[string]string{"chatID": "xyz"})
		rr := httptest.NewRecorder()
		handler.OpenSession(rr, req)

		assert.Equal(t, http.StatusBadGateway, rr.Code)
		assert.Equal(t, "Chat not found", decodeError(t, rr))
	})
}

func TestSessionHandler_NewSession(t *testing.T) {
	handler, ws := setupSessionHandler(t)
	ws.On("NewChat").Return().Once()
	ws.On("Snapshot").Return(workspace.Snapshot{}).Once()

	req := httptest.NewRequest(http.MethodDelete, "/v1/session", nil)
	rr := httptest.NewRecorder()
	handler.NewSession(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestSessionHandler_ListChats(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		// ARRANGE
		handler, ws := setupSessionHandler(t)
		chats := []model.ChatEntry{{ChatID: "b", Query: "newer"}, {ChatID: "a", Query: "older"}}
		ws.On("RefreshChats", mock.Anything).Return(nil).Once()
		ws.On("Chats").Return(chats).Once()

		// ACT
		req := httptest.NewRequest(http.MethodGet, "/v1/chats", nil)
		rr := httptest.NewRecorder()
		handler.ListChats(rr, req)

		// ASSERT
		assert.Equal(t, http.StatusOK, rr.Code)
		var got []model.ChatEntry
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
		assert.Equal(t, chats, got)
	})

	t.Run("Failure", func(t *testing.T) {
		handler, ws := setupSessionHandler(t)
		ws.On("RefreshChats", mock.Anything).Return(&app_errors.RejectedError{Status: 500}).Once()

		req := httptest.NewRequest(http.MethodGet, "/v1/chats", nil)
		rr := httptest.NewRecorder()
		handler.ListChats(rr, req)

		assert.Equal(t, http.StatusBadGateway, rr.Code)
		assert.Equal(t, "The analytics backend rejected the request.", decodeError(t, rr))
	})
}

func TestSessionHandler_DeleteChat(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		handler, ws := setupSessionHandler(t)
		ws.On("DeleteChat", mock.Anything, "abc").Return(nil).Once()

		req := addChiURLParams(httptest.NewRequest(http.MethodDelete, "/v1/chats/abc", nil), map[string]string{"chatID": "abc"})
		rr := httptest.NewRecorder()
		handler.DeleteChat(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"status":"ok"}`, rr.Body.String())
	})

	t.Run("Failure - missing id", func(t *testing.T) {
		handler, ws := setupSessionHandler(t)

		req := addChiURLParams(httptest.NewRequest(http.MethodDelete, "/v1/chats/", nil), map[string]string{"chatID": " "})
		rr := httptest.NewRecorder()
		handler.DeleteChat(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		ws.AssertNotCalled(t, "DeleteChat", mock.Anything, mock.Anything)
	})
}

func TestSessionHandler_RenameChat(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		// ARRANGE
		handler, ws := setupSessionHandler(t)
		ws.On("RenameChat", mock.Anything, "abc", "Failed payments").Return(nil).Once()

		// ACT
		req := httptest.NewRequest(http.MethodPut, "/v1/chats/abc/title", strings.NewReader(`{"title":"Failed payments"}`))
		req = addChiURLParams(req, map[string]string{"chatID": "abc"})
		rr := httptest.NewRecorder()
		handler.RenameChat(rr, req)

		// ASSERT
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"status":"ok"}`, rr.Body.String())
	})

	t.Run("Failure - blank title", func(t *testing.T) {
		for _, body := range []string{`{"title":""}`, `{"title":"  "}`} {
			handler, ws := setupSessionHandler(t)

			req := httptest.NewRequest(http.MethodPut, "/v1/chats/abc/title", strings.NewReader(body))
			req = addChiURLParams(req, map[string]string{"chatID": "abc"})
			rr := httptest.NewRecorder()
			handler.RenameChat(rr, req)

			assert.Equal(t, http.StatusBadRequest, rr.Code, body)
			ws.AssertNotCalled(t, "RenameChat", mock.Anything, mock.Anything, mock.Anything)
		}
	})

	t.Run("Failure - backend refuses", func(t *testing.T) {
		handler, ws := setupSessionHandler(t)
		ws.On("RenameChat", mock.Anything, "abc", "x").
			Return(&app_errors.RejectedError{Status: 200, Message: "Chat abc not found"}).Once()

		req := httptest.NewRequest(http.MethodPut, "/v1/chats/abc/title", strings.NewReader(`{"title":"x"}`))
		req = addChiURLParams(req, map[string]string{"chatID": "abc"})
		rr := httptest.NewRecorder()
		handler.RenameChat(rr, req)

		assert.Equal(t, http.StatusBadGateway, rr.Code)
		assert.Equal(t, "Chat abc not found", decodeError(t, rr))
	})
}

func TestSessionHandler_HandleEvents(t *testing.T) {
	// ARRANGE
	handler, ws := setupSessionHandler(t)
	changes := make(chan struct{}, 1)
	unsubscribed := make(chan struct{})
	ws.On("Subscribe").Return((<-chan struct{})(changes), func() { close(unsubscribed) }, nil).Once()
	ws.On("Snapshot").Return(workspace.Snapshot{SessionID: ""}).Once()
	ws.On("Snapshot").Return(workspace.Snapshot{SessionID: "abc"}).Once()

	server := httptest.NewServer(http.HandlerFunc(handler.HandleEvents))
	defer server.Close()

	// ACT
	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(server.URL, "http"), nil)
	require.NoError(t, err)
	defer conn.Close()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))

	var first, second workspace.Snapshot
	require.NoError(t, conn.ReadJSON(&first))
	changes <- struct{}{}
	require.NoError(t, conn.ReadJSON(&second))

	// ASSERT
	assert.Equal(t, "", first.SessionID)
	assert.Equal(t, "abc", second.SessionID)

	require.NoError(t, conn.Close())
	select {
	case <-unsubscribed:
	case <-time.After(2 * time.Second):
		t.Fatal("subscription was not released")
	}
}

func TestSessionHandler_HandleEvents_Closed(t *testing.T) {
	handler, ws := setupSessionHandler(t)
	ws.On("Subscribe").Return(nil, nil, workspace.ErrClosed).Once()

	req := httptest.NewRequest(http.MethodGet, "/v1/events", nil)
	rr := httptest.NewRecorder()
	handler.HandleEvents(rr, req)

	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
}
