package backend

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	app_errors "github.com/anurag-deore/ai-monitoring-analytics/internal/errors"
	"github.com/anurag-deore/ai-monitoring-analytics/internal/model"
)

// TestHTTPClient verifies that the client builds the documented requests and
// decodes the backend's answers, using an httptest server as the backend.
func TestHTTPClient(t *testing.T) {
	var capturedMethod, capturedPath, capturedTitle string
	var capturedBody map[string]any

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		capturedMethod = r.Method
		capturedPath = r.URL.Path
		capturedTitle = r.URL.Query().Get("title")
		capturedBody = nil
		if r.Body != nil {
			_ = json.NewDecoder(r.Body).Decode(&capturedBody)
		}

		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/query":
			_, _ = w.Write([]byte(`{
				"success": true,
				"chat_id": "abc",
				"query": "top merchants",
				"sql_query": "SELECT 1",
				"summary": "Two merchants found",
				"insights": ["a", "b"],
				"data": [{"merchant": "m1", "total": 10}, {"merchant": "m2"}],
				"execution_time_ms": 12.5,
				"record_count": 2,
				"bar_chart": {"chart_possible": true, "x_label": "merchant", "y_label": "total",
					"modified_sql": "SELECT 2", "chart_data": [{"merchant": "m1", "total": 10}]}
			}`))
		case "/chats":
			_, _ = w.Write([]byte(`{"success": true, "data": {"chats": [
				{"id": 1, "chat_id": "c1", "query": "first", "timestamp": "2025-01-02T03:04:05.123456"},
				{"id": 2, "chat_id": "c2", "query": null, "timestamp": null}
			], "count": 2}}`))
		case "/chats/c1/history":
			_, _ = w.Write([]byte(`{"success": true, "data": {"chat_id": "c1", "messages": [
				{"id": 7, "query": "q1", "response": "{\"success\": true, \"summary\": \"s1\"}", "timestamp": "2025-01-02T03:04:05Z"}
			]}}`))
		case "/chats/missing/history":
			_, _ = w.Write([]byte(`{"success": false, "message": "Chat missing not found", "error": "Chat not found"}`))
		case "/chats/c1":
			_, _ = w.Write([]byte(`{"success": true, "data": {"deleted_chat_id": "c1"}}`))
		case "/report/create":
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"message": "title already used"}`))
		case "/chats/c1/title":
			_, _ = w.Write([]byte(`{"success": true, "message": "Chat title updated successfully"}`))
		case "/chats/gone/title":
			_, _ = w.Write([]byte(`{"success": false, "message": "Chat gone not found", "error": "Chat not found"}`))
		case "/dashboard/":
			_, _ = w.Write([]byte(`{"success": true, "data": {"dashboards": [
				{"id": "d1", "title": "Ops", "charts_count": 1, "created_at": "2025-01-01T00:00:00", "updated_at": "2025-01-02T00:00:00"}
			], "total_count": 1}}`))
		case "/dashboard/d1/charts":
			_, _ = w.Write([]byte(`{"success": true, "dashboard_id": "d1", "total_charts": 1, "charts": [
				{"chart_id": "c1", "dashboard_id": "d1", "chart_title": "Top", "chart_data": {"x_label": "merchant"}, "created_at": "2025-01-01T00:00:00"}
			]}`))
		case "/dashboard/create":
			_, _ = w.Write([]byte(`{"success": true, "dashboard_id": "d1", "title": "Ops", "charts_count": 0}`))
		case "/dashboard/add-chart":
			_, _ = w.Write([]byte(`{"success": false, "message": "Dashboard not found"}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	client := NewHTTPClient(server.URL, 5*time.Second)
	ctx := context.Background()

	t.Run("SubmitQuery", func(t *testing.T) {
		result, err := client.SubmitQuery(ctx, &model.QueryRequest{Query: "top merchants", ChatType: model.ChatTypeNew})
		require.NoError(t, err)

		assert.Equal(t, http.MethodPost, capturedMethod)
		assert.Equal(t, "/query", capturedPath)
		assert.Equal(t, "new", capturedBody["chat_type"])
		_, hasChatID := capturedBody["chat_id"]
		assert.False(t, hasChatID)

		assert.Equal(t, "abc", result.ChatID)
		assert.Equal(t, "SELECT 1", result.GeneratedQuery)
		assert.Len(t, result.Data, 2)
		assert.Equal(t, []string{"merchant", "total"}, result.Columns)
		require.NotNil(t, result.Chart)
		assert.True(t, result.Chart.Renderable())
		assert.Equal(t, []model.ChartPoint{{X: "m1", Y: 10}}, result.Chart.Points)
	})

	t.Run("ListChats", func(t *testing.T) {
		chats, err := client.ListChats(ctx)
		require.NoError(t, err)
		require.Len(t, chats, 2)
		assert.Equal(t, "c1", chats[0].ChatID)
		assert.Equal(t, 2025, chats[0].Timestamp.Year())
		assert.Equal(t, "", chats[1].Query)
		assert.True(t, chats[1].Timestamp.IsZero())
	})

	t.Run("ChatHistory", func(t *testing.T) {
		exchanges, err := client.ChatHistory(ctx, "c1")
		require.NoError(t, err)
		require.Len(t, exchanges, 1)
		result, err := exchanges[0].DecodeResult()
		require.NoError(t, err)
		assert.Equal(t, "s1", result.Summary)
	})

	t.Run("ChatHistory - envelope failure", func(t *testing.T) {
		_, err := client.ChatHistory(ctx, "missing")
		require.Error(t, err)
		assert.True(t, errors.Is(err, app_errors.ErrRejected))
		assert.Equal(t, "Chat not found", app_errors.RejectionMessage(err))
	})

	t.Run("DeleteChat", func(t *testing.T) {
		require.NoError(t, client.DeleteChat(ctx, "c1"))
		assert.Equal(t, http.MethodDelete, capturedMethod)
		assert.Equal(t, "/chats/c1", capturedPath)
	})

	t.Run("CreateReport - non-2xx carries message", func(t *testing.T) {
		_, err := client.CreateReport(ctx, &CreateReportRequest{Title: "Weekly"})
		require.Error(t, err)
		assert.True(t, errors.Is(err, app_errors.ErrRejected))
		assert.Equal(t, "title already used", app_errors.RejectionMessage(err))
		assert.Equal(t, "Weekly", capturedBody["title"])
	})

	t.Run("RenameChat", func(t *testing.T) {
		require.NoError(t, client.RenameChat(ctx, "c1", "Failed payments & refunds"))
		assert.Equal(t, http.MethodPut, capturedMethod)
		assert.Equal(t, "/chats/c1/title", capturedPath)
		assert.Equal(t, "Failed payments & refunds", capturedTitle)
	})

	t.Run("RenameChat - envelope failure", func(t *testing.T) {
		err := client.RenameChat(ctx, "gone", "x")
		require.Error(t, err)
		assert.Equal(t, "Chat not found", app_errors.RejectionMessage(err))
	})

	t.Run("ListDashboards", func(t *testing.T) {
		dashboards, err := client.ListDashboards(ctx)
		require.NoError(t, err)
		assert.Equal(t, "/dashboard/", capturedPath)
		assert.Equal(t, []model.Dashboard{{
			ID: "d1", Title: "Ops", ChartsCount: 1,
			CreatedAt: "2025-01-01T00:00:00", UpdatedAt: "2025-01-02T00:00:00",
		}}, dashboards)
	})

	t.Run("DashboardCharts", func(t *testing.T) {
		charts, err := client.DashboardCharts(ctx, "d1")
		require.NoError(t, err)
		require.Len(t, charts, 1)
		assert.Equal(t, "Top", charts[0].ChartTitle)
		assert.Equal(t, "merchant", charts[0].ChartData["x_label"])
	})

	t.Run("CreateDashboard", func(t *testing.T) {
		dash, err := client.CreateDashboard(ctx, &CreateDashboardRequest{Title: "Ops"})
		require.NoError(t, err)
		assert.Equal(t, "d1", dash.ID)
		assert.Equal(t, "Ops", dash.Title)
	})

	t.Run("AddChartToDashboard - envelope failure", func(t *testing.T) {
		chart := &model.Chart{Feasible: true, XLabel: "merchant", YLabel: "total"}
		_, err := client.AddChartToDashboard(ctx, &AddChartRequest{DashboardID: "d9", ChartTitle: "Top", ChartData: chart})
		require.Error(t, err)
		assert.True(t, errors.Is(err, app_errors.ErrRejected))
		assert.Equal(t, "Dashboard not found", app_errors.RejectionMessage(err))
		assert.Equal(t, "d9", capturedBody["dashboard_id"])
		assert.Equal(t, "Top", capturedBody["chart_title"])
	})
}

func TestHTTPClient_TransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	client := NewHTTPClient(url, time.Second)
	_, err := client.SubmitQuery(context.Background(), &model.QueryRequest{Query: "q", ChatType: model.ChatTypeNew})
	require.Error(t, err)
	assert.True(t, IsTransport(err))
	assert.False(t, errors.Is(err, app_errors.ErrRejected))
}

func TestHTTPClient_Timeout(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer server.Close()
	defer close(release)

	client := NewHTTPClient(server.URL, 50*time.Millisecond)
	_, err := client.ListChats(context.Background())
	require.Error(t, err)
	assert.True(t, IsTransport(err))
}

func TestHTTPClient_UnsuccessfulQueryPayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success": false, "summary": "Error: boom", "data": []}`))
	}))
	defer server.Close()

	client := NewHTTPClient(server.URL, time.Second)
	_, err := client.SubmitQuery(context.Background(), &model.QueryRequest{Query: "q", ChatType: model.ChatTypeNew})
	require.Error(t, err)
	assert.True(t, errors.Is(err, app_errors.ErrRejected))
}
