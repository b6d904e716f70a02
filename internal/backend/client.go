package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	app_errors "github.com/anurag-deore/ai-monitoring-analytics/internal/errors"
	"github.com/anurag-deore/ai-monitoring-analytics/internal/model"
)

const tracerName = "github.com/anurag-deore/ai-monitoring-analytics/internal/backend"

// Client defines the operations the front-end performs against the analytics backend.
type Client interface {
	SubmitQuery(ctx context.Context, req *model.QueryRequest) (*model.QueryResult, error)
	ChatHistory(ctx context.Context, chatID string) ([]model.StoredExchange, error)
	ListChats(ctx context.Context) ([]model.ChatEntry, error)
	DeleteChat(ctx context.Context, chatID string) error
	RenameChat(ctx context.Context, chatID, title string) error
	CreateReport(ctx context.Context, req *CreateReportRequest) (*model.Report, error)
	CreateDashboard(ctx context.Context, req *CreateDashboardRequest) (*model.Dashboard, error)
	AddChartToDashboard(ctx context.Context, req *AddChartRequest) (*model.DashboardChart, error)
	ListDashboards(ctx context.Context) ([]model.Dashboard, error)
	DashboardCharts(ctx context.Context, dashboardID string) ([]model.DashboardChart, error)
}

type CreateReportRequest struct {
	Title string `json:"title"`
}

type CreateDashboardRequest struct {
	Title string `json:"title"`
}

type AddChartRequest struct {
	DashboardID string       `json:"dashboard_id"`
	ChartTitle  string       `json:"chart_title"`
	ChartData   *model.Chart `json:"chart_data"`
}

type httpClient struct {
	client  *http.Client
	baseURL string
}

// NewHTTPClient returns a Client talking JSON over HTTP to baseURL. Every call is
// bounded by timeout; a zero timeout disables the bound.
func NewHTTPClient(baseURL string, timeout time.Duration) Client {
	return &httpClient{
		client:  &http.Client{Timeout: timeout},
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// envelope is the ApiResponse wrapper used by the directory and history endpoints.
type envelope[T any] struct {
	Success *bool  `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error"`
	Data    T      `json:"data"`
}

func (e *envelope[T]) check() error {
	if e.Success != nil && !*e.Success {
		msg := e.Error
		if msg == "" {
			msg = e.Message
		}
		return &app_errors.RejectedError{Status: http.StatusOK, Message: msg}
	}
	return nil
}

type wireChat struct {
	ChatID    string  `json:"chat_id"`
	Query     *string `json:"query"`
	Title     *string `json:"title"`
	Timestamp *string `json:"timestamp"`
}

// wireDashboard is a dashboard as listed by GET /dashboard/, keyed by "id".
type wireDashboard struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	ChartsCount int    `json:"charts_count"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

type wireExchange struct {
	ID        json.RawMessage `json:"id"`
	Query     string          `json:"query"`
	Response  json.RawMessage `json:"response"`
	Timestamp *string         `json:"timestamp"`
}

func (c *httpClient) SubmitQuery(ctx context.Context, req *model.QueryRequest) (*model.QueryResult, error) {
	var result model.QueryResult
	if err := c.do(ctx, http.MethodPost, "/query", req, &result); err != nil {
		return nil, err
	}
	if !result.Success {
		return &result, &app_errors.RejectedError{Status: http.StatusOK, Message: result.Summary}
	}
	return &result, nil
}

func (c *httpClient) ChatHistory(ctx context.Context, chatID string) ([]model.StoredExchange, error) {
	var resp envelope[struct {
		Messages []wireExchange `json:"messages"`
	}]
	if err := c.do(ctx, http.MethodGet, "/chats/"+url.PathEscape(chatID)+"/history", nil, &resp); err != nil {
		return nil, err
	}
	if err := resp.check(); err != nil {
		return nil, err
	}
	exchanges := make([]model.StoredExchange, 0, len(resp.Data.Messages))
	for _, m := range resp.Data.Messages {
		exchanges = append(exchanges, model.StoredExchange{
			ID:        m.ID,
			Query:     m.Query,
			Response:  m.Response,
			Timestamp: parseTimestamp(m.Timestamp),
		})
	}
	return exchanges, nil
}

func (c *httpClient) ListChats(ctx context.Context) ([]model.ChatEntry, error) {
	var resp envelope[struct {
		Chats []wireChat `json:"chats"`
	}]
	if err := c.do(ctx, http.MethodGet, "/chats", nil, &resp); err != nil {
		return nil, err
	}
	if err := resp.check(); err != nil {
		return nil, err
	}
	entries := make([]model.ChatEntry, 0, len(resp.Data.Chats))
	for _, ch := range resp.Data.Chats {
		entry := model.ChatEntry{ChatID: ch.ChatID, Timestamp: parseTimestamp(ch.Timestamp)}
		if ch.Query != nil {
			entry.Query = *ch.Query
		}
		if ch.Title != nil {
			entry.Title = *ch.Title
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func (c *httpClient) DeleteChat(ctx context.Context, chatID string) error {
	var resp envelope[json.RawMessage]
	if err := c.do(ctx, http.MethodDelete, "/chats/"+url.PathEscape(chatID), nil, &resp); err != nil {
		return err
	}
	return resp.check()
}

// RenameChat sets the display title of chatID. The title travels as a query
// parameter.
func (c *httpClient) RenameChat(ctx context.Context, chatID, title string) error {
	var resp envelope[json.RawMessage]
	path := "/chats/" + url.PathEscape(chatID) + "/title?" + url.Values{"title": {title}}.Encode()
	if err := c.do(ctx, http.MethodPut, path, nil, &resp); err != nil {
		return err
	}
	return resp.check()
}

func (c *httpClient) CreateReport(ctx context.Context, req *CreateReportRequest) (*model.Report, error) {
	var resp struct {
		model.Report
		Success *bool  `json:"success"`
		Error   string `json:"error"`
	}
	if err := c.do(ctx, http.MethodPost, "/report/create", req, &resp); err != nil {
		return nil, err
	}
	if resp.Success != nil && !*resp.Success {
		msg := resp.Error
		if msg == "" {
			msg = resp.Message
		}
		return nil, &app_errors.RejectedError{Status: http.StatusOK, Message: msg}
	}
	return &resp.Report, nil
}

func (c *httpClient) CreateDashboard(ctx context.Context, req *CreateDashboardRequest) (*model.Dashboard, error) {
	var resp struct {
		model.Dashboard
		Success *bool `json:"success"`
	}
	if err := c.do(ctx, http.MethodPost, "/dashboard/create", req, &resp); err != nil {
		return nil, err
	}
	if resp.Success != nil && !*resp.Success {
		return nil, &app_errors.RejectedError{Status: http.StatusOK}
	}
	return &resp.Dashboard, nil
}

func (c *httpClient) AddChartToDashboard(ctx context.Context, req *AddChartRequest) (*model.DashboardChart, error) {
	var resp envelope[model.DashboardChart]
	if err := c.do(ctx, http.MethodPost, "/dashboard/add-chart", req, &resp); err != nil {
		return nil, err
	}
	if err := resp.check(); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

func (c *httpClient) ListDashboards(ctx context.Context) ([]model.Dashboard, error) {
	var resp envelope[struct {
		Dashboards []wireDashboard `json:"dashboards"`
	}]
	if err := c.do(ctx, http.MethodGet, "/dashboard/", nil, &resp); err != nil {
		return nil, err
	}
	if err := resp.check(); err != nil {
		return nil, err
	}
	dashboards := make([]model.Dashboard, 0, len(resp.Data.Dashboards))
	for _, d := range resp.Data.Dashboards {
		dashboards = append(dashboards, model.Dashboard{
			ID:          d.ID,
			Title:       d.Title,
			ChartsCount: d.ChartsCount,
			CreatedAt:   d.CreatedAt,
			UpdatedAt:   d.UpdatedAt,
		})
	}
	return dashboards, nil
}

func (c *httpClient) DashboardCharts(ctx context.Context, dashboardID string) ([]model.DashboardChart, error) {
	var resp struct {
		Success *bool                  `json:"success"`
		Charts  []model.DashboardChart `json:"charts"`
	}
	if err := c.do(ctx, http.MethodGet, "/dashboard/"+url.PathEscape(dashboardID)+"/charts", nil, &resp); err != nil {
		return nil, err
	}
	if resp.Success != nil && !*resp.Success {
		return nil, &app_errors.RejectedError{Status: http.StatusOK}
	}
	if resp.Charts == nil {
		resp.Charts = []model.DashboardChart{}
	}
	return resp.Charts, nil
}

// do performs one JSON round trip. Failures to reach the backend or to decode its
// answer wrap ErrTransport; non-2xx answers become a RejectedError.
func (c *httpClient) do(ctx context.Context, method, path string, body, out any) error {
	route, _, _ := strings.Cut(path, "?")
	ctx, span := otel.Tracer(tracerName).Start(ctx, method+" "+routeOf(route))
	defer span.End()

	var reqBody io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("could not marshal request: %w", err)
		}
		reqBody = bytes.NewReader(b)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("could not create http request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/json")
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(httpReq)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "transport failure")
		return fmt.Errorf("%w: %s %s: %v", app_errors.ErrTransport, method, path, err)
	}
	defer resp.Body.Close()
	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		span.SetStatus(codes.Error, "read failure")
		return fmt.Errorf("%w: could not read response body: %v", app_errors.ErrTransport, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		span.SetStatus(codes.Error, "non-2xx status")
		return &app_errors.RejectedError{Status: resp.StatusCode, Message: extractMessage(respBytes)}
	}

	if out == nil || len(bytes.TrimSpace(respBytes)) == 0 {
		return nil
	}
	if err := json.Unmarshal(respBytes, out); err != nil {
		span.SetStatus(codes.Error, "decode failure")
		return fmt.Errorf("%w: could not decode response: %v", app_errors.ErrTransport, err)
	}
	return nil
}

// extractMessage pulls a human readable message out of an error payload. FastAPI
// uses "detail"; the service's own envelopes use "message" or "error".
func extractMessage(body []byte) string {
	var payload map[string]any
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	for _, key := range []string{"message", "error", "detail"} {
		if s, ok := payload[key].(string); ok && s != "" {
			return s
		}
	}
	return ""
}

// routeOf collapses path parameters so span names stay low-cardinality.
func routeOf(path string) string {
	switch {
	case strings.HasPrefix(path, "/chats/"):
		if strings.HasSuffix(path, "/history") {
			return "/chats/{chat_id}/history"
		}
		if strings.HasSuffix(path, "/title") {
			return "/chats/{chat_id}/title"
		}
		return "/chats/{chat_id}"
	case strings.HasPrefix(path, "/dashboard/") && strings.HasSuffix(path, "/charts"):
		return "/dashboard/{dashboard_id}/charts"
	}
	return path
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999",
	"2006-01-02 15:04:05.999999",
	"2006-01-02T15:04:05",
}

// parseTimestamp accepts RFC 3339 as well as the zone-less ISO format the backend
// emits. Unknown or missing values yield the zero time.
func parseTimestamp(s *string) time.Time {
	if s == nil || *s == "" {
		return time.Time{}
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, *s); err == nil {
			return t
		}
	}
	return time.Time{}
}

// IsTransport reports whether err is a transport-level failure.
func IsTransport(err error) bool { return errors.Is(err, app_errors.ErrTransport) }
