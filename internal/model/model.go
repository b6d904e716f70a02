package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// Role identifies who authored a conversational turn.
type Role string

const (
	RoleUser Role = "user"
	RoleBot  Role = "bot"
)

// ChatType tells the backend whether a query opens a new session.
type ChatType string

const (
	ChatTypeNew      ChatType = "new"
	ChatTypeExisting ChatType = "existing"
)

// Message stores a single turn of the active conversation.
type Message struct {
	ID        string       `json:"id"`
	Role      Role         `json:"role"`
	Content   string       `json:"content"`
	Timestamp time.Time    `json:"timestamp"`
	Query     string       `json:"query,omitempty"`    // Originating query, bot turns only.
	Response  *QueryResult `json:"response,omitempty"` // Full result, resolved bot turns only.
	Pending   bool         `json:"pending"`
}

// Row is one record of tabular result data. Values are scalars or nil.
type Row map[string]any

// ChartPoint is a single bar of a chart.
type ChartPoint struct {
	X string  `json:"x"`
	Y float64 `json:"y"`
}

// Chart describes an optional visualisation of a Query Result.
type Chart struct {
	Feasible       bool         `json:"feasible"`
	XLabel         string       `json:"x_label"`
	YLabel         string       `json:"y_label"`
	RewrittenQuery string       `json:"rewritten_query"`
	Reason         *string      `json:"reason"`
	Points         []ChartPoint `json:"points"`
}

// Renderable reports whether the chart has anything to draw.
func (c *Chart) Renderable() bool {
	return c != nil && c.Feasible && len(c.Points) > 0
}

// QueryResult is the structured payload the analytics backend returns for one query.
// Columns lists the keys of Data in the order the backend emitted them.
type QueryResult struct {
	Success         bool     `json:"success"`
	ChatID          string   `json:"chat_id,omitempty"`
	Query           string   `json:"query"`
	Explanation     string   `json:"explanation"`
	GeneratedQuery  string   `json:"generated_query"`
	Summary         string   `json:"summary"`
	Recommendation  *string  `json:"recommendation"`
	Insights        []string `json:"insights"`
	Data            []Row    `json:"data"`
	Columns         []string `json:"columns,omitempty"`
	ExecutionTimeMS float64  `json:"execution_time_ms"`
	RecordCount     int      `json:"record_count"`
	ResponseSummary *string  `json:"response_summary,omitempty"`
	Chart           *Chart   `json:"chart,omitempty"`
}

// legacyChart is the bar_chart shape emitted by the analytics service.
type legacyChart struct {
	ChartPossible bool    `json:"chart_possible"`
	XLabel        string  `json:"x_label"`
	YLabel        string  `json:"y_label"`
	ModifiedSQL   string  `json:"modified_sql"`
	Reason        *string `json:"reason"`
	ChartData     []Row   `json:"chart_data"`
}

func (lc *legacyChart) toChart() *Chart {
	chart := &Chart{
		Feasible:       lc.ChartPossible,
		XLabel:         lc.XLabel,
		YLabel:         lc.YLabel,
		RewrittenQuery: lc.ModifiedSQL,
		Reason:         lc.Reason,
	}
	for _, row := range lc.ChartData {
		x, okX := pick(row, "x", lc.XLabel)
		y, okY := pick(row, "y", lc.YLabel)
		if !okX || !okY {
			continue
		}
		yf, ok := toFloat(y)
		if !ok {
			continue
		}
		chart.Points = append(chart.Points, ChartPoint{X: fmt.Sprint(x), Y: yf})
	}
	return chart
}

// UnmarshalJSON accepts both the documented field names and the aliases used by
// the analytics service (sql_query, bar_chart).
func (r *QueryResult) UnmarshalJSON(b []byte) error {
	type plain QueryResult
	var aux struct {
		plain
		SQLQuery string       `json:"sql_query"`
		BarChart *legacyChart `json:"bar_chart"`
	}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	*r = QueryResult(aux.plain)
	if r.GeneratedQuery == "" {
		r.GeneratedQuery = aux.SQLQuery
	}
	if r.Chart == nil && aux.BarChart != nil {
		r.Chart = aux.BarChart.toChart()
	}
	if len(r.Columns) == 0 && len(r.Data) > 0 {
		var raw struct {
			Data json.RawMessage `json:"data"`
		}
		if err := json.Unmarshal(b, &raw); err != nil {
			return err
		}
		cols, err := keyOrder(raw.Data)
		if err != nil {
			return fmt.Errorf("could not read column order: %w", err)
		}
		r.Columns = cols
	}
	return nil
}

// keyOrder returns the union of object keys in a JSON array of objects, in the
// order they first appear in the document.
func keyOrder(raw json.RawMessage) ([]string, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	if tok, err := dec.Token(); err != nil {
		return nil, err
	} else if d, ok := tok.(json.Delim); !ok || d != '[' {
		return nil, nil
	}

	seen := make(map[string]struct{})
	var cols []string
	for dec.More() {
		var elem json.RawMessage
		if err := dec.Decode(&elem); err != nil {
			return nil, err
		}
		obj := json.NewDecoder(bytes.NewReader(elem))
		if tok, err := obj.Token(); err != nil {
			return nil, err
		} else if d, ok := tok.(json.Delim); !ok || d != '{' {
			continue
		}
		for obj.More() {
			tok, err := obj.Token()
			if err != nil {
				return nil, err
			}
			key, _ := tok.(string)
			var skip json.RawMessage
			if err := obj.Decode(&skip); err != nil {
				return nil, err
			}
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			cols = append(cols, key)
		}
	}
	return cols, nil
}

// ChatEntry is the Chat Directory summary of one session. Title is set once the
// chat has been renamed.
type ChatEntry struct {
	ChatID    string    `json:"chat_id"`
	Query     string    `json:"query"`
	Title     string    `json:"title,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// StoredExchange is one persisted query/result pair of a session transcript.
// Response holds the encoded Query Result exactly as the backend returned it.
type StoredExchange struct {
	ID        json.RawMessage `json:"id"`
	Query     string          `json:"query"`
	Response  json.RawMessage `json:"response"`
	Timestamp time.Time       `json:"timestamp"`
}

// DecodeResult decodes the stored Query Result. The backend may store it either
// as a JSON object or as a JSON string wrapping the serialized object.
func (e StoredExchange) DecodeResult() (*QueryResult, error) {
	raw := e.Response
	if len(raw) == 0 || string(raw) == "null" {
		return nil, fmt.Errorf("exchange has no stored response")
	}
	if raw[0] == '"' {
		var encoded string
		if err := json.Unmarshal(raw, &encoded); err != nil {
			return nil, fmt.Errorf("could not unquote stored response: %w", err)
		}
		raw = json.RawMessage(encoded)
	}
	var result QueryResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, fmt.Errorf("could not decode stored response: %w", err)
	}
	return &result, nil
}

// QueryRequest is the body of POST /query.
type QueryRequest struct {
	Query    string   `json:"query"`
	ChatID   string   `json:"chat_id,omitempty"`
	ChatType ChatType `json:"chat_type"`
}

// Report is the backend acknowledgement of a created report.
type Report struct {
	ID      string `json:"id,omitempty"`
	Message string `json:"message,omitempty"`
}

// Dashboard is a dashboard as created or listed by the backend.
type Dashboard struct {
	ID          string `json:"dashboard_id"`
	Title       string `json:"title"`
	ChartsCount int    `json:"charts_count"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at,omitempty"`
}

// DashboardChart is a chart pinned to a dashboard. ChartData is only present
// when charts are listed.
type DashboardChart struct {
	ChartID     string         `json:"chart_id"`
	DashboardID string         `json:"dashboard_id"`
	ChartTitle  string         `json:"chart_title"`
	ChartData   map[string]any `json:"chart_data,omitempty"`
	CreatedAt   string         `json:"created_at"`
}

func pick(row Row, key, fallback string) (any, bool) {
	if v, ok := row[key]; ok {
		return v, true
	}
	if fallback == "" {
		return nil, false
	}
	v, ok := row[fallback]
	return v, ok
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(n, 64)
		return f, err == nil
	default:
		return 0, false
	}
}
