// Package render turns Query Results into display-ready shapes: a rectangular
// table over heterogeneous rows, chart points, and a styled terminal view.
package render

import (
	"encoding/json"
	"sort"
	"strconv"

	"github.com/anurag-deore/ai-monitoring-analytics/internal/model"
)

const (
	// MissingCell fills a column a row does not have.
	MissingCell = "—"
	// NullCell is shown for an explicit null value.
	NullCell = "null"
)

// TableView is a rectangular rendering of result rows.
type TableView struct {
	Columns []string   `json:"columns"`
	Cells   [][]string `json:"cells"`
}

// Columns returns the union of keys across rows in first-seen order. Keys within
// a row are visited in sorted order since Go maps carry no insertion order.
func Columns(rows []model.Row) []string {
	seen := make(map[string]struct{})
	var cols []string
	for _, row := range rows {
		for _, k := range sortedKeys(row) {
			if _, ok := seen[k]; ok {
				continue
			}
			seen[k] = struct{}{}
			cols = append(cols, k)
		}
	}
	return cols
}

// Table renders rows under the union of their columns.
func Table(rows []model.Row) TableView {
	return tableOver(Columns(rows), rows)
}

// ResultTable renders the rows of a result in the column order the backend
// emitted, falling back to Columns for rows built without one.
func ResultTable(r *model.QueryResult) TableView {
	if len(r.Columns) == 0 {
		return Table(r.Data)
	}
	cols := r.Columns
	known := make(map[string]struct{}, len(cols))
	for _, c := range cols {
		known[c] = struct{}{}
	}
	for _, c := range Columns(r.Data) {
		if _, ok := known[c]; !ok {
			cols = append(cols[:len(cols):len(cols)], c)
		}
	}
	return tableOver(cols, r.Data)
}

func tableOver(cols []string, rows []model.Row) TableView {
	cells := make([][]string, 0, len(rows))
	for _, row := range rows {
		line := make([]string, len(cols))
		for i, c := range cols {
			v, ok := row[c]
			if !ok {
				line[i] = MissingCell
				continue
			}
			line[i] = Cell(v)
		}
		cells = append(cells, line)
	}
	return TableView{Columns: cols, Cells: cells}
}

// Cell formats one scalar value.
func Cell(v any) string {
	switch t := v.(type) {
	case nil:
		return NullCell
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case json.Number:
		return t.String()
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return NullCell
		}
		return string(b)
	}
}

// ChartPoints returns the chart to draw for result, or nil when there is none.
func ChartPoints(result *model.QueryResult) []model.ChartPoint {
	if result == nil || !result.Chart.Renderable() {
		return nil
	}
	return result.Chart.Points
}

func sortedKeys(row model.Row) []string {
	keys := make([]string, 0, len(row))
	for k := range row {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
