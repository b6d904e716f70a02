package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/anurag-deore/ai-monitoring-analytics/internal/model"
)

var (
	colorAccent = lipgloss.Color("#20B9B4")
	colorBorder = lipgloss.Color("#16858E")
	colorMuted  = lipgloss.Color("#2C4A54")
	colorError  = lipgloss.Color("#E74C3C")

	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	mutedStyle   = lipgloss.NewStyle().Foreground(colorMuted)
	errorStyle   = lipgloss.NewStyle().Foreground(colorError)
	codeStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorBorder).Padding(0, 1)
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorAccent).Padding(0, 1)
	cellStyle    = lipgloss.NewStyle().Padding(0, 1)
	missingStyle = cellStyle.Foreground(colorMuted)
)

// maxBarWidth bounds the widest bar of a terminal chart.
const maxBarWidth = 40

// Terminal renders a Query Result for the CLI.
func Terminal(result *model.QueryResult) string {
	if result == nil {
		return errorStyle.Render("No result.")
	}

	var b strings.Builder
	if result.Summary != "" {
		b.WriteString(result.Summary)
		b.WriteString("\n\n")
	}
	if result.GeneratedQuery != "" {
		b.WriteString(titleStyle.Render("Query"))
		b.WriteString("\n")
		b.WriteString(codeStyle.Render(result.GeneratedQuery))
		b.WriteString("\n\n")
	}
	if result.Explanation != "" {
		b.WriteString(mutedStyle.Render(result.Explanation))
		b.WriteString("\n\n")
	}
	if len(result.Data) > 0 {
		b.WriteString(titleStyle.Render(fmt.Sprintf("Results (%d rows, %.0f ms)", result.RecordCount, result.ExecutionTimeMS)))
		b.WriteString("\n")
		b.WriteString(TerminalTable(ResultTable(result)))
		b.WriteString("\n\n")
	}
	if points := ChartPoints(result); points != nil {
		b.WriteString(titleStyle.Render(fmt.Sprintf("%s by %s", result.Chart.YLabel, result.Chart.XLabel)))
		b.WriteString("\n")
		b.WriteString(bars(points))
		b.WriteString("\n")
	} else if result.Chart != nil && result.Chart.Reason != nil {
		b.WriteString(mutedStyle.Render("No chart: " + *result.Chart.Reason))
		b.WriteString("\n\n")
	}
	if len(result.Insights) > 0 {
		b.WriteString(titleStyle.Render("Insights"))
		b.WriteString("\n")
		for _, in := range result.Insights {
			b.WriteString("• " + in + "\n")
		}
		b.WriteString("\n")
	}
	if result.Recommendation != nil && *result.Recommendation != "" {
		b.WriteString(titleStyle.Render("Recommendation"))
		b.WriteString("\n")
		b.WriteString(*result.Recommendation)
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// TerminalTable draws a TableView with a rounded border.
func TerminalTable(view TableView) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorBorder)).
		Headers(view.Columns...).
		Rows(view.Cells...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if row >= 0 && row < len(view.Cells) && col < len(view.Cells[row]) && view.Cells[row][col] == MissingCell {
				return missingStyle
			}
			return cellStyle
		})
	return t.String()
}

func bars(points []model.ChartPoint) string {
	var maxY float64
	labelWidth := 0
	for _, p := range points {
		if p.Y > maxY {
			maxY = p.Y
		}
		if w := lipgloss.Width(p.X); w > labelWidth {
			labelWidth = w
		}
	}
	bar := lipgloss.NewStyle().Foreground(colorAccent)
	var b strings.Builder
	for _, p := range points {
		width := 0
		if maxY > 0 && p.Y > 0 {
			width = int(p.Y / maxY * maxBarWidth)
		}
		fmt.Fprintf(&b, "%-*s %s %s\n", labelWidth, p.X, bar.Render(strings.Repeat("█", width)), Cell(p.Y))
	}
	return b.String()
}
