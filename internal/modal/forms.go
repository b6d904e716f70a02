package modal

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/anurag-deore/ai-monitoring-analytics/internal/backend"
	"github.com/anurag-deore/ai-monitoring-analytics/internal/model"
)

const (
	KindCreateReport    Kind = "createReport"
	KindCreateDashboard Kind = "createDashboard"
	KindAddChart        Kind = "addChartToDashboard"
)

// Fallback messages for rejections that carry no message of their own.
const (
	ReportFallbackMessage    = "Failed to create report"
	DashboardFallbackMessage = "Failed to create dashboard"
	AddChartFallbackMessage  = "Failed to add chart to dashboard"
)

var submitsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "insightchat_modal_submits_total",
	Help: "Modal submits, by modal kind and outcome.",
}, []string{"kind", "outcome"})

type ReportInput struct {
	Title string `json:"title" validate:"required,max=200"`
}

type DashboardInput struct {
	Title string `json:"title" validate:"required,max=200"`
}

type ChartInput struct {
	DashboardID string       `json:"dashboard_id" validate:"required"`
	ChartTitle  string       `json:"chart_title" validate:"required,max=200"`
	Chart       *model.Chart `json:"chart" validate:"required"`
}

// NewCreateReport returns the report-creation modal.
func NewCreateReport(client backend.Client, cb Callbacks[ReportInput, *model.Report]) *Form[ReportInput, *model.Report] {
	return NewForm(KindCreateReport, ReportFallbackMessage,
		func(ctx context.Context, in ReportInput) (*model.Report, error) {
			return client.CreateReport(ctx, &backend.CreateReportRequest{Title: in.Title})
		}, cb)
}

// NewCreateDashboard returns the dashboard-creation modal.
func NewCreateDashboard(client backend.Client, cb Callbacks[DashboardInput, *model.Dashboard]) *Form[DashboardInput, *model.Dashboard] {
	return NewForm(KindCreateDashboard, DashboardFallbackMessage,
		func(ctx context.Context, in DashboardInput) (*model.Dashboard, error) {
			return client.CreateDashboard(ctx, &backend.CreateDashboardRequest{Title: in.Title})
		}, cb)
}

// NewAddChart returns the modal that pins a result's chart to a dashboard.
func NewAddChart(client backend.Client, cb Callbacks[ChartInput, *model.DashboardChart]) *Form[ChartInput, *model.DashboardChart] {
	return NewForm(KindAddChart, AddChartFallbackMessage,
		func(ctx context.Context, in ChartInput) (*model.DashboardChart, error) {
			return client.AddChartToDashboard(ctx, &backend.AddChartRequest{
				DashboardID: in.DashboardID,
				ChartTitle:  in.ChartTitle,
				ChartData:   in.Chart,
			})
		}, cb)
}
