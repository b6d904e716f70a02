package service

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/singleflight"

	"github.com/anurag-deore/ai-monitoring-analytics/internal/backend"
	"github.com/anurag-deore/ai-monitoring-analytics/internal/model"
)

// DashboardService lists dashboards so a chart can be pinned to one of them.
type DashboardService struct {
	client backend.Client
	group  singleflight.Group
}

func NewDashboardService(client backend.Client) *DashboardService {
	return &DashboardService{client: client}
}

// List returns every dashboard known to the backend.
func (s *DashboardService) List(ctx context.Context) ([]model.Dashboard, error) {
	v, err, _ := s.group.Do("dashboards", func() (any, error) {
		return s.client.ListDashboards(ctx)
	})
	if err != nil {
		slog.Error("Failed to list dashboards", "error", err)
		return nil, fmt.Errorf("could not list dashboards: %w", err)
	}
	return v.([]model.Dashboard), nil
}

// Charts returns the charts pinned to dashboardID.
func (s *DashboardService) Charts(ctx context.Context, dashboardID string) ([]model.DashboardChart, error) {
	charts, err := s.client.DashboardCharts(ctx, dashboardID)
	if err != nil {
		slog.Error("Failed to load dashboard charts", "dashboard_id", dashboardID, "error", err)
		return nil, fmt.Errorf("could not load charts of dashboard %s: %w", dashboardID, err)
	}
	return charts, nil
}
