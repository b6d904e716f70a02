package interfaces

import (
	"context"

	"github.com/anurag-deore/ai-monitoring-analytics/internal/modal"
	"github.com/anurag-deore/ai-monitoring-analytics/internal/model"
	"github.com/anurag-deore/ai-monitoring-analytics/internal/service"
	"github.com/anurag-deore/ai-monitoring-analytics/internal/workspace"
)

// Workspace is what the HTTP layer needs from a session view. Handlers depend
// on this interface so they can be tested against a mock.
type Workspace interface {
	SessionID() string
	Snapshot() workspace.Snapshot
	Subscribe() (<-chan struct{}, func(), error)

	Ask(ctx context.Context, query string) *service.Submission
	Open(ctx context.Context, sessionID string) error
	NewChat()

	RefreshChats(ctx context.Context) error
	Chats() []model.ChatEntry
	DeleteChat(ctx context.Context, chatID string) error
	RenameChat(ctx context.Context, chatID, title string) error

	Dashboards(ctx context.Context) ([]model.Dashboard, error)
	DashboardCharts(ctx context.Context, dashboardID string) ([]model.DashboardChart, error)

	ModalState() modal.State
	OpenModal(kind modal.Kind) error
	CloseModal() bool
	CreateReport(ctx context.Context, in modal.ReportInput) (modal.Outcome[*model.Report], error)
	CreateDashboard(ctx context.Context, in modal.DashboardInput) (modal.Outcome[*model.Dashboard], error)
	AddChart(ctx context.Context, in modal.ChartInput) (modal.Outcome[*model.DashboardChart], error)
}

var _ Workspace = (*workspace.Workspace)(nil)
