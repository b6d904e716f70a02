// Package workspace holds the state of one top-level session view: the message
// store of the active conversation, the chat directory, the current session id,
// and the modal dispatcher. Everything the HTTP layer and the CLI do goes
// through a Workspace.
package workspace

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/anurag-deore/ai-monitoring-analytics/internal/backend"
	app_errors "github.com/anurag-deore/ai-monitoring-analytics/internal/errors"
	"github.com/anurag-deore/ai-monitoring-analytics/internal/modal"
	"github.com/anurag-deore/ai-monitoring-analytics/internal/model"
	"github.com/anurag-deore/ai-monitoring-analytics/internal/render"
	"github.com/anurag-deore/ai-monitoring-analytics/internal/service"
	"github.com/anurag-deore/ai-monitoring-analytics/internal/store"
)

// ErrClosed is returned by Subscribe after Close.
var ErrClosed = errors.New("workspace closed")

// MessageView is a message together with the table view of its result rows.
type MessageView struct {
	model.Message
	Table  *render.TableView  `json:"table,omitempty"`
	Points []model.ChartPoint `json:"chart_points,omitempty"`
}

// Snapshot is the complete observable state of a workspace.
type Snapshot struct {
	SessionID string            `json:"session_id"`
	Messages  []MessageView     `json:"messages"`
	Chats     []model.ChatEntry `json:"chats"`
	Modal     modal.State       `json:"modal"`
	Notice    string            `json:"notice,omitempty"`
}

type Workspace struct {
	client    backend.Client
	messages  *store.MessageStore
	directory *store.ChatDirectory
	modals    *modal.Dispatcher
	queries   *service.QueryService
	history   *service.HistoryService
	chats     *service.DirectoryService
	boards    *service.DashboardService

	mu         sync.RWMutex
	sessionID  string
	generation uint64
	notice     string

	subMu  sync.Mutex
	subs   map[chan struct{}]struct{}
	closed bool
}

// New builds a workspace on top of client, starting on a new chat.
func New(client backend.Client) *Workspace {
	w := &Workspace{
		client:    client,
		messages:  store.NewMessageStore(),
		directory: store.NewChatDirectory(),
		modals:    modal.NewDispatcher(),
		subs:      make(map[chan struct{}]struct{}),
	}
	w.queries = service.NewQueryService(client, w.messages, w.directory, w)
	w.history = service.NewHistoryService(client, w.messages)
	w.chats = service.NewDirectoryService(client, w.directory)
	w.boards = service.NewDashboardService(client)

	w.messages.OnChange(w.broadcast)
	w.directory.OnChange(w.broadcast)
	w.modals.OnChange(w.broadcast)
	return w
}

func (w *Workspace) SessionID() string {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.sessionID
}

// SetSessionID points the workspace at a session without reloading the
// transcript. It counts as a navigation.
func (w *Workspace) SetSessionID(id string) {
	w.mu.Lock()
	w.generation++
	w.sessionID = id
	w.mu.Unlock()
	slog.Debug("Session id updated", "chat_id", id)
	w.broadcast()
}

// Navigation returns the session id together with the navigation generation.
func (w *Workspace) Navigation() (string, uint64) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.sessionID, w.generation
}

// SetSessionIDIf makes a freshly created chat addressable, unless the user
// navigated after gen was taken.
func (w *Workspace) SetSessionIDIf(gen uint64, id string) bool {
	w.mu.Lock()
	if gen != w.generation {
		w.mu.Unlock()
		return false
	}
	w.sessionID = id
	w.mu.Unlock()
	slog.Debug("Session id updated", "chat_id", id)
	w.broadcast()
	return true
}

// Ask submits a query in the current session.
func (w *Workspace) Ask(ctx context.Context, query string) *service.Submission {
	return w.queries.Ask(ctx, query)
}

// Open navigates to sessionID and loads its transcript. If another navigation
// happens while the transcript is loading, the stale result is dropped.
func (w *Workspace) Open(ctx context.Context, sessionID string) error {
	w.mu.Lock()
	w.generation++
	gen := w.generation
	w.sessionID = sessionID
	w.mu.Unlock()
	w.broadcast()

	msgs, err := w.history.Fetch(ctx, sessionID)

	w.mu.Lock()
	defer w.mu.Unlock()
	if gen != w.generation {
		slog.Debug("Dropping superseded history load", "chat_id", sessionID)
		return nil
	}
	if err != nil {
		w.messages.Replace(nil)
		return err
	}
	w.messages.Replace(msgs)
	return nil
}

// NewChat clears the conversation and the session id.
func (w *Workspace) NewChat() {
	w.mu.Lock()
	w.generation++
	w.sessionID = ""
	w.messages.Replace(nil)
	w.mu.Unlock()
	w.broadcast()
}

// DeleteChat deletes a session on the backend. Deleting the active session
// starts a new chat.
func (w *Workspace) DeleteChat(ctx context.Context, chatID string) error {
	if err := w.chats.Delete(ctx, chatID); err != nil {
		return err
	}
	if w.SessionID() == chatID {
		w.NewChat()
	}
	return nil
}

// RenameChat retitles a session on the backend, then in the directory.
func (w *Workspace) RenameChat(ctx context.Context, chatID, title string) error {
	return w.chats.Rename(ctx, chatID, title)
}

// Dashboards lists the dashboards a chart can be added to.
func (w *Workspace) Dashboards(ctx context.Context) ([]model.Dashboard, error) {
	return w.boards.List(ctx)
}

func (w *Workspace) DashboardCharts(ctx context.Context, dashboardID string) ([]model.DashboardChart, error) {
	return w.boards.Charts(ctx, dashboardID)
}

func (w *Workspace) RefreshChats(ctx context.Context) error {
	return w.chats.Refresh(ctx)
}

func (w *Workspace) Chats() []model.ChatEntry {
	return w.directory.Snapshot()
}

func (w *Workspace) Messages() []model.Message {
	return w.messages.Messages()
}

// Modals exposes the dispatcher for state queries.
func (w *Workspace) Modals() *modal.Dispatcher {
	return w.modals
}

// CloseModal closes the active modal. It returns false while a submit is in
// flight.
func (w *Workspace) CloseModal() bool {
	return w.modals.Close()
}

func (w *Workspace) ModalState() modal.State {
	return w.modals.State()
}

// OpenModal opens the modal of the given kind bound to this workspace.
func (w *Workspace) OpenModal(kind modal.Kind) error {
	var v modal.Variant
	switch kind {
	case modal.KindCreateReport:
		v = modal.NewCreateReport(w.client, modal.Callbacks[modal.ReportInput, *model.Report]{
			OnSuccess: func(r *model.Report, in modal.ReportInput) {
				w.setNotice(fmt.Sprintf("Report %q created", in.Title))
			},
			OnError: w.setNotice,
		})
	case modal.KindCreateDashboard:
		v = modal.NewCreateDashboard(w.client, modal.Callbacks[modal.DashboardInput, *model.Dashboard]{
			OnSuccess: func(d *model.Dashboard, in modal.DashboardInput) {
				w.setNotice(fmt.Sprintf("Dashboard %q created", in.Title))
			},
			OnError: w.setNotice,
		})
	case modal.KindAddChart:
		v = modal.NewAddChart(w.client, modal.Callbacks[modal.ChartInput, *model.DashboardChart]{
			OnSuccess: func(c *model.DashboardChart, in modal.ChartInput) {
				w.setNotice(fmt.Sprintf("Chart %q added to dashboard", in.ChartTitle))
			},
			OnError: w.setNotice,
		})
	default:
		return fmt.Errorf("%w: unknown modal kind %q", app_errors.ErrNotFound, kind)
	}
	return w.modals.Open(v)
}

func (w *Workspace) CreateReport(ctx context.Context, in modal.ReportInput) (modal.Outcome[*model.Report], error) {
	return modal.Submit[modal.ReportInput, *model.Report](ctx, w.modals, modal.KindCreateReport, in)
}

func (w *Workspace) CreateDashboard(ctx context.Context, in modal.DashboardInput) (modal.Outcome[*model.Dashboard], error) {
	return modal.Submit[modal.DashboardInput, *model.Dashboard](ctx, w.modals, modal.KindCreateDashboard, in)
}

func (w *Workspace) AddChart(ctx context.Context, in modal.ChartInput) (modal.Outcome[*model.DashboardChart], error) {
	return modal.Submit[modal.ChartInput, *model.DashboardChart](ctx, w.modals, modal.KindAddChart, in)
}

func (w *Workspace) setNotice(msg string) {
	w.mu.Lock()
	w.notice = msg
	w.mu.Unlock()
}

// Snapshot returns the current state with table views computed for every
// resolved result.
func (w *Workspace) Snapshot() Snapshot {
	w.mu.RLock()
	id, notice := w.sessionID, w.notice
	w.mu.RUnlock()

	msgs := w.messages.Messages()
	views := make([]MessageView, 0, len(msgs))
	for _, m := range msgs {
		v := MessageView{Message: m}
		if m.Response != nil {
			if len(m.Response.Data) > 0 {
				t := render.ResultTable(m.Response)
				v.Table = &t
			}
			v.Points = render.ChartPoints(m.Response)
		}
		views = append(views, v)
	}
	return Snapshot{
		SessionID: id,
		Messages:  views,
		Chats:     w.directory.Snapshot(),
		Modal:     w.modals.State(),
		Notice:    notice,
	}
}

// Subscribe returns a channel that receives a signal after every state change.
// Signals coalesce; readers call Snapshot to see the new state. The returned
// func unsubscribes and closes the channel.
func (w *Workspace) Subscribe() (<-chan struct{}, func(), error) {
	w.subMu.Lock()
	defer w.subMu.Unlock()
	if w.closed {
		return nil, nil, ErrClosed
	}
	ch := make(chan struct{}, 1)
	w.subs[ch] = struct{}{}
	var once sync.Once
	cancel := func() {
		once.Do(func() {
			w.subMu.Lock()
			defer w.subMu.Unlock()
			if _, ok := w.subs[ch]; ok {
				delete(w.subs, ch)
				close(ch)
			}
		})
	}
	return ch, cancel, nil
}

// Close ends every subscription.
func (w *Workspace) Close() {
	w.subMu.Lock()
	defer w.subMu.Unlock()
	if w.closed {
		return
	}
	w.closed = true
	for ch := range w.subs {
		close(ch)
	}
	w.subs = nil
}

func (w *Workspace) broadcast() {
	w.subMu.Lock()
	defer w.subMu.Unlock()
	for ch := range w.subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}
