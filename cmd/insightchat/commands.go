package main

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/anurag-deore/ai-monitoring-analytics/internal/backend"
	"github.com/anurag-deore/ai-monitoring-analytics/internal/config"
	"github.com/anurag-deore/ai-monitoring-analytics/internal/modal"
	"github.com/anurag-deore/ai-monitoring-analytics/internal/model"
	"github.com/anurag-deore/ai-monitoring-analytics/internal/render"
	"github.com/anurag-deore/ai-monitoring-analytics/internal/workspace"
)

var (
	promptStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#2CD7C7"))
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#2C4A54"))
)

type cliOptions struct {
	backendURL string
	timeout    time.Duration
}

// newRootCmd builds the command tree. cfg supplies defaults that flags override.
func newRootCmd(cfg *config.Config) *cobra.Command {
	opts := &cliOptions{backendURL: cfg.BackendURL, timeout: cfg.RequestTimeout}

	root := &cobra.Command{
		Use:           "insightchat",
		Short:         "Ask the analytics backend questions from the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.backendURL, "backend-url", opts.backendURL, "analytics backend base URL")
	root.PersistentFlags().DurationVar(&opts.timeout, "timeout", opts.timeout, "per-request timeout")

	root.AddCommand(
		newAskCmd(opts),
		newHistoryCmd(opts),
		newChatsCmd(opts),
		newDeleteCmd(opts),
		newRenameCmd(opts),
		newDashboardsCmd(opts),
		newReportCmd(opts),
		newDashboardCmd(opts),
	)
	return root
}

func (o *cliOptions) workspace() *workspace.Workspace {
	return workspace.New(backend.NewHTTPClient(o.backendURL, o.timeout))
}

func newAskCmd(opts *cliOptions) *cobra.Command {
	var chatID string
	cmd := &cobra.Command{
		Use:   "ask [question]",
		Short: "Ask a question, optionally inside an existing chat",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws := opts.workspace()
			defer ws.Close()
			if chatID != "" {
				ws.SetSessionID(chatID)
			}

			sub := ws.Ask(cmd.Context(), strings.Join(args, " "))
			if sub == nil {
				// Nothing to ask.
				return nil
			}
			result, err := sub.Wait()
			if err != nil {
				return fmt.Errorf("query failed: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, render.Terminal(result))
			fmt.Fprintln(out, mutedStyle.Render("chat: "+ws.SessionID()))
			return nil
		},
	}
	cmd.Flags().StringVar(&chatID, "chat", "", "continue the chat with this id")
	return cmd
}

func newHistoryCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "history [chat-id]",
		Short: "Print the transcript of a chat",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws := opts.workspace()
			defer ws.Close()
			if err := ws.Open(cmd.Context(), args[0]); err != nil {
				return err
			}
			printTranscript(cmd.OutOrStdout(), ws.Messages())
			return nil
		},
	}
}

func newChatsCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "chats",
		Short: "List chats, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ws := opts.workspace()
			defer ws.Close()
			if err := ws.RefreshChats(cmd.Context()); err != nil {
				return err
			}
			chats := ws.Chats()
			if len(chats) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), mutedStyle.Render("No chats yet."))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), render.TerminalTable(chatTable(chats)))
			return nil
		},
	}
}

func newDeleteCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "delete [chat-id]",
		Short: "Delete a chat",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws := opts.workspace()
			defer ws.Close()
			if err := ws.DeleteChat(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted chat %s\n", args[0])
			return nil
		},
	}
}

func newRenameCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "rename [chat-id] [title]",
		Short: "Rename a chat",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			title := strings.Join(args[1:], " ")
			if strings.TrimSpace(title) == "" {
				return fmt.Errorf("title must not be blank")
			}
			ws := opts.workspace()
			defer ws.Close()
			if err := ws.RenameChat(cmd.Context(), args[0], title); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Renamed chat %s to %q\n", args[0], title)
			return nil
		},
	}
}

func newDashboardsCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboards [dashboard-id]",
		Short: "List dashboards, or the charts of one dashboard",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws := opts.workspace()
			defer ws.Close()
			out := cmd.OutOrStdout()

			if len(args) == 1 {
				charts, err := ws.DashboardCharts(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				view := render.TableView{Columns: []string{"chart_id", "chart_title", "created_at"}}
				for _, c := range charts {
					view.Cells = append(view.Cells, []string{c.ChartID, c.ChartTitle, c.CreatedAt})
				}
				fmt.Fprintln(out, render.TerminalTable(view))
				return nil
			}

			dashboards, err := ws.Dashboards(cmd.Context())
			if err != nil {
				return err
			}
			if len(dashboards) == 0 {
				fmt.Fprintln(out, mutedStyle.Render("No dashboards yet."))
				return nil
			}
			view := render.TableView{Columns: []string{"dashboard_id", "title", "charts"}}
			for _, d := range dashboards {
				view.Cells = append(view.Cells, []string{d.ID, d.Title, fmt.Sprint(d.ChartsCount)})
			}
			fmt.Fprintln(out, render.TerminalTable(view))
			return nil
		},
	}
}

func newReportCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "report [title]",
		Short: "Create a report",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws := opts.workspace()
			defer ws.Close()
			if err := ws.OpenModal(modal.KindCreateReport); err != nil {
				return err
			}
			out, err := ws.CreateReport(cmd.Context(), modal.ReportInput{Title: strings.Join(args, " ")})
			return reportOutcome(cmd.OutOrStdout(), out, err, ws)
		},
	}
}

func newDashboardCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard [title]",
		Short: "Create a dashboard",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws := opts.workspace()
			defer ws.Close()
			if err := ws.OpenModal(modal.KindCreateDashboard); err != nil {
				return err
			}
			out, err := ws.CreateDashboard(cmd.Context(), modal.DashboardInput{Title: strings.Join(args, " ")})
			return reportOutcome(cmd.OutOrStdout(), out, err, ws)
		},
	}
}

func reportOutcome[R any](w io.Writer, out modal.Outcome[R], err error, ws *workspace.Workspace) error {
	if err != nil {
		return err
	}
	if !out.OK() {
		return fmt.Errorf("%s", out.Message)
	}
	fmt.Fprintln(w, ws.Snapshot().Notice)
	return nil
}

func printTranscript(w io.Writer, msgs []model.Message) {
	for _, m := range msgs {
		if m.Role == model.RoleUser {
			fmt.Fprintln(w, promptStyle.Render("> "+m.Content))
			continue
		}
		if m.Response != nil {
			fmt.Fprintln(w, render.Terminal(m.Response))
		} else {
			fmt.Fprintln(w, m.Content)
		}
		fmt.Fprintln(w)
	}
}

func chatTable(chats []model.ChatEntry) render.TableView {
	view := render.TableView{Columns: []string{"chat_id", "query", "when"}}
	for _, c := range chats {
		label := c.Query
		if c.Title != "" {
			label = c.Title
		}
		when := render.MissingCell
		if !c.Timestamp.IsZero() {
			when = c.Timestamp.Local().Format("2006-01-02 15:04")
		}
		view.Cells = append(view.Cells, []string{c.ChatID, label, when})
	}
	return view
}

// run executes the CLI and returns the process exit code.
func run(ctx context.Context, cfg *config.Config, args []string, stdout, stderr io.Writer) int {
	root := newRootCmd(cfg)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		return 1
	}
	return 0
}
