package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/anurag-deore/ai-monitoring-analytics/internal/backend"
	app_errors "github.com/anurag-deore/ai-monitoring-analytics/internal/errors"
	"github.com/anurag-deore/ai-monitoring-analytics/internal/model"
	"github.com/anurag-deore/ai-monitoring-analytics/internal/store"
)

const tracerName = "github.com/anurag-deore/ai-monitoring-analytics/internal/service"

// ApologyMessage replaces a pending bot turn whose query failed for any reason.
const ApologyMessage = "Sorry, I encountered an error processing your request. Please try again."

// Navigator owns the externally visible current-session identifier. The token
// changes every time the user navigates (opens a chat or starts a new one).
type Navigator interface {
	Navigation() (sessionID string, token uint64)
	// SetSessionIDIf records id unless a navigation happened since token was issued.
	SetSessionIDIf(token uint64, id string) bool
}

// QueryService turns a user query into a user/bot message pair, sends it to the
// backend and reconciles the answer into the message store.
type QueryService struct {
	client    backend.Client
	messages  *store.MessageStore
	directory *store.ChatDirectory
	nav       Navigator
	now       func() time.Time
}

func NewQueryService(client backend.Client, messages *store.MessageStore, directory *store.ChatDirectory, nav Navigator) *QueryService {
	return &QueryService{
		client:    client,
		messages:  messages,
		directory: directory,
		nav:       nav,
		now:       time.Now,
	}
}

// Submission tracks one in-flight query.
type Submission struct {
	UserID string
	BotID  string

	done   chan struct{}
	token  uint64
	result *model.QueryResult
	err    error
}

// Done is closed once the bot turn has been settled (or dropped).
func (s *Submission) Done() <-chan struct{} { return s.done }

// Wait blocks until the submission settles and returns its outcome.
func (s *Submission) Wait() (*model.QueryResult, error) {
	<-s.done
	return s.result, s.err
}

// Ask submits query in the navigator's current session.
func (s *QueryService) Ask(ctx context.Context, query string) *Submission {
	sessionID, token := s.nav.Navigation()
	return s.submit(ctx, query, sessionID, token)
}

// Submit appends the user turn and a pending bot turn, then resolves the bot turn
// asynchronously. It returns nil without touching the store when query is blank.
// sessionID is empty for a new chat.
//
// Cancellation of ctx does not abort the request; only its values are kept.
func (s *QueryService) Submit(ctx context.Context, query, sessionID string) *Submission {
	_, token := s.nav.Navigation()
	return s.submit(ctx, query, sessionID, token)
}

func (s *QueryService) submit(ctx context.Context, query, sessionID string, token uint64) *Submission {
	if strings.TrimSpace(query) == "" {
		return nil
	}

	now := s.now()
	sub := &Submission{
		UserID: uuid.NewString(),
		BotID:  uuid.NewString(),
		done:   make(chan struct{}),
		token:  token,
	}
	s.messages.AppendPair(
		model.Message{ID: sub.UserID, Role: model.RoleUser, Content: query, Timestamp: now},
		model.Message{ID: sub.BotID, Role: model.RoleBot, Query: query, Timestamp: now, Pending: true},
	)

	req := &model.QueryRequest{Query: query, ChatType: model.ChatTypeNew}
	if sessionID != "" {
		req.ChatID = sessionID
		req.ChatType = model.ChatTypeExisting
	}

	go s.run(context.WithoutCancel(ctx), sub, req)
	return sub
}

func (s *QueryService) run(ctx context.Context, sub *Submission, req *model.QueryRequest) {
	defer close(sub.done)

	ctx, span := otel.Tracer(tracerName).Start(ctx, "QueryService.Submit")
	defer span.End()
	span.SetAttributes(attribute.String("chat.type", string(req.ChatType)))

	queriesInFlight.Inc()
	start := time.Now()
	result, err := s.client.SubmitQuery(ctx, req)
	queriesInFlight.Dec()
	queryDuration.Observe(time.Since(start).Seconds())

	if err == nil && (result == nil || !result.Success) {
		err = &app_errors.RejectedError{Message: "empty or unsuccessful result"}
	}
	sub.err = err

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "query failed")
		queriesTotal.WithLabelValues(outcomeLabel(err)).Inc()
		slog.Warn("Query failed", "message_id", sub.BotID, "chat_type", req.ChatType, "error", err)
		if !s.messages.Fail(sub.BotID, ApologyMessage) {
			slog.Debug("Dropping failed result for a message no longer in the store", "message_id", sub.BotID)
		}
		return
	}

	sub.result = result
	queriesTotal.WithLabelValues("success").Inc()
	visible := s.messages.Resolve(sub.BotID, result.Summary, result)
	if !visible {
		slog.Debug("Dropping result for a message no longer in the store", "message_id", sub.BotID)
	}

	if req.ChatType == model.ChatTypeNew && result.ChatID != "" {
		// The session exists on the backend either way; only move the user to it
		// if they are still looking at the conversation that created it.
		if visible && !s.nav.SetSessionIDIf(sub.token, result.ChatID) {
			slog.Debug("Not navigating to new chat, user moved on", "chat_id", result.ChatID)
		}
		s.directory.Prepend(model.ChatEntry{ChatID: result.ChatID, Query: req.Query, Timestamp: s.now()})
		slog.Info("New chat session created", "chat_id", result.ChatID)
	}
}

func outcomeLabel(err error) string {
	switch {
	case errors.Is(err, app_errors.ErrTransport):
		return "transport_error"
	case errors.Is(err, app_errors.ErrRejected):
		return "rejected"
	default:
		return "error"
	}
}
