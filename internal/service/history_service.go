package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/anurag-deore/ai-monitoring-analytics/internal/backend"
	"github.com/anurag-deore/ai-monitoring-analytics/internal/model"
	"github.com/anurag-deore/ai-monitoring-analytics/internal/store"
)

// HistoryService rehydrates a stored session transcript into the message store.
type HistoryService struct {
	client   backend.Client
	messages *store.MessageStore
}

func NewHistoryService(client backend.Client, messages *store.MessageStore) *HistoryService {
	return &HistoryService{client: client, messages: messages}
}

// Load replaces the message store with the transcript of sessionID. On failure the
// store is left empty and the error is returned.
func (s *HistoryService) Load(ctx context.Context, sessionID string) error {
	messages, err := s.Fetch(ctx, sessionID)
	if err != nil {
		s.messages.Replace(nil)
		return err
	}
	s.messages.Replace(messages)
	return nil
}

// Fetch downloads the transcript of sessionID and converts it into user/bot message
// pairs without touching the store.
func (s *HistoryService) Fetch(ctx context.Context, sessionID string) ([]model.Message, error) {
	exchanges, err := s.client.ChatHistory(ctx, sessionID)
	if err != nil {
		historyLoadsTotal.WithLabelValues(outcomeLabel(err)).Inc()
		slog.Error("Failed to load chat history", "chat_id", sessionID, "error", err)
		return nil, fmt.Errorf("could not load history for chat %s: %w", sessionID, err)
	}
	historyLoadsTotal.WithLabelValues("success").Inc()
	return s.rehydrate(sessionID, exchanges), nil
}

func (s *HistoryService) rehydrate(sessionID string, exchanges []model.StoredExchange) []model.Message {
	messages := make([]model.Message, 0, 2*len(exchanges))
	for i, ex := range exchanges {
		bot := model.Message{
			ID:        uuid.NewString(),
			Role:      model.RoleBot,
			Query:     ex.Query,
			Timestamp: ex.Timestamp,
		}
		result, err := ex.DecodeResult()
		if err != nil {
			degradedExchangesTotal.Inc()
			slog.Warn("Stored exchange could not be decoded", "chat_id", sessionID, "index", i, "error", err)
		} else {
			bot.Content = result.Summary
			bot.Response = result
		}

		messages = append(messages,
			model.Message{ID: uuid.NewString(), Role: model.RoleUser, Content: ex.Query, Timestamp: ex.Timestamp},
			bot,
		)
	}
	slog.Debug("Rehydrated chat history", "chat_id", sessionID, "exchanges", len(exchanges))
	return messages
}
