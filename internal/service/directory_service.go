package service

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/singleflight"

	"github.com/anurag-deore/ai-monitoring-analytics/internal/backend"
	"github.com/anurag-deore/ai-monitoring-analytics/internal/store"
)

// DirectoryService keeps the chat directory in step with the backend.
type DirectoryService struct {
	client    backend.Client
	directory *store.ChatDirectory

	// refreshGroup collapses concurrent refreshes into one backend call.
	refreshGroup singleflight.Group
}

func NewDirectoryService(client backend.Client, directory *store.ChatDirectory) *DirectoryService {
	return &DirectoryService{client: client, directory: directory}
}

// Refresh replaces the directory with the backend's list of chats. On failure the
// current directory is kept.
func (s *DirectoryService) Refresh(ctx context.Context) error {
	_, err, shared := s.refreshGroup.Do("chats", func() (any, error) {
		chats, err := s.client.ListChats(ctx)
		if err != nil {
			return nil, err
		}
		s.directory.Replace(chats)
		return nil, nil
	})
	if err != nil {
		slog.Error("Failed to refresh chat directory", "error", err, "shared", shared)
		return fmt.Errorf("could not list chats: %w", err)
	}
	return nil
}

// Delete asks the backend to delete chatID and removes it from the directory only
// once the backend has acknowledged the deletion.
func (s *DirectoryService) Delete(ctx context.Context, chatID string) error {
	slog.Info("Deleting chat", "chat_id", chatID)
	if err := s.client.DeleteChat(ctx, chatID); err != nil {
		slog.Error("Backend refused chat deletion", "chat_id", chatID, "error", err)
		return fmt.Errorf("could not delete chat %s: %w", chatID, err)
	}
	if !s.directory.Remove(chatID) {
		slog.Debug("Deleted chat was not in the local directory", "chat_id", chatID)
	}
	return nil
}

// Rename asks the backend to retitle chatID. The directory entry changes only
// after the backend acknowledges it.
func (s *DirectoryService) Rename(ctx context.Context, chatID, title string) error {
	if err := s.client.RenameChat(ctx, chatID, title); err != nil {
		slog.Error("Backend refused chat rename", "chat_id", chatID, "error", err)
		return fmt.Errorf("could not rename chat %s: %w", chatID, err)
	}
	if !s.directory.Rename(chatID, title) {
		slog.Debug("Renamed chat was not in the local directory", "chat_id", chatID)
	}
	return nil
}
