package history

import (
	"context"
	"log/slog"
	"strings"
)

// Service records and lists searches. Persistence failures never reach
// the caller.
type Service struct {
	repository Repository
	log        *slog.Logger
}

func NewService(repository Repository, logger *slog.Logger) *Service {
	return &Service{
		repository: repository,
		log:        logger.With("component", "history"),
	}
}

// Record stores a search for userID. Anonymous searches are not recorded.
func (s *Service) Record(ctx context.Context, userID string, searchType SearchType, word string) {
	if userID == "" || strings.TrimSpace(word) == "" {
		return
	}
	if _, err := s.repository.Create(ctx, Search{UserID: userID, Type: searchType, Word: word}); err != nil {
		s.log.WarnContext(ctx, "failed to record search",
			slog.String("user_id", userID),
			slog.String("type", string(searchType)),
			slog.String("error", err.Error()),
		)
	}
}

// List returns a page of the user's history, or an empty page when the
// history cannot be read.
func (s *Service) List(ctx context.Context, userID string, page int) Page {
	if page < 1 {
		page = 1
	}
	result, err := s.repository.ListByUser(ctx, userID, page, DefaultPageSize)
	if err != nil {
		s.log.WarnContext(ctx, "history unavailable, showing an empty page",
			slog.String("user_id", userID),
			slog.String("error", err.Error()),
		)
		return NewPage(nil, page, DefaultPageSize, 0)
	}
	return result
}

// User returns the user, or nil when unknown or unreadable.
func (s *Service) User(ctx context.Context, id string) *User {
	user, err := s.repository.FindUser(ctx, id)
	if err != nil {
		s.log.WarnContext(ctx, "failed to find user", slog.String("user_id", id), slog.String("error", err.Error()))
		return nil
	}
	return user
}
