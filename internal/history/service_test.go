package history_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/at-ishikawa/transcriptus/internal/history"
	mock_history "github.com/at-ishikawa/transcriptus/internal/mocks/history"
)

func newTestService(t *testing.T) (*history.Service, *mock_history.MockRepository) {
	t.Helper()
	repo := mock_history.NewMockRepository(gomock.NewController(t))
	return history.NewService(repo, slog.New(slog.NewTextHandler(io.Discard, nil))), repo
}

func TestService_Record(t *testing.T) {
	tests := []struct {
		name   string
		userID string
		word   string
		setup  func(repo *mock_history.MockRepository)
	}{
		{
			name:   "signed-in search is stored",
			userID: "user-1",
			word:   "good morning",
			setup: func(repo *mock_history.MockRepository) {
				repo.EXPECT().Create(gomock.Any(), history.Search{
					UserID: "user-1",
					Type:   history.SearchTranslation,
					Word:   "good morning",
				}).Return(history.Search{ID: "s1"}, nil)
			},
		},
		{
			name:   "anonymous search is skipped",
			userID: "",
			word:   "good morning",
			setup:  func(repo *mock_history.MockRepository) {},
		},
		{
			name:   "storage failure is swallowed",
			userID: "user-1",
			word:   "good morning",
			setup: func(repo *mock_history.MockRepository) {
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(history.Search{}, errors.New("connection refused"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo := newTestService(t)
			tt.setup(repo)

			service.Record(context.Background(), tt.userID, history.SearchTranslation, tt.word)
		})
	}
}

func TestService_List(t *testing.T) {
	t.Run("page from the repository", func(t *testing.T) {
		service, repo := newTestService(t)
		want := history.NewPage([]history.Search{{ID: "s1", Word: "hello"}}, 2, history.DefaultPageSize, 11)
		repo.EXPECT().ListByUser(gomock.Any(), "user-1", 2, history.DefaultPageSize).Return(want, nil)

		assert.Equal(t, want, service.List(context.Background(), "user-1", 2))
	})

	t.Run("database failure degrades to an empty page", func(t *testing.T) {
		service, repo := newTestService(t)
		repo.EXPECT().ListByUser(gomock.Any(), "user-1", 1, history.DefaultPageSize).Return(history.Page{}, errors.New("connection refused"))

		got := service.List(context.Background(), "user-1", -4)
		assert.Equal(t, history.Page{Searches: []history.Search{}, Page: 1}, got)
	})
}

func TestNewPage(t *testing.T) {
	tests := []struct {
		name  string
		page  int
		total int
		want  history.Page
	}{
		{name: "empty", page: 1, total: 0, want: history.Page{Searches: []history.Search{}, Page: 1}},
		{name: "exact pages", page: 1, total: 20, want: history.Page{Searches: []history.Search{}, Page: 1, Total: 20, TotalPages: 2, HasNext: true}},
		{name: "middle page", page: 2, total: 21, want: history.Page{Searches: []history.Search{}, Page: 2, Total: 21, TotalPages: 3, HasNext: true, HasPrev: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, history.NewPage(nil, tt.page, history.DefaultPageSize, tt.total))
		})
	}
}
