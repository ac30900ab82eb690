package daily

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/at-ishikawa/transcriptus/internal/cache"
)

//go:generate mockgen -source=store.go -destination=../mocks/daily/mock_store.go -package=mock_daily

// Store keeps the daily word of each date. Get returns (nil, nil) when the
// date has no word yet.
type Store interface {
	Get(ctx context.Context, date string) (*DailyWord, error)
	Save(ctx context.Context, word DailyWord) error
}

// MemoryStore keeps daily words in process memory.
type MemoryStore struct {
	cache *cache.TTL[string, DailyWord]
}

func NewMemoryStore(ttl time.Duration, opts ...cache.Option) *MemoryStore {
	return &MemoryStore{cache: cache.NewTTL[string, DailyWord](ttl, opts...)}
}

func (s *MemoryStore) Get(_ context.Context, date string) (*DailyWord, error) {
	word, ok := s.cache.Get(date)
	if !ok {
		return nil, nil
	}
	return &word, nil
}

func (s *MemoryStore) Save(_ context.Context, word DailyWord) error {
	s.cache.Set(word.Date, word)
	return nil
}

// MySQLStore keeps daily words in the daily_words table. The first word
// saved for a date wins.
type MySQLStore struct {
	db *sqlx.DB
}

func NewMySQLStore(db *sqlx.DB) *MySQLStore {
	return &MySQLStore{db: db}
}

func (s *MySQLStore) Get(ctx context.Context, date string) (*DailyWord, error) {
	var word DailyWord
	err := s.db.GetContext(ctx, &word, "SELECT date, word, definition, phonetic FROM daily_words WHERE date = ?", date)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get daily word for %s: %w", date, err)
	}
	return &word, nil
}

func (s *MySQLStore) Save(ctx context.Context, word DailyWord) error {
	_, err := s.db.NamedExecContext(ctx,
		"INSERT IGNORE INTO daily_words (date, word, definition, phonetic) VALUES (:date, :word, :definition, :phonetic)",
		word)
	if err != nil {
		return fmt.Errorf("save daily word for %s: %w", word.Date, err)
	}
	return nil
}
