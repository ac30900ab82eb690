package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

//go:generate mockgen -source=repository.go -destination=../mocks/history/mock_repository.go -package=mock_history

// Repository persists searches and reads users.
type Repository interface {
	Create(ctx context.Context, search Search) (Search, error)
	ListByUser(ctx context.Context, userID string, page, limit int) (Page, error)
	FindUser(ctx context.Context, id string) (*User, error)
}

// DBRepository implements Repository using MySQL.
type DBRepository struct {
	db    *sqlx.DB
	now   func() time.Time
	newID func() string
}

func NewDBRepository(db *sqlx.DB) *DBRepository {
	return &DBRepository{
		db:    db,
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// Create stores search, assigning its ID and creation time when unset.
func (r *DBRepository) Create(ctx context.Context, search Search) (Search, error) {
	if search.ID == "" {
		search.ID = r.newID()
	}
	if search.CreatedAt.IsZero() {
		search.CreatedAt = r.now().UTC()
	}

	query, args, err := squirrel.Insert("searches").
		Columns("id", "user_id", "type", "word", "created_at").
		Values(search.ID, search.UserID, search.Type, search.Word, search.CreatedAt).
		ToSql()
	if err != nil {
		return Search{}, fmt.Errorf("build insert search: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return Search{}, fmt.Errorf("insert search: %w", err)
	}
	return search, nil
}

// ListByUser returns the page-th page (1-based) of the user's searches.
func (r *DBRepository) ListByUser(ctx context.Context, userID string, page, limit int) (Page, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultPageSize
	}

	query, args, err := squirrel.Select("id", "user_id", "type", "word", "created_at").
		From("searches").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		Offset(uint64((page - 1) * limit)).
		ToSql()
	if err != nil {
		return Page{}, fmt.Errorf("build select searches: %w", err)
	}
	var searches []Search
	if err := r.db.SelectContext(ctx, &searches, query, args...); err != nil {
		return Page{}, fmt.Errorf("select searches: %w", err)
	}

	query, args, err = squirrel.Select("COUNT(*)").
		From("searches").
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return Page{}, fmt.Errorf("build count searches: %w", err)
	}
	var total int
	if err := r.db.GetContext(ctx, &total, query, args...); err != nil {
		return Page{}, fmt.Errorf("count searches: %w", err)
	}

	return NewPage(searches, page, limit, total), nil
}

// FindUser returns (nil, nil) for an unknown id.
func (r *DBRepository) FindUser(ctx context.Context, id string) (*User, error) {
	query, args, err := squirrel.Select("id", "name", "email", "created_at").
		From("users").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select user: %w", err)
	}

	var user User
	err = r.db.GetContext(ctx, &user, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select user %s: %w", id, err)
	}
	return &user, nil
}

// NopRepository stands in when no database is configured.
type NopRepository struct{}

func (NopRepository) Create(_ context.Context, search Search) (Search, error) {
	return search, nil
}

func (NopRepository) ListByUser(_ context.Context, _ string, page, limit int) (Page, error) {
	if page < 1 {
		page = 1
	}
	return NewPage(nil, page, limit, 0), nil
}

func (NopRepository) FindUser(context.Context, string) (*User, error) {
	return nil, nil
}
