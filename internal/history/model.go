// Package history records what signed-in users searched for.
package history

import (
	"time"
)

// DefaultPageSize is the number of searches per history page.
const DefaultPageSize = 10

// SearchType tells which feature a search came from.
type SearchType string

const (
	SearchTranslation   SearchType = "TRANSLATION"
	SearchPronunciation SearchType = "PRONUNCIATION"
	SearchWord          SearchType = "WORD"
)

// Search is one recorded search.
type Search struct {
	ID        string     `json:"id" db:"id"`
	UserID    string     `json:"userId" db:"user_id"`
	Type      SearchType `json:"type" db:"type"`
	Word      string     `json:"word" db:"word"`
	CreatedAt time.Time  `json:"createdAt" db:"created_at"`
}

type User struct {
	ID        string    `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Email     string    `json:"email" db:"email"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// Page is one page of a user's searches, newest first.
type Page struct {
	Searches   []Search `json:"searches"`
	Page       int      `json:"page"`
	Total      int      `json:"total"`
	TotalPages int      `json:"totalPages"`
	HasNext    bool     `json:"hasNext"`
	HasPrev    bool     `json:"hasPrev"`
}

// NewPage computes the page counters for total searches.
func NewPage(searches []Search, page, limit, total int) Page {
	if searches == nil {
		searches = []Search{}
	}
	totalPages := 0
	if limit > 0 {
		totalPages = (total + limit - 1) / limit
	}
	return Page{
		Searches:   searches,
		Page:       page,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
		HasPrev:    page > 1,
	}
}
