// Package news provides the optional news feed shown on the news screen.
// News is best effort: a missing or unreadable source yields an empty list,
// never a user-facing failure.
package news

import "context"

// Item is a single news entry. Only Title is required.
type Item struct {
	Title   string `json:"title" db:"title"`
	Date    string `json:"date,omitempty" db:"date"`
	Summary string `json:"summary,omitempty" db:"summary"`
	URL     string `json:"url,omitempty" db:"url"`
}

// Store loads news items in feed order. Implementations degrade to an empty
// list on any source failure instead of returning an error.
type Store interface {
	Load(ctx context.Context) []Item
}
