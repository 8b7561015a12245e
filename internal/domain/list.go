package domain

import (
	"strings"
	"time"
)

type List struct {
	ID        string    `db:"id" json:"id"`
	BoardID   string    `db:"board_id" json:"boardId"`
	Title     string    `db:"title" json:"title"`
	Order     int       `db:"order" json:"order"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

// ListSeed describes one of the lists every new board starts with.
type ListSeed struct {
	Title string
	Order int
}

// DefaultLists are seeded in this exact order when a board is created.
var DefaultLists = []ListSeed{
	{Title: "Today", Order: 0},
	{Title: "This Week", Order: 1},
	{Title: "Future", Order: 2},
	{Title: "Completed", Order: 3},
}

// IsCompletedTitle reports whether a list is the special "Completed" list.
// Matching is case-insensitive on the title, not on the seeded identity.
func IsCompletedTitle(title string) bool {
	return strings.EqualFold(title, "Completed")
}
