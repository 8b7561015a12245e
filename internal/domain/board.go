package domain

import "time"

type Board struct {
	ID        string    `db:"id" json:"id"`
	UserID    string    `db:"user_id" json:"userId"`
	Title     string    `db:"title" json:"title"`
	Slug      string    `db:"slug" json:"slug"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

// BoardSummary is the sidebar shape: just enough to render and select a board.
type BoardSummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
