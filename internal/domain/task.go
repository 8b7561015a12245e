package domain

import "time"

type Task struct {
	ID        string    `db:"id" json:"id"`
	ListID    string    `db:"list_id" json:"listId"`
	Content   string    `db:"content" json:"content"`
	Order     int       `db:"order" json:"order"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

// TaskUpdate carries a partial update. Nil fields are left untouched.
type TaskUpdate struct {
	ListID  *string `json:"listId"`
	Content *string `json:"content"`
	Order   *int    `json:"order"`
}

// Empty reports whether the update would change nothing.
func (u TaskUpdate) Empty() bool {
	return u.ListID == nil && u.Content == nil && u.Order == nil
}
