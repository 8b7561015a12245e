package repository

import (
	"context"

	"kanban_webapp/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ListRepository struct {
	db *pgxpool.Pool
}

func NewListRepository(db *pgxpool.Pool) *ListRepository {
	return &ListRepository{db: db}
}

func (r *ListRepository) Create(ctx context.Context, l *domain.List) error {
	l.ID = uuid.NewString()

	err := r.db.QueryRow(ctx,
		`INSERT INTO lists (id, board_id, title, "order") VALUES ($1, $2, $3, $4) RETURNING created_at`,
		l.ID, l.BoardID, l.Title, l.Order,
	).Scan(&l.CreatedAt)
	if err != nil {
		return domain.Internal("create list", err)
	}
	return nil
}

// MaxOrder returns the highest order among a board's lists, 0 if it has none.
// Callers compute order as max+1; the read and the insert are separate
// statements, so concurrent creates can produce duplicate orders.
func (r *ListRepository) MaxOrder(ctx context.Context, boardID string) (int, error) {
	var max int
	err := r.db.QueryRow(ctx,
		`SELECT COALESCE(MAX("order"), 0) FROM lists WHERE board_id = $1`,
		boardID,
	).Scan(&max)
	if err != nil {
		return 0, domain.Internal("max list order", err)
	}
	return max, nil
}

func (r *ListRepository) Delete(ctx context.Context, listID string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM lists WHERE id = $1`, listID)
	if err != nil {
		return domain.Internal("delete list", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.NotFound("List not found")
	}
	return nil
}
