package repository

import (
	"context"

	"kanban_webapp/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

// BoardPageRepository serves the denormalized board page read. One query
// instead of N+1: the client regroups the rows into a tree.
type BoardPageRepository struct {
	db *pgxpool.Pool
}

func NewBoardPageRepository(db *pgxpool.Pool) *BoardPageRepository {
	return &BoardPageRepository{db: db}
}

// Rows returns one row per (board, list, task) combination for the user,
// left-joined so boards without lists and lists without tasks still appear.
func (r *BoardPageRepository) Rows(ctx context.Context, userID string) ([]domain.JoinedRow, error) {
	rows, err := r.db.Query(ctx, `
		SELECT b.id, b.title,
		       l.id, l.title, l."order",
		       t.id, t.content, t."order"
		FROM boards b
		LEFT JOIN lists l ON l.board_id = b.id
		LEFT JOIN tasks t ON t.list_id = l.id
		WHERE b.user_id = $1
		ORDER BY b.created_at ASC, l."order" ASC, t."order" ASC`,
		userID,
	)
	if err != nil {
		return nil, domain.Internal("board page rows", err)
	}
	defer rows.Close()

	res := []domain.JoinedRow{}
	for rows.Next() {
		var jr domain.JoinedRow
		if err := rows.Scan(
			&jr.BoardID, &jr.BoardName,
			&jr.ListID, &jr.ListTitle, &jr.ListOrder,
			&jr.TaskID, &jr.TaskContent, &jr.TaskOrder,
		); err != nil {
			return nil, domain.Internal("scan board page row", err)
		}
		res = append(res, jr)
	}
	return res, rows.Err()
}
