package repository

import (
	"context"
	"errors"

	"kanban_webapp/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BoardRepository struct {
	db *pgxpool.Pool
}

func NewBoardRepository(db *pgxpool.Pool) *BoardRepository {
	return &BoardRepository{db: db}
}

func (r *BoardRepository) Create(ctx context.Context, b *domain.Board) error {
	b.ID = uuid.NewString()

	err := r.db.QueryRow(ctx,
		`INSERT INTO boards (id, user_id, title, slug) VALUES ($1, $2, $3, $4) RETURNING created_at`,
		b.ID, b.UserID, b.Title, b.Slug,
	).Scan(&b.CreatedAt)
	if err != nil {
		if uniqueViolation(err) {
			return domain.Conflict("A board with this name already exists")
		}
		return domain.Internal("create board", err)
	}
	return nil
}

// GetByIDAndUser fetches a board only if it belongs to the given user.
// Absent and not-owned are indistinguishable on purpose.
func (r *BoardRepository) GetByIDAndUser(ctx context.Context, boardID, userID string) (*domain.Board, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, user_id, title, slug, created_at
		 FROM boards
		 WHERE id = $1 AND user_id = $2`,
		boardID, userID,
	)

	var b domain.Board
	if err := row.Scan(&b.ID, &b.UserID, &b.Title, &b.Slug, &b.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NotFound("Board not found or access denied")
		}
		return nil, domain.Internal("get board", err)
	}
	return &b, nil
}

// Delete removes a board; lists and tasks go with it via ON DELETE CASCADE.
func (r *BoardRepository) Delete(ctx context.Context, boardID string) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM boards WHERE id = $1`, boardID); err != nil {
		return domain.Internal("delete board", err)
	}
	return nil
}

func (r *BoardRepository) ListByUser(ctx context.Context, userID string) ([]domain.BoardSummary, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, title FROM boards WHERE user_id = $1 ORDER BY created_at ASC`,
		userID,
	)
	if err != nil {
		return nil, domain.Internal("list boards", err)
	}
	defer rows.Close()

	var res []domain.BoardSummary
	for rows.Next() {
		var b domain.BoardSummary
		if err := rows.Scan(&b.ID, &b.Name); err != nil {
			return nil, domain.Internal("scan board", err)
		}
		res = append(res, b)
	}
	return res, rows.Err()
}
