package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"kanban_webapp/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type TaskRepository struct {
	db *pgxpool.Pool
}

func NewTaskRepository(db *pgxpool.Pool) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Create(ctx context.Context, t *domain.Task) error {
	t.ID = uuid.NewString()

	err := r.db.QueryRow(ctx,
		`INSERT INTO tasks (id, list_id, content, "order") VALUES ($1, $2, $3, $4) RETURNING created_at`,
		t.ID, t.ListID, t.Content, t.Order,
	).Scan(&t.CreatedAt)
	if err != nil {
		return domain.Internal("create task", err)
	}
	return nil
}

// MaxOrder returns the highest order among a list's tasks, 0 if it has none.
func (r *TaskRepository) MaxOrder(ctx context.Context, listID string) (int, error) {
	var max int
	err := r.db.QueryRow(ctx,
		`SELECT COALESCE(MAX("order"), 0) FROM tasks WHERE list_id = $1`,
		listID,
	).Scan(&max)
	if err != nil {
		return 0, domain.Internal("max task order", err)
	}
	return max, nil
}

// Update applies only the fields set in upd and returns the full updated row.
func (r *TaskRepository) Update(ctx context.Context, taskID string, upd domain.TaskUpdate) (*domain.Task, error) {
	if upd.Empty() {
		return nil, domain.Validation("No updates provided")
	}

	sets := make([]string, 0, 3)
	args := make([]any, 0, 4)

	if upd.ListID != nil {
		args = append(args, *upd.ListID)
		sets = append(sets, fmt.Sprintf("list_id = $%d", len(args)))
	}
	if upd.Content != nil {
		args = append(args, *upd.Content)
		sets = append(sets, fmt.Sprintf("content = $%d", len(args)))
	}
	if upd.Order != nil {
		args = append(args, *upd.Order)
		sets = append(sets, fmt.Sprintf(`"order" = $%d`, len(args)))
	}

	args = append(args, taskID)
	query := fmt.Sprintf(
		`UPDATE tasks SET %s WHERE id = $%d RETURNING id, list_id, content, "order", created_at`,
		strings.Join(sets, ", "), len(args),
	)

	var t domain.Task
	err := r.db.QueryRow(ctx, query, args...).
		Scan(&t.ID, &t.ListID, &t.Content, &t.Order, &t.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NotFound("Task not found")
		}
		return nil, domain.Internal("update task", err)
	}
	return &t, nil
}

// Delete removes a task if it exists. A missing task is not an error.
func (r *TaskRepository) Delete(ctx context.Context, taskID string) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM tasks WHERE id = $1`, taskID); err != nil {
		return domain.Internal("delete task", err)
	}
	return nil
}

func (r *TaskRepository) ListByList(ctx context.Context, listID string) ([]domain.Task, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, list_id, content, "order", created_at
		 FROM tasks
		 WHERE list_id = $1
		 ORDER BY "order" ASC`,
		listID,
	)
	if err != nil {
		return nil, domain.Internal("list tasks", err)
	}
	defer rows.Close()

	res := []domain.Task{}
	for rows.Next() {
		var t domain.Task
		if err := rows.Scan(&t.ID, &t.ListID, &t.Content, &t.Order, &t.CreatedAt); err != nil {
			return nil, domain.Internal("scan task", err)
		}
		res = append(res, t)
	}
	return res, rows.Err()
}
