package service

import (
	"context"

	"kanban_webapp/internal/domain"
)

// Store interfaces consumed by the services. The repository package provides
// the Postgres implementations; tests substitute in-memory fakes.

type UserStore interface {
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	Create(ctx context.Context, u *domain.User) error
}

type BoardStore interface {
	Create(ctx context.Context, b *domain.Board) error
	GetByIDAndUser(ctx context.Context, boardID, userID string) (*domain.Board, error)
	Delete(ctx context.Context, boardID string) error
	ListByUser(ctx context.Context, userID string) ([]domain.BoardSummary, error)
}

type ListStore interface {
	Create(ctx context.Context, l *domain.List) error
	MaxOrder(ctx context.Context, boardID string) (int, error)
	Delete(ctx context.Context, listID string) error
}

type TaskStore interface {
	Create(ctx context.Context, t *domain.Task) error
	MaxOrder(ctx context.Context, listID string) (int, error)
	Update(ctx context.Context, taskID string, upd domain.TaskUpdate) (*domain.Task, error)
	Delete(ctx context.Context, taskID string) error
	ListByList(ctx context.Context, listID string) ([]domain.Task, error)
}

type BoardPageStore interface {
	Rows(ctx context.Context, userID string) ([]domain.JoinedRow, error)
}
