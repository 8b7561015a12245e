package repository

import (
	"context"
	"errors"

	"kanban_webapp/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, username, created_at FROM users WHERE username = $1`,
		username,
	)

	var u domain.User
	if err := row.Scan(&u.ID, &u.Username, &u.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NotFound("User not found")
		}
		return nil, domain.Internal("get user", err)
	}
	return &u, nil
}

func (r *UserRepository) Create(ctx context.Context, u *domain.User) error {
	u.ID = uuid.NewString()

	err := r.db.QueryRow(ctx,
		`INSERT INTO users (id, username) VALUES ($1, $2) RETURNING created_at`,
		u.ID, u.Username,
	).Scan(&u.CreatedAt)
	if err != nil {
		if uniqueViolation(err) {
			return domain.Conflict("This username is already taken")
		}
		return domain.Internal("create user", err)
	}
	return nil
}
