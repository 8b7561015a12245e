package service

import (
	"context"

	"kanban_webapp/internal/domain"
)

// BoardPageService is the aggregate read path behind GET /board/:username.
type BoardPageService struct {
	users  UserStore
	boards BoardStore
	page   BoardPageStore
}

func NewBoardPageService(users UserStore, boards BoardStore, page BoardPageStore) *BoardPageService {
	return &BoardPageService{users: users, boards: boards, page: page}
}

// Read resolves the user and returns their boards plus the denormalized
// board/list/task rows the client rebuilds its tree from. An unknown
// username is a not-found, surfaced as a missing page.
func (s *BoardPageService) Read(ctx context.Context, username string) (*domain.BoardPage, error) {
	if username == "" {
		return nil, domain.Validation("Username is required")
	}

	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	boards, err := s.boards.ListByUser(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	rows, err := s.page.Rows(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	return &domain.BoardPage{Username: username, Boards: boards, Rows: rows}, nil
}
