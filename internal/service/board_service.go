package service

import (
	"context"
	"strings"

	"kanban_webapp/internal/domain"
	"kanban_webapp/internal/logger"
)

type BoardService struct {
	users  UserStore
	boards BoardStore
	lists  ListStore
}

func NewBoardService(users UserStore, boards BoardStore, lists ListStore) *BoardService {
	return &BoardService{users: users, boards: boards, lists: lists}
}

// Create inserts a board for the user and seeds its four default lists.
// Board insert and list seeding are separate statements: a seeding failure
// leaves the board behind and is reported to the caller.
func (s *BoardService) Create(ctx context.Context, username, name string) (*domain.Board, error) {
	trimmed := strings.TrimSpace(name)
	if username == "" || trimmed == "" {
		return nil, domain.Validation("Username and board name are required")
	}

	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	board := &domain.Board{
		UserID: user.ID,
		Title:  trimmed,
		Slug:   Slugify(trimmed),
	}
	if err := s.boards.Create(ctx, board); err != nil {
		return nil, err
	}

	for _, seed := range domain.DefaultLists {
		l := &domain.List{BoardID: board.ID, Title: seed.Title, Order: seed.Order}
		if err := s.lists.Create(ctx, l); err != nil {
			logger.Error("seeding default lists failed",
				"board_id", board.ID, "list", seed.Title, "error", err)
			return nil, err
		}
	}

	return board, nil
}

// Delete removes a board after verifying it belongs to the user. Lists and
// tasks cascade. A board that exists but is owned by someone else reports
// the same not-found as a missing one.
func (s *BoardService) Delete(ctx context.Context, boardID, username string) error {
	if boardID == "" || username == "" {
		return domain.Validation("Username and board ID are required")
	}

	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return err
	}

	if _, err := s.boards.GetByIDAndUser(ctx, boardID, user.ID); err != nil {
		return err
	}

	return s.boards.Delete(ctx, boardID)
}
