package service

import (
	"context"
	"strings"

	"kanban_webapp/internal/domain"
)

type ListService struct {
	lists ListStore
}

func NewListService(lists ListStore) *ListService {
	return &ListService{lists: lists}
}

// Create appends a list to a board with order = current max + 1 (1 when the
// board has no lists). The max read and the insert are not serialized.
func (s *ListService) Create(ctx context.Context, boardID, title string) (*domain.List, error) {
	trimmed := strings.TrimSpace(title)
	if boardID == "" || trimmed == "" {
		return nil, domain.Validation("Board ID and title are required")
	}

	max, err := s.lists.MaxOrder(ctx, boardID)
	if err != nil {
		return nil, err
	}

	l := &domain.List{BoardID: boardID, Title: trimmed, Order: max + 1}
	if err := s.lists.Create(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

// Delete removes a list and its tasks. Ownership is not re-verified here;
// callers arrive with a board they already resolved.
func (s *ListService) Delete(ctx context.Context, listID string) error {
	if listID == "" {
		return domain.Validation("List ID is required")
	}
	return s.lists.Delete(ctx, listID)
}
