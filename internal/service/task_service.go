package service

import (
	"context"
	"strings"

	"kanban_webapp/internal/domain"
)

type TaskService struct {
	tasks TaskStore
}

func NewTaskService(tasks TaskStore) *TaskService {
	return &TaskService{tasks: tasks}
}

// Create appends a task to a list with order = current max + 1 (1 when the
// list is empty).
func (s *TaskService) Create(ctx context.Context, listID, content string) (*domain.Task, error) {
	trimmed := strings.TrimSpace(content)
	if listID == "" || trimmed == "" {
		return nil, domain.Validation("List ID and content are required")
	}

	max, err := s.tasks.MaxOrder(ctx, listID)
	if err != nil {
		return nil, err
	}

	t := &domain.Task{ListID: listID, Content: trimmed, Order: max + 1}
	if err := s.tasks.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// Update applies a partial update. Moving a task to another list (including
// "complete", which is just a move to the Completed list) only changes
// list_id; content and order are untouched unless given.
func (s *TaskService) Update(ctx context.Context, taskID string, upd domain.TaskUpdate) (*domain.Task, error) {
	if taskID == "" {
		return nil, domain.Validation("Task ID is required")
	}
	if upd.Empty() {
		return nil, domain.Validation("No updates provided")
	}
	return s.tasks.Update(ctx, taskID, upd)
}

// Delete removes a task; deleting an already-deleted task succeeds.
func (s *TaskService) Delete(ctx context.Context, taskID string) error {
	if taskID == "" {
		return domain.Validation("Task ID is required")
	}
	return s.tasks.Delete(ctx, taskID)
}

// List returns a list's tasks sorted ascending by order; empty, not an
// error, when there are none.
func (s *TaskService) List(ctx context.Context, listID string) ([]domain.Task, error) {
	if listID == "" {
		return nil, domain.Validation("List ID is required")
	}
	return s.tasks.ListByList(ctx, listID)
}
