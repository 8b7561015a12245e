package client

import (
	"context"

	"kanban_webapp/internal/boardview"
	"kanban_webapp/internal/domain"
)

// Notifier receives transient user-facing outcome messages (the toast layer
// in the web UI).
type Notifier interface {
	Success(msg string)
	Error(msg string)
}

// Sync drives the optimistic mutation contract: issue the server call, and
// only on success patch the local state from the returned entity. Failures
// are reported through the notifier and leave the state as it was; nothing
// is retried.
type Sync struct {
	api    *Client
	state  *boardview.State
	notify Notifier
}

func NewSync(api *Client, notify Notifier) *Sync {
	return &Sync{api: api, notify: notify}
}

// State exposes the current view model. Nil before Load.
func (s *Sync) State() *boardview.State {
	return s.state
}

// Load fetches the board page aggregate and rebuilds the view model from
// scratch. This is the only full reconstruction; everything else patches.
func (s *Sync) Load(ctx context.Context, username string) error {
	page, err := s.api.BoardPage(ctx, username)
	if err != nil {
		return err
	}
	s.state = boardview.NewState(page)
	return nil
}

// CreateBoard creates a board and optimistically injects its four default
// lists with temporary ids rather than re-fetching the seeded rows. The
// local ids drift from the server's until the next Load; accepted tradeoff
// for one round trip less.
func (s *Sync) CreateBoard(ctx context.Context, name string) {
	board, err := s.api.CreateBoard(ctx, s.state.Username, name)
	if err != nil {
		s.notify.Error("Could not create board")
		return
	}

	s.state.AddBoard(board)
	s.notify.Success("Board created")
}

func (s *Sync) DeleteBoard(ctx context.Context, boardID string) {
	if err := s.api.DeleteBoard(ctx, boardID, s.state.Username); err != nil {
		s.notify.Error("Could not delete")
		return
	}

	s.state.RemoveBoard(boardID)
	s.notify.Success("Board deleted")
}

func (s *Sync) CreateList(ctx context.Context, title string) {
	board, ok := s.state.Board()
	if !ok {
		s.notify.Error("No board selected")
		return
	}

	list, err := s.api.CreateList(ctx, board.ID, title)
	if err != nil {
		s.notify.Error("Could not create list")
		return
	}

	s.state.AddList(list)
	s.notify.Success("List created")
}

func (s *Sync) DeleteList(ctx context.Context, listID string) {
	if err := s.api.DeleteList(ctx, listID); err != nil {
		s.notify.Error("Could not delete list")
		return
	}

	s.state.RemoveList(listID)
	s.notify.Success("List deleted")
}

func (s *Sync) AddTask(ctx context.Context, listID, content string) {
	task, err := s.api.CreateTask(ctx, listID, content)
	if err != nil {
		s.notify.Error("Could not add task")
		return
	}

	s.state.AddTask(task)
	s.notify.Success("Task added")
}

func (s *Sync) DeleteTask(ctx context.Context, taskID, listID string) {
	if err := s.api.DeleteTask(ctx, taskID); err != nil {
		s.notify.Error("Could not delete task")
		return
	}

	s.state.RemoveTask(taskID, listID)
	s.notify.Success("Task deleted")
}

// CompleteTask moves a task to the Completed list: a plain list_id update on
// the server, a single remove-and-append in local state.
func (s *Sync) CompleteTask(ctx context.Context, taskID, fromListID string) {
	completed, ok := s.state.CompletedList()
	if !ok {
		s.notify.Error(`No "Completed" list found`)
		return
	}

	upd := domain.TaskUpdate{ListID: &completed.ID}
	if _, err := s.api.UpdateTask(ctx, taskID, upd); err != nil {
		s.notify.Error("Could not complete task")
		return
	}

	s.state.MoveTaskToCompleted(taskID, fromListID)
	s.notify.Success("Task completed")
}
