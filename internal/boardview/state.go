package boardview

import (
	"kanban_webapp/internal/domain"

	"github.com/google/uuid"
)

// State is the client-side view model for one user: the board list, the raw
// joined rows, and the derivations for the active board. Board and list
// structure is always re-derived from rows; the per-list task arrays are
// patched in place as mutations succeed, mirroring the server calls.
type State struct {
	Username      string
	Boards        []domain.BoardSummary
	ActiveBoardID string

	rows  []domain.JoinedRow
	board Board
	found bool
	tasks map[string][]Task
}

// NewState ingests a board page payload and auto-selects the first board.
func NewState(page *domain.BoardPage) *State {
	s := &State{
		Username: page.Username,
		Boards:   page.Boards,
		rows:     page.Rows,
	}
	if len(s.Boards) > 0 {
		s.ActiveBoardID = s.Boards[0].ID
	}
	s.rebuild()
	return s
}

func (s *State) rebuild() {
	s.board, s.found = BuildBoard(s.rows, s.ActiveBoardID)
	s.tasks = BuildTasks(s.rows, s.ActiveBoardID)
}

// SetActiveBoard switches the active board and re-derives the view.
func (s *State) SetActiveBoard(boardID string) {
	s.ActiveBoardID = boardID
	s.rebuild()
}

// Board returns the derived active board. ok is false when no board is
// selected or its rows are gone (board-not-found, distinct from "no board
// selected" only by ActiveBoardID being set).
func (s *State) Board() (Board, bool) {
	return s.board, s.found
}

// Tasks returns the active board's tasks for one list, ascending by order.
func (s *State) Tasks(listID string) []Task {
	return s.tasks[listID]
}

// CompletedList finds the active board's "Completed" list.
func (s *State) CompletedList() (List, bool) {
	for _, l := range s.board.Lists {
		if domain.IsCompletedTitle(l.Title) {
			return l, true
		}
	}
	return List{}, false
}

// AddBoard records a created board and injects its four default lists with
// temporary ids, without waiting for the seeded rows to round-trip. The temp
// ids are replaced by real ones on the next full reload.
func (s *State) AddBoard(board domain.BoardSummary) {
	s.Boards = append(s.Boards, board)

	for _, seed := range domain.DefaultLists {
		listID := "optimistic-" + uuid.NewString()
		title := seed.Title
		order := seed.Order
		s.rows = append(s.rows, domain.JoinedRow{
			BoardID:   board.ID,
			BoardName: board.Name,
			ListID:    &listID,
			ListTitle: &title,
			ListOrder: &order,
		})
	}

	s.ActiveBoardID = board.ID
	s.rebuild()
}

// RemoveBoard drops a deleted board and all of its rows.
func (s *State) RemoveBoard(boardID string) {
	boards := s.Boards[:0]
	for _, b := range s.Boards {
		if b.ID != boardID {
			boards = append(boards, b)
		}
	}
	s.Boards = boards

	rows := s.rows[:0]
	for _, row := range s.rows {
		if row.BoardID != boardID {
			rows = append(rows, row)
		}
	}
	s.rows = rows

	if s.ActiveBoardID == boardID {
		s.ActiveBoardID = ""
	}
	s.rebuild()
}

// AddList appends a created list's row and re-derives the board structure.
func (s *State) AddList(l domain.List) {
	listID := l.ID
	title := l.Title
	order := l.Order
	s.rows = append(s.rows, domain.JoinedRow{
		BoardID:   l.BoardID,
		BoardName: s.board.Name,
		ListID:    &listID,
		ListTitle: &title,
		ListOrder: &order,
	})
	s.rebuild()
}

// RemoveList drops a deleted list's rows and its task array.
func (s *State) RemoveList(listID string) {
	rows := s.rows[:0]
	for _, row := range s.rows {
		if row.ListID != nil && *row.ListID == listID {
			continue
		}
		rows = append(rows, row)
	}
	s.rows = rows
	delete(s.tasks, listID)
	s.rebuild()
}

// AddTask appends a created task to its list's array, straight from the
// server's returned entity.
func (s *State) AddTask(t domain.Task) {
	s.tasks[t.ListID] = append(s.tasks[t.ListID], Task{
		ID:      t.ID,
		Content: t.Content,
		Order:   t.Order,
		ListID:  t.ListID,
	})
}

// RemoveTask drops a deleted task from its list's array.
func (s *State) RemoveTask(taskID, listID string) {
	tasks := s.tasks[listID][:0]
	for _, t := range s.tasks[listID] {
		if t.ID != taskID {
			tasks = append(tasks, t)
		}
	}
	s.tasks[listID] = tasks
}

// MoveTaskToCompleted relocates a task from its current list to the
// Completed list in one state change, mirroring the single update call.
func (s *State) MoveTaskToCompleted(taskID, fromListID string) {
	completed, ok := s.CompletedList()
	if !ok {
		return
	}

	var moved Task
	tasks := s.tasks[fromListID][:0]
	for _, t := range s.tasks[fromListID] {
		if t.ID == taskID {
			moved = t
			continue
		}
		tasks = append(tasks, t)
	}
	s.tasks[fromListID] = tasks

	if moved.ID == "" {
		return
	}
	moved.ListID = completed.ID
	s.tasks[completed.ID] = append(s.tasks[completed.ID], moved)
}
