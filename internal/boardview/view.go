// Package boardview rebuilds a navigable board/list/task tree from the flat
// joined rows served by the board page read, and holds the client-side state
// that is patched optimistically as actions succeed.
package boardview

import (
	"sort"

	"kanban_webapp/internal/domain"
)

// List is the view shape of a list within the active board.
type List struct {
	ID    string
	Title string
	Order int
}

// Task is the view shape of a task, tagged with its owning list.
type Task struct {
	ID      string
	Content string
	Order   int
	ListID  string
}

// Board is the derived view of the active board.
type Board struct {
	ID    string
	Name  string
	Lists []List
}

// BuildBoard derives the active board's list structure from joined rows.
// Duplicate rows for a list (one per task) collapse to the first seen. Lists
// sort ascending by order, except the "Completed" list, which is always
// placed last. ok is false when no rows match the board id, which the UI
// treats as board-not-found.
func BuildBoard(rows []domain.JoinedRow, activeBoardID string) (Board, bool) {
	var board Board
	seen := make(map[string]bool)

	for _, row := range rows {
		if row.BoardID != activeBoardID {
			continue
		}
		if board.ID == "" {
			board.ID = row.BoardID
			board.Name = row.BoardName
		}
		if row.ListID == nil || seen[*row.ListID] {
			continue
		}
		seen[*row.ListID] = true

		l := List{ID: *row.ListID, Title: "Untitled"}
		if row.ListTitle != nil {
			l.Title = *row.ListTitle
		}
		if row.ListOrder != nil {
			l.Order = *row.ListOrder
		}
		board.Lists = append(board.Lists, l)
	}

	if board.ID == "" {
		return Board{}, false
	}

	sort.SliceStable(board.Lists, func(i, j int) bool {
		return board.Lists[i].Order < board.Lists[j].Order
	})
	// Completed stays last whatever its stored order says.
	sort.SliceStable(board.Lists, func(i, j int) bool {
		return !domain.IsCompletedTitle(board.Lists[i].Title) &&
			domain.IsCompletedTitle(board.Lists[j].Title)
	})

	return board, true
}

// BuildTasks groups the active board's tasks by list id, each group sorted
// ascending by order. Lists without tasks get no entry.
func BuildTasks(rows []domain.JoinedRow, activeBoardID string) map[string][]Task {
	byList := make(map[string][]Task)

	for _, row := range rows {
		if row.BoardID != activeBoardID || row.ListID == nil || row.TaskID == nil {
			continue
		}
		t := Task{ID: *row.TaskID, ListID: *row.ListID}
		if row.TaskContent != nil {
			t.Content = *row.TaskContent
		}
		if row.TaskOrder != nil {
			t.Order = *row.TaskOrder
		}
		byList[*row.ListID] = append(byList[*row.ListID], t)
	}

	for listID := range byList {
		tasks := byList[listID]
		sort.SliceStable(tasks, func(i, j int) bool {
			return tasks[i].Order < tasks[j].Order
		})
		byList[listID] = tasks
	}

	return byList
}
