package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"kanban_webapp/internal/domain"
)

// In-memory stores mirroring the repository semantics, including unique
// violations surfacing as conflicts and cascading deletes.

type memDB struct {
	users  []*domain.User
	boards []*domain.Board
	lists  []*domain.List
	tasks  []*domain.Task
	seq    int
}

func newMemDB() *memDB { return &memDB{} }

func (d *memDB) nextID(prefix string) string {
	d.seq++
	return fmt.Sprintf("%s-%d", prefix, d.seq)
}

type fakeUserStore struct{ db *memDB }

func (f *fakeUserStore) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	for _, u := range f.db.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, domain.NotFound("User not found")
}

func (f *fakeUserStore) Create(_ context.Context, u *domain.User) error {
	for _, existing := range f.db.users {
		if existing.Username == u.Username {
			return domain.Conflict("This username is already taken")
		}
	}
	u.ID = f.db.nextID("user")
	u.CreatedAt = time.Now()
	cp := *u
	f.db.users = append(f.db.users, &cp)
	return nil
}

type fakeBoardStore struct {
	db        *memDB
	createErr error // injected failure for the next Create
}

func (f *fakeBoardStore) Create(_ context.Context, b *domain.Board) error {
	if f.createErr != nil {
		err := f.createErr
		f.createErr = nil
		return err
	}
	for _, existing := range f.db.boards {
		if existing.Slug == b.Slug {
			return domain.Conflict("A board with this name already exists")
		}
	}
	b.ID = f.db.nextID("board")
	b.CreatedAt = time.Now()
	cp := *b
	f.db.boards = append(f.db.boards, &cp)
	return nil
}

func (f *fakeBoardStore) GetByIDAndUser(_ context.Context, boardID, userID string) (*domain.Board, error) {
	for _, b := range f.db.boards {
		if b.ID == boardID && b.UserID == userID {
			cp := *b
			return &cp, nil
		}
	}
	return nil, domain.NotFound("Board not found or access denied")
}

func (f *fakeBoardStore) Delete(_ context.Context, boardID string) error {
	boards := f.db.boards[:0]
	for _, b := range f.db.boards {
		if b.ID != boardID {
			boards = append(boards, b)
		}
	}
	f.db.boards = boards

	// cascade: lists of the board, then their tasks
	doomed := map[string]bool{}
	lists := f.db.lists[:0]
	for _, l := range f.db.lists {
		if l.BoardID == boardID {
			doomed[l.ID] = true
			continue
		}
		lists = append(lists, l)
	}
	f.db.lists = lists

	tasks := f.db.tasks[:0]
	for _, t := range f.db.tasks {
		if !doomed[t.ListID] {
			tasks = append(tasks, t)
		}
	}
	f.db.tasks = tasks
	return nil
}

func (f *fakeBoardStore) ListByUser(_ context.Context, userID string) ([]domain.BoardSummary, error) {
	var res []domain.BoardSummary
	for _, b := range f.db.boards {
		if b.UserID == userID {
			res = append(res, domain.BoardSummary{ID: b.ID, Name: b.Title})
		}
	}
	return res, nil
}

type fakeListStore struct {
	db        *memDB
	createErr error // injected failure for the next Create
}

func (f *fakeListStore) Create(_ context.Context, l *domain.List) error {
	if f.createErr != nil {
		err := f.createErr
		f.createErr = nil
		return err
	}
	l.ID = f.db.nextID("list")
	l.CreatedAt = time.Now()
	cp := *l
	f.db.lists = append(f.db.lists, &cp)
	return nil
}

func (f *fakeListStore) MaxOrder(_ context.Context, boardID string) (int, error) {
	max := 0
	for _, l := range f.db.lists {
		if l.BoardID == boardID && l.Order > max {
			max = l.Order
		}
	}
	return max, nil
}

func (f *fakeListStore) Delete(_ context.Context, listID string) error {
	found := false
	lists := f.db.lists[:0]
	for _, l := range f.db.lists {
		if l.ID == listID {
			found = true
			continue
		}
		lists = append(lists, l)
	}
	f.db.lists = lists
	if !found {
		return domain.NotFound("List not found")
	}

	tasks := f.db.tasks[:0]
	for _, t := range f.db.tasks {
		if t.ListID != listID {
			tasks = append(tasks, t)
		}
	}
	f.db.tasks = tasks
	return nil
}

type fakeTaskStore struct{ db *memDB }

func (f *fakeTaskStore) Create(_ context.Context, t *domain.Task) error {
	t.ID = f.db.nextID("task")
	t.CreatedAt = time.Now()
	cp := *t
	f.db.tasks = append(f.db.tasks, &cp)
	return nil
}

func (f *fakeTaskStore) MaxOrder(_ context.Context, listID string) (int, error) {
	max := 0
	for _, t := range f.db.tasks {
		if t.ListID == listID && t.Order > max {
			max = t.Order
		}
	}
	return max, nil
}

func (f *fakeTaskStore) Update(_ context.Context, taskID string, upd domain.TaskUpdate) (*domain.Task, error) {
	for _, t := range f.db.tasks {
		if t.ID != taskID {
			continue
		}
		if upd.ListID != nil {
			t.ListID = *upd.ListID
		}
		if upd.Content != nil {
			t.Content = *upd.Content
		}
		if upd.Order != nil {
			t.Order = *upd.Order
		}
		cp := *t
		return &cp, nil
	}
	return nil, domain.NotFound("Task not found")
}

func (f *fakeTaskStore) Delete(_ context.Context, taskID string) error {
	tasks := f.db.tasks[:0]
	for _, t := range f.db.tasks {
		if t.ID != taskID {
			tasks = append(tasks, t)
		}
	}
	f.db.tasks = tasks
	return nil
}

func (f *fakeTaskStore) ListByList(_ context.Context, listID string) ([]domain.Task, error) {
	res := []domain.Task{}
	for _, t := range f.db.tasks {
		if t.ListID == listID {
			res = append(res, *t)
		}
	}
	sort.SliceStable(res, func(i, j int) bool { return res[i].Order < res[j].Order })
	return res, nil
}

type fakePageStore struct{ db *memDB }

func (f *fakePageStore) Rows(_ context.Context, userID string) ([]domain.JoinedRow, error) {
	rows := []domain.JoinedRow{}
	for _, b := range f.db.boards {
		if b.UserID != userID {
			continue
		}

		var boardLists []*domain.List
		for _, l := range f.db.lists {
			if l.BoardID == b.ID {
				boardLists = append(boardLists, l)
			}
		}
		sort.SliceStable(boardLists, func(i, j int) bool {
			return boardLists[i].Order < boardLists[j].Order
		})

		if len(boardLists) == 0 {
			rows = append(rows, domain.JoinedRow{BoardID: b.ID, BoardName: b.Title})
			continue
		}

		for _, l := range boardLists {
			var listTasks []*domain.Task
			for _, t := range f.db.tasks {
				if t.ListID == l.ID {
					listTasks = append(listTasks, t)
				}
			}
			sort.SliceStable(listTasks, func(i, j int) bool {
				return listTasks[i].Order < listTasks[j].Order
			})

			listID, title, order := l.ID, l.Title, l.Order
			if len(listTasks) == 0 {
				rows = append(rows, domain.JoinedRow{
					BoardID: b.ID, BoardName: b.Title,
					ListID: &listID, ListTitle: &title, ListOrder: &order,
				})
				continue
			}
			for _, t := range listTasks {
				taskID, content, taskOrder := t.ID, t.Content, t.Order
				rows = append(rows, domain.JoinedRow{
					BoardID: b.ID, BoardName: b.Title,
					ListID: &listID, ListTitle: &title, ListOrder: &order,
					TaskID: &taskID, TaskContent: &content, TaskOrder: &taskOrder,
				})
			}
		}
	}
	return rows, nil
}
