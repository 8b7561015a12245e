package integration

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"kanban_webapp/internal/domain"
	"kanban_webapp/internal/repository"
	"kanban_webapp/internal/service"

	"github.com/jackc/pgx/v5/pgxpool"
)

func applyMigrations(t *testing.T, db *pgxpool.Pool) {
	t.Helper()
	migDir := filepath.Join("..", "..", "internal", "migrations")
	files, err := os.ReadDir(migDir)
	if err != nil {
		t.Fatalf("read migrations: %v", err)
	}
	for _, f := range files {
		b, err := os.ReadFile(filepath.Join(migDir, f.Name()))
		if err != nil {
			t.Fatalf("read file: %v", err)
		}
		if _, err := db.Exec(context.Background(), string(b)); err != nil {
			t.Fatalf("apply migration %s: %v", f.Name(), err)
		}
	}
}

func connect(t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		t.Skip("DATABASE_URL not set")
	}
	db, err := pgxpool.New(context.Background(), dsn)
	if err != nil {
		t.Fatalf("connect db: %v", err)
	}
	t.Cleanup(db.Close)
	applyMigrations(t, db)
	return db
}

// suffix keeps usernames and slugs unique across reruns against the same
// database.
func suffix() string {
	return fmt.Sprintf("%d", time.Now().UnixNano()%1_000_000_000)
}

func TestKanbanLifecycle(t *testing.T) {
	db := connect(t)
	ctx := context.Background()

	userRepo := repository.NewUserRepository(db)
	boardRepo := repository.NewBoardRepository(db)
	listRepo := repository.NewListRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	pageRepo := repository.NewBoardPageRepository(db)

	users := service.NewUserService(userRepo)
	boards := service.NewBoardService(userRepo, boardRepo, listRepo)
	tasks := service.NewTaskService(taskRepo)
	page := service.NewBoardPageService(userRepo, boardRepo, pageRepo)

	alice := "alice-" + suffix()

	username, created, err := users.Identify(ctx, alice)
	if err != nil {
		t.Fatalf("identify: %v", err)
	}
	if !created || username != alice {
		t.Fatalf("identify = %q created=%v", username, created)
	}
	if _, created, _ := users.Identify(ctx, alice); created {
		t.Fatal("second identify must be a login")
	}

	boardName := "Groceries " + suffix()
	board, err := boards.Create(ctx, alice, boardName)
	if err != nil {
		t.Fatalf("create board: %v", err)
	}

	// the four default lists come back through the aggregate read
	p, err := page.Read(ctx, alice)
	if err != nil {
		t.Fatalf("read page: %v", err)
	}
	if len(p.Boards) != 1 || p.Boards[0].ID != board.ID {
		t.Fatalf("boards = %+v", p.Boards)
	}
	if len(p.Rows) != 4 {
		t.Fatalf("rows = %d, want 4 seeded lists", len(p.Rows))
	}
	var todayID, completedID string
	for i, row := range p.Rows {
		if row.ListID == nil || row.ListOrder == nil {
			t.Fatalf("null list fields on seeded board: %+v", row)
		}
		if *row.ListOrder != i {
			t.Fatalf("list order at %d = %d (rows must come back ordered)", i, *row.ListOrder)
		}
		switch *row.ListTitle {
		case "Today":
			todayID = *row.ListID
		case "Completed":
			completedID = *row.ListID
		}
	}
	if todayID == "" || completedID == "" {
		t.Fatalf("seeded lists missing: %+v", p.Rows)
	}

	// first task in an empty list gets order 1
	task, err := tasks.Create(ctx, todayID, "Buy milk")
	if err != nil {
		t.Fatalf("create task: %v", err)
	}
	if task.Order != 1 {
		t.Fatalf("order = %d, want 1", task.Order)
	}

	// completing is a list_id-only update
	moved, err := tasks.Update(ctx, task.ID, domain.TaskUpdate{ListID: &completedID})
	if err != nil {
		t.Fatalf("update task: %v", err)
	}
	if moved.ListID != completedID || moved.Content != "Buy milk" || moved.Order != 1 {
		t.Fatalf("moved = %+v", moved)
	}

	// duplicate board name slugs to the same value
	if _, err := boards.Create(ctx, alice, boardName); !domain.IsConflict(err) {
		t.Fatalf("duplicate board: got %v, want conflict", err)
	}

	// another user cannot delete the board, and learns nothing from the 404
	bob := "bob-" + suffix()
	if _, _, err := users.Identify(ctx, bob); err != nil {
		t.Fatalf("identify bob: %v", err)
	}
	if err := boards.Delete(ctx, board.ID, bob); !domain.IsNotFound(err) {
		t.Fatalf("cross-user delete: got %v, want not found", err)
	}

	// owner delete cascades to lists and tasks
	if err := boards.Delete(ctx, board.ID, alice); err != nil {
		t.Fatalf("delete board: %v", err)
	}
	left, err := tasks.List(ctx, todayID)
	if err != nil {
		t.Fatalf("list tasks: %v", err)
	}
	if len(left) != 0 {
		t.Fatalf("tasks survived cascade: %+v", left)
	}
	if _, err := tasks.Update(ctx, task.ID, domain.TaskUpdate{ListID: &todayID}); !domain.IsNotFound(err) {
		t.Fatalf("moved task survived cascade: %v", err)
	}

	p, err = page.Read(ctx, alice)
	if err != nil {
		t.Fatalf("read page after delete: %v", err)
	}
	if len(p.Boards) != 0 || len(p.Rows) != 0 {
		t.Fatalf("page after delete = %+v", p)
	}
}

func TestListRepositoryOrderScoping(t *testing.T) {
	db := connect(t)
	ctx := context.Background()

	userRepo := repository.NewUserRepository(db)
	boardRepo := repository.NewBoardRepository(db)
	listRepo := repository.NewListRepository(db)

	users := service.NewUserService(userRepo)
	boards := service.NewBoardService(userRepo, boardRepo, listRepo)
	lists := service.NewListService(listRepo)

	name := "carol-" + suffix()
	if _, _, err := users.Identify(ctx, name); err != nil {
		t.Fatalf("identify: %v", err)
	}

	a, err := boards.Create(ctx, name, "A "+suffix())
	if err != nil {
		t.Fatalf("create board a: %v", err)
	}
	b, err := boards.Create(ctx, name, "B "+suffix())
	if err != nil {
		t.Fatalf("create board b: %v", err)
	}

	// each board already carries its four seeds (orders 0..3)
	la, err := lists.Create(ctx, a.ID, "Extra A")
	if err != nil {
		t.Fatalf("create list: %v", err)
	}
	if la.Order != 4 {
		t.Fatalf("order = %d, want 4", la.Order)
	}
	lb, err := lists.Create(ctx, b.ID, "Extra B")
	if err != nil {
		t.Fatalf("create list: %v", err)
	}
	if lb.Order != 4 {
		t.Fatalf("other board order = %d, want 4 (max is per board)", lb.Order)
	}

	if err := lists.Delete(ctx, la.ID); err != nil {
		t.Fatalf("delete list: %v", err)
	}
	if err := lists.Delete(ctx, la.ID); !domain.IsNotFound(err) {
		t.Fatalf("second delete: got %v, want not found", err)
	}
}
