// Smoke-runs the client synchronizer against a live server: identify a
// user, create a board, add a task, complete it, then print the resulting
// view model.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"kanban_webapp/internal/client"
)

type stdoutNotifier struct{}

func (stdoutNotifier) Success(msg string) { fmt.Println("ok:", msg) }
func (stdoutNotifier) Error(msg string)   { fmt.Println("error:", msg) }

func main() {
	base := flag.String("base", "http://localhost:8080", "server base URL")
	username := flag.String("username", "smoke-user", "username to identify as")
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	api := client.New(*base)

	res, err := api.Identify(ctx, *username)
	if err != nil {
		log.Fatalf("identify: %v", err)
	}
	fmt.Printf("identified as %s (%s)\n", res.Username, res.Message)

	sync := client.NewSync(api, stdoutNotifier{})
	if err := sync.Load(ctx, res.Username); err != nil {
		log.Fatalf("load board page: %v", err)
	}

	boardName := fmt.Sprintf("Smoke %d", time.Now().Unix())
	sync.CreateBoard(ctx, boardName)

	board, ok := sync.State().Board()
	if !ok {
		log.Fatal("no active board after create")
	}
	fmt.Printf("board %q with %d lists (optimistic ids)\n", board.Name, len(board.Lists))

	// reload to replace the optimistic list ids with the server's before
	// creating tasks against them
	if err := sync.Load(ctx, res.Username); err != nil {
		log.Fatalf("reload: %v", err)
	}
	state := sync.State()
	for _, b := range state.Boards {
		if b.Name == boardName {
			state.SetActiveBoard(b.ID)
		}
	}

	board, ok = state.Board()
	if !ok || len(board.Lists) == 0 {
		log.Fatal("expected seeded lists after reload")
	}
	firstList := board.Lists[0]

	sync.AddTask(ctx, firstList.ID, "Buy milk")
	tasks := state.Tasks(firstList.ID)
	if len(tasks) == 0 {
		log.Fatal("task not in local state after create")
	}

	sync.CompleteTask(ctx, tasks[0].ID, firstList.ID)

	board, _ = sync.State().Board()
	for _, l := range board.Lists {
		fmt.Printf("  %s (%d tasks)\n", l.Title, len(sync.State().Tasks(l.ID)))
	}
	fmt.Println("smoke run finished")
}
