package main

import (
	"context"
	"log"
	"os"

	"kanban_webapp/internal/db"
	"kanban_webapp/internal/domain"
	"kanban_webapp/internal/repository"
	"kanban_webapp/internal/service"
)

func main() {
	// expects DATABASE_URL env var
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL not set")
	}

	pool := db.Connect(dsn)
	defer pool.Close()

	userRepo := repository.NewUserRepository(pool)
	boardRepo := repository.NewBoardRepository(pool)
	listRepo := repository.NewListRepository(pool)

	users := service.NewUserService(userRepo)
	boards := service.NewBoardService(userRepo, boardRepo, listRepo)

	ctx := context.Background()

	username, created, err := users.Identify(ctx, "demo")
	if err != nil {
		log.Fatalf("identify failed: %v", err)
	}
	if created {
		log.Printf("user created username=%s\n", username)
	} else {
		log.Printf("user already exists username=%s\n", username)
	}

	board, err := boards.Create(ctx, username, "Getting Started")
	if err != nil {
		log.Fatalf("create board failed: %v", err)
	}
	log.Printf("board created id=%s slug=%s with %d default lists\n",
		board.ID, board.Slug, len(domain.DefaultLists))
}
