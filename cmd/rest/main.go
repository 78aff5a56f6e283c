package main

import (
	"log"

	"ai-subject-explorer-be/internal/bootstrap"
	"ai-subject-explorer-be/internal/config"
	"ai-subject-explorer-be/internal/server"
)

func main() {
	// 1. Load Configuration
	cfg := config.Load()

	// 2. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(cfg)
	defer container.Logger.Sync()

	// 3. Initialize Server
	srv := server.New(cfg, container)

	// 4. Run Server
	log.Fatal(srv.Run())
}
