package main

import (
	"context"
	"log"

	"github.com/arijitp/notekeeper/internal/server"
	"github.com/arijitp/notekeeper/internal/server/config"
)

func main() {
	cfg := config.LoadConfig()

	app, err := server.NewApp(cfg)
	if err != nil {
		log.Fatalf("notekeeper: %v", err)
	}

	app.Run(context.Background())
}
