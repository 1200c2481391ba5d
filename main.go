package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"assettracking/cmd"
	"assettracking/internal/config"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load .env file, but don't overwrite system environment variables
	if err := config.LoadEnvFile(); err != nil {
		log.Println("Warning: No .env file found, falling back to system environment variables.")
	}

	cmd.Execute(ctx)
}
