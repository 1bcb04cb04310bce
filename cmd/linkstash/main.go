package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/linkstash/linkstash/internal/app"
)

func main() {
	// Local development convenience; in production the environment is
	// injected by the orchestrator and no .env file exists.
	_ = godotenv.Load()

	if err := app.New().Run(); err != nil {
		log.Fatalf("❌ linkstash failed to start: %v", err)
	}
}
