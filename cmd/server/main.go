// Command server runs the nestling HTTP API.
//
// Configuration is read from CONFIG_PATH (YAML) and environment variables;
// see internal/config for the full list. The server shuts down gracefully
// on SIGINT and SIGTERM.
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/nestling-app/nestling-backend/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Fatalf("application error: %v", err)
	}
}
