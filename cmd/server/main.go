// Command server runs the forum HTTP API.
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/forumhq/discuss-backend/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Fatalf("run: %v", err)
	}
}
