// Command server runs the Tastebite HTTP API.
//
// Configuration comes from the YAML file named by CONFIG_PATH (optional)
// overlaid by environment variables. SIGINT or SIGTERM triggers a graceful
// shutdown.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/heartmarshall/tastebite-backend/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Printf("server: %v", err)
		os.Exit(1)
	}
}
