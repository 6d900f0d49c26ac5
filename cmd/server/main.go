// Command server runs the flashdeck backend: the sync API, auth, stats,
// and health endpoints.
package main

import (
	"context"
	"log"

	"github.com/flashdeck/flashdeck-backend/internal/app"
)

func main() {
	if err := app.Run(context.Background()); err != nil {
		log.Fatalf("application error: %v", err)
	}
}
