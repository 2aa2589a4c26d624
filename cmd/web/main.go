package main

import (
	"log"

	"jobportal_backend/internal/app"
)

func main() {
	if err := app.Run(); err != nil {
		log.Fatalf("application failed: %v", err)
	}
}
