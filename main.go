package main

import (
	"log"

	"labelpress/internal/app"
)

func main() {
	if err := app.Run(); err != nil {
		log.Fatalf("labelpress: %v", err)
	}
}
