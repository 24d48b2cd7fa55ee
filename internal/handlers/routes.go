package handlers

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/expohall/expohall-api/internal/config"
	"github.com/expohall/expohall-api/internal/store"
	"github.com/expohall/expohall-api/internal/web"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func RegisterRoutes(r *chi.Mux, cfg *config.Config, st *store.Store) {
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	if cfg.EnableCORS {
		r.Use(CORS)
	}

	// Initialize Huma API
	apiConfig := huma.DefaultConfig("ExpoHall API", "1.0.0")
	api := humachi.New(r, apiConfig)

	exhibitors := NewExhibitorHandler(st)
	booths := NewBoothHandler(st)
	events := NewEventHandler(st)
	attendees := NewAttendeeHandler(st)
	dashboard := NewDashboardHandler(st)
	exports := NewExportHandler(st)

	// UI and health
	r.Get("/", web.HandleIndex)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// Aggregate-level operations
	huma.Get(api, "/api/state", dashboard.HandleState)
	huma.Get(api, "/api/dashboard", dashboard.HandleDashboard)
	huma.Post(api, "/api/reset", dashboard.HandleReset)

	// Collection CRUD
	huma.Get(api, "/api/exhibitors", exhibitors.HandleList)
	huma.Post(api, "/api/exhibitors", exhibitors.HandleCreate)
	huma.Patch(api, "/api/exhibitors/{id}", exhibitors.HandleUpdate)
	huma.Delete(api, "/api/exhibitors/{id}", exhibitors.HandleDelete)

	huma.Get(api, "/api/booths", booths.HandleList)
	huma.Post(api, "/api/booths", booths.HandleCreate)
	huma.Patch(api, "/api/booths/{id}", booths.HandleUpdate)
	huma.Delete(api, "/api/booths/{id}", booths.HandleDelete)

	huma.Get(api, "/api/events", events.HandleList)
	huma.Post(api, "/api/events", events.HandleCreate)
	huma.Patch(api, "/api/events/{id}", events.HandleUpdate)
	huma.Delete(api, "/api/events/{id}", events.HandleDelete)

	huma.Get(api, "/api/attendees", attendees.HandleList)
	huma.Post(api, "/api/attendees", attendees.HandleCreate)
	huma.Patch(api, "/api/attendees/{id}", attendees.HandleUpdate)
	huma.Delete(api, "/api/attendees/{id}", attendees.HandleDelete)

	// Downloads and clipboard payloads
	r.Get("/api/export/{collection}.csv", exports.HandleCSV)
	r.Get("/api/export/backup.json", exports.HandleBackup)
	r.Get("/api/export/aggregate.json", exports.HandleAggregateJSON)
	r.Get("/api/export/exhibitors.json", exports.HandleExhibitorsJSON)
}
