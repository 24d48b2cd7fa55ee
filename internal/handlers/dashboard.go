package handlers

import (
	"context"

	"github.com/expohall/expohall-api/internal/models"
	"github.com/expohall/expohall-api/internal/store"
)

// Latest registrations shown on the dashboard.
const latestRegistrationLimit = 5

type DashboardHandler struct {
	store *store.Store
}

func NewDashboardHandler(store *store.Store) *DashboardHandler {
	return &DashboardHandler{store: store}
}

type StateResponse struct {
	Body models.Aggregate
}

// HandleState returns the full aggregate.
func (h *DashboardHandler) HandleState(ctx context.Context, input *struct{}) (*StateResponse, error) {
	return &StateResponse{Body: h.store.Snapshot()}, nil
}

type DashboardResponse struct {
	Body struct {
		ExhibitorCount      int               `json:"exhibitor_count"`
		BoothCount          int               `json:"booth_count"`
		EventCount          int               `json:"event_count"`
		AttendeeCount       int               `json:"attendee_count"`
		LatestRegistrations []models.Attendee `json:"latest_registrations"`
	}
}

// HandleDashboard returns per-collection counts and the latest attendee
// registrations, newest first.
func (h *DashboardHandler) HandleDashboard(ctx context.Context, input *struct{}) (*DashboardResponse, error) {
	agg := h.store.Snapshot()
	res := &DashboardResponse{}
	res.Body.ExhibitorCount = len(agg.Exhibitors)
	res.Body.BoothCount = len(agg.Booths)
	res.Body.EventCount = len(agg.Events)
	res.Body.AttendeeCount = len(agg.Attendees)
	res.Body.LatestRegistrations = h.store.LatestAttendees(latestRegistrationLimit)
	return res, nil
}

type ResetResponse struct {
	Body struct {
		Reset bool `json:"reset"`
	}
}

// HandleReset overwrites all state with the sample dataset. The page asks
// for confirmation before calling; the store's confirm capability gates it
// again.
func (h *DashboardHandler) HandleReset(ctx context.Context, input *struct{}) (*ResetResponse, error) {
	res := &ResetResponse{}
	res.Body.Reset = h.store.Reset()
	return res, nil
}
