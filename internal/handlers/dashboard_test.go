package handlers

import (
	"context"
	"testing"

	"github.com/expohall/expohall-api/internal/models"
)

func TestHandleDashboard(t *testing.T) {
	st := newTestStore(t)
	st.AddAttendee(models.Attendee{Name: "Jane Doe", Company: "Acme", Email: "jane@acme.com", Type: models.AttendeeVisitor})

	handler := NewDashboardHandler(st)
	resp, err := handler.HandleDashboard(context.Background(), &struct{}{})
	if err != nil {
		t.Fatalf("HandleDashboard returned error: %v", err)
	}

	if resp.Body.ExhibitorCount != 2 || resp.Body.BoothCount != 2 ||
		resp.Body.EventCount != 1 || resp.Body.AttendeeCount != 2 {
		t.Errorf("unexpected counts: %+v", resp.Body)
	}

	latest := resp.Body.LatestRegistrations
	if len(latest) != 2 || latest[0].Name != "Jane Doe" || latest[1].Name != "Ali Reza" {
		t.Errorf("expected newest registration first, got %+v", latest)
	}
}

func TestHandleReset(t *testing.T) {
	st := newTestStore(t)
	st.AddBooth(models.Booth{Code: "C3"})

	handler := NewDashboardHandler(st)
	resp, err := handler.HandleReset(context.Background(), &struct{}{})
	if err != nil {
		t.Fatalf("HandleReset returned error: %v", err)
	}
	if !resp.Body.Reset {
		t.Fatal("expected reset to proceed")
	}

	state, err := handler.HandleState(context.Background(), &struct{}{})
	if err != nil {
		t.Fatalf("HandleState returned error: %v", err)
	}
	if len(state.Body.Booths) != 2 {
		t.Errorf("expected sample booths after reset, got %+v", state.Body.Booths)
	}
}
