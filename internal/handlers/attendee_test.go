package handlers

import (
	"context"
	"testing"

	"github.com/expohall/expohall-api/internal/models"
	"github.com/expohall/expohall-api/internal/store"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	if err := db.AutoMigrate(&models.AppState{}); err != nil {
		t.Fatalf("failed to auto migrate: %v", err)
	}
	return store.Open(db, func(action string) bool { return true })
}

func TestAttendeeCRUD(t *testing.T) {
	st := newTestStore(t)
	handler := NewAttendeeHandler(st)
	ctx := context.Background()

	var createdID string

	t.Run("Create", func(t *testing.T) {
		req := &CreateAttendeeRequest{}
		req.Body.Name = "Jane Doe"
		req.Body.Company = "Acme"
		req.Body.Email = "jane@acme.com"
		req.Body.Type = models.AttendeeVisitor

		resp, err := handler.HandleCreate(ctx, req)
		if err != nil {
			t.Fatalf("HandleCreate returned error: %v", err)
		}
		if resp.Body.ID == "" {
			t.Fatal("expected created attendee to carry an id")
		}
		createdID = resp.Body.ID
	})

	t.Run("List", func(t *testing.T) {
		resp, err := handler.HandleList(ctx, &ListAttendeesRequest{Query: "acme"})
		if err != nil {
			t.Fatalf("HandleList returned error: %v", err)
		}
		if len(resp.Body.Items) != 1 || resp.Body.Items[0].ID != createdID {
			t.Errorf("expected exactly the new attendee, got %+v", resp.Body.Items)
		}
	})

	t.Run("Update", func(t *testing.T) {
		company := "Acme Corp"
		req := &UpdateAttendeeRequest{ID: createdID, Body: models.AttendeePatch{Company: &company}}

		resp, err := handler.HandleUpdate(ctx, req)
		if err != nil {
			t.Fatalf("HandleUpdate returned error: %v", err)
		}
		if !resp.Body.Found {
			t.Fatal("expected attendee to be found")
		}
		if resp.Body.Item.Company != "Acme Corp" {
			t.Errorf("expected patched company, got %q", resp.Body.Item.Company)
		}
		if resp.Body.Item.Name != "Jane Doe" {
			t.Errorf("expected unpatched name to survive, got %q", resp.Body.Item.Name)
		}
	})

	t.Run("UpdateMissing", func(t *testing.T) {
		company := "Nowhere Inc"
		req := &UpdateAttendeeRequest{ID: "at-missing", Body: models.AttendeePatch{Company: &company}}

		resp, err := handler.HandleUpdate(ctx, req)
		if err != nil {
			t.Fatalf("HandleUpdate returned error: %v", err)
		}
		if resp.Body.Found {
			t.Error("expected missing id to report found:false")
		}
	})

	t.Run("Delete", func(t *testing.T) {
		resp, err := handler.HandleDelete(ctx, &DeleteAttendeeRequest{ID: createdID})
		if err != nil {
			t.Fatalf("HandleDelete returned error: %v", err)
		}
		if !resp.Body.Deleted {
			t.Fatal("expected delete to succeed")
		}

		again, err := handler.HandleDelete(ctx, &DeleteAttendeeRequest{ID: createdID})
		if err != nil {
			t.Fatalf("second HandleDelete returned error: %v", err)
		}
		if again.Body.Deleted {
			t.Error("expected second delete to be a no-op")
		}
	})
}

func TestExhibitorListUsesSearchSubset(t *testing.T) {
	st := newTestStore(t)
	handler := NewExhibitorHandler(st)

	resp, err := handler.HandleList(context.Background(), &ListExhibitorsRequest{Query: "nanotech"})
	if err != nil {
		t.Fatalf("HandleList returned error: %v", err)
	}
	if len(resp.Body.Items) != 1 || resp.Body.Items[0].ID != "ex-1" {
		t.Errorf("expected ex-1 for query nanotech, got %+v", resp.Body.Items)
	}
}
