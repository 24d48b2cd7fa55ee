package handlers

import (
	"context"

	"github.com/expohall/expohall-api/internal/models"
	"github.com/expohall/expohall-api/internal/store"
)

type EventHandler struct {
	store *store.Store
}

func NewEventHandler(store *store.Store) *EventHandler {
	return &EventHandler{store: store}
}

type ListEventsRequest struct {
	Query string `query:"q" doc:"Case-insensitive substring matched against title, location and speaker"`
}

type ListEventsResponse struct {
	Body struct {
		Items []models.Event `json:"items"`
	}
}

func (h *EventHandler) HandleList(ctx context.Context, input *ListEventsRequest) (*ListEventsResponse, error) {
	res := &ListEventsResponse{}
	res.Body.Items = h.store.FilterEvents(input.Query)
	return res, nil
}

type CreateEventRequest struct {
	Body struct {
		Title    string `json:"title" doc:"Event title" required:"true" minLength:"1"`
		Start    string `json:"start,omitempty" doc:"Local start date-time, e.g. 2026-09-12T09:00"`
		End      string `json:"end,omitempty" doc:"Local end date-time"`
		Location string `json:"location,omitempty" doc:"Room or hall"`
		Speaker  string `json:"speaker,omitempty" doc:"Speaker name"`
	}
}

type EventResponse struct {
	Body models.Event
}

func (h *EventHandler) HandleCreate(ctx context.Context, input *CreateEventRequest) (*EventResponse, error) {
	created := h.store.AddEvent(models.Event{
		Title:    input.Body.Title,
		Start:    input.Body.Start,
		End:      input.Body.End,
		Location: input.Body.Location,
		Speaker:  input.Body.Speaker,
	})
	return &EventResponse{Body: created}, nil
}

type UpdateEventRequest struct {
	ID   string `path:"id" doc:"Event id"`
	Body models.EventPatch
}

type UpdateEventResponse struct {
	Body struct {
		Found bool         `json:"found"`
		Item  models.Event `json:"item"`
	}
}

func (h *EventHandler) HandleUpdate(ctx context.Context, input *UpdateEventRequest) (*UpdateEventResponse, error) {
	res := &UpdateEventResponse{}
	res.Body.Item, res.Body.Found = h.store.UpdateEvent(input.ID, input.Body)
	return res, nil
}

type DeleteEventRequest struct {
	ID string `path:"id" doc:"Event id"`
}

type DeleteEventResponse struct {
	Body struct {
		Deleted bool `json:"deleted"`
	}
}

func (h *EventHandler) HandleDelete(ctx context.Context, input *DeleteEventRequest) (*DeleteEventResponse, error) {
	res := &DeleteEventResponse{}
	res.Body.Deleted = h.store.RemoveEvent(input.ID)
	return res, nil
}
