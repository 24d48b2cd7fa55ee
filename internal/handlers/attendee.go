package handlers

import (
	"context"

	"github.com/expohall/expohall-api/internal/models"
	"github.com/expohall/expohall-api/internal/store"
)

type AttendeeHandler struct {
	store *store.Store
}

func NewAttendeeHandler(store *store.Store) *AttendeeHandler {
	return &AttendeeHandler{store: store}
}

type ListAttendeesRequest struct {
	Query string `query:"q" doc:"Case-insensitive substring matched against name, company, email and type"`
}

type ListAttendeesResponse struct {
	Body struct {
		Items []models.Attendee `json:"items"`
	}
}

func (h *AttendeeHandler) HandleList(ctx context.Context, input *ListAttendeesRequest) (*ListAttendeesResponse, error) {
	res := &ListAttendeesResponse{}
	res.Body.Items = h.store.FilterAttendees(input.Query)
	return res, nil
}

type CreateAttendeeRequest struct {
	Body struct {
		Name    string `json:"name" doc:"Attendee name" required:"true" minLength:"1"`
		Company string `json:"company,omitempty" doc:"Company"`
		Email   string `json:"email,omitempty" doc:"Email address"`
		Type    string `json:"type,omitempty" doc:"Visitor, Exhibitor, Speaker or Staff"`
	}
}

type AttendeeResponse struct {
	Body models.Attendee
}

func (h *AttendeeHandler) HandleCreate(ctx context.Context, input *CreateAttendeeRequest) (*AttendeeResponse, error) {
	created := h.store.AddAttendee(models.Attendee{
		Name:    input.Body.Name,
		Company: input.Body.Company,
		Email:   input.Body.Email,
		Type:    input.Body.Type,
	})
	return &AttendeeResponse{Body: created}, nil
}

type UpdateAttendeeRequest struct {
	ID   string `path:"id" doc:"Attendee id"`
	Body models.AttendeePatch
}

type UpdateAttendeeResponse struct {
	Body struct {
		Found bool            `json:"found"`
		Item  models.Attendee `json:"item"`
	}
}

func (h *AttendeeHandler) HandleUpdate(ctx context.Context, input *UpdateAttendeeRequest) (*UpdateAttendeeResponse, error) {
	res := &UpdateAttendeeResponse{}
	res.Body.Item, res.Body.Found = h.store.UpdateAttendee(input.ID, input.Body)
	return res, nil
}

type DeleteAttendeeRequest struct {
	ID string `path:"id" doc:"Attendee id"`
}

type DeleteAttendeeResponse struct {
	Body struct {
		Deleted bool `json:"deleted"`
	}
}

func (h *AttendeeHandler) HandleDelete(ctx context.Context, input *DeleteAttendeeRequest) (*DeleteAttendeeResponse, error) {
	res := &DeleteAttendeeResponse{}
	res.Body.Deleted = h.store.RemoveAttendee(input.ID)
	return res, nil
}
