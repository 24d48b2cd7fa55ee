package handlers

import (
	"context"

	"github.com/expohall/expohall-api/internal/models"
	"github.com/expohall/expohall-api/internal/store"
)

type BoothHandler struct {
	store *store.Store
}

func NewBoothHandler(store *store.Store) *BoothHandler {
	return &BoothHandler{store: store}
}

type ListBoothsRequest struct {
	Query string `query:"q" doc:"Case-insensitive substring matched against code and size"`
}

type ListBoothsResponse struct {
	Body struct {
		Items []models.Booth `json:"items"`
	}
}

func (h *BoothHandler) HandleList(ctx context.Context, input *ListBoothsRequest) (*ListBoothsResponse, error) {
	res := &ListBoothsResponse{}
	res.Body.Items = h.store.FilterBooths(input.Query)
	return res, nil
}

type CreateBoothRequest struct {
	Body struct {
		Code  string `json:"code" doc:"Booth code, e.g. A1" required:"true" minLength:"1"`
		Size  string `json:"size,omitempty" doc:"Footprint, e.g. 3x3"`
		Notes string `json:"notes,omitempty" doc:"Free-form notes"`
	}
}

type BoothResponse struct {
	Body models.Booth
}

func (h *BoothHandler) HandleCreate(ctx context.Context, input *CreateBoothRequest) (*BoothResponse, error) {
	created := h.store.AddBooth(models.Booth{
		Code:  input.Body.Code,
		Size:  input.Body.Size,
		Notes: input.Body.Notes,
	})
	return &BoothResponse{Body: created}, nil
}

type UpdateBoothRequest struct {
	ID   string `path:"id" doc:"Booth id"`
	Body models.BoothPatch
}

type UpdateBoothResponse struct {
	Body struct {
		Found bool         `json:"found"`
		Item  models.Booth `json:"item"`
	}
}

func (h *BoothHandler) HandleUpdate(ctx context.Context, input *UpdateBoothRequest) (*UpdateBoothResponse, error) {
	res := &UpdateBoothResponse{}
	res.Body.Item, res.Body.Found = h.store.UpdateBooth(input.ID, input.Body)
	return res, nil
}

type DeleteBoothRequest struct {
	ID string `path:"id" doc:"Booth id"`
}

type DeleteBoothResponse struct {
	Body struct {
		Deleted bool `json:"deleted"`
	}
}

func (h *BoothHandler) HandleDelete(ctx context.Context, input *DeleteBoothRequest) (*DeleteBoothResponse, error) {
	res := &DeleteBoothResponse{}
	res.Body.Deleted = h.store.RemoveBooth(input.ID)
	return res, nil
}
