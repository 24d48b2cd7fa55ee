package handlers

import (
	"context"

	"github.com/expohall/expohall-api/internal/models"
	"github.com/expohall/expohall-api/internal/store"
)

type ExhibitorHandler struct {
	store *store.Store
}

func NewExhibitorHandler(store *store.Store) *ExhibitorHandler {
	return &ExhibitorHandler{store: store}
}

type ListExhibitorsRequest struct {
	Query string `query:"q" doc:"Case-insensitive substring matched against name, contact and booth"`
}

type ListExhibitorsResponse struct {
	Body struct {
		Items []models.Exhibitor `json:"items"`
	}
}

func (h *ExhibitorHandler) HandleList(ctx context.Context, input *ListExhibitorsRequest) (*ListExhibitorsResponse, error) {
	res := &ListExhibitorsResponse{}
	res.Body.Items = h.store.FilterExhibitors(input.Query)
	return res, nil
}

type CreateExhibitorRequest struct {
	Body struct {
		Name    string `json:"name" doc:"Company name" required:"true" minLength:"1"`
		Contact string `json:"contact,omitempty" doc:"Contact person"`
		Booth   string `json:"booth,omitempty" doc:"Booth code"`
		Notes   string `json:"notes,omitempty" doc:"Free-form notes"`
	}
}

type ExhibitorResponse struct {
	Body models.Exhibitor
}

func (h *ExhibitorHandler) HandleCreate(ctx context.Context, input *CreateExhibitorRequest) (*ExhibitorResponse, error) {
	created := h.store.AddExhibitor(models.Exhibitor{
		Name:    input.Body.Name,
		Contact: input.Body.Contact,
		Booth:   input.Body.Booth,
		Notes:   input.Body.Notes,
	})
	return &ExhibitorResponse{Body: created}, nil
}

type UpdateExhibitorRequest struct {
	ID   string `path:"id" doc:"Exhibitor id"`
	Body models.ExhibitorPatch
}

type UpdateExhibitorResponse struct {
	Body struct {
		Found bool             `json:"found"`
		Item  models.Exhibitor `json:"item"`
	}
}

// HandleUpdate merges the patch over the matching record. A missing id is a
// no-op reported as found:false, not an error.
func (h *ExhibitorHandler) HandleUpdate(ctx context.Context, input *UpdateExhibitorRequest) (*UpdateExhibitorResponse, error) {
	res := &UpdateExhibitorResponse{}
	res.Body.Item, res.Body.Found = h.store.UpdateExhibitor(input.ID, input.Body)
	return res, nil
}

type DeleteExhibitorRequest struct {
	ID string `path:"id" doc:"Exhibitor id"`
}

type DeleteExhibitorResponse struct {
	Body struct {
		Deleted bool `json:"deleted"`
	}
}

func (h *ExhibitorHandler) HandleDelete(ctx context.Context, input *DeleteExhibitorRequest) (*DeleteExhibitorResponse, error) {
	res := &DeleteExhibitorResponse{}
	res.Body.Deleted = h.store.RemoveExhibitor(input.ID)
	return res, nil
}
