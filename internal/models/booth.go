package models

// Booth is a floor spot. Code is intended to be unique but not enforced.
type Booth struct {
	ID    string `json:"id"`
	Code  string `json:"code"`
	Size  string `json:"size"`
	Notes string `json:"notes"`
}

func (b Booth) RecordID() string { return b.ID }

func (b Booth) SearchText() string { return b.Code + " " + b.Size }

type BoothPatch struct {
	Code  *string `json:"code,omitempty" doc:"Booth code"`
	Size  *string `json:"size,omitempty" doc:"Footprint, e.g. 3x3"`
	Notes *string `json:"notes,omitempty" doc:"Free-form notes"`
}

func (p BoothPatch) Apply(b *Booth) {
	if p.Code != nil {
		b.Code = *p.Code
	}
	if p.Size != nil {
		b.Size = *p.Size
	}
	if p.Notes != nil {
		b.Notes = *p.Notes
	}
}
