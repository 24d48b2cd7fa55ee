package models

// Exhibitor is a company showing at the exhibition. Booth is a free-text
// reference to a Booth code; nothing keeps the two in sync.
type Exhibitor struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Contact string `json:"contact"`
	Booth   string `json:"booth"`
	Notes   string `json:"notes"`
}

func (e Exhibitor) RecordID() string { return e.ID }

// SearchText is the text the search box matches against.
func (e Exhibitor) SearchText() string { return e.Name + " " + e.Contact + " " + e.Booth }

// ExhibitorPatch is a partial update; nil fields keep their current value.
// The id is not patchable.
type ExhibitorPatch struct {
	Name    *string `json:"name,omitempty" doc:"Company name"`
	Contact *string `json:"contact,omitempty" doc:"Contact person"`
	Booth   *string `json:"booth,omitempty" doc:"Booth code"`
	Notes   *string `json:"notes,omitempty" doc:"Free-form notes"`
}

func (p ExhibitorPatch) Apply(e *Exhibitor) {
	if p.Name != nil {
		e.Name = *p.Name
	}
	if p.Contact != nil {
		e.Contact = *p.Contact
	}
	if p.Booth != nil {
		e.Booth = *p.Booth
	}
	if p.Notes != nil {
		e.Notes = *p.Notes
	}
}
