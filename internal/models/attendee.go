package models

// Attendee types offered by the UI. Type is stored as plain text, so other
// values survive a round-trip.
const (
	AttendeeVisitor   = "Visitor"
	AttendeeExhibitor = "Exhibitor"
	AttendeeSpeaker   = "Speaker"
	AttendeeStaff     = "Staff"
)

type Attendee struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Company string `json:"company"`
	Email   string `json:"email"`
	Type    string `json:"type"`
}

func (a Attendee) RecordID() string { return a.ID }

func (a Attendee) SearchText() string {
	return a.Name + " " + a.Company + " " + a.Email + " " + a.Type
}

type AttendeePatch struct {
	Name    *string `json:"name,omitempty" doc:"Attendee name"`
	Company *string `json:"company,omitempty" doc:"Company"`
	Email   *string `json:"email,omitempty" doc:"Email address"`
	Type    *string `json:"type,omitempty" doc:"Visitor, Exhibitor, Speaker or Staff"`
}

func (p AttendeePatch) Apply(a *Attendee) {
	if p.Name != nil {
		a.Name = *p.Name
	}
	if p.Company != nil {
		a.Company = *p.Company
	}
	if p.Email != nil {
		a.Email = *p.Email
	}
	if p.Type != nil {
		a.Type = *p.Type
	}
}
