package models

// Event is a schedule entry. Start and End are local date-time strings
// (datetime-local form values); nothing enforces Start < End.
type Event struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Start    string `json:"start"`
	End      string `json:"end"`
	Location string `json:"location"`
	Speaker  string `json:"speaker"`
}

func (e Event) RecordID() string { return e.ID }

func (e Event) SearchText() string { return e.Title + " " + e.Location + " " + e.Speaker }

type EventPatch struct {
	Title    *string `json:"title,omitempty" doc:"Event title"`
	Start    *string `json:"start,omitempty" doc:"Local start date-time"`
	End      *string `json:"end,omitempty" doc:"Local end date-time"`
	Location *string `json:"location,omitempty" doc:"Room or hall"`
	Speaker  *string `json:"speaker,omitempty" doc:"Speaker name"`
}

func (p EventPatch) Apply(e *Event) {
	if p.Title != nil {
		e.Title = *p.Title
	}
	if p.Start != nil {
		e.Start = *p.Start
	}
	if p.End != nil {
		e.End = *p.End
	}
	if p.Location != nil {
		e.Location = *p.Location
	}
	if p.Speaker != nil {
		e.Speaker = *p.Speaker
	}
}
