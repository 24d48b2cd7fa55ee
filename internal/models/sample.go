package models

// SampleAggregate is the bundled demo dataset used on first run and whenever
// the persisted state is missing or unreadable.
func SampleAggregate() Aggregate {
	return Aggregate{
		Exhibitors: []Exhibitor{
			{ID: "ex-1", Name: "NanoTech Lab", Contact: "Ali Reza", Booth: "A1", Notes: "Needs a power drop"},
			{ID: "ex-2", Name: "Green Field Robotics", Contact: "Sara Chen", Booth: "B2", Notes: ""},
		},
		Booths: []Booth{
			{ID: "b-A1", Code: "A1", Size: "3x3", Notes: "Near main entrance"},
			{ID: "b-B2", Code: "B2", Size: "6x3", Notes: ""},
		},
		Events: []Event{
			{ID: "ev-1", Title: "Opening Keynote", Start: "2026-09-12T09:00", End: "2026-09-12T10:00", Location: "Main Hall", Speaker: "Dr. Lena Horvat"},
		},
		Attendees: []Attendee{
			{ID: "at-1", Name: "Ali Reza", Company: "NanoTech Lab", Email: "ali@example.com", Type: AttendeeVisitor},
		},
	}
}
