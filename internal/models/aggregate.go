package models

// Aggregate holds all four collections and is the unit of persistence: the
// whole thing is serialized to a single state row after every mutation.
// Collections keep insertion order.
type Aggregate struct {
	Exhibitors []Exhibitor `json:"exhibitors"`
	Booths     []Booth     `json:"booths"`
	Events     []Event     `json:"events"`
	Attendees  []Attendee  `json:"attendees"`
}

// Clone returns a copy whose slices do not share backing arrays with the
// original, so callers can hand it out without exposing live state. Empty
// collections stay empty rather than nil so they serialize as [].
func (a Aggregate) Clone() Aggregate {
	return Aggregate{
		Exhibitors: cloneSlice(a.Exhibitors),
		Booths:     cloneSlice(a.Booths),
		Events:     cloneSlice(a.Events),
		Attendees:  cloneSlice(a.Attendees),
	}
}

func cloneSlice[T any](s []T) []T {
	if s == nil {
		return nil
	}
	out := make([]T, len(s))
	copy(out, s)
	return out
}

// AppState is the single-row key-value table the aggregate persists into.
type AppState struct {
	Key   string `gorm:"primaryKey"`
	Value string
}
