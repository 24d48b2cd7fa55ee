// Package store owns the exhibition state: four typed collections held in a
// single aggregate, persisted as one JSON document in a single state row.
// Every mutation rewrites the whole document (write-through, no batching).
package store

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/expohall/expohall-api/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// StateKey is the fixed key the aggregate persists under.
const StateKey = "expohall.store.v1"

// Confirm is the confirm-or-abort capability the store requires from its
// caller before any destructive operation. Returning false aborts the
// operation as a no-op. The HTTP server passes an always-true callback
// because the page prompts the user itself.
type Confirm func(action string) bool

type Store struct {
	db      *gorm.DB
	confirm Confirm

	mu  sync.Mutex
	agg models.Aggregate
}

// Open constructs the store and loads persisted state. Missing or
// unreadable state falls back to the bundled sample aggregate; Open never
// fails.
func Open(db *gorm.DB, confirm Confirm) *Store {
	s := &Store{db: db, confirm: confirm}
	s.agg = s.load()
	return s
}

func (s *Store) load() models.Aggregate {
	var row models.AppState
	if err := s.db.First(&row, "key = ?", StateKey).Error; err != nil {
		log.Printf("No saved state, starting from sample data: %v", err)
		return models.SampleAggregate()
	}

	var agg models.Aggregate
	if err := json.Unmarshal([]byte(row.Value), &agg); err != nil {
		log.Printf("Saved state is unreadable, starting from sample data: %v", err)
		return models.SampleAggregate()
	}
	return agg
}

// save rewrites the full aggregate into the state row. Write failures are
// logged and otherwise unobserved. Callers hold s.mu.
func (s *Store) save() {
	data, err := json.Marshal(s.agg)
	if err != nil {
		log.Printf("Failed to encode state: %v", err)
		return
	}

	row := models.AppState{Key: StateKey, Value: string(data)}
	if err := s.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&row).Error; err != nil {
		log.Printf("Failed to persist state: %v", err)
	}
}

// newID returns ids like "ex-1f7a3c2e". Uniqueness rides on the random
// suffix; there is no collision check at this scale.
func newID(prefix string) string {
	return prefix + "-" + uuid.NewString()[:8]
}

// Snapshot returns a copy of the current aggregate.
func (s *Store) Snapshot() models.Aggregate {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.agg.Clone()
}

// Reset overwrites all state with the sample aggregate. Confirm-gated.
func (s *Store) Reset() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.confirm("reset all data") {
		return false
	}
	s.agg = models.SampleAggregate()
	s.save()
	return true
}

// Exhibitors

func (s *Store) AddExhibitor(e models.Exhibitor) models.Exhibitor {
	s.mu.Lock()
	defer s.mu.Unlock()
	e.ID = newID("ex")
	s.agg.Exhibitors = append(s.agg.Exhibitors, e)
	s.save()
	return e
}

func (s *Store) UpdateExhibitor(id string, patch models.ExhibitorPatch) (models.Exhibitor, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var updated models.Exhibitor
	ok := updateRecord(s.agg.Exhibitors, id, func(e *models.Exhibitor) {
		patch.Apply(e)
		updated = *e
	})
	if !ok {
		return models.Exhibitor{}, false
	}
	s.save()
	return updated, true
}

func (s *Store) RemoveExhibitor(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.confirm("delete exhibitor " + id) {
		return false
	}
	rest, ok := removeRecord(s.agg.Exhibitors, id)
	if !ok {
		return false
	}
	s.agg.Exhibitors = rest
	s.save()
	return true
}

func (s *Store) FilterExhibitors(query string) []models.Exhibitor {
	s.mu.Lock()
	defer s.mu.Unlock()
	return filterRecords(s.agg.Exhibitors, query)
}

// Booths

func (s *Store) AddBooth(b models.Booth) models.Booth {
	s.mu.Lock()
	defer s.mu.Unlock()
	b.ID = newID("b")
	s.agg.Booths = append(s.agg.Booths, b)
	s.save()
	return b
}

func (s *Store) UpdateBooth(id string, patch models.BoothPatch) (models.Booth, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var updated models.Booth
	ok := updateRecord(s.agg.Booths, id, func(b *models.Booth) {
		patch.Apply(b)
		updated = *b
	})
	if !ok {
		return models.Booth{}, false
	}
	s.save()
	return updated, true
}

func (s *Store) RemoveBooth(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.confirm("delete booth " + id) {
		return false
	}
	rest, ok := removeRecord(s.agg.Booths, id)
	if !ok {
		return false
	}
	s.agg.Booths = rest
	s.save()
	return true
}

func (s *Store) FilterBooths(query string) []models.Booth {
	s.mu.Lock()
	defer s.mu.Unlock()
	return filterRecords(s.agg.Booths, query)
}

// Events

func (s *Store) AddEvent(e models.Event) models.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	e.ID = newID("ev")
	s.agg.Events = append(s.agg.Events, e)
	s.save()
	return e
}

func (s *Store) UpdateEvent(id string, patch models.EventPatch) (models.Event, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var updated models.Event
	ok := updateRecord(s.agg.Events, id, func(e *models.Event) {
		patch.Apply(e)
		updated = *e
	})
	if !ok {
		return models.Event{}, false
	}
	s.save()
	return updated, true
}

func (s *Store) RemoveEvent(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.confirm("delete event " + id) {
		return false
	}
	rest, ok := removeRecord(s.agg.Events, id)
	if !ok {
		return false
	}
	s.agg.Events = rest
	s.save()
	return true
}

func (s *Store) FilterEvents(query string) []models.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return filterRecords(s.agg.Events, query)
}

// Attendees

func (s *Store) AddAttendee(a models.Attendee) models.Attendee {
	s.mu.Lock()
	defer s.mu.Unlock()
	a.ID = newID("at")
	s.agg.Attendees = append(s.agg.Attendees, a)
	s.save()
	return a
}

func (s *Store) UpdateAttendee(id string, patch models.AttendeePatch) (models.Attendee, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var updated models.Attendee
	ok := updateRecord(s.agg.Attendees, id, func(a *models.Attendee) {
		patch.Apply(a)
		updated = *a
	})
	if !ok {
		return models.Attendee{}, false
	}
	s.save()
	return updated, true
}

func (s *Store) RemoveAttendee(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.confirm("delete attendee " + id) {
		return false
	}
	rest, ok := removeRecord(s.agg.Attendees, id)
	if !ok {
		return false
	}
	s.agg.Attendees = rest
	s.save()
	return true
}

func (s *Store) FilterAttendees(query string) []models.Attendee {
	s.mu.Lock()
	defer s.mu.Unlock()
	return filterRecords(s.agg.Attendees, query)
}

// LatestAttendees returns up to n attendees, newest registration first.
func (s *Store) LatestAttendees(n int) []models.Attendee {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Attendee, 0, n)
	for i := len(s.agg.Attendees) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, s.agg.Attendees[i])
	}
	return out
}
