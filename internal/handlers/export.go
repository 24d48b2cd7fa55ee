package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/expohall/expohall-api/internal/export"
	"github.com/expohall/expohall-api/internal/models"
	"github.com/expohall/expohall-api/internal/store"
	"github.com/go-chi/chi/v5"
)

// ExportHandler serves downloads and clipboard payloads. These are plain
// chi routes rather than huma operations: they stream files, not JSON
// bodies with schemas.
type ExportHandler struct {
	store *store.Store
}

func NewExportHandler(store *store.Store) *ExportHandler {
	return &ExportHandler{store: store}
}

var (
	exhibitorColumns = []export.Column{
		{Key: "name", Label: "Name"},
		{Key: "contact", Label: "Contact"},
		{Key: "booth", Label: "Booth"},
		{Key: "notes", Label: "Notes"},
	}
	boothColumns = []export.Column{
		{Key: "code", Label: "Code"},
		{Key: "size", Label: "Size"},
		{Key: "notes", Label: "Notes"},
	}
	eventColumns = []export.Column{
		{Key: "title", Label: "Title"},
		{Key: "start", Label: "Start"},
		{Key: "end", Label: "End"},
		{Key: "location", Label: "Location"},
		{Key: "speaker", Label: "Speaker"},
	}
	attendeeColumns = []export.Column{
		{Key: "name", Label: "Name"},
		{Key: "company", Label: "Company"},
		{Key: "email", Label: "Email"},
		{Key: "type", Label: "Type"},
	}
)

func exhibitorRow(e models.Exhibitor) map[string]string {
	return map[string]string{"name": e.Name, "contact": e.Contact, "booth": e.Booth, "notes": e.Notes}
}

func boothRow(b models.Booth) map[string]string {
	return map[string]string{"code": b.Code, "size": b.Size, "notes": b.Notes}
}

func eventRow(e models.Event) map[string]string {
	return map[string]string{"title": e.Title, "start": e.Start, "end": e.End, "location": e.Location, "speaker": e.Speaker}
}

func attendeeRow(a models.Attendee) map[string]string {
	return map[string]string{"name": a.Name, "company": a.Company, "email": a.Email, "type": a.Type}
}

func rowsOf[T any](items []T, row func(T) map[string]string) []map[string]string {
	out := make([]map[string]string, 0, len(items))
	for _, item := range items {
		out = append(out, row(item))
	}
	return out
}

// HandleCSV exports one collection as a CSV attachment named after the
// export moment.
func (h *ExportHandler) HandleCSV(w http.ResponseWriter, r *http.Request) {
	agg := h.store.Snapshot()

	var cols []export.Column
	var rows []map[string]string
	switch chi.URLParam(r, "collection") {
	case "exhibitors":
		cols, rows = exhibitorColumns, rowsOf(agg.Exhibitors, exhibitorRow)
	case "booths":
		cols, rows = boothColumns, rowsOf(agg.Booths, boothRow)
	case "events":
		cols, rows = eventColumns, rowsOf(agg.Events, eventRow)
	case "attendees":
		cols, rows = attendeeColumns, rowsOf(agg.Attendees, attendeeRow)
	default:
		http.Error(w, "Unknown collection", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.CSVFilename(time.Now())))
	w.Write([]byte(export.CSV(cols, rows)))
}

// HandleBackup downloads the whole aggregate as pretty-printed JSON.
func (h *ExportHandler) HandleBackup(w http.ResponseWriter, r *http.Request) {
	data, err := export.BackupJSON(h.store.Snapshot())
	if err != nil {
		http.Error(w, "Failed to encode backup", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.BackupFilename))
	w.Write(data)
}

// HandleAggregateJSON returns the whole aggregate as compact JSON; the page
// copies it to the clipboard.
func (h *ExportHandler) HandleAggregateJSON(w http.ResponseWriter, r *http.Request) {
	data, err := export.CompactJSON(h.store.Snapshot())
	if err != nil {
		http.Error(w, "Failed to encode state", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write(data)
}

// HandleExhibitorsJSON returns the filtered exhibitor list as compact JSON;
// the page copies it to the clipboard.
func (h *ExportHandler) HandleExhibitorsJSON(w http.ResponseWriter, r *http.Request) {
	items := h.store.FilterExhibitors(r.URL.Query().Get("q"))
	data, err := export.CompactJSON(items)
	if err != nil {
		http.Error(w, "Failed to encode exhibitors", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write(data)
}
