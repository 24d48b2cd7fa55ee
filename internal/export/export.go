// Package export serializes store contents for download and clipboard use.
package export

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// BackupFilename is the fixed attachment name for the JSON backup.
const BackupFilename = "expohall-backup.json"

// Column maps a record field key to the header label it exports under.
type Column struct {
	Key   string
	Label string
}

// CSV renders a header row of quoted labels followed by one row per record.
// Every field is quoted unconditionally; embedded quotes are doubled. Rows
// are maps keyed by Column.Key; missing keys export as empty fields.
func CSV(cols []Column, rows []map[string]string) string {
	var b strings.Builder

	cells := make([]string, len(cols))
	for i, c := range cols {
		cells[i] = quote(c.Label)
	}
	b.WriteString(strings.Join(cells, ","))
	b.WriteString("\n")

	for _, row := range rows {
		for i, c := range cols {
			cells[i] = quote(row[c.Key])
		}
		b.WriteString(strings.Join(cells, ","))
		b.WriteString("\n")
	}

	return b.String()
}

func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// CSVFilename names a CSV download after the moment of export.
func CSVFilename(now time.Time) string {
	return fmt.Sprintf("export_%d.csv", now.UnixMilli())
}

// BackupJSON is the pretty-printed form used for the downloadable backup.
func BackupJSON(v any) ([]byte, error) {
	return json.MarshalIndent(v, "", "  ")
}

// CompactJSON is the clipboard payload form.
func CompactJSON(v any) ([]byte, error) {
	return json.Marshal(v)
}
