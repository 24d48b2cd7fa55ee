// Package web embeds the single-page management UI.
package web

import (
	"embed"
	"net/http"
)

//go:embed index.html
var content embed.FS

// HandleIndex serves the management page.
func HandleIndex(w http.ResponseWriter, r *http.Request) {
	data, err := content.ReadFile("index.html")
	if err != nil {
		http.Error(w, "UI not available", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(data)
}
