package web

import (
	"encoding/json"
	"net/http"

	"pingmon/internal/view"
)

// handleView renders the live view from the current log contents.
func (s *Server) handleView(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	measurements, err := s.store.ReadAll()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	page, err := view.Render(s.target, measurements)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(page)
}

// handleMeasurements returns the full log as JSON.
func (s *Server) handleMeasurements(w http.ResponseWriter, r *http.Request) {
	measurements, err := s.store.ReadAll()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(measurements)
}
