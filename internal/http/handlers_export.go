package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"salonbook/internal/export"
)

func (s *Server) handleExportCSV(w http.ResponseWriter, r *http.Request) {
	entries := s.entries.List(r.Context())

	filename := fmt.Sprintf("salonbook-%s.csv", time.Now().Format("2006-01-02"))
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)

	if err := export.WriteCSV(w, entries); err != nil {
		slog.ErrorContext(r.Context(), "CSV export failed", "error", err)
	}
}

func (s *Server) handleExportJSON(w http.ResponseWriter, r *http.Request) {
	entries := s.entries.List(r.Context())

	filename := fmt.Sprintf("salonbook-%s.json", time.Now().Format("2006-01-02"))
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)

	if err := export.WriteJSON(w, entries); err != nil {
		slog.ErrorContext(r.Context(), "JSON export failed", "error", err)
	}
}
