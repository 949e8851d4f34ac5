package http

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"salonbook/internal/core"
)

// handleAnalytics returns the year-scoped aggregates. Optional asOf query
// parameter (YYYY-MM-DD) pins the target year; defaults to today.
func (s *Server) handleAnalytics(w http.ResponseWriter, r *http.Request) {
	asOf := asOfParam(r)
	writeJSON(w, http.StatusOK, s.entries.Analytics(r.Context(), asOf))
}

// handleDailySeries returns the trailing daily net series. The window query
// parameter selects the size; the dashboard uses 7 and 30.
func (s *Server) handleDailySeries(w http.ResponseWriter, r *http.Request) {
	asOf := asOfParam(r)

	window := 7
	if v := strings.TrimSpace(r.URL.Query().Get("window")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > 366 {
			writeError(w, http.StatusBadRequest, "invalid window, expected 1-366")
			return
		}
		window = n
	}

	series := s.entries.Daily(r.Context(), asOf, window)
	writeJSON(w, http.StatusOK, series)
}

func asOfParam(r *http.Request) time.Time {
	if v := strings.TrimSpace(r.URL.Query().Get("asOf")); v != "" {
		if t, err := time.Parse(core.DateLayout, v); err == nil {
			return t
		}
	}
	return time.Now()
}
