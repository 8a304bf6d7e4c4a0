package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/nshetty/panchangd/internal/panchang"
)

// handlePanchang serves the panchang range lookup. All three query
// parameters are required. The location is passed through to the scraper but
// does not vary the lookup target (see internal/drik).
func (s *Server) handlePanchang(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	startStr := q.Get("start_date")
	endStr := q.Get("end_date")
	location := q.Get("location")

	if startStr == "" || endStr == "" || location == "" {
		jsonError(w, "start_date, end_date and location query parameters are required", http.StatusBadRequest)
		return
	}

	start, err := time.Parse(panchang.DateFormat, startStr)
	if err != nil {
		jsonError(w, "invalid start_date, use YYYY-MM-DD", http.StatusBadRequest)
		return
	}
	end, err := time.Parse(panchang.DateFormat, endStr)
	if err != nil {
		jsonError(w, "invalid end_date, use YYYY-MM-DD", http.StatusBadRequest)
		return
	}

	// Each day costs one upstream fetch, so cap how much a single request
	// can ask for.
	if days := int(end.Sub(start).Hours()/24) + 1; days > s.cfg.MaxRangeDays {
		jsonError(w, fmt.Sprintf("date range exceeds %d days", s.cfg.MaxRangeDays), http.StatusBadRequest)
		return
	}

	records := s.scraper.ScrapeRange(r.Context(), start, end, location)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"panchang": records})
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
