package api

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"zapis/internal/metrics"
	"zapis/internal/model"
)

// DayAvailability is one entry of the working-days response.
type DayAvailability struct {
	Date    string `json:"date"`
	Working bool   `json:"working"`
}

// SlotsResponse is the response for GET /api/v1/availability/slots.
type SlotsResponse struct {
	Date  string   `json:"date"`
	Slots []string `json:"slots"`
	// Degraded is set when override or booking snapshots could not be
	// loaded and the result fell back to cycle-only availability.
	Degraded bool `json:"degraded,omitempty"`
}

// handleAvailableDays classifies every date in [from, to] as open or closed.
// GET /api/v1/availability/days?from=YYYY-MM-DD&to=YYYY-MM-DD
func (s *HTTPServer) handleAvailableDays(w http.ResponseWriter, r *http.Request) {
	metrics.IncHTTP("availability_days")
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	from, to, err := s.parseDateRange(r.URL.Query().Get("from"), r.URL.Query().Get("to"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	// Day-level availability needs no bookings; build the snapshot once and
	// reuse it for the whole range.
	snap, err := s.db.LoadSnapshot(r.Context(), from, s.blackoutDates)
	if err != nil {
		s.log.Warn().Err(err).Msg("availability snapshot degraded")
	}

	var days []DayAvailability
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		working := s.engine.IsWorkingDay(d, snap)
		metrics.IncAvailabilityCheck(working)
		days = append(days, DayAvailability{
			Date:    d.Format(model.DateLayout),
			Working: working,
		})
	}

	writeJSON(w, http.StatusOK, map[string]any{"days": days})
}

// handleAvailableSlots returns free slot start times for a date and service
// selection.
// GET /api/v1/availability/slots?date=YYYY-MM-DD&service_ids=id1,id2
func (s *HTTPServer) handleAvailableSlots(w http.ResponseWriter, r *http.Request) {
	metrics.IncHTTP("availability_slots")
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	date, err := model.ParseDate(r.URL.Query().Get("date"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid date format; expected YYYY-MM-DD")
		return
	}

	serviceIDs := splitIDs(r.URL.Query().Get("service_ids"))
	if len(serviceIDs) == 0 {
		// The engine itself treats an empty selection as duration 0 and
		// would return every slot; the contract says reject it here.
		writeError(w, http.StatusBadRequest, "service_ids is required")
		return
	}

	if slots, ok := s.slotCache.GetSlots(r.Context(), date, serviceIDs); ok {
		writeJSON(w, http.StatusOK, SlotsResponse{Date: date.Format(model.DateLayout), Slots: slots})
		return
	}

	snap, err := s.db.LoadSnapshot(r.Context(), date, s.blackoutDates)
	degraded := err != nil
	if degraded {
		s.log.Warn().Err(err).Str("date", date.Format(model.DateLayout)).Msg("slots snapshot degraded")
	}

	slots := s.engine.AvailableSlots(date, serviceIDs, snap)
	if slots == nil {
		slots = []string{}
	}
	if !degraded {
		s.slotCache.SetSlots(r.Context(), date, serviceIDs, slots)
	}

	writeJSON(w, http.StatusOK, SlotsResponse{
		Date:     date.Format(model.DateLayout),
		Slots:    slots,
		Degraded: degraded,
	})
}

func (s *HTTPServer) parseDateRange(fromStr, toStr string) (from, to time.Time, err error) {
	if fromStr == "" || toStr == "" {
		return time.Time{}, time.Time{}, fmt.Errorf("from and to are required")
	}
	if from, err = model.ParseDate(fromStr); err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid from date; expected YYYY-MM-DD")
	}
	if to, err = model.ParseDate(toStr); err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid to date; expected YYYY-MM-DD")
	}
	if from.After(to) {
		return time.Time{}, time.Time{}, fmt.Errorf("from must be before or equal to to")
	}
	if int(to.Sub(from).Hours()/24) > s.maxRangeDays {
		return time.Time{}, time.Time{}, fmt.Errorf("date range exceeds maximum of %d days", s.maxRangeDays)
	}
	return from, to, nil
}

func splitIDs(raw string) []string {
	var ids []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			ids = append(ids, part)
		}
	}
	return ids
}
