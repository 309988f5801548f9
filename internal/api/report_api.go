package api

import (
	"fmt"
	"net/http"

	"zapis/internal/metrics"
	"zapis/internal/model"
	"zapis/internal/report"
)

// handleBookingsReport streams an XLSX export of bookings in a date range.
// GET /api/v1/reports/bookings?from=YYYY-MM-DD&to=YYYY-MM-DD (admin)
func (s *HTTPServer) handleBookingsReport(w http.ResponseWriter, r *http.Request) {
	metrics.IncHTTP("reports_bookings")
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	if !s.requireAdmin(w, r) {
		return
	}

	from, to, err := s.parseDateRange(r.URL.Query().Get("from"), r.URL.Query().Get("to"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	bookings, err := s.db.ListBookingsInRange(r.Context(), from, to)
	if err != nil {
		s.log.Error().Err(err).Msg("report query failed")
		writeError(w, http.StatusInternalServerError, "failed to load bookings")
		return
	}
	services, err := s.db.ListServices(r.Context(), false)
	if err != nil {
		s.log.Error().Err(err).Msg("report services query failed")
		writeError(w, http.StatusInternalServerError, "failed to load services")
		return
	}

	file, err := report.BookingsReport(bookings, services)
	if err != nil {
		s.log.Error().Err(err).Msg("report build failed")
		writeError(w, http.StatusInternalServerError, "failed to build report")
		return
	}

	filename := fmt.Sprintf("bookings_%s_%s.xlsx",
		from.Format(model.DateLayout), to.Format(model.DateLayout))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	if err := file.Write(w); err != nil {
		s.log.Error().Err(err).Msg("report write failed")
	}
}
