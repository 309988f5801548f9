package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"slices"
	"strings"

	"zapis/internal/db"
	"zapis/internal/metrics"
	"zapis/internal/model"
)

// CreateBookingRequest is the request body for POST /api/v1/bookings.
type CreateBookingRequest struct {
	UserID      string   `json:"user_id"`
	BookingDate string   `json:"booking_date"` // YYYY-MM-DD
	BookingTime string   `json:"booking_time"` // HH:MM
	ServiceIDs  []string `json:"service_ids"`
	Notes       string   `json:"notes,omitempty"`
}

// CreateBookingResponse is the response for POST /api/v1/bookings.
type CreateBookingResponse struct {
	Success   bool   `json:"success"`
	BookingID string `json:"booking_id,omitempty"`
	Error     string `json:"error,omitempty"`
}

// handleBookings lists bookings or creates one.
// GET  /api/v1/bookings?date=YYYY-MM-DD | ?user_id=...
// POST /api/v1/bookings
func (s *HTTPServer) handleBookings(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.listBookings(w, r)
	case http.MethodPost:
		s.createBooking(w, r)
	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (s *HTTPServer) listBookings(w http.ResponseWriter, r *http.Request) {
	metrics.IncHTTP("bookings_list")

	var (
		bookings []model.Booking
		err      error
	)
	switch {
	case r.URL.Query().Get("date") != "":
		date, parseErr := model.ParseDate(r.URL.Query().Get("date"))
		if parseErr != nil {
			writeError(w, http.StatusBadRequest, "invalid date format; expected YYYY-MM-DD")
			return
		}
		bookings, err = s.db.ListBookingsByDate(r.Context(), date)
	case r.URL.Query().Get("user_id") != "":
		bookings, err = s.db.ListBookingsByUser(r.Context(), r.URL.Query().Get("user_id"))
	default:
		writeError(w, http.StatusBadRequest, "date or user_id is required")
		return
	}
	if err != nil {
		s.log.Error().Err(err).Msg("list bookings failed")
		writeError(w, http.StatusInternalServerError, "failed to list bookings")
		return
	}

	if bookings == nil {
		bookings = []model.Booking{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"bookings": bookings})
}

func (s *HTTPServer) createBooking(w http.ResponseWriter, r *http.Request) {
	metrics.IncHTTP("bookings_create")

	var req CreateBookingRequest
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if req.UserID == "" || len(req.ServiceIDs) == 0 {
		writeJSON(w, http.StatusBadRequest, CreateBookingResponse{
			Error: "user_id and service_ids are required",
		})
		return
	}
	date, err := model.ParseDate(req.BookingDate)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, CreateBookingResponse{
			Error: "invalid booking_date; expected YYYY-MM-DD",
		})
		return
	}
	startTime := strings.TrimSpace(req.BookingTime)
	if _, err := model.ParseClock(startTime); err != nil {
		writeJSON(w, http.StatusBadRequest, CreateBookingResponse{
			Error: "invalid booking_time; expected HH:MM",
		})
		return
	}

	snap, err := s.db.LoadSnapshot(r.Context(), date, s.blackoutDates)
	if err != nil {
		s.log.Warn().Err(err).Msg("booking snapshot degraded")
	}

	if !s.engine.IsWorkingDay(date, snap) {
		writeJSON(w, http.StatusConflict, CreateBookingResponse{
			Error: "salon is closed on the selected date",
		})
		return
	}
	if !slices.Contains(s.engine.AvailableSlots(date, req.ServiceIDs, snap), startTime) {
		metrics.IncBookingConflict()
		writeJSON(w, http.StatusConflict, CreateBookingResponse{
			Error: "selected time is not available",
		})
		return
	}

	booking := &model.Booking{
		UserID:      req.UserID,
		BookingDate: date,
		BookingTime: startTime,
		ServiceIDs:  req.ServiceIDs,
		Status:      model.StatusPending,
		Notes:       req.Notes,
	}
	if err := s.db.CreateBooking(r.Context(), booking, snap.Services); err != nil {
		if errors.Is(err, db.ErrSlotTaken) {
			// Another booker won the write-time race for this interval.
			metrics.IncBookingConflict()
			writeJSON(w, http.StatusConflict, CreateBookingResponse{
				Error: "time slot was just taken",
			})
			return
		}
		s.log.Error().Err(err).Msg("create booking failed")
		writeJSON(w, http.StatusInternalServerError, CreateBookingResponse{
			Error: "failed to create booking",
		})
		return
	}

	metrics.IncBookingCreated(booking.Status)
	s.slotCache.InvalidateDate(r.Context(), date)

	s.log.Info().
		Str("booking_id", booking.ID).
		Str("date", req.BookingDate).
		Str("time", startTime).
		Int("services", len(req.ServiceIDs)).
		Msg("booking created")

	writeJSON(w, http.StatusOK, CreateBookingResponse{Success: true, BookingID: booking.ID})
}

// handleBookingStatus moves a booking through the admin workflow.
// POST /api/v1/bookings/{id}/status  {"status": "confirmed"}
func (s *HTTPServer) handleBookingStatus(w http.ResponseWriter, r *http.Request) {
	metrics.IncHTTP("bookings_status")
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	if !s.requireAdmin(w, r) {
		return
	}

	parts := strings.Split(strings.TrimPrefix(r.URL.Path, "/api/v1/bookings/"), "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] != "status" {
		writeError(w, http.StatusBadRequest, "invalid path")
		return
	}
	bookingID := parts[0]

	var req struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || !model.ValidStatus(req.Status) {
		writeError(w, http.StatusBadRequest, "status must be one of pending, confirmed, cancelled, completed")
		return
	}

	if err := s.db.UpdateBookingStatus(r.Context(), bookingID, req.Status); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			writeError(w, http.StatusNotFound, "booking not found")
			return
		}
		s.log.Error().Err(err).Str("booking_id", bookingID).Msg("status update failed")
		writeError(w, http.StatusInternalServerError, "failed to update status")
		return
	}

	// Cancelling frees the interval for other bookers.
	s.slotCache.InvalidateAll(r.Context())

	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}
