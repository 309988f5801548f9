package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"zapis/internal/db"
	"zapis/internal/metrics"
	"zapis/internal/model"
)

// CreateOverrideRequest is the request body for POST /api/v1/overrides.
// It covers all four schedule-manager actions: vacation range, single day
// off, extra working day, and a blocked time window on an open day.
type CreateOverrideRequest struct {
	DateFrom  string `json:"date_from"` // YYYY-MM-DD
	DateTo    string `json:"date_to"`   // YYYY-MM-DD; defaults to date_from
	IsWorking bool   `json:"is_working"`
	TimeFrom  string `json:"time_from,omitempty"` // HH:MM
	TimeTo    string `json:"time_to,omitempty"`
	Reason    string `json:"reason,omitempty"`
}

// handleOverrides lists or creates schedule overrides (admin).
func (s *HTTPServer) handleOverrides(w http.ResponseWriter, r *http.Request) {
	metrics.IncHTTP("overrides")
	if !s.requireAdmin(w, r) {
		return
	}

	switch r.Method {
	case http.MethodGet:
		overrides, err := s.db.ListOverrides(r.Context())
		if err != nil {
			s.log.Error().Err(err).Msg("list overrides failed")
			writeError(w, http.StatusInternalServerError, "failed to list overrides")
			return
		}
		if overrides == nil {
			overrides = []model.ScheduleOverride{}
		}
		writeJSON(w, http.StatusOK, map[string]any{"overrides": overrides})

	case http.MethodPost:
		s.createOverride(w, r)

	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (s *HTTPServer) createOverride(w http.ResponseWriter, r *http.Request) {
	var req CreateOverrideRequest
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if req.DateTo == "" {
		req.DateTo = req.DateFrom
	}
	dateFrom, err := model.ParseDate(req.DateFrom)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid date_from; expected YYYY-MM-DD")
		return
	}
	dateTo, err := model.ParseDate(req.DateTo)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid date_to; expected YYYY-MM-DD")
		return
	}

	override := &model.ScheduleOverride{
		DateFrom:  dateFrom,
		DateTo:    dateTo,
		IsWorking: req.IsWorking,
		TimeFrom:  req.TimeFrom,
		TimeTo:    req.TimeTo,
		Reason:    req.Reason,
	}
	if err := s.db.CreateOverride(r.Context(), override); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	// An override can change availability for any date in its range.
	s.slotCache.InvalidateAll(r.Context())

	s.log.Info().
		Str("override_id", override.ID).
		Str("date_from", req.DateFrom).
		Str("date_to", req.DateTo).
		Bool("is_working", req.IsWorking).
		Msg("override created")

	writeJSON(w, http.StatusOK, override)
}

// handleDeleteOverride removes an override (admin).
// DELETE /api/v1/overrides/{id}
func (s *HTTPServer) handleDeleteOverride(w http.ResponseWriter, r *http.Request) {
	metrics.IncHTTP("overrides_delete")
	if r.Method != http.MethodDelete {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	if !s.requireAdmin(w, r) {
		return
	}

	id := strings.TrimPrefix(r.URL.Path, "/api/v1/overrides/")
	if id == "" || strings.Contains(id, "/") {
		writeError(w, http.StatusBadRequest, "invalid path")
		return
	}

	if err := s.db.DeleteOverride(r.Context(), id); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			writeError(w, http.StatusNotFound, "override not found")
			return
		}
		s.log.Error().Err(err).Str("override_id", id).Msg("delete override failed")
		writeError(w, http.StatusInternalServerError, "failed to delete override")
		return
	}

	s.slotCache.InvalidateAll(r.Context())
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}
