package api

import (
	"encoding/json"
	"net/http"

	"zapis/internal/metrics"
	"zapis/internal/model"
)

// handleServices lists the catalogue or creates an entry (admin).
// GET  /api/v1/services?include_inactive=true
// POST /api/v1/services
func (s *HTTPServer) handleServices(w http.ResponseWriter, r *http.Request) {
	metrics.IncHTTP("services")

	switch r.Method {
	case http.MethodGet:
		includeInactive := r.URL.Query().Get("include_inactive") == "true"
		services, err := s.db.ListServices(r.Context(), !includeInactive)
		if err != nil {
			s.log.Error().Err(err).Msg("list services failed")
			writeError(w, http.StatusInternalServerError, "failed to list services")
			return
		}
		if services == nil {
			services = []model.Service{}
		}
		writeJSON(w, http.StatusOK, map[string]any{"services": services})

	case http.MethodPost:
		if !s.requireAdmin(w, r) {
			return
		}

		var svc model.Service
		decoder := json.NewDecoder(r.Body)
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&svc); err != nil {
			writeError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}

		if err := s.db.CreateService(r.Context(), &svc); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		s.log.Info().Str("service_id", svc.ID).Str("name", svc.Name).Msg("service created")
		writeJSON(w, http.StatusOK, svc)

	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}
