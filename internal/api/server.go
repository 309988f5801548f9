// Package api exposes the booking service over HTTP: availability queries,
// booking CRUD, the service catalogue, schedule override administration and
// report export.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"zapis/internal/availability"
	"zapis/internal/cache"
	"zapis/internal/db"
)

// HTTPServer handles the booking API endpoints.
type HTTPServer struct {
	db        *db.DB
	engine    *availability.Engine
	slotCache *cache.SlotCache
	log       zerolog.Logger

	adminKey      string
	blackoutDates []time.Time
	maxRangeDays  int
	limiter       *clientLimiter
}

// Options configures the HTTP server.
type Options struct {
	AdminAPIKey    string
	BlackoutDates  []time.Time
	MaxRangeDays   int
	RateLimitRPS   float64
	RateLimitBurst int
}

// NewHTTPServer wires the API around storage, the availability engine and an
// optional slot cache (nil disables caching).
func NewHTTPServer(database *db.DB, engine *availability.Engine, slotCache *cache.SlotCache, opts Options, log zerolog.Logger) *HTTPServer {
	if opts.MaxRangeDays <= 0 {
		opts.MaxRangeDays = 90
	}
	return &HTTPServer{
		db:            database,
		engine:        engine,
		slotCache:     slotCache,
		log:           log,
		adminKey:      opts.AdminAPIKey,
		blackoutDates: opts.BlackoutDates,
		maxRangeDays:  opts.MaxRangeDays,
		limiter:       newClientLimiter(opts.RateLimitRPS, opts.RateLimitBurst),
	}
}

// Handler builds the route table.
func (s *HTTPServer) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/api/v1/availability/days", s.handleAvailableDays)
	mux.HandleFunc("/api/v1/availability/slots", s.handleAvailableSlots)
	mux.HandleFunc("/api/v1/services", s.handleServices)
	mux.HandleFunc("/api/v1/bookings", s.handleBookings)
	mux.HandleFunc("/api/v1/bookings/", s.handleBookingStatus)
	mux.HandleFunc("/api/v1/overrides", s.handleOverrides)
	mux.HandleFunc("/api/v1/overrides/", s.handleDeleteOverride)
	mux.HandleFunc("/api/v1/reports/bookings", s.handleBookingsReport)

	return s.rateLimit(mux)
}

// ListenAndServe runs the API server until ctx is cancelled.
func (s *HTTPServer) ListenAndServe(ctx context.Context, port int) error {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.log.Info().Int("port", port).Msg("API server listening")
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
