package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/caresched/hospital-booking/internal/booking"
	"github.com/caresched/hospital-booking/internal/hospital"
)

type RouterConfig struct {
	Directory *hospital.Directory
	Ledger    *booking.Ledger
	SlotGen   *hospital.SlotGenerator
	Logger    zerolog.Logger
	Env       string
	Version   string
}

func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Apply middleware
	r.Use(RequestIDMiddleware)
	r.Use(LoggingMiddleware(cfg.Logger))

	// Health endpoints
	health := NewHealthHandler(cfg.Directory, cfg.Ledger, cfg.Env, cfg.Version)
	r.Get("/health/live", health.Liveness)
	r.Get("/health/ready", health.Readiness)

	// Cascading location lookups
	r.Get("/locations/states", listStatesHandler(cfg.Directory))
	r.Get("/locations/states/{state}/cities", listCitiesHandler(cfg.Directory))
	r.Get("/locations/states/{state}/cities/{city}/localities", listLocalitiesHandler(cfg.Directory))

	// Patient-facing catalog
	r.Get("/hospitals", listHospitalsHandler(cfg.Directory))
	r.Get("/hospitals/{id}", getHospitalHandler(cfg.Directory))
	r.Get("/hospitals/{id}/slots", listSlotsHandler(cfg.Directory))

	// Booking
	r.Post("/appointments", bookAppointmentHandler(cfg.Ledger))
	r.Get("/appointments", listAppointmentsHandler(cfg.Directory, cfg.Ledger))
	r.Get("/appointments/{id}", getAppointmentHandler(cfg.Ledger))
	r.Delete("/appointments/{id}", cancelAppointmentHandler(cfg.Ledger))

	// Back-office console
	r.Route("/admin", func(r chi.Router) {
		r.Get("/stats", statsHandler(cfg.Directory, cfg.Ledger))
		r.Get("/hospitals", adminListHospitalsHandler(cfg.Directory))
		r.Post("/hospitals", addHospitalHandler(cfg.Directory, cfg.SlotGen))
		r.Delete("/hospitals/{id}", removeHospitalHandler(cfg.Directory))
		r.Get("/appointments", adminSearchAppointmentsHandler(cfg.Directory, cfg.Ledger))
	})

	return r
}
