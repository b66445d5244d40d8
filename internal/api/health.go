package api

import (
	"net/http"

	"github.com/caresched/hospital-booking/internal/booking"
	"github.com/caresched/hospital-booking/internal/hospital"
)

type HealthHandler struct {
	dir     *hospital.Directory
	ledger  *booking.Ledger
	env     string
	version string
}

func NewHealthHandler(dir *hospital.Directory, ledger *booking.Ledger, env, version string) *HealthHandler {
	return &HealthHandler{
		dir:     dir,
		ledger:  ledger,
		env:     env,
		version: version,
	}
}

type LivenessResponse struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
	Env     string `json:"env,omitempty"`
}

type ReadinessResponse struct {
	Status       string `json:"status"`
	Version      string `json:"version,omitempty"`
	Env          string `json:"env,omitempty"`
	Hospitals    int    `json:"hospitals"`
	Appointments int    `json:"appointments"`
}

func (h *HealthHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	resp := LivenessResponse{
		Status:  "ok",
		Version: h.version,
		Env:     h.env,
	}
	writeJSON(w, http.StatusOK, resp)
}

// Readiness has no external dependencies to probe; the service is ready
// once the in-memory catalog is seeded, so it reports the collection
// sizes and degrades only when the catalog is empty.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	status := "ok"
	httpStatus := http.StatusOK
	if h.dir.Len() == 0 {
		status = "degraded"
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, ReadinessResponse{
		Status:       status,
		Version:      h.version,
		Env:          h.env,
		Hospitals:    h.dir.Len(),
		Appointments: h.ledger.Len(),
	})
}
