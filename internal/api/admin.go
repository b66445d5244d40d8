package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/caresched/hospital-booking/internal/booking"
	"github.com/caresched/hospital-booking/internal/hospital"
	"github.com/caresched/hospital-booking/internal/query"
)

func statsHandler(dir *hospital.Directory, ledger *booking.Ledger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		st := query.Stats(dir, ledger, time.Now())

		week := make([]DayCountResponse, 0, len(st.Week))
		for _, d := range st.Week {
			week = append(week, DayCountResponse{Date: d.Date, Count: d.Count})
		}

		writeJSON(w, http.StatusOK, StatsResponse{
			Hospitals:    st.Hospitals,
			States:       st.States,
			Appointments: st.Appointments,
			OpenSlots:    st.OpenSlots,
			Week:         week,
		})
	}
}

func adminListHospitalsHandler(dir *hospital.Directory) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		hospitals := query.AdminSearchHospitals(dir, r.URL.Query().Get("q"))

		today := time.Now().Format("2006-01-02")
		resp := make([]HospitalResponse, 0, len(hospitals))
		for _, h := range hospitals {
			resp = append(resp, toHospitalResponse(h, today))
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

func adminSearchAppointmentsHandler(dir *hospital.Directory, ledger *booking.Ledger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows := query.AdminSearchAppointments(dir, ledger, r.URL.Query().Get("q"))

		resp := make([]AppointmentResponse, 0, len(rows))
		for _, row := range rows {
			resp = append(resp, toAppointmentRowResponse(row))
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

func addHospitalHandler(dir *hospital.Directory, gen *hospital.SlotGenerator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateHospitalRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid_request_body", "could not parse JSON")
			return
		}
		if req.Name == "" || req.State == "" || req.City == "" || req.Locality == "" {
			writeError(w, http.StatusBadRequest, "missing_field", "name, state, city, and locality are required")
			return
		}

		h := &hospital.Hospital{
			ID:          uuid.NewString(),
			Name:        req.Name,
			State:       req.State,
			City:        req.City,
			Locality:    req.Locality,
			Address:     req.Address,
			Specialties: req.Specialties,
			Rating:      req.Rating,
			Slots:       gen.Generate(),
		}
		dir.Add(h)

		today := time.Now().Format("2006-01-02")
		writeJSON(w, http.StatusCreated, toHospitalResponse(h, today))
	}
}

func removeHospitalHandler(dir *hospital.Directory) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !dir.Remove(chi.URLParam(r, "id")) {
			writeError(w, http.StatusNotFound, "hospital_not_found", "no hospital with that id")
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
