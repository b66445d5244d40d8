package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/caresched/hospital-booking/internal/booking"
	"github.com/caresched/hospital-booking/internal/hospital"
	"github.com/caresched/hospital-booking/internal/query"
)

func listStatesHandler(dir *hospital.Directory) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, orEmpty(dir.States()))
	}
}

func listCitiesHandler(dir *hospital.Directory) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state := chi.URLParam(r, "state")
		writeJSON(w, http.StatusOK, orEmpty(dir.Cities(state)))
	}
}

func listLocalitiesHandler(dir *hospital.Directory) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state := chi.URLParam(r, "state")
		city := chi.URLParam(r, "city")
		writeJSON(w, http.StatusOK, orEmpty(dir.Localities(state, city)))
	}
}

func listHospitalsHandler(dir *hospital.Directory) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		hospitals := query.SearchHospitals(dir,
			q.Get("state"), q.Get("city"), q.Get("locality"), q.Get("q"))

		today := time.Now().Format("2006-01-02")
		resp := make([]HospitalResponse, 0, len(hospitals))
		for _, h := range hospitals {
			resp = append(resp, toHospitalResponse(h, today))
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

func getHospitalHandler(dir *hospital.Directory) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h, ok := dir.Get(chi.URLParam(r, "id"))
		if !ok {
			writeError(w, http.StatusNotFound, "hospital_not_found", "no hospital with that id")
			return
		}

		today := time.Now().Format("2006-01-02")
		writeJSON(w, http.StatusOK, HospitalDetailResponse{
			HospitalResponse: toHospitalResponse(h, today),
			SlotDates:        query.Dates(h),
		})
	}
}

func listSlotsHandler(dir *hospital.Directory) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h, ok := dir.Get(chi.URLParam(r, "id"))
		if !ok {
			writeError(w, http.StatusNotFound, "hospital_not_found", "no hospital with that id")
			return
		}

		date := r.URL.Query().Get("date")
		if date == "" {
			date = time.Now().Format("2006-01-02")
		}

		bands := query.PartitionByBand(query.SlotsForDate(h, date))
		writeJSON(w, http.StatusOK, SlotBandsResponse{
			Date:      date,
			Morning:   toSlotResponses(bands.Morning),
			Afternoon: toSlotResponses(bands.Afternoon),
			Evening:   toSlotResponses(bands.Evening),
		})
	}
}

func bookAppointmentHandler(ledger *booking.Ledger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req BookAppointmentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid_request_body", "could not parse JSON")
			return
		}

		if field, ok := missingField(req); !ok {
			writeError(w, http.StatusBadRequest, "missing_field", field+" is required")
			return
		}

		appt, err := ledger.Book(booking.Request{
			HospitalID:   req.HospitalID,
			SlotID:       req.SlotID,
			PatientName:  req.PatientName,
			PatientEmail: req.PatientEmail,
			PatientPhone: req.PatientPhone,
			Reason:       req.Reason,
		})
		if err != nil {
			handleBookError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, toAppointmentResponse(appt))
	}
}

func listAppointmentsHandler(dir *hospital.Directory, ledger *booking.Ledger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		view := query.View(r.URL.Query().Get("view"))
		switch view {
		case "":
			view = query.ViewAll
		case query.ViewAll, query.ViewToday, query.ViewUpcoming:
		default:
			writeError(w, http.StatusBadRequest, "invalid_view", "view must be all, today, or upcoming")
			return
		}

		today := time.Now().Format("2006-01-02")
		rows := query.Appointments(dir, ledger, view, r.URL.Query().Get("q"), today)

		resp := make([]AppointmentResponse, 0, len(rows))
		for _, row := range rows {
			resp = append(resp, toAppointmentRowResponse(row))
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

func getAppointmentHandler(ledger *booking.Ledger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		appt, ok := ledger.Get(chi.URLParam(r, "id"))
		if !ok {
			writeError(w, http.StatusNotFound, "appointment_not_found", "no appointment with that id")
			return
		}
		writeJSON(w, http.StatusOK, toAppointmentResponse(appt))
	}
}

func cancelAppointmentHandler(ledger *booking.Ledger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !ledger.Cancel(chi.URLParam(r, "id")) {
			writeError(w, http.StatusNotFound, "appointment_not_found", "no appointment with that id")
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func handleBookError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, booking.ErrHospitalNotFound):
		writeError(w, http.StatusNotFound, "hospital_not_found", err.Error())
	case errors.Is(err, booking.ErrSlotNotFound):
		writeError(w, http.StatusNotFound, "slot_not_found", err.Error())
	case errors.Is(err, booking.ErrSlotAlreadyBooked):
		writeError(w, http.StatusConflict, "slot_already_booked", err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", err.Error())
	}
}

func missingField(req BookAppointmentRequest) (string, bool) {
	// Presence checks only; email and phone formats are not validated.
	switch {
	case req.HospitalID == "":
		return "hospital_id", false
	case req.SlotID == "":
		return "slot_id", false
	case req.PatientName == "":
		return "patient_name", false
	case req.PatientEmail == "":
		return "patient_email", false
	case req.PatientPhone == "":
		return "patient_phone", false
	}
	return "", true
}

func toHospitalResponse(h *hospital.Hospital, today string) HospitalResponse {
	return HospitalResponse{
		ID:             h.ID,
		Name:           h.Name,
		State:          h.State,
		City:           h.City,
		Locality:       h.Locality,
		Address:        h.Address,
		Specialties:    h.Specialties,
		Rating:         h.Rating,
		AvailableToday: query.AvailableToday(h, today),
	}
}

func toSlotResponses(slots []*hospital.Slot) []SlotResponse {
	out := make([]SlotResponse, 0, len(slots))
	for _, s := range slots {
		out = append(out, SlotResponse{ID: s.ID, Date: s.Date, Time: s.Time, IsBooked: s.Booked})
	}
	return out
}

func toAppointmentResponse(a *booking.Appointment) AppointmentResponse {
	return AppointmentResponse{
		ID:           a.ID,
		HospitalID:   a.HospitalID,
		SlotID:       a.SlotID,
		PatientName:  a.PatientName,
		PatientEmail: a.PatientEmail,
		PatientPhone: a.PatientPhone,
		Reason:       a.Reason,
		CreatedAt:    a.CreatedAt,
	}
}

func toAppointmentRowResponse(row query.AppointmentRow) AppointmentResponse {
	resp := toAppointmentResponse(row.Appointment)
	resp.HospitalName = row.HospitalName
	resp.SlotDate = row.SlotDate
	resp.SlotTime = row.SlotTime
	return resp
}

func orEmpty(vals []string) []string {
	if vals == nil {
		return []string{}
	}
	return vals
}
