package api

import "time"

type BookAppointmentRequest struct {
	HospitalID   string `json:"hospital_id"`
	SlotID       string `json:"slot_id"`
	PatientName  string `json:"patient_name"`
	PatientEmail string `json:"patient_email"`
	PatientPhone string `json:"patient_phone"`
	Reason       string `json:"reason,omitempty"`
}

type AppointmentResponse struct {
	ID           string    `json:"id"`
	HospitalID   string    `json:"hospital_id"`
	SlotID       string    `json:"slot_id"`
	PatientName  string    `json:"patient_name"`
	PatientEmail string    `json:"patient_email"`
	PatientPhone string    `json:"patient_phone"`
	Reason       string    `json:"reason"`
	CreatedAt    time.Time `json:"created_at"`

	// Joined fields, present on list views only.
	HospitalName string `json:"hospital_name,omitempty"`
	SlotDate     string `json:"slot_date,omitempty"`
	SlotTime     string `json:"slot_time,omitempty"`
}

type HospitalResponse struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	State          string   `json:"state"`
	City           string   `json:"city"`
	Locality       string   `json:"locality"`
	Address        string   `json:"address"`
	Specialties    []string `json:"specialties"`
	Rating         float64  `json:"rating"`
	AvailableToday int      `json:"available_today"`
}

type HospitalDetailResponse struct {
	HospitalResponse
	SlotDates []string `json:"slot_dates"`
}

type SlotResponse struct {
	ID       string `json:"id"`
	Date     string `json:"date"`
	Time     string `json:"time"`
	IsBooked bool   `json:"is_booked"`
}

type SlotBandsResponse struct {
	Date      string         `json:"date"`
	Morning   []SlotResponse `json:"morning"`
	Afternoon []SlotResponse `json:"afternoon"`
	Evening   []SlotResponse `json:"evening"`
}

type CreateHospitalRequest struct {
	Name        string   `json:"name"`
	State       string   `json:"state"`
	City        string   `json:"city"`
	Locality    string   `json:"locality"`
	Address     string   `json:"address"`
	Specialties []string `json:"specialties"`
	Rating      float64  `json:"rating"`
}

type DayCountResponse struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

type StatsResponse struct {
	Hospitals    int                `json:"hospitals"`
	States       int                `json:"states"`
	Appointments int                `json:"appointments"`
	OpenSlots    int                `json:"open_slots"`
	Week         []DayCountResponse `json:"week"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
