package booking

import "time"

// DefaultReason is applied when a booking request leaves the reason blank.
const DefaultReason = "General checkup"

// Appointment is one row in the ledger. HospitalID and SlotID are weak
// references: the hospital may be removed from the catalog afterwards and
// every consumer has to tolerate the pair not resolving anymore.
// Appointments are never mutated after creation.
type Appointment struct {
	ID           string
	HospitalID   string
	SlotID       string
	PatientName  string
	PatientEmail string
	PatientPhone string
	Reason       string
	CreatedAt    time.Time
}

// Request carries everything needed to book a slot.
type Request struct {
	HospitalID   string
	SlotID       string
	PatientName  string
	PatientEmail string
	PatientPhone string
	Reason       string
}
