package booking

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/caresched/hospital-booking/internal/hospital"
)

var (
	ErrHospitalNotFound  = errors.New("hospital not found")
	ErrSlotNotFound      = errors.New("slot not found")
	ErrSlotAlreadyBooked = errors.New("slot is already booked")
)

// Ledger owns the appointment collection and is the only writer of slot
// booked flags. The state machine per slot is Available -> Booked ->
// Available; there is no terminal state.
//
// Book validates its references and refuses double bookings, so the
// ledger never holds two appointments for one slot and never creates an
// appointment with dangling references.
type Ledger struct {
	mu    sync.Mutex
	dir   *hospital.Directory
	appts []*Appointment
	seq   int
	now   func() time.Time
}

// NewLedger builds an empty ledger over the given directory. A nil clock
// means time.Now; tests inject a fixed one.
func NewLedger(dir *hospital.Directory, now func() time.Time) *Ledger {
	if now == nil {
		now = time.Now
	}
	return &Ledger{dir: dir, now: now}
}

// Book creates an appointment for the referenced slot and marks the slot
// booked. It fails with ErrHospitalNotFound / ErrSlotNotFound when the
// references do not resolve and ErrSlotAlreadyBooked when the slot is
// taken, leaving the ledger untouched in every failure case.
func (l *Ledger) Book(req Request) (*Appointment, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.dir.Get(req.HospitalID); !ok {
		return nil, ErrHospitalNotFound
	}
	slot, ok := l.dir.FindSlot(req.HospitalID, req.SlotID)
	if !ok {
		return nil, ErrSlotNotFound
	}
	// The ledger is the only slot-flag writer and l.mu serializes all
	// bookings, so the check-then-set below cannot race.
	if slot.Booked {
		return nil, ErrSlotAlreadyBooked
	}

	reason := req.Reason
	if reason == "" {
		reason = DefaultReason
	}

	l.seq++
	appt := &Appointment{
		ID:           fmt.Sprintf("a%d", l.seq),
		HospitalID:   req.HospitalID,
		SlotID:       req.SlotID,
		PatientName:  req.PatientName,
		PatientEmail: req.PatientEmail,
		PatientPhone: req.PatientPhone,
		Reason:       reason,
		CreatedAt:    l.now(),
	}

	l.dir.SetSlotBooked(req.HospitalID, req.SlotID, true)
	l.appts = append(l.appts, appt)

	return appt, nil
}

// Cancel removes an appointment and, when the hospital and slot still
// resolve, releases the slot. A missing hospital or slot never blocks the
// removal; only an unknown appointment ID returns false, and that leaves
// every slot flag untouched.
func (l *Ledger) Cancel(id string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i, appt := range l.appts {
		if appt.ID != id {
			continue
		}
		l.dir.SetSlotBooked(appt.HospitalID, appt.SlotID, false)
		l.appts = append(l.appts[:i], l.appts[i+1:]...)
		return true
	}
	return false
}

// Get looks an appointment up by ID.
func (l *Ledger) Get(id string) (*Appointment, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, appt := range l.appts {
		if appt.ID == id {
			return appt, true
		}
	}
	return nil, false
}

// List returns the ledger in insertion order. Appointments are immutable,
// so sharing the records is safe; only the slice is copied.
func (l *Ledger) List() []*Appointment {
	l.mu.Lock()
	defer l.mu.Unlock()

	return append([]*Appointment(nil), l.appts...)
}

// Len reports the number of live appointments.
func (l *Ledger) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.appts)
}
