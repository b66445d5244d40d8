package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caresched/hospital-booking/internal/hospital"
)

var testTime = time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)

func testClock() time.Time { return testTime }

func testDirectory() *hospital.Directory {
	return hospital.NewDirectory([]*hospital.Hospital{
		{
			ID: "h1", Name: "Dimapur District Hospital",
			State: "Nagaland", City: "Dimapur", Locality: "Midland",
			Slots: []*hospital.Slot{
				{ID: "2024-01-01-09:00", Date: "2024-01-01", Time: "09:00"},
				{ID: "2024-01-01-09:30", Date: "2024-01-01", Time: "09:30"},
				{ID: "2024-01-02-14:00", Date: "2024-01-02", Time: "14:00", Booked: true},
			},
		},
		{
			ID: "h2", Name: "Kohima Medical Center",
			State: "Nagaland", City: "Kohima", Locality: "Lerie",
			Slots: []*hospital.Slot{
				{ID: "2024-01-01-10:00", Date: "2024-01-01", Time: "10:00"},
			},
		},
	})
}

func janeDoe(hospitalID, slotID string) Request {
	return Request{
		HospitalID:   hospitalID,
		SlotID:       slotID,
		PatientName:  "Jane Doe",
		PatientEmail: "jane@example.com",
		PatientPhone: "123-456-7890",
	}
}

func TestBookCreatesAppointmentAndMarksSlot(t *testing.T) {
	dir := testDirectory()
	ledger := NewLedger(dir, testClock)

	appt, err := ledger.Book(janeDoe("h1", "2024-01-01-09:00"))
	require.NoError(t, err)

	assert.Equal(t, "a1", appt.ID)
	assert.Equal(t, "h1", appt.HospitalID)
	assert.Equal(t, "2024-01-01-09:00", appt.SlotID)
	assert.Equal(t, "Jane Doe", appt.PatientName)
	assert.Equal(t, DefaultReason, appt.Reason, "empty reason gets the default")
	assert.Equal(t, testTime, appt.CreatedAt)

	slot, ok := dir.FindSlot("h1", "2024-01-01-09:00")
	require.True(t, ok)
	assert.True(t, slot.Booked)

	appts := ledger.List()
	require.Len(t, appts, 1)
	assert.Equal(t, appt, appts[0])
}

func TestBookKeepsExplicitReason(t *testing.T) {
	ledger := NewLedger(testDirectory(), testClock)

	req := janeDoe("h1", "2024-01-01-09:00")
	req.Reason = "Follow-up visit"

	appt, err := ledger.Book(req)
	require.NoError(t, err)
	assert.Equal(t, "Follow-up visit", appt.Reason)
}

// The legacy behavior allowed two bookings on one slot; the guard below
// is a deliberate tightening, so a second booking must be rejected and
// leave the ledger with exactly one appointment for the slot.
func TestBookRejectsDoubleBooking(t *testing.T) {
	ledger := NewLedger(testDirectory(), testClock)

	_, err := ledger.Book(janeDoe("h1", "2024-01-01-09:00"))
	require.NoError(t, err)

	_, err = ledger.Book(janeDoe("h1", "2024-01-01-09:00"))
	assert.ErrorIs(t, err, ErrSlotAlreadyBooked)
	assert.Equal(t, 1, ledger.Len())
}

func TestBookRejectsPreBookedSlot(t *testing.T) {
	ledger := NewLedger(testDirectory(), testClock)

	_, err := ledger.Book(janeDoe("h1", "2024-01-02-14:00"))
	assert.ErrorIs(t, err, ErrSlotAlreadyBooked)
	assert.Zero(t, ledger.Len())
}

// The legacy behavior created the appointment even when the references
// did not resolve; Book is hardened to fail instead, creating nothing.
func TestBookRejectsUnknownReferences(t *testing.T) {
	ledger := NewLedger(testDirectory(), testClock)

	_, err := ledger.Book(janeDoe("h99", "2024-01-01-09:00"))
	assert.ErrorIs(t, err, ErrHospitalNotFound)

	_, err = ledger.Book(janeDoe("h1", "2024-01-01-23:00"))
	assert.ErrorIs(t, err, ErrSlotNotFound)

	assert.Zero(t, ledger.Len())
}

func TestCancelRestoresSlot(t *testing.T) {
	dir := testDirectory()
	ledger := NewLedger(dir, testClock)

	appt, err := ledger.Book(janeDoe("h1", "2024-01-01-09:00"))
	require.NoError(t, err)

	require.True(t, ledger.Cancel(appt.ID))

	slot, ok := dir.FindSlot("h1", "2024-01-01-09:00")
	require.True(t, ok)
	assert.False(t, slot.Booked, "cancel must return the slot to its pre-book state")
	assert.Zero(t, ledger.Len())
}

func TestCancelUnknownIDHasNoSideEffects(t *testing.T) {
	dir := testDirectory()
	ledger := NewLedger(dir, testClock)

	_, err := ledger.Book(janeDoe("h1", "2024-01-01-09:00"))
	require.NoError(t, err)

	before := dir.All()
	assert.False(t, ledger.Cancel("a99"))
	assert.Equal(t, before, dir.All(), "slot flags must be untouched")
	assert.Equal(t, 1, ledger.Len())
}

func TestCancelSurvivesRemovedHospital(t *testing.T) {
	dir := testDirectory()
	ledger := NewLedger(dir, testClock)

	appt, err := ledger.Book(janeDoe("h2", "2024-01-01-10:00"))
	require.NoError(t, err)

	require.True(t, dir.Remove("h2"))

	// The appointment's references are dangling now, but the removal
	// itself must still go through.
	assert.True(t, ledger.Cancel(appt.ID))
	assert.Zero(t, ledger.Len())
}

func TestSequentialIDsAreNeverReused(t *testing.T) {
	ledger := NewLedger(testDirectory(), testClock)

	a1, err := ledger.Book(janeDoe("h1", "2024-01-01-09:00"))
	require.NoError(t, err)
	a2, err := ledger.Book(janeDoe("h1", "2024-01-01-09:30"))
	require.NoError(t, err)
	assert.Equal(t, "a1", a1.ID)
	assert.Equal(t, "a2", a2.ID)

	require.True(t, ledger.Cancel(a2.ID))

	a3, err := ledger.Book(janeDoe("h1", "2024-01-01-09:30"))
	require.NoError(t, err)
	assert.Equal(t, "a3", a3.ID)
}

func TestListKeepsInsertionOrder(t *testing.T) {
	ledger := NewLedger(testDirectory(), testClock)

	first, err := ledger.Book(janeDoe("h1", "2024-01-01-09:30"))
	require.NoError(t, err)
	second, err := ledger.Book(janeDoe("h2", "2024-01-01-10:00"))
	require.NoError(t, err)

	appts := ledger.List()
	require.Len(t, appts, 2)
	assert.Equal(t, first.ID, appts[0].ID)
	assert.Equal(t, second.ID, appts[1].ID)
}

func TestGet(t *testing.T) {
	ledger := NewLedger(testDirectory(), testClock)

	appt, err := ledger.Book(janeDoe("h1", "2024-01-01-09:00"))
	require.NoError(t, err)

	got, ok := ledger.Get(appt.ID)
	require.True(t, ok)
	assert.Equal(t, appt, got)

	_, ok = ledger.Get("a99")
	assert.False(t, ok)
}
