package hospital

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func nagalandDirectory() *Directory {
	return NewDirectory([]*Hospital{
		{
			ID: "h1", Name: "Dimapur District Hospital",
			State: "Nagaland", City: "Dimapur", Locality: "Midland",
			Specialties: []string{"Cardiology", "General Medicine"},
			Rating:      4.2,
			Slots: []*Slot{
				{ID: "2024-01-01-09:00", Date: "2024-01-01", Time: "09:00"},
				{ID: "2024-01-01-09:30", Date: "2024-01-01", Time: "09:30", Booked: true},
			},
		},
		{
			ID: "h2", Name: "Signal Point Clinic",
			State: "Nagaland", City: "Dimapur", Locality: "Signal Point",
			Specialties: []string{"Pediatrics"},
			Rating:      4.0,
			Slots: []*Slot{
				{ID: "2024-01-01-10:00", Date: "2024-01-01", Time: "10:00"},
			},
		},
		{
			ID: "h3", Name: "Kohima Medical Center",
			State: "Nagaland", City: "Kohima", Locality: "Lerie",
			Specialties: []string{"Neurology", "Oncology"},
			Rating:      4.6,
			Slots: []*Slot{
				{ID: "2024-01-02-14:00", Date: "2024-01-02", Time: "14:00"},
			},
		},
		{
			ID: "h4", Name: "Andheri Multispeciality Hospital",
			State: "Maharashtra", City: "Mumbai", Locality: "Andheri",
			Specialties: []string{"Orthopedics"},
			Rating:      4.4,
			Slots:       []*Slot{},
		},
	})
}

func TestStatesFirstAppearanceOrder(t *testing.T) {
	d := nagalandDirectory()
	assert.Equal(t, []string{"Nagaland", "Maharashtra"}, d.States())
}

func TestCitiesAreDistinct(t *testing.T) {
	d := nagalandDirectory()

	assert.Equal(t, []string{"Dimapur", "Kohima"}, d.Cities("Nagaland"))
	assert.Empty(t, d.Cities("Atlantis"))
}

func TestLocalities(t *testing.T) {
	d := nagalandDirectory()

	assert.Equal(t, []string{"Midland", "Signal Point"}, d.Localities("Nagaland", "Dimapur"))
	assert.Empty(t, d.Localities("Nagaland", "Mumbai"))
}

func TestFilterCombinesCriteria(t *testing.T) {
	d := nagalandDirectory()

	got := d.Filter("Nagaland", "Dimapur", "")
	require.Len(t, got, 2)
	assert.Equal(t, "h1", got[0].ID, "catalog order must be preserved")
	assert.Equal(t, "h2", got[1].ID)

	assert.Len(t, d.Filter("", "", ""), 4)
	assert.Len(t, d.Filter("Nagaland", "Dimapur", "Signal Point"), 1)
	assert.Empty(t, d.Filter("Nagaland", "Mumbai", ""))
}

func TestGet(t *testing.T) {
	d := nagalandDirectory()

	h, ok := d.Get("h3")
	require.True(t, ok)
	assert.Equal(t, "Kohima Medical Center", h.Name)

	_, ok = d.Get("h99")
	assert.False(t, ok)
}

func TestFindSlot(t *testing.T) {
	d := nagalandDirectory()

	s, ok := d.FindSlot("h1", "2024-01-01-09:30")
	require.True(t, ok)
	assert.True(t, s.Booked)

	_, ok = d.FindSlot("h1", "2024-01-01-23:00")
	assert.False(t, ok)
	_, ok = d.FindSlot("h99", "2024-01-01-09:00")
	assert.False(t, ok)
}

func TestSetSlotBooked(t *testing.T) {
	d := nagalandDirectory()

	require.True(t, d.SetSlotBooked("h1", "2024-01-01-09:00", true))
	s, ok := d.FindSlot("h1", "2024-01-01-09:00")
	require.True(t, ok)
	assert.True(t, s.Booked)

	assert.False(t, d.SetSlotBooked("h99", "2024-01-01-09:00", true))
}

func TestReadsReturnCopies(t *testing.T) {
	d := nagalandDirectory()

	h, ok := d.Get("h1")
	require.True(t, ok)
	h.Slots[0].Booked = true
	h.Name = "mutated"

	fresh, ok := d.Get("h1")
	require.True(t, ok)
	assert.Equal(t, "Dimapur District Hospital", fresh.Name)
	assert.False(t, fresh.Slots[0].Booked, "caller mutations must not leak into the catalog")
}

func TestAddAndRemove(t *testing.T) {
	d := nagalandDirectory()

	d.Add(&Hospital{ID: "h5", Name: "New Wing", State: "Delhi", City: "New Delhi", Locality: "Saket"})
	assert.Equal(t, 5, d.Len())
	_, ok := d.Get("h5")
	assert.True(t, ok)

	require.True(t, d.Remove("h5"))
	assert.Equal(t, 4, d.Len())
	assert.False(t, d.Remove("h5"))
}
