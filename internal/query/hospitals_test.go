package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caresched/hospital-booking/internal/hospital"
)

func catalogFixture() *hospital.Directory {
	return hospital.NewDirectory([]*hospital.Hospital{
		{
			ID: "h1", Name: "Dimapur District Hospital",
			State: "Nagaland", City: "Dimapur", Locality: "Midland",
			Specialties: []string{"Cardiology", "General Medicine"},
			Slots: []*hospital.Slot{
				{ID: "2024-01-01-09:00", Date: "2024-01-01", Time: "09:00"},
				{ID: "2024-01-01-12:00", Date: "2024-01-01", Time: "12:00", Booked: true},
				{ID: "2024-01-02-16:00", Date: "2024-01-02", Time: "16:00"},
			},
		},
		{
			ID: "h2", Name: "Kohima Medical Center",
			State: "Nagaland", City: "Kohima", Locality: "Lerie",
			Specialties: []string{"Neurology", "Oncology"},
			Slots: []*hospital.Slot{
				{ID: "2024-01-01-10:00", Date: "2024-01-01", Time: "10:00"},
			},
		},
		{
			ID: "h3", Name: "Andheri Heart Institute",
			State: "Maharashtra", City: "Mumbai", Locality: "Andheri",
			Specialties: []string{"Cardiology"},
			Slots:       []*hospital.Slot{},
		},
	})
}

func TestBandOf(t *testing.T) {
	cases := map[string]Band{
		"09:00": BandMorning,
		"11:30": BandMorning,
		"12:00": BandAfternoon,
		"15:30": BandAfternoon,
		"16:00": BandEvening,
		"16:30": BandEvening,
	}
	for hm, want := range cases {
		assert.Equal(t, want, BandOf(hm), "band of %s", hm)
	}
}

func TestPartitionByBand(t *testing.T) {
	slots := []*hospital.Slot{
		{Time: "09:00"}, {Time: "11:30"},
		{Time: "12:00"}, {Time: "15:30"},
		{Time: "16:00"}, {Time: "16:30"},
	}

	bands := PartitionByBand(slots)
	assert.Len(t, bands.Morning, 2)
	assert.Len(t, bands.Afternoon, 2)
	assert.Len(t, bands.Evening, 2)
	assert.Equal(t, "09:00", bands.Morning[0].Time, "order within a band is preserved")
}

func TestSearchHospitalsCombinesLocationAndText(t *testing.T) {
	d := catalogFixture()

	// Text only, matches a specialty case-insensitively.
	got := SearchHospitals(d, "", "", "", "cardio")
	require.Len(t, got, 2)
	assert.Equal(t, "h1", got[0].ID)
	assert.Equal(t, "h3", got[1].ID)

	// Location AND text.
	got = SearchHospitals(d, "Nagaland", "", "", "cardio")
	require.Len(t, got, 1)
	assert.Equal(t, "h1", got[0].ID)

	// Name match.
	got = SearchHospitals(d, "", "", "", "kohima")
	require.Len(t, got, 1)
	assert.Equal(t, "h2", got[0].ID)

	// No text means plain location filter.
	assert.Len(t, SearchHospitals(d, "Nagaland", "", "", ""), 2)
	assert.Empty(t, SearchHospitals(d, "Nagaland", "", "", "orthopedics"))
}

func TestAdminSearchHospitals(t *testing.T) {
	d := catalogFixture()

	got := AdminSearchHospitals(d, "mumbai")
	require.Len(t, got, 1)
	assert.Equal(t, "h3", got[0].ID)

	assert.Len(t, AdminSearchHospitals(d, "nagaland"), 2)
	assert.Len(t, AdminSearchHospitals(d, ""), 3)
}

func TestDates(t *testing.T) {
	d := catalogFixture()
	h, ok := d.Get("h1")
	require.True(t, ok)

	assert.Equal(t, []string{"2024-01-01", "2024-01-02"}, Dates(h))
}

func TestSlotsForDate(t *testing.T) {
	d := catalogFixture()
	h, ok := d.Get("h1")
	require.True(t, ok)

	slots := SlotsForDate(h, "2024-01-01")
	require.Len(t, slots, 2)
	assert.Empty(t, SlotsForDate(h, "2024-01-05"))
}

func TestAvailableToday(t *testing.T) {
	d := catalogFixture()
	h, ok := d.Get("h1")
	require.True(t, ok)

	// One of the two slots on the date is pre-booked.
	assert.Equal(t, 1, AvailableToday(h, "2024-01-01"))
	assert.Equal(t, 0, AvailableToday(h, "2024-01-05"))
}
