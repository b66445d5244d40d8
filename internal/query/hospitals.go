// Package query derives presentation views from the hospital directory
// and the booking ledger. Everything here is a pure function over
// snapshots of the two source-of-truth collections; nothing is cached, so
// every answer reflects the current catalog and ledger state.
package query

import (
	"strconv"
	"strings"

	"github.com/caresched/hospital-booking/internal/hospital"
)

// SearchHospitals combines the cascading location filter with a
// case-insensitive substring search over hospital name and specialties.
// Both conditions must hold; empty arguments mean no constraint.
func SearchHospitals(d *hospital.Directory, state, city, locality, q string) []*hospital.Hospital {
	filtered := d.Filter(state, city, locality)
	if q == "" {
		return filtered
	}

	needle := strings.ToLower(q)
	var out []*hospital.Hospital
	for _, h := range filtered {
		if matchesHospital(h, needle) {
			out = append(out, h)
		}
	}
	return out
}

// AdminSearchHospitals is the back-office catalog search, which matches
// on name, city, or state instead of the patient-facing field set.
func AdminSearchHospitals(d *hospital.Directory, q string) []*hospital.Hospital {
	all := d.All()
	if q == "" {
		return all
	}

	needle := strings.ToLower(q)
	var out []*hospital.Hospital
	for _, h := range all {
		if strings.Contains(strings.ToLower(h.Name), needle) ||
			strings.Contains(strings.ToLower(h.City), needle) ||
			strings.Contains(strings.ToLower(h.State), needle) {
			out = append(out, h)
		}
	}
	return out
}

func matchesHospital(h *hospital.Hospital, needle string) bool {
	if strings.Contains(strings.ToLower(h.Name), needle) {
		return true
	}
	for _, s := range h.Specialties {
		if strings.Contains(strings.ToLower(s), needle) {
			return true
		}
	}
	return false
}

// Band is a time-of-day grouping used purely for presentation; booking
// semantics are identical across bands.
type Band string

const (
	BandMorning   Band = "morning"   // 09:00-11:30
	BandAfternoon Band = "afternoon" // 12:00-15:30
	BandEvening   Band = "evening"   // 16:00 onward
)

// BandOf classifies a zero-padded HH:MM slot time.
func BandOf(hm string) Band {
	hour, _ := strconv.Atoi(hm[:2])
	switch {
	case hour < 12:
		return BandMorning
	case hour < 16:
		return BandAfternoon
	default:
		return BandEvening
	}
}

// SlotBands is one day's slots partitioned for the scheduler view.
type SlotBands struct {
	Morning   []*hospital.Slot
	Afternoon []*hospital.Slot
	Evening   []*hospital.Slot
}

// PartitionByBand splits slots into morning/afternoon/evening, preserving
// their order within each band.
func PartitionByBand(slots []*hospital.Slot) SlotBands {
	var b SlotBands
	for _, s := range slots {
		switch BandOf(s.Time) {
		case BandMorning:
			b.Morning = append(b.Morning, s)
		case BandAfternoon:
			b.Afternoon = append(b.Afternoon, s)
		default:
			b.Evening = append(b.Evening, s)
		}
	}
	return b
}

// Dates returns the distinct slot dates of a hospital in grid order.
func Dates(h *hospital.Hospital) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, s := range h.Slots {
		if _, dup := seen[s.Date]; dup {
			continue
		}
		seen[s.Date] = struct{}{}
		out = append(out, s.Date)
	}
	return out
}

// SlotsForDate returns a hospital's slots on one calendar date.
func SlotsForDate(h *hospital.Hospital, date string) []*hospital.Slot {
	var out []*hospital.Slot
	for _, s := range h.Slots {
		if s.Date == date {
			out = append(out, s)
		}
	}
	return out
}

// AvailableToday counts a hospital's open slots on the given date. The
// hospital cards use it to signal same-day availability.
func AvailableToday(h *hospital.Hospital, today string) int {
	n := 0
	for _, s := range h.Slots {
		if s.Date == today && !s.Booked {
			n++
		}
	}
	return n
}
