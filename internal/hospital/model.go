package hospital

// Hospital is one bookable facility in the catalog. Hospitals are
// immutable after seeding except for the Booked flag on their slots,
// which the booking ledger owns.
type Hospital struct {
	ID          string
	Name        string
	State       string
	City        string
	Locality    string
	Address     string
	Specialties []string
	Rating      float64
	Slots       []*Slot
}

// Slot is a single 30-minute bookable unit. The ID is the date plus the
// zero-padded time (2024-01-01-09:00), which makes it unique within one
// hospital's slot set but not across hospitals.
type Slot struct {
	ID     string
	Date   string // 2006-01-02
	Time   string // 15:04, 24h grid
	Booked bool
}

func (h *Hospital) clone() *Hospital {
	c := *h
	c.Specialties = append([]string(nil), h.Specialties...)
	c.Slots = make([]*Slot, len(h.Slots))
	for i, s := range h.Slots {
		sc := *s
		c.Slots[i] = &sc
	}
	return &c
}
