package hospital

import "sync"

// Directory is the in-memory hospital catalog. It is seeded once at
// startup and read by every handler; the only writers afterwards are the
// back-office add/remove operations and the booking ledger's slot-flag
// updates, all of which go through the methods below.
//
// Read methods hand out deep copies so callers can derive views without
// holding the lock and without observing ledger writes mid-iteration.
type Directory struct {
	mu        sync.RWMutex
	hospitals []*Hospital
}

func NewDirectory(hospitals []*Hospital) *Directory {
	return &Directory{hospitals: hospitals}
}

// All returns the catalog in seeding order.
func (d *Directory) All() []*Hospital {
	d.mu.RLock()
	defer d.mu.RUnlock()

	out := make([]*Hospital, len(d.hospitals))
	for i, h := range d.hospitals {
		out[i] = h.clone()
	}
	return out
}

func (d *Directory) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.hospitals)
}

// States returns the distinct states in order of first appearance.
func (d *Directory) States() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return distinct(d.hospitals, func(h *Hospital) (string, bool) {
		return h.State, true
	})
}

// Cities returns the distinct cities of hospitals in the given state.
// Unknown states yield an empty slice, not an error.
func (d *Directory) Cities(state string) []string {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return distinct(d.hospitals, func(h *Hospital) (string, bool) {
		return h.City, h.State == state
	})
}

// Localities returns the distinct localities of hospitals matching both
// state and city.
func (d *Directory) Localities(state, city string) []string {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return distinct(d.hospitals, func(h *Hospital) (string, bool) {
		return h.Locality, h.State == state && h.City == city
	})
}

// Filter returns hospitals matching every non-empty criterion, in
// catalog order. Empty criteria are no constraint at all, so
// Filter("", "", "") is the whole catalog.
func (d *Directory) Filter(state, city, locality string) []*Hospital {
	d.mu.RLock()
	defer d.mu.RUnlock()

	var out []*Hospital
	for _, h := range d.hospitals {
		if state != "" && h.State != state {
			continue
		}
		if city != "" && h.City != city {
			continue
		}
		if locality != "" && h.Locality != locality {
			continue
		}
		out = append(out, h.clone())
	}
	return out
}

// Get looks a hospital up by ID.
func (d *Directory) Get(id string) (*Hospital, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if h := d.find(id); h != nil {
		return h.clone(), true
	}
	return nil, false
}

// FindSlot resolves a hospital+slot pair to a snapshot of the slot.
func (d *Directory) FindSlot(hospitalID, slotID string) (Slot, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	h := d.find(hospitalID)
	if h == nil {
		return Slot{}, false
	}
	for _, s := range h.Slots {
		if s.ID == slotID {
			return *s, true
		}
	}
	return Slot{}, false
}

// SetSlotBooked flips the booked flag on a slot. Only the booking ledger
// calls this; it reports whether the pair resolved.
func (d *Directory) SetSlotBooked(hospitalID, slotID string, booked bool) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	h := d.find(hospitalID)
	if h == nil {
		return false
	}
	for _, s := range h.Slots {
		if s.ID == slotID {
			s.Booked = booked
			return true
		}
	}
	return false
}

// Add appends a hospital to the catalog.
func (d *Directory) Add(h *Hospital) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.hospitals = append(d.hospitals, h.clone())
}

// Remove deletes a hospital and its slots from the catalog. Appointments
// referencing it become orphans; the ledger tolerates that.
func (d *Directory) Remove(id string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	for i, h := range d.hospitals {
		if h.ID == id {
			d.hospitals = append(d.hospitals[:i], d.hospitals[i+1:]...)
			return true
		}
	}
	return false
}

func (d *Directory) find(id string) *Hospital {
	for _, h := range d.hospitals {
		if h.ID == id {
			return h
		}
	}
	return nil
}

func distinct(hospitals []*Hospital, pick func(*Hospital) (string, bool)) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, h := range hospitals {
		v, ok := pick(h)
		if !ok {
			continue
		}
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
