package hospital

import (
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v7"
)

const (
	slotWindowDays = 7
	firstSlotHour  = 9
	lastSlotHour   = 17 // exclusive, last slot starts 16:30

	// Percentage of freshly generated slots that start out booked so the
	// demo catalog has realistic occupancy.
	preBookedPercent = 30
)

// SlotGenerator produces the bookable slot grid for one hospital: a
// rolling window of slotWindowDays days starting today, 30-minute slots
// from 09:00 through 16:30.
type SlotGenerator struct {
	now   func() time.Time
	faker *gofakeit.Faker
}

// NewSlotGenerator builds a generator. A nil clock means time.Now and a
// nil faker gets a randomly seeded one; tests inject both.
func NewSlotGenerator(now func() time.Time, faker *gofakeit.Faker) *SlotGenerator {
	if now == nil {
		now = time.Now
	}
	if faker == nil {
		faker = gofakeit.New(0)
	}
	return &SlotGenerator{now: now, faker: faker}
}

// Generate returns the full grid for the next slotWindowDays days. The
// date/time grid is deterministic for a fixed clock; the pre-booked
// pattern is a fresh random draw on every call.
func (g *SlotGenerator) Generate() []*Slot {
	anchor := g.now()
	slots := make([]*Slot, 0, slotWindowDays*(lastSlotHour-firstSlotHour)*2)

	for day := 0; day < slotWindowDays; day++ {
		date := anchor.AddDate(0, 0, day).Format("2006-01-02")
		for hour := firstSlotHour; hour < lastSlotHour; hour++ {
			for _, minute := range []int{0, 30} {
				hm := fmt.Sprintf("%02d:%02d", hour, minute)
				slots = append(slots, &Slot{
					ID:     date + "-" + hm,
					Date:   date,
					Time:   hm,
					Booked: g.faker.Number(1, 100) <= preBookedPercent,
				})
			}
		}
	}

	return slots
}
