package hospital

import (
	"fmt"
	"math"

	"github.com/brianvoe/gofakeit/v7"
)

type region struct {
	state      string
	city       string
	localities []string
}

// The location tables are curated rather than faked so that cascading
// state -> city -> locality filters have a sane shape in the demo data.
var regions = []region{
	{"Nagaland", "Dimapur", []string{"Midland", "Signal Point", "Chumukedima"}},
	{"Nagaland", "Kohima", []string{"Midland", "Lerie"}},
	{"Maharashtra", "Mumbai", []string{"Andheri", "Bandra", "Dadar"}},
	{"Maharashtra", "Pune", []string{"Kothrud", "Shivajinagar"}},
	{"Karnataka", "Bengaluru", []string{"Indiranagar", "Jayanagar", "Whitefield"}},
	{"Delhi", "New Delhi", []string{"Saket", "Dwarka", "Rohini"}},
}

var specialtyPool = []string{
	"Cardiology",
	"Neurology",
	"Oncology",
	"Orthopedics",
	"Pediatrics",
	"Dermatology",
	"Psychiatry",
	"Radiology",
	"Gastroenterology",
	"Pulmonology",
	"Urology",
	"General Medicine",
}

var nameSuffixes = []string{"Hospital", "Medical Center", "Clinic", "Multispeciality Hospital"}

// SeedCatalog regenerates the mock hospital catalog. IDs are sequential
// (h1, h2, ...) and every hospital gets a fresh slot grid from gen. The
// same faker seed reproduces the same catalog apart from slot occupancy.
func SeedCatalog(f *gofakeit.Faker, gen *SlotGenerator, count int) []*Hospital {
	hospitals := make([]*Hospital, 0, count)

	for i := 0; i < count; i++ {
		r := regions[f.Number(0, len(regions)-1)]
		locality := r.localities[f.Number(0, len(r.localities)-1)]

		hospitals = append(hospitals, &Hospital{
			ID:          fmt.Sprintf("h%d", i+1),
			Name:        f.Company() + " " + nameSuffixes[f.Number(0, len(nameSuffixes)-1)],
			State:       r.state,
			City:        r.city,
			Locality:    locality,
			Address:     fmt.Sprintf("%s, %s, %s", f.Street(), locality, r.city),
			Specialties: pickSpecialties(f, 3),
			Rating:      math.Round(f.Float64Range(3.5, 5.0)*10) / 10,
			Slots:       gen.Generate(),
		})
	}

	return hospitals
}

func pickSpecialties(f *gofakeit.Faker, n int) []string {
	pool := append([]string(nil), specialtyPool...)
	f.ShuffleStrings(pool)
	return pool[:n]
}
