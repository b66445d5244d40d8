package query

import (
	"sort"
	"strings"
	"time"

	"github.com/caresched/hospital-booking/internal/booking"
	"github.com/caresched/hospital-booking/internal/hospital"
)

// View selects the date window for the reception console.
type View string

const (
	ViewAll      View = "all"
	ViewToday    View = "today"
	ViewUpcoming View = "upcoming"
)

// AppointmentRow is an appointment joined with the hospital and slot it
// references, ready for display.
type AppointmentRow struct {
	Appointment  *booking.Appointment
	HospitalName string
	SlotDate     string
	SlotTime     string
}

// Appointments derives the reception console view: appointments filtered
// by date window AND search text, sorted ascending by slot date then slot
// time. Appointments whose hospital or slot no longer resolve are left
// out of every view since their schedule is unknowable.
//
// The search matches patient name, email, phone, or hospital name,
// case-insensitively.
func Appointments(d *hospital.Directory, l *booking.Ledger, view View, q, today string) []AppointmentRow {
	needle := strings.ToLower(q)

	var out []AppointmentRow
	for _, row := range resolve(d, l) {
		switch view {
		case ViewToday:
			if row.SlotDate != today {
				continue
			}
		case ViewUpcoming:
			if row.SlotDate < today {
				continue
			}
		}

		if needle != "" && !matchesRow(row, needle) {
			continue
		}
		out = append(out, row)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].SlotDate != out[j].SlotDate {
			return out[i].SlotDate < out[j].SlotDate
		}
		return out[i].SlotTime < out[j].SlotTime
	})

	return out
}

// AdminSearchAppointments is the appointment-management search: patient
// name or email, hospital name, or slot date substring. Results keep
// ledger insertion order.
func AdminSearchAppointments(d *hospital.Directory, l *booking.Ledger, q string) []AppointmentRow {
	rows := resolve(d, l)
	if q == "" {
		return rows
	}

	needle := strings.ToLower(q)
	var out []AppointmentRow
	for _, row := range rows {
		if strings.Contains(strings.ToLower(row.Appointment.PatientName), needle) ||
			strings.Contains(strings.ToLower(row.Appointment.PatientEmail), needle) ||
			strings.Contains(strings.ToLower(row.HospitalName), needle) ||
			strings.Contains(row.SlotDate, needle) {
			out = append(out, row)
		}
	}
	return out
}

// DayCount is one bar of the dashboard's appointments-per-day chart.
type DayCount struct {
	Date  string
	Count int
}

// DashboardStats are the back-office dashboard numbers.
type DashboardStats struct {
	Hospitals    int
	States       int
	Appointments int
	OpenSlots    int
	Week         []DayCount
}

// Stats recomputes the dashboard from scratch: catalog and ledger sizes,
// total open slots, and appointment counts per day across the 7-day slot
// window starting today.
func Stats(d *hospital.Directory, l *booking.Ledger, today time.Time) DashboardStats {
	hospitals := d.All()

	st := DashboardStats{
		Hospitals:    len(hospitals),
		States:       len(d.States()),
		Appointments: l.Len(),
	}

	for _, h := range hospitals {
		for _, s := range h.Slots {
			if !s.Booked {
				st.OpenSlots++
			}
		}
	}

	perDay := make(map[string]int)
	for _, row := range resolve(d, l) {
		perDay[row.SlotDate]++
	}
	for i := 0; i < 7; i++ {
		date := today.AddDate(0, 0, i).Format("2006-01-02")
		st.Week = append(st.Week, DayCount{Date: date, Count: perDay[date]})
	}

	return st
}

// resolve joins every ledger entry against the current catalog, dropping
// entries whose weak references no longer point at a live hospital+slot.
func resolve(d *hospital.Directory, l *booking.Ledger) []AppointmentRow {
	index := make(map[string]*hospital.Hospital)
	for _, h := range d.All() {
		index[h.ID] = h
	}

	var out []AppointmentRow
	for _, appt := range l.List() {
		h, ok := index[appt.HospitalID]
		if !ok {
			continue
		}
		var slot *hospital.Slot
		for _, s := range h.Slots {
			if s.ID == appt.SlotID {
				slot = s
				break
			}
		}
		if slot == nil {
			continue
		}
		out = append(out, AppointmentRow{
			Appointment:  appt,
			HospitalName: h.Name,
			SlotDate:     slot.Date,
			SlotTime:     slot.Time,
		})
	}
	return out
}

func matchesRow(row AppointmentRow, needle string) bool {
	return strings.Contains(strings.ToLower(row.Appointment.PatientName), needle) ||
		strings.Contains(strings.ToLower(row.Appointment.PatientEmail), needle) ||
		strings.Contains(strings.ToLower(row.Appointment.PatientPhone), needle) ||
		strings.Contains(strings.ToLower(row.HospitalName), needle)
}
