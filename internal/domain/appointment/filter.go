package appointment

import (
	"sort"
	"strings"
)

type DateGroup struct {
	Date         Date          `json:"date"`
	Appointments []Appointment `json:"appointments"`
}

// Agenda is the side-panel view: today's appointments and the later ones
// grouped under contiguous date headers. Past appointments never appear.
type Agenda struct {
	Today    []Appointment `json:"today"`
	Upcoming []DateGroup   `json:"upcoming"`
}

type FilterSpec struct {
	ServiceType string
	Query       string
}

// FilterByServiceType keeps appointments of serviceType; empty or "all"
// keeps everything.
func FilterByServiceType(appointments []Appointment, serviceType string) []Appointment {
	serviceType = strings.TrimSpace(serviceType)
	out := make([]Appointment, 0, len(appointments))
	for _, ap := range appointments {
		if serviceType == "" || strings.EqualFold(serviceType, AllServices) ||
			strings.EqualFold(string(ap.ServiceType), serviceType) {
			out = append(out, ap)
		}
	}
	return out
}

// Search is a case-insensitive substring match on service name, client name
// and location. A blank query keeps everything.
func Search(appointments []Appointment, query string) []Appointment {
	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]Appointment, 0, len(appointments))
	for _, ap := range appointments {
		if q == "" || matches(ap, q) {
			out = append(out, ap)
		}
	}
	return out
}

func matches(ap Appointment, lowered string) bool {
	for _, field := range []string{ap.ServiceName, ap.ClientName, ap.Location} {
		if field != "" && strings.Contains(strings.ToLower(field), lowered) {
			return true
		}
	}
	return false
}

// SortByDateTime returns a sorted copy: date, then clock time, then id.
func SortByDateTime(appointments []Appointment) []Appointment {
	out := append([]Appointment{}, appointments...)
	sort.SliceStable(out, func(i, j int) bool {
		return compareAppointments(out[i], out[j]) < 0
	})
	return out
}

func compareAppointments(a, b Appointment) int {
	if c := a.Date.Compare(b.Date); c != 0 {
		return c
	}
	if c := compareClock(a.Time, b.Time); c != 0 {
		return c
	}
	return strings.Compare(a.ID, b.ID)
}

// BucketByDay splits an already sorted list into today's and later
// appointments.
func BucketByDay(sorted []Appointment, today Date) (onToday, upcoming []Appointment) {
	onToday = make([]Appointment, 0)
	upcoming = make([]Appointment, 0)
	for _, ap := range sorted {
		switch {
		case ap.Date == today:
			onToday = append(onToday, ap)
		case ap.Date.After(today):
			upcoming = append(upcoming, ap)
		}
	}
	return onToday, upcoming
}

// GroupByDate collapses contiguous runs of the same date.
func GroupByDate(sorted []Appointment) []DateGroup {
	groups := make([]DateGroup, 0)
	for _, ap := range sorted {
		last := len(groups) - 1
		if last >= 0 && groups[last].Date == ap.Date {
			groups[last].Appointments = append(groups[last].Appointments, ap)
			continue
		}
		groups = append(groups, DateGroup{Date: ap.Date, Appointments: []Appointment{ap}})
	}
	return groups
}

func FilterAndGroup(appointments []Appointment, spec FilterSpec, today Date) Agenda {
	selected := FilterByServiceType(appointments, spec.ServiceType)
	selected = Search(selected, spec.Query)
	selected = SortByDateTime(selected)

	onToday, upcoming := BucketByDay(selected, today)
	return Agenda{
		Today:    onToday,
		Upcoming: GroupByDate(upcoming),
	}
}
