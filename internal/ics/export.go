package ics

import (
	"time"

	ical "github.com/arran4/golang-ical"

	"github.com/BruksfildServices01/appointment-scheduler/internal/domain/appointment"
)

const (
	ProductID         = "-//appointment-scheduler//EN"
	DefaultSlotLength = 60 * time.Minute
)

// Export renders appointments as a VCALENDAR. Each appointment starts at its
// slot label on its civil date in loc and lasts slotLength. Appointments
// whose label is not a clock time are skipped.
func Export(
	appointments []appointment.Appointment,
	loc *time.Location,
	slotLength time.Duration,
	stamp time.Time,
) string {

	if loc == nil {
		loc = time.UTC
	}
	if slotLength <= 0 {
		slotLength = DefaultSlotLength
	}

	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(ProductID)
	cal.SetXWRCalName("Appointments")
	cal.SetXWRTimezone(loc.String())

	for _, ap := range appointments {
		start, ok := StartOf(ap, loc)
		if !ok {
			continue
		}

		ev := cal.AddEvent(ap.ID)
		ev.SetDtStampTime(stamp)
		if !ap.CreatedAt.IsZero() {
			ev.SetCreatedTime(ap.CreatedAt)
		}
		ev.SetStartAt(start)
		ev.SetEndAt(start.Add(slotLength))
		ev.SetSummary(ap.ServiceName)
		if ap.Location != "" {
			ev.SetLocation(ap.Location)
		}
		if ap.Notes != "" {
			ev.SetDescription(ap.Notes)
		}
	}

	return cal.Serialize()
}

// StartOf combines the appointment's date and slot label into an instant.
func StartOf(ap appointment.Appointment, loc *time.Location) (time.Time, bool) {
	minutes, ok := appointment.ClockMinutes(ap.Time)
	if !ok {
		return time.Time{}, false
	}
	d := ap.Date
	return time.Date(d.Year, d.Month, d.Day, minutes/60, minutes%60, 0, 0, loc), true
}
