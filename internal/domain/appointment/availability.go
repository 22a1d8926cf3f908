package appointment

type TimeSlot struct {
	Time          string      `json:"time"`
	IsAvailable   bool        `json:"is_available"`
	AppointmentID string      `json:"appointment_id,omitempty"`
	ServiceType   ServiceType `json:"service_type,omitempty"`
	ServiceName   string      `json:"service_name,omitempty"`
}

type DaySummary struct {
	Available int `json:"available"`
	Booked    int `json:"booked"`
}

// SlotsForDate returns one slot per template label, in template order. A slot
// is booked iff an appointment has the same date and exactly the same label;
// the first such appointment in input order annotates it.
func SlotsForDate(date Date, template []string, appointments []Appointment) []TimeSlot {
	occupied := make(map[string]Appointment)
	for _, ap := range appointments {
		if ap.Date != date {
			continue
		}
		if _, taken := occupied[ap.Time]; !taken {
			occupied[ap.Time] = ap
		}
	}

	slots := make([]TimeSlot, 0, len(template))
	for _, label := range template {
		ap, booked := occupied[label]
		if !booked {
			slots = append(slots, TimeSlot{Time: label, IsAvailable: true})
			continue
		}
		slots = append(slots, TimeSlot{
			Time:          label,
			IsAvailable:   false,
			AppointmentID: ap.ID,
			ServiceType:   ap.ServiceType,
			ServiceName:   ap.ServiceName,
		})
	}
	return slots
}

// AppointmentsForDate keeps input order.
func AppointmentsForDate(date Date, appointments []Appointment) []Appointment {
	out := make([]Appointment, 0)
	for _, ap := range appointments {
		if ap.Date == date {
			out = append(out, ap)
		}
	}
	return out
}

func SummarizeSlots(slots []TimeSlot) DaySummary {
	var s DaySummary
	for _, slot := range slots {
		if slot.IsAvailable {
			s.Available++
		} else {
			s.Booked++
		}
	}
	return s
}
