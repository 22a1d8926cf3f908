package audit

import "context"

const (
	ActionAppointmentCreated   = "appointment_created"
	ActionAppointmentConflict  = "appointment_conflict"
	ActionAppointmentCancelled = "appointment_cancelled"
	ActionAgendaDigest         = "agenda_digest"

	EntityAppointment = "appointment"
	EntityAgenda      = "agenda"
)

type Event struct {
	Action   string
	Entity   string
	EntityID string
	Metadata any
}

// Sink records one event. Implementations must be safe to call from the
// dispatcher's worker goroutine.
type Sink interface {
	Log(ctx context.Context, ev Event) error
}
