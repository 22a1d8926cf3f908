package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/appointment-scheduler/internal/domain/appointment"
)

type ListAppointmentsByDate struct {
	deps Deps
}

func NewListAppointmentsByDate(deps Deps) *ListAppointmentsByDate {
	return &ListAppointmentsByDate{deps: deps.WithDefaults()}
}

// Execute lists one day's appointments in time order.
func (uc *ListAppointmentsByDate) Execute(
	ctx context.Context,
	date string,
) ([]domain.Appointment, error) {

	_, span := tracer.Start(ctx, "appointment.list_by_date")
	defer span.End()

	day, err := parseDateArg(date)
	if err != nil {
		return nil, err
	}

	uc.deps.Metrics.ObserveQuery("day")

	// Snapshot is already sorted, so the per-day subset keeps time order.
	return domain.AppointmentsForDate(day, uc.deps.Store.Snapshot()), nil
}
