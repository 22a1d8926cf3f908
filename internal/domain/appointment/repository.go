package appointment

import "context"

// Repository persists the store's contents. The in-memory Store stays the
// source of truth for conflict decisions; the repository only mirrors it.
type Repository interface {
	ListAppointments(
		ctx context.Context,
	) ([]Appointment, error)

	CreateAppointment(
		ctx context.Context,
		ap Appointment,
	) error

	DeleteAppointment(
		ctx context.Context,
		id string,
	) error
}
