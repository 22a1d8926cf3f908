package appointment

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/appointment-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/appointment-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/appointment-scheduler/internal/httperr"
)

type CancelAppointment struct {
	deps Deps
}

func NewCancelAppointment(deps Deps) *CancelAppointment {
	return &CancelAppointment{deps: deps.WithDefaults()}
}

func (uc *CancelAppointment) Execute(
	ctx context.Context,
	appointmentID string,
) (domain.Appointment, error) {

	ctx, span := tracer.Start(ctx, "appointment.cancel")
	defer span.End()

	appointmentID = strings.TrimSpace(appointmentID)
	if appointmentID == "" {
		uc.deps.Metrics.ObserveCancel("invalid")
		return domain.Appointment{}, httperr.ErrValidation(domain.CodeMissingID)
	}
	span.SetAttributes(attribute.String("appointment.id", appointmentID))

	var persist func(string) error
	if uc.deps.Repo != nil {
		persist = func(id string) error {
			err := uc.deps.Repo.DeleteAppointment(ctx, id)
			if httperr.IsKind(err, httperr.KindNotFound) {
				// Row already gone; the store is authoritative.
				uc.deps.Log.Warn("appointment missing from repository", zap.String("id", id))
				return nil
			}
			return err
		}
	}

	ap, err := uc.deps.Store.Remove(appointmentID, persist)
	if err != nil {
		span.RecordError(err)
		if httperr.IsKind(err, httperr.KindNotFound) {
			uc.deps.Metrics.ObserveCancel("not_found")
		} else {
			uc.deps.Metrics.ObserveCancel("error")
			uc.deps.Log.Error("appointment cancel failed", zap.String("id", appointmentID), zap.Error(err))
		}
		return domain.Appointment{}, err
	}

	uc.deps.Metrics.ObserveCancel("cancelled")
	uc.deps.Metrics.SetStoreSize(uc.deps.Store.Len())

	uc.deps.Log.Info("appointment cancelled",
		zap.String("id", ap.ID),
		zap.Stringer("date", ap.Date),
		zap.String("time", ap.Time),
	)

	uc.deps.Audit.Dispatch(audit.Event{
		Action:   audit.ActionAppointmentCancelled,
		Entity:   audit.EntityAppointment,
		EntityID: ap.ID,
	})

	return ap, nil
}
