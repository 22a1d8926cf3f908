package appointment

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/appointment-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/appointment-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/appointment-scheduler/internal/httperr"
)

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	deps Deps
}

func NewCreateAppointment(deps Deps) *CreateAppointment {
	return &CreateAppointment{deps: deps.WithDefaults()}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in domain.CommitRequest,
) (domain.Appointment, error) {

	ctx, span := tracer.Start(ctx, "appointment.create")
	defer span.End()

	started := time.Now()
	observe := func(outcome string) {
		uc.deps.Metrics.ObserveCommit(outcome, time.Since(started).Seconds())
	}

	// --------------------------------------------------
	// Validation
	// --------------------------------------------------
	ap, err := in.Build(uc.deps.Schedule)
	if err != nil {
		span.RecordError(err)
		observe("invalid")
		return domain.Appointment{}, err
	}
	ap.CreatedAt = uc.deps.Clock()

	span.SetAttributes(
		attribute.String("appointment.date", ap.Date.String()),
		attribute.String("appointment.time", ap.Time),
		attribute.String("appointment.service_type", string(ap.ServiceType)),
	)

	// --------------------------------------------------
	// Check + persist + insert under the store lock
	// --------------------------------------------------
	var persist func(domain.Appointment) error
	if uc.deps.Repo != nil {
		persist = func(a domain.Appointment) error {
			return uc.deps.Repo.CreateAppointment(ctx, a)
		}
	}

	created, err := uc.deps.Store.Commit(ap, uc.deps.NewID, persist)
	if err != nil {
		span.RecordError(err)

		if httperr.IsKind(err, httperr.KindConflict) {
			observe("conflict")
			uc.deps.Log.Info("appointment slot taken",
				zap.Stringer("date", ap.Date),
				zap.String("time", ap.Time),
			)
			uc.deps.Audit.Dispatch(audit.Event{
				Action: audit.ActionAppointmentConflict,
				Entity: audit.EntityAppointment,
				Metadata: map[string]string{
					"date": ap.Date.String(),
					"time": ap.Time,
				},
			})
			return domain.Appointment{}, err
		}

		observe("error")
		span.SetStatus(codes.Error, "persist failed")
		uc.deps.Log.Error("appointment commit failed", zap.Error(err))
		return domain.Appointment{}, err
	}

	// --------------------------------------------------
	// Bookkeeping
	// --------------------------------------------------
	observe("created")
	uc.deps.Metrics.SetStoreSize(uc.deps.Store.Len())
	span.SetAttributes(attribute.String("appointment.id", created.ID))

	uc.deps.Log.Info("appointment committed",
		zap.String("id", created.ID),
		zap.Stringer("date", created.Date),
		zap.String("time", created.Time),
		zap.String("service_type", string(created.ServiceType)),
	)

	uc.deps.Audit.Dispatch(audit.Event{
		Action:   audit.ActionAppointmentCreated,
		Entity:   audit.EntityAppointment,
		EntityID: created.ID,
		Metadata: map[string]string{
			"date": created.Date.String(),
			"time": created.Time,
		},
	})

	return created, nil
}
