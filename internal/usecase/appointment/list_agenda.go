package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/appointment-scheduler/internal/domain/appointment"
)

type ListAgenda struct {
	deps Deps
}

func NewListAgenda(deps Deps) *ListAgenda {
	return &ListAgenda{deps: deps.WithDefaults()}
}

// Execute filters, searches and buckets the store. A zero today means
// "use the clock".
func (uc *ListAgenda) Execute(
	ctx context.Context,
	spec domain.FilterSpec,
	today domain.Date,
) domain.Agenda {

	_, span := tracer.Start(ctx, "appointment.agenda")
	defer span.End()

	if today.IsZero() {
		today = uc.deps.Clock.Today()
	}

	uc.deps.Metrics.ObserveQuery("agenda")

	return domain.FilterAndGroup(uc.deps.Store.Snapshot(), spec, today)
}
