package appointment

import (
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/appointment-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/appointment-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/appointment-scheduler/internal/logger"
	"github.com/BruksfildServices01/appointment-scheduler/internal/metrics"
	"github.com/BruksfildServices01/appointment-scheduler/internal/timezone"
)

var tracer = otel.Tracer("scheduler.internal.usecase.appointment")

// Deps are the collaborators shared by the appointment use cases. Repo is
// optional; without it the store is the only copy.
type Deps struct {
	Store    *domain.Store
	Repo     domain.Repository
	Schedule domain.Schedule
	Audit    *audit.Dispatcher
	Metrics  *metrics.SchedulerMetrics
	Log      *zap.Logger
	Clock    timezone.Clock
	NewID    func() string
}

// WithDefaults fills unset collaborators. Call it once before building
// several use cases so they share one store.
func (d Deps) WithDefaults() Deps {
	if d.Store == nil {
		d.Store = domain.NewStore()
	}
	d.Log = logger.OrNop(d.Log)
	if d.Clock == nil {
		d.Clock = timezone.SystemClock(timezone.Location(timezone.DefaultTimezone))
	}
	if d.NewID == nil {
		d.NewID = uuid.NewString
	}
	return d
}
