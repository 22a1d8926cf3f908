package appointment

import (
	"context"
	"strings"

	domain "github.com/BruksfildServices01/appointment-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/appointment-scheduler/internal/httperr"
)

type Availability struct {
	Date    domain.Date       `json:"date"`
	Slots   []domain.TimeSlot `json:"slots"`
	Summary domain.DaySummary `json:"summary"`
}

type GetAvailability struct {
	deps Deps
}

func NewGetAvailability(deps Deps) *GetAvailability {
	return &GetAvailability{deps: deps.WithDefaults()}
}

func (uc *GetAvailability) Execute(
	ctx context.Context,
	date string,
) (Availability, error) {

	_, span := tracer.Start(ctx, "appointment.availability")
	defer span.End()

	day, err := parseDateArg(date)
	if err != nil {
		return Availability{}, err
	}

	uc.deps.Metrics.ObserveQuery("availability")

	slots := domain.SlotsForDate(day, uc.deps.Schedule.SlotTemplate, uc.deps.Store.Snapshot())
	return Availability{
		Date:    day,
		Slots:   slots,
		Summary: domain.SummarizeSlots(slots),
	}, nil
}

// parseDateArg validates a query-side date reference.
func parseDateArg(raw string) (domain.Date, error) {
	if strings.TrimSpace(raw) == "" {
		return domain.Date{}, httperr.ErrInvalidArgument(domain.CodeMissingDate)
	}
	day, err := domain.ParseDate(raw)
	if err != nil {
		return domain.Date{}, httperr.ErrInvalidArgument(domain.CodeInvalidDate)
	}
	return day, nil
}
