package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/appointment-scheduler/internal/domain/appointment"
)

type CalendarMonth struct {
	Month    domain.YearMonth      `json:"month"`
	Previous domain.YearMonth      `json:"previous"`
	Next     domain.YearMonth      `json:"next"`
	Today    domain.Date           `json:"today"`
	Cells    []domain.CalendarCell `json:"cells"`
}

type GetCalendarMonth struct {
	deps Deps
}

func NewGetCalendarMonth(deps Deps) *GetCalendarMonth {
	return &GetCalendarMonth{deps: deps.WithDefaults()}
}

// Execute renders the month grid. A zero today means "use the clock".
func (uc *GetCalendarMonth) Execute(
	ctx context.Context,
	year int,
	month int,
	today domain.Date,
) (CalendarMonth, error) {

	_, span := tracer.Start(ctx, "appointment.calendar_month")
	defer span.End()

	ym, err := domain.NewYearMonth(year, month)
	if err != nil {
		return CalendarMonth{}, err
	}
	if today.IsZero() {
		today = uc.deps.Clock.Today()
	}

	uc.deps.Metrics.ObserveQuery("calendar")

	cells, err := domain.CellsForMonth(ym, today, uc.deps.Store.Snapshot(), uc.deps.Schedule.PreviewLimit)
	if err != nil {
		return CalendarMonth{}, err
	}

	return CalendarMonth{
		Month:    ym,
		Previous: domain.PreviousMonth(ym),
		Next:     domain.NextMonth(ym),
		Today:    today,
		Cells:    cells,
	}, nil
}
