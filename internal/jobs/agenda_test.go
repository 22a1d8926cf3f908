package jobs

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/BruksfildServices01/appointment-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/appointment-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/appointment-scheduler/internal/timezone"
)

type staticAgenda struct {
	agenda domain.Agenda
	specs  []domain.FilterSpec
	days   []domain.Date
}

func (s *staticAgenda) Execute(_ context.Context, spec domain.FilterSpec, today domain.Date) domain.Agenda {
	s.specs = append(s.specs, spec)
	s.days = append(s.days, today)
	return s.agenda
}

type captureSink struct {
	mu     sync.Mutex
	events []audit.Event
}

func (c *captureSink) Log(_ context.Context, ev audit.Event) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, ev)
	return nil
}

func TestAgendaDigest_Run(t *testing.T) {
	today := domain.NewDate(2024, time.May, 1)
	lister := &staticAgenda{agenda: domain.Agenda{
		Today: []domain.Appointment{{ID: "a", Date: today}},
		Upcoming: []domain.DateGroup{
			{Date: today.AddDays(1), Appointments: []domain.Appointment{{ID: "b"}, {ID: "c"}}},
			{Date: today.AddDays(3), Appointments: []domain.Appointment{{ID: "d"}}},
		},
	}}

	core, logs := observer.New(zap.InfoLevel)
	sink := &captureSink{}
	dispatcher := audit.NewDispatcher(sink, nil, 4)

	clock := timezone.FixedClock(time.Date(2024, 5, 1, 7, 0, 0, 0, time.UTC))
	d := NewAgendaDigest(lister, dispatcher, clock, zap.New(core)).Run(context.Background())

	assert.Equal(t, Digest{Today: today, Count: 1, Upcoming: 3, Days: 2}, d)
	assert.Equal(t, []domain.FilterSpec{{ServiceType: domain.AllServices}}, lister.specs)
	assert.Equal(t, []domain.Date{today}, lister.days)
	assert.Equal(t, 1, logs.FilterMessage("agenda digest").Len())

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, dispatcher.Close(ctx))
	require.Len(t, sink.events, 1)
	assert.Equal(t, audit.ActionAgendaDigest, sink.events[0].Action)
}

func TestAgendaDigest_Run_NothingBookedToday(t *testing.T) {
	today := domain.NewDate(2024, time.May, 1)
	lister := &staticAgenda{agenda: domain.Agenda{
		Today: []domain.Appointment{},
		Upcoming: []domain.DateGroup{
			{Date: today.AddDays(2), Appointments: []domain.Appointment{{ID: "b"}}},
		},
	}}
	sink := &captureSink{}
	dispatcher := audit.NewDispatcher(sink, nil, 4)
	clock := timezone.FixedClock(time.Date(2024, 5, 1, 23, 30, 0, 0, time.UTC))

	d := NewAgendaDigest(lister, dispatcher, clock, nil).Run(context.Background())

	assert.False(t, d.Today.IsZero())
	assert.Equal(t, Digest{Today: today, Count: 0, Upcoming: 1, Days: 1}, d)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, dispatcher.Close(ctx))
	require.Len(t, sink.events, 1)
	assert.Equal(t, d, sink.events[0].Metadata)
}

func TestScheduler_Register(t *testing.T) {
	s := NewScheduler(nil)
	job := NewAgendaDigest(&staticAgenda{}, nil, nil, nil)

	require.NoError(t, s.Register("0 7 * * *", job))
	assert.Equal(t, 1, s.Len())

	assert.Error(t, s.Register("every morning", job))
	assert.Equal(t, 1, s.Len())

	s.Start()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	assert.NoError(t, s.Stop(ctx))
}
