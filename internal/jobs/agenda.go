package jobs

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/appointment-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/appointment-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/appointment-scheduler/internal/logger"
	"github.com/BruksfildServices01/appointment-scheduler/internal/timezone"
)

// AgendaLister is satisfied by the ListAgenda use case.
type AgendaLister interface {
	Execute(ctx context.Context, spec domain.FilterSpec, today domain.Date) domain.Agenda
}

type Digest struct {
	Today    domain.Date `json:"today"`
	Count    int         `json:"today_count"`
	Upcoming int         `json:"upcoming_count"`
	Days     int         `json:"upcoming_days"`
}

// AgendaDigest summarizes the day's agenda into the log and the audit trail.
type AgendaDigest struct {
	agenda AgendaLister
	audit  *audit.Dispatcher
	clock  timezone.Clock
	log    *zap.Logger
}

// NewAgendaDigest resolves "today" from clock on every run.
func NewAgendaDigest(
	agenda AgendaLister,
	dispatcher *audit.Dispatcher,
	clock timezone.Clock,
	log *zap.Logger,
) *AgendaDigest {
	if clock == nil {
		clock = timezone.SystemClock(timezone.Location(timezone.DefaultTimezone))
	}
	return &AgendaDigest{agenda: agenda, audit: dispatcher, clock: clock, log: logger.OrNop(log)}
}

func (j *AgendaDigest) Run(ctx context.Context) Digest {
	today := j.clock.Today()
	agenda := j.agenda.Execute(ctx, domain.FilterSpec{ServiceType: domain.AllServices}, today)

	d := Digest{
		Today: today,
		Count: len(agenda.Today),
		Days:  len(agenda.Upcoming),
	}
	for _, g := range agenda.Upcoming {
		d.Upcoming += len(g.Appointments)
	}

	j.log.Info("agenda digest",
		zap.Stringer("date", d.Today),
		zap.Int("today", d.Count),
		zap.Int("upcoming", d.Upcoming),
		zap.Int("upcoming_days", d.Days),
	)
	j.audit.Dispatch(audit.Event{
		Action:   audit.ActionAgendaDigest,
		Entity:   audit.EntityAgenda,
		Metadata: d,
	})
	return d
}

// Scheduler owns the cron runner for background jobs.
type Scheduler struct {
	cron *cron.Cron
	log  *zap.Logger
}

func NewScheduler(log *zap.Logger) *Scheduler {
	return &Scheduler{
		cron: cron.New(),
		log:  logger.OrNop(log),
	}
}

// Register schedules job on a standard five-field cron spec.
func (s *Scheduler) Register(spec string, job *AgendaDigest) error {
	_, err := s.cron.AddFunc(spec, func() {
		job.Run(context.Background())
	})
	if err != nil {
		return fmt.Errorf("jobs: invalid schedule %q: %w", spec, err)
	}
	s.log.Info("job registered", zap.String("spec", spec))
	return nil
}

func (s *Scheduler) Len() int {
	return len(s.cron.Entries())
}

func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop waits for running jobs to finish or ctx to expire.
func (s *Scheduler) Stop(ctx context.Context) error {
	done := s.cron.Stop()
	select {
	case <-done.Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
