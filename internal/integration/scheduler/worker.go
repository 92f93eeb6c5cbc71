// Package scheduler runs the daily recurring expense job.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"
	_ "time/tzdata" // zone data for minimal container images

	"github.com/expense-tracker/backend/internal/application/usecase/recurring"
)

// Materializer creates the expenses of the recurring templates due on a date.
type Materializer interface {
	Execute(ctx context.Context, input recurring.CreateTodayExpensesInput) (*recurring.CreateTodayExpensesOutput, error)
}

// Worker triggers recurring expense materialization once a day.
type Worker struct {
	materializer Materializer
	hour         int
	minute       int
	location     *time.Location
	now          func() time.Time
}

// WorkerConfig holds configuration for the scheduler worker.
type WorkerConfig struct {
	Hour     int
	Minute   int
	Timezone string
}

// DefaultWorkerConfig returns the default worker configuration.
func DefaultWorkerConfig() WorkerConfig {
	return WorkerConfig{
		Hour:     0,
		Minute:   1,
		Timezone: "UTC",
	}
}

// NewWorker creates a new scheduler worker.
func NewWorker(materializer Materializer, config WorkerConfig) (*Worker, error) {
	if config.Hour < 0 || config.Hour > 23 || config.Minute < 0 || config.Minute > 59 {
		return nil, fmt.Errorf("invalid run time %02d:%02d", config.Hour, config.Minute)
	}

	location, err := time.LoadLocation(config.Timezone)
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone %q: %w", config.Timezone, err)
	}

	return &Worker{
		materializer: materializer,
		hour:         config.Hour,
		minute:       config.Minute,
		location:     location,
		now:          time.Now,
	}, nil
}

// Start begins the worker loop. It blocks until the context is cancelled.
func (w *Worker) Start(ctx context.Context) {
	slog.Info("Recurring expense scheduler started",
		"run_at", fmt.Sprintf("%02d:%02d", w.hour, w.minute),
		"timezone", w.location.String(),
	)

	for {
		next := w.nextRun(w.now())
		timer := time.NewTimer(time.Until(next))

		select {
		case <-ctx.Done():
			timer.Stop()
			slog.Info("Recurring expense scheduler shutting down")
			return
		case <-timer.C:
			w.RunAt(ctx, w.now())
		}
	}
}

// RunNow materializes today's recurring expenses immediately.
func (w *Worker) RunNow(ctx context.Context) {
	w.RunAt(ctx, w.now())
}

// RunAt runs the job as if triggered at the given instant.
func (w *Worker) RunAt(ctx context.Context, at time.Time) {
	today := w.today(at)

	output, err := w.materializer.Execute(ctx, recurring.CreateTodayExpensesInput{Today: today})
	if err != nil {
		slog.Error("Recurring expense run failed",
			"date", today.Format("2006-01-02"),
			"error", err,
		)
		return
	}

	if output.Failed > 0 {
		slog.Warn("Recurring expense run finished with failures",
			"date", today.Format("2006-01-02"),
			"created", output.Created,
			"failed", output.Failed,
		)
	}
}

// nextRun returns the first scheduled instant strictly after now.
func (w *Worker) nextRun(now time.Time) time.Time {
	local := now.In(w.location)
	next := time.Date(local.Year(), local.Month(), local.Day(), w.hour, w.minute, 0, 0, w.location)
	if !next.After(local) {
		next = time.Date(local.Year(), local.Month(), local.Day()+1, w.hour, w.minute, 0, 0, w.location)
	}
	return next
}

// today returns the calendar date in the worker timezone, as UTC midnight.
func (w *Worker) today(now time.Time) time.Time {
	local := now.In(w.location)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC)
}
